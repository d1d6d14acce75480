// Package convert normalizes the textual representations the primitives
// accept and produce. Every cipher and hash in this module works on raw
// bytes; hex, Base64 and UTF-8 strings exist only at this boundary.
package convert

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// FromHex decodes a hexadecimal string.
func FromHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("convert: invalid hex input: %w", err)
	}
	return b, nil
}

// ToHex encodes bytes as lowercase hexadecimal.
func ToHex(b []byte) string {
	return hex.EncodeToString(b)
}

// FromBase64 decodes a standard-alphabet Base64 string.
func FromBase64(s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("convert: invalid base64 input: %w", err)
	}
	return b, nil
}

// ToBase64 encodes bytes as standard-alphabet Base64 with padding.
func ToBase64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// FromUTF8 returns the raw bytes of a UTF-8 string.
func FromUTF8(s string) []byte {
	return []byte(s)
}

// ToUTF8 interprets bytes as a UTF-8 string.
func ToUTF8(b []byte) string {
	return string(b)
}
