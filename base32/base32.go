// Package base32 implements the RFC 4648 Base32 codec family from scratch:
// the standard alphabet, the extended-hex alphabet, and optional '='
// padding.
package base32

import "fmt"

const (
	// StdAlphabet is the RFC 4648 §6 standard Base32 alphabet.
	StdAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"
	// HexAlphabet is the RFC 4648 §7 extended-hex alphabet, which preserves
	// sort order of the encoded data.
	HexAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUV"
)

const padChar = '='

// Encoding is a Base32 alphabet with a padding policy. The zero value is
// unusable; build instances with NewEncoding.
type Encoding struct {
	alphabet  [32]byte
	decodeMap [256]byte
	pad       bool
}

// Std and Hex are the padded RFC 4648 encodings.
var (
	Std = NewEncoding(StdAlphabet)
	Hex = NewEncoding(HexAlphabet)
)

// NewEncoding builds a padded Encoding from a 32-byte alphabet of distinct
// characters.
func NewEncoding(alphabet string) *Encoding {
	if len(alphabet) != 32 {
		panic(fmt.Sprintf("base32: alphabet must be 32 bytes, got %d", len(alphabet)))
	}
	e := &Encoding{pad: true}
	copy(e.alphabet[:], alphabet)
	for i := range e.decodeMap {
		e.decodeMap[i] = 0xFF
	}
	for i, c := range []byte(alphabet) {
		if e.decodeMap[c] != 0xFF {
			panic(fmt.Sprintf("base32: alphabet repeats %q", c))
		}
		e.decodeMap[c] = byte(i)
	}
	return e
}

// WithPadding returns a copy of e that emits and accepts '=' padding
// according to pad.
func (e *Encoding) WithPadding(pad bool) *Encoding {
	out := *e
	out.pad = pad
	return &out
}

// EncodedLen reports the encoded length of n source bytes.
func (e *Encoding) EncodedLen(n int) int {
	if e.pad {
		return (n + 4) / 5 * 8
	}
	return (n*8 + 4) / 5
}

// Encode maps src through the alphabet, 5 source bits per output character.
func (e *Encoding) Encode(src []byte) string {
	out := make([]byte, 0, e.EncodedLen(len(src)))

	var buf uint16
	bits := 0
	for _, b := range src {
		buf = buf<<8 | uint16(b)
		bits += 8
		for bits >= 5 {
			bits -= 5
			out = append(out, e.alphabet[buf>>bits&0x1F])
		}
	}
	if bits > 0 {
		// Left-align the trailing bits into one final character.
		out = append(out, e.alphabet[buf<<(5-bits)&0x1F])
	}
	if e.pad {
		for len(out)%8 != 0 {
			out = append(out, padChar)
		}
	}
	return string(out)
}

// Decode inverts Encode. Characters outside the alphabet are rejected;
// trailing bits that cannot form a full byte must be zero, which catches
// truncated or non-canonical input.
func (e *Encoding) Decode(s string) ([]byte, error) {
	if e.pad {
		trimmed := 0
		for len(s) > 0 && s[len(s)-1] == padChar {
			s = s[:len(s)-1]
			trimmed++
		}
		if trimmed > 0 && (len(s)+trimmed)%8 != 0 {
			return nil, fmt.Errorf("base32: misplaced padding")
		}
	}

	out := make([]byte, 0, len(s)*5/8)
	var buf uint16
	bits := 0
	for i := 0; i < len(s); i++ {
		v := e.decodeMap[s[i]]
		if v == 0xFF {
			return nil, fmt.Errorf("base32: invalid character %q at offset %d", s[i], i)
		}
		buf = buf<<5 | uint16(v)
		bits += 5
		if bits >= 8 {
			bits -= 8
			out = append(out, byte(buf>>bits))
		}
	}
	if bits >= 5 {
		return nil, fmt.Errorf("base32: invalid length")
	}
	if buf&(1<<bits-1) != 0 {
		return nil, fmt.Errorf("base32: non-zero trailing bits")
	}
	return out, nil
}
