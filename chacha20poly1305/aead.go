package chacha20poly1305

import (
	"crypto/subtle"
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrAuth is returned by Open when the tag does not verify.
var ErrAuth = errors.New("chacha20poly1305: message authentication failed")

// polyKey derives the one-time Poly1305 key from keystream block 0; block
// counter 1 onward encrypts the payload.
func polyKey(key, nonce []byte) [32]byte {
	var block [64]byte
	chachaBlock(key, nonce, 0, &block)
	var pk [32]byte
	copy(pk[:], block[:32])
	return pk
}

// macData assembles the authenticated input: aad and ciphertext, each
// zero-padded to a 16-byte boundary, followed by their lengths as 64-bit
// little-endian integers.
func macData(aad, ciphertext []byte) []byte {
	pad := func(n int) int { return (16 - n%16) % 16 }
	buf := make([]byte, 0, len(aad)+pad(len(aad))+len(ciphertext)+pad(len(ciphertext))+16)
	buf = append(buf, aad...)
	buf = append(buf, make([]byte, pad(len(aad)))...)
	buf = append(buf, ciphertext...)
	buf = append(buf, make([]byte, pad(len(ciphertext)))...)

	var lengths [16]byte
	binary.LittleEndian.PutUint64(lengths[0:], uint64(len(aad)))
	binary.LittleEndian.PutUint64(lengths[8:], uint64(len(ciphertext)))
	return append(buf, lengths[:]...)
}

func checkSizes(key, nonce []byte) error {
	if len(key) != KeySize {
		return fmt.Errorf("chacha20poly1305: key must be %d bytes, got %d", KeySize, len(key))
	}
	if len(nonce) != NonceSize {
		return fmt.Errorf("chacha20poly1305: nonce must be %d bytes, got %d", NonceSize, len(nonce))
	}
	return nil
}

// Seal encrypts plaintext and authenticates it together with additionalData,
// returning ciphertext ‖ tag. The nonce must never repeat under one key.
func Seal(key, nonce, plaintext, additionalData []byte) ([]byte, error) {
	if err := checkSizes(key, nonce); err != nil {
		return nil, err
	}

	out := make([]byte, len(plaintext)+TagSize)
	ciphertext, tag := out[:len(plaintext)], out[len(plaintext):]
	xorKeyStream(ciphertext, plaintext, key, nonce, 1)

	pk := polyKey(key, nonce)
	sum := poly1305Sum(&pk, macData(additionalData, ciphertext))
	copy(tag, sum[:])
	return out, nil
}

// Open verifies the tag over additionalData and the ciphertext, then
// decrypts. On any authentication failure it returns ErrAuth and no
// plaintext; the tag check runs before a single byte is decrypted.
func Open(key, nonce, ciphertext, additionalData []byte) ([]byte, error) {
	if err := checkSizes(key, nonce); err != nil {
		return nil, err
	}
	if len(ciphertext) < TagSize {
		return nil, ErrAuth
	}
	body, tag := ciphertext[:len(ciphertext)-TagSize], ciphertext[len(ciphertext)-TagSize:]

	pk := polyKey(key, nonce)
	sum := poly1305Sum(&pk, macData(additionalData, body))
	if subtle.ConstantTimeCompare(tag, sum[:]) != 1 {
		return nil, ErrAuth
	}

	plaintext := make([]byte, len(body))
	xorKeyStream(plaintext, body, key, nonce, 1)
	return plaintext, nil
}
