// Package chacha20poly1305 implements the RFC 8439 AEAD from scratch: the
// ChaCha20 stream cipher keyed by a 256-bit key and 96-bit nonce, combined
// with the Poly1305 one-time authenticator.
package chacha20poly1305

import (
	"encoding/binary"
	"math/bits"
)

const (
	// KeySize is the ChaCha20 key length in bytes.
	KeySize = 32
	// NonceSize is the nonce length in bytes.
	NonceSize = 12
	// TagSize is the Poly1305 tag length appended by Seal.
	TagSize = 16
)

// "expand 32-byte k"
var chachaSigma = [4]uint32{0x61707865, 0x3320646e, 0x79622d32, 0x6b206574}

func quarterRound(s *[16]uint32, a, b, c, d int) {
	s[a] += s[b]
	s[d] = bits.RotateLeft32(s[d]^s[a], 16)
	s[c] += s[d]
	s[b] = bits.RotateLeft32(s[b]^s[c], 12)
	s[a] += s[b]
	s[d] = bits.RotateLeft32(s[d]^s[a], 8)
	s[c] += s[d]
	s[b] = bits.RotateLeft32(s[b]^s[c], 7)
}

// chachaBlock serializes one 64-byte keystream block for the given counter.
func chachaBlock(key, nonce []byte, counter uint32, out *[64]byte) {
	var s [16]uint32
	copy(s[:4], chachaSigma[:])
	for i := range 8 {
		s[4+i] = binary.LittleEndian.Uint32(key[4*i:])
	}
	s[12] = counter
	for i := range 3 {
		s[13+i] = binary.LittleEndian.Uint32(nonce[4*i:])
	}

	w := s
	for range 10 {
		quarterRound(&w, 0, 4, 8, 12)
		quarterRound(&w, 1, 5, 9, 13)
		quarterRound(&w, 2, 6, 10, 14)
		quarterRound(&w, 3, 7, 11, 15)
		quarterRound(&w, 0, 5, 10, 15)
		quarterRound(&w, 1, 6, 11, 12)
		quarterRound(&w, 2, 7, 8, 13)
		quarterRound(&w, 3, 4, 9, 14)
	}

	for i := range 16 {
		binary.LittleEndian.PutUint32(out[4*i:], w[i]+s[i])
	}
}

// xorKeyStream XORs src into dst with the keystream starting at counter.
// dst and src may alias exactly.
func xorKeyStream(dst, src, key, nonce []byte, counter uint32) {
	var block [64]byte
	for i := 0; i < len(src); i += 64 {
		chachaBlock(key, nonce, counter, &block)
		counter++
		n := min(64, len(src)-i)
		for j := range n {
			dst[i+j] = src[i+j] ^ block[j]
		}
	}
}
