package aes

import (
	"encoding/binary"
	"fmt"
)

// Rounds returns the round count for a normalized key length: 10 for
// AES-128, 12 for AES-192, 14 for AES-256.
func Rounds(keyLen int) int {
	switch keyLen {
	case 16:
		return 10
	case 24:
		return 12
	case 32:
		return 14
	default:
		panic(fmt.Sprintf("aes: key length %d is not a valid tier", keyLen))
	}
}

func rotWord(w uint32) uint32 {
	return w<<8 | w>>24
}

func subWord(w uint32) uint32 {
	return uint32(sbox[w>>24])<<24 |
		uint32(sbox[w>>16&0xff])<<16 |
		uint32(sbox[w>>8&0xff])<<8 |
		uint32(sbox[w&0xff])
}

// ExpandKey runs the Rijndael key schedule over a 16-, 24- or 32-byte key and
// returns the expanded key material as 16*(rounds+1) bytes, each schedule
// word serialized big-endian.
func ExpandKey(key []byte) []byte {
	nk := len(key) / 4
	rounds := Rounds(len(key))

	w := make([]uint32, 4*(rounds+1))
	for i := range nk {
		w[i] = binary.BigEndian.Uint32(key[4*i:])
	}

	for i := nk; i < len(w); i++ {
		t := w[i-1]
		switch {
		case i%nk == 0:
			t = subWord(rotWord(t)) ^ uint32(rcon[i/nk-1])<<24
		case nk > 6 && i%nk == 4:
			// 256-bit keys substitute without rotating mid-group.
			t = subWord(t)
		}
		w[i] = w[i-nk] ^ t
	}

	expanded := make([]byte, 4*len(w))
	for i, v := range w {
		binary.BigEndian.PutUint32(expanded[4*i:], v)
	}
	return expanded
}

// buildRoundKeys slices expanded key material into per-round 16-byte keys.
func buildRoundKeys(expanded []byte) [][16]byte {
	roundKeys := make([][16]byte, len(expanded)/16)
	for r := range roundKeys {
		copy(roundKeys[r][:], expanded[r*16:])
	}
	return roundKeys
}
