// Package digest implements the hash functions of the library from scratch:
// MD4, MD5, SHA-1, SHA-224, SHA-512/256 and SHA3-224. Each is a one-shot
// transform that consumes the whole message and returns the digest bytes;
// none of them share state across calls.
//
// MD4 and MD5 are included for interoperability with legacy formats only and
// are cryptographically broken.
package digest

import (
	"encoding/binary"
	"math/bits"
)

// mdPad applies Merkle–Damgård strengthening for the 64-byte-block hashes:
// a 0x80 byte, zeros to 56 mod 64, then the message length in bits as a
// 64-bit integer, little-endian for the MD family and big-endian for SHA-1
// and SHA-2.
func mdPad(data []byte, bigEndian bool) []byte {
	bitLen := uint64(len(data)) * 8
	padLen := 56 - (len(data)+1)%64
	if padLen < 0 {
		padLen += 64
	}

	msg := make([]byte, len(data)+1+padLen+8)
	copy(msg, data)
	msg[len(data)] = 0x80
	if bigEndian {
		binary.BigEndian.PutUint64(msg[len(msg)-8:], bitLen)
	} else {
		binary.LittleEndian.PutUint64(msg[len(msg)-8:], bitLen)
	}
	return msg
}

func rotl32(v uint32, s int) uint32 { return bits.RotateLeft32(v, s) }
