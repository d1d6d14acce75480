package digest

import "encoding/binary"

// SHA1Size is the SHA-1 digest length in bytes.
const SHA1Size = 20

// SHA1 computes the FIPS 180-4 SHA-1 digest of data.
func SHA1(data []byte) []byte {
	msg := mdPad(data, true)
	h := [5]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476, 0xc3d2e1f0}

	var w [80]uint32
	for blk := 0; blk < len(msg); blk += 64 {
		for i := range 16 {
			w[i] = binary.BigEndian.Uint32(msg[blk+4*i:])
		}
		for i := 16; i < 80; i++ {
			w[i] = rotl32(w[i-3]^w[i-8]^w[i-14]^w[i-16], 1)
		}

		a, b, c, d, e := h[0], h[1], h[2], h[3], h[4]
		for i := range 80 {
			var f, k uint32
			switch {
			case i < 20:
				f = (b & c) | (^b & d)
				k = 0x5a827999
			case i < 40:
				f = b ^ c ^ d
				k = 0x6ed9eba1
			case i < 60:
				f = (b & c) | (b & d) | (c & d)
				k = 0x8f1bbcdc
			default:
				f = b ^ c ^ d
				k = 0xca62c1d6
			}
			a, b, c, d, e = rotl32(a, 5)+f+e+k+w[i], a, rotl32(b, 30), c, d
		}

		h[0] += a
		h[1] += b
		h[2] += c
		h[3] += d
		h[4] += e
	}

	out := make([]byte, SHA1Size)
	for i, v := range h {
		binary.BigEndian.PutUint32(out[4*i:], v)
	}
	return out
}
