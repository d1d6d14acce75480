package digest

import "encoding/binary"

// MD4Size is the MD4 digest length in bytes.
const MD4Size = 16

var (
	md4Shift1 = [4]int{3, 7, 11, 19}
	md4Shift2 = [4]int{3, 5, 9, 13}
	md4Shift3 = [4]int{3, 9, 11, 15}

	md4Index2 = [16]int{0, 4, 8, 12, 1, 5, 9, 13, 2, 6, 10, 14, 3, 7, 11, 15}
	md4Index3 = [16]int{0, 8, 4, 12, 2, 10, 6, 14, 1, 9, 5, 13, 3, 11, 7, 15}
)

// MD4 computes the RFC 1320 digest of data.
func MD4(data []byte) []byte {
	msg := mdPad(data, false)
	a, b, c, d := uint32(0x67452301), uint32(0xefcdab89), uint32(0x98badcfe), uint32(0x10325476)

	var x [16]uint32
	for blk := 0; blk < len(msg); blk += 64 {
		for i := range 16 {
			x[i] = binary.LittleEndian.Uint32(msg[blk+4*i:])
		}
		aa, bb, cc, dd := a, b, c, d

		for i := range 16 {
			f := (b & c) | (^b & d)
			a = rotl32(a+f+x[i], md4Shift1[i%4])
			a, b, c, d = d, a, b, c
		}
		for i := range 16 {
			g := (b & c) | (b & d) | (c & d)
			a = rotl32(a+g+x[md4Index2[i]]+0x5a827999, md4Shift2[i%4])
			a, b, c, d = d, a, b, c
		}
		for i := range 16 {
			h := b ^ c ^ d
			a = rotl32(a+h+x[md4Index3[i]]+0x6ed9eba1, md4Shift3[i%4])
			a, b, c, d = d, a, b, c
		}

		a, b, c, d = a+aa, b+bb, c+cc, d+dd
	}

	out := make([]byte, MD4Size)
	binary.LittleEndian.PutUint32(out[0:], a)
	binary.LittleEndian.PutUint32(out[4:], b)
	binary.LittleEndian.PutUint32(out[8:], c)
	binary.LittleEndian.PutUint32(out[12:], d)
	return out
}
