package digest

import (
	"encoding/binary"
	"math"
)

// MD5Size is the MD5 digest length in bytes.
const MD5Size = 16

var md5Shift = [64]int{
	7, 12, 17, 22, 7, 12, 17, 22, 7, 12, 17, 22, 7, 12, 17, 22,
	5, 9, 14, 20, 5, 9, 14, 20, 5, 9, 14, 20, 5, 9, 14, 20,
	4, 11, 16, 23, 4, 11, 16, 23, 4, 11, 16, 23, 4, 11, 16, 23,
	6, 10, 15, 21, 6, 10, 15, 21, 6, 10, 15, 21, 6, 10, 15, 21,
}

// md5T is the RFC 1321 sine-derived constant table,
// T[i] = floor(2^32 * |sin(i+1)|).
var md5T = buildMD5T()

func buildMD5T() (t [64]uint32) {
	for i := range t {
		t[i] = uint32(math.Floor(math.Abs(math.Sin(float64(i+1))) * (1 << 32)))
	}
	return t
}

// MD5 computes the RFC 1321 digest of data.
func MD5(data []byte) []byte {
	msg := mdPad(data, false)
	a, b, c, d := uint32(0x67452301), uint32(0xefcdab89), uint32(0x98badcfe), uint32(0x10325476)

	var x [16]uint32
	for blk := 0; blk < len(msg); blk += 64 {
		for i := range 16 {
			x[i] = binary.LittleEndian.Uint32(msg[blk+4*i:])
		}
		aa, bb, cc, dd := a, b, c, d

		for i := range 64 {
			var f uint32
			var g int
			switch {
			case i < 16:
				f = (b & c) | (^b & d)
				g = i
			case i < 32:
				f = (d & b) | (^d & c)
				g = (5*i + 1) % 16
			case i < 48:
				f = b ^ c ^ d
				g = (3*i + 5) % 16
			default:
				f = c ^ (b | ^d)
				g = (7 * i) % 16
			}
			a, d, c, b = d, c, b, b+rotl32(a+f+md5T[i]+x[g], md5Shift[i])
		}

		a, b, c, d = a+aa, b+bb, c+cc, d+dd
	}

	out := make([]byte, MD5Size)
	binary.LittleEndian.PutUint32(out[0:], a)
	binary.LittleEndian.PutUint32(out[4:], b)
	binary.LittleEndian.PutUint32(out[8:], c)
	binary.LittleEndian.PutUint32(out[12:], d)
	return out
}
