package digest

import (
	"encoding/binary"
	"math/bits"
)

// SHA3-224 is built on the Keccak-f[1600] permutation: a 25-lane state of
// 64-bit words, absorbed and squeezed at a rate of 1600-2*224 bits (144
// bytes), with the SHA-3 domain byte 0x06 starting the multi-rate padding.

// SHA3_224Size is the SHA3-224 digest length in bytes.
const SHA3_224Size = 28

const sha3_224Rate = 144

var keccakRC = [24]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808a, 0x8000000080008000,
	0x000000000000808b, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008a, 0x0000000000000088, 0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800a, 0x800000008000000a,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// Rotation offsets for lane x+5y.
var keccakRho = [25]int{
	0, 1, 62, 28, 27,
	36, 44, 6, 55, 20,
	3, 10, 43, 25, 39,
	41, 45, 15, 21, 8,
	18, 2, 61, 56, 14,
}

func keccakF1600(a *[25]uint64) {
	var c, d [5]uint64
	var b [25]uint64

	for round := range 24 {
		// Theta.
		for x := range 5 {
			c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
		}
		for x := range 5 {
			d[x] = c[(x+4)%5] ^ bits.RotateLeft64(c[(x+1)%5], 1)
		}
		for x := range 5 {
			for y := range 5 {
				a[x+5*y] ^= d[x]
			}
		}

		// Rho and pi.
		for x := range 5 {
			for y := range 5 {
				b[y+5*((2*x+3*y)%5)] = bits.RotateLeft64(a[x+5*y], keccakRho[x+5*y])
			}
		}

		// Chi.
		for x := range 5 {
			for y := range 5 {
				a[x+5*y] = b[x+5*y] ^ (^b[(x+1)%5+5*y] & b[(x+2)%5+5*y])
			}
		}

		// Iota.
		a[0] ^= keccakRC[round]
	}
}

// SHA3_224 computes the FIPS 202 SHA3-224 digest of data.
func SHA3_224(data []byte) []byte {
	var state [25]uint64

	// Absorb full rate blocks.
	for len(data) >= sha3_224Rate {
		for i := range sha3_224Rate / 8 {
			state[i] ^= binary.LittleEndian.Uint64(data[8*i:])
		}
		keccakF1600(&state)
		data = data[sha3_224Rate:]
	}

	// Final block with multi-rate padding: domain byte 0x06, zeros, 0x80 in
	// the last rate position. A remainder of rate-1 bytes folds both pad
	// bytes into one.
	var block [sha3_224Rate]byte
	copy(block[:], data)
	block[len(data)] = 0x06
	block[sha3_224Rate-1] |= 0x80
	for i := range sha3_224Rate / 8 {
		state[i] ^= binary.LittleEndian.Uint64(block[8*i:])
	}
	keccakF1600(&state)

	// Squeeze: 28 bytes fit inside one rate block.
	out := make([]byte, SHA3_224Size)
	var lane [8]byte
	for i := 0; 8*i < SHA3_224Size; i++ {
		binary.LittleEndian.PutUint64(lane[:], state[i])
		copy(out[8*i:], lane[:])
	}
	return out
}
