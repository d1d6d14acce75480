package chacha20poly1305

import "encoding/binary"

// Poly1305 over 26-bit limbs: h and r live in five uint32 limbs, products
// accumulate in uint64, and multiples of 2^130 fold back in as ×5 since
// 2^130 ≡ 5 (mod 2^130-5).

const limbMask = 0x3ffffff

// poly1305Sum computes the one-time authenticator of msg under the 32-byte
// key (r ‖ s).
func poly1305Sum(key *[32]byte, msg []byte) [TagSize]byte {
	// Clamp r.
	r0 := binary.LittleEndian.Uint32(key[0:]) & 0x3ffffff
	r1 := (binary.LittleEndian.Uint32(key[3:]) >> 2) & 0x3ffff03
	r2 := (binary.LittleEndian.Uint32(key[6:]) >> 4) & 0x3ffc0ff
	r3 := (binary.LittleEndian.Uint32(key[9:]) >> 6) & 0x3f03fff
	r4 := (binary.LittleEndian.Uint32(key[12:]) >> 8) & 0x00fffff

	s1, s2, s3, s4 := r1*5, r2*5, r3*5, r4*5

	var h0, h1, h2, h3, h4 uint32

	processBlock := func(block []byte, hibit uint32) {
		h0 += binary.LittleEndian.Uint32(block[0:]) & limbMask
		h1 += (binary.LittleEndian.Uint32(block[3:]) >> 2) & limbMask
		h2 += (binary.LittleEndian.Uint32(block[6:]) >> 4) & limbMask
		h3 += (binary.LittleEndian.Uint32(block[9:]) >> 6) & limbMask
		h4 += (binary.LittleEndian.Uint32(block[12:]) >> 8) | hibit

		d0 := uint64(h0)*uint64(r0) + uint64(h1)*uint64(s4) + uint64(h2)*uint64(s3) + uint64(h3)*uint64(s2) + uint64(h4)*uint64(s1)
		d1 := uint64(h0)*uint64(r1) + uint64(h1)*uint64(r0) + uint64(h2)*uint64(s4) + uint64(h3)*uint64(s3) + uint64(h4)*uint64(s2)
		d2 := uint64(h0)*uint64(r2) + uint64(h1)*uint64(r1) + uint64(h2)*uint64(r0) + uint64(h3)*uint64(s4) + uint64(h4)*uint64(s3)
		d3 := uint64(h0)*uint64(r3) + uint64(h1)*uint64(r2) + uint64(h2)*uint64(r1) + uint64(h3)*uint64(r0) + uint64(h4)*uint64(s4)
		d4 := uint64(h0)*uint64(r4) + uint64(h1)*uint64(r3) + uint64(h2)*uint64(r2) + uint64(h3)*uint64(r1) + uint64(h4)*uint64(r0)

		c := uint32(d0 >> 26)
		h0 = uint32(d0) & limbMask
		d1 += uint64(c)
		c = uint32(d1 >> 26)
		h1 = uint32(d1) & limbMask
		d2 += uint64(c)
		c = uint32(d2 >> 26)
		h2 = uint32(d2) & limbMask
		d3 += uint64(c)
		c = uint32(d3 >> 26)
		h3 = uint32(d3) & limbMask
		d4 += uint64(c)
		c = uint32(d4 >> 26)
		h4 = uint32(d4) & limbMask
		h0 += c * 5
		c = h0 >> 26
		h0 &= limbMask
		h1 += c
	}

	for len(msg) >= TagSize {
		processBlock(msg[:TagSize], 1<<24)
		msg = msg[TagSize:]
	}
	if len(msg) > 0 {
		var block [TagSize]byte
		copy(block[:], msg)
		block[len(msg)] = 1
		processBlock(block[:], 0)
	}

	// Full carry and compute h + -p to select h mod p.
	c := h1 >> 26
	h1 &= limbMask
	h2 += c
	c = h2 >> 26
	h2 &= limbMask
	h3 += c
	c = h3 >> 26
	h3 &= limbMask
	h4 += c
	c = h4 >> 26
	h4 &= limbMask
	h0 += c * 5
	c = h0 >> 26
	h0 &= limbMask
	h1 += c

	g0 := h0 + 5
	c = g0 >> 26
	g0 &= limbMask
	g1 := h1 + c
	c = g1 >> 26
	g1 &= limbMask
	g2 := h2 + c
	c = g2 >> 26
	g2 &= limbMask
	g3 := h3 + c
	c = g3 >> 26
	g3 &= limbMask
	g4 := h4 + c - (1 << 26)

	// g is the answer iff the subtraction of p did not borrow.
	mask := (g4 >> 31) - 1
	h0 = h0&^mask | g0&mask
	h1 = h1&^mask | g1&mask
	h2 = h2&^mask | g2&mask
	h3 = h3&^mask | g3&mask
	h4 = h4&^mask | g4&mask

	// Repack 26-bit limbs into 32-bit words.
	h0 = h0 | h1<<26
	h1 = h1>>6 | h2<<20
	h2 = h2>>12 | h3<<14
	h3 = h3>>18 | h4<<8

	// Add s mod 2^128.
	f := uint64(h0) + uint64(binary.LittleEndian.Uint32(key[16:]))
	h0 = uint32(f)
	f = uint64(h1) + uint64(binary.LittleEndian.Uint32(key[20:])) + f>>32
	h1 = uint32(f)
	f = uint64(h2) + uint64(binary.LittleEndian.Uint32(key[24:])) + f>>32
	h2 = uint32(f)
	f = uint64(h3) + uint64(binary.LittleEndian.Uint32(key[28:])) + f>>32
	h3 = uint32(f)

	var tag [TagSize]byte
	binary.LittleEndian.PutUint32(tag[0:], h0)
	binary.LittleEndian.PutUint32(tag[4:], h1)
	binary.LittleEndian.PutUint32(tag[8:], h2)
	binary.LittleEndian.PutUint32(tag[12:], h3)
	return tag
}
