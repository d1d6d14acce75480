package aes

import "fmt"

// BlockSize is the AES block size in bytes.
const BlockSize = 16

// The state is a flat 16-byte array in FIPS-197 order: byte n sits at row
// n%4, column n/4, so each column occupies four consecutive bytes and row r
// is the index set {r, r+4, r+8, r+12}.

func subBytes(state []byte, inv bool) {
	box := &sbox
	if inv {
		box = &rsbox
	}
	for i := range state {
		state[i] = box[state[i]]
	}
}

// shiftRows rotates row r left by r positions (forward) or right by r
// positions (inverse), expressed as explicit reassignments over the flat
// state.
func shiftRows(state []byte, inv bool) {
	if inv {
		state[1], state[5], state[9], state[13] = state[13], state[1], state[5], state[9]
		state[2], state[6], state[10], state[14] = state[10], state[14], state[2], state[6]
		state[3], state[7], state[11], state[15] = state[7], state[11], state[15], state[3]
		return
	}

	state[1], state[5], state[9], state[13] = state[5], state[9], state[13], state[1]
	state[2], state[6], state[10], state[14] = state[10], state[14], state[2], state[6]
	state[3], state[7], state[11], state[15] = state[15], state[3], state[7], state[11]
}

func mixColumn(col []byte, inv bool) {
	a0, a1, a2, a3 := col[0], col[1], col[2], col[3]
	if inv {
		col[0] = mul14Table[a0] ^ mul11Table[a1] ^ mul13Table[a2] ^ mul9Table[a3]
		col[1] = mul9Table[a0] ^ mul14Table[a1] ^ mul11Table[a2] ^ mul13Table[a3]
		col[2] = mul13Table[a0] ^ mul9Table[a1] ^ mul14Table[a2] ^ mul11Table[a3]
		col[3] = mul11Table[a0] ^ mul13Table[a1] ^ mul9Table[a2] ^ mul14Table[a3]
		return
	}
	col[0] = mul2Table[a0] ^ mul3Table[a1] ^ a2 ^ a3
	col[1] = a0 ^ mul2Table[a1] ^ mul3Table[a2] ^ a3
	col[2] = a0 ^ a1 ^ mul2Table[a2] ^ mul3Table[a3]
	col[3] = mul3Table[a0] ^ a1 ^ a2 ^ mul2Table[a3]
}

func mixColumns(state []byte, inv bool) {
	mixColumn(state[0:4], inv)
	mixColumn(state[4:8], inv)
	mixColumn(state[8:12], inv)
	mixColumn(state[12:16], inv)
}

func addRoundKey(state []byte, roundKey *[16]byte) {
	for i := range 16 {
		state[i] ^= roundKey[i]
	}
}

// encryptBlock applies the full forward round sequence to one 16-byte block.
// Block length is a caller contract; a short slice is a programming error and
// panics rather than truncating.
func encryptBlock(dst, src []byte, roundKeys [][16]byte) {
	if len(src) != BlockSize || len(dst) < BlockSize {
		panic(fmt.Sprintf("aes: block must be %d bytes, got src=%d dst=%d", BlockSize, len(src), len(dst)))
	}
	rounds := len(roundKeys) - 1

	var state [16]byte
	copy(state[:], src)

	addRoundKey(state[:], &roundKeys[0])

	for i := 1; i < rounds; i++ {
		subBytes(state[:], false)
		shiftRows(state[:], false)
		mixColumns(state[:], false)
		addRoundKey(state[:], &roundKeys[i])
	}

	// Final round (no mixColumns).
	subBytes(state[:], false)
	shiftRows(state[:], false)
	addRoundKey(state[:], &roundKeys[rounds])

	copy(dst, state[:])
}

// decryptBlock mirrors encryptBlock with the inverse transforms in reverse
// round order.
func decryptBlock(dst, src []byte, roundKeys [][16]byte) {
	if len(src) != BlockSize || len(dst) < BlockSize {
		panic(fmt.Sprintf("aes: block must be %d bytes, got src=%d dst=%d", BlockSize, len(src), len(dst)))
	}
	rounds := len(roundKeys) - 1

	var state [16]byte
	copy(state[:], src)

	addRoundKey(state[:], &roundKeys[rounds])

	for i := rounds - 1; i > 0; i-- {
		shiftRows(state[:], true)
		subBytes(state[:], true)
		addRoundKey(state[:], &roundKeys[i])
		mixColumns(state[:], true)
	}

	shiftRows(state[:], true)
	subBytes(state[:], true)
	addRoundKey(state[:], &roundKeys[0])

	copy(dst, state[:])
}

// Cipher holds the round keys expanded from one normalized key.
type Cipher struct {
	roundKeys [][16]byte
}

// NewCipher normalizes key to an AES tier (see NormalizeKey) and runs the key
// schedule once. The returned cipher is read-only and safe for concurrent
// block calls.
func NewCipher(key []byte) *Cipher {
	k := NormalizeKey(key)
	return &Cipher{roundKeys: buildRoundKeys(ExpandKey(k))}
}

// EncryptBlock transforms exactly one 16-byte block from src into dst.
func (c *Cipher) EncryptBlock(dst, src []byte) {
	encryptBlock(dst, src, c.roundKeys)
}

// DecryptBlock inverts EncryptBlock for one 16-byte block.
func (c *Cipher) DecryptBlock(dst, src []byte) {
	decryptBlock(dst, src, c.roundKeys)
}
