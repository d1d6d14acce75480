package aes

import "crypto/rand"

// IVSize is the IV length for CBC, CFB and OFB. NonceSize is the CTR nonce
// length; the remaining four counter-block bytes carry the block counter.
const (
	IVSize    = 16
	NonceSize = 12
)

// NormalizeKey conforms raw key material to an AES tier: short keys are
// zero-padded up to the next of 16, 24 or 32 bytes, anything longer than 32
// is truncated to 32. Truncation discards trailing key bytes; this is the
// documented recovery for oversized input, never an error.
func NormalizeKey(key []byte) []byte {
	for _, tier := range []int{16, 24, 32} {
		if len(key) <= tier {
			out := make([]byte, tier)
			copy(out, key)
			return out
		}
	}
	out := make([]byte, 32)
	copy(out, key)
	return out
}

// normalizeSize zero-pads or truncates b to exactly n bytes.
func normalizeSize(b []byte, n int) []byte {
	out := make([]byte, n)
	copy(out, b)
	return out
}

// randBytes returns n bytes from the platform CSPRNG. Used only when the
// caller omits IV or nonce material.
func randBytes(n int) []byte {
	b := make([]byte, n)
	rand.Read(b)
	return b
}
