package aes

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex %q: %v", s, err)
	}
	return b
}

func checkHex(t *testing.T, name string, got []byte, want string) {
	t.Helper()
	if hex.EncodeToString(got) != want {
		t.Fatalf("%s mismatch: got %s want %s", name, hex.EncodeToString(got), want)
	}
}

// slowGFMul is the bit-by-bit shift-and-reduce reference multiply.
func slowGFMul(a, b byte) byte {
	var p byte
	for range 8 {
		if b&1 != 0 {
			p ^= a
		}
		hiBit := a & 0x80
		a <<= 1
		if hiBit != 0 {
			a ^= 0x1b
		}
		b >>= 1
	}
	return p
}

func TestGFMulAgainstReference(t *testing.T) {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			got := gfMul(byte(a), byte(b))
			want := slowGFMul(byte(a), byte(b))
			if got != want {
				t.Fatalf("gfMul(%#02x, %#02x) = %#02x, want %#02x", a, b, got, want)
			}
		}
	}
}

func TestGFMulKnownProducts(t *testing.T) {
	tests := []struct {
		a, b, want byte
	}{
		{0x57, 0x83, 0xc1},
		{0x57, 0x13, 0xfe},
		{0x00, 0xff, 0x00},
		{0xff, 0x00, 0x00},
		{0x01, 0xab, 0xab},
	}
	for _, tt := range tests {
		if got := gfMul(tt.a, tt.b); got != tt.want {
			t.Fatalf("gfMul(%#02x, %#02x) = %#02x, want %#02x", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSBoxInverse(t *testing.T) {
	for i := 0; i < 256; i++ {
		if rsbox[sbox[i]] != byte(i) {
			t.Fatalf("rsbox[sbox[%#02x]] = %#02x", i, rsbox[sbox[i]])
		}
		if sbox[rsbox[i]] != byte(i) {
			t.Fatalf("sbox[rsbox[%#02x]] = %#02x", i, sbox[rsbox[i]])
		}
	}
}

func TestExpandKeyLength(t *testing.T) {
	tests := []struct {
		keyLen, rounds int
	}{
		{16, 10},
		{24, 12},
		{32, 14},
	}
	for _, tt := range tests {
		key := make([]byte, tt.keyLen)
		expanded := ExpandKey(key)
		if want := 16 * (tt.rounds + 1); len(expanded) != want {
			t.Fatalf("len(ExpandKey(%d-byte key)) = %d, want %d", tt.keyLen, len(expanded), want)
		}
	}
}

// Last round key of the FIPS-197 Appendix A.1 expansion example.
func TestExpandKeyVector(t *testing.T) {
	key := mustHex(t, "2b7e151628aed2a6abf7158809cf4f3c")
	expanded := ExpandKey(key)
	checkHex(t, "round key 10", expanded[160:176], "d014f9a8c9ee2589e13f0cc8b6630ca6")
}

// FIPS-197 Appendix C example vectors, one per key tier.
func TestCipherKnownAnswers(t *testing.T) {
	plain := "00112233445566778899aabbccddeeff"
	tests := []struct {
		name, key, want string
	}{
		{name: "AES-128", key: "000102030405060708090a0b0c0d0e0f", want: "69c4e0d86a7b0430d8cdb78070b4c55a"},
		{name: "AES-192", key: "000102030405060708090a0b0c0d0e0f1011121314151617", want: "dda97ca4864cdfe06eaf70a0ec0d7191"},
		{name: "AES-256", key: "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f", want: "8ea2b7ca516745bfeafc49904b496089"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCipher(mustHex(t, tt.key))
			got := make([]byte, BlockSize)
			c.EncryptBlock(got, mustHex(t, plain))
			checkHex(t, "ciphertext", got, tt.want)

			back := make([]byte, BlockSize)
			c.DecryptBlock(back, got)
			checkHex(t, "plaintext", back, plain)
		})
	}
}

func TestEncryptBlockPanicsOnShortInput(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("EncryptBlock(short input) did not panic")
		}
	}()
	c := NewCipher(make([]byte, 16))
	c.EncryptBlock(make([]byte, 16), make([]byte, 15))
}

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		name    string
		in      []byte
		wantLen int
	}{
		{name: "empty", in: nil, wantLen: 16},
		{name: "short", in: []byte("secret"), wantLen: 16},
		{name: "exact 16", in: bytes.Repeat([]byte{1}, 16), wantLen: 16},
		{name: "17 pads to 24", in: bytes.Repeat([]byte{1}, 17), wantLen: 24},
		{name: "exact 24", in: bytes.Repeat([]byte{1}, 24), wantLen: 24},
		{name: "25 pads to 32", in: bytes.Repeat([]byte{1}, 25), wantLen: 32},
		{name: "exact 32", in: bytes.Repeat([]byte{1}, 32), wantLen: 32},
		{name: "40 truncates to 32", in: bytes.Repeat([]byte{1}, 40), wantLen: 32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeKey(tt.in)
			if len(got) != tt.wantLen {
				t.Fatalf("len(NormalizeKey) = %d, want %d", len(got), tt.wantLen)
			}
			n := min(len(tt.in), tt.wantLen)
			if !bytes.Equal(got[:n], tt.in[:n]) {
				t.Fatalf("NormalizeKey changed the leading key bytes")
			}
			for _, b := range got[n:] {
				if b != 0 {
					t.Fatalf("NormalizeKey pad byte = %#02x, want 0", b)
				}
			}
		})
	}
}

func TestPKCS7PadUnpadIdempotence(t *testing.T) {
	for n := 0; n <= 64; n++ {
		plain := bytes.Repeat([]byte{byte(n + 1)}, n)
		padded := PKCS7Pad(append([]byte(nil), plain...), BlockSize)
		if len(padded)%BlockSize != 0 {
			t.Fatalf("len %d: padded length %d not a block multiple", n, len(padded))
		}
		if got := PKCS7Unpad(padded); !bytes.Equal(got, plain) {
			t.Fatalf("len %d: unpad(pad(p)) != p", n)
		}
	}
}

// Unpad trusts the final byte without checking the pad run; inconsistent
// padding strips silently instead of failing.
func TestPKCS7UnpadTrustsFinalByte(t *testing.T) {
	data := append(bytes.Repeat([]byte{0x41}, 13), 0x01, 0x02, 0x03)
	if got := PKCS7Unpad(data); len(got) != 13 {
		t.Fatalf("PKCS7Unpad stripped %d bytes, want 3", 16-len(got))
	}

	oversized := []byte{0x41, 0xff}
	if got := PKCS7Unpad(oversized); len(got) != 0 {
		t.Fatalf("PKCS7Unpad(final byte > length) = %d bytes, want 0", len(got))
	}

	if got := PKCS7Unpad(nil); len(got) != 0 {
		t.Fatalf("PKCS7Unpad(nil) = %d bytes, want 0", len(got))
	}
}

func TestRoundsPanicsOnBadTier(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Rounds(20) did not panic")
		}
	}()
	Rounds(20)
}

func TestShiftRowsRoundTrip(t *testing.T) {
	state := []byte("0123456789abcdef")
	want := strings.Clone(string(state))
	shiftRows(state, false)
	shiftRows(state, true)
	if string(state) != want {
		t.Fatalf("inverse shiftRows did not undo forward: %q", state)
	}
}

func TestMixColumnsRoundTrip(t *testing.T) {
	state := mustHex(t, "d4bf5d30e0b452aeb84111f11e2798e5")
	want := append([]byte(nil), state...)
	mixColumns(state, false)
	mixColumns(state, true)
	if !bytes.Equal(state, want) {
		t.Fatalf("inverse mixColumns did not undo forward: %x", state)
	}
}
