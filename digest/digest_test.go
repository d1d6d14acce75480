package digest

import (
	"bytes"
	stdmd5 "crypto/md5"
	stdsha1 "crypto/sha1"
	stdsha256 "crypto/sha256"
	stdsha512 "crypto/sha512"
	"encoding/hex"
	"testing"

	"golang.org/x/crypto/md4"
	"golang.org/x/crypto/sha3"
)

func checkHex(t *testing.T, name string, got []byte, want string) {
	t.Helper()
	if hex.EncodeToString(got) != want {
		t.Fatalf("%s mismatch: got %s want %s", name, hex.EncodeToString(got), want)
	}
}

func TestKnownVectors(t *testing.T) {
	tests := []struct {
		name string
		fn   func([]byte) []byte
		in   string
		want string
	}{
		{name: "MD4 empty", fn: MD4, in: "", want: "31d6cfe0d16ae931b73c59d7e0c089c0"},
		{name: "MD4 abc", fn: MD4, in: "abc", want: "a448017aaf21d8525fc10ae87aa6729d"},
		{name: "MD5 empty", fn: MD5, in: "", want: "d41d8cd98f00b204e9800998ecf8427e"},
		{name: "MD5 abc", fn: MD5, in: "abc", want: "900150983cd24fb0d6963f7d28e17f72"},
		{name: "SHA1 abc", fn: SHA1, in: "abc", want: "a9993e364706816aba3e25717850c26c9cd0d89d"},
		{name: "SHA1 empty", fn: SHA1, in: "", want: "da39a3ee5e6b4b0d3255bfef95601890afd80709"},
		{name: "SHA224 abc", fn: SHA224, in: "abc", want: "23097d223405d8228642a477bda255b32aadbce4bda0b3f7e36c9da7"},
		{name: "SHA512/256 empty", fn: SHA512_256, in: "", want: "c672b8d1ef56ed28ab87c3622c5114069bdd3ad7b8f9737498d0c01ecef0967a"},
		{name: "SHA3-224 empty", fn: SHA3_224, in: "", want: "6b4e03423667dbb73b6e15454f0eb1abd4597f9a1b078e3f5b5a6bc7"},
		{name: "SHA3-224 abc", fn: SHA3_224, in: "abc", want: "e642824c3f8cf24ad09234ee7d3c766fc9a3a5168d0c94ad73b46fdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkHex(t, tt.name, tt.fn([]byte(tt.in)), tt.want)
		})
	}
}

func testData(n int, seed byte) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte((i*31 + int(seed)) & 0xFF)
	}
	return data
}

// Lengths straddling every block and padding boundary of the 64- and
// 128-byte block hashes and the 144-byte Keccak rate.
var crossCheckLengths = []int{0, 1, 3, 55, 56, 57, 63, 64, 65, 111, 112, 113, 119, 120, 127, 128, 129, 143, 144, 145, 287, 288, 1000}

func TestCrossCheckReferenceImplementations(t *testing.T) {
	for _, n := range crossCheckLengths {
		data := testData(n, byte(n))

		t.Run("MD4", func(t *testing.T) {
			h := md4.New()
			h.Write(data)
			if want := h.Sum(nil); !bytes.Equal(MD4(data), want) {
				t.Fatalf("len %d: MD4 disagrees with x/crypto/md4", n)
			}
		})
		t.Run("MD5", func(t *testing.T) {
			want := stdmd5.Sum(data)
			if !bytes.Equal(MD5(data), want[:]) {
				t.Fatalf("len %d: MD5 disagrees with crypto/md5", n)
			}
		})
		t.Run("SHA1", func(t *testing.T) {
			want := stdsha1.Sum(data)
			if !bytes.Equal(SHA1(data), want[:]) {
				t.Fatalf("len %d: SHA1 disagrees with crypto/sha1", n)
			}
		})
		t.Run("SHA224", func(t *testing.T) {
			want := stdsha256.Sum224(data)
			if !bytes.Equal(SHA224(data), want[:]) {
				t.Fatalf("len %d: SHA224 disagrees with crypto/sha256", n)
			}
		})
		t.Run("SHA512_256", func(t *testing.T) {
			want := stdsha512.Sum512_256(data)
			if !bytes.Equal(SHA512_256(data), want[:]) {
				t.Fatalf("len %d: SHA512_256 disagrees with crypto/sha512", n)
			}
		})
		t.Run("SHA3_224", func(t *testing.T) {
			want := sha3.Sum224(data)
			if !bytes.Equal(SHA3_224(data), want[:]) {
				t.Fatalf("len %d: SHA3_224 disagrees with x/crypto/sha3", n)
			}
		})
	}
}

func TestDigestSizes(t *testing.T) {
	tests := []struct {
		name string
		fn   func([]byte) []byte
		want int
	}{
		{name: "MD4", fn: MD4, want: MD4Size},
		{name: "MD5", fn: MD5, want: MD5Size},
		{name: "SHA1", fn: SHA1, want: SHA1Size},
		{name: "SHA224", fn: SHA224, want: SHA224Size},
		{name: "SHA512_256", fn: SHA512_256, want: SHA512_256Size},
		{name: "SHA3_224", fn: SHA3_224, want: SHA3_224Size},
	}
	for _, tt := range tests {
		if got := len(tt.fn([]byte("size probe"))); got != tt.want {
			t.Fatalf("%s digest length = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestInputNotMutated(t *testing.T) {
	data := testData(100, 0x5c)
	orig := append([]byte(nil), data...)
	for _, fn := range []func([]byte) []byte{MD4, MD5, SHA1, SHA224, SHA512_256, SHA3_224} {
		fn(data)
	}
	if !bytes.Equal(data, orig) {
		t.Fatal("a digest function mutated its input")
	}
}

func BenchmarkDigests(b *testing.B) {
	data := testData(4096, 0x2a)
	benches := []struct {
		name string
		fn   func([]byte) []byte
	}{
		{name: "MD4", fn: MD4},
		{name: "MD5", fn: MD5},
		{name: "SHA1", fn: SHA1},
		{name: "SHA224", fn: SHA224},
		{name: "SHA512_256", fn: SHA512_256},
		{name: "SHA3_224", fn: SHA3_224},
	}
	for _, bb := range benches {
		b.Run(bb.name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(data)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				bb.fn(data)
			}
		})
	}
}
