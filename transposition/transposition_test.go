package transposition

import (
	"bytes"
	"fmt"
	"testing"
)

func TestKnownTransposition(t *testing.T) {
	// Key "ZEBRA" ranks columns A(4) B(2) E(1) R(3) Z(0), read order
	// 4,2,1,3,0. "WEAREDISCOVERED" in a 5-wide grid:
	//   W E A R E
	//   D I S C O
	//   V E R E D
	got := Encrypt("ZEBRA", []byte("WEAREDISCOVERED"))
	want := []byte("EOD" + "ASR" + "EIE" + "RCE" + "WDV")
	if !bytes.Equal(got, want) {
		t.Fatalf("Encrypt = %q, want %q", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	keys := []string{"", "X", "KEY", "ZEBRAS", "AABBA", "LONGERKEYTHANDATA"}
	for _, key := range keys {
		for n := 0; n <= 40; n++ {
			data := make([]byte, n)
			for i := range data {
				data[i] = byte('a' + i%26)
			}
			t.Run(fmt.Sprintf("key-%q-len-%d", key, n), func(t *testing.T) {
				ct := Encrypt(key, data)
				if len(ct) != n {
					t.Fatalf("ciphertext length = %d, want %d", len(ct), n)
				}
				pt := Decrypt(key, ct)
				if !bytes.Equal(pt, data) {
					t.Fatalf("Decrypt(Encrypt(p)) = %q, want %q", pt, data)
				}
			})
		}
	}
}

func TestPermutationOnly(t *testing.T) {
	data := []byte("the quick brown fox")
	ct := Encrypt("CIPHER", data)

	counts := func(b []byte) map[byte]int {
		m := make(map[byte]int)
		for _, c := range b {
			m[c]++
		}
		return m
	}
	got, want := counts(ct), counts(data)
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("byte %q count changed: got %d want %d", k, got[k], v)
		}
	}
}

func TestInputNotMutated(t *testing.T) {
	data := []byte("immutable input")
	orig := append([]byte(nil), data...)
	Encrypt("KEY", data)
	Decrypt("KEY", data)
	if !bytes.Equal(data, orig) {
		t.Fatal("cipher mutated its input")
	}
}
