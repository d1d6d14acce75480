// Package aes implements the Rijndael block cipher and its ECB, CBC, CFB,
// OFB and CTR modes of operation from scratch, without crypto/aes.
//
// The package trades hardware acceleration and constant-time execution for a
// dependency-free, byte-exact implementation of FIPS-197. None of the modes
// authenticate: a corrupted ciphertext or wrong key silently decrypts to
// incorrect plaintext.
package aes

import (
	"encoding/binary"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// parallelThreshold is the block count above which ECB and CTR fan out
// across goroutines. Below it the goroutine setup costs more than the work.
const parallelThreshold = 128

// forEachBlock runs fn for block indexes 0..n-1. ECB and CTR blocks are
// independently computable, so large inputs are split across GOMAXPROCS
// workers; fn must therefore be safe for concurrent calls on distinct
// indexes.
func forEachBlock(n int, fn func(i int)) {
	workers := runtime.GOMAXPROCS(0)
	if n < parallelThreshold || workers == 1 {
		for i := range n {
			fn(i)
		}
		return
	}

	var g errgroup.Group
	chunk := (n + workers - 1) / workers
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		g.Go(func() error {
			for i := start; i < end; i++ {
				fn(i)
			}
			return nil
		})
	}
	g.Wait()
}

// EncryptECB encrypts plaintext block by block with no chaining. When pad is
// true the input is PKCS#7-padded first; otherwise its length must already
// be a multiple of the block size. Identical plaintext blocks produce
// identical ciphertext blocks under the same key.
func EncryptECB(key, plaintext []byte, pad bool) ([]byte, error) {
	if pad {
		plaintext = PKCS7Pad(plaintext, BlockSize)
	}
	if len(plaintext)%BlockSize != 0 {
		return nil, fmt.Errorf("aes: plaintext length %d is not a multiple of the block size", len(plaintext))
	}

	c := NewCipher(key)
	ciphertext := make([]byte, len(plaintext))
	forEachBlock(len(plaintext)/BlockSize, func(i int) {
		off := i * BlockSize
		c.EncryptBlock(ciphertext[off:off+BlockSize], plaintext[off:off+BlockSize])
	})
	return ciphertext, nil
}

// DecryptECB inverts EncryptECB. When pad is true the PKCS#7 padding is
// stripped from the result.
func DecryptECB(key, ciphertext []byte, pad bool) ([]byte, error) {
	if len(ciphertext)%BlockSize != 0 {
		return nil, fmt.Errorf("aes: ciphertext length %d is not a multiple of the block size", len(ciphertext))
	}

	c := NewCipher(key)
	plaintext := make([]byte, len(ciphertext))
	forEachBlock(len(ciphertext)/BlockSize, func(i int) {
		off := i * BlockSize
		c.DecryptBlock(plaintext[off:off+BlockSize], ciphertext[off:off+BlockSize])
	})
	if pad {
		plaintext = PKCS7Unpad(plaintext)
	}
	return plaintext, nil
}

// EncryptCBC encrypts plaintext in cipher block chaining mode and returns
// iv ‖ ciphertext. A nil iv is drawn from crypto/rand; any other iv is
// zero-padded or truncated to 16 bytes.
func EncryptCBC(key, plaintext, iv []byte, pad bool) ([]byte, error) {
	if pad {
		plaintext = PKCS7Pad(plaintext, BlockSize)
	}
	if len(plaintext)%BlockSize != 0 {
		return nil, fmt.Errorf("aes: plaintext length %d is not a multiple of the block size", len(plaintext))
	}
	if iv == nil {
		iv = randBytes(IVSize)
	} else {
		iv = normalizeSize(iv, IVSize)
	}

	c := NewCipher(key)
	out := make([]byte, IVSize+len(plaintext))
	copy(out, iv)

	prev := out[:IVSize]
	var block [BlockSize]byte
	for i := 0; i < len(plaintext); i += BlockSize {
		for j := range BlockSize {
			block[j] = plaintext[i+j] ^ prev[j]
		}
		c.EncryptBlock(out[IVSize+i:], block[:])
		prev = out[IVSize+i : IVSize+i+BlockSize]
	}
	return out, nil
}

// DecryptCBC recovers the IV from the first 16 bytes of ciphertext and
// decrypts the remainder.
func DecryptCBC(key, ciphertext []byte, pad bool) ([]byte, error) {
	if len(ciphertext) < IVSize {
		return nil, fmt.Errorf("aes: ciphertext too short for a prepended IV: %d bytes", len(ciphertext))
	}
	iv, body := ciphertext[:IVSize], ciphertext[IVSize:]
	if len(body)%BlockSize != 0 {
		return nil, fmt.Errorf("aes: ciphertext length %d is not a multiple of the block size", len(body))
	}

	c := NewCipher(key)
	plaintext := make([]byte, len(body))
	prev := iv
	for i := 0; i < len(body); i += BlockSize {
		c.DecryptBlock(plaintext[i:], body[i:i+BlockSize])
		for j := range BlockSize {
			plaintext[i+j] ^= prev[j]
		}
		prev = body[i : i+BlockSize]
	}
	if pad {
		plaintext = PKCS7Unpad(plaintext)
	}
	return plaintext, nil
}

// EncryptCFB encrypts plaintext in full-block cipher feedback mode and
// returns iv ‖ ciphertext. The keystream is XORed byte for byte, so any
// plaintext length is accepted.
func EncryptCFB(key, plaintext, iv []byte) ([]byte, error) {
	if iv == nil {
		iv = randBytes(IVSize)
	} else {
		iv = normalizeSize(iv, IVSize)
	}

	c := NewCipher(key)
	out := make([]byte, IVSize+len(plaintext))
	copy(out, iv)

	register := normalizeSize(iv, IVSize)
	var keystream [BlockSize]byte
	for i := 0; i < len(plaintext); i += BlockSize {
		c.EncryptBlock(keystream[:], register)
		n := min(BlockSize, len(plaintext)-i)
		for j := range n {
			out[IVSize+i+j] = plaintext[i+j] ^ keystream[j]
		}
		// Feedback is the ciphertext block just produced.
		copy(register, out[IVSize+i:IVSize+i+n])
	}
	return out, nil
}

// DecryptCFB inverts EncryptCFB. The forward block transform rebuilds the
// keystream from the previous ciphertext block; the inverse cipher is never
// used.
func DecryptCFB(key, ciphertext []byte) ([]byte, error) {
	if len(ciphertext) < IVSize {
		return nil, fmt.Errorf("aes: ciphertext too short for a prepended IV: %d bytes", len(ciphertext))
	}
	iv, body := ciphertext[:IVSize], ciphertext[IVSize:]

	c := NewCipher(key)
	plaintext := make([]byte, len(body))
	register := normalizeSize(iv, IVSize)
	var keystream [BlockSize]byte
	for i := 0; i < len(body); i += BlockSize {
		c.EncryptBlock(keystream[:], register)
		n := min(BlockSize, len(body)-i)
		for j := range n {
			plaintext[i+j] = body[i+j] ^ keystream[j]
		}
		copy(register, body[i:i+n])
	}
	return plaintext, nil
}

// EncryptOFB encrypts plaintext in output feedback mode and returns
// iv ‖ ciphertext. The feedback register depends only on the key and IV, so
// encryption and decryption share one code path.
func EncryptOFB(key, plaintext, iv []byte) ([]byte, error) {
	if iv == nil {
		iv = randBytes(IVSize)
	} else {
		iv = normalizeSize(iv, IVSize)
	}
	out := make([]byte, IVSize+len(plaintext))
	copy(out, iv)
	xorOFB(key, iv, out[IVSize:], plaintext)
	return out, nil
}

// DecryptOFB inverts EncryptOFB.
func DecryptOFB(key, ciphertext []byte) ([]byte, error) {
	if len(ciphertext) < IVSize {
		return nil, fmt.Errorf("aes: ciphertext too short for a prepended IV: %d bytes", len(ciphertext))
	}
	iv, body := ciphertext[:IVSize], ciphertext[IVSize:]
	plaintext := make([]byte, len(body))
	xorOFB(key, iv, plaintext, body)
	return plaintext, nil
}

func xorOFB(key, iv, dst, src []byte) {
	c := NewCipher(key)
	register := normalizeSize(iv, IVSize)
	for i := 0; i < len(src); i += BlockSize {
		c.EncryptBlock(register, register)
		n := min(BlockSize, len(src)-i)
		for j := range n {
			dst[i+j] = src[i+j] ^ register[j]
		}
	}
}

// EncryptCTR encrypts plaintext in counter mode and returns
// nonce ‖ ciphertext. Block i is XORed with the encryption of
// nonce ‖ BE32(initialCounter+i). A nil nonce is drawn from crypto/rand;
// any other nonce is zero-padded or truncated to 12 bytes.
func EncryptCTR(key, plaintext, nonce []byte, initialCounter uint32) ([]byte, error) {
	if nonce == nil {
		nonce = randBytes(NonceSize)
	} else {
		nonce = normalizeSize(nonce, NonceSize)
	}
	out := make([]byte, NonceSize+len(plaintext))
	copy(out, nonce)
	xorCTR(key, nonce, initialCounter, out[NonceSize:], plaintext)
	return out, nil
}

// DecryptCTR recovers the nonce from the first 12 bytes of ciphertext and
// decrypts the remainder. initialCounter must match the value used to
// encrypt.
func DecryptCTR(key, ciphertext []byte, initialCounter uint32) ([]byte, error) {
	if len(ciphertext) < NonceSize {
		return nil, fmt.Errorf("aes: ciphertext too short for a prepended nonce: %d bytes", len(ciphertext))
	}
	nonce, body := ciphertext[:NonceSize], ciphertext[NonceSize:]
	plaintext := make([]byte, len(body))
	xorCTR(key, nonce, initialCounter, plaintext, body)
	return plaintext, nil
}

// xorCTR applies the counter-mode keystream to src. Every counter block is
// independently computable from the block index, so the work parallelizes
// like ECB.
func xorCTR(key, nonce []byte, initialCounter uint32, dst, src []byte) {
	c := NewCipher(key)
	blocks := (len(src) + BlockSize - 1) / BlockSize
	forEachBlock(blocks, func(i int) {
		var counterBlock, keystream [BlockSize]byte
		copy(counterBlock[:], nonce)
		binary.BigEndian.PutUint32(counterBlock[NonceSize:], initialCounter+uint32(i))
		c.EncryptBlock(keystream[:], counterBlock[:])

		off := i * BlockSize
		n := min(BlockSize, len(src)-off)
		for j := range n {
			dst[off+j] = src[off+j] ^ keystream[j]
		}
	})
}
