package aes

import "bytes"

// PKCS7Pad pads data to a multiple of blockSize using PKCS#7: n bytes of
// value n are appended, 1 <= n <= blockSize.
func PKCS7Pad(data []byte, blockSize int) []byte {
	padding := blockSize - len(data)%blockSize
	padBytes := bytes.Repeat([]byte{byte(padding)}, padding)
	return append(data, padBytes...)
}

// PKCS7Unpad strips PKCS#7 padding by reading the final byte and removing
// that many trailing bytes. The pad bytes are deliberately not checked for
// consistency: these modes carry no integrity, and a tampered ciphertext
// unpads to garbage rather than an error. Callers wanting tamper detection
// need a MAC, not this function.
func PKCS7Unpad(data []byte) []byte {
	if len(data) == 0 {
		return data
	}
	n := int(data[len(data)-1])
	if n > len(data) {
		n = len(data)
	}
	return data[:len(data)-n]
}
