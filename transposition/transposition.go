// Package transposition implements a classical keyed columnar transposition
// cipher over bytes. It permutes positions only and provides no real
// secrecy; it exists for interoperability with classical-cipher tooling.
package transposition

import "sort"

// columnOrder maps each column index to its read position: columns are
// ranked by their key byte, ties broken by position, so duplicate key
// characters behave deterministically.
func columnOrder(key string) []int {
	order := make([]int, len(key))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return key[order[a]] < key[order[b]]
	})
	return order
}

// columnLength returns how many bytes column col holds when n bytes are
// written row-wise into width columns.
func columnLength(n, width, col int) int {
	length := n / width
	if col < n%width {
		length++
	}
	return length
}

// Encrypt writes data row-wise into a grid of len(key) columns and reads the
// columns in key order. The grid is ragged; no padding bytes are added. An
// empty key or single-column key returns the data unchanged.
func Encrypt(key string, data []byte) []byte {
	out := make([]byte, len(data))
	if len(key) < 2 {
		copy(out, data)
		return out
	}

	width := len(key)
	pos := 0
	for _, col := range columnOrder(key) {
		for row := col; row < len(data); row += width {
			out[pos] = data[row]
			pos++
		}
	}
	return out
}

// Decrypt inverts Encrypt under the same key.
func Decrypt(key string, data []byte) []byte {
	out := make([]byte, len(data))
	if len(key) < 2 {
		copy(out, data)
		return out
	}

	width := len(key)
	pos := 0
	for _, col := range columnOrder(key) {
		n := columnLength(len(data), width, col)
		for row := 0; row < n; row++ {
			out[col+row*width] = data[pos]
			pos++
		}
	}
	return out
}
