// Package pkcs7 implements PKCS#7 block padding as required by CBC mode.
package pkcs7

import (
	"errors"
	"fmt"
)

// ErrInvalidPadding is returned by Unpad when the trailing padding is
// malformed. It indicates cipher misuse or data corruption and is never
// recovered from.
var ErrInvalidPadding = errors.New("invalid PKCS#7 padding")

// Pad appends k bytes of value k so that the result is a multiple of
// blockSize. A full extra block is appended when the input is already
// aligned, so the output is always strictly longer than the input.
func Pad(data []byte, blockSize int) []byte {
	k := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+k)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(k)
	}
	return padded
}

// Unpad validates and strips PKCS#7 padding. Validation happens in three
// independent tiers: the total length, the range of the final pad byte, and
// the uniformity of the trailing pad bytes. Each tier failing returns an
// error wrapping ErrInvalidPadding.
func Unpad(padded []byte, blockSize int) ([]byte, error) {
	if len(padded) == 0 || len(padded)%blockSize != 0 {
		return nil, fmt.Errorf("%w: length %d is not a positive multiple of block size %d", ErrInvalidPadding, len(padded), blockSize)
	}
	k := int(padded[len(padded)-1])
	if k < 1 || k > blockSize {
		return nil, fmt.Errorf("%w: pad byte %d outside [1, %d]", ErrInvalidPadding, k, blockSize)
	}
	for _, b := range padded[len(padded)-k:] {
		if int(b) != k {
			return nil, fmt.Errorf("%w: trailing %d bytes are not all %d", ErrInvalidPadding, k, k)
		}
	}
	return padded[:len(padded)-k], nil
}

// PaddedLen returns the length Pad produces for an n-byte input. It lets
// callers size ciphertext buffers (and compute decrypt throughput) without
// performing an encryption first.
func PaddedLen(n, blockSize int) int {
	return n + blockSize - n%blockSize
}
