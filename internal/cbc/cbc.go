// Package cbc performs one-shot CBC encryption and decryption with
// per-operation random key material, on top of the standard library block
// ciphers.
package cbc

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/des"
	"crypto/rand"
	"fmt"

	"cipherbench/internal/pkcs7"
)

// Algorithm describes a block cipher configuration. Instances are fixed at
// startup and shared read-only by every benchmark run.
type Algorithm struct {
	Name      string
	KeySize   int // bytes
	BlockSize int // bytes
	newCipher func(key []byte) (cipher.Block, error)
}

var (
	AES128 = Algorithm{Name: "AES-128", KeySize: 16, BlockSize: 16, newCipher: aes.NewCipher}
	AES256 = Algorithm{Name: "AES-256", KeySize: 32, BlockSize: 16, newCipher: aes.NewCipher}
	DES    = Algorithm{Name: "DES", KeySize: 8, BlockSize: 8, newCipher: des.NewCipher}
)

// Algorithms lists the supported ciphers in reporting order.
var Algorithms = []Algorithm{AES128, AES256, DES}

// CiphertextLen returns the CBC ciphertext length for a plaintext of n bytes.
func (a Algorithm) CiphertextLen(n int) int {
	return pkcs7.PaddedLen(n, a.BlockSize)
}

// Material is a key/IV pair. It is drawn fresh for every encrypt call and
// owned exclusively by the round trip that created it.
type Material struct {
	Key []byte
	IV  []byte
}

// NewMaterial draws a random key and IV for alg from crypto/rand.
func NewMaterial(alg Algorithm) (Material, error) {
	m := Material{
		Key: make([]byte, alg.KeySize),
		IV:  make([]byte, alg.BlockSize),
	}
	if _, err := rand.Read(m.Key); err != nil {
		return Material{}, fmt.Errorf("failed to draw %s key: %w", alg.Name, err)
	}
	if _, err := rand.Read(m.IV); err != nil {
		return Material{}, fmt.Errorf("failed to draw %s IV: %w", alg.Name, err)
	}
	return m, nil
}

// Encrypt pads plaintext with PKCS#7 and encrypts it under a freshly drawn
// key and IV. Fresh material per call keeps timing runs free of key-schedule
// caching and matches one-shot encryption usage.
func Encrypt(alg Algorithm, plaintext []byte) (Material, []byte, error) {
	m, err := NewMaterial(alg)
	if err != nil {
		return Material{}, nil, err
	}

	block, err := alg.newCipher(m.Key)
	if err != nil {
		return Material{}, nil, fmt.Errorf("failed to initialize %s: %w", alg.Name, err)
	}

	padded := pkcs7.Pad(plaintext, alg.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, m.IV).CryptBlocks(ciphertext, padded)
	return m, ciphertext, nil
}

// Decrypt reverses Encrypt with the supplied material and strips the
// padding. Padding validation failures from pkcs7 propagate unwrapped in
// meaning: they signal corruption, not a transient condition.
func Decrypt(alg Algorithm, m Material, ciphertext []byte) ([]byte, error) {
	if len(ciphertext) == 0 || len(ciphertext)%alg.BlockSize != 0 {
		return nil, fmt.Errorf("%s ciphertext length %d is not a positive multiple of block size %d", alg.Name, len(ciphertext), alg.BlockSize)
	}

	block, err := alg.newCipher(m.Key)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize %s: %w", alg.Name, err)
	}

	padded := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, m.IV).CryptBlocks(padded, ciphertext)
	return pkcs7.Unpad(padded, alg.BlockSize)
}
