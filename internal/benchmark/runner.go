package benchmark

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"cipherbench/internal/cbc"
)

// ErrMismatch reports a decrypt that did not reproduce the original payload.
// A cipher producing wrong output invalidates every subsequent measurement,
// so this aborts the whole suite; it is never retried.
var ErrMismatch = errors.New("decrypted output does not match original payload")

// Runner times encrypt/decrypt round trips for one (algorithm, payload)
// combination.
type Runner struct {
	Reps int
}

func NewRunner(reps int) *Runner {
	return &Runner{Reps: reps}
}

// Run executes Reps timed encrypt and decrypt calls against payload and
// returns the encrypt and decrypt rows. Each timed interval bounds exactly
// one cipher call; the round trip is verified bit-for-bit after every
// iteration.
//
// The ciphertext length needed for decrypt throughput follows from the
// padding formula, so no untimed warm-up encryption is performed.
func (r *Runner) Run(alg cbc.Algorithm, file string, payload []byte) (Result, Result, error) {
	if r.Reps <= 0 {
		return Result{}, Result{}, fmt.Errorf("repetitions must be positive, got %d", r.Reps)
	}

	plaintextLen := len(payload)
	ciphertextLen := alg.CiphertextLen(plaintextLen)

	var encTotal, decTotal time.Duration
	for i := 0; i < r.Reps; i++ {
		start := time.Now()
		material, ciphertext, err := cbc.Encrypt(alg, payload)
		encTotal += time.Since(start)
		if err != nil {
			return Result{}, Result{}, fmt.Errorf("%s encrypt: %w", alg.Name, err)
		}

		start = time.Now()
		plaintext, err := cbc.Decrypt(alg, material, ciphertext)
		decTotal += time.Since(start)
		if err != nil {
			return Result{}, Result{}, fmt.Errorf("%s decrypt: %w", alg.Name, err)
		}

		if !bytes.Equal(plaintext, payload) {
			return Result{}, Result{}, fmt.Errorf("%s iteration %d: %w", alg.Name, i+1, ErrMismatch)
		}
	}

	encAvg := encTotal.Seconds() / float64(r.Reps)
	decAvg := decTotal.Seconds() / float64(r.Reps)

	enc := Result{
		File:            file,
		Algorithm:       alg.Name,
		Operation:       OpEncrypt,
		AvgTimeSeconds:  encAvg,
		ThroughputMiBps: float64(plaintextLen) / MiB / encAvg,
		InputBytes:      plaintextLen,
	}
	dec := Result{
		File:            file,
		Algorithm:       alg.Name,
		Operation:       OpDecrypt,
		AvgTimeSeconds:  decAvg,
		ThroughputMiBps: float64(ciphertextLen) / MiB / decAvg,
		InputBytes:      ciphertextLen,
	}
	return enc, dec, nil
}
