package benchmark

import (
	"crypto/rand"
	"fmt"
	"os"
	"path/filepath"
)

// FixturePath returns the fixture file location for a payload size.
func FixturePath(dataDir string, size SizeSpec) string {
	return filepath.Join(dataDir, size.Label+".bin")
}

// EnsureFixtures creates any missing fixture files with cryptographically
// random content. Existing files are reused unchanged so repeated runs
// measure the same payloads.
func EnsureFixtures(dataDir string, sizes []SizeSpec) error {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory %s: %w", dataDir, err)
	}

	for _, size := range sizes {
		path := FixturePath(dataDir, size)
		if _, err := os.Stat(path); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat fixture %s: %w", path, err)
		}

		buf := make([]byte, size.Bytes)
		if _, err := rand.Read(buf); err != nil {
			return fmt.Errorf("failed to generate fixture %s: %w", path, err)
		}
		if err := os.WriteFile(path, buf, 0644); err != nil {
			return fmt.Errorf("failed to write fixture %s: %w", path, err)
		}
	}
	return nil
}

// LoadFixture reads a fixture file created by EnsureFixtures.
func LoadFixture(dataDir string, size SizeSpec) ([]byte, error) {
	path := FixturePath(dataDir, size)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture %s: %w", path, err)
	}
	return data, nil
}
