package pkcs7

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPadUnpadRoundTrip(t *testing.T) {
	blockSizes := []int{8, 16}
	inputs := [][]byte{
		nil,
		{0x01},
		[]byte("seven b"),
		[]byte("exactly sixteen!"),
		bytes.Repeat([]byte{0x00}, 1024),
		bytes.Repeat([]byte{0xFF}, 1023),
	}

	for _, b := range blockSizes {
		for _, in := range inputs {
			padded := Pad(in, b)

			assert.Greater(t, len(padded), len(in), "padded output must be strictly longer")
			assert.Zero(t, len(padded)%b, "padded output must be a multiple of the block size")
			assert.Equal(t, PaddedLen(len(in), b), len(padded))

			out, err := Unpad(padded, b)
			require.NoError(t, err)
			assert.Equal(t, len(in), len(out))
			assert.True(t, bytes.Equal(in, out))
		}
	}
}

func TestPadFullBlockWhenAligned(t *testing.T) {
	in := bytes.Repeat([]byte{0xAB}, 32)
	padded := Pad(in, 16)

	assert.Len(t, padded, 48)
	for _, b := range padded[32:] {
		assert.Equal(t, byte(16), b)
	}
}

func TestUnpadRejectsBadLength(t *testing.T) {
	_, err := Unpad(nil, 16)
	assert.ErrorIs(t, err, ErrInvalidPadding)

	_, err = Unpad([]byte{0x01, 0x01, 0x01}, 16)
	assert.ErrorIs(t, err, ErrInvalidPadding)
}

func TestUnpadRejectsPadByteOutOfRange(t *testing.T) {
	// Last byte zero.
	blob := append(bytes.Repeat([]byte{0x02}, 15), 0x00)
	_, err := Unpad(blob, 16)
	assert.ErrorIs(t, err, ErrInvalidPadding)

	// Last byte greater than the block size.
	blob = append(bytes.Repeat([]byte{0x02}, 15), 0x11)
	_, err = Unpad(blob, 16)
	assert.ErrorIs(t, err, ErrInvalidPadding)
}

func TestUnpadRejectsInconsistentPadBytes(t *testing.T) {
	// Claims 4 pad bytes but only the last one holds 4.
	blob := append(bytes.Repeat([]byte{0x09}, 15), 0x04)
	_, err := Unpad(blob, 16)
	assert.ErrorIs(t, err, ErrInvalidPadding)
}

func TestUnpadRejectsCorruptedLastByte(t *testing.T) {
	padded := Pad([]byte("some plaintext"), 16)
	// Flip the last byte to a value outside [1, blockSize] so the
	// corruption is guaranteed to be detected.
	padded[len(padded)-1] = 0xFF
	_, err := Unpad(padded, 16)
	assert.ErrorIs(t, err, ErrInvalidPadding)
}

func TestPaddedLen(t *testing.T) {
	assert.Equal(t, 16, PaddedLen(0, 16))
	assert.Equal(t, 16, PaddedLen(15, 16))
	assert.Equal(t, 32, PaddedLen(16, 16))
	assert.Equal(t, 1040, PaddedLen(1024, 16))
	assert.Equal(t, 8, PaddedLen(1, 8))
	assert.Equal(t, 16, PaddedLen(8, 8))
}
