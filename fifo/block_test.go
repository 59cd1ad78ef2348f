package fifo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeHeaderRoundTrip(t *testing.T) {
	// (free=false, dataSize=0) is excluded: it encodes to 0x00, the byte
	// reserved to signal corruption, so it is not part of the round-trip
	// property (see TestEncodeUsedZeroSizeIsReservedAsInvalid below).
	for _, dataSize := range []int{0, 1, 8, 63, 126, 127} {
		for _, free := range []bool{true, false} {
			if !free && dataSize == 0 {
				continue
			}
			b := encodeHeader(free, dataSize)
			gotFree, gotSize, err := decodeHeader(b)
			assert.NoError(t, err)
			assert.Equal(t, free, gotFree)
			assert.Equal(t, dataSize, gotSize)
		}
	}
}

func TestDecodeHeaderZeroIsInvalid(t *testing.T) {
	_, _, err := decodeHeader(0x00)
	assert.ErrorIs(t, err, ErrInvalidBlockHeader)
}

func TestEncodeUsedZeroSizeIsReservedAsInvalid(t *testing.T) {
	// A used block can never claim zero payload bytes: encodeHeader(false, 0)
	// collides with the reserved corruption byte 0x00, and decoding it back
	// reports ErrInvalidBlockHeader rather than (free=false, dataSize=0).
	b := encodeHeader(false, 0)
	assert.Equal(t, byte(0x00), b)
	_, _, err := decodeHeader(b)
	assert.ErrorIs(t, err, ErrInvalidBlockHeader)
}

func TestSpan(t *testing.T) {
	assert.Equal(t, 1, span(encodeHeader(true, 0)))
	assert.Equal(t, 128, span(encodeHeader(false, 127)))
	assert.Equal(t, 9, span(encodeHeader(true, 8)))
}

func TestStepWraps(t *testing.T) {
	assert.Equal(t, 0, step(7, 2, 9))
	assert.Equal(t, 8, step(7, 1, 9))
	assert.Equal(t, 3, step(0, 3, 9))
}

func TestFreshFormatHeaderBytesMatchScenario(t *testing.T) {
	// Spec §8 scenario 1: N=10, R=9 -> single free block covering the
	// whole ring, header 0x88 (free, data_size=8).
	assert.Equal(t, byte(0x88), encodeHeader(true, 8))
}
