package blockbits_test

import (
	"math"
	"testing"

	"github.com/josestg/bitset/internal/blockbits"
	"github.com/stretchr/testify/assert"
)

func TestCountLeadingZeros(t *testing.T) {
	assert.Equal(t, 8, blockbits.CountLeadingZeros(uint8(0)))
	assert.Equal(t, 0, blockbits.CountLeadingZeros(uint8(0x80)))
	assert.Equal(t, 7, blockbits.CountLeadingZeros(uint8(1)))

	assert.Equal(t, 64, blockbits.CountLeadingZeros(uint64(0)))
	assert.Equal(t, 0, blockbits.CountLeadingZeros(uint64(math.MaxUint64)))
	assert.Equal(t, 63, blockbits.CountLeadingZeros(uint64(1)))
}

func TestCountTrailingZeros(t *testing.T) {
	assert.Equal(t, 8, blockbits.CountTrailingZeros(uint8(0)))
	assert.Equal(t, 0, blockbits.CountTrailingZeros(uint8(1)))
	assert.Equal(t, 7, blockbits.CountTrailingZeros(uint8(0x80)))

	assert.Equal(t, 32, blockbits.CountTrailingZeros(uint32(0)))
	assert.Equal(t, 16, blockbits.CountTrailingZeros(uint32(1)<<16))
}

func TestPopCount(t *testing.T) {
	assert.Equal(t, 0, blockbits.PopCount(uint16(0)))
	assert.Equal(t, 16, blockbits.PopCount(uint16(math.MaxUint16)))
	assert.Equal(t, 1, blockbits.PopCount(uint32(1)<<31))
}

func TestPredicates(t *testing.T) {
	assert.True(t, blockbits.Intersects(uint8(0b1100), uint8(0b0110)))
	assert.False(t, blockbits.Intersects(uint8(0b1000), uint8(0b0110)))

	assert.True(t, blockbits.IsSubsetOf(uint8(0b0100), uint8(0b1110)))
	assert.False(t, blockbits.IsSubsetOf(uint8(0b1000), uint8(0b0110)))

	assert.True(t, blockbits.NotEqual(uint8(1), uint8(2)))
	assert.False(t, blockbits.NotEqual(uint8(5), uint8(5)))
}

func TestCompareBlocks(t *testing.T) {
	// {0} vs {1}: bit 0 disagrees; l=1 has it, r=2 doesn't -> l > r.
	assert.Equal(t, 1, blockbits.CompareBlocks(uint8(0b01), uint8(0b10)))
	assert.Equal(t, -1, blockbits.CompareBlocks(uint8(0b10), uint8(0b01)))
	assert.Equal(t, 0, blockbits.CompareBlocks(uint8(0b101), uint8(0b101)))
}
