package packedbits_test

import (
	"testing"

	"github.com/josestg/bitset/internal/packedbits"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBits[B interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}](a *packedbits.Array[B], idx ...int) {
	for _, i := range idx {
		a.SetBit(i)
	}
}

func TestNewDegenerate(t *testing.T) {
	a := packedbits.New[uint8](0)
	require.Equal(t, 0, a.Len())
	assert.True(t, a.None())
	assert.True(t, a.All())
	assert.False(t, a.Any())
}

func TestSetTestCount(t *testing.T) {
	a := packedbits.New[uint8](17) // 3 blocks, P=1 unused bit
	assert.Equal(t, 0, a.Count())
	setBits(a, 0, 8, 16)
	assert.True(t, a.Test(0))
	assert.True(t, a.Test(8))
	assert.True(t, a.Test(16))
	assert.False(t, a.Test(1))
	assert.Equal(t, 3, a.Count())
	assert.False(t, a.All())

	for i := 0; i < 17; i++ {
		a.SetBit(i)
	}
	assert.True(t, a.All())
	assert.Equal(t, 17, a.Count())
}

func TestFrontBack(t *testing.T) {
	a := packedbits.New[uint32](100)
	assert.Panics(t, func() { a.Front() })
	assert.Panics(t, func() { a.Back() })

	setBits(a, 5, 63, 99)
	assert.Equal(t, 5, a.Front())
	assert.Equal(t, 99, a.Back())
}

func TestFindNextPrev(t *testing.T) {
	a := packedbits.New[uint8](20)
	setBits(a, 3, 4, 10, 19)

	assert.Equal(t, 3, a.FindFirst())
	assert.Equal(t, 4, a.FindNext(3))
	assert.Equal(t, 10, a.FindNext(4))
	assert.Equal(t, 19, a.FindNext(10))
	assert.Equal(t, 20, a.FindNext(19))

	assert.Equal(t, 10, a.FindPrev(19))
	assert.Equal(t, 4, a.FindPrev(10))
	assert.Equal(t, 3, a.FindPrev(4))
	assert.Panics(t, func() { a.FindPrev(3) })
}

func TestShiftLeftRight(t *testing.T) {
	a := packedbits.New[uint8](20)
	setBits(a, 0, 5, 19)

	a.ShiftLeft(3)
	assert.False(t, a.Test(0))
	assert.True(t, a.Test(3))
	assert.True(t, a.Test(8))
	assert.False(t, a.Test(19)) // 19+3=22 discarded

	a.ShiftRight(3)
	assert.True(t, a.Test(0))
	assert.True(t, a.Test(5))
	assert.False(t, a.Test(19))
}

func TestShiftRoundTrip(t *testing.T) {
	a := packedbits.New[uint64](130)
	setBits(a, 1, 2, 64, 65, 119) // 119+10 = 129 < 130: no bit crosses the boundary

	b := a.Clone()
	b.ShiftLeft(10)
	b.ShiftRight(10)
	assert.Equal(t, 0, a.Compare(b))
}

func TestAlgebra(t *testing.T) {
	a := packedbits.New[uint16](40)
	b := packedbits.New[uint16](40)
	setBits(a, 1, 2, 3)
	setBits(b, 2, 3, 4)

	and := a.Clone()
	and.AndWith(b)
	assert.True(t, and.Test(2))
	assert.True(t, and.Test(3))
	assert.False(t, and.Test(1))
	assert.False(t, and.Test(4))

	or := a.Clone()
	or.OrWith(b)
	for _, i := range []int{1, 2, 3, 4} {
		assert.True(t, or.Test(i))
	}

	xor := a.Clone()
	xor.XorWith(b)
	assert.True(t, xor.Test(1))
	assert.True(t, xor.Test(4))
	assert.False(t, xor.Test(2))
	assert.False(t, xor.Test(3))

	diff := a.Clone()
	diff.DifferenceWith(b)
	assert.True(t, diff.Test(1))
	assert.False(t, diff.Test(2))
	assert.False(t, diff.Test(3))
	assert.False(t, diff.Test(4))
}

func TestSubsetIntersect(t *testing.T) {
	a := packedbits.New[uint8](10)
	b := packedbits.New[uint8](10)
	setBits(a, 1, 2)
	setBits(b, 1, 2, 3)

	assert.True(t, a.IsSubsetOf(b))
	assert.True(t, a.IsProperSubsetOf(b))
	assert.False(t, b.IsSubsetOf(a))
	assert.True(t, a.Intersects(b))

	empty := packedbits.New[uint8](10)
	assert.False(t, empty.Intersects(b))
}

func TestCompareLexicographic(t *testing.T) {
	// {0} vs {1}: index 0 differs first; a has index 0 set (a < b is false
	// since having the lower index set makes it lexicographically larger
	// per spec's per-block comparator: "absent" sorts before "present").
	a := packedbits.New[uint8](8)
	b := packedbits.New[uint8](8)
	setBits(a, 0)
	setBits(b, 1)
	assert.Equal(t, 1, a.Compare(b))
	assert.Equal(t, -1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a.Clone()))
}

func TestInsertErase(t *testing.T) {
	a := packedbits.New[uint8](8)
	assert.True(t, a.InsertBit(3))
	assert.False(t, a.InsertBit(3))
	assert.True(t, a.EraseBit(3))
	assert.False(t, a.EraseBit(3))
}

func TestFlip(t *testing.T) {
	a := packedbits.New[uint8](5)
	a.FlipAll()
	assert.Equal(t, 5, a.Count())
	assert.True(t, a.All())

	a.FlipBit(0)
	a.FlipBit(0)
	assert.True(t, a.Test(0))
}

func TestOutOfRangePanics(t *testing.T) {
	a := packedbits.New[uint8](8)
	assert.Panics(t, func() { a.Test(8) })
	assert.Panics(t, func() { a.Test(-1) })
	assert.Panics(t, func() { a.SetBit(8) })
	assert.Panics(t, func() { a.ShiftLeft(8) })
	assert.Panics(t, func() { a.ShiftRight(8) })
}
