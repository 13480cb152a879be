package sequence_test

import (
	"testing"

	"github.com/josestg/bitset/sequence"
	"github.com/stretchr/testify/assert"
)

func ints(vals ...int) func(func(int) bool) {
	return func(yield func(int) bool) {
		for _, v := range vals {
			if !yield(v) {
				return
			}
		}
	}
}

func TestEnum(t *testing.T) {
	var got [][2]int
	for i, v := range sequence.Enum(ints(10, 20, 30)) {
		got = append(got, [2]int{i, v})
	}
	assert.Equal(t, [][2]int{{0, 10}, {1, 20}, {2, 30}}, got)
}

func TestValueAt(t *testing.T) {
	v, ok := sequence.ValueAt(ints(10, 20, 30), 1)
	assert.True(t, ok)
	assert.Equal(t, 20, v)

	_, ok = sequence.ValueAt(ints(10, 20, 30), 5)
	assert.False(t, ok)
}

func TestString(t *testing.T) {
	assert.Equal(t, "[1 2 3]", sequence.String(ints(1, 2, 3)))
	assert.Equal(t, "[]", sequence.String(ints()))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "[1, 2, 3]", sequence.Format(ints(1, 2, 3), ", "))
}
