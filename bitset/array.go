// Package bitset provides a fixed-capacity ordered set of small
// non-negative integers backed by a packed bit array, layered over
// internal/packedbits.
//
// Two surfaces are offered over the same packed storage:
//
//   - Array[B]: an indexed boolean sequence (the "indexed-boolean
//     surface"), with bitwise algebra and shift operators.
//   - Set[B]: an ordered integer set (the "ordered-set surface"), with
//     forward/bidirectional iterators, find/lower_bound/upper_bound, and
//     the set-algebra operators reinterpreted as union/intersection/
//     difference/symmetric difference.
//
// Both are generic over B, the unsigned block type backing storage
// (uint8, uint16, uint32, or uint64). A 128-bit block width is not
// offered: Go's generic constraints can only range over types with
// native operators, and a composed 128-bit type has none to offer.
package bitset

import (
	"strings"

	"github.com/josestg/bitset/internal/blockbits"
	"github.com/josestg/bitset/internal/packedbits"
)

// Array is the indexed-boolean surface: N positions, each either set or
// unset, with bitwise algebra, shifts, and range-checked mutation.
//
// Array's zero value is not usable; construct with NewArray.
type Array[B blockbits.Unsigned] struct {
	core *packedbits.Array[B]
}

// NewArray creates an Array capable of holding n bits, all initially
// unset. Panics if n < 0.
func NewArray[B blockbits.Unsigned](n int) *Array[B] {
	return &Array[B]{core: packedbits.New[B](n)}
}

// Len returns N, the number of positions the array holds.
func (a *Array[B]) Len() int { return a.core.Len() }

// At returns the value at position i, without a range check. Its
// precondition is i < Len(); violating it is a contract violation and
// panics, mirroring C++ std::bitset::operator[]'s unchecked indexer.
func (a *Array[B]) At(i int) bool { return a.core.Test(i) }

// Test returns the value at position i, or ErrOutOfRange if i is outside
// [0, Len()).
func (a *Array[B]) Test(i int) (bool, error) {
	if i < 0 || i >= a.Len() {
		return false, outOfRangeErr("Test", i, a.Len())
	}
	return a.core.Test(i), nil
}

// Set assigns val to position i, or returns ErrOutOfRange if i is
// outside [0, Len()).
func (a *Array[B]) Set(i int, val bool) error {
	if i < 0 || i >= a.Len() {
		return outOfRangeErr("Set", i, a.Len())
	}
	if val {
		a.core.SetBit(i)
	} else {
		a.core.ResetBit(i)
	}
	return nil
}

// Reset clears position i, or returns ErrOutOfRange if i is outside
// [0, Len()).
func (a *Array[B]) Reset(i int) error {
	if i < 0 || i >= a.Len() {
		return outOfRangeErr("Reset", i, a.Len())
	}
	a.core.ResetBit(i)
	return nil
}

// Flip complements position i, or returns ErrOutOfRange if i is outside
// [0, Len()).
func (a *Array[B]) Flip(i int) error {
	if i < 0 || i >= a.Len() {
		return outOfRangeErr("Flip", i, a.Len())
	}
	a.core.FlipBit(i)
	return nil
}

// SetAll sets every position.
func (a *Array[B]) SetAll() { a.core.SetAll() }

// ResetAll clears every position.
func (a *Array[B]) ResetAll() { a.core.ResetAll() }

// FlipAll complements every position.
func (a *Array[B]) FlipAll() { a.core.FlipAll() }

// Count returns the number of set positions.
func (a *Array[B]) Count() int { return a.core.Count() }

// All reports whether every position is set.
func (a *Array[B]) All() bool { return a.core.All() }

// Any reports whether at least one position is set.
func (a *Array[B]) Any() bool { return a.core.Any() }

// None reports whether no position is set.
func (a *Array[B]) None() bool { return a.core.None() }

// Clone returns a deep copy of a.
func (a *Array[B]) Clone() *Array[B] { return &Array[B]{core: a.core.Clone()} }

func (a *Array[B]) checkCompatible(o *Array[B]) {
	if a.Len() != o.Len() {
		panic("bitset: operands have different lengths")
	}
}

// And returns the bitwise AND (intersection) of a and o, as a new Array.
// Panics if the two arrays have different lengths.
func (a *Array[B]) And(o *Array[B]) *Array[B] {
	a.checkCompatible(o)
	r := a.Clone()
	r.core.AndWith(o.core)
	return r
}

// Or returns the bitwise OR (union) of a and o, as a new Array. Panics
// if the two arrays have different lengths.
func (a *Array[B]) Or(o *Array[B]) *Array[B] {
	a.checkCompatible(o)
	r := a.Clone()
	r.core.OrWith(o.core)
	return r
}

// Xor returns the bitwise XOR (symmetric difference) of a and o, as a
// new Array. Panics if the two arrays have different lengths.
func (a *Array[B]) Xor(o *Array[B]) *Array[B] {
	a.checkCompatible(o)
	r := a.Clone()
	r.core.XorWith(o.core)
	return r
}

// AndNot returns a &^ o (the set difference a - o), as a new Array.
// Panics if the two arrays have different lengths.
func (a *Array[B]) AndNot(o *Array[B]) *Array[B] {
	a.checkCompatible(o)
	r := a.Clone()
	r.core.DifferenceWith(o.core)
	return r
}

// Not returns the bitwise complement of a, as a new Array.
func (a *Array[B]) Not() *Array[B] {
	r := a.Clone()
	r.core.FlipAll()
	return r
}

// Equal reports whether a and o have the same length and the same bits
// set.
func (a *Array[B]) Equal(o *Array[B]) bool {
	return a.Len() == o.Len() && a.core.Compare(o.core) == 0
}

// ShiftLeft shifts every bit left by n, discarding bits shifted past
// Len()-1. An out-of-range n (n < 0 or n >= Len()) resets the whole
// array instead of invoking the packed layer's unforgiving precondition.
func (a *Array[B]) ShiftLeft(n int) {
	if n < 0 || n >= a.Len() {
		a.ResetAll()
		return
	}
	a.core.ShiftLeft(n)
}

// ShiftRight shifts every bit right by n, discarding bits shifted below
// 0. An out-of-range n resets the whole array; see ShiftLeft.
func (a *Array[B]) ShiftRight(n int) {
	if n < 0 || n >= a.Len() {
		a.ResetAll()
		return
	}
	a.core.ShiftRight(n)
}

// String renders the array as the classic bitset textual form: Len()
// characters, highest index first, '1' for set and '0' for unset.
func (a *Array[B]) String() string {
	var b strings.Builder
	b.Grow(a.Len())
	for i := a.Len() - 1; i >= 0; i-- {
		if a.core.Test(i) {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}
