package bitset

import (
	"github.com/josestg/bitset/internal/blockbits"
	"github.com/josestg/bitset/internal/packedbits"
	"github.com/josestg/bitset/sequence"
)

// Set is the ordered-set surface over the same packed storage as Array:
// a fixed-capacity set of integers drawn from [0, Cap()), visited in
// ascending order. It implements adt.Sizer, adt.Emptier, adt.Adder[int],
// adt.Deleter[int], adt.Exister[int], adt.Iterator[int],
// adt.BackwardIterator[int], adt.Unioner[*Set[B]], adt.Intersecter[*Set[B]],
// adt.Disjointer[*Set[B]], and fmt.Stringer.
//
// Set's zero value is not usable; construct with NewSet.
type Set[B blockbits.Unsigned] struct {
	core *packedbits.Array[B]
}

// NewSet creates an empty Set over the universe [0, cap). Panics if cap
// < 0.
func NewSet[B blockbits.Unsigned](cap int) *Set[B] {
	return &Set[B]{core: packedbits.New[B](cap)}
}

// NewSetFromSlice creates a Set over the universe [0, cap) containing
// every value in vals. Panics if cap < 0 or any value falls outside
// [0, cap).
func NewSetFromSlice[B blockbits.Unsigned](cap int, vals ...int) *Set[B] {
	s := NewSet[B](cap)
	for _, v := range vals {
		s.Add(v)
	}
	return s
}

// NewSetFromRange creates a Set over the universe [0, cap) containing
// every value in [lo, hi). Panics if cap < 0 or the range falls outside
// [0, cap).
func NewSetFromRange[B blockbits.Unsigned](cap int, lo, hi int) *Set[B] {
	s := NewSet[B](cap)
	s.InsertRange(lo, hi)
	return s
}

// Size returns the number of elements currently in the set.
func (s *Set[B]) Size() int { return s.core.Count() }

// Empty reports whether the set has no elements.
func (s *Set[B]) Empty() bool { return s.core.None() }

// Cap returns the size of the universe [0, Cap()) this set draws from.
func (s *Set[B]) Cap() int { return s.core.Len() }

// MaxSize is an alias for Cap: the set's capacity never changes.
func (s *Set[B]) MaxSize() int { return s.Cap() }

// Clear removes every element.
func (s *Set[B]) Clear() { s.core.ResetAll() }

// Add inserts v. No-op if v is already a member. Panics if v is outside
// [0, Cap()).
func (s *Set[B]) Add(v int) { s.core.SetBit(v) }

// Insert inserts v and reports whether v was not already a member.
// Panics if v is outside [0, Cap()).
func (s *Set[B]) Insert(v int) bool { return s.core.InsertBit(v) }

// Del removes v, reporting whether it was a member. No-op (returns
// false) if v is not a member. Panics if v is outside [0, Cap()).
func (s *Set[B]) Del(v int) bool { return s.core.EraseBit(v) }

// Exists reports whether v is a member. Panics if v is outside
// [0, Cap()).
func (s *Set[B]) Exists(v int) bool { return s.core.Test(v) }

// ContainsBit is a synonym for Exists, matching the indexed-boolean
// surface's terminology.
func (s *Set[B]) ContainsBit(v int) bool { return s.Exists(v) }

// Find returns v and true if v is a member, else (0, false). Unlike
// Exists, Find never panics: values outside [0, Cap()) simply report
// false.
func (s *Set[B]) Find(v int) (int, bool) {
	if v < 0 || v >= s.Cap() {
		return 0, false
	}
	return v, s.core.Test(v)
}

// Nth returns the k-th smallest element (0-indexed) and true, or
// (0, false) if the set holds fewer than k+1 elements.
func (s *Set[B]) Nth(k int) (int, bool) {
	return sequence.ValueAt(s.Iter, k)
}

// Front returns the smallest element. Panics if Empty().
func (s *Set[B]) Front() int { return s.core.Front() }

// Back returns the largest element. Panics if Empty().
func (s *Set[B]) Back() int { return s.core.Back() }

// LowerBound returns the smallest element >= v, or Cap() if none exists.
func (s *Set[B]) LowerBound(v int) int {
	if v <= 0 {
		return s.core.FindFirst()
	}
	return s.core.FindNext(v - 1)
}

// UpperBound returns the smallest element > v, or Cap() if none exists.
func (s *Set[B]) UpperBound(v int) int { return s.core.FindNext(v) }

// EqualRange returns [LowerBound(v), UpperBound(v)): since Set holds no
// duplicates, this spans at most one element.
func (s *Set[B]) EqualRange(v int) (lo, hi int) {
	return s.LowerBound(v), s.UpperBound(v)
}

// InsertRange adds every value in [lo, hi). No-op values already
// present. Panics if the range falls outside [0, Cap()).
func (s *Set[B]) InsertRange(lo, hi int) {
	for i := lo; i < hi; i++ {
		s.Add(i)
	}
}

// EraseRange removes every value in [lo, hi).
func (s *Set[B]) EraseRange(lo, hi int) {
	for i := lo; i < hi; i++ {
		s.Del(i)
	}
}

// EraseIf removes every element for which pred reports true, returning
// the number of elements removed.
func (s *Set[B]) EraseIf(pred func(int) bool) int {
	removed := 0
	for v := s.core.FindFirst(); v != s.core.Len(); v = s.core.FindNext(v) {
		if pred(v) {
			s.core.ResetBit(v)
			removed++
		}
	}
	return removed
}

// Swap exchanges the contents of s and o. Panics if their capacities
// differ.
func (s *Set[B]) Swap(o *Set[B]) {
	if s.Cap() != o.Cap() {
		panic("bitset: Swap requires equal capacity")
	}
	s.core, o.core = o.core, s.core
}

// Clone returns a deep copy of s.
func (s *Set[B]) Clone() *Set[B] { return &Set[B]{core: s.core.Clone()} }

// Union returns a new Set containing every element in s or o. Panics if
// their capacities differ.
func (s *Set[B]) Union(o *Set[B]) *Set[B] {
	s.checkCompatible(o)
	r := s.Clone()
	r.core.OrWith(o.core)
	return r
}

// Intersection returns a new Set containing every element in both s and
// o. Panics if their capacities differ.
func (s *Set[B]) Intersection(o *Set[B]) *Set[B] {
	s.checkCompatible(o)
	r := s.Clone()
	r.core.AndWith(o.core)
	return r
}

// Difference returns a new Set containing every element in s that is not
// in o. Panics if their capacities differ.
func (s *Set[B]) Difference(o *Set[B]) *Set[B] {
	s.checkCompatible(o)
	r := s.Clone()
	r.core.DifferenceWith(o.core)
	return r
}

// SymmetricDifference returns a new Set containing every element that is
// in exactly one of s and o. Panics if their capacities differ.
func (s *Set[B]) SymmetricDifference(o *Set[B]) *Set[B] {
	s.checkCompatible(o)
	r := s.Clone()
	r.core.XorWith(o.core)
	return r
}

// Disjoint reports whether s and o share no elements. Panics if their
// capacities differ.
func (s *Set[B]) Disjoint(o *Set[B]) bool {
	s.checkCompatible(o)
	return !s.core.Intersects(o.core)
}

// IsSubsetOf reports whether every element of s is also in o. Panics if
// their capacities differ.
func (s *Set[B]) IsSubsetOf(o *Set[B]) bool {
	s.checkCompatible(o)
	return s.core.IsSubsetOf(o.core)
}

// IsProperSubsetOf reports whether s is a subset of o and the two sets
// differ. Panics if their capacities differ.
func (s *Set[B]) IsProperSubsetOf(o *Set[B]) bool {
	s.checkCompatible(o)
	return s.core.IsProperSubsetOf(o.core)
}

// Equal reports whether s and o contain the same elements. Panics if
// their capacities differ.
func (s *Set[B]) Equal(o *Set[B]) bool {
	s.checkCompatible(o)
	return s.core.Compare(o.core) == 0
}

func (s *Set[B]) checkCompatible(o *Set[B]) {
	if s.Cap() != o.Cap() {
		panic("bitset: operands have different capacities")
	}
}

// Iter visits every element in ascending order. Compatible with Go
// 1.23+ range-over-func: for v := range set.Iter { ... }.
func (s *Set[B]) Iter(yield func(int) bool) {
	for v := s.core.FindFirst(); v != s.core.Len(); v = s.core.FindNext(v) {
		if !yield(v) {
			return
		}
	}
}

// IterBackward visits every element in descending order.
func (s *Set[B]) IterBackward(yield func(int) bool) {
	if s.core.None() {
		return
	}
	for v := s.core.Back(); ; {
		if !yield(v) {
			return
		}
		if v == s.core.Front() {
			return
		}
		v = s.core.FindPrev(v)
	}
}

// String renders s as a {e1, e2, ...} listing of its elements in
// ascending order.
func (s *Set[B]) String() string {
	bracketed := sequence.Format(s.Iter, ", ")
	return "{" + bracketed[1:len(bracketed)-1] + "}"
}
