package bitset

import "github.com/josestg/bitset/internal/blockbits"

// Iterator is a weak, non-owning reference to a position within a Set:
// either a member index in [0, Cap()), or the past-the-end sentinel
// Cap(). It does not keep its parent Set alive — the caller is
// responsible for that.
//
// The zero Iterator is not usable; obtain one from Set.Begin or
// Set.End.
type Iterator[B blockbits.Unsigned] struct {
	set *Set[B]
	idx int
}

// Begin returns an Iterator positioned at the smallest element, or at
// Done() if s is empty.
func (s *Set[B]) Begin() *Iterator[B] {
	return &Iterator[B]{set: s, idx: s.core.FindFirst()}
}

// End returns an Iterator positioned at the past-the-end sentinel.
func (s *Set[B]) End() *Iterator[B] {
	return &Iterator[B]{set: s, idx: s.core.Len()}
}

// RBegin returns an Iterator positioned at the largest element, for
// backward traversal. Its Done() is true if s is empty.
func (s *Set[B]) RBegin() *Iterator[B] {
	if s.core.None() {
		return s.End()
	}
	return &Iterator[B]{set: s, idx: s.core.Back()}
}

// Value returns the element at the iterator's current position. Panics
// if Done().
func (it *Iterator[B]) Value() int {
	if it.Done() {
		panic("bitset: Value of a done iterator")
	}
	return it.idx
}

// Done reports whether the iterator has advanced past the last element.
// Retreating past the first element panics rather than reaching Done.
func (it *Iterator[B]) Done() bool { return it.idx == it.set.core.Len() }

// Advance moves the iterator to the next element in ascending order.
// Panics if already Done() — advancing past the past-the-end sentinel
// is a contract violation, mirroring Retreat's panic at the opposite
// boundary.
func (it *Iterator[B]) Advance() {
	if it.Done() {
		panic("bitset: Advance of a done iterator")
	}
	it.idx = it.set.core.FindNext(it.idx)
}

// Retreat moves the iterator to the previous element in ascending order.
// Panics if there is no preceding element — mirroring FindPrev's
// contract, since a bidirectional iterator positioned at the first
// element (or already Done() on an empty set) has nowhere to retreat to.
func (it *Iterator[B]) Retreat() {
	it.idx = it.set.core.FindPrev(it.idx)
}

// Equal reports whether it and other reference the same position of the
// same Set.
func (it *Iterator[B]) Equal(other *Iterator[B]) bool {
	return it.set == other.set && it.idx == other.idx
}

// Erase removes the element at it's position and returns an Iterator
// positioned at the element that followed it (or Done() if it was the
// last element). Panics if it is already Done().
func (s *Set[B]) Erase(it *Iterator[B]) *Iterator[B] {
	if it.Done() {
		panic("bitset: Erase of a done iterator")
	}
	next := s.core.FindNext(it.idx)
	s.core.ResetBit(it.idx)
	return &Iterator[B]{set: s, idx: next}
}
