// Package adt defines Abstract Data Type (ADT) interfaces.
//
// # What is an Abstract Data Type?
//
// An Abstract Data Type describes WHAT operations a data structure supports,
// but not HOW those operations are implemented. It is a contract: any type
// that satisfies the interface can be used interchangeably.
//
// # Why Use ADTs?
//
// ADTs let you think at the right level of abstraction. This package
// provides small, composable interfaces rather than one large interface:
// Sizer, Emptier, Adder, and so on. Types implement only what they need,
// and generic algorithms constrain on only what they use.
//
// # Design Philosophy
//
// Go favors small interfaces. The standard library's io.Reader and io.Writer
// are single-method interfaces that compose beautifully. This package follows
// that pattern: each interface captures one capability.
package adt

import "fmt"

// Sizer describes a data structure that tracks its element count.
//
//	┌───┬───┬───┬───┬───┐
//	│ A │ B │ C │ D │ E │
//	└───┴───┴───┴───┴───┘
//	Size() -> 5
//
// The Size method returns the number of elements currently stored.
// An empty structure returns 0.
type Sizer interface {
	Size() int
}

// Caper describes a data structure with a capacity limit.
//
//	capacity = 8
//	┌───┬───┬───┬───┬───┬───┬───┬───┐
//	│ A │ B │ C │ D │ E │   │   │   │  <- 3 empty slots
//	└───┴───┴───┴───┴───┴───┴───┴───┘
//	Size() -> 5    Cap() -> 8
//
// The Cap method returns the maximum number of elements that can be stored.
// For a fixed-capacity structure, Cap never changes.
type Caper interface {
	Cap() int
}

// Emptier describes a data structure that can report if it has no elements.
//
//	Empty structure:         Non-empty structure:
//	┌───┐                    ┌───┬───┬───┐
//	│   │ (no elements)      │ A │ B │ C │
//	└───┘                    └───┴───┴───┘
//	Empty() -> true           Empty() -> false
//
// The Empty method returns true if and only if Size() equals 0.
type Emptier interface {
	Empty() bool
}

// Adder describes a data structure that accepts elements without specifying
// position.
//
//	Before Add(F):           After Add(F):
//	┌───┬───┬───┐            ┌───┬───┬───┬───┐
//	│ A │ B │ C │            │ A │ B │ C │ F │
//	└───┴───┴───┘            └───┴───┴───┴───┘
//
// For a set, the element is added only if not already present (Size stays
// the same in that case).
type Adder[E any] interface {
	Add(E)
}

// Deleter describes a data structure that supports removing elements by
// value.
//
//	Before Del(C):           After Del(C):           Del(C) -> false
//	┌───┬───┬───┬───┬───┐    ┌───┬───┬───┬───┐        (already gone,
//	│ A │ B │ C │ D │ E │    │ A │ B │ D │ E │         no action taken)
//	└───┴───┴───┴───┴───┘    └───┴───┴───┴───┘
//	          ↑
//	     value to delete
//
// The Del method removes the specified element if it exists, reporting
// whether it was present. If the element does not exist, no action is
// taken and Del returns false.
type Deleter[E any] interface {
	Del(E) bool
}

// Exister describes a data structure that can check for element membership.
//
//	┌───┬───┬───┬───┬───┐
//	│ A │ B │ C │ D │ E │
//	└───┴───┴───┴───┴───┘
//
//	Exists(C) -> true
//	Exists(Z) -> false
type Exister[E any] interface {
	Exists(E) bool
}

// Iterator describes a data structure that can be traversed forward.
//
//	┌───┬───┬───┬───┬───┐
//	│ A │ B │ C │ D │ E │
//	└───┴───┴───┴───┴───┘
//	  ↓   ↓   ↓   ↓   ↓
//	  1   2   3   4   5    <- iteration order (forward)
//
// Example using Go 1.23+ range-over-func:
//
//	for value := range structure.Iter {
//	    fmt.Println(value)
//	}
type Iterator[T any] interface {
	Iter(func(T) bool)
}

// BackwardIterator describes a data structure that can be traversed in
// reverse.
//
//	┌───┬───┬───┬───┬───┐
//	│ A │ B │ C │ D │ E │
//	└───┴───┴───┴───┴───┘
//	  ↓   ↓   ↓   ↓   ↓
//	  5   4   3   2   1    <- iteration order (backward)
type BackwardIterator[T any] interface {
	IterBackward(func(T) bool)
}

// Unioner describes a set that can compute the union with another set.
//
//	A = { 1, 2, 3 }
//	B = { 3, 4, 5 }
//
//	A ∪ B (union):
//	┌─────────────────┐
//	│ 1, 2, 3, 4, 5   │
//	└─────────────────┘
//
// The Union method returns a new set containing all elements from both
// sets. Neither original set is modified.
type Unioner[Self any] interface {
	Union(Self) Self
}

// Intersecter describes a set that can compute the intersection with
// another set.
//
//	A = { 1, 2, 3, 4 }
//	B = { 3, 4, 5, 6 }
//
//	A ∩ B (intersection):
//	┌─────────┐
//	│  3, 4   │
//	└─────────┘
//
// The Intersection method returns a new set containing only elements in
// both sets. Neither original set is modified.
type Intersecter[Self any] interface {
	Intersection(Self) Self
}

// Disjointer describes a set that can check if it has no common elements
// with another.
//
//	A = { 1, 2, 3 }
//	B = { 4, 5, 6 }
//	A.Disjoint(B) → true (no overlap)
//
//	A = { 1, 2, 3 }
//	C = { 3, 4, 5 }
//	A.Disjoint(C) → false (3 is in both)
type Disjointer[Self any] interface {
	Disjoint(Self) bool
}

// Stringer is an alias for fmt.Stringer from the standard library.
type Stringer = fmt.Stringer
