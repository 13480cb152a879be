// Package prop holds reusable, parameterized test specifications for
// the bitset package — one Spec per behavioral contract, run against
// whichever block width the caller is exercising. Generalized from the
// dsa module's own adt/prop package, narrowed to the contracts a packed
// bit set actually has (membership, algebra, ordering) and extended
// with an Algebra spec covering the set-algebra identities.
package prop

import (
	"testing"

	"github.com/josestg/bitset/bitset"
	"github.com/josestg/bitset/internal/blockbits"
)

// Spec is a named, runnable property test.
type Spec struct {
	Name string
	Test func(t *testing.T)
}

func ok(t *testing.T, cond bool) {
	t.Helper()
	if !cond {
		t.Error("condition failed")
	}
}

func eq[T comparable](t *testing.T, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func mustPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	fn()
}

// BitAddExistsDel exercises Add/Del/Exists/Count on a 128-bit-wide Set,
// including block-boundary positions (63/64) and repeated add/del.
func BitAddExistsDel[B blockbits.Unsigned](t *testing.T) {
	s := bitset.NewSet[B](128)

	for i := range s.Cap() {
		ok(t, !s.Exists(i))
	}

	s.Add(0)
	ok(t, s.Exists(0))
	ok(t, !s.Exists(1))
	eq(t, s.Size(), 1)

	s.Add(0)
	eq(t, s.Size(), 1)

	s.Add(1)
	s.Add(63)
	s.Add(64)
	s.Add(127)
	eq(t, s.Size(), 5)

	s.Del(63)
	ok(t, !s.Exists(63))
	ok(t, s.Exists(64))
	eq(t, s.Size(), 4)

	s.Del(63)
	eq(t, s.Size(), 4)

	s.Del(0)
	s.Del(1)
	s.Del(64)
	s.Del(127)
	eq(t, s.Size(), 0)
}

// BitReset exercises Clear on a 256-bit-wide Set.
func BitReset[B blockbits.Unsigned](t *testing.T) {
	s := bitset.NewSet[B](256)
	s.Clear()
	eq(t, s.Size(), 0)

	for i := 0; i < s.Cap(); i += 7 {
		s.Add(i)
	}
	ok(t, s.Size() > 0)

	s.Clear()
	eq(t, s.Size(), 0)
	for i := range s.Cap() {
		ok(t, !s.Exists(i))
	}

	s.Add(100)
	eq(t, s.Size(), 1)
}

// BitCount exercises Count() tracking across Set/Reset/Flip/ResetAll
// mutation on an Array.
func BitCount[B blockbits.Unsigned](t *testing.T) {
	a := bitset.NewArray[B](128)
	eq(t, a.Count(), 0)

	must(t, a.Set(0, true))
	eq(t, a.Count(), 1)

	must(t, a.Set(1, true))
	eq(t, a.Count(), 2)

	must(t, a.Set(1, true))
	eq(t, a.Count(), 2)

	for i := 10; i < 20; i++ {
		must(t, a.Set(i, true))
	}
	eq(t, a.Count(), 12)

	must(t, a.Reset(15))
	eq(t, a.Count(), 11)

	must(t, a.Flip(100))
	eq(t, a.Count(), 12)
	must(t, a.Flip(100))
	eq(t, a.Count(), 11)

	a.ResetAll()
	eq(t, a.Count(), 0)
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// BitLen exercises Len()/Cap() across several capacities.
func BitLen[B blockbits.Unsigned](t *testing.T) {
	eq(t, bitset.NewArray[B](64).Len(), 64)
	eq(t, bitset.NewArray[B](128).Len(), 128)
	eq(t, bitset.NewArray[B](256).Len(), 256)

	a := bitset.NewArray[B](128)
	must(t, a.Set(0, true))
	must(t, a.Set(127, true))
	eq(t, a.Len(), 128)
	eq(t, a.Count(), 2)

	a.ResetAll()
	eq(t, a.Len(), 128)
}

// BitBounds exercises the checked/unchecked split: Array.Set/Reset/Flip
// and Set.Add/Del/Exists must recoverably error or panic, respectively,
// on out-of-range positions.
func BitBounds[B blockbits.Unsigned](t *testing.T) {
	a := bitset.NewArray[B](64)

	if err := a.Set(-1, true); err == nil {
		t.Error("Set(-1) = nil error, want ErrOutOfRange")
	}
	if err := a.Reset(-1); err == nil {
		t.Error("Reset(-1) = nil error, want ErrOutOfRange")
	}
	if err := a.Flip(64); err == nil {
		t.Error("Flip(64) = nil error, want ErrOutOfRange")
	}
	if _, err := a.Test(1000); err == nil {
		t.Error("Test(1000) = nil error, want ErrOutOfRange")
	}

	mustPanic(t, func() { a.At(64) })
	mustPanic(t, func() { a.At(-1) })

	s := bitset.NewSet[B](64)
	mustPanic(t, func() { s.Add(-1) })
	mustPanic(t, func() { s.Del(-1) })
	mustPanic(t, func() { s.Exists(64) })

	must(t, a.Set(63, true))
	ok(t, a.At(63))
	must(t, a.Reset(63))
	ok(t, !a.At(63))
}

// BitString exercises Array.String()'s highest-index-first rendering.
func BitString[B blockbits.Unsigned](t *testing.T) {
	a := bitset.NewArray[B](64)
	s := a.String()
	eq(t, len(s), a.Len())
	for _, c := range s {
		if c != '0' {
			t.Errorf("String() contains %c, want all '0'", c)
		}
	}

	must(t, a.Set(0, true))
	s = a.String()
	if s[len(s)-1] != '1' {
		t.Errorf("String()[last] = %c after Set(0, true), want '1'", s[len(s)-1])
	}

	a.ResetAll()
	must(t, a.Set(0, true))
	must(t, a.Set(2, true))
	must(t, a.Set(4, true))
	s = a.String()
	want := "10101"
	if got := s[len(s)-5:]; got != want {
		t.Errorf("String() tail = %q, want %q", got, want)
	}
}

// Set exercises the ordered-set ADT surface end to end: Size/Empty,
// Add/Del/Exists, and forward Iter.
func Set[B blockbits.Unsigned](t *testing.T) {
	s := bitset.NewSet[B](16)
	ok(t, s.Empty())
	eq(t, s.Size(), 0)

	s.Add(1)
	eq(t, s.Size(), 1)
	ok(t, s.Exists(1))
	ok(t, !s.Exists(2))

	s.Add(1)
	eq(t, s.Size(), 1)

	s.Add(2)
	s.Add(3)
	eq(t, s.Size(), 3)

	s.Del(2)
	eq(t, s.Size(), 2)
	ok(t, !s.Exists(2))

	var collected []int
	for v := range s.Iter {
		collected = append(collected, v)
	}
	eq(t, len(collected), 2)
	eq(t, collected[0], 1)
	eq(t, collected[1], 3)

	s.Del(1)
	s.Del(3)
	ok(t, s.Empty())
}

// Union exercises Set.Union.
func Union[B blockbits.Unsigned](t *testing.T) {
	a := bitset.NewSet[B](16)
	a.Add(1)
	a.Add(2)
	a.Add(3)

	b := bitset.NewSet[B](16)
	b.Add(3)
	b.Add(4)
	b.Add(5)

	u := a.Union(b)
	for _, v := range []int{1, 2, 3, 4, 5} {
		ok(t, u.Exists(v))
	}
	ok(t, !u.Exists(6))
}

// Intersection exercises Set.Intersection.
func Intersection[B blockbits.Unsigned](t *testing.T) {
	a := bitset.NewSet[B](16)
	a.Add(1)
	a.Add(2)
	a.Add(3)
	a.Add(4)

	b := bitset.NewSet[B](16)
	b.Add(3)
	b.Add(4)
	b.Add(5)
	b.Add(6)

	i := a.Intersection(b)
	ok(t, !i.Exists(1))
	ok(t, !i.Exists(2))
	ok(t, i.Exists(3))
	ok(t, i.Exists(4))
	ok(t, !i.Exists(5))
}

// Disjoint exercises Set.Disjoint.
func Disjoint[B blockbits.Unsigned](t *testing.T) {
	a := bitset.NewSet[B](16)
	a.Add(1)
	a.Add(2)
	a.Add(3)

	b := bitset.NewSet[B](16)
	b.Add(4)
	b.Add(5)
	b.Add(6)
	ok(t, a.Disjoint(b))

	c := bitset.NewSet[B](16)
	c.Add(3)
	c.Add(4)
	ok(t, !a.Disjoint(c))
}

// Algebra exercises the set-algebra identities: idempotence, nilpotence,
// commutativity, associativity, distributivity, involution, De Morgan,
// and the difference/symmetric-difference identities.
func Algebra[B blockbits.Unsigned](t *testing.T) {
	const n = 40
	a := bitset.NewArray[B](n)
	b := bitset.NewArray[B](n)
	c := bitset.NewArray[B](n)
	for i := 0; i < n; i += 2 {
		must(t, a.Set(i, true))
	}
	for i := 0; i < n; i += 3 {
		must(t, b.Set(i, true))
	}
	for i := 0; i < n; i += 5 {
		must(t, c.Set(i, true))
	}

	ok(t, a.Or(a).Equal(a))
	ok(t, a.And(a).Equal(a))
	zero := bitset.NewArray[B](n)
	ok(t, a.Xor(a).Equal(zero))
	ok(t, a.AndNot(a).Equal(zero))

	ok(t, a.Or(b).Equal(b.Or(a)))
	ok(t, a.And(b).Equal(b.And(a)))
	ok(t, a.Xor(b).Equal(b.Xor(a)))

	ok(t, a.Or(b).Or(c).Equal(a.Or(b.Or(c))))
	ok(t, a.And(b).And(c).Equal(a.And(b.And(c))))
	ok(t, a.Xor(b).Xor(c).Equal(a.Xor(b.Xor(c))))

	ok(t, a.And(b.Or(c)).Equal(a.And(b).Or(a.And(c))))
	ok(t, a.Or(b.And(c)).Equal(a.Or(b).And(a.Or(c))))

	ok(t, a.Not().Not().Equal(a))
	ok(t, a.Or(b).Not().Equal(a.Not().And(b.Not())))
	ok(t, a.And(b).Not().Equal(a.Not().Or(b.Not())))

	ok(t, a.AndNot(b).Equal(a.And(b.Not())))
	ok(t, a.AndNot(b).Equal(a.Or(b).AndNot(b)))
	ok(t, a.AndNot(b).Equal(a.AndNot(a.And(b))))

	ok(t, a.Xor(b).Equal(a.AndNot(b).Or(b.AndNot(a))))
	ok(t, a.Xor(b).Equal(a.Or(b).AndNot(a.And(b))))
}
