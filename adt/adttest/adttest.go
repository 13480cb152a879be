// Package adttest provides randomized model-based test simulators for
// types implementing the adt interfaces: each simulator drives a
// sequence of operations against both the real implementation and a
// simple reference model (a Go map or slice), asserting the two never
// diverge.
package adttest

import (
	"math/rand/v2"
	"testing"

	"github.com/josestg/bitset/adt"
	"github.com/stretchr/testify/assert"
)

// Runner wraps a test closure produced by a simulator constructor.
type Runner func(t *testing.T)

// Run executes the simulator.
func (r Runner) Run(t *testing.T) {
	t.Helper()
	r(t)
}

// Generator produces values of type T for a simulator to feed into the
// structure under test.
type Generator[T any] func() T

// New produces one value.
func (g Generator[T]) New() T { return g() }

func randSample() int {
	return max(8, rand.IntN(64))
}

// SetSimulator drives a randomized sequence of Add/Del/Exists/Iter
// operations against an ordered integer set, cross-checking every step
// against a plain map[int]struct{} reference model and, since the
// structure under test is ORDERED (unlike a hash set), additionally
// checking that Iter yields strictly ascending indices.
func SetSimulator[
	Set interface {
		adt.Sizer
		adt.Emptier
		adt.Adder[int]
		adt.Deleter[int]
		adt.Exister[int]
		adt.Iterator[int]
	},
](c func() Set, g Generator[int], destructors ...func(Set)) Runner {
	return func(t *testing.T) {
		t.Helper()

		set := c()
		setCleanup(t, set, destructors)
		assert.Zero(t, set.Size())
		assert.True(t, set.Empty())

		truth := map[int]struct{}{}
		n := randSample()
		for range n {
			v := g.New()
			set.Add(v)
			truth[v] = struct{}{}

			assert.True(t, set.Exists(v))
			assert.Equal(t, len(truth), set.Size())
		}

		for k := range truth {
			assert.True(t, set.Exists(k))
		}

		last := -1
		set.Iter(func(v int) bool {
			_, ok := truth[v]
			assert.True(t, ok)
			assert.Greater(t, v, last, "Iter must yield strictly ascending indices")
			last = v
			return true
		})

		half := 0
		for k := range truth {
			if half >= len(truth)/2 {
				break
			}
			assert.True(t, set.Del(k), "Del must report true for a present element")
			delete(truth, k)
			half++
		}

		assert.Equal(t, len(truth), set.Size())
		for k := range truth {
			assert.True(t, set.Exists(k))
		}
	}
}

func setCleanup[Abstract any](t *testing.T, a Abstract, destructors []func(Abstract)) {
	t.Cleanup(func() {
		if len(destructors) > 0 {
			destructors[0](a)
		}
	})
}
