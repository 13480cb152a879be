package bitset

import "github.com/josestg/bitset/internal/blockbits"

// Sieve computes the set of primes in [0, n) via the sieve of
// Eratosthenes: start with every index set, clear 0 and 1, then for
// each prime p already found (in ascending order) with p*p < n, clear
// every multiple of p from p*p to n-1.
func Sieve[B blockbits.Unsigned](n int) *Set[B] {
	s := NewSet[B](n)
	s.core.SetAll()
	if n > 0 {
		s.core.ResetBit(0)
	}
	if n > 1 {
		s.core.ResetBit(1)
	}
	for p := 2; p*p < n; p++ {
		if !s.core.Test(p) {
			continue
		}
		for m := p * p; m < n; m += p {
			s.core.ResetBit(m)
		}
	}
	return s
}

// TwinPrimeFilter returns, given a set of primes, the subset p such that
// p and p+2 are both members: primes & (primes >> 2).
func TwinPrimeFilter[B blockbits.Unsigned](primes *Set[B]) *Set[B] {
	shifted := primes.core.Clone()
	shifted.ShiftRight(2)
	r := primes.Clone()
	r.core.AndWith(shifted)
	return r
}
