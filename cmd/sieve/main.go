// Command sieve prints primes below a given bound, and optionally their
// twin-prime subset, using the packed bit set in github.com/josestg/bitset.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/josestg/bitset/bitset"
)

func main() {
	n := flag.Int("n", 100, "upper bound (exclusive) of the sieve")
	twins := flag.Bool("twins", false, "print the twin-prime subset instead of all primes")
	flag.Parse()

	if *n < 0 {
		log.Fatalf("sieve: -n must be >= 0, got %d", *n)
	}

	primes := bitset.Sieve[uint64](*n)
	result := primes
	if *twins {
		result = bitset.TwinPrimeFilter(primes)
	}

	fmt.Fprintln(os.Stdout, result)
}
