// Package blockbits wraps the hardware bit-scan and population-count
// primitives the packed bit array needs, uniformly across every unsigned
// block width the set supports (8, 16, 32, and 64).
//
// # Why not just call math/bits directly?
//
// math/bits exposes a separate function per width (LeadingZeros8,
// LeadingZeros16, ...). The packed bit array is generic over the block
// type, so it needs one generic entry point that dispatches to the right
// width with a type switch on the block value. This package is that
// dispatch layer.
//
// # Further Reading
//
// https://en.wikipedia.org/wiki/Find_first_set
// https://en.wikipedia.org/wiki/Hamming_weight
package blockbits

import "math/bits"

// Unsigned constrains the native block widths a packed bit array can be
// built from. Block stores W bits of set membership, one bit per index;
// W is the type's bit width.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Width returns the bit width of B.
func Width[B Unsigned]() int {
	var zero B
	switch any(zero).(type) {
	case uint8:
		return 8
	case uint16:
		return 16
	case uint32:
		return 32
	case uint64:
		return 64
	default:
		panic("blockbits: unsupported block type")
	}
}

// CountLeadingZeros returns the number of leading (most-significant)
// zero bits in x. Returns the full width when x is zero.
//
// complexity:
//   - time : O(1)
//   - space: O(1)
func CountLeadingZeros[B Unsigned](x B) int {
	switch v := any(x).(type) {
	case uint8:
		return bits.LeadingZeros8(v)
	case uint16:
		return bits.LeadingZeros16(v)
	case uint32:
		return bits.LeadingZeros32(v)
	case uint64:
		return bits.LeadingZeros64(v)
	default:
		panic("blockbits: unsupported block type")
	}
}

// CountTrailingZeros returns the number of trailing (least-significant)
// zero bits in x. Returns the full width when x is zero.
//
// complexity:
//   - time : O(1)
//   - space: O(1)
func CountTrailingZeros[B Unsigned](x B) int {
	switch v := any(x).(type) {
	case uint8:
		return bits.TrailingZeros8(v)
	case uint16:
		return bits.TrailingZeros16(v)
	case uint32:
		return bits.TrailingZeros32(v)
	case uint64:
		return bits.TrailingZeros64(v)
	default:
		panic("blockbits: unsupported block type")
	}
}

// PopCount returns the number of one bits (the Hamming weight) in x.
//
// complexity:
//   - time : O(1)
//   - space: O(1)
func PopCount[B Unsigned](x B) int {
	switch v := any(x).(type) {
	case uint8:
		return bits.OnesCount8(v)
	case uint16:
		return bits.OnesCount16(v)
	case uint32:
		return bits.OnesCount32(v)
	case uint64:
		return bits.OnesCount64(v)
	default:
		panic("blockbits: unsupported block type")
	}
}
