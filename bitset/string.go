package bitset

import (
	"io"
	"strings"

	"github.com/josestg/bitset/internal/blockbits"
)

// stringOptions holds the configurable parts of ArrayFromString.
type stringOptions struct {
	offset    int
	count     int
	hasCount  bool
	zero, one byte
}

// StringOpt configures ArrayFromString. See WithOffset, WithCount, and
// WithZeroOne.
type StringOpt func(*stringOptions)

// WithOffset starts reading the input string at byte position p instead
// of 0.
func WithOffset(p int) StringOpt {
	return func(o *stringOptions) { o.offset = p }
}

// WithCount limits the read window to n bytes starting at the offset,
// instead of reading to the end of the string.
func WithCount(n int) StringOpt {
	return func(o *stringOptions) { o.count, o.hasCount = n, true }
}

// WithZeroOne changes which bytes are recognized as the unset/set
// characters, instead of the default '0'/'1'.
func WithZeroOne(zero, one byte) StringOpt {
	return func(o *stringOptions) { o.zero, o.one = zero, one }
}

// ArrayFromString builds an Array from a textual window of s: highest
// index first, the default alphabet '1' for set and '0' for unset
// (override with WithZeroOne). The array's length equals the window's
// byte count (the full string, or WithCount's n if given).
//
// Returns ErrOutOfRange if the requested [offset, offset+count) window
// falls outside s, and ErrInvalidArgument if the window contains a byte
// that is neither the zero nor the one character.
func ArrayFromString[B blockbits.Unsigned](s string, opts ...StringOpt) (*Array[B], error) {
	cfg := stringOptions{zero: '0', one: '1'}
	for _, opt := range opts {
		opt(&cfg)
	}

	count := len(s) - cfg.offset
	if cfg.hasCount {
		count = cfg.count
	}
	if cfg.offset < 0 || count < 0 || cfg.offset+count > len(s) {
		return nil, outOfRangeErr("ArrayFromString", cfg.offset, len(s))
	}

	window := s[cfg.offset : cfg.offset+count]
	a := NewArray[B](count)
	for i, c := range []byte(window) {
		pos := count - 1 - i // highest index first
		switch c {
		case cfg.one:
			a.core.SetBit(pos)
		case cfg.zero:
			// already unset
		default:
			return nil, invalidByteErr(cfg.offset+i, c)
		}
	}
	return a, nil
}

// WriteTo writes a's textual rendering (via String) to w, implementing
// io.WriterTo.
func (a *Array[B]) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, a.String())
	return int64(n), err
}

// ReadFrom replaces a's contents by reading a textual rendering (highest
// index first, '1'/'0') from r, implementing io.ReaderFrom. The number
// of bytes read must equal a.Len(); mismatches or unrecognized bytes
// return ErrInvalidArgument.
func (a *Array[B]) ReadFrom(r io.Reader) (int64, error) {
	var buf strings.Builder
	n, err := io.Copy(&buf, r)
	if err != nil {
		return n, err
	}
	text := buf.String()
	if len(text) != a.Len() {
		return n, lengthMismatchErr(len(text), a.Len())
	}
	for i, c := range []byte(text) {
		pos := a.Len() - 1 - i
		switch c {
		case '1':
			a.core.SetBit(pos)
		case '0':
			a.core.ResetBit(pos)
		default:
			return n, invalidByteErr(i, c)
		}
	}
	return n, nil
}
