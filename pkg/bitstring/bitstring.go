// Package bitstring provides a packed, fixed-length boolean vector used as
// the decision representation for ρMNK-landscape solutions.
package bitstring

import (
	"fmt"
	"strings"
)

const wordShift = 6
const wordMask = 63

// Bitstring is a dense, packed sequence of n bits stored in 64-bit words.
type Bitstring struct {
	n     int
	words []uint64
}

// New returns a zeroed Bitstring of length n.
func New(n int) Bitstring {
	return Bitstring{n: n, words: make([]uint64, (n+63)/64)}
}

// Len returns the number of bits.
func (b Bitstring) Len() int {
	return b.n
}

// Get returns the bit at pos.
func (b Bitstring) Get(pos int) bool {
	return b.words[pos>>wordShift]&(1<<(uint(pos)&wordMask)) != 0
}

// Set sets the bit at pos to one.
func (b Bitstring) Set(pos int) {
	b.words[pos>>wordShift] |= 1 << (uint(pos) & wordMask)
}

// Clear sets the bit at pos to zero.
func (b Bitstring) Clear(pos int) {
	b.words[pos>>wordShift] &^= 1 << (uint(pos) & wordMask)
}

// Flip toggles the bit at pos.
func (b Bitstring) Flip(pos int) {
	b.words[pos>>wordShift] ^= 1 << (uint(pos) & wordMask)
}

// SetTo sets the bit at pos to the given value.
func (b Bitstring) SetTo(pos int, v bool) {
	if v {
		b.Set(pos)
	} else {
		b.Clear(pos)
	}
}

// Clone returns an independent copy of b.
func (b Bitstring) Clone() Bitstring {
	words := make([]uint64, len(b.words))
	copy(words, b.words)
	return Bitstring{n: b.n, words: words}
}

// Equal reports whether a and b hold identical bit sequences.
func Equal(a, b Bitstring) bool {
	if a.n != b.n {
		return false
	}
	for i := range a.words {
		if a.words[i] != b.words[i] {
			return false
		}
	}
	return true
}

// String renders b in big-endian notation (index n-1 first).
func (b Bitstring) String() string {
	var sb strings.Builder
	for i := b.n - 1; i >= 0; i-- {
		if b.Get(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// FromString parses a big-endian bit string ("101" -> bit 2 = 1, bit 0 = 1).
func FromString(s string) (Bitstring, error) {
	b := New(len(s))
	for i, c := range s {
		switch c {
		case '1':
			b.Set(len(s) - 1 - i)
		case '0':
			// already clear
		default:
			return Bitstring{}, fmt.Errorf("bitstring: invalid character %q at offset %d", c, i)
		}
	}
	return b, nil
}
