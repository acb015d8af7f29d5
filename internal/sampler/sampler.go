// Package sampler draws passwords from an alphabet using a uniform source.
package sampler

import (
	"errors"
	"fmt"

	pool "github.com/libp2p/go-buffer-pool"

	"github.com/FGasper/rpg/internal/alphabet"
)

// MaxLength is the longest password Sample produces.
const MaxLength = 512

// ErrInvalidLength means the requested length is negative or over MaxLength.
var ErrInvalidLength = errors.New("invalid password length")

// Source yields independent uniform values in [0,1).
type Source interface {
	Float64() float64
}

// Sample draws length characters from a, one Source value per character.
// A zero length yields an empty password and consumes nothing.
func Sample(a alphabet.Alphabet, length int, src Source) (string, error) {
	if length < 0 || length > MaxLength {
		return "", fmt.Errorf("%w: %d (must be 0-%d)", ErrInvalidLength, length, MaxLength)
	}

	m := a.Len()
	if m == 0 {
		return "", fmt.Errorf("sampling %d characters: %w", length, alphabet.ErrEmpty)
	}

	if length == 0 {
		return "", nil
	}

	buf := pool.Get(length)
	defer func() {
		clear(buf)
		pool.Put(buf)
	}()

	for i := range buf {
		buf[i] = a[Index(src.Float64(), m)]
	}

	return string(buf), nil
}

// Index maps u in [0,1) onto one of m equal-width bins: it returns k-1 for
// the smallest positive k with k/m > u.
func Index(u float64, m int) int {
	delta := 1.0 / float64(m)

	k := 1
	for k < m && float64(k)*delta <= u {
		k++
	}

	return k - 1
}
