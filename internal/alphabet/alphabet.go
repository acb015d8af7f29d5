// Package alphabet assembles the candidate characters a password is drawn from.
package alphabet

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
)

// ErrEmpty means no characters are left to draw from.
var ErrEmpty = errors.New("alphabet is empty")

// Alphabet is an ordered set of distinct ASCII characters.
type Alphabet string

// Len returns the number of characters in the alphabet.
func (a Alphabet) Len() int {
	return len(a)
}

// Build concatenates the selected classes in class order and then drops
// every character that appears in forbidden.
//
// Build does not apply the "nothing selected means everything" default;
// use Selection.OrAll for that.
func Build(sel Selection, forbidden string) (Alphabet, error) {
	var working []byte
	for _, c := range classes {
		if sel.has(c.Name) {
			working = append(working, c.Chars(sel.ReduceConfusion)...)
		}
	}

	excluded := lo.Keyify([]byte(forbidden))
	kept := lo.Reject(working, func(ch byte, _ int) bool {
		_, drop := excluded[ch]
		return drop
	})

	if len(kept) == 0 {
		return "", fmt.Errorf("%w (selected %d characters, forbidden %q)", ErrEmpty, len(working), forbidden)
	}

	return Alphabet(kept), nil
}
