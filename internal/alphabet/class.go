package alphabet

import "strings"

// ClassName identifies a character class.
type ClassName string

const (
	Digits  ClassName = "digits"
	Upper   ClassName = "upper"
	Lower   ClassName = "lower"
	Special ClassName = "special"
	More    ClassName = "more"
)

// Class is a named group of characters offered as a unit.
type Class struct {
	Name ClassName

	chars     string
	confusing string
}

// Chars returns the class's characters. With reduce set, the glyphs that
// are easily mistaken for one another (1, O, l, |) are left out.
func (c Class) Chars(reduce bool) string {
	if !reduce || c.confusing == "" {
		return c.chars
	}

	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(c.confusing, r) {
			return -1
		}
		return r
	}, c.chars)
}

// Order matters: it is the order characters appear in an Alphabet.
var classes = []Class{
	{Name: Digits, chars: "0123456789", confusing: "1"},
	{Name: Upper, chars: "ABCDEFGHIJKLMNOPQRSTUVWXYZ", confusing: "O"},
	{Name: Lower, chars: "abcdefghijklmnopqrstuvwxyz", confusing: "l"},
	{Name: Special, chars: "_=+!@#$%&*?-"},
	{Name: More, chars: "`|^\\/~<>'\",.(){}[];:", confusing: "|"},
}

// Classes returns every class in alphabet order.
func Classes() []Class {
	return append([]Class(nil), classes...)
}

// Selection says which classes go into an alphabet.
type Selection struct {
	Digits  bool
	Upper   bool
	Lower   bool
	Special bool
	More    bool

	// ReduceConfusion swaps each class for its variant without
	// look-alike glyphs. It is not a class itself.
	ReduceConfusion bool
}

// Empty reports whether no class is selected.
func (s Selection) Empty() bool {
	return !(s.Digits || s.Upper || s.Lower || s.Special || s.More)
}

// OrAll returns s, or every class if s selects none. ReduceConfusion is kept.
func (s Selection) OrAll() Selection {
	if !s.Empty() {
		return s
	}

	return Selection{
		Digits:          true,
		Upper:           true,
		Lower:           true,
		Special:         true,
		More:            true,
		ReduceConfusion: s.ReduceConfusion,
	}
}

// Len is the alphabet size the selection yields before any exclusions.
func (s Selection) Len() int {
	n := 0
	for _, c := range classes {
		if s.has(c.Name) {
			n += len(c.Chars(s.ReduceConfusion))
		}
	}
	return n
}

func (s Selection) has(name ClassName) bool {
	switch name {
	case Digits:
		return s.Digits
	case Upper:
		return s.Upper
	case Lower:
		return s.Lower
	case Special:
		return s.Special
	case More:
		return s.More
	}
	return false
}
