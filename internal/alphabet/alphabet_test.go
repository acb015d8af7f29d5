package alphabet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var all = Selection{}.OrAll()

func TestBuild(t *testing.T) {
	tests := []struct {
		name      string
		sel       Selection
		forbidden string
		want      Alphabet
	}{
		{
			name: "digits only",
			sel:  Selection{Digits: true},
			want: "0123456789",
		},
		{
			name:      "digits and upper, reduced, no A",
			sel:       Selection{Digits: true, Upper: true, ReduceConfusion: true},
			forbidden: "A",
			want:      "023456789BCDEFGHIJKLMNPQRSTUVWXYZ",
		},
		{
			name: "lower reduced",
			sel:  Selection{Lower: true, ReduceConfusion: true},
			want: "abcdefghijkmnopqrstuvwxyz",
		},
		{
			name: "special ignores reduce",
			sel:  Selection{Special: true, ReduceConfusion: true},
			want: "_=+!@#$%&*?-",
		},
		{
			name: "more reduced",
			sel:  Selection{More: true, ReduceConfusion: true},
			want: "`^\\/~<>'\",.(){}[];:",
		},
		{
			name:      "forbidden absent from alphabet",
			sel:       Selection{Digits: true},
			forbidden: "xyz!",
			want:      "0123456789",
		},
		{
			name:      "forbidden duplicates",
			sel:       Selection{Digits: true},
			forbidden: "5555",
			want:      "012346789",
		},
		{
			name: "class order is fixed",
			sel:  Selection{More: true, Digits: true},
			want: "0123456789`|^\\/~<>'\",.(){}[];:",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Build(tc.sel, tc.forbidden)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBuildEmpty(t *testing.T) {
	_, err := Build(Selection{Digits: true}, "0123456789")
	require.ErrorIs(t, err, ErrEmpty)

	_, err = Build(Selection{}, "")
	require.ErrorIs(t, err, ErrEmpty, "no default applied inside Build")
}

func TestBuildLengthMatchesSelection(t *testing.T) {
	for mask := 1; mask < 1<<5; mask++ {
		for _, reduce := range []bool{false, true} {
			sel := Selection{
				Digits:          mask&1 != 0,
				Upper:           mask&2 != 0,
				Lower:           mask&4 != 0,
				Special:         mask&8 != 0,
				More:            mask&16 != 0,
				ReduceConfusion: reduce,
			}

			a, err := Build(sel, "")
			require.NoError(t, err)
			assert.Equal(t, sel.Len(), a.Len(), "%+v", sel)
		}
	}

	assert.Equal(t, 94, all.Len())
	reduced := all
	reduced.ReduceConfusion = true
	assert.Equal(t, 90, reduced.Len())
}

func TestBuildForbiddenShrinksByDistinctPresent(t *testing.T) {
	for _, c := range Classes() {
		sel := Selection{}
		switch c.Name {
		case Digits:
			sel.Digits = true
		case Upper:
			sel.Upper = true
		case Lower:
			sel.Lower = true
		case Special:
			sel.Special = true
		case More:
			sel.More = true
		}

		chars := c.Chars(false)
		forbidden := chars[:len(chars)/2] + chars[:2]

		a, err := Build(sel, forbidden)
		require.NoError(t, err)
		assert.Equal(t, len(chars)-len(chars)/2, a.Len(), c.Name)
		assert.False(t, strings.ContainsAny(string(a), forbidden), c.Name)
	}
}

func TestBuildReduceConfusion(t *testing.T) {
	sel := all
	sel.ReduceConfusion = true

	a, err := Build(sel, "")
	require.NoError(t, err)
	assert.False(t, strings.ContainsAny(string(a), "1Ol|"), string(a))

	// 0 and o stay; only the glyphs listed per class go.
	assert.Contains(t, string(a), "0")
	assert.Contains(t, string(a), "o")
}

// removeEach mirrors the one-pass-per-character removal of the C rpg tool.
func removeEach(s, forbidden string) string {
	for i := 0; i < len(forbidden); i++ {
		s = strings.ReplaceAll(s, forbidden[i:i+1], "")
	}
	return s
}

func TestBuildMatchesSequentialRemoval(t *testing.T) {
	full, err := Build(all, "")
	require.NoError(t, err)

	for _, forbidden := range []string{
		"",
		"a",
		"aaa",
		"zyx0",
		"|\\\"'",
		"Hello, World!",
		"_=+!@#$%&*?-",
		string(full[10:60]),
	} {
		got, err := Build(all, forbidden)
		require.NoError(t, err)
		assert.Equal(t, removeEach(string(full), forbidden), string(got), "forbidden %q", forbidden)
	}
}

func TestSelection(t *testing.T) {
	assert.True(t, Selection{}.Empty())
	assert.True(t, Selection{ReduceConfusion: true}.Empty())
	assert.False(t, Selection{More: true}.Empty())

	s := Selection{ReduceConfusion: true}.OrAll()
	assert.Equal(t, Selection{true, true, true, true, true, true}, s)

	one := Selection{Lower: true}
	assert.Equal(t, one, one.OrAll())
}

func TestClasses(t *testing.T) {
	cs := Classes()
	require.Len(t, cs, 5)

	names := make([]ClassName, len(cs))
	for i, c := range cs {
		names[i] = c.Name
	}
	assert.Equal(t, []ClassName{Digits, Upper, Lower, Special, More}, names)

	cs[0].Name = "mutated"
	assert.Equal(t, Digits, Classes()[0].Name)

	for _, c := range cs {
		assert.Len(t, c.Chars(true), len(c.Chars(false))-len(c.confusing), c.Name)
	}
}
