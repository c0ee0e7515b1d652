package casing

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fastrand"
)

func TestPatternApply(t *testing.T) {
	tests := []struct {
		pattern Pattern
		input   []string
		want    []string
	}{
		{PatternLowercase, []string{"FOO", "Bar"}, []string{"foo", "bar"}},
		{PatternUppercase, []string{"foo", "Bar"}, []string{"FOO", "BAR"}},
		{PatternCapital, []string{"fOO", "bAR"}, []string{"Foo", "Bar"}},
		{PatternSentence, []string{"foo", "BAR", "baz"}, []string{"Foo", "bar", "baz"}},
		{PatternCamel, []string{"Foo", "bar", "BAZ"}, []string{"foo", "Bar", "Baz"}},
		{PatternAlternating, []string{"foo", "bar"}, []string{"fOo", "BaR"}},
		{PatternAlternating, []string{"a1b", "c"}, []string{"a1B", "c"}},
		{PatternToggle, []string{"foo", "BAR"}, []string{"fOO", "bAR"}},
		{PatternCapital, []string{"2", "éclair"}, []string{"2", "Éclair"}},
		{PatternCapital, nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern.String()+"/"+strings.Join(tt.input, ","), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pattern.Apply(tt.input))
		})
	}
}

func TestPatternApply_DoesNotModifyInput(t *testing.T) {
	in := []string{"Foo", "Bar"}
	_ = PatternUppercase.Apply(in)
	assert.Equal(t, []string{"Foo", "Bar"}, in)
}

func TestPatternApply_Invalid(t *testing.T) {
	in := []string{"Foo", "bAR"}
	assert.Equal(t, in, Pattern(200).Apply(in))
}

func TestPatternRandom_Seeded(t *testing.T) {
	words := []string{"the", "quick", "brown", "fox", "jumps", "over", "the", "lazy", "dog"}
	for _, p := range []Pattern{PatternRandom, PatternPseudoRandom} {
		t.Run(p.String(), func(t *testing.T) {
			var a, b fastrand.RNG
			a.Seed(42)
			b.Seed(42)
			first := p.apply(words, &a)
			second := p.apply(words, &b)
			assert.Equal(t, first, second)
			require.Len(t, first, len(words))
			for i := range words {
				assert.True(t, strings.EqualFold(words[i], first[i]), "%q vs %q", words[i], first[i])
			}
		})
	}
}

func TestPatternPseudoRandom_NoThreeInARow(t *testing.T) {
	words := []string{"pseudo", "random", "letters", "come", "in", "opposite", "pairs"}
	for seed := uint32(1); seed <= 20; seed++ {
		var rng fastrand.RNG
		rng.Seed(seed)
		var letters []bool
		for _, w := range PatternPseudoRandom.apply(words, &rng) {
			for _, r := range w {
				letters = append(letters, unicode.IsUpper(r))
			}
		}
		for i := 2; i < len(letters); i++ {
			if letters[i] == letters[i-1] && letters[i] == letters[i-2] {
				t.Fatalf("seed %d: three letters in a row share a case at %d", seed, i)
			}
		}
	}
}

func TestPatternNames(t *testing.T) {
	assert.Len(t, AllPatterns(), MaxPatternCode+1)
	assert.Equal(t, "lowercase", PatternLowercase.String())
	assert.Equal(t, "pseudo-random", PatternPseudoRandom.String())
	assert.Equal(t, "Pattern(99)", Pattern(99).String())
	assert.True(t, PatternCamel.Valid())
	assert.False(t, Pattern(99).Valid())
	assert.True(t, PatternRandom.IsRandom())
	assert.False(t, PatternToggle.IsRandom())
}
