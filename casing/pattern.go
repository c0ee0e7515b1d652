package casing

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/valyala/fastrand"
)

// Pattern decides how the case of each word is set once a string has been
// split. Patterns see the whole word sequence, so a pattern can treat the
// first word differently or carry state from one word to the next.
type Pattern uint8

const (
	// PatternLowercase lowercases every word: "foo", "bar".
	PatternLowercase Pattern = iota
	// PatternUppercase uppercases every word: "FOO", "BAR".
	PatternUppercase
	// PatternCapital capitalizes every word: "Foo", "Bar".
	PatternCapital
	// PatternSentence capitalizes the first word and lowercases the rest:
	// "Foo", "bar".
	PatternSentence
	// PatternCamel lowercases the first word and capitalizes the rest:
	// "foo", "Bar".
	PatternCamel
	// PatternAlternating alternates letters between lowercase and uppercase
	// across the whole sequence, starting lowercase: "fOo", "BaR".
	// Characters without case are kept and do not advance the alternation.
	PatternAlternating
	// PatternToggle lowercases the first letter of each word and uppercases
	// the rest: "fOO", "bAR".
	PatternToggle
	// PatternRandom sets the case of every letter at random.
	PatternRandom
	// PatternPseudoRandom sets letter case in pairs: the first letter of a
	// pair at random, the second the opposite. No three consecutive letters
	// share a case.
	PatternPseudoRandom

	numPatterns
)

var patternNames = [...]string{
	PatternLowercase:    "lowercase",
	PatternUppercase:    "uppercase",
	PatternCapital:      "capital",
	PatternSentence:     "sentence",
	PatternCamel:        "camel",
	PatternAlternating:  "alternating",
	PatternToggle:       "toggle",
	PatternRandom:       "random",
	PatternPseudoRandom: "pseudo-random",
}

// AllPatterns returns every pattern in code order.
func AllPatterns() []Pattern {
	ps := make([]Pattern, 0, numPatterns)
	for p := PatternLowercase; p < numPatterns; p++ {
		ps = append(ps, p)
	}
	return ps
}

// Valid reports whether p is a known pattern.
func (p Pattern) Valid() bool {
	return p < numPatterns
}

// IsRandom reports whether p draws from a random source, in which case
// applying it twice may give different results.
func (p Pattern) IsRandom() bool {
	return p == PatternRandom || p == PatternPseudoRandom
}

// String returns the canonical name of p.
func (p Pattern) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Pattern(%d)", uint8(p))
	}
	return patternNames[p]
}

// Apply returns a new slice holding words re-cased by p. Random patterns
// draw from a time-seeded source; use a [Converter] with [WithSeed] for
// reproducible output. An invalid pattern returns the words unchanged.
func (p Pattern) Apply(words []string) []string {
	var rng fastrand.RNG
	return p.apply(words, &rng)
}

func (p Pattern) apply(words []string, rng *fastrand.RNG) []string {
	out := make([]string, len(words))
	switch p {
	case PatternLowercase:
		for i, w := range words {
			out[i] = strings.ToLower(w)
		}
	case PatternUppercase:
		for i, w := range words {
			out[i] = strings.ToUpper(w)
		}
	case PatternCapital:
		for i, w := range words {
			out[i] = capitalize(w)
		}
	case PatternSentence:
		for i, w := range words {
			if i == 0 {
				out[i] = capitalize(w)
			} else {
				out[i] = strings.ToLower(w)
			}
		}
	case PatternCamel:
		for i, w := range words {
			if i == 0 {
				out[i] = strings.ToLower(w)
			} else {
				out[i] = capitalize(w)
			}
		}
	case PatternAlternating:
		upper := false
		for i, w := range words {
			out[i] = mapLetters(w, func() bool {
				u := upper
				upper = !upper
				return u
			})
		}
	case PatternToggle:
		for i, w := range words {
			first, rest := splitFirst(w)
			out[i] = strings.ToLower(first) + strings.ToUpper(rest)
		}
	case PatternRandom:
		for i, w := range words {
			out[i] = mapLetters(w, func() bool {
				return rng.Uint32n(2) == 1
			})
		}
	case PatternPseudoRandom:
		// pending holds the case the next letter must take to close a pair.
		var pending *bool
		for i, w := range words {
			out[i] = mapLetters(w, func() bool {
				if pending != nil {
					u := *pending
					pending = nil
					return u
				}
				u := rng.Uint32n(2) == 1
				opposite := !u
				pending = &opposite
				return u
			})
		}
	default:
		copy(out, words)
	}
	return out
}

// capitalize uppercases the first grapheme of w and lowercases the rest.
func capitalize(w string) string {
	first, rest := splitFirst(w)
	return strings.ToUpper(first) + strings.ToLower(rest)
}

// mapLetters rewrites every cased letter of w, asking upper for each one
// in turn. Runes without case are copied as-is.
func mapLetters(w string, upper func() bool) string {
	var b strings.Builder
	b.Grow(len(w))
	for _, r := range w {
		if !unicode.IsUpper(r) && !unicode.IsLower(r) {
			b.WriteRune(r)
			continue
		}
		if upper() {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
