package casing

import "fmt"

// Case is a named word-case style: the boundaries a string in that style is
// split on, the pattern its words follow and the delimiter that joins them.
type Case uint8

const (
	// Upper is "FOO BAR".
	Upper Case = iota
	// Lower is "foo bar".
	Lower
	// Title is "Foo Bar".
	Title
	// Toggle is "fOO bAR".
	Toggle
	// Camel is "fooBar".
	Camel
	// Pascal is "FooBar".
	Pascal
	// UpperCamel is "FooBar", an alias of Pascal.
	UpperCamel
	// Snake is "foo_bar".
	Snake
	// UpperSnake is "FOO_BAR".
	UpperSnake
	// ScreamingSnake is "FOO_BAR", an alias of UpperSnake.
	ScreamingSnake
	// Kebab is "foo-bar".
	Kebab
	// Cobol is "FOO-BAR".
	Cobol
	// UpperKebab is "FOO-BAR", an alias of Cobol.
	UpperKebab
	// Train is "Foo-Bar".
	Train
	// Flat is "foobar".
	Flat
	// UpperFlat is "FOOBAR".
	UpperFlat
	// Alternating is "fOo BaR".
	Alternating
	// Sentence is "Foo bar".
	Sentence

	numCases
)

type casePreset struct {
	name       string
	boundaries []Boundary
	pattern    Pattern
	delim      string
}

var (
	spaceBoundaries      = []Boundary{BoundarySpace}
	underscoreBoundaries = []Boundary{BoundaryUnderscore}
	hyphenBoundaries     = []Boundary{BoundaryHyphen}
	camelBoundaries      = []Boundary{
		BoundaryLowerUpper,
		BoundaryAcronym,
		BoundaryLowerDigit,
		BoundaryUpperDigit,
		BoundaryDigitLower,
		BoundaryDigitUpper,
	}
)

var casePresets = [numCases]casePreset{
	Upper:          {"upper", spaceBoundaries, PatternUppercase, " "},
	Lower:          {"lower", spaceBoundaries, PatternLowercase, " "},
	Title:          {"title", spaceBoundaries, PatternCapital, " "},
	Toggle:         {"toggle", spaceBoundaries, PatternToggle, " "},
	Camel:          {"camel", camelBoundaries, PatternCamel, ""},
	Pascal:         {"pascal", camelBoundaries, PatternCapital, ""},
	UpperCamel:     {"upper-camel", camelBoundaries, PatternCapital, ""},
	Snake:          {"snake", underscoreBoundaries, PatternLowercase, "_"},
	UpperSnake:     {"upper-snake", underscoreBoundaries, PatternUppercase, "_"},
	ScreamingSnake: {"screaming-snake", underscoreBoundaries, PatternUppercase, "_"},
	Kebab:          {"kebab", hyphenBoundaries, PatternLowercase, "-"},
	Cobol:          {"cobol", hyphenBoundaries, PatternUppercase, "-"},
	UpperKebab:     {"upper-kebab", hyphenBoundaries, PatternUppercase, "-"},
	Train:          {"train", hyphenBoundaries, PatternCapital, "-"},
	Flat:           {"flat", nil, PatternLowercase, ""},
	UpperFlat:      {"upper-flat", nil, PatternUppercase, ""},
	Alternating:    {"alternating", spaceBoundaries, PatternAlternating, " "},
	Sentence:       {"sentence", spaceBoundaries, PatternSentence, " "},
}

// AllCases returns every case in code order.
func AllCases() []Case {
	cs := make([]Case, 0, numCases)
	for c := Upper; c < numCases; c++ {
		cs = append(cs, c)
	}
	return cs
}

// Valid reports whether c is a known case.
func (c Case) Valid() bool {
	return c < numCases
}

// String returns the canonical name of c, e.g. "upper-snake".
func (c Case) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Case(%d)", uint8(c))
	}
	return casePresets[c].name
}

// Boundaries returns the boundaries a string already in case c is split
// on. Flat and UpperFlat have none.
func (c Case) Boundaries() []Boundary {
	if !c.Valid() {
		return nil
	}
	return append([]Boundary(nil), casePresets[c].boundaries...)
}

// Pattern returns the pattern words take in case c. An invalid case
// reports PatternLowercase.
func (c Case) Pattern() Pattern {
	if !c.Valid() {
		return PatternLowercase
	}
	return casePresets[c].pattern
}

// Delim returns the string that joins words in case c.
func (c Case) Delim() string {
	if !c.Valid() {
		return ""
	}
	return casePresets[c].delim
}

// Convert converts s to case c, splitting s on [DefaultBoundaries].
func (c Case) Convert(s string) string {
	return NewConverter().ToCase(c).Convert(s)
}

// Is reports whether s is already in case c. See [IsCase].
func (c Case) Is(s string) bool {
	return IsCase(s, c)
}
