package casing

import (
	"fmt"
	"sort"
	"strings"
)

// Boundary is a rule that decides where one word ends and the next begins.
//
// The built-in boundaries are the BoundaryX values. [Delimiter] builds a
// boundary for an arbitrary literal string. Boundary values are comparable
// and can be used as map keys.
type Boundary struct {
	kind  boundaryKind
	delim string
}

type boundaryKind uint8

const (
	kindNone boundaryKind = iota
	kindHyphen
	kindUnderscore
	kindSpace
	kindUpperLower
	kindLowerUpper
	kindDigitUpper
	kindUpperDigit
	kindDigitLower
	kindLowerDigit
	kindAcronym
	kindDelimiter
)

var (
	// BoundaryHyphen splits on "-", which is consumed.
	BoundaryHyphen = Boundary{kind: kindHyphen, delim: "-"}

	// BoundaryUnderscore splits on "_", which is consumed.
	BoundaryUnderscore = Boundary{kind: kindUnderscore, delim: "_"}

	// BoundarySpace splits on " ", which is consumed.
	BoundarySpace = Boundary{kind: kindSpace, delim: " "}

	// BoundaryUpperLower splits between an uppercase letter and a following
	// lowercase letter: "Aa" becomes "A", "a".
	BoundaryUpperLower = Boundary{kind: kindUpperLower}

	// BoundaryLowerUpper splits between a lowercase letter and a following
	// uppercase letter: "fooBar" becomes "foo", "Bar".
	BoundaryLowerUpper = Boundary{kind: kindLowerUpper}

	// BoundaryDigitUpper splits between a digit and a following uppercase
	// letter: "1A" becomes "1", "A".
	BoundaryDigitUpper = Boundary{kind: kindDigitUpper}

	// BoundaryUpperDigit splits between an uppercase letter and a following
	// digit: "A1" becomes "A", "1".
	BoundaryUpperDigit = Boundary{kind: kindUpperDigit}

	// BoundaryDigitLower splits between a digit and a following lowercase
	// letter: "1a" becomes "1", "a".
	BoundaryDigitLower = Boundary{kind: kindDigitLower}

	// BoundaryLowerDigit splits between a lowercase letter and a following
	// digit: "a1" becomes "a", "1".
	BoundaryLowerDigit = Boundary{kind: kindLowerDigit}

	// BoundaryAcronym splits an acronym from the word that follows it. In
	// "HTTPServer" the cut falls before the "S" that starts "Server".
	BoundaryAcronym = Boundary{kind: kindAcronym}
)

// Delimiter returns a boundary that splits on every occurrence of d and
// consumes it. The literals "-", "_" and " " return the matching built-in
// boundary. An empty delimiter never fires.
func Delimiter(d string) Boundary {
	switch d {
	case "-":
		return BoundaryHyphen
	case "_":
		return BoundaryUnderscore
	case " ":
		return BoundarySpace
	}
	return Boundary{kind: kindDelimiter, delim: d}
}

// AllBoundaries returns every built-in boundary in code order.
func AllBoundaries() []Boundary {
	return []Boundary{
		BoundaryHyphen,
		BoundaryUnderscore,
		BoundarySpace,
		BoundaryUpperLower,
		BoundaryLowerUpper,
		BoundaryDigitUpper,
		BoundaryUpperDigit,
		BoundaryDigitLower,
		BoundaryLowerDigit,
		BoundaryAcronym,
	}
}

// DefaultBoundaries returns the boundaries a new [Converter] splits on:
// every built-in boundary except [BoundaryUpperLower].
func DefaultBoundaries() []Boundary {
	return []Boundary{
		BoundaryHyphen,
		BoundaryUnderscore,
		BoundarySpace,
		BoundaryLowerUpper,
		BoundaryDigitUpper,
		BoundaryUpperDigit,
		BoundaryDigitLower,
		BoundaryLowerDigit,
		BoundaryAcronym,
	}
}

// DigitBoundaries returns the four digit/letter transitions. Remove them
// from a converter to keep identifiers like "utf8" or "v2beta" whole.
func DigitBoundaries() []Boundary {
	return []Boundary{
		BoundaryDigitUpper,
		BoundaryUpperDigit,
		BoundaryDigitLower,
		BoundaryLowerDigit,
	}
}

// IsDelimiter reports whether b consumes a literal string.
func (b Boundary) IsDelimiter() bool {
	return b.delim != ""
}

// Delim returns the literal consumed by b, or "" for transition boundaries.
func (b Boundary) Delim() string {
	return b.delim
}

// IsBuiltin reports whether b is one of the BoundaryX values.
func (b Boundary) IsBuiltin() bool {
	return b.kind > kindNone && b.kind < kindDelimiter
}

var boundaryNames = [...]string{
	kindNone:       "none",
	kindHyphen:     "hyphen",
	kindUnderscore: "underscore",
	kindSpace:      "space",
	kindUpperLower: "upper-lower",
	kindLowerUpper: "lower-upper",
	kindDigitUpper: "digit-upper",
	kindUpperDigit: "upper-digit",
	kindDigitLower: "digit-lower",
	kindLowerDigit: "lower-digit",
	kindAcronym:    "acronym",
}

// String returns the canonical name of b, e.g. "lower-upper".
func (b Boundary) String() string {
	if b.kind < kindDelimiter {
		return boundaryNames[b.kind]
	}
	return fmt.Sprintf("delimiter(%q)", b.delim)
}

// ListFrom returns the built-in boundaries whose trigger occurs somewhere
// in s, in code order. Transitions are detected across the whole string,
// including across delimiters.
func ListFrom(s string) []Boundary {
	gs := graphemes(s)
	var found []Boundary
	for _, b := range AllBoundaries() {
		if b.occursIn(s, gs) {
			found = append(found, b)
		}
	}
	return found
}

func (b Boundary) occursIn(s string, gs []grapheme) bool {
	if b.IsDelimiter() {
		return strings.Contains(s, b.delim)
	}
	for i := 1; i < len(gs); i++ {
		next := ""
		if i+1 < len(gs) {
			next = gs[i+1].text
		}
		if b.firesBefore(gs[i-1].text, gs[i].text, next) {
			return true
		}
	}
	return false
}

// firesBefore reports whether a transition boundary cuts between prev and
// cur. next is the grapheme after cur, or "" when cur ends the word.
func (b Boundary) firesBefore(prev, cur, next string) bool {
	switch b.kind {
	case kindUpperLower:
		return isUpper(prev) && isLower(cur)
	case kindLowerUpper:
		return isLower(prev) && isUpper(cur)
	case kindDigitUpper:
		return isDigit(prev) && isUpper(cur)
	case kindUpperDigit:
		return isUpper(prev) && isDigit(cur)
	case kindDigitLower:
		return isDigit(prev) && isLower(cur)
	case kindLowerDigit:
		return isLower(prev) && isDigit(cur)
	case kindAcronym:
		return next != "" && isUpper(prev) && isUpper(cur) && isLower(next)
	default:
		return false
	}
}

// transitionPrecedence is the order in which transition boundaries are
// tried at a single position. Delimiters are handled before any of these.
var transitionPrecedence = [...]boundaryKind{
	kindAcronym,
	kindLowerUpper,
	kindUpperLower,
	kindDigitUpper,
	kindUpperDigit,
	kindDigitLower,
	kindLowerDigit,
}

// ruleSet is a compiled boundary set ready for splitting.
type ruleSet struct {
	transitions []Boundary // in transitionPrecedence order
	delims      []string   // longest first
}

func compileRules(boundaries []Boundary) ruleSet {
	var enabled [kindDelimiter]bool
	seen := make(map[string]bool)
	var rs ruleSet
	for _, b := range boundaries {
		switch {
		case b.IsDelimiter():
			if !seen[b.delim] {
				seen[b.delim] = true
				rs.delims = append(rs.delims, b.delim)
			}
		case b.IsBuiltin():
			enabled[b.kind] = true
		}
	}
	for _, k := range transitionPrecedence {
		if enabled[k] {
			rs.transitions = append(rs.transitions, Boundary{kind: k})
		}
	}
	sort.Slice(rs.delims, func(i, j int) bool {
		if len(rs.delims[i]) != len(rs.delims[j]) {
			return len(rs.delims[i]) > len(rs.delims[j])
		}
		return rs.delims[i] < rs.delims[j]
	})
	return rs
}

// delimiterAt returns the delimiter that s starts with, or "".
func (rs *ruleSet) delimiterAt(s string) string {
	for _, d := range rs.delims {
		if strings.HasPrefix(s, d) {
			return d
		}
	}
	return ""
}

// cutBefore returns the highest-precedence transition boundary that fires
// between prev and cur.
func (rs *ruleSet) cutBefore(prev, cur, next string) (Boundary, bool) {
	for _, b := range rs.transitions {
		if b.firesBefore(prev, cur, next) {
			return b, true
		}
	}
	return Boundary{}, false
}
