package casing

import (
	"strings"

	"github.com/erraggy/wordcase/caseerrors"
)

// ParseCase looks up a case by name. Matching ignores case and separators,
// so "UpperSnake", "upper_snake" and "UPPER SNAKE" all find [UpperSnake].
// A trailing "case" is optional: "snake_case" finds [Snake].
func ParseCase(name string) (Case, error) {
	key := nameKey(name)
	for _, c := range AllCases() {
		if matchName(key, c.String(), false) {
			return c, nil
		}
	}
	return 0, &caseerrors.ConfigError{Option: "case", Value: name, Message: "unknown case"}
}

// ParsePattern looks up a pattern by name with the same rules as
// [ParseCase]. "lower", "lowercase" and "Lower_Case" all find
// [PatternLowercase].
func ParsePattern(name string) (Pattern, error) {
	key := nameKey(name)
	for _, p := range AllPatterns() {
		if matchName(key, p.String(), true) {
			return p, nil
		}
	}
	return 0, &caseerrors.ConfigError{Option: "pattern", Value: name, Message: "unknown pattern"}
}

// ParseBoundary looks up a built-in boundary by name with the same rules
// as [ParseCase], e.g. "lower-upper" or "LowerUpper".
func ParseBoundary(name string) (Boundary, error) {
	key := nameKey(name)
	for _, b := range AllBoundaries() {
		if matchName(key, b.String(), false) {
			return b, nil
		}
	}
	return Boundary{}, &caseerrors.ConfigError{Option: "boundary", Value: name, Message: "unknown boundary"}
}

// nameKey flattens a user-supplied name with the engine itself.
func nameKey(name string) string {
	return Flat.Convert(strings.TrimSpace(name))
}

// matchName reports whether key names canonical. key may carry a "case"
// suffix. When suffixed is set the canonical names themselves may end in
// "case" and key may leave it off.
func matchName(key, canonical string, suffixed bool) bool {
	if key == "" {
		return false
	}
	want := Flat.Convert(canonical)
	if key == want || strings.TrimSuffix(key, "case") == want {
		return true
	}
	return suffixed && key+"case" == want
}
