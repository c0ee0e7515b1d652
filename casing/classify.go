package casing

import "strings"

// IsCase reports whether s is already in case c, that is whether
//
//	NewConverter().FromCase(c).ToCase(c).Convert(s) == s
//
// The check splits s on the boundaries of c and compares each re-cased word
// against s in place, stopping at the first mismatch instead of building
// the converted string. The empty string is in every case.
func IsCase(s string, c Case) bool {
	if s == "" {
		return true
	}
	rs := compileRules(c.Boundaries())
	words := c.Pattern().apply(rs.split(s, nil), nil)
	delim := c.Delim()

	rest := s
	for i, w := range words {
		if i > 0 {
			if !strings.HasPrefix(rest, delim) {
				return false
			}
			rest = rest[len(delim):]
		}
		if !strings.HasPrefix(rest, w) {
			return false
		}
		rest = rest[len(w):]
	}
	return rest == ""
}
