package casing

import (
	"strings"

	"github.com/rivo/uniseg"
)

// grapheme is one user-perceived character and its byte offset in the
// string it was taken from.
type grapheme struct {
	text  string
	start int
}

func graphemes(s string) []grapheme {
	if s == "" {
		return nil
	}
	gs := make([]grapheme, 0, len(s))
	state := -1
	offset := 0
	for rest := s; rest != ""; {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		gs = append(gs, grapheme{text: cluster, start: offset})
		offset += len(cluster)
	}
	return gs
}

// splitFirst returns the first grapheme cluster of s and the remainder.
func splitFirst(s string) (first, rest string) {
	first, rest, _, _ = uniseg.FirstGraphemeClusterInString(s, -1)
	return first, rest
}

// isUpper reports whether g has case and is in its uppercase form.
func isUpper(g string) bool {
	upper := strings.ToUpper(g)
	return g == upper && upper != strings.ToLower(g)
}

// isLower reports whether g has case and is in its lowercase form.
func isLower(g string) bool {
	lower := strings.ToLower(g)
	return g == lower && lower != strings.ToUpper(g)
}

// isDigit reports whether g consists only of ASCII decimal digits.
func isDigit(g string) bool {
	if g == "" {
		return false
	}
	for i := 0; i < len(g); i++ {
		if g[i] < '0' || g[i] > '9' {
			return false
		}
	}
	return true
}
