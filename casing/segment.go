package casing

// Split divides s into words at the given boundaries.
//
// The scan runs once, left to right. At each position a delimiter is tried
// first (the longest matching one is consumed), then the transition
// boundaries in precedence order: acronym, lowercase to uppercase,
// uppercase to lowercase, then the digit/letter transitions. Runs of
// delimiters, and delimiters at either end, never produce empty words.
// Transitions are only detected between characters of the same word; a
// consumed delimiter resets the scan.
//
// Split returns nil for an empty string and for a string made only of
// delimiters. The order of boundaries does not matter and duplicates are
// ignored.
func Split(s string, boundaries []Boundary) []string {
	rs := compileRules(boundaries)
	return rs.split(s, nil)
}

// cutFunc observes every cut the splitter makes: at is the byte offset of
// the cut and b the boundary responsible for it.
type cutFunc func(at int, b Boundary)

func (rs *ruleSet) split(s string, onCut cutFunc) []string {
	gs := graphemes(s)
	var words []string
	// start is the byte offset of the current word, first the index of its
	// first grapheme.
	start, first := 0, 0
	for i := 0; i < len(gs); {
		g := gs[i]
		if d := rs.delimiterAt(s[g.start:]); d != "" {
			words = appendWord(words, s[start:g.start])
			if onCut != nil {
				onCut(g.start, Delimiter(d))
			}
			end := g.start + len(d)
			for i < len(gs) && gs[i].start < end {
				i++
			}
			start, first = end, i
			continue
		}
		if i > first {
			next := ""
			if i+1 < len(gs) && rs.delimiterAt(s[gs[i+1].start:]) == "" {
				next = gs[i+1].text
			}
			if b, ok := rs.cutBefore(gs[i-1].text, g.text, next); ok {
				words = appendWord(words, s[start:g.start])
				start = g.start
				if onCut != nil {
					onCut(g.start, b)
				}
			}
		}
		i++
	}
	return appendWord(words, s[start:])
}

func appendWord(words []string, w string) []string {
	if w == "" {
		return words
	}
	return append(words, w)
}
