package casing

// Integer codes give every case, pattern and built-in boundary a stable
// number for hosts that cannot pass Go values. The tables below are the
// only mapping between codes and values; never derive one from the other
// by arithmetic on the Go constants.

const (
	// MaxCaseCode is the highest valid case code.
	MaxCaseCode = 17
	// MaxPatternCode is the highest valid pattern code.
	MaxPatternCode = 8
	// MaxBoundaryCode is the highest valid boundary code.
	MaxBoundaryCode = 9
)

var caseCodes = [MaxCaseCode + 1]Case{
	0:  Upper,
	1:  Lower,
	2:  Title,
	3:  Toggle,
	4:  Camel,
	5:  Pascal,
	6:  UpperCamel,
	7:  Snake,
	8:  UpperSnake,
	9:  ScreamingSnake,
	10: Kebab,
	11: Cobol,
	12: UpperKebab,
	13: Train,
	14: Flat,
	15: UpperFlat,
	16: Alternating,
	17: Sentence,
}

var patternCodes = [MaxPatternCode + 1]Pattern{
	0: PatternLowercase,
	1: PatternUppercase,
	2: PatternCapital,
	3: PatternSentence,
	4: PatternCamel,
	5: PatternAlternating,
	6: PatternToggle,
	7: PatternRandom,
	8: PatternPseudoRandom,
}

var boundaryCodes = [MaxBoundaryCode + 1]Boundary{
	0: BoundaryHyphen,
	1: BoundaryUnderscore,
	2: BoundarySpace,
	3: BoundaryUpperLower,
	4: BoundaryLowerUpper,
	5: BoundaryDigitUpper,
	6: BoundaryUpperDigit,
	7: BoundaryDigitLower,
	8: BoundaryLowerDigit,
	9: BoundaryAcronym,
}

// CaseFromCode returns the case with the given code.
func CaseFromCode(code int) (Case, bool) {
	if code < 0 || code > MaxCaseCode {
		return 0, false
	}
	return caseCodes[code], true
}

// PatternFromCode returns the pattern with the given code.
func PatternFromCode(code int) (Pattern, bool) {
	if code < 0 || code > MaxPatternCode {
		return 0, false
	}
	return patternCodes[code], true
}

// BoundaryFromCode returns the built-in boundary with the given code.
func BoundaryFromCode(code int) (Boundary, bool) {
	if code < 0 || code > MaxBoundaryCode {
		return Boundary{}, false
	}
	return boundaryCodes[code], true
}

// Code returns the integer code of c, or -1 if c is invalid.
func (c Case) Code() int {
	for i, v := range caseCodes {
		if v == c {
			return i
		}
	}
	return -1
}

// Code returns the integer code of p, or -1 if p is invalid.
func (p Pattern) Code() int {
	for i, v := range patternCodes {
		if v == p {
			return i
		}
	}
	return -1
}

// Code returns the integer code of b, or -1 if b is not a built-in
// boundary.
func (b Boundary) Code() int {
	for i, v := range boundaryCodes {
		if v == b {
			return i
		}
	}
	return -1
}
