package hostapi

import (
	"encoding/json"
	"math"

	"github.com/erraggy/wordcase/caseerrors"
	"github.com/erraggy/wordcase/casing"
)

// Code table kinds, as reported in errors and in [Codes].
const (
	KindCase     = "case"
	KindPattern  = "pattern"
	KindBoundary = "boundary"
)

// CodeEntry is one row of a code table.
type CodeEntry struct {
	Code int    `json:"code" yaml:"code"`
	Name string `json:"name" yaml:"name"`
}

// CodeTable lists every valid code with its canonical name.
type CodeTable struct {
	Cases      []CodeEntry `json:"cases" yaml:"cases"`
	Patterns   []CodeEntry `json:"patterns" yaml:"patterns"`
	Boundaries []CodeEntry `json:"boundaries" yaml:"boundaries"`
}

// Codes returns the case, pattern and boundary code tables.
func Codes() CodeTable {
	var t CodeTable
	for code := 0; code <= casing.MaxCaseCode; code++ {
		c, _ := casing.CaseFromCode(code)
		t.Cases = append(t.Cases, CodeEntry{Code: code, Name: c.String()})
	}
	for code := 0; code <= casing.MaxPatternCode; code++ {
		p, _ := casing.PatternFromCode(code)
		t.Patterns = append(t.Patterns, CodeEntry{Code: code, Name: p.String()})
	}
	for code := 0; code <= casing.MaxBoundaryCode; code++ {
		b, _ := casing.BoundaryFromCode(code)
		t.Boundaries = append(t.Boundaries, CodeEntry{Code: code, Name: b.String()})
	}
	return t
}

func caseFromCode(argument string, code int) (casing.Case, error) {
	c, ok := casing.CaseFromCode(code)
	if !ok {
		return 0, invalidCode(argument, KindCase, code)
	}
	return c, nil
}

func patternFromCode(argument string, code int) (casing.Pattern, error) {
	p, ok := casing.PatternFromCode(code)
	if !ok {
		return 0, invalidCode(argument, KindPattern, code)
	}
	return p, nil
}

func boundaryFromCode(argument string, code int) (casing.Boundary, error) {
	b, ok := casing.BoundaryFromCode(code)
	if !ok {
		return casing.Boundary{}, invalidCode(argument, KindBoundary, code)
	}
	return b, nil
}

// CodeFromValue converts a decoded JSON number to an integer code.
// It accepts Go integers, integral floats and json.Number; anything else,
// including 2.5 or NaN, is an InvalidCodeError for argument. The code is
// not range-checked here.
func CodeFromValue(argument, kind string, v any) (int, error) {
	if code, ok := integral(v); ok {
		return code, nil
	}
	return 0, invalidCode(argument, kind, v)
}

func integral(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		if n < math.MinInt32 || n > math.MaxInt32 {
			return 0, false
		}
		return int(n), true
	case float32:
		return integralFloat(float64(n))
	case float64:
		return integralFloat(n)
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			f, ferr := n.Float64()
			if ferr != nil {
				return 0, false
			}
			return integralFloat(f)
		}
		return integral(i)
	default:
		return 0, false
	}
}

func integralFloat(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt32 || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

func invalidCode(argument, kind string, code any) error {
	return &caseerrors.InvalidCodeError{
		Argument: argument,
		Kind:     kind,
		Code:     code,
		Max:      maxCode(kind),
	}
}

func maxCode(kind string) int {
	switch kind {
	case KindCase:
		return casing.MaxCaseCode
	case KindPattern:
		return casing.MaxPatternCode
	case KindBoundary:
		return casing.MaxBoundaryCode
	default:
		return 0
	}
}
