package hostapi

import (
	"encoding/json"

	"github.com/erraggy/wordcase/casing"
)

// ToCase converts input to the case with code targetCase. When fromCase is
// non-nil input is split on that case's boundaries instead of the default
// set.
func ToCase(input string, targetCase int, fromCase *int, opts ...casing.Option) (string, error) {
	to, err := caseFromCode("targetCase", targetCase)
	if err != nil {
		return "", err
	}
	conv := casing.NewConverter(opts...)
	if fromCase != nil {
		from, err := caseFromCode("fromCase", *fromCase)
		if err != nil {
			return "", err
		}
		conv.FromCase(from)
	}
	return conv.ToCase(to).Convert(input), nil
}

// IsCase reports whether input is already in the case with code
// targetCase.
func IsCase(input string, targetCase int) (bool, error) {
	c, err := caseFromCode("targetCase", targetCase)
	if err != nil {
		return false, err
	}
	return casing.IsCase(input, c), nil
}

// MutateOptions are the raw overrides accepted by [Mutate]. Nil fields are
// absent.
type MutateOptions struct {
	// Delim joins the output words. Absent means no delimiter.
	Delim *string
	// Pattern is a pattern code. Absent means words keep their case.
	Pattern *int
	// Boundaries are boundary codes. When non-nil, even if empty, they
	// replace the default boundary set.
	Boundaries []int
	// Delimiters are extra literal delimiters to split on.
	Delimiters []string
}

// Mutate splits input and re-joins it with the raw overrides in o.
// Every code is validated before input is touched.
func Mutate(input string, o MutateOptions, opts ...casing.Option) (string, error) {
	conv := casing.NewConverter(opts...)
	if o.Boundaries != nil {
		bs := make([]casing.Boundary, 0, len(o.Boundaries))
		for _, code := range o.Boundaries {
			b, err := boundaryFromCode("boundaries", code)
			if err != nil {
				return "", err
			}
			bs = append(bs, b)
		}
		conv.SetBoundaries(bs)
	}
	if o.Pattern != nil {
		p, err := patternFromCode("pattern", *o.Pattern)
		if err != nil {
			return "", err
		}
		conv.SetPattern(p)
	}
	for _, d := range o.Delimiters {
		conv.AddBoundary(casing.Delimiter(d))
	}
	if o.Delim != nil {
		conv.SetDelim(*o.Delim)
	}
	return conv.Convert(input), nil
}

// DecodeMutateOptions reads mutate options from a decoded JSON object.
//
// Recognized keys are "delim" (string), "pattern" (code), "boundaries"
// (array of codes) and "delimiters" (array of strings). A key holding a
// value of the wrong JSON type is treated as absent, as are non-string
// entries of "delimiters". A "pattern" or "boundaries" entry that is a
// number but not an integral code is an InvalidCodeError, and so is any
// non-numeric entry of "boundaries".
func DecodeMutateOptions(raw map[string]any) (MutateOptions, error) {
	var o MutateOptions
	if d, ok := raw["delim"].(string); ok {
		o.Delim = &d
	}
	if v, ok := raw["pattern"]; ok && isNumber(v) {
		code, err := CodeFromValue("pattern", KindPattern, v)
		if err != nil {
			return MutateOptions{}, err
		}
		o.Pattern = &code
	}
	if list, ok := raw["boundaries"].([]any); ok {
		o.Boundaries = make([]int, 0, len(list))
		for _, v := range list {
			code, err := CodeFromValue("boundaries", KindBoundary, v)
			if err != nil {
				return MutateOptions{}, err
			}
			o.Boundaries = append(o.Boundaries, code)
		}
	}
	if list, ok := raw["delimiters"].([]any); ok {
		for _, v := range list {
			if d, ok := v.(string); ok {
				o.Delimiters = append(o.Delimiters, d)
			}
		}
	}
	return o, nil
}

// ListFrom returns the codes of the built-in boundaries found in input, in
// ascending code order.
func ListFrom(input string) []int {
	found := casing.ListFrom(input)
	codes := make([]int, 0, len(found))
	for _, b := range found {
		codes = append(codes, b.Code())
	}
	return codes
}

func isNumber(v any) bool {
	switch v.(type) {
	case int, int32, int64, float32, float64, json.Number:
		return true
	default:
		return false
	}
}
