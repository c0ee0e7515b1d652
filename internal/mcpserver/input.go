package mcpserver

import (
	"github.com/erraggy/wordcase/caseerrors"
	"github.com/erraggy/wordcase/casing"
	"github.com/erraggy/wordcase/hostapi"
	"github.com/erraggy/wordcase/internal/options"
)

// caseSelector resolves a case given either by name or by integer code.
// Code is untyped so that non-integral JSON numbers reach validation
// instead of being rounded by the decoder.
type caseSelector struct {
	Name     string
	Code     any
	NameArg  string
	CodeArg  string
	Required bool
}

// resolve returns the case code, or nil when the selector is optional and
// nothing was set.
func (s caseSelector) resolve() (*int, error) {
	hasName, hasCode := s.Name != "", s.Code != nil
	if !s.Required && !hasName && !hasCode {
		return nil, nil
	}
	names := []string{s.NameArg, s.CodeArg}
	if err := options.ValidateSingleInputSource(names, hasName, hasCode); err != nil {
		return nil, err
	}

	if hasName {
		c, err := casing.ParseCase(s.Name)
		if err != nil {
			return nil, err
		}
		code := c.Code()
		return &code, nil
	}
	code, err := hostapi.CodeFromValue(s.CodeArg, hostapi.KindCase, s.Code)
	if err != nil {
		return nil, err
	}
	return &code, nil
}

// checkInputSize rejects inputs larger than cfg.MaxInputSize.
func checkInputSize(input string) error {
	if int64(len(input)) > cfg.MaxInputSize {
		return &caseerrors.ResourceLimitError{
			ResourceType: "input_size",
			Limit:        cfg.MaxInputSize,
			Actual:       int64(len(input)),
			Message:      "input exceeds WORDCASE_MAX_INPUT_SIZE",
		}
	}
	return nil
}

// caseName returns the canonical name for a validated case code.
func caseName(code int) string {
	c, _ := casing.CaseFromCode(code)
	return c.String()
}
