// Package options validates groups of mutually exclusive inputs shared by
// the CLI and the MCP server.
package options

import (
	"strings"

	"github.com/erraggy/wordcase/caseerrors"
)

// ValidateSingleInputSource ensures exactly one of the named input sources
// is set. names and sources are parallel: sources[i] reports whether
// names[i] was provided. The error is a *caseerrors.ConfigError.
func ValidateSingleInputSource(names []string, sources ...bool) error {
	if countSet(sources) == 0 {
		return &caseerrors.ConfigError{
			Option:  strings.Join(names, "/"),
			Message: "exactly one of " + joinNames(names) + " must be provided",
		}
	}
	return ValidateExclusive(names, sources...)
}

// ValidateExclusive ensures at most one of the named input sources is set.
func ValidateExclusive(names []string, sources ...bool) error {
	if countSet(sources) > 1 {
		return &caseerrors.ConfigError{
			Option:  strings.Join(names, "/"),
			Message: "only one of " + joinNames(names) + " may be provided",
		}
	}
	return nil
}

func countSet(sources []bool) int {
	n := 0
	for _, set := range sources {
		if set {
			n++
		}
	}
	return n
}

// joinNames renders names as "a or b" or "a, b or c".
func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return "the inputs"
	case 1:
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
}
