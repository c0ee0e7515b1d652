// Package caseerrors provides structured error types for the wordcase library.
//
// Import path: github.com/erraggy/wordcase/caseerrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to tell a bad integer code apart from a bad option or an
// oversized input.
//
// # Error Types
//
//   - [InvalidCodeError]: an integer case, pattern, or boundary code that does
//     not name a known member
//   - [ConfigError]: an unknown name, flag value, or conflicting setting
//   - [ResourceLimitError]: an input that exceeds a configured limit
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrInvalidCode]: Matches any [InvalidCodeError]
//   - [ErrConfig]: Matches any [ConfigError]
//   - [ErrResourceLimit]: Matches any [ResourceLimitError]
//
// # Usage
//
//	out, err := hostapi.ToCase("fooBar", 42, nil)
//	if err != nil {
//	    var codeErr *caseerrors.InvalidCodeError
//	    if errors.As(err, &codeErr) {
//	        fmt.Printf("bad %s code for %s\n", codeErr.Kind, codeErr.Argument)
//	    }
//	}
//
// Conversion itself never fails: once codes and options are validated, every
// input string produces a result.
package caseerrors
