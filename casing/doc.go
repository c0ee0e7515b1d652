// Package casing converts identifier-like strings between word-case styles.
//
// A conversion has three stages. The input is split into words at
// boundaries ([Boundary]), the words are re-cased by a [Pattern], and the
// result is joined with a delimiter. A [Case] is a named preset of all
// three: [Snake] splits on underscores, lowercases every word and joins
// with "_".
//
// # Quick Start
//
//	casing.Snake.Convert("fooBarBaz")   // "foo_bar_baz"
//	casing.Pascal.Convert("foo_bar")    // "FooBar"
//	casing.Snake.Is("foo_bar")          // true
//
// A [Converter] gives full control over each stage:
//
//	out := casing.NewConverter().
//		FromCase(casing.Camel).
//		SetPattern(casing.PatternUppercase).
//		SetDelim(".").
//		Convert("fooBar") // "FOO.BAR"
//
// # Boundaries
//
// Without an explicit source case the converter splits on
// [DefaultBoundaries]: the three delimiter characters, lowercase to
// uppercase transitions, digit/letter transitions and acronyms
// ("HTTPServer" becomes "HTTP", "Server"). Delimiters are consumed and never
// produce empty words. [BoundaryUpperLower] is available but not enabled by
// default.
//
// Letters are classified per grapheme cluster, so combining marks stay
// attached to the letter they modify. Case mapping is the simple Unicode
// mapping; no locale-specific rules are applied.
//
// # Integer Codes
//
// Cases, patterns and boundaries have stable integer codes (see
// [CaseFromCode], [PatternFromCode], [BoundaryFromCode]) used by host
// bindings. Codes are looked up in explicit tables; anything else is
// rejected.
//
// # Concurrency
//
// [Case], [Pattern] and [Boundary] values are immutable. A [Converter] must
// not be configured from several goroutines at once; separate converters
// are fully independent.
package casing
