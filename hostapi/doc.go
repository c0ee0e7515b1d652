// Package hostapi exposes the casing engine to hosts that exchange plain
// values: strings, integer codes and loosely typed option maps decoded from
// JSON.
//
// Every function validates its integer codes against the fixed code tables
// in [casing] before any conversion work starts. An unknown or non-integral
// code is reported as a [*caseerrors.InvalidCodeError] that names the
// offending argument; codes are never coerced.
//
//	out, err := hostapi.ToCase("fooBarBaz", 7, nil) // "foo_bar_baz"
//
//	pattern := 1
//	delim := "."
//	out, err = hostapi.Mutate("fooBar", hostapi.MutateOptions{
//		Delim:   &delim,
//		Pattern: &pattern,
//	}) // "FOO.BAR"
//
// The package holds no state and is safe for concurrent use.
package hostapi
