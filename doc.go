// Package wordcase converts identifier-like strings between word-case
// styles such as camelCase, snake_case, kebab-case and Title Case.
//
// # Overview
//
// The module is organized in layers:
//
//   - casing: the conversion engine. Boundaries, segmentation, patterns,
//     named cases, the Converter builder and the IsCase classifier.
//   - caseerrors: structured error types usable with errors.Is and errors.As.
//   - hostapi: the engine over plain values and stable integer codes, for
//     hosts that cannot pass Go values.
//   - cmd/wordcase: a command-line tool, including an MCP server over stdio.
//
// # Installation
//
//	go get github.com/erraggy/wordcase
//
// Install the CLI:
//
//	go install github.com/erraggy/wordcase/cmd/wordcase@latest
//
// # Quick Start
//
//	import "github.com/erraggy/wordcase/casing"
//
//	casing.Snake.Convert("fooBarBaz")            // "foo_bar_baz"
//	casing.Pascal.Convert("foo_bar_baz")         // "FooBarBaz"
//	casing.Snake.Is("fooBar")                    // false
//	casing.Split("HTTPServer2Instances", casing.DefaultBoundaries())
//	// ["HTTP" "Server" "2" "Instances"]
//
// From the command line:
//
//	wordcase to snake fooBarBaz
//	wordcase is camel fooBarBaz
//	wordcase mutate --delim . --pattern uppercase fooBar
//	wordcase split XMLHttpRequest
//	wordcase boundaries foo-bar_baz
//
// # Build Metadata
//
// [Version], [Commit], [BuildTime] and [BuildInfo] report the metadata
// stamped into release builds via ldflags.
package wordcase
