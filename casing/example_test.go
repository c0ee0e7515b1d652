package casing_test

import (
	"fmt"

	"github.com/erraggy/wordcase/casing"
)

func ExampleCase_Convert() {
	fmt.Println(casing.Snake.Convert("fooBarBaz"))
	fmt.Println(casing.Pascal.Convert("foo_bar_baz"))
	fmt.Println(casing.Kebab.Convert("HTTPServer2Instances"))
	// Output:
	// foo_bar_baz
	// FooBarBaz
	// http-server-2-instances
}

func ExampleCase_Is() {
	fmt.Println(casing.Snake.Is("foo_bar"))
	fmt.Println(casing.Snake.Is("fooBar"))
	// Output:
	// true
	// false
}

func ExampleConverter() {
	out := casing.NewConverter().
		SetDelim(".").
		SetPattern(casing.PatternUppercase).
		Convert("fooBar")
	fmt.Println(out)
	// Output: FOO.BAR
}

func ExampleConverter_RemoveBoundaries() {
	out := casing.NewConverter().
		RemoveBoundaries(casing.DigitBoundaries()).
		ToCase(casing.Snake).
		Convert("utf8Value_v2")
	fmt.Println(out)
	// Output: utf8value_v2
}

func ExampleSplit() {
	fmt.Printf("%q\n", casing.Split("HTTPServer2Instances", casing.DefaultBoundaries()))
	// Output: ["HTTP" "Server" "2" "Instances"]
}

func ExampleListFrom() {
	fmt.Println(casing.ListFrom("foo-bar_baz"))
	// Output: [hyphen underscore]
}

func ExampleCaseFromCode() {
	c, ok := casing.CaseFromCode(7)
	fmt.Println(c, ok)
	_, ok = casing.CaseFromCode(99)
	fmt.Println(ok)
	// Output:
	// snake true
	// false
}
