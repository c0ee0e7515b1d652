package casing

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Overrides(t *testing.T) {
	got := NewConverter().SetDelim(".").SetPattern(PatternUppercase).Convert("fooBar")
	assert.Equal(t, "FOO.BAR", got)
}

func TestConverter_NoPattern(t *testing.T) {
	assert.Equal(t, "fooBar", NewConverter().Convert("foo_Bar"))
	assert.Equal(t, "foo-Bar", NewConverter().SetDelim("-").Convert("fooBar"))
}

func TestConverter_OverrideOrderIrrelevant(t *testing.T) {
	a := NewConverter().SetPattern(PatternUppercase).ToCase(Kebab).Convert("fooBar")
	b := NewConverter().ToCase(Kebab).SetPattern(PatternUppercase).Convert("fooBar")
	assert.Equal(t, "FOO-BAR", a)
	assert.Equal(t, a, b)

	c := NewConverter().SetDelim("+").ToCase(Snake).Convert("fooBar")
	assert.Equal(t, "foo+bar", c)
}

func TestConverter_FromCase(t *testing.T) {
	got := NewConverter().FromCase(Snake).ToCase(Kebab).Convert("fooBar_baz")
	assert.Equal(t, "foobar-baz", got)

	got = NewConverter().FromCase(Snake).ToCase(Title).Convert("foo_bar")
	assert.Equal(t, "Foo Bar", got)

	// Add and Remove edit the source case's set in call order.
	got = NewConverter().FromCase(Snake).AddBoundary(BoundaryLowerUpper).ToCase(Kebab).Convert("fooBar_baz")
	assert.Equal(t, "foo-bar-baz", got)
}

func TestConverter_Boundaries(t *testing.T) {
	conv := NewConverter()
	assert.Equal(t, DefaultBoundaries(), conv.Boundaries())

	conv.AddBoundary(BoundaryHyphen)
	assert.Len(t, conv.Boundaries(), len(DefaultBoundaries()))

	conv.RemoveBoundaries(DigitBoundaries())
	assert.Len(t, conv.Boundaries(), len(DefaultBoundaries())-len(DigitBoundaries()))
	assert.Equal(t, "base64encode", conv.ToCase(Snake).Convert("base64Encode"))
	assert.Equal(t, "base_64_encode", Snake.Convert("base64Encode"))

	conv.RemoveBoundary(BoundaryHyphen)
	assert.NotContains(t, conv.Boundaries(), BoundaryHyphen)

	conv.SetBoundaries(nil)
	assert.Empty(t, conv.Boundaries())
	assert.Equal(t, "foo_bar-baz", conv.Convert("foo_bar-Baz"))

	// Boundaries returns a copy.
	conv.SetBoundaries([]Boundary{BoundaryUnderscore})
	bs := conv.Boundaries()
	bs[0] = BoundarySpace
	assert.Equal(t, []Boundary{BoundaryUnderscore}, conv.Boundaries())
}

func TestConverter_UpperLower(t *testing.T) {
	got := NewConverter().SetBoundaries([]Boundary{BoundaryUpperLower}).ToCase(Snake).Convert("ABc")
	assert.Equal(t, "ab_c", got)

	got = NewConverter().AddBoundaries(AllBoundaries()).ToCase(Snake).Convert("ABc")
	assert.Equal(t, "a_b_c", got)
}

func TestConverter_CustomDelimiter(t *testing.T) {
	got := NewConverter().
		SetBoundaries([]Boundary{Delimiter(".")}).
		ToCase(Snake).
		Convert("foo.barBaz")
	assert.Equal(t, "foo_barbaz", got)

	got = NewConverter().
		AddBoundary(Delimiter("::")).
		ToCase(Kebab).
		Convert("pkg::subPkg")
	assert.Equal(t, "pkg-sub-pkg", got)
}

func TestConverter_Empty(t *testing.T) {
	for _, c := range AllCases() {
		assert.Equal(t, "", NewConverter().FromCase(c).ToCase(c).Convert(""))
	}
	assert.Equal(t, "", NewConverter().SetDelim("-").Convert(""))
}

func TestConverter_WithSeed(t *testing.T) {
	const input = "the quick brown fox jumps over the lazy dog"
	for _, p := range []Pattern{PatternRandom, PatternPseudoRandom} {
		t.Run(p.String(), func(t *testing.T) {
			a := NewConverter(WithSeed(7)).SetPattern(p).SetDelim(" ").Convert(input)
			b := NewConverter(WithSeed(7)).SetPattern(p).SetDelim(" ").Convert(input)
			assert.Equal(t, a, b)
			assert.True(t, strings.EqualFold(input, a), a)
		})
	}
}

func TestConverter_ConcurrentRandom(t *testing.T) {
	conv := NewConverter(WithSeed(1)).SetPattern(PatternRandom)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out := conv.Convert("concurrent_random_pattern")
			assert.True(t, strings.EqualFold("concurrentrandompattern", out), out)
		}()
	}
	wg.Wait()
}

func TestConverter_WithNFC(t *testing.T) {
	decomposed := "cafe\u0301"

	got := NewConverter(WithNFC()).ToCase(Upper).Convert(decomposed)
	assert.Equal(t, "CAF\u00c9", got)

	got = NewConverter().ToCase(Upper).Convert(decomposed)
	assert.Equal(t, "CAFE\u0301", got)
}

func TestConverter_WithLogger(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	conv := NewConverter(WithLogger(NewSlogAdapter(slog.New(handler))))

	out := conv.ToCase(Snake).Convert("fooBar-baz")
	require.Equal(t, "foo_bar_baz", out)

	logs := buf.String()
	assert.Contains(t, logs, "boundary=lower-upper")
	assert.Contains(t, logs, "boundary=hyphen")
	assert.Contains(t, logs, "output=foo_bar_baz")
}

func TestConverter_WithNilLogger(t *testing.T) {
	conv := NewConverter(WithLogger(nil))
	assert.Equal(t, "foo_bar", conv.ToCase(Snake).Convert("fooBar"))
}
