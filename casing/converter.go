package casing

import (
	"strings"
	"sync"

	"github.com/valyala/fastrand"
	"golang.org/x/text/unicode/norm"
)

// Converter is a configurable conversion: the boundaries input is split on,
// the pattern applied to the words and the delimiter that joins them.
//
// Setters mutate the converter and return it so calls can be chained:
//
//	casing.NewConverter().
//		FromCase(casing.Snake).
//		ToCase(casing.Title).
//		Convert("foo_bar") // "Foo Bar"
//
// The boundary set starts as [DefaultBoundaries]. [Converter.FromCase] and
// [Converter.SetBoundaries] replace it; the Add and Remove methods edit it
// in call order. The pattern and delimiter come from an explicit
// [Converter.SetPattern] or [Converter.SetDelim] when one was made, else
// from the case given to [Converter.ToCase], regardless of call order.
// Without either the words are joined unchanged with no delimiter.
type Converter struct {
	boundaries []Boundary

	target    Case
	hasTarget bool

	pattern    Pattern
	hasPattern bool

	delim    string
	hasDelim bool

	logger Logger
	nfc    bool

	mu  sync.Mutex
	rng fastrand.RNG
}

// Option configures a Converter at construction.
type Option func(*Converter)

// WithLogger traces every cut the converter makes at debug level.
// By default, no logging is performed.
func WithLogger(l Logger) Option {
	return func(c *Converter) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithSeed seeds the random source used by [PatternRandom] and
// [PatternPseudoRandom]. The same seed and input always give the same
// output. A seed of 0 leaves the source time-seeded.
func WithSeed(seed uint32) Option {
	return func(c *Converter) {
		c.rng.Seed(seed)
	}
}

// WithNFC normalizes input to Unicode Normalization Form C before it is
// split, so decomposed and precomposed spellings convert the same way.
func WithNFC() Option {
	return func(c *Converter) {
		c.nfc = true
	}
}

// NewConverter returns a converter that splits on [DefaultBoundaries] and
// has no target case.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		boundaries: DefaultBoundaries(),
		logger:     NopLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FromCase replaces the boundary set with the boundaries of case from.
func (c *Converter) FromCase(from Case) *Converter {
	c.boundaries = from.Boundaries()
	return c
}

// ToCase sets the case whose pattern and delimiter are used for output.
func (c *Converter) ToCase(to Case) *Converter {
	c.target = to
	c.hasTarget = true
	return c
}

// SetPattern overrides the pattern of the target case.
func (c *Converter) SetPattern(p Pattern) *Converter {
	c.pattern = p
	c.hasPattern = true
	return c
}

// SetDelim overrides the delimiter of the target case.
func (c *Converter) SetDelim(delim string) *Converter {
	c.delim = delim
	c.hasDelim = true
	return c
}

// SetBoundaries replaces the boundary set. An empty set disables
// splitting entirely.
func (c *Converter) SetBoundaries(bs []Boundary) *Converter {
	c.boundaries = nil
	return c.AddBoundaries(bs)
}

// AddBoundary adds b to the boundary set. Adding a boundary twice has no
// effect.
func (c *Converter) AddBoundary(b Boundary) *Converter {
	for _, have := range c.boundaries {
		if have == b {
			return c
		}
	}
	c.boundaries = append(c.boundaries, b)
	return c
}

// AddBoundaries adds every boundary in bs.
func (c *Converter) AddBoundaries(bs []Boundary) *Converter {
	for _, b := range bs {
		c.AddBoundary(b)
	}
	return c
}

// RemoveBoundary removes b from the boundary set.
func (c *Converter) RemoveBoundary(b Boundary) *Converter {
	return c.RemoveBoundaries([]Boundary{b})
}

// RemoveBoundaries removes every boundary in bs from the boundary set.
func (c *Converter) RemoveBoundaries(bs []Boundary) *Converter {
	kept := c.boundaries[:0]
	for _, have := range c.boundaries {
		if !containsBoundary(bs, have) {
			kept = append(kept, have)
		}
	}
	c.boundaries = kept
	return c
}

// Boundaries returns a copy of the current boundary set.
func (c *Converter) Boundaries() []Boundary {
	return append([]Boundary(nil), c.boundaries...)
}

// Convert splits s, applies the pattern and joins the words.
func (c *Converter) Convert(s string) string {
	if c.nfc {
		s = norm.NFC.String(s)
	}
	rs := compileRules(c.boundaries)
	words := rs.split(s, func(at int, b Boundary) {
		c.logger.Debug("cut", "at", at, "boundary", b.String())
	})

	if p, ok := c.effectivePattern(); ok {
		if p.IsRandom() {
			c.mu.Lock()
			words = p.apply(words, &c.rng)
			c.mu.Unlock()
		} else {
			words = p.apply(words, nil)
		}
	}
	out := strings.Join(words, c.effectiveDelim())
	c.logger.Debug("converted", "input", s, "words", len(words), "output", out)
	return out
}

func (c *Converter) effectivePattern() (Pattern, bool) {
	switch {
	case c.hasPattern:
		return c.pattern, true
	case c.hasTarget:
		return c.target.Pattern(), true
	default:
		return 0, false
	}
}

func (c *Converter) effectiveDelim() string {
	switch {
	case c.hasDelim:
		return c.delim
	case c.hasTarget:
		return c.target.Delim()
	default:
		return ""
	}
}

func containsBoundary(bs []Boundary, b Boundary) bool {
	for _, have := range bs {
		if have == b {
			return true
		}
	}
	return false
}
