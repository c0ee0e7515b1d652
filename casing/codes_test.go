package casing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCaseFromCode(t *testing.T) {
	for code := 0; code <= MaxCaseCode; code++ {
		c, ok := CaseFromCode(code)
		assert.True(t, ok, "code %d", code)
		assert.Equal(t, code, c.Code())
	}

	c, ok := CaseFromCode(7)
	assert.True(t, ok)
	assert.Equal(t, Snake, c)

	c, ok = CaseFromCode(5)
	assert.True(t, ok)
	assert.Equal(t, Pascal, c)

	for _, code := range []int{-1, MaxCaseCode + 1, 255, 256, 1 << 20} {
		_, ok := CaseFromCode(code)
		assert.False(t, ok, "code %d", code)
	}
	assert.Equal(t, -1, Case(200).Code())
}

func TestPatternFromCode(t *testing.T) {
	for code := 0; code <= MaxPatternCode; code++ {
		p, ok := PatternFromCode(code)
		assert.True(t, ok, "code %d", code)
		assert.Equal(t, code, p.Code())
	}

	p, ok := PatternFromCode(1)
	assert.True(t, ok)
	assert.Equal(t, PatternUppercase, p)

	for _, code := range []int{-1, MaxPatternCode + 1} {
		_, ok := PatternFromCode(code)
		assert.False(t, ok, "code %d", code)
	}
	assert.Equal(t, -1, Pattern(200).Code())
}

func TestBoundaryFromCode(t *testing.T) {
	for code := 0; code <= MaxBoundaryCode; code++ {
		b, ok := BoundaryFromCode(code)
		assert.True(t, ok, "code %d", code)
		assert.Equal(t, code, b.Code())
	}

	b, ok := BoundaryFromCode(0)
	assert.True(t, ok)
	assert.Equal(t, BoundaryHyphen, b)

	b, ok = BoundaryFromCode(1)
	assert.True(t, ok)
	assert.Equal(t, BoundaryUnderscore, b)

	for _, code := range []int{-1, MaxBoundaryCode + 1} {
		_, ok := BoundaryFromCode(code)
		assert.False(t, ok, "code %d", code)
	}
	assert.Equal(t, -1, Boundary{}.Code())
}
