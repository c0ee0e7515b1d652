package options

import (
	"testing"

	"github.com/erraggy/wordcase/caseerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSingleInputSource(t *testing.T) {
	names := []string{"case", "case_code"}

	tests := []struct {
		name     string
		sources  []bool
		contains string
	}{
		{"none", []bool{false, false}, "exactly one of case or case_code must be provided"},
		{"both", []bool{true, true}, "only one of case or case_code may be provided"},
		{"first", []bool{true, false}, ""},
		{"second", []bool{false, true}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSingleInputSource(names, tt.sources...)
			if tt.contains == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, caseerrors.ErrConfig)
			assert.Contains(t, err.Error(), tt.contains)
			assert.Contains(t, err.Error(), "case/case_code")
		})
	}
}

func TestValidateExclusive(t *testing.T) {
	names := []string{"--from", "--boundaries", "--case"}

	assert.NoError(t, ValidateExclusive(names, false, false, false))
	assert.NoError(t, ValidateExclusive(names, false, true, false))

	err := ValidateExclusive(names, true, false, true)
	require.ErrorIs(t, err, caseerrors.ErrConfig)
	assert.Contains(t, err.Error(), "only one of --from, --boundaries or --case may be provided")
}

func TestJoinNames(t *testing.T) {
	assert.Equal(t, "the inputs", joinNames(nil))
	assert.Equal(t, "a", joinNames([]string{"a"}))
	assert.Equal(t, "a or b", joinNames([]string{"a", "b"}))
	assert.Equal(t, "a, b or c", joinNames([]string{"a", "b", "c"}))
}
