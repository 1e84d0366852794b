package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatErrorForDisplay(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		width    int
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			width:    80,
			expected: "",
		},
		{
			name:     "empty message",
			err:      errors.New(""),
			width:    80,
			expected: "Error: unknown error",
		},
		{
			name:     "short message fits on one line",
			err:      errors.New("failed to save settings"),
			width:    80,
			expected: "Error: failed to save settings",
		},
		{
			name:     "wraps onto a second line",
			err:      errors.New("aaaa bbbb cccc"),
			width:    17,
			expected: "Error: aaaa bbbb\ncccc",
		},
		{
			name:     "truncates after two lines",
			err:      errors.New("one two three four five six seven eight nine ten"),
			width:    17,
			expected: "Error: one two\nthree four fiv...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatErrorForDisplay(tt.err, tt.width))
		})
	}
}

func TestFormatErrorForDisplay_NeverExceedsTwoLines(t *testing.T) {
	err := errors.New(strings.Repeat("word ", 200))
	got := formatErrorForDisplay(err, 30)
	assert.LessOrEqual(t, strings.Count(got, "\n"), maxErrorLines-1)
	assert.True(t, strings.HasSuffix(got, truncationMark))
}
