package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/salesdesk/pkg/sanitizer"
)

func TestKeepDecimal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{input: "$12,345.67", expected: "12345.67"},
		{input: "12000", expected: "12000"},
		{input: "abc", expected: ""},
		{input: "1.2.3", expected: "1.2.3"},
		{input: "٣٤", expected: ""},
		{input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.KeepDecimal(tt.input))
		})
	}
}

func TestNormalizeWhitespace(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Redmond, WA", sanitizer.NormalizeWhitespace("  Redmond,\t  WA \n"))
	assert.Equal(t, "", sanitizer.NormalizeWhitespace(" \t\n "))
}

func TestSingleLine(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "first line second line", sanitizer.SingleLine("first line\r\nsecond\nline"))
}

func TestTrim(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Acme", sanitizer.Trim("  Acme\t"))
}
