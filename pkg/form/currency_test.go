package form_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/salesdesk/pkg/form"
)

func TestFormatCurrencyInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "groups thousands", input: "12000", expected: "$12,000"},
		{name: "keeps fraction", input: "1234.5", expected: "$1,234.5"},
		{name: "not a number is unchanged", input: "abc", expected: "abc"},
		{name: "already formatted", input: "$12,000", expected: "$12,000"},
		{name: "millions", input: "2400000", expected: "$2,400,000"},
		{name: "rounds to three fraction digits", input: "1.23456", expected: "$1.235"},
		{name: "trailing point is dropped", input: "1234.", expected: "$1,234"},
		{name: "second point ends the number", input: "1.2.3", expected: "$1.2"},
		{name: "empty is unchanged", input: "", expected: ""},
		{name: "lone point is unchanged", input: ".", expected: "."},
		{name: "small number", input: "7", expected: "$7"},
		{name: "mixed garbage", input: "a1b2c3", expected: "$123"},
		{name: "largest formatted", input: "999999999999.5", expected: "$999,999,999,999.5"},
		{name: "leading zeros do not count", input: "0000000000000012", expected: "$12"},
		{name: "too long is unchanged", input: "12345678901234567890", expected: "12345678901234567890"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, form.FormatCurrencyInput(tt.input))
		})
	}
}
