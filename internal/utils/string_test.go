package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidInput(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		input    string
		expected bool
	}{
		{input: "", expected: false},
		{input: "hello", expected: true},
		{input: "héllo", expected: true},
		{input: "user-name", expected: true},
		{input: "don't", expected: true},
		{input: "word2vec", expected: true},
		{input: "12345", expected: false},
		{input: "a@b", expected: false},
		{input: "#tag", expected: false},
	} {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsValidInput(tc.input))
		})
	}
}
