package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected bool
	}{
		{
			name:     "exact phrase",
			text:     "pants off",
			expected: true,
		},
		{
			name:     "contiguous lowercase",
			text:     "pantsoff",
			expected: true,
		},
		{
			name:     "mixed case",
			text:     "PaNtS oFf",
			expected: true,
		},
		{
			name:     "arbitrary gaps",
			text:     "put all new t-shirts so only fridays feel fancy",
			expected: true,
		},
		{
			name:     "embedded in sentence",
			text:     "good morning, pants are off!",
			expected: true,
		},
		{
			name:     "letters out of order",
			text:     "off pants",
			expected: false,
		},
		{
			name:     "missing final f",
			text:     "pants of",
			expected: false,
		},
		{
			name:     "empty string",
			text:     "",
			expected: false,
		},
		{
			name:     "unrelated text",
			text:     "checking in",
			expected: false,
		},
		{
			name:     "unicode noise between letters",
			text:     "p🎉a🎉n🎉t🎉s🎉o🎉f🎉f",
			expected: true,
		},
		{
			name:     "letters spread across lines",
			text:     "pants\noff",
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Matches(tt.text))
		})
	}
}
