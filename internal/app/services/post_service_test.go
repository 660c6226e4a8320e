package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeHashtags(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{name: "nil input", input: nil, want: []string{}},
		{name: "lowercased", input: []string{"GoLang", "MATH"}, want: []string{"golang", "math"}},
		{name: "leading hash stripped", input: []string{"#physics"}, want: []string{"physics"}},
		{name: "whitespace trimmed", input: []string{"  algebra  "}, want: []string{"algebra"}},
		{name: "blanks dropped", input: []string{"", "  ", "#", "chem"}, want: []string{"chem"}},
		{name: "only inner hash kept", input: []string{"c#"}, want: []string{"c#"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeHashtags(tt.input))
		})
	}
}
