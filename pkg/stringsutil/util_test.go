package stringsutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "empty", input: "", expected: nil},
		{name: "single", input: "http://localhost:9200", expected: []string{"http://localhost:9200"}},
		{name: "spaces", input: " a , b,c ", expected: []string{"a", "b", "c"}},
		{name: "blank parts", input: "a,, ,b", expected: []string{"a", "b"}},
		{name: "only separators", input: ",,", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitAndTrim(tt.input, ","))
		})
	}
}
