package parser

import (
	"errors"
	"testing"

	"github.com/DjordjeVuckovic/track-loader/internal/track"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("json document", func(t *testing.T) {
		doc, err := Parse(`
{
  "short-description": "unit test",
  "indices": [{"name": "logs", "auto-managed": false}],
  "operations": [{"name": "bulk", "bulk-size": 5000, "ratio": 0.5}]
}`)
		require.NoError(t, err)
		assert.Equal(t, "unit test", doc["short-description"])

		indices := doc["indices"].([]any)
		require.Len(t, indices, 1)
		index := indices[0].(map[string]any)
		assert.Equal(t, "logs", index["name"])
		assert.Equal(t, false, index["auto-managed"])

		op := doc["operations"].([]any)[0].(map[string]any)
		assert.Equal(t, 5000, op["bulk-size"])
		assert.Equal(t, 0.5, op["ratio"])
	})

	t.Run("yaml document", func(t *testing.T) {
		doc, err := Parse(`
short-description: unit test
challenges:
  - name: append
    default: true
`)
		require.NoError(t, err)
		challenge := doc["challenges"].([]any)[0].(map[string]any)
		assert.Equal(t, true, challenge["default"])
	})

	t.Run("tab indented json", func(t *testing.T) {
		doc, err := Parse("\n\t\n\t{\n\t\t\"short-description\": \"a\"\n\t}\n")
		require.NoError(t, err)
		assert.Equal(t, "a", doc["short-description"])
	})

	t.Run("escaped solidus", func(t *testing.T) {
		doc, err := Parse(`{"data-url": "http:\/\/example.org\/data"}`)
		require.NoError(t, err)
		assert.Equal(t, "http://example.org/data", doc["data-url"])
	})

	t.Run("duplicate keys keep the last value", func(t *testing.T) {
		doc, err := Parse(`{"description": "first", "description": "second"}`)
		require.NoError(t, err)
		assert.Equal(t, "second", doc["description"])
	})

	t.Run("json numbers", func(t *testing.T) {
		doc, err := Parse(`{"clients": 8, "ratio": 0.25, "whole": 1.0, "exp": 1e3, "nested": [{"n": -3}]}`)
		require.NoError(t, err)
		assert.Equal(t, 8, doc["clients"])
		assert.Equal(t, 0.25, doc["ratio"])
		assert.Equal(t, 1.0, doc["whole"])
		assert.Equal(t, 1000.0, doc["exp"])
		assert.Equal(t, -3, doc["nested"].([]any)[0].(map[string]any)["n"])
	})

	tests := []struct {
		name string
		text string
		msg  string
	}{
		{name: "empty document", text: "  \n ", msg: "track document is empty"},
		{name: "malformed json", text: `{"name": "unit test",`, msg: "not well-formed"},
		{name: "trailing content", text: `{"name": "unit test"} {}`, msg: "not well-formed"},
		{name: "sequence root", text: `[1, 2, 3]`, msg: "must be a mapping"},
		{name: "scalar root", text: `just text`, msg: "must be a mapping"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text)
			require.Error(t, err)

			var se *track.SyntaxError
			assert.True(t, errors.As(err, &se))
			assert.ErrorContains(t, err, tt.msg)
		})
	}
}
