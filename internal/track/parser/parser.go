// Package parser turns expanded track text into a generic document.
//
// Tracks are usually JSON and are decoded with encoding/json. Anything that does
// not start with an object is decoded as YAML.
package parser

import (
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/DjordjeVuckovic/track-loader/internal/track"
	"gopkg.in/yaml.v3"
)

// Parse decodes text into nested maps, slices and scalars. It has no knowledge of the track schema.
// Integral numbers decode to int and all other numbers to float64 in both notations.
func Parse(text string) (map[string]any, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, &track.SyntaxError{Message: "track document is empty"}
	}

	var (
		root any
		err  error
	)
	if strings.HasPrefix(trimmed, "{") {
		root, err = decodeJSON(trimmed)
	} else {
		err = yaml.Unmarshal([]byte(text), &root)
	}
	if err != nil {
		return nil, &track.SyntaxError{Message: "track document is not well-formed", Err: err}
	}

	doc, ok := root.(map[string]any)
	if !ok {
		return nil, &track.SyntaxError{Message: "track document must be a mapping at the top level"}
	}
	return doc, nil
}

func decodeJSON(text string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected content after the top-level object")
	}
	return normalizeNumbers(root), nil
}

// normalizeNumbers replaces json.Number values with int or float64.
func normalizeNumbers(v any) any {
	switch val := v.(type) {
	case map[string]any:
		for k, item := range val {
			val[k] = normalizeNumbers(item)
		}
		return val
	case []any:
		for i, item := range val {
			val[i] = normalizeNumbers(item)
		}
		return val
	case json.Number:
		if i, err := val.Int64(); err == nil && int64(int(i)) == i {
			return int(i)
		}
		f, _ := val.Float64()
		return f
	default:
		return v
	}
}
