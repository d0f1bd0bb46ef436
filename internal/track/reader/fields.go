package reader

import (
	"math"
	"strings"

	"github.com/DjordjeVuckovic/track-loader/internal/track"
)

// fields reads typed values from a generic document and reports violations
// as TrackSyntaxErrors of one track.
type fields struct {
	trackName string
}

func (f fields) errorf(format string, args ...any) error {
	return track.NewTrackSyntaxError(f.trackName, format, args...)
}

func (f fields) missing(key, ctx string) error {
	if ctx == "" {
		return f.errorf("Mandatory element '%s' is missing.", key)
	}
	return f.errorf("Mandatory element '%s' is missing in '%s'.", key, ctx)
}

func (f fields) invalid(key, ctx, kind string, value any) error {
	if ctx == "" {
		return f.errorf("Value for '%s' must be %s but was '%v'.", key, kind, value)
	}
	return f.errorf("Value for '%s' in '%s' must be %s but was '%v'.", key, ctx, kind, value)
}

func (f fields) str(m map[string]any, key, ctx string, mandatory bool) (string, error) {
	v, ok := m[key]
	if !ok || v == nil {
		if mandatory {
			return "", f.missing(key, ctx)
		}
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", f.invalid(key, ctx, "a string", v)
	}
	return s, nil
}

func (f fields) boolean(m map[string]any, key, ctx string, def bool) (bool, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return def, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, f.invalid(key, ctx, "a boolean", v)
	}
	return b, nil
}

func (f fields) count(m map[string]any, key, ctx string) (int64, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return 0, f.missing(key, ctx)
	}
	n, ok := toInt64(v)
	if !ok || n < 0 {
		return 0, f.invalid(key, ctx, "a non-negative integer", v)
	}
	return n, nil
}

// optionalInt returns nil when key is absent.
func (f fields) optionalInt(m map[string]any, key, ctx string) (*int, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return nil, nil
	}
	n, ok := toInt64(v)
	if !ok || n < 0 || n > math.MaxInt32 {
		return nil, f.invalid(key, ctx, "a non-negative integer", v)
	}
	return track.Int(int(n)), nil
}

// object returns an empty map when key is absent.
func (f fields) object(m map[string]any, key, ctx string) (map[string]any, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return map[string]any{}, nil
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, f.invalid(key, ctx, "an object", v)
	}
	return track.CloneMap(obj), nil
}

func (f fields) list(m map[string]any, key, ctx string, mandatory bool) ([]any, error) {
	v, ok := m[key]
	if !ok || v == nil {
		if mandatory {
			return nil, f.missing(key, ctx)
		}
		return nil, nil
	}
	l, ok := v.([]any)
	if !ok {
		return nil, f.invalid(key, ctx, "a list", v)
	}
	return l, nil
}

func (f fields) element(v any, ctx string, idx int) (map[string]any, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, f.errorf("Element %d of '%s' must be an object but was '%v'.", idx, ctx, v)
	}
	return obj, nil
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int64(n), true
	default:
		return 0, false
	}
}

// path joins keys the way they are reported in error messages.
func path(keys ...string) string {
	return strings.Join(keys, ".")
}
