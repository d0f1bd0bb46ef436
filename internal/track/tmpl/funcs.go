package tmpl

import (
	"fmt"
	"math"
	"text/template"
	"time"
)

const dateLayout = "02-01-2006"

func (e *Engine) funcs(depth int) template.FuncMap {
	return template.FuncMap{
		"now":      e.clock.Now,
		"days_ago": DaysAgo,
		"set":      set,
		"collect": func(pattern string, shared ...Scope) (string, error) {
			return e.collect(pattern, depth, shared...)
		},
	}
}

// DaysAgo returns the number of whole days between date (dd-mm-yyyy, UTC) and
// now (seconds since epoch). The argument order allows {{ "01-01-2000" | days_ago now }}.
func DaysAgo(now float64, date string) (int, error) {
	d, err := time.ParseInLocation(dateLayout, date, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("days_ago: invalid date %q, expected dd-mm-yyyy: %w", date, err)
	}
	sec, frac := math.Modf(now)
	t := time.Unix(int64(sec), int64(frac*1e9)).UTC()
	return int(math.Floor(t.Sub(d).Hours() / 24)), nil
}

func set(scope Scope, key string, value any) string {
	scope[key] = value
	return ""
}
