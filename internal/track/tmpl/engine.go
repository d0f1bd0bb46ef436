// Package tmpl expands track templates.
//
// Templates use text/template syntax. The data of every template is a Scope;
// besides the standard actions the following functions are available:
//
//	{{ now }}                          current time of the Clock in epoch seconds
//	{{ "01-01-2000" | days_ago now }}  whole days between a dd-mm-yyyy date and now
//	{{ set $ "clients" 16 }}           defines a variable in the current scope
//	{{ collect "fragment-*" }}         renders matching fragments in isolation
//	{{ collect "fragment-*" $ }}       renders matching fragments with the current scope
//
// Fragments are joined with a comma so that they can be embedded as additional
// members of a surrounding JSON object or array.
package tmpl

import (
	"errors"
	"fmt"
	"maps"
	"strings"
	"text/template"

	"github.com/DjordjeVuckovic/track-loader/internal/track"
)

const (
	DefaultMaxDepth = 10

	fragmentSeparator = ",\n"
)

// Scope holds the variables visible to a template.
type Scope map[string]any

type Engine struct {
	store    Store
	resolver FragmentResolver
	clock    Clock
	maxDepth int
}

type Option func(*Engine)

func WithClock(c Clock) Option {
	return func(e *Engine) {
		e.clock = c
	}
}

func WithFragmentResolver(r FragmentResolver) Option {
	return func(e *Engine) {
		e.resolver = r
	}
}

// WithMaxDepth bounds fragment nesting. The root template has depth 0.
func WithMaxDepth(depth int) Option {
	return func(e *Engine) {
		if depth > 0 {
			e.maxDepth = depth
		}
	}
}

func NewEngine(store Store, opts ...Option) *Engine {
	e := &Engine{
		store:    store,
		resolver: noFragments{},
		clock:    SystemClock{},
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Render expands the template called name. vars are copied into the root scope.
func (e *Engine) Render(name string, vars map[string]any) (string, error) {
	scope := make(Scope, len(vars))
	maps.Copy(scope, vars)
	return e.render(name, scope, 0)
}

func (e *Engine) render(name string, scope Scope, depth int) (string, error) {
	if depth > e.maxDepth {
		return "", &track.TemplateError{
			Template: name,
			Message:  fmt.Sprintf("fragment nesting exceeds maximum depth of %d", e.maxDepth),
		}
	}

	src, err := e.store.Source(name)
	if err != nil {
		return "", &track.TemplateError{Template: name, Message: "cannot load template", Err: err}
	}

	t, err := template.New(name).
		Option("missingkey=error").
		Funcs(e.funcs(depth)).
		Parse(src)
	if err != nil {
		return "", &track.TemplateError{Template: name, Message: "parse template", Err: err}
	}

	var sb strings.Builder
	if err := t.Execute(&sb, scope); err != nil {
		// errors raised by nested fragments are reported as is
		var te *track.TemplateError
		if errors.As(err, &te) {
			return "", te
		}
		return "", &track.TemplateError{Template: name, Message: "render template", Err: err}
	}
	return sb.String(), nil
}

func (e *Engine) collect(pattern string, depth int, shared ...Scope) (string, error) {
	names, err := e.resolver.Resolve(pattern)
	if err != nil {
		return "", &track.TemplateError{Template: pattern, Message: "resolve fragments", Err: err}
	}

	parts := make([]string, 0, len(names))
	for _, name := range names {
		scope := Scope{}
		if len(shared) > 0 && shared[0] != nil {
			scope = maps.Clone(shared[0])
		}
		body, err := e.render(name, scope, depth+1)
		if err != nil {
			return "", err
		}
		parts = append(parts, body)
	}
	return strings.Join(parts, fragmentSeparator), nil
}
