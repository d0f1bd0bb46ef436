package tmpl

import (
	"fmt"
	"io/fs"
	"path"
	"slices"
	"time"
)

// Store provides template sources by name.
type Store interface {
	Source(name string) (string, error)
}

// MapStore is an in-memory Store.
type MapStore map[string]string

func (s MapStore) Source(name string) (string, error) {
	src, ok := s[name]
	if !ok {
		return "", fmt.Errorf("template %q: %w", name, fs.ErrNotExist)
	}
	return src, nil
}

func (s MapStore) match(pattern string) ([]string, error) {
	var names []string
	for name := range s {
		ok, err := path.Match(pattern, name)
		if err != nil {
			return nil, fmt.Errorf("match %q: %w", pattern, err)
		}
		if ok {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names, nil
}

// FSStore reads templates from a file system, typically a track directory.
type FSStore struct {
	fsys fs.FS
}

func NewFSStore(fsys fs.FS) *FSStore {
	return &FSStore{fsys: fsys}
}

func (s *FSStore) Source(name string) (string, error) {
	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		return "", fmt.Errorf("read template: %w", err)
	}
	return string(data), nil
}

// FragmentResolver maps a glob pattern to the ordered identifiers of matching fragments.
// No match is not an error.
type FragmentResolver interface {
	Resolve(pattern string) ([]string, error)
}

type ResolverFunc func(pattern string) ([]string, error)

func (f ResolverFunc) Resolve(pattern string) ([]string, error) {
	return f(pattern)
}

// GlobResolver matches fragment file names in a file system in lexical order.
type GlobResolver struct {
	fsys fs.FS
}

func NewGlobResolver(fsys fs.FS) *GlobResolver {
	return &GlobResolver{fsys: fsys}
}

func (r *GlobResolver) Resolve(pattern string) ([]string, error) {
	matches, err := fs.Glob(r.fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}
	return matches, nil
}

// MapResolver matches fragment names of a MapStore.
type MapResolver struct {
	store MapStore
}

func NewMapResolver(store MapStore) *MapResolver {
	return &MapResolver{store: store}
}

func (r *MapResolver) Resolve(pattern string) ([]string, error) {
	return r.store.match(pattern)
}

type noFragments struct{}

func (noFragments) Resolve(string) ([]string, error) {
	return nil, nil
}

// Clock supplies the current time in seconds since epoch.
type Clock interface {
	Now() float64
}

type SystemClock struct{}

func (SystemClock) Now() float64 {
	return float64(time.Now().UnixNano()) / 1e9
}

// FixedClock always reports the same instant.
type FixedClock float64

func (c FixedClock) Now() float64 {
	return float64(c)
}
