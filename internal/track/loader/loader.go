// Package loader turns track directories into resolved tracks.
//
// A track named n lives in <TracksRoot>/n. Its root template is rendered with
// the caller's variables, every other file in the directory is available as a
// fragment, and the rendered document is parsed and read into a track.Track.
package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/DjordjeVuckovic/track-loader/internal/track"
	"github.com/DjordjeVuckovic/track-loader/internal/track/parser"
	"github.com/DjordjeVuckovic/track-loader/internal/track/reader"
	"github.com/DjordjeVuckovic/track-loader/internal/track/testmode"
	"github.com/DjordjeVuckovic/track-loader/internal/track/tmpl"
)

var ErrTrackNotFound = errors.New("track not found")

type loadOptions struct {
	testMode bool
	clock    tmpl.Clock
}

type LoadOption func(*loadOptions)

// WithTestMode shrinks the loaded track's schedules for a quick smoke run.
func WithTestMode() LoadOption {
	return func(o *loadOptions) {
		o.testMode = true
	}
}

func WithClock(c tmpl.Clock) LoadOption {
	return func(o *loadOptions) {
		o.clock = c
	}
}

type Loader struct {
	cfg    Config
	reader *reader.Reader
}

func New(cfg Config) *Loader {
	if cfg.RootTemplate == "" {
		cfg.RootTemplate = defaultRootTemplate
	}
	if cfg.MaxFragmentDepth < 1 {
		cfg.MaxFragmentDepth = tmpl.DefaultMaxDepth
	}
	return &Loader{cfg: cfg, reader: reader.New()}
}

// List returns the sorted names of all track directories that contain a root template.
func (l *Loader) List() ([]string, error) {
	entries, err := os.ReadDir(l.cfg.TracksRoot)
	if err != nil {
		return nil, fmt.Errorf("read tracks root %q: %w", l.cfg.TracksRoot, err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		root := filepath.Join(l.cfg.TracksRoot, entry.Name(), l.cfg.RootTemplate)
		if _, err := os.Stat(root); err == nil {
			names = append(names, entry.Name())
		}
	}
	slices.Sort(names)
	return names, nil
}

// Load renders, parses and reads the track called name.
func (l *Loader) Load(name string, vars map[string]any, opts ...LoadOption) (*track.Track, error) {
	if !validName(name) {
		return nil, fmt.Errorf("%w: %q", ErrTrackNotFound, name)
	}
	dir := filepath.Join(l.cfg.TracksRoot, name)
	if _, err := os.Stat(filepath.Join(dir, l.cfg.RootTemplate)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrTrackNotFound, name)
		}
		return nil, fmt.Errorf("stat track %q: %w", name, err)
	}

	fsys := os.DirFS(dir)
	o := l.options(opts)
	engine := tmpl.NewEngine(tmpl.NewFSStore(fsys),
		tmpl.WithFragmentResolver(tmpl.NewGlobResolver(fsys)),
		tmpl.WithClock(o.clock),
		tmpl.WithMaxDepth(l.cfg.MaxFragmentDepth),
	)

	slog.Debug("Loading track", "track", name, "dir", dir)
	return l.build(name, engine, l.cfg.RootTemplate, dir, vars, o)
}

// LoadSource resolves a track whose root template and fragments are held in memory.
// Fragments are addressed by their map keys. Mapping files resolve against the
// on-disk track directory of the same name.
func (l *Loader) LoadSource(name, source string, fragments map[string]string, vars map[string]any, opts ...LoadOption) (*track.Track, error) {
	store := make(tmpl.MapStore, len(fragments)+1)
	for id, text := range fragments {
		store[id] = text
	}
	store[l.cfg.RootTemplate] = source

	o := l.options(opts)
	engine := tmpl.NewEngine(store,
		tmpl.WithFragmentResolver(tmpl.NewMapResolver(store)),
		tmpl.WithClock(o.clock),
		tmpl.WithMaxDepth(l.cfg.MaxFragmentDepth),
	)
	return l.build(name, engine, l.cfg.RootTemplate, filepath.Join(l.cfg.TracksRoot, name), vars, o)
}

func (l *Loader) build(name string, engine *tmpl.Engine, root, dir string, vars map[string]any, o loadOptions) (*track.Track, error) {
	text, err := engine.Render(root, vars)
	if err != nil {
		return nil, fmt.Errorf("render track %q: %w", name, err)
	}
	doc, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parse track %q: %w", name, err)
	}
	t, err := l.reader.Read(name, doc, dir, filepath.Join(l.cfg.DataRoot, name))
	if err != nil {
		return nil, err
	}
	if o.testMode {
		slog.Info("Applying test mode", "track", name)
		t = testmode.Shrink(t)
	}

	slog.Info("Track loaded", "track", name, "challenges", len(t.Challenges), "operations", len(t.Operations))
	return t, nil
}

func (l *Loader) options(opts []LoadOption) loadOptions {
	o := loadOptions{clock: tmpl.SystemClock{}}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func validName(name string) bool {
	return name != "" && name != "." && name != ".." && filepath.Base(name) == name
}
