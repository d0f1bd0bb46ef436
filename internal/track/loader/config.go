package loader

import (
	"fmt"
	"os"
	"strconv"

	"github.com/DjordjeVuckovic/track-loader/internal/track/tmpl"
)

const (
	defaultTracksRoot   = "tracks"
	defaultDataRoot     = "data"
	defaultRootTemplate = "track.json"
)

type Config struct {
	TracksRoot       string
	DataRoot         string
	RootTemplate     string
	MaxFragmentDepth int
}

func DefaultConfig() Config {
	return Config{
		TracksRoot:       defaultTracksRoot,
		DataRoot:         defaultDataRoot,
		RootTemplate:     defaultRootTemplate,
		MaxFragmentDepth: tmpl.DefaultMaxDepth,
	}
}

// LoadConfig reads the loader settings from the environment.
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("TRACKS_ROOT"); v != "" {
		cfg.TracksRoot = v
	}
	if v := os.Getenv("DATA_ROOT"); v != "" {
		cfg.DataRoot = v
	}
	if v := os.Getenv("TRACK_TEMPLATE"); v != "" {
		cfg.RootTemplate = v
	}
	if v := os.Getenv("TRACK_MAX_FRAGMENT_DEPTH"); v != "" {
		depth, err := strconv.Atoi(v)
		if err != nil || depth < 1 {
			return nil, fmt.Errorf("invalid TRACK_MAX_FRAGMENT_DEPTH %q: must be a positive integer", v)
		}
		cfg.MaxFragmentDepth = depth
	}

	return &cfg, nil
}
