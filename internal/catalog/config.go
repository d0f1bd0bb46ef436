package catalog

import (
	"context"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/track-loader/pkg/stringsutil"
)

const defaultIndexName = "tracks"

type ElasticConfig struct {
	Addresses []string
	IndexName string
	Username  string
	Password  string
}

type Config struct {
	// Elastic is nil when no cluster is configured.
	Elastic *ElasticConfig
}

func LoadConfig() *Config {
	addresses := stringsutil.SplitAndTrim(os.Getenv("CATALOG_ES_ADDRESSES"), ",")
	if len(addresses) == 0 {
		return &Config{}
	}

	index := os.Getenv("CATALOG_ES_INDEX")
	if index == "" {
		index = defaultIndexName
	}
	return &Config{
		Elastic: &ElasticConfig{
			Addresses: addresses,
			IndexName: index,
			Username:  os.Getenv("CATALOG_ES_USERNAME"),
			Password:  os.Getenv("CATALOG_ES_PASSWORD"),
		},
	}
}

// New returns the Elasticsearch catalog when configured and the in-memory one otherwise.
func New(ctx context.Context, cfg *Config) (Catalog, error) {
	if cfg == nil || cfg.Elastic == nil {
		slog.Info("Using in-memory track catalog")
		return NewMemory(), nil
	}

	slog.Info("Using Elasticsearch track catalog", "addresses", cfg.Elastic.Addresses, "index", cfg.Elastic.IndexName)
	c, err := NewElastic(ctx, *cfg.Elastic)
	if err != nil {
		return nil, err
	}
	return c, nil
}
