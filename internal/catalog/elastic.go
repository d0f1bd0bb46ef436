package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
)

// Elastic stores one document per track, keyed by track name.
type Elastic struct {
	client    *elasticsearch.TypedClient
	indexName string
}

func newClient(cfg ElasticConfig) (*elasticsearch.TypedClient, error) {
	esCfg := elasticsearch.Config{
		Addresses: cfg.Addresses,
	}

	if cfg.Username != "" && cfg.Password != "" {
		esCfg.Username = cfg.Username
		esCfg.Password = cfg.Password
	}

	return elasticsearch.NewTypedClient(esCfg)
}

func NewElastic(ctx context.Context, cfg ElasticConfig) (*Elastic, error) {
	client, err := newClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	e := &Elastic{client: client, indexName: cfg.IndexName}
	if err := e.EnsureIndex(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure index exists: %w", err)
	}
	return e, nil
}

func (e *Elastic) EnsureIndex(ctx context.Context) error {
	exists, err := e.client.Indices.Exists(e.indexName).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}
	if exists {
		slog.Info("Index already exists", "index", e.indexName)
		return nil
	}

	mappings := entryMapping()
	res, err := e.client.Indices.Create(e.indexName).
		Mappings(&mappings).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	if !res.Acknowledged {
		return fmt.Errorf("index creation was not acknowledged")
	}

	slog.Info("Index created successfully", "index", e.indexName)
	return nil
}

func (e *Elastic) Publish(ctx context.Context, entry Entry) error {
	res, err := e.client.Index(e.indexName).Id(entry.Track).Document(entry).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to index catalog entry: %w", err)
	}

	slog.Info("Catalog entry published", "track", entry.Track, "revision", entry.Revision, "result", res.Result)
	return nil
}

func (e *Elastic) Get(ctx context.Context, name string) (*Entry, error) {
	res, err := e.client.Get(e.indexName, name).Do(ctx)
	if err != nil {
		var esErr *types.ElasticsearchError
		if errors.As(err, &esErr) && esErr.Status == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
		}
		return nil, fmt.Errorf("failed to get catalog entry: %w", err)
	}
	if !res.Found {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	var entry Entry
	if err := json.Unmarshal(res.Source_, &entry); err != nil {
		return nil, fmt.Errorf("failed to decode catalog entry: %w", err)
	}
	return &entry, nil
}

func entryMapping() types.TypeMapping {
	return types.TypeMapping{
		Properties: map[string]types.Property{
			"revision":          types.NewKeywordProperty(),
			"track":             types.NewKeywordProperty(),
			"short_description": types.NewTextProperty(),
			"description":       types.NewTextProperty(),
			"source_root_url":   types.NewKeywordProperty(),
			"default_challenge": types.NewKeywordProperty(),
			"challenges":        types.NewKeywordProperty(),
			"operations":        types.NewKeywordProperty(),
			"indices":           types.NewKeywordProperty(),
			"test_mode":         types.NewBooleanProperty(),
			"loaded_at":         types.NewDateProperty(),
		},
	}
}
