// Package catalog keeps a summary of every track resolved by the service so that
// clients can see which revision of a track was last served.
package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/DjordjeVuckovic/track-loader/internal/track"
	"github.com/google/uuid"
)

var ErrNotFound = errors.New("catalog entry not found")

type Entry struct {
	Revision         uuid.UUID `json:"revision"`
	Track            string    `json:"track"`
	ShortDescription string    `json:"short_description"`
	Description      string    `json:"description"`
	SourceRootURL    string    `json:"source_root_url,omitempty"`
	DefaultChallenge string    `json:"default_challenge,omitempty"`
	Challenges       []string  `json:"challenges"`
	Operations       []string  `json:"operations"`
	Indices          []string  `json:"indices"`
	TestMode         bool      `json:"test_mode"`
	LoadedAt         time.Time `json:"loaded_at"`
}

// NewEntry summarizes t under a fresh revision id.
func NewEntry(t *track.Track, testMode bool) Entry {
	e := Entry{
		Revision:         uuid.New(),
		Track:            t.Name,
		ShortDescription: t.ShortDescription,
		Description:      t.Description,
		SourceRootURL:    t.SourceRootURL,
		Challenges:       t.ChallengeNames(),
		Operations:       make([]string, 0, len(t.Operations)),
		Indices:          make([]string, 0, len(t.Indices)),
		TestMode:         testMode,
		LoadedAt:         time.Now().UTC(),
	}
	if c := t.DefaultChallenge(); c != nil {
		e.DefaultChallenge = c.Name
	}
	for _, op := range t.Operations {
		e.Operations = append(e.Operations, op.Name)
	}
	for _, idx := range t.Indices {
		e.Indices = append(e.Indices, idx.Name)
	}
	return e
}

type Catalog interface {
	// Publish replaces the entry stored for e.Track.
	Publish(ctx context.Context, e Entry) error
	Get(ctx context.Context, name string) (*Entry, error)
}
