//go:build integration

package catalog

import (
	"context"
	"testing"

	estesting "github.com/DjordjeVuckovic/track-loader/pkg/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElastic(t *testing.T) {
	ctx := context.Background()
	container := estesting.NewESContainer(ctx, t)

	c, err := NewElastic(ctx, ElasticConfig{
		Addresses: []string{container.Address},
		IndexName: "tracks-test",
	})
	require.NoError(t, err)

	require.NoError(t, c.EnsureIndex(ctx), "ensuring an existing index is a no-op")

	_, err = c.Get(ctx, "geonames")
	assert.ErrorIs(t, err, ErrNotFound)

	entry := NewEntry(sampleTrack(), false)
	require.NoError(t, c.Publish(ctx, entry))

	got, err := c.Get(ctx, "geonames")
	require.NoError(t, err)
	assert.Equal(t, entry.Revision, got.Revision)
	assert.Equal(t, entry.Challenges, got.Challenges)
	assert.Equal(t, "append-fast", got.DefaultChallenge)
	assert.True(t, entry.LoadedAt.Equal(got.LoadedAt))
}
