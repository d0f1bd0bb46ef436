package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/track-loader/internal/track"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTrack() *track.Track {
	bulk := track.Operation{Name: "index-append", Type: "index", Params: map[string]any{"bulk-size": 5000}}
	search := track.Operation{Name: "term", Type: "search", Params: map[string]any{}}
	return &track.Track{
		Name:             "geonames",
		ShortDescription: "POIs from Geonames",
		Description:      "POIs from Geonames",
		Indices: []track.Index{
			{
				Name:        "geonames",
				AutoManaged: true,
				Types: []track.Type{
					{Name: "docs", DocumentCount: 11396505, CompressedBytes: 265208777, UncompressedBytes: 3547613828, MappingFile: "/tracks/geonames/mappings.json"},
				},
			},
		},
		Operations: []track.Operation{bulk, search},
		Challenges: []track.Challenge{
			{
				Name:        "append-no-conflicts",
				Description: "Append only",
				Default:     true,
				Schedule: []track.ScheduleEntry{
					&track.Task{Operation: bulk, Clients: 8, WarmupTimePeriod: track.Int(120), TimePeriod: track.Int(600), Params: map[string]any{}},
					&track.Parallel{
						Clients: 3,
						Tasks: []*track.Task{
							{Operation: search, Clients: 2, WarmupIterations: track.Int(500), Iterations: track.Int(1000), Params: map[string]any{"target-throughput": 10}},
							{Operation: search, Clients: 1, Params: map[string]any{}},
						},
					},
				},
			},
		},
	}
}

func TestWriteTable(t *testing.T) {
	var sb strings.Builder
	WriteTable(sampleTrack(), &sb)
	out := sb.String()

	assert.Contains(t, out, "=== Track: geonames ===")
	assert.Contains(t, out, "Challenge: append-no-conflicts (default)")
	assert.Contains(t, out, "252.9 MiB")
	assert.Contains(t, out, "3.3 GiB")
	assert.Contains(t, out, `{"bulk-size":5000}`)
	assert.Contains(t, out, `{"target-throughput":10}`)

	lines := strings.Split(out, "\n")
	var taskRow, parallelRow string
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "1 "):
			taskRow = line
		case strings.HasPrefix(line, "2 "):
			parallelRow = line
		}
	}
	assert.Equal(t, []string{"1", "index-append", "8", "120s", "600s", "-"}, strings.Fields(taskRow))
	assert.Equal(t, []string{"2", "parallel", "3", "-", "-", "-"}, strings.Fields(parallelRow))
	assert.Contains(t, out, "500 iter")
	assert.Contains(t, out, "1000 iter")
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "track.json")
	require.NoError(t, WriteJSON(sampleTrack(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "geonames", doc["name"])

	schedule := doc["challenges"].([]any)[0].(map[string]any)["schedule"].([]any)
	require.Len(t, schedule, 2)
	assert.Equal(t, "index-append", schedule[0].(map[string]any)["operation"])
	assert.Contains(t, schedule[1].(map[string]any), "parallel")
}

func TestFmtBytes(t *testing.T) {
	assert.Equal(t, "512 B", fmtBytes(512))
	assert.Equal(t, "1.0 KiB", fmtBytes(1024))
	assert.Equal(t, "1.5 MiB", fmtBytes(1536*1024))
}
