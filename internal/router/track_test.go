package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/track-loader/internal/apperr"
	"github.com/DjordjeVuckovic/track-loader/internal/catalog"
	"github.com/DjordjeVuckovic/track-loader/internal/track/loader"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const trackSource = `{
  "short-description": "Logging benchmark",
  "description": "Logs with {{ .clients }} clients",
  "operations": [
    {"name": "index-append", "operation-type": "index", "bulk-size": 1000},
    {"name": "search", "operation-type": "search"}
  ],
  "challenges": [
    {
      "name": "append",
      "description": "Append only",
      "default": true,
      "schedule": [{"operation": "index-append", "clients": {{ .clients }}, "warmup-time-period": 60, "time-period": 600}]
    },
    {
      "name": "query",
      "description": "Query only",
      "schedule": [{"operation": "search", "clients": 2, "iterations": 1000}]
    }
  ]
}`

type fixture struct {
	e       *echo.Echo
	catalog *catalog.Memory
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, "logging")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "track.json"), []byte(trackSource), 0o644))

	e := echo.New()
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()
	c := catalog.NewMemory()
	NewTrackRouter(e, loader.New(loader.Config{TracksRoot: root, DataRoot: "/data"}), c).Bind()
	return &fixture{e: e, catalog: c}
}

func (f *fixture) do(t *testing.T, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return rec, out
}

func TestTrackRouter_List(t *testing.T) {
	f := newFixture(t)

	rec, body := f.do(t, http.MethodGet, "/api/v1/tracks", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{"logging"}, body["tracks"])
}

func TestTrackRouter_Get(t *testing.T) {
	f := newFixture(t)

	t.Run("full track", func(t *testing.T) {
		rec, body := f.do(t, http.MethodGet, "/api/v1/tracks/logging?var=clients=8", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Logs with 8 clients", body["description"])
		assert.Len(t, body["challenges"], 2)

		entry, err := f.catalog.Get(t.Context(), "logging")
		require.NoError(t, err)
		assert.Equal(t, "append", entry.DefaultChallenge)
		assert.False(t, entry.TestMode)
	})

	t.Run("single challenge in test mode", func(t *testing.T) {
		rec, body := f.do(t, http.MethodGet, "/api/v1/tracks/logging?var=clients=4&test_mode=true&challenge=append", "")
		require.Equal(t, http.StatusOK, rec.Code)

		challenges := body["challenges"].([]any)
		require.Len(t, challenges, 1)
		task := challenges[0].(map[string]any)["schedule"].([]any)[0].(map[string]any)
		assert.Equal(t, "index-append", task["operation"])
		assert.EqualValues(t, 4, task["clients"])
		assert.EqualValues(t, 0, task["warmup_time_period"])
		assert.EqualValues(t, 10, task["time_period"])

		entry, err := f.catalog.Get(t.Context(), "logging")
		require.NoError(t, err)
		assert.True(t, entry.TestMode)
	})

	t.Run("unknown challenge", func(t *testing.T) {
		rec, body := f.do(t, http.MethodGet, "/api/v1/tracks/logging?var=clients=4&challenge=nope", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Unknown challenge [nope] for track [logging]", body["error"])
	})

	t.Run("unknown track", func(t *testing.T) {
		rec, _ := f.do(t, http.MethodGet, "/api/v1/tracks/nope", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("missing variable", func(t *testing.T) {
		rec, body := f.do(t, http.MethodGet, "/api/v1/tracks/logging", "")
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "template error", body["title"])
	})

	t.Run("invalid test mode", func(t *testing.T) {
		rec, body := f.do(t, http.MethodGet, "/api/v1/tracks/logging?test_mode=maybe", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "test_mode", body["field"])
	})
}

func TestTrackRouter_Validate(t *testing.T) {
	f := newFixture(t)

	t.Run("valid source with fragments", func(t *testing.T) {
		req, err := json.Marshal(ValidateRequest{
			Source: `{
  "short-description": "s",
  "description": "d",
  "operations": [{{ collect "ops/*" }}],
  "challenges": [{"name": "c", "description": "c", "schedule": [{"operation": "bulk", "clients": {{ .clients }}}]}]
}`,
			Fragments: map[string]string{"ops/bulk": `{"name": "bulk", "operation-type": "index"}`},
			Vars:      map[string]any{"clients": 3},
		})
		require.NoError(t, err)

		rec, body := f.do(t, http.MethodPost, "/api/v1/tracks/draft/validate", string(req))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "draft", body["name"])

		_, err = f.catalog.Get(t.Context(), "draft")
		assert.ErrorIs(t, err, catalog.ErrNotFound)
	})

	t.Run("invalid track", func(t *testing.T) {
		req := `{"source": "{\"short-description\": \"s\", \"description\": \"d\", \"challenges\": [{\"name\": \"c\", \"description\": \"c\", \"schedule\": [{\"operation\": \"nope\"}]}]}"}`
		rec, body := f.do(t, http.MethodPost, "/api/v1/tracks/draft/validate", req)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "invalid track", body["title"])
		assert.Contains(t, body["error"], "contains a non-existing operation 'nope'")
	})

	t.Run("empty source", func(t *testing.T) {
		rec, body := f.do(t, http.MethodPost, "/api/v1/tracks/draft/validate", `{"source": ""}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "source must not be empty", body["error"])
		assert.Equal(t, "source", body["field"])
	})

	t.Run("malformed body", func(t *testing.T) {
		rec, _ := f.do(t, http.MethodPost, "/api/v1/tracks/draft/validate", `{"source": `)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestTrackRouter_Catalog(t *testing.T) {
	f := newFixture(t)

	rec, _ := f.do(t, http.MethodGet, "/api/v1/catalog/logging", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = f.do(t, http.MethodGet, "/api/v1/tracks/logging?var=clients=2", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec, body := f.do(t, http.MethodGet, "/api/v1/catalog/logging", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "logging", body["track"])
	assert.Equal(t, []any{"append", "query"}, body["challenges"])
}
