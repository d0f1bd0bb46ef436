package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("TRACKS_ROOT=/srv/tracks\nDATA_ROOT=/srv/data\n"), 0o644))

	t.Run("default path", func(t *testing.T) {
		t.Setenv("ENV_PATH", "")
		t.Setenv("TRACKS_ROOT", "")
		os.Unsetenv("TRACKS_ROOT")

		require.NoError(t, LoadDotEnv(Local, path))
		assert.Equal(t, "/srv/tracks", os.Getenv("TRACKS_ROOT"))
	})

	t.Run("existing variables win", func(t *testing.T) {
		t.Setenv("ENV_PATH", path)
		t.Setenv("DATA_ROOT", "/mnt/data")

		require.NoError(t, LoadDotEnv(Local, "missing.env"))
		assert.Equal(t, "/mnt/data", os.Getenv("DATA_ROOT"))
	})

	t.Run("missing file in local mode", func(t *testing.T) {
		t.Setenv("ENV_PATH", "")
		assert.Error(t, LoadDotEnv(Local, filepath.Join(dir, "missing.env")))
	})

	t.Run("missing file elsewhere", func(t *testing.T) {
		t.Setenv("ENV_PATH", "")
		assert.NoError(t, LoadDotEnv("production", filepath.Join(dir, "missing.env")))
	})
}

func TestCurrent(t *testing.T) {
	t.Setenv("APP_ENV", "")
	assert.Equal(t, Local, Current())

	t.Setenv("APP_ENV", "production")
	assert.Equal(t, "production", Current())
}
