package env

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

const Local = "local"

// Current returns APP_ENV, defaulting to "local".
func Current() string {
	if env := os.Getenv("APP_ENV"); env != "" {
		return env
	}
	return Local
}

// LoadDotEnv loads environment variables from a .env file. ENV_PATH overrides defaultPath.
// A missing file is only an error in local mode; already set variables are never overwritten.
func LoadDotEnv(env string, defaultPath string) error {
	envPath := os.Getenv("ENV_PATH")
	if envPath == "" {
		slog.Debug("ENV_PATH is not set, using default path", "defaultPath", defaultPath)
		envPath = defaultPath
	}

	if err := godotenv.Load(envPath); err != nil {
		if env == Local || env == "" {
			return fmt.Errorf("load %s: %w", envPath, err)
		}
		slog.Debug("Skipping .env ...", "path", envPath)
	}

	return nil
}
