// Command track_lint resolves a track from disk, reports validation errors and
// prints the resolved schedule.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/track-loader/internal/track"
	"github.com/DjordjeVuckovic/track-loader/internal/track/loader"
	"github.com/DjordjeVuckovic/track-loader/internal/track/report"
	"github.com/DjordjeVuckovic/track-loader/pkg/config/env"
)

func main() {
	if err := env.LoadDotEnv(env.Current(), ".env"); err != nil {
		slog.Debug("Skipping .env ...", "error", err)
	}

	defaults, err := loader.LoadConfig()
	if err != nil {
		slog.Error("Invalid loader configuration", "error", err)
		os.Exit(1)
	}

	cfg := parseFlags(*defaults)
	defaults.TracksRoot = cfg.TracksRoot
	defaults.DataRoot = cfg.DataRoot
	l := loader.New(*defaults)

	if cfg.List {
		listTracks(l)
		return
	}

	if cfg.Track == "" {
		slog.Error("Missing -track flag")
		os.Exit(1)
	}

	vars, err := loader.ParseVars(cfg.Vars)
	if err != nil {
		slog.Error("Invalid -var flag", "error", err)
		os.Exit(1)
	}

	var opts []loader.LoadOption
	if cfg.TestMode {
		opts = append(opts, loader.WithTestMode())
	}

	t, err := l.Load(cfg.Track, vars, opts...)
	if err != nil {
		slog.Error("Failed to load track", "track", cfg.Track, "error", err)
		os.Exit(1)
	}

	if cfg.Challenge != "" {
		challenge, ok := t.FindChallenge(cfg.Challenge)
		if !ok {
			slog.Error("Unknown challenge", "track", t.Name, "challenge", cfg.Challenge, "available", t.ChallengeNames())
			os.Exit(1)
		}
		t.Challenges = []track.Challenge{*challenge}
	}

	report.WriteTable(t, os.Stdout)

	if cfg.Output != "" {
		if err := report.WriteJSON(t, cfg.Output); err != nil {
			slog.Error("Failed to write track", "path", cfg.Output, "error", err)
			os.Exit(1)
		}
		slog.Info("Track written", "path", cfg.Output)
	}
}

func listTracks(l *loader.Loader) {
	names, err := l.List()
	if err != nil {
		slog.Error("Failed to list tracks", "error", err)
		os.Exit(1)
	}
	for _, name := range names {
		fmt.Println(name)
	}
}
