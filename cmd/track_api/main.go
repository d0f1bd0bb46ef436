// Package main Track Loader API
// @title Track Loader API
// @version 1.0
// @description Resolves benchmark track templates into validated track models
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"log/slog"
	"os"

	_ "github.com/DjordjeVuckovic/track-loader/docs"
	"github.com/DjordjeVuckovic/track-loader/internal/catalog"
	"github.com/DjordjeVuckovic/track-loader/internal/router"
	"github.com/DjordjeVuckovic/track-loader/internal/server"
	"github.com/DjordjeVuckovic/track-loader/internal/track/loader"
	"github.com/DjordjeVuckovic/track-loader/pkg/config/env"
	pkgserver "github.com/DjordjeVuckovic/track-loader/pkg/server"
	"github.com/labstack/echo/v4"
)

func main() {
	if err := env.LoadDotEnv(env.Current(), "cmd/track_api/.env"); err != nil {
		slog.Info("Skipping .env ...", "error", err)
	}

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	lCfg, err := loader.LoadConfig()
	if err != nil {
		slog.Error("Failed to load loader config", "error", err)
		os.Exit(1)
	}

	s := server.New(sCfg, pkgserver.NewDirHealthChecker(lCfg.TracksRoot)).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "Track Loader API is running")
	})

	trackCatalog, err := catalog.New(s.Context(), catalog.LoadConfig())
	if err != nil {
		slog.Error("Failed to create track catalog", "error", err)
		os.Exit(1)
	}

	router.NewTrackRouter(s.Echo, loader.New(*lCfg), trackCatalog).Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	if err := s.Start(); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
