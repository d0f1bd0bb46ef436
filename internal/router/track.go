package router

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/DjordjeVuckovic/track-loader/internal/apperr"
	"github.com/DjordjeVuckovic/track-loader/internal/catalog"
	"github.com/DjordjeVuckovic/track-loader/internal/track"
	"github.com/DjordjeVuckovic/track-loader/internal/track/loader"
	"github.com/labstack/echo/v4"
)

type TrackLoader interface {
	List() ([]string, error)
	Load(name string, vars map[string]any, opts ...loader.LoadOption) (*track.Track, error)
	LoadSource(name, source string, fragments map[string]string, vars map[string]any, opts ...loader.LoadOption) (*track.Track, error)
}

type TrackRouter struct {
	e       *echo.Echo
	loader  TrackLoader
	catalog catalog.Catalog
}

func NewTrackRouter(e *echo.Echo, l TrackLoader, c catalog.Catalog) *TrackRouter {
	return &TrackRouter{
		e:       e,
		loader:  l,
		catalog: c,
	}
}

func (r *TrackRouter) Bind() {
	v1 := r.e.Group("/api/v1")
	v1.GET("/tracks", r.listHandler)
	v1.GET("/tracks/:name", r.getHandler)
	v1.POST("/tracks/:name/validate", r.validateHandler)
	v1.GET("/catalog/:name", r.catalogHandler)
}

type TrackListResponse struct {
	Tracks []string `json:"tracks"`
}

// ValidateRequest carries an unsaved track: its root template, the fragments it may
// collect keyed by identifier, and the variables to render it with.
type ValidateRequest struct {
	Source    string            `json:"source"`
	Fragments map[string]string `json:"fragments"`
	Vars      map[string]any    `json:"vars"`
}

// listHandler returns all track names.
//
//	@Summary	List tracks
//	@Tags		tracks
//	@Produce	json
//	@Success	200	{object}	TrackListResponse
//	@Router		/api/v1/tracks [get]
func (r *TrackRouter) listHandler(c echo.Context) error {
	names, err := r.loader.List()
	if err != nil {
		return err
	}
	if names == nil {
		names = []string{}
	}
	return c.JSON(http.StatusOK, TrackListResponse{Tracks: names})
}

// getHandler resolves an on-disk track and records it in the catalog.
//
//	@Summary	Load a track
//	@Tags		tracks
//	@Produce	json
//	@Param		name		path		string		true	"Track name"
//	@Param		test_mode	query		bool		false	"Shrink schedules for a smoke run"
//	@Param		challenge	query		string		false	"Return only this challenge"
//	@Param		var			query		[]string	false	"Template variable as key=value"
//	@Success	200			{object}	track.Track
//	@Failure	404			{object}	map[string]string
//	@Failure	422			{object}	map[string]string
//	@Router		/api/v1/tracks/{name} [get]
func (r *TrackRouter) getHandler(c echo.Context) error {
	name := c.Param("name")
	testMode, err := parseTestMode(c)
	if err != nil {
		return err
	}
	vars, err := loader.ParseVars(c.QueryParams()["var"])
	if err != nil {
		return apperr.NewValidationWrap("invalid template variable", err).OnField("var")
	}

	t, err := r.loader.Load(name, vars, loadOptions(testMode)...)
	if err != nil {
		return err
	}

	if err := r.catalog.Publish(c.Request().Context(), catalog.NewEntry(t, testMode)); err != nil {
		// serving the track does not depend on the catalog
		slog.Error("Failed to publish catalog entry", "track", name, "error", err)
	}

	return r.respond(c, t)
}

// validateHandler resolves a track posted in the request body without storing it.
//
//	@Summary	Validate a track
//	@Tags		tracks
//	@Accept		json
//	@Produce	json
//	@Param		name		path		string			true	"Track name"
//	@Param		test_mode	query		bool			false	"Shrink schedules for a smoke run"
//	@Param		challenge	query		string			false	"Return only this challenge"
//	@Param		request		body		ValidateRequest	true	"Track source"
//	@Success	200			{object}	track.Track
//	@Failure	400			{object}	map[string]string
//	@Failure	422			{object}	map[string]string
//	@Router		/api/v1/tracks/{name}/validate [post]
func (r *TrackRouter) validateHandler(c echo.Context) error {
	var req ValidateRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if req.Source == "" {
		return apperr.NewValidation("source must not be empty").OnField("source")
	}
	testMode, err := parseTestMode(c)
	if err != nil {
		return err
	}

	t, err := r.loader.LoadSource(c.Param("name"), req.Source, req.Fragments, req.Vars, loadOptions(testMode)...)
	if err != nil {
		return err
	}
	return r.respond(c, t)
}

// catalogHandler returns the last published entry of a track.
//
//	@Summary	Get a catalog entry
//	@Tags		catalog
//	@Produce	json
//	@Param		name	path		string	true	"Track name"
//	@Success	200		{object}	catalog.Entry
//	@Failure	404		{object}	map[string]string
//	@Router		/api/v1/catalog/{name} [get]
func (r *TrackRouter) catalogHandler(c echo.Context) error {
	entry, err := r.catalog.Get(c.Request().Context(), c.Param("name"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entry)
}

func (r *TrackRouter) respond(c echo.Context, t *track.Track) error {
	name := c.QueryParam("challenge")
	if name == "" {
		return c.JSON(http.StatusOK, t)
	}

	challenge, ok := t.FindChallenge(name)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Unknown challenge ["+name+"] for track ["+t.Name+"]")
	}
	selected := *t
	selected.Challenges = []track.Challenge{*challenge}
	return c.JSON(http.StatusOK, &selected)
}

func parseTestMode(c echo.Context) (bool, error) {
	raw := c.QueryParam("test_mode")
	if raw == "" {
		return false, nil
	}
	testMode, err := strconv.ParseBool(raw)
	if err != nil {
		return false, apperr.NewValidationWrap("must be a boolean", err).OnField("test_mode")
	}
	return testMode, nil
}

func loadOptions(testMode bool) []loader.LoadOption {
	if testMode {
		return []loader.LoadOption{loader.WithTestMode()}
	}
	return nil
}
