package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/DjordjeVuckovic/track-loader/internal/catalog"
	"github.com/DjordjeVuckovic/track-loader/internal/track"
	"github.com/DjordjeVuckovic/track-loader/internal/track/loader"
	"github.com/labstack/echo/v4"
)

// GlobalErrorHandler renders handler errors as {"error": ..., "title": ...} bodies.
// Invalid tracks are reported as 422 so clients can tell them apart from bad requests.
func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve *ValidationError
		if errors.As(err, &ve) {
			body := map[string]string{"error": ve.Message, "title": "validation error"}
			if ve.Field != "" {
				body["field"] = ve.Field
			}
			_ = c.JSON(http.StatusBadRequest, body)
			return
		}

		if status, title, ok := trackError(err); ok {
			_ = c.JSON(status, map[string]string{"error": err.Error(), "title": title})
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg := fmt.Sprintf("%v", he.Message)
			_ = c.JSON(he.Code, map[string]string{"error": msg})
			return
		}

		slog.Error("Unhandled error", "error", err)
		_ = c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}

func trackError(err error) (int, string, bool) {
	var (
		tse *track.TrackSyntaxError
		se  *track.SyntaxError
		te  *track.TemplateError
	)
	switch {
	case errors.Is(err, loader.ErrTrackNotFound):
		return http.StatusNotFound, "track not found", true
	case errors.Is(err, catalog.ErrNotFound):
		return http.StatusNotFound, "catalog entry not found", true
	case errors.As(err, &tse):
		return http.StatusUnprocessableEntity, "invalid track", true
	case errors.As(err, &se):
		return http.StatusUnprocessableEntity, "malformed track", true
	case errors.As(err, &te):
		return http.StatusUnprocessableEntity, "template error", true
	}
	return 0, "", false
}
