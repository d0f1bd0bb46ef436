package report

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/DjordjeVuckovic/track-loader/internal/track"
)

func WriteJSON(t *track.Track, path string) error {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal track: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write track: %w", err)
	}
	return nil
}
