package client

import (
	"strings"

	"github.com/Belphemur/ReelRate/internal/config"
)

// PosterURL builds the image URL for a poster path such as "/abc.jpg".
// An empty size means "original". An empty path yields an empty URL.
func PosterURL(posterPath, size string) string {
	if posterPath == "" {
		return ""
	}
	if size == "" {
		size = "original"
	}

	base := config.DefaultImageBaseURL
	if cfg := config.GetConfig(); cfg != nil && cfg.TMDB.ImageBaseURL != "" {
		base = cfg.TMDB.ImageBaseURL
	}
	return strings.TrimRight(base, "/") + "/" + size + "/" + strings.TrimLeft(posterPath, "/")
}
