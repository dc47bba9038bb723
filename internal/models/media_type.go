package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// MediaType identifies the kind of ratable entity
type MediaType int

const (
	MediaTypeUnknown MediaType = iota
	MediaTypeMovie
	MediaTypeTvShow
)

// String returns the path segment the remote service uses for the media type
func (m MediaType) String() string {
	switch m {
	case MediaTypeMovie:
		return "movie"
	case MediaTypeTvShow:
		return "tv"
	default:
		return "unknown"
	}
}

// ParseMediaType converts user input ("movie", "tv", "show", "tvshow") to a MediaType
func ParseMediaType(s string) MediaType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "movie", "movies", "film":
		return MediaTypeMovie
	case "tv", "show", "shows", "tvshow", "tv-show":
		return MediaTypeTvShow
	default:
		return MediaTypeUnknown
	}
}

func (m MediaType) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *MediaType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("media type must be a string: %w", err)
	}
	*m = ParseMediaType(s)
	return nil
}
