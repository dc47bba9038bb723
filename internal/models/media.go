package models

import "fmt"

// Movie represents a movie entry as returned by listing endpoints
type Movie struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	PosterPath  string  `json:"poster_path"`
	Overview    string  `json:"overview"`
	VoteAverage float64 `json:"vote_average"`
	ReleaseDate string  `json:"release_date"`
}

// TvShow represents a TV show entry as returned by listing endpoints
type TvShow struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	PosterPath   string  `json:"poster_path"`
	Overview     string  `json:"overview"`
	VoteAverage  float64 `json:"vote_average"`
	FirstAirDate string  `json:"first_air_date"`
}

// RatedMovie is a movie from the guest session's rated listing, carrying the submitted rating
type RatedMovie struct {
	Movie
	Rating float64 `json:"rating"`
}

// RatedTvShow is a TV show from the guest session's rated listing, carrying the submitted rating
type RatedTvShow struct {
	TvShow
	Rating float64 `json:"rating"`
}

// Page is the paginated envelope shared by every listing endpoint
type Page[T any] struct {
	Page         int `json:"page"`
	TotalResults int `json:"total_results"`
	TotalPages   int `json:"total_pages"`
	Results      []T `json:"results"`
}

// Validate checks the page envelope. requestedPage <= 0 skips the page check.
func (p *Page[T]) Validate(requestedPage int) error {
	if len(p.Results) > p.TotalResults {
		return fmt.Errorf("page holds %d results but total_results is %d", len(p.Results), p.TotalResults)
	}
	if requestedPage > 0 && p.Page != requestedPage {
		return fmt.Errorf("requested page %d but received page %d", requestedPage, p.Page)
	}
	return nil
}
