package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Belphemur/ReelRate/internal/config"
	"github.com/Belphemur/ReelRate/internal/models"
	"github.com/Belphemur/ReelRate/internal/session"
)

// TopRatedMovies fetches one page of the top rated movie listing.
// The page number is forwarded as given.
func (c *client) TopRatedMovies(ctx context.Context, page int) (*models.Page[models.Movie], error) {
	query := url.Values{}
	query.Set("language", c.language)
	query.Set("page", strconv.Itoa(page))

	var result models.Page[models.Movie]
	err := c.do(ctx, apiRequest{
		operation: "top_rated_movies",
		method:    http.MethodGet,
		path:      "/movie/top_rated",
		query:     query,
		cacheable: true,
	}, &result, func() error { return result.Validate(page) })
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// MovieDetails fetches the detail document of one movie.
func (c *client) MovieDetails(ctx context.Context, movieID int) (*models.MovieDetails, error) {
	query := url.Values{}
	query.Set("language", c.language)

	var result models.MovieDetails
	err := c.do(ctx, apiRequest{
		operation: "movie_details",
		method:    http.MethodGet,
		path:      "/movie/" + strconv.Itoa(movieID),
		query:     query,
		cacheable: true,
	}, &result, func() error {
		if result.ID == 0 {
			return fmt.Errorf("movie details carry no id")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// RatedMovies lists the movies rated with the given guest session, oldest rating first.
func (c *client) RatedMovies(ctx context.Context, sessionID string) (*models.Page[models.RatedMovie], error) {
	const operation = "rated_movies"
	if err := requireSession(operation, sessionID); err != nil {
		return nil, err
	}

	var result models.Page[models.RatedMovie]
	err := c.do(ctx, apiRequest{
		operation: operation,
		method:    http.MethodGet,
		path:      "/guest_session/" + url.PathEscape(sessionID) + "/rated/movies",
		query:     ratedListingQuery(c.language),
	}, &result, func() error { return result.Validate(1) })
	if err != nil {
		return nil, err
	}

	logger := config.GetLogger()
	logger.Debug().
		Str("session", session.Mask(sessionID)).
		Int("total_results", result.TotalResults).
		Msg("Fetched rated movies")
	return &result, nil
}

// RateMovie submits a rating for a movie. The rating is forwarded without range checks.
func (c *client) RateMovie(ctx context.Context, sessionID string, movieID int, rating float64) (*models.StatusResponse, error) {
	return c.rate(ctx, "rate_movie", sessionID, "/movie/"+strconv.Itoa(movieID)+"/rating", rating)
}

func (c *client) rate(ctx context.Context, operation, sessionID, path string, rating float64) (*models.StatusResponse, error) {
	if err := requireSession(operation, sessionID); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("guest_session_id", sessionID)

	var result models.StatusResponse
	err := c.do(ctx, apiRequest{
		operation: operation,
		method:    http.MethodPost,
		path:      path,
		query:     query,
		body:      models.RatingRequest{Value: rating},
	}, &result, nil)
	if err != nil {
		return nil, err
	}

	logger := config.GetLogger()
	logger.Info().
		Str("operation", operation).
		Str("path", path).
		Float64("rating", rating).
		Str("session", session.Mask(sessionID)).
		Msg("Rating submitted")
	return &result, nil
}

func ratedListingQuery(language string) url.Values {
	query := url.Values{}
	query.Set("language", language)
	query.Set("page", "1")
	query.Set("sort_by", "created_at.asc")
	return query
}
