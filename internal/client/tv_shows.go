package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Belphemur/ReelRate/internal/models"
)

// TopRatedTvShows fetches one page of the top rated TV show listing.
func (c *client) TopRatedTvShows(ctx context.Context, page int) (*models.Page[models.TvShow], error) {
	query := url.Values{}
	query.Set("language", c.language)
	query.Set("page", strconv.Itoa(page))

	var result models.Page[models.TvShow]
	err := c.do(ctx, apiRequest{
		operation: "top_rated_tv_shows",
		method:    http.MethodGet,
		path:      "/tv/top_rated",
		query:     query,
		cacheable: true,
	}, &result, func() error { return result.Validate(page) })
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// TvShowDetails fetches the detail document of one TV show.
func (c *client) TvShowDetails(ctx context.Context, tvShowID int) (*models.TvShowDetails, error) {
	query := url.Values{}
	query.Set("language", c.language)

	var result models.TvShowDetails
	err := c.do(ctx, apiRequest{
		operation: "tv_show_details",
		method:    http.MethodGet,
		path:      "/tv/" + strconv.Itoa(tvShowID),
		query:     query,
		cacheable: true,
	}, &result, func() error {
		if result.ID == 0 {
			return fmt.Errorf("tv show details carry no id")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// RatedTvShows lists the TV shows rated with the given guest session.
func (c *client) RatedTvShows(ctx context.Context, sessionID string) (*models.Page[models.RatedTvShow], error) {
	const operation = "rated_tv_shows"
	if err := requireSession(operation, sessionID); err != nil {
		return nil, err
	}

	var result models.Page[models.RatedTvShow]
	err := c.do(ctx, apiRequest{
		operation: operation,
		method:    http.MethodGet,
		path:      "/guest_session/" + url.PathEscape(sessionID) + "/rated/tv",
		query:     ratedListingQuery(c.language),
	}, &result, func() error { return result.Validate(1) })
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// RateTvShow submits a rating for a TV show.
func (c *client) RateTvShow(ctx context.Context, sessionID string, tvShowID int, rating float64) (*models.StatusResponse, error) {
	return c.rate(ctx, "rate_tv_show", sessionID, "/tv/"+strconv.Itoa(tvShowID)+"/rating", rating)
}
