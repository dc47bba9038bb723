package services

import (
	"context"

	"github.com/Belphemur/ReelRate/internal/models"
	"github.com/Belphemur/ReelRate/internal/session"
)

// ReviewService is the data-access facade used by every surface (CLI, gRPC).
// It composes the session store with the API client and owns the session gating rules.
type ReviewService interface {
	TopRatedMovies(ctx context.Context, page int) (*models.Page[models.Movie], error)
	TopRatedTvShows(ctx context.Context, page int) (*models.Page[models.TvShow], error)
	MovieDetails(ctx context.Context, movieID int) (*models.MovieDetails, error)
	TvShowDetails(ctx context.Context, tvShowID int) (*models.TvShowDetails, error)

	// RatedMovies and RatedTvShows list what the stored guest session rated.
	RatedMovies(ctx context.Context) (*models.Page[models.RatedMovie], error)
	RatedTvShows(ctx context.Context) (*models.Page[models.RatedTvShow], error)

	// RateMovie and RateTvShow submit a rating with the stored guest session.
	// The rating is not range checked.
	RateMovie(ctx context.Context, movieID int, rating float64) (*models.StatusResponse, error)
	RateTvShow(ctx context.Context, tvShowID int, rating float64) (*models.StatusResponse, error)

	// CreateGuestSession requests a new guest session without storing it.
	CreateGuestSession(ctx context.Context) (*models.GuestSession, error)

	// Login creates a guest session and stores it, replacing any previous one.
	Login(ctx context.Context) (session.Session, error)
	// Logout forgets the stored guest session.
	Logout(ctx context.Context) error
	// CurrentSession returns the stored guest session, if any.
	CurrentSession(ctx context.Context) (session.Session, bool, error)
}
