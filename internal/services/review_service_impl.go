package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Belphemur/ReelRate/internal/apperrors"
	"github.com/Belphemur/ReelRate/internal/client"
	"github.com/Belphemur/ReelRate/internal/config"
	"github.com/Belphemur/ReelRate/internal/metrics"
	"github.com/Belphemur/ReelRate/internal/models"
	"github.com/Belphemur/ReelRate/internal/session"
)

// DefaultReviewService implements ReviewService on top of a Client and a session Store.
//
// Session-gated calls capture the session generation before the request and compare
// it once the response is in. A logout or a new login in between makes the result
// stale: it is dropped and StaleSessionError is returned instead.
type DefaultReviewService struct {
	client client.Client
	store  session.Store
}

// NewReviewService creates a ReviewService. The caller keeps ownership of c and store.
func NewReviewService(c client.Client, store session.Store) ReviewService {
	return &DefaultReviewService{client: c, store: store}
}

func (s *DefaultReviewService) TopRatedMovies(ctx context.Context, page int) (*models.Page[models.Movie], error) {
	return s.client.TopRatedMovies(ctx, page)
}

func (s *DefaultReviewService) TopRatedTvShows(ctx context.Context, page int) (*models.Page[models.TvShow], error) {
	return s.client.TopRatedTvShows(ctx, page)
}

func (s *DefaultReviewService) MovieDetails(ctx context.Context, movieID int) (*models.MovieDetails, error) {
	return s.client.MovieDetails(ctx, movieID)
}

func (s *DefaultReviewService) TvShowDetails(ctx context.Context, tvShowID int) (*models.TvShowDetails, error) {
	return s.client.TvShowDetails(ctx, tvShowID)
}

func (s *DefaultReviewService) RatedMovies(ctx context.Context) (*models.Page[models.RatedMovie], error) {
	return gated(ctx, s.store, "rated movies", false, func(sessionID string) (*models.Page[models.RatedMovie], error) {
		return s.client.RatedMovies(ctx, sessionID)
	})
}

func (s *DefaultReviewService) RatedTvShows(ctx context.Context) (*models.Page[models.RatedTvShow], error) {
	return gated(ctx, s.store, "rated tv shows", false, func(sessionID string) (*models.Page[models.RatedTvShow], error) {
		return s.client.RatedTvShows(ctx, sessionID)
	})
}

func (s *DefaultReviewService) RateMovie(ctx context.Context, movieID int, rating float64) (*models.StatusResponse, error) {
	status, err := gated(ctx, s.store, "rate movie", true, func(sessionID string) (*models.StatusResponse, error) {
		return s.client.RateMovie(ctx, sessionID, movieID, rating)
	})
	metrics.RatingsSubmittedTotal.WithLabelValues(models.MediaTypeMovie.String(), outcome(err)).Inc()
	return status, err
}

func (s *DefaultReviewService) RateTvShow(ctx context.Context, tvShowID int, rating float64) (*models.StatusResponse, error) {
	status, err := gated(ctx, s.store, "rate tv show", true, func(sessionID string) (*models.StatusResponse, error) {
		return s.client.RateTvShow(ctx, sessionID, tvShowID, rating)
	})
	metrics.RatingsSubmittedTotal.WithLabelValues(models.MediaTypeTvShow.String(), outcome(err)).Inc()
	return status, err
}

func (s *DefaultReviewService) CreateGuestSession(ctx context.Context) (*models.GuestSession, error) {
	gs, err := s.client.CreateGuestSession(ctx)
	metrics.GuestSessionsCreatedTotal.WithLabelValues(outcome(err)).Inc()
	return gs, err
}

func (s *DefaultReviewService) Login(ctx context.Context) (session.Session, error) {
	gs, err := s.CreateGuestSession(ctx)
	if err != nil {
		return session.Session{}, fmt.Errorf("login: %w", err)
	}

	stored, err := s.store.Set(ctx, gs.GuestSessionID)
	if err != nil {
		return session.Session{}, fmt.Errorf("login: store guest session: %w", err)
	}

	logger := config.GetLogger()
	logger.Info().
		Str("session", session.Mask(stored.ID)).
		Str("generation", stored.Generation).
		Msg("Logged in with a new guest session")
	return stored, nil
}

func (s *DefaultReviewService) Logout(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	logger := config.GetLogger()
	logger.Info().Msg("Guest session cleared")
	return nil
}

func (s *DefaultReviewService) CurrentSession(ctx context.Context) (session.Session, bool, error) {
	return s.store.Get(ctx)
}

// gated runs call with the stored session id and discards its result if the
// session was cleared or replaced before call returned. submits marks calls
// that write on the remote side, so the stale error can say so.
func gated[T any](ctx context.Context, store session.Store, operation string, submits bool, call func(sessionID string) (T, error)) (T, error) {
	var zero T

	current, ok, err := store.Get(ctx)
	if err != nil {
		return zero, fmt.Errorf("%s: read guest session: %w", operation, err)
	}
	if !ok {
		return zero, apperrors.NewMissingSessionError(operation)
	}

	result, err := call(current.ID)
	if err != nil {
		return zero, err
	}

	latest, ok, err := store.Get(ctx)
	if err != nil {
		return zero, fmt.Errorf("%s: re-read guest session: %w", operation, err)
	}
	if !ok || latest.Generation != current.Generation {
		logger := config.GetLogger()
		logger.Warn().
			Str("operation", operation).
			Str("session", session.Mask(current.ID)).
			Bool("submitted", submits).
			Msg("Guest session changed while the request was in flight, discarding result")
		if submits {
			return zero, apperrors.NewStaleSubmissionError(operation)
		}
		return zero, apperrors.NewStaleSessionError(operation)
	}
	return result, nil
}

// outcome maps an error to the metrics outcome label.
func outcome(err error) string {
	var remote *apperrors.RemoteRequestError
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case client.IsTransportError(err):
		return metrics.OutcomeTransportError
	case errors.Is(err, &apperrors.MissingSessionError{}):
		return metrics.OutcomeMissingSession
	case errors.Is(err, &apperrors.StaleSessionError{}):
		return metrics.OutcomeStaleSession
	case errors.As(err, &remote):
		return metrics.OutcomeRemoteError
	default:
		return metrics.OutcomeDecodeError
	}
}
