package grpc

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/Belphemur/ReelRate/internal/config"
	"github.com/Belphemur/ReelRate/internal/services"
	"github.com/Belphemur/ReelRate/internal/session"
)

// defaultRating is used when a rate request carries no rating.
const defaultRating = 10

// server implements ReviewServiceServer on top of the review facade.
type server struct {
	service services.ReviewService
	logger  zerolog.Logger
}

// NewServer creates a new gRPC server instance
func NewServer(svc services.ReviewService) ReviewServiceServer {
	return &server{
		service: svc,
		logger:  config.GetLogger(),
	}
}

// GetTopRatedMovies expects {"page": n}; page defaults to 1.
func (s *server) GetTopRatedMovies(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	page, err := pageArg(req)
	if err != nil {
		return nil, invalidArgument(err)
	}
	s.logger.Debug().Int("page", page).Msg("GetTopRatedMovies called")
	return respond(s.service.TopRatedMovies(ctx, page))
}

// GetTopRatedTvShows expects {"page": n}; page defaults to 1.
func (s *server) GetTopRatedTvShows(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	page, err := pageArg(req)
	if err != nil {
		return nil, invalidArgument(err)
	}
	s.logger.Debug().Int("page", page).Msg("GetTopRatedTvShows called")
	return respond(s.service.TopRatedTvShows(ctx, page))
}

// GetMovieDetails expects {"id": n}.
func (s *server) GetMovieDetails(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := idArg(req)
	if err != nil {
		return nil, invalidArgument(err)
	}
	s.logger.Debug().Int("movie_id", id).Msg("GetMovieDetails called")
	return respond(s.service.MovieDetails(ctx, id))
}

// GetTvShowDetails expects {"id": n}.
func (s *server) GetTvShowDetails(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := idArg(req)
	if err != nil {
		return nil, invalidArgument(err)
	}
	s.logger.Debug().Int("tv_show_id", id).Msg("GetTvShowDetails called")
	return respond(s.service.TvShowDetails(ctx, id))
}

func (s *server) GetRatedMovies(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	return respond(s.service.RatedMovies(ctx))
}

func (s *server) GetRatedTvShows(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	return respond(s.service.RatedTvShows(ctx))
}

// RateMovie expects {"id": n, "rating": r}; rating defaults to 10 and is not range checked.
func (s *server) RateMovie(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, rating, err := rateArgs(req)
	if err != nil {
		return nil, invalidArgument(err)
	}
	s.logger.Debug().Int("movie_id", id).Float64("rating", rating).Msg("RateMovie called")
	return respond(s.service.RateMovie(ctx, id, rating))
}

// RateTvShow expects {"id": n, "rating": r}; rating defaults to 10 and is not range checked.
func (s *server) RateTvShow(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, rating, err := rateArgs(req)
	if err != nil {
		return nil, invalidArgument(err)
	}
	s.logger.Debug().Int("tv_show_id", id).Float64("rating", rating).Msg("RateTvShow called")
	return respond(s.service.RateTvShow(ctx, id, rating))
}

func (s *server) CreateGuestSession(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	return respond(s.service.CreateGuestSession(ctx))
}

// Login answers {"logged_in": true, "guest_session_id": "...", "generation": "..."}.
func (s *server) Login(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	stored, err := s.service.Login(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	return sessionStruct(stored, true)
}

func (s *server) Logout(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	if err := s.service.Logout(ctx); err != nil {
		return nil, toStatus(err)
	}
	return sessionStruct(session.Session{}, false)
}

// GetCurrentSession answers {"logged_in": false} when no session is stored.
func (s *server) GetCurrentSession(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	current, ok, err := s.service.CurrentSession(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	return sessionStruct(current, ok)
}

func respond[T any](v T, err error) (*structpb.Struct, error) {
	if err != nil {
		return nil, toStatus(err)
	}
	out, err := toStruct(v)
	if err != nil {
		return nil, toStatus(err)
	}
	return out, nil
}

func sessionStruct(current session.Session, loggedIn bool) (*structpb.Struct, error) {
	fields := map[string]any{"logged_in": loggedIn}
	if loggedIn {
		fields["guest_session_id"] = current.ID
		fields["generation"] = current.Generation
	}
	out, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, toStatus(err)
	}
	return out, nil
}

func pageArg(req *structpb.Struct) (int, error) {
	page, present, err := intField(req, "page")
	if err != nil {
		return 0, err
	}
	if !present {
		return 1, nil
	}
	return page, nil
}

func idArg(req *structpb.Struct) (int, error) {
	id, present, err := intField(req, "id")
	if err != nil {
		return 0, err
	}
	if !present {
		return 0, errors.New(`field "id" is required`)
	}
	return id, nil
}

func rateArgs(req *structpb.Struct) (int, float64, error) {
	id, err := idArg(req)
	if err != nil {
		return 0, 0, err
	}
	rating, present, err := numberField(req, "rating")
	if err != nil {
		return 0, 0, err
	}
	if !present {
		rating = defaultRating
	}
	return id, rating, nil
}
