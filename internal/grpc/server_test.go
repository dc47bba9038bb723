package grpc

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/Belphemur/ReelRate/internal/apperrors"
	"github.com/Belphemur/ReelRate/internal/models"
	"github.com/Belphemur/ReelRate/internal/session"
)

// mockService implements services.ReviewService for testing
type mockService struct {
	topRatedMoviesFunc  func(ctx context.Context, page int) (*models.Page[models.Movie], error)
	topRatedTvShowsFunc func(ctx context.Context, page int) (*models.Page[models.TvShow], error)
	movieDetailsFunc    func(ctx context.Context, id int) (*models.MovieDetails, error)
	tvShowDetailsFunc   func(ctx context.Context, id int) (*models.TvShowDetails, error)
	ratedMoviesFunc     func(ctx context.Context) (*models.Page[models.RatedMovie], error)
	ratedTvShowsFunc    func(ctx context.Context) (*models.Page[models.RatedTvShow], error)
	rateMovieFunc       func(ctx context.Context, id int, rating float64) (*models.StatusResponse, error)
	rateTvShowFunc      func(ctx context.Context, id int, rating float64) (*models.StatusResponse, error)
	loginFunc           func(ctx context.Context) (session.Session, error)

	current    session.Session
	hasCurrent bool
}

func (m *mockService) TopRatedMovies(ctx context.Context, page int) (*models.Page[models.Movie], error) {
	if m.topRatedMoviesFunc != nil {
		return m.topRatedMoviesFunc(ctx, page)
	}
	return &models.Page[models.Movie]{Page: page}, nil
}

func (m *mockService) TopRatedTvShows(ctx context.Context, page int) (*models.Page[models.TvShow], error) {
	if m.topRatedTvShowsFunc != nil {
		return m.topRatedTvShowsFunc(ctx, page)
	}
	return &models.Page[models.TvShow]{Page: page}, nil
}

func (m *mockService) MovieDetails(ctx context.Context, id int) (*models.MovieDetails, error) {
	if m.movieDetailsFunc != nil {
		return m.movieDetailsFunc(ctx, id)
	}
	return &models.MovieDetails{Movie: models.Movie{ID: id}}, nil
}

func (m *mockService) TvShowDetails(ctx context.Context, id int) (*models.TvShowDetails, error) {
	if m.tvShowDetailsFunc != nil {
		return m.tvShowDetailsFunc(ctx, id)
	}
	return &models.TvShowDetails{TvShow: models.TvShow{ID: id}}, nil
}

func (m *mockService) RatedMovies(ctx context.Context) (*models.Page[models.RatedMovie], error) {
	if m.ratedMoviesFunc != nil {
		return m.ratedMoviesFunc(ctx)
	}
	return &models.Page[models.RatedMovie]{Page: 1}, nil
}

func (m *mockService) RatedTvShows(ctx context.Context) (*models.Page[models.RatedTvShow], error) {
	if m.ratedTvShowsFunc != nil {
		return m.ratedTvShowsFunc(ctx)
	}
	return &models.Page[models.RatedTvShow]{Page: 1}, nil
}

func (m *mockService) RateMovie(ctx context.Context, id int, rating float64) (*models.StatusResponse, error) {
	if m.rateMovieFunc != nil {
		return m.rateMovieFunc(ctx, id, rating)
	}
	return &models.StatusResponse{Success: true, StatusCode: 1}, nil
}

func (m *mockService) RateTvShow(ctx context.Context, id int, rating float64) (*models.StatusResponse, error) {
	if m.rateTvShowFunc != nil {
		return m.rateTvShowFunc(ctx, id, rating)
	}
	return &models.StatusResponse{Success: true, StatusCode: 1}, nil
}

func (m *mockService) CreateGuestSession(context.Context) (*models.GuestSession, error) {
	return &models.GuestSession{Success: true, GuestSessionID: "guest-1"}, nil
}

func (m *mockService) Login(ctx context.Context) (session.Session, error) {
	if m.loginFunc != nil {
		return m.loginFunc(ctx)
	}
	m.current = session.Session{ID: "guest-1", Generation: "gen-1"}
	m.hasCurrent = true
	return m.current, nil
}

func (m *mockService) Logout(context.Context) error {
	m.current = session.Session{}
	m.hasCurrent = false
	return nil
}

func (m *mockService) CurrentSession(context.Context) (session.Session, bool, error) {
	return m.current, m.hasCurrent, nil
}

func mustStruct(t *testing.T, fields map[string]any) *structpb.Struct {
	t.Helper()
	st, err := structpb.NewStruct(fields)
	if err != nil {
		t.Fatalf("NewStruct: %v", err)
	}
	return st
}

func TestGetTopRatedMovies_DefaultsToFirstPage(t *testing.T) {
	t.Parallel()
	var gotPage int
	mock := &mockService{
		topRatedMoviesFunc: func(ctx context.Context, page int) (*models.Page[models.Movie], error) {
			gotPage = page
			return &models.Page[models.Movie]{
				Page: page, TotalResults: 1, TotalPages: 1,
				Results: []models.Movie{{ID: 278, Title: "The Shawshank Redemption", PosterPath: "/q6y.jpg"}},
			}, nil
		},
	}

	resp, err := NewServer(mock).GetTopRatedMovies(context.Background(), &structpb.Struct{})
	if err != nil {
		t.Fatalf("GetTopRatedMovies returned error: %v", err)
	}
	if gotPage != 1 {
		t.Errorf("Expected page 1, got %d", gotPage)
	}

	results := resp.Fields["results"].GetListValue().GetValues()
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
	movie := results[0].GetStructValue().GetFields()
	if movie["title"].GetStringValue() != "The Shawshank Redemption" {
		t.Errorf("Unexpected title %q", movie["title"].GetStringValue())
	}
	if movie["poster_url"].GetStringValue() == "" {
		t.Error("Expected poster_url to be set")
	}
}

func TestGetTopRatedTvShows_ForwardsPage(t *testing.T) {
	t.Parallel()
	mock := &mockService{}

	resp, err := NewServer(mock).GetTopRatedTvShows(context.Background(), mustStruct(t, map[string]any{"page": 3}))
	if err != nil {
		t.Fatalf("GetTopRatedTvShows returned error: %v", err)
	}
	if resp.Fields["page"].GetNumberValue() != 3 {
		t.Errorf("Expected page 3, got %v", resp.Fields["page"].GetNumberValue())
	}
}

func TestGetMovieDetails_RequiresID(t *testing.T) {
	t.Parallel()
	_, err := NewServer(&mockService{}).GetMovieDetails(context.Background(), &structpb.Struct{})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("Expected InvalidArgument, got %v", err)
	}
}

func TestGetTvShowDetails_RejectsFractionalID(t *testing.T) {
	t.Parallel()
	_, err := NewServer(&mockService{}).GetTvShowDetails(context.Background(), mustStruct(t, map[string]any{"id": 1.5}))
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("Expected InvalidArgument, got %v", err)
	}
}

func TestGetMovieDetails_NotFound(t *testing.T) {
	t.Parallel()
	mock := &mockService{
		movieDetailsFunc: func(ctx context.Context, id int) (*models.MovieDetails, error) {
			return nil, &apperrors.RemoteRequestError{StatusCode: 404, Message: "not found"}
		},
	}

	_, err := NewServer(mock).GetMovieDetails(context.Background(), mustStruct(t, map[string]any{"id": 42}))
	if status.Code(err) != codes.NotFound {
		t.Fatalf("Expected NotFound, got %v", err)
	}
}

func TestRateMovie_DefaultRatingAndForwarding(t *testing.T) {
	t.Parallel()
	var gotID int
	var gotRating float64
	mock := &mockService{
		rateMovieFunc: func(ctx context.Context, id int, rating float64) (*models.StatusResponse, error) {
			gotID, gotRating = id, rating
			return &models.StatusResponse{Success: true, StatusCode: 1, StatusMessage: "Success."}, nil
		},
	}
	srv := NewServer(mock)

	resp, err := srv.RateMovie(context.Background(), mustStruct(t, map[string]any{"id": 550}))
	if err != nil {
		t.Fatalf("RateMovie returned error: %v", err)
	}
	if gotID != 550 || gotRating != defaultRating {
		t.Errorf("Expected (550, %d), got (%d, %v)", defaultRating, gotID, gotRating)
	}
	if !resp.Fields["success"].GetBoolValue() {
		t.Error("Expected success=true")
	}

	if _, err := srv.RateMovie(context.Background(), mustStruct(t, map[string]any{"id": 550, "rating": 11})); err != nil {
		t.Fatalf("RateMovie returned error: %v", err)
	}
	if gotRating != 11 {
		t.Errorf("Expected out-of-range rating to be forwarded, got %v", gotRating)
	}
}

func TestRateTvShow_MissingSession(t *testing.T) {
	t.Parallel()
	mock := &mockService{
		rateTvShowFunc: func(ctx context.Context, id int, rating float64) (*models.StatusResponse, error) {
			return nil, apperrors.NewMissingSessionError("rate tv show")
		},
	}

	_, err := NewServer(mock).RateTvShow(context.Background(), mustStruct(t, map[string]any{"id": 1396, "rating": 8}))
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("Expected FailedPrecondition, got %v", err)
	}
}

func TestRateMovie_RejectsNonNumericRating(t *testing.T) {
	t.Parallel()
	_, err := NewServer(&mockService{}).RateMovie(context.Background(), mustStruct(t, map[string]any{"id": 550, "rating": "eight"}))
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("Expected InvalidArgument, got %v", err)
	}
}

func TestGetRatedMovies_Stale(t *testing.T) {
	t.Parallel()
	mock := &mockService{
		ratedMoviesFunc: func(ctx context.Context) (*models.Page[models.RatedMovie], error) {
			return nil, apperrors.NewStaleSessionError("rated movies")
		},
	}

	_, err := NewServer(mock).GetRatedMovies(context.Background(), &structpb.Struct{})
	if status.Code(err) != codes.Aborted {
		t.Fatalf("Expected Aborted, got %v", err)
	}
}

func TestGetRatedTvShows_Success(t *testing.T) {
	t.Parallel()
	mock := &mockService{
		ratedTvShowsFunc: func(ctx context.Context) (*models.Page[models.RatedTvShow], error) {
			return &models.Page[models.RatedTvShow]{
				Page: 1, TotalResults: 1, TotalPages: 1,
				Results: []models.RatedTvShow{{TvShow: models.TvShow{ID: 1396, Name: "Breaking Bad"}, Rating: 9}},
			}, nil
		},
	}

	resp, err := NewServer(mock).GetRatedTvShows(context.Background(), &structpb.Struct{})
	if err != nil {
		t.Fatalf("GetRatedTvShows returned error: %v", err)
	}
	show := resp.Fields["results"].GetListValue().GetValues()[0].GetStructValue().GetFields()
	if show["rating"].GetNumberValue() != 9 {
		t.Errorf("Expected rating 9, got %v", show["rating"].GetNumberValue())
	}
}

func TestSessionLifecycle(t *testing.T) {
	t.Parallel()
	srv := NewServer(&mockService{})
	ctx := context.Background()

	resp, err := srv.GetCurrentSession(ctx, &structpb.Struct{})
	if err != nil {
		t.Fatalf("GetCurrentSession returned error: %v", err)
	}
	if resp.Fields["logged_in"].GetBoolValue() {
		t.Error("Expected logged_in=false before login")
	}

	resp, err = srv.Login(ctx, &structpb.Struct{})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if resp.Fields["guest_session_id"].GetStringValue() != "guest-1" {
		t.Errorf("Unexpected session %v", resp.Fields["guest_session_id"])
	}

	if _, err := srv.Logout(ctx, &structpb.Struct{}); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	resp, _ = srv.GetCurrentSession(ctx, &structpb.Struct{})
	if resp.Fields["logged_in"].GetBoolValue() {
		t.Error("Expected logged_in=false after logout")
	}
}

func TestLogin_TransportFailure(t *testing.T) {
	t.Parallel()
	mock := &mockService{
		loginFunc: func(ctx context.Context) (session.Session, error) {
			return session.Session{}, errors.New("dial tcp: connection refused")
		},
	}

	_, err := NewServer(mock).Login(context.Background(), &structpb.Struct{})
	if status.Code(err) != codes.Unavailable {
		t.Fatalf("Expected Unavailable, got %v", err)
	}
}

func TestCreateGuestSession(t *testing.T) {
	t.Parallel()
	resp, err := NewServer(&mockService{}).CreateGuestSession(context.Background(), &structpb.Struct{})
	if err != nil {
		t.Fatalf("CreateGuestSession returned error: %v", err)
	}
	if resp.Fields["guest_session_id"].GetStringValue() != "guest-1" {
		t.Errorf("Unexpected guest session %v", resp.Fields["guest_session_id"])
	}
}
