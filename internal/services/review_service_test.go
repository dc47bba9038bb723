package services

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Belphemur/ReelRate/internal/apperrors"
	"github.com/Belphemur/ReelRate/internal/client"
	"github.com/Belphemur/ReelRate/internal/config"
	"github.com/Belphemur/ReelRate/internal/metrics"
	"github.com/Belphemur/ReelRate/internal/models"
	"github.com/Belphemur/ReelRate/internal/session"
	"github.com/Belphemur/ReelRate/internal/testutil"
)

func getCounterVecValue(cv *prometheus.CounterVec, labels ...string) float64 {
	c, err := cv.GetMetricWithLabelValues(labels...)
	if err != nil {
		return 0
	}
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		return 0
	}
	return m.GetCounter().GetValue()
}

func newTestService(t *testing.T, stub *testutil.TMDBStub) (ReviewService, session.Store) {
	t.Helper()

	cfg := &config.Config{ClientTimeout: "5s"}
	cfg.TMDB.AccessToken = "test-token"
	cfg.TMDB.BaseURL = stub.URL()
	cfg.TMDB.Language = "en-US"

	c := client.NewClient(cfg)
	t.Cleanup(func() { _ = c.Close() })

	store, err := session.New("memory", session.ProviderConfig{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return NewReviewService(c, store), store
}

func TestReviewService_RateMovieWithoutSession(t *testing.T) {
	stub := testutil.NewTMDBStub(t)
	svc, _ := newTestService(t, stub)

	before := getCounterVecValue(metrics.RatingsSubmittedTotal, "movie", metrics.OutcomeMissingSession)

	status, err := svc.RateMovie(context.Background(), 550, 8)

	require.ErrorIs(t, err, &apperrors.MissingSessionError{})
	assert.Nil(t, status)
	assert.Equal(t, 0, stub.RequestCount(), "no request may leave without a session")
	assert.Equal(t, before+1, getCounterVecValue(metrics.RatingsSubmittedTotal, "movie", metrics.OutcomeMissingSession))
}

func TestReviewService_GatedReadsWithoutSession(t *testing.T) {
	stub := testutil.NewTMDBStub(t)
	svc, _ := newTestService(t, stub)
	ctx := context.Background()

	_, err := svc.RatedMovies(ctx)
	assert.ErrorIs(t, err, &apperrors.MissingSessionError{})
	_, err = svc.RatedTvShows(ctx)
	assert.ErrorIs(t, err, &apperrors.MissingSessionError{})
	_, err = svc.RateTvShow(ctx, 1396, 8)
	assert.ErrorIs(t, err, &apperrors.MissingSessionError{})

	assert.Equal(t, 0, stub.RequestCount())
}

func TestReviewService_RatedMoviesReturnedUnchanged(t *testing.T) {
	stub := testutil.NewTMDBStub(t)
	stub.Handle(http.MethodGet, "/guest_session/guest-42/rated/movies", http.StatusOK, testutil.RatedMoviesGuest42)
	svc, store := newTestService(t, stub)

	_, err := store.Set(context.Background(), "guest-42")
	require.NoError(t, err)

	page, err := svc.RatedMovies(context.Background())
	require.NoError(t, err)

	expected := &models.Page[models.RatedMovie]{
		Page:         1,
		TotalResults: 2,
		TotalPages:   1,
		Results: []models.RatedMovie{
			{Movie: models.Movie{ID: 1}, Rating: 7},
			{Movie: models.Movie{ID: 2}, Rating: 9},
		},
	}
	assert.Equal(t, expected, page)
}

func TestReviewService_RateMovieUsesStoredSession(t *testing.T) {
	stub := testutil.NewTMDBStub(t)
	stub.Handle(http.MethodPost, "/movie/550/rating", http.StatusCreated, testutil.RatingCreated)
	svc, store := newTestService(t, stub)

	_, err := store.Set(context.Background(), "guest-42")
	require.NoError(t, err)

	before := getCounterVecValue(metrics.RatingsSubmittedTotal, "movie", metrics.OutcomeSuccess)

	status, err := svc.RateMovie(context.Background(), 550, 8)
	require.NoError(t, err)
	assert.True(t, status.Success)

	req, ok := stub.LastRequest()
	require.True(t, ok)
	assert.Equal(t, "guest-42", req.Query["guest_session_id"])
	assert.JSONEq(t, `{"value":8}`, string(req.Body))
	assert.Equal(t, before+1, getCounterVecValue(metrics.RatingsSubmittedTotal, "movie", metrics.OutcomeSuccess))
}

func TestReviewService_RemoteErrorPassesThrough(t *testing.T) {
	stub := testutil.NewTMDBStub(t)
	stub.Handle(http.MethodGet, "/movie/42", http.StatusNotFound, testutil.NotFoundBody)
	svc, _ := newTestService(t, stub)

	_, err := svc.MovieDetails(context.Background(), 42)

	var remote *apperrors.RemoteRequestError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, http.StatusNotFound, remote.StatusCode)
	assert.Equal(t, "not found", remote.Message)
}

func TestReviewService_LogoutDuringRatingIsStale(t *testing.T) {
	stub := testutil.NewTMDBStub(t)
	svc, store := newTestService(t, stub)
	stub.HandleFunc(http.MethodPost, "/movie/550/rating", func(w http.ResponseWriter, r *http.Request) {
		// logout lands while the submission is in flight
		_ = svc.Logout(context.Background())
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(testutil.RatingCreated))
	})

	_, err := store.Set(context.Background(), "guest-42")
	require.NoError(t, err)

	before := getCounterVecValue(metrics.RatingsSubmittedTotal, "movie", metrics.OutcomeStaleSession)

	status, err := svc.RateMovie(context.Background(), 550, 8)

	var stale *apperrors.StaleSessionError
	require.ErrorAs(t, err, &stale)
	assert.True(t, stale.Submitted, "the rating was accepted before the session changed")
	assert.Contains(t, err.Error(), "may already be recorded")
	assert.Nil(t, status)
	assert.Equal(t, before+1, getCounterVecValue(metrics.RatingsSubmittedTotal, "movie", metrics.OutcomeStaleSession))
}

func TestReviewService_ReloginDuringListingIsStale(t *testing.T) {
	stub := testutil.NewTMDBStub(t)
	svc, store := newTestService(t, stub)
	stub.HandleFunc(http.MethodGet, "/guest_session/guest-42/rated/tv", func(w http.ResponseWriter, r *http.Request) {
		_, _ = store.Set(context.Background(), "guest-43")
		_, _ = w.Write([]byte(testutil.RatedTvShowsEmpty))
	})

	_, err := store.Set(context.Background(), "guest-42")
	require.NoError(t, err)

	_, err = svc.RatedTvShows(context.Background())
	var stale *apperrors.StaleSessionError
	require.ErrorAs(t, err, &stale)
	assert.False(t, stale.Submitted, "a listing writes nothing")
}

func TestReviewService_SameIDReloginIsStillStale(t *testing.T) {
	stub := testutil.NewTMDBStub(t)
	svc, store := newTestService(t, stub)
	stub.HandleFunc(http.MethodGet, "/guest_session/guest-42/rated/movies", func(w http.ResponseWriter, r *http.Request) {
		_, _ = store.Set(context.Background(), "guest-42")
		_, _ = w.Write([]byte(testutil.RatedMoviesGuest42))
	})

	_, err := store.Set(context.Background(), "guest-42")
	require.NoError(t, err)

	_, err = svc.RatedMovies(context.Background())
	assert.ErrorIs(t, err, &apperrors.StaleSessionError{}, "a re-stored token gets a new generation")
}

func TestReviewService_LoginStoresSession(t *testing.T) {
	stub := testutil.NewTMDBStub(t)
	stub.Handle(http.MethodGet, "/authentication/guest_session/new", http.StatusOK, testutil.GuestSessionCreated)
	svc, _ := newTestService(t, stub)
	ctx := context.Background()

	before := getCounterVecValue(metrics.GuestSessionsCreatedTotal, metrics.OutcomeSuccess)

	stored, err := svc.Login(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1ce82ec1223641636ad4a60b07de3581", stored.ID)
	assert.NotEmpty(t, stored.Generation)

	current, ok, err := svc.CurrentSession(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, stored, current)
	assert.Equal(t, before+1, getCounterVecValue(metrics.GuestSessionsCreatedTotal, metrics.OutcomeSuccess))

	require.NoError(t, svc.Logout(ctx))
	_, ok, err = svc.CurrentSession(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReviewService_CreateGuestSessionDoesNotStore(t *testing.T) {
	stub := testutil.NewTMDBStub(t)
	stub.Handle(http.MethodGet, "/authentication/guest_session/new", http.StatusOK, testutil.GuestSessionCreated)
	svc, store := newTestService(t, stub)

	gs, err := svc.CreateGuestSession(context.Background())
	require.NoError(t, err)
	assert.True(t, gs.Success)

	_, ok, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReviewService_LoginTransportFailureKeepsStoreEmpty(t *testing.T) {
	stub := testutil.NewTMDBStub(t)
	svc, store := newTestService(t, stub)
	stub.Server.Close()

	before := getCounterVecValue(metrics.GuestSessionsCreatedTotal, metrics.OutcomeTransportError)

	_, err := svc.Login(context.Background())
	require.Error(t, err)
	assert.True(t, client.IsTransportError(err))

	_, ok, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, before+1, getCounterVecValue(metrics.GuestSessionsCreatedTotal, metrics.OutcomeTransportError))
}

func TestReviewService_LogoutOnEmptyStore(t *testing.T) {
	stub := testutil.NewTMDBStub(t)
	svc, _ := newTestService(t, stub)

	assert.NoError(t, svc.Logout(context.Background()))
}

func TestOutcome(t *testing.T) {
	tests := map[string]struct {
		err      error
		expected string
	}{
		"nil":       {nil, metrics.OutcomeSuccess},
		"missing":   {apperrors.NewMissingSessionError("x"), metrics.OutcomeMissingSession},
		"stale":     {apperrors.NewStaleSessionError("x"), metrics.OutcomeStaleSession},
		"remote":    {&apperrors.RemoteRequestError{StatusCode: 500, Err: apperrors.NewDecodeError("e", nil)}, metrics.OutcomeRemoteError},
		"decode":    {apperrors.NewDecodeError("x", nil), metrics.OutcomeDecodeError},
		"transport": {context.DeadlineExceeded, metrics.OutcomeTransportError},
		"submitted": {apperrors.NewStaleSubmissionError("x"), metrics.OutcomeStaleSession},
		"wrapped":   {fmt.Errorf("login: %w", apperrors.NewDecodeError("x", nil)), metrics.OutcomeDecodeError},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, outcome(tt.err))
		})
	}
}
