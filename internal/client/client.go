package client

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/failsafe-go/failsafe-go/failsafehttp"
	"github.com/failsafe-go/failsafe-go/timeout"

	"github.com/Belphemur/ReelRate/internal/cache"
	"github.com/Belphemur/ReelRate/internal/config"
	"github.com/Belphemur/ReelRate/internal/models"
)

// Client issues one request to the TMDB API per call.
//
// Session-gated methods (RatedMovies, RatedTvShows, RateMovie, RateTvShow) fail with
// apperrors.MissingSessionError before any network I/O when sessionID is empty.
// Non-success HTTP statuses surface as apperrors.RemoteRequestError, bodies that do not
// match the expected schema as apperrors.DecodeError.
type Client interface {
	TopRatedMovies(ctx context.Context, page int) (*models.Page[models.Movie], error)
	TopRatedTvShows(ctx context.Context, page int) (*models.Page[models.TvShow], error)
	MovieDetails(ctx context.Context, movieID int) (*models.MovieDetails, error)
	TvShowDetails(ctx context.Context, tvShowID int) (*models.TvShowDetails, error)

	RatedMovies(ctx context.Context, sessionID string) (*models.Page[models.RatedMovie], error)
	RatedTvShows(ctx context.Context, sessionID string) (*models.Page[models.RatedTvShow], error)
	RateMovie(ctx context.Context, sessionID string, movieID int, rating float64) (*models.StatusResponse, error)
	RateTvShow(ctx context.Context, sessionID string, tvShowID int, rating float64) (*models.StatusResponse, error)

	CreateGuestSession(ctx context.Context) (*models.GuestSession, error)

	// Close releases any resources held by the client (e.g., cache connections).
	Close() error
}

// TokenSource returns the bearer credential. It is called for every request.
type TokenSource func() string

type client struct {
	httpClient *http.Client
	baseURL    string
	language   string
	queryCache *cache.QueryCache
}

// NewClient creates a new client from the application configuration.
// Invalid proxy or timeout settings are logged and replaced by defaults, as is
// a query cache that cannot be created.
func NewClient(cfg *config.Config) Client {
	logger := config.GetLogger()

	queryCache, err := cache.NewFromConfig(cfg)
	if err != nil {
		logger.Warn().Err(err).Str("provider", cfg.Cache.Provider).Msg("Query cache unavailable, continuing without cache")
	}

	return newClient(cfg, func() string { return cfg.TMDB.AccessToken }, queryCache)
}

func newClient(cfg *config.Config, tokens TokenSource, queryCache *cache.QueryCache) *client {
	logger := config.GetLogger()

	requestTimeout := 30 * time.Second
	if cfg.ClientTimeout != "" {
		if parsed, err := time.ParseDuration(cfg.ClientTimeout); err != nil {
			logger.Warn().Err(err).Str("timeout", cfg.ClientTimeout).Msg("Invalid timeout duration, using default 30s")
		} else {
			requestTimeout = parsed
		}
	}

	// Clone DefaultTransport to keep its pooling, HTTP/2 and dial timeouts
	baseTransport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.ProxyConnectionString != "" {
		proxyURL, err := url.Parse(cfg.ProxyConnectionString)
		if err != nil {
			logger.Warn().Err(err).Msg("Invalid proxy URL, continuing without proxy")
		} else {
			baseTransport.Proxy = http.ProxyURL(proxyURL)
		}
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = config.GetUserAgent()
	}

	var transport http.RoundTripper = newAuthTransport(newCompressionTransport(baseTransport), tokens, userAgent)
	transport = failsafehttp.NewRoundTripper(transport, timeout.New[*http.Response](requestTimeout))

	baseURL := cfg.TMDB.BaseURL
	if baseURL == "" {
		baseURL = config.DefaultBaseURL
	}
	language := cfg.TMDB.Language
	if language == "" {
		language = config.DefaultLanguage
	}

	return &client{
		// The policy bounds the wait for headers, Timeout also covers reading the body.
		httpClient: &http.Client{Transport: transport, Timeout: requestTimeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		language:   language,
		queryCache: queryCache,
	}
}

// Close releases any resources held by the client, such as cache connections.
func (c *client) Close() error {
	return c.queryCache.Close()
}
