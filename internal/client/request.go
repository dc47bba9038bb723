package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Belphemur/ReelRate/internal/apperrors"
	"github.com/Belphemur/ReelRate/internal/cache"
	"github.com/Belphemur/ReelRate/internal/config"
	"github.com/Belphemur/ReelRate/internal/metrics"
	"github.com/Belphemur/ReelRate/internal/models"
)

// apiRequest describes one call to the remote API.
type apiRequest struct {
	operation string // metrics label and error context
	method    string
	path      string // relative to the base URL, e.g. "/movie/550"
	query     url.Values
	body      any
	cacheable bool
}

func (r apiRequest) key() string {
	return cache.QueryKey(r.path, r.query)
}

// do executes req and decodes a success body into out. validate, when non-nil, runs after
// decoding; a failure turns into a DecodeError and the body is not cached.
func (c *client) do(ctx context.Context, req apiRequest, out any, validate func() error) error {
	logger := config.GetLogger()

	if req.cacheable {
		hit := c.queryCache.Lookup(req.key(), func(body []byte) error {
			return decodeBody(req.operation, body, out, validate)
		})
		if hit {
			metrics.TMDBRequestsTotal.WithLabelValues(req.operation, metrics.OutcomeCached).Inc()
			logger.Debug().Str("operation", req.operation).Str("key", req.key()).Msg("Served from query cache")
			return nil
		}
	}

	httpReq, err := c.newHTTPRequest(ctx, req)
	if err != nil {
		return fmt.Errorf("%s: failed to create request: %w", req.operation, err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	metrics.TMDBRequestDuration.WithLabelValues(req.operation).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.TMDBRequestsTotal.WithLabelValues(req.operation, metrics.OutcomeTransportError).Inc()
		return fmt.Errorf("%s: request failed: %w", req.operation, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.TMDBRequestsTotal.WithLabelValues(req.operation, metrics.OutcomeTransportError).Inc()
		return fmt.Errorf("%s: failed to read response body: %w", req.operation, err)
	}

	logger.Debug().
		Str("operation", req.operation).
		Str("method", req.method).
		Str("path", req.path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("TMDB request completed")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.TMDBRequestsTotal.WithLabelValues(req.operation, metrics.OutcomeRemoteError).Inc()
		return remoteError(resp.StatusCode, body)
	}

	if err := decodeBody(req.operation, body, out, validate); err != nil {
		metrics.TMDBRequestsTotal.WithLabelValues(req.operation, metrics.OutcomeDecodeError).Inc()
		return err
	}
	metrics.TMDBRequestsTotal.WithLabelValues(req.operation, metrics.OutcomeSuccess).Inc()

	if req.cacheable {
		c.queryCache.Store(req.key(), body)
	}
	return nil
}

func (c *client) newHTTPRequest(ctx context.Context, req apiRequest) (*http.Request, error) {
	endpoint := c.baseURL + req.key()

	var body io.Reader = http.NoBody
	if req.body != nil {
		payload, err := json.Marshal(req.body)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(payload)
	}

	return http.NewRequestWithContext(ctx, req.method, endpoint, body)
}

func decodeBody(operation string, body []byte, out any, validate func() error) error {
	if err := json.Unmarshal(body, out); err != nil {
		return apperrors.NewDecodeError(operation, err)
	}
	if validate != nil {
		if err := validate(); err != nil {
			return apperrors.NewDecodeError(operation, err)
		}
	}
	return nil
}

// remoteError builds the error for a non-success status from the service's error body.
func remoteError(status int, body []byte) error {
	var payload models.StatusResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return &apperrors.RemoteRequestError{
			StatusCode: status,
			Err:        apperrors.NewDecodeError("error response", err),
		}
	}
	return &apperrors.RemoteRequestError{
		StatusCode:  status,
		ServiceCode: payload.StatusCode,
		Message:     payload.StatusMessage,
	}
}

// requireSession is the guard shared by session-gated calls.
func requireSession(operation, sessionID string) error {
	if sessionID == "" {
		metrics.TMDBRequestsTotal.WithLabelValues(operation, metrics.OutcomeMissingSession).Inc()
		return apperrors.NewMissingSessionError(operation)
	}
	return nil
}

// IsTransportError reports whether err is a network-level failure rather than a typed API error.
func IsTransportError(err error) bool {
	if err == nil {
		return false
	}
	var remote *apperrors.RemoteRequestError
	var decode *apperrors.DecodeError
	var missing *apperrors.MissingSessionError
	var stale *apperrors.StaleSessionError
	return !errors.As(err, &remote) && !errors.As(err, &decode) &&
		!errors.As(err, &missing) && !errors.As(err, &stale)
}
