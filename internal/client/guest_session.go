package client

import (
	"context"
	"errors"
	"net/http"

	"github.com/Belphemur/ReelRate/internal/config"
	"github.com/Belphemur/ReelRate/internal/models"
	"github.com/Belphemur/ReelRate/internal/session"
)

// CreateGuestSession asks the service for a new anonymous guest session.
// Transport failures are returned like for every other call.
func (c *client) CreateGuestSession(ctx context.Context) (*models.GuestSession, error) {
	var result models.GuestSession
	err := c.do(ctx, apiRequest{
		operation: "create_guest_session",
		method:    http.MethodGet,
		path:      "/authentication/guest_session/new",
	}, &result, func() error {
		if result.GuestSessionID == "" {
			return errors.New("response carries no guest_session_id")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger := config.GetLogger()
	logger.Info().
		Str("session", session.Mask(result.GuestSessionID)).
		Str("expires_at", result.ExpiresAt).
		Msg("Guest session created")
	return &result, nil
}
