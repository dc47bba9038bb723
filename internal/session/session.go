// Package session persists the single guest session token that gates rating operations.
//
// The token is opaque: it is stored and returned exactly as given, never parsed
// or validated. Every Set stamps a new random generation so callers can detect
// that the session was replaced or cleared while a request was in flight.
package session

import (
	"context"

	"github.com/google/uuid"
)

// Session is the stored guest session.
type Session struct {
	ID         string `json:"guest_session_id"`
	Generation string `json:"generation"`
}

// Store holds at most one guest session.
type Store interface {
	// Get returns the stored session and true, or false when no session is stored.
	Get(ctx context.Context) (Session, bool, error)

	// Set stores id, unconditionally replacing any previous session.
	Set(ctx context.Context, id string) (Session, error)

	// Clear removes the stored session. Clearing an empty store is not an error.
	Clear(ctx context.Context) error

	// Close releases resources held by the backend.
	Close() error
}

func newSession(id string) Session {
	return Session{ID: id, Generation: uuid.NewString()}
}

// Mask shortens a session id for log output.
func Mask(id string) string {
	if len(id) <= 6 {
		return "***"
	}
	return id[:6] + "***"
}
