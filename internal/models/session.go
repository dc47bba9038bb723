package models

// GuestSession is the response of the guest session creation endpoint
type GuestSession struct {
	Success        bool   `json:"success"`
	GuestSessionID string `json:"guest_session_id"`
	ExpiresAt      string `json:"expires_at"`
}

// RatingRequest is the body sent when submitting a rating
type RatingRequest struct {
	Value float64 `json:"value"`
}

// StatusResponse is the acknowledgement (or error body) returned by the remote service
type StatusResponse struct {
	Success       bool   `json:"success"`
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
}
