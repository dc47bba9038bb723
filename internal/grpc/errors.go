package grpc

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Belphemur/ReelRate/internal/apperrors"
)

// errorDomain is the ErrorInfo domain attached to every mapped status.
const errorDomain = "reelrate"

// ErrorInfo reasons.
const (
	ReasonMissingSession = "MISSING_SESSION"
	ReasonStaleSession   = "STALE_SESSION"
	ReasonRemoteRequest  = "REMOTE_REQUEST_FAILED"
	ReasonDecode         = "DECODE_FAILED"
	ReasonTransport      = "TRANSPORT_FAILED"
	ReasonInvalidRequest = "INVALID_REQUEST"
)

// toStatus maps a facade error to a gRPC status carrying an ErrorInfo detail.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	code, reason, metadata := classify(err)
	st := status.New(code, err.Error())
	withDetails, detailErr := st.WithDetails(&errdetails.ErrorInfo{
		Reason:   reason,
		Domain:   errorDomain,
		Metadata: metadata,
	})
	if detailErr != nil {
		return st.Err()
	}
	return withDetails.Err()
}

func classify(err error) (codes.Code, string, map[string]string) {
	var (
		missing *apperrors.MissingSessionError
		stale   *apperrors.StaleSessionError
		remote  *apperrors.RemoteRequestError
		decode  *apperrors.DecodeError
	)

	switch {
	case errors.Is(err, context.Canceled):
		return codes.Canceled, ReasonTransport, nil
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded, ReasonTransport, nil
	case errors.As(err, &missing):
		return codes.FailedPrecondition, ReasonMissingSession, map[string]string{"operation": missing.Operation}
	case errors.As(err, &stale):
		return codes.Aborted, ReasonStaleSession, map[string]string{
			"operation": stale.Operation,
			"submitted": strconv.FormatBool(stale.Submitted),
		}
	case errors.As(err, &remote):
		md := map[string]string{"http_status": strconv.Itoa(remote.StatusCode)}
		if remote.ServiceCode != 0 {
			md["service_code"] = strconv.Itoa(remote.ServiceCode)
		}
		return remoteCode(remote.StatusCode), ReasonRemoteRequest, md
	case errors.As(err, &decode):
		return codes.DataLoss, ReasonDecode, map[string]string{"resource": decode.Resource}
	default:
		return codes.Unavailable, ReasonTransport, nil
	}
}

func remoteCode(httpStatus int) codes.Code {
	switch httpStatus {
	case http.StatusUnauthorized:
		return codes.Unauthenticated
	case http.StatusNotFound:
		return codes.NotFound
	case http.StatusTooManyRequests:
		return codes.ResourceExhausted
	default:
		return codes.Unavailable
	}
}

func invalidArgument(err error) error {
	st := status.New(codes.InvalidArgument, err.Error())
	withDetails, detailErr := st.WithDetails(&errdetails.ErrorInfo{Reason: ReasonInvalidRequest, Domain: errorDomain})
	if detailErr != nil {
		return st.Err()
	}
	return withDetails.Err()
}
