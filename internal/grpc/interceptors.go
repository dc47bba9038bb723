package grpc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// RequestIDHeader carries the per-call id back to the caller.
const RequestIDHeader = "x-request-id"

// requestLogger tags each call with a request id (taken from incoming metadata
// when present) and logs its outcome.
func requestLogger(logger zerolog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		requestID := ""
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if ids := md.Get(RequestIDHeader); len(ids) > 0 {
				requestID = ids[0]
			}
		}
		if requestID == "" {
			requestID = uuid.NewString()
		}
		_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDHeader, requestID))

		reqLogger := logger.With().Str("request_id", requestID).Str("method", info.FullMethod).Logger()
		ctx = reqLogger.WithContext(ctx)

		start := time.Now()
		resp, err := handler(ctx, req)

		event := reqLogger.Debug()
		if err != nil {
			event = reqLogger.Warn().Err(err)
		}
		event.Str("code", status.Code(err).String()).Dur("duration", time.Since(start)).Msg("gRPC call completed")

		return resp, err
	}
}
