// Package interceptors provides the gRPC middleware chain: request logging,
// panic recovery, and message-rate throttling for streams.
package interceptors

import (
	"context"
	"runtime/debug"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/cobaltline/basicd/internal/metrics"
)

// UnaryLogging logs every unary call with its duration and status code.
func UnaryLogging(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		logger.Info("unary call",
			zap.String("method", info.FullMethod),
			zap.Duration("elapsed", time.Since(start)),
			zap.Stringer("code", status.Code(err)),
		)
		return resp, err
	}
}

// StreamLogging logs stream open and close.
func StreamLogging(logger *zap.Logger) grpc.StreamServerInterceptor {
	return func(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		start := time.Now()
		logger.Info("stream opened", zap.String("method", info.FullMethod))
		err := handler(srv, ss)
		logger.Info("stream closed",
			zap.String("method", info.FullMethod),
			zap.Duration("elapsed", time.Since(start)),
			zap.Stringer("code", status.Code(err)),
		)
		return err
	}
}

// UnaryRecovery converts handler panics into Internal errors instead of
// killing the process.
func UnaryRecovery(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp interface{}, err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic in unary handler",
					zap.String("method", info.FullMethod),
					zap.Any("panic", r),
					zap.ByteString("stack", debug.Stack()),
				)
				err = status.Error(codes.Internal, "internal error")
			}
		}()
		return handler(ctx, req)
	}
}

// StreamRecovery is UnaryRecovery for streams.
func StreamRecovery(logger *zap.Logger) grpc.StreamServerInterceptor {
	return func(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic in stream handler",
					zap.String("method", info.FullMethod),
					zap.Any("panic", r),
					zap.ByteString("stack", debug.Stack()),
				)
				err = status.Error(codes.Internal, "internal error")
			}
		}()
		return handler(srv, ss)
	}
}

// throttledStream delays inbound stream messages to the configured rate.
type throttledStream struct {
	grpc.ServerStream
	limiter *rate.Limiter
}

func (s *throttledStream) RecvMsg(m interface{}) error {
	r := s.limiter.Reserve()
	if d := r.Delay(); d > 0 {
		metrics.RequestsThrottled.Inc()
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-t.C:
		case <-s.Context().Done():
			r.Cancel()
			return s.Context().Err()
		}
	}
	return s.ServerStream.RecvMsg(m)
}

// StreamThrottle limits inbound message rate per stream; chat clients that
// flood the Talk stream are slowed rather than disconnected. Non-positive
// perSecond disables throttling.
func StreamThrottle(perSecond float64, burst int) grpc.StreamServerInterceptor {
	return func(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		if perSecond <= 0 {
			return handler(srv, ss)
		}
		limited := &throttledStream{
			ServerStream: ss,
			limiter:      rate.NewLimiter(rate.Limit(perSecond), burst),
		}
		return handler(srv, limited)
	}
}
