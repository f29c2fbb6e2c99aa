package interceptors

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type fakeServerStream struct {
	grpc.ServerStream
	ctx   context.Context
	recvs int
}

func (f *fakeServerStream) Context() context.Context { return f.ctx }

func (f *fakeServerStream) RecvMsg(m interface{}) error {
	f.recvs++
	return nil
}

func TestUnaryRecovery(t *testing.T) {
	interceptor := UnaryRecovery(zap.NewNop())

	resp, err := interceptor(context.Background(), nil,
		&grpc.UnaryServerInfo{FullMethod: "/basic.v1.BasicService/Hello"},
		func(ctx context.Context, req interface{}) (interface{}, error) {
			panic("boom")
		})
	assert.Nil(t, resp)
	assert.Equal(t, codes.Internal, status.Code(err))
}

func TestUnaryRecoveryPassesThrough(t *testing.T) {
	interceptor := UnaryRecovery(zap.NewNop())
	want := errors.New("handler error")

	resp, err := interceptor(context.Background(), nil,
		&grpc.UnaryServerInfo{FullMethod: "/basic.v1.BasicService/Hello"},
		func(ctx context.Context, req interface{}) (interface{}, error) {
			return "ok", want
		})
	assert.Equal(t, "ok", resp)
	assert.Equal(t, want, err)
}

func TestStreamRecovery(t *testing.T) {
	interceptor := StreamRecovery(zap.NewNop())

	err := interceptor(nil, &fakeServerStream{ctx: context.Background()},
		&grpc.StreamServerInfo{FullMethod: "/basic.v1.BasicService/Talk"},
		func(srv interface{}, ss grpc.ServerStream) error {
			panic("boom")
		})
	assert.Equal(t, codes.Internal, status.Code(err))
}

func TestUnaryLoggingPreservesResult(t *testing.T) {
	interceptor := UnaryLogging(zap.NewNop())

	resp, err := interceptor(context.Background(), nil,
		&grpc.UnaryServerInfo{FullMethod: "/basic.v1.BasicService/Hello"},
		func(ctx context.Context, req interface{}) (interface{}, error) {
			return 42, nil
		})
	require.NoError(t, err)
	assert.Equal(t, 42, resp)
}

func TestStreamThrottleDisabled(t *testing.T) {
	interceptor := StreamThrottle(0, 0)
	inner := &fakeServerStream{ctx: context.Background()}

	err := interceptor(nil, inner,
		&grpc.StreamServerInfo{FullMethod: "/basic.v1.BasicService/Talk"},
		func(srv interface{}, ss grpc.ServerStream) error {
			// With throttling disabled the stream is passed through unwrapped.
			assert.Same(t, inner, ss)
			return nil
		})
	require.NoError(t, err)
}

func TestStreamThrottleDelaysRecv(t *testing.T) {
	interceptor := StreamThrottle(20, 1)
	inner := &fakeServerStream{ctx: context.Background()}

	start := time.Now()
	err := interceptor(nil, inner,
		&grpc.StreamServerInfo{FullMethod: "/basic.v1.BasicService/Talk"},
		func(srv interface{}, ss grpc.ServerStream) error {
			for i := 0; i < 3; i++ {
				if err := ss.RecvMsg(nil); err != nil {
					return err
				}
			}
			return nil
		})
	require.NoError(t, err)
	assert.Equal(t, 3, inner.recvs)
	// Burst of one, then two waits at 20/s.
	assert.GreaterOrEqual(t, time.Since(start), 80*time.Millisecond)
}

func TestStreamThrottleCancellation(t *testing.T) {
	interceptor := StreamThrottle(0.001, 1)
	ctx, cancel := context.WithCancel(context.Background())
	inner := &fakeServerStream{ctx: ctx}

	errCh := make(chan error, 1)
	go func() {
		errCh <- interceptor(nil, inner,
			&grpc.StreamServerInfo{FullMethod: "/basic.v1.BasicService/Talk"},
			func(srv interface{}, ss grpc.ServerStream) error {
				if err := ss.RecvMsg(nil); err != nil {
					return err
				}
				return ss.RecvMsg(nil)
			})
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("throttled Recv did not observe cancellation")
	}
}
