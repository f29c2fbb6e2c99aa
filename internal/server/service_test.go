package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"

	"github.com/cobaltline/basicd/internal/eliza"
	"github.com/cobaltline/basicd/internal/orchestrator"
	basicv1 "github.com/cobaltline/basicd/internal/pb/basicv1"
	cloudeventspb "github.com/cobaltline/basicd/internal/pb/cloudeventspb"
	"github.com/cobaltline/basicd/internal/streaming"
)

func newTestService(t *testing.T, runner orchestrator.Runner, bus *streaming.Manager) *Service {
	t.Helper()
	if runner == nil {
		runner = orchestrator.RunnerFunc(func(ctx context.Context, id int) orchestrator.Result {
			return orchestrator.Result{
				ID:          fmt.Sprintf("r-%d", id),
				Name:        fmt.Sprintf("service-%d", id),
				Payload:     "grpc",
				CompletedAt: time.Now().UTC(),
			}
		})
	}
	orch, err := orchestrator.New(runner, 8, zap.NewNop())
	require.NoError(t, err)
	script := eliza.DefaultScript()
	return New(func() *eliza.Script { return script }, orch, bus, 0, zap.NewNop())
}

func unpackEnvelope(t *testing.T, ce *cloudeventspb.CloudEvent, payload proto.Message) {
	t.Helper()
	require.NotNil(t, ce.GetProtoData())
	err := ce.GetProtoData().UnmarshalTo(payload)
	require.NoError(t, err)
}

func TestHello(t *testing.T) {
	s := newTestService(t, nil, nil)

	resp, err := s.Hello(context.Background(), &basicv1.HelloRequest{Message: "world"})
	require.NoError(t, err)

	ce := resp.GetCloudEvent()
	require.NotNil(t, ce)
	assert.NotEmpty(t, ce.GetId())
	assert.Equal(t, "basic.v1.BasicService/Hello", ce.GetSource())
	assert.Equal(t, "1.0", ce.GetSpecVersion())
	assert.Equal(t, "basic.v1.HelloResponseEvent", ce.GetType())
	require.NotNil(t, ce.GetAttributes()["time"])
	assert.NotNil(t, ce.GetAttributes()["time"].GetCeTimestamp())

	var evt basicv1.HelloResponseEvent
	unpackEnvelope(t, ce, &evt)
	assert.Equal(t, "Hello, world", evt.GetGreeting())
}

func TestHelloEnvelopeIDsAreUnique(t *testing.T) {
	s := newTestService(t, nil, nil)
	a, err := s.Hello(context.Background(), &basicv1.HelloRequest{Message: "x"})
	require.NoError(t, err)
	b, err := s.Hello(context.Background(), &basicv1.HelloRequest{Message: "x"})
	require.NoError(t, err)
	assert.NotEqual(t, a.GetCloudEvent().GetId(), b.GetCloudEvent().GetId())
}

// fakeTalkStream feeds scripted requests and records responses.
type fakeTalkStream struct {
	grpc.ServerStream
	ctx  context.Context
	in   []*basicv1.TalkRequest
	sent []*basicv1.TalkResponse
}

func (f *fakeTalkStream) Context() context.Context { return f.ctx }

func (f *fakeTalkStream) Recv() (*basicv1.TalkRequest, error) {
	if len(f.in) == 0 {
		return nil, io.EOF
	}
	req := f.in[0]
	f.in = f.in[1:]
	return req, nil
}

func (f *fakeTalkStream) Send(resp *basicv1.TalkResponse) error {
	f.sent = append(f.sent, resp)
	return nil
}

func TestTalkClosesOnFarewell(t *testing.T) {
	s := newTestService(t, nil, nil)
	stream := &fakeTalkStream{
		ctx: context.Background(),
		in: []*basicv1.TalkRequest{
			{Message: "Hello"},
			{Message: "I am sad"},
			{Message: "goodbye"},
			{Message: "never delivered"},
		},
	}

	require.NoError(t, s.Talk(stream))

	// The farewell ends the stream; the fourth request is never read.
	require.Len(t, stream.sent, 3)
	for _, resp := range stream.sent {
		assert.NotEmpty(t, resp.GetAnswer())
	}
	assert.Len(t, stream.in, 1)
}

func TestTalkClientClose(t *testing.T) {
	s := newTestService(t, nil, nil)
	stream := &fakeTalkStream{
		ctx: context.Background(),
		in:  []*basicv1.TalkRequest{{Message: "Hello"}},
	}

	require.NoError(t, s.Talk(stream))
	require.Len(t, stream.sent, 1)
}

func TestTalkConversationsAreIsolated(t *testing.T) {
	s := newTestService(t, nil, nil)

	// Both streams open with the same keyword; each must start from the
	// first reassembly template, proving cursors are per conversation.
	var answers []string
	for i := 0; i < 2; i++ {
		stream := &fakeTalkStream{
			ctx: context.Background(),
			in:  []*basicv1.TalkRequest{{Message: "I am sad"}},
		}
		require.NoError(t, s.Talk(stream))
		require.Len(t, stream.sent, 1)
		answers = append(answers, stream.sent[0].GetAnswer())
	}
	assert.Equal(t, answers[0], answers[1])
}

// fakeBackgroundStream records streamed responses.
type fakeBackgroundStream struct {
	grpc.ServerStream
	ctx  context.Context
	sent []*basicv1.BackgroundResponse
}

func (f *fakeBackgroundStream) Context() context.Context { return f.ctx }

func (f *fakeBackgroundStream) Send(resp *basicv1.BackgroundResponse) error {
	f.sent = append(f.sent, resp)
	return nil
}

func backgroundEvents(t *testing.T, stream *fakeBackgroundStream) []*basicv1.BackgroundResponseEvent {
	t.Helper()
	var out []*basicv1.BackgroundResponseEvent
	for _, resp := range stream.sent {
		ce := resp.GetCloudEvent()
		require.NotNil(t, ce)
		assert.Equal(t, "basic.v1.BasicService/Background", ce.GetSource())
		assert.Equal(t, "basic.v1.BackgroundResponseEvent", ce.GetType())
		assert.NotEmpty(t, ce.GetAttributes()["runid"].GetCeString())
		evt := &basicv1.BackgroundResponseEvent{}
		unpackEnvelope(t, ce, evt)
		out = append(out, evt)
	}
	return out
}

func TestBackgroundRejectsInvalidCounts(t *testing.T) {
	s := newTestService(t, nil, nil)
	for _, processes := range []int32{-1, 9} {
		stream := &fakeBackgroundStream{ctx: context.Background()}
		err := s.Background(&basicv1.BackgroundRequest{Processes: processes}, stream)
		require.Error(t, err)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
		assert.Empty(t, stream.sent)
	}
}

func TestBackgroundZeroWorkers(t *testing.T) {
	s := newTestService(t, nil, nil)
	stream := &fakeBackgroundStream{ctx: context.Background()}

	require.NoError(t, s.Background(&basicv1.BackgroundRequest{}, stream))

	evts := backgroundEvents(t, stream)
	require.Len(t, evts, 1)
	assert.Equal(t, basicv1.State_STATE_COMPLETE, evts[0].GetState())
	assert.Empty(t, evts[0].GetResponses())
	assert.NotNil(t, evts[0].GetStartedAt())
	assert.NotNil(t, evts[0].GetCompletedAt())
}

func TestBackgroundStreamsProgress(t *testing.T) {
	const n = 3
	s := newTestService(t, nil, nil)
	stream := &fakeBackgroundStream{ctx: context.Background()}

	require.NoError(t, s.Background(&basicv1.BackgroundRequest{Processes: n}, stream))

	evts := backgroundEvents(t, stream)
	require.Len(t, evts, n+1)

	prev := -1
	for i, evt := range evts {
		require.Greater(t, len(evt.GetResponses()), prev)
		prev = len(evt.GetResponses())
		if i < len(evts)-1 {
			assert.Equal(t, basicv1.State_STATE_PROCESS, evt.GetState())
			assert.Nil(t, evt.GetCompletedAt())
		}
	}

	final := evts[len(evts)-1]
	assert.Equal(t, basicv1.State_STATE_COMPLETE, final.GetState())
	require.Len(t, final.GetResponses(), n)
	for _, r := range final.GetResponses() {
		assert.NotEmpty(t, r.GetId())
		assert.Equal(t, "v1", r.GetVersion())
		assert.Equal(t, "protocol", r.GetData().GetType())
		assert.NotEmpty(t, r.GetData().GetValue())
	}
}

func TestBackgroundCarriesWorkerFailures(t *testing.T) {
	failing := orchestrator.RunnerFunc(func(ctx context.Context, id int) orchestrator.Result {
		return orchestrator.Result{
			ID:          fmt.Sprint(id),
			Name:        fmt.Sprintf("service-%d", id),
			Err:         errors.New("connection refused"),
			CompletedAt: time.Now().UTC(),
		}
	})
	s := newTestService(t, failing, nil)
	stream := &fakeBackgroundStream{ctx: context.Background()}

	// Worker failures stay inside the payload; the RPC itself succeeds.
	require.NoError(t, s.Background(&basicv1.BackgroundRequest{Processes: 2}, stream))

	evts := backgroundEvents(t, stream)
	final := evts[len(evts)-1]
	assert.Equal(t, basicv1.State_STATE_ERROR, final.GetState())
	for _, r := range final.GetResponses() {
		assert.Equal(t, "error", r.GetData().GetType())
		assert.Equal(t, "connection refused", r.GetData().GetValue())
	}
}

func TestBackgroundPublishesBusEvents(t *testing.T) {
	bus := streaming.NewManager(16)
	s := newTestService(t, nil, bus)
	stream := &fakeBackgroundStream{ctx: context.Background()}

	require.NoError(t, s.Background(&basicv1.BackgroundRequest{Processes: 2}, stream))

	runID := stream.sent[0].GetCloudEvent().GetAttributes()["runid"].GetCeString()
	evts := bus.ReplaySince(runID, 0)
	require.Len(t, evts, len(stream.sent))
	assert.Equal(t, streaming.TypeRunStarted, evts[0].Type)
	last := evts[len(evts)-1]
	assert.Equal(t, streaming.TypeRunFinished, last.Type)
	assert.Equal(t, "COMPLETE", last.State)
	assert.Equal(t, 2, last.Completed)
	assert.Equal(t, 2, last.Requested)
}

func TestBackgroundCancellation(t *testing.T) {
	blocked := orchestrator.RunnerFunc(func(ctx context.Context, id int) orchestrator.Result {
		<-ctx.Done()
		return orchestrator.Result{ID: fmt.Sprint(id), Err: ctx.Err(), CompletedAt: time.Now().UTC()}
	})
	s := newTestService(t, blocked, nil)

	ctx, cancel := context.WithCancel(context.Background())
	stream := &fakeBackgroundStream{ctx: ctx}

	done := make(chan error, 1)
	go func() {
		done <- s.Background(&basicv1.BackgroundRequest{Processes: 2}, stream)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.Equal(t, codes.Canceled, status.Code(err))
	case <-time.After(5 * time.Second):
		t.Fatal("Background did not return after cancellation")
	}
}

// Any payloads must carry the schema's full message names so that clients
// generated from the proto sources can unpack them.
func TestEnvelopePayloadTypeURLs(t *testing.T) {
	hello, err := helloEnvelope("Hello, world")
	require.NoError(t, err)
	assert.Equal(t, "type.googleapis.com/basic.v1.HelloResponseEvent", hello.GetProtoData().GetTypeUrl())

	bg, err := backgroundEnvelope(orchestrator.Update{RunID: "run-1", StartedAt: time.Now().UTC()})
	require.NoError(t, err)
	assert.Equal(t, "type.googleapis.com/basic.v1.BackgroundResponseEvent", bg.GetProtoData().GetTypeUrl())
}

func TestEnvelopePayloadRoundTrip(t *testing.T) {
	u := orchestrator.Update{
		RunID:       "run-1",
		State:       orchestrator.StateCompleteWithError,
		StartedAt:   time.Now().UTC(),
		CompletedAt: time.Now().UTC(),
		Results: []orchestrator.Result{
			{ID: "a", Name: "service-1", Payload: "grpc", CompletedAt: time.Now().UTC()},
			{ID: "b", Name: "service-2", Err: errors.New("boom"), CompletedAt: time.Now().UTC()},
		},
	}
	ce, err := backgroundEnvelope(u)
	require.NoError(t, err)

	evt := &basicv1.BackgroundResponseEvent{}
	require.NoError(t, ce.GetProtoData().UnmarshalTo(evt))
	want := backgroundEvent(u)
	assert.True(t, proto.Equal(want, evt))
	assert.Equal(t, basicv1.State_STATE_COMPLETE_WITH_ERROR, evt.GetState())
	require.Len(t, evt.GetResponses(), 2)
	assert.Equal(t, "protocol", evt.GetResponses()[0].GetData().GetType())
	assert.Equal(t, "error", evt.GetResponses()[1].GetData().GetType())
}
