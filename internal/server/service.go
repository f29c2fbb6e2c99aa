// Package server implements the BasicService gRPC surface: a unary greeting,
// a bidirectional conversation stream, and a server stream of background run
// progress. All responses travel as CloudEvent envelopes or carry one.
package server

import (
	"context"
	"errors"
	"io"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/cobaltline/basicd/internal/eliza"
	"github.com/cobaltline/basicd/internal/metrics"
	"github.com/cobaltline/basicd/internal/orchestrator"
	basicv1 "github.com/cobaltline/basicd/internal/pb/basicv1"
	"github.com/cobaltline/basicd/internal/streaming"
	"github.com/cobaltline/basicd/internal/tracing"
)

// ScriptProvider returns the conversation script currently in effect. The
// config watcher swaps scripts at runtime; each Talk stream captures the
// script once, at stream open, so a reload never changes a conversation
// midway.
type ScriptProvider func() *eliza.Script

// Service implements basicv1.BasicServiceServer.
type Service struct {
	basicv1.UnimplementedBasicServiceServer

	scripts      ScriptProvider
	orch         *orchestrator.Orchestrator
	bus          *streaming.Manager
	historyLimit int
	logger       *zap.Logger
}

// New wires the service. bus may be nil when no admin observers exist.
func New(scripts ScriptProvider, orch *orchestrator.Orchestrator, bus *streaming.Manager, historyLimit int, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		scripts:      scripts,
		orch:         orch,
		bus:          bus,
		historyLimit: historyLimit,
		logger:       logger,
	}
}

// Hello returns a single greeting envelope echoing the request message.
func (s *Service) Hello(ctx context.Context, req *basicv1.HelloRequest) (*basicv1.HelloResponse, error) {
	_, span := tracing.StartSpan(ctx, "BasicService.Hello")
	defer span.End()

	ce, err := helloEnvelope("Hello, " + req.GetMessage())
	if err != nil {
		s.logger.Error("hello envelope build failed", zap.Error(err))
		return nil, status.Error(codes.Internal, "failed to build response envelope")
	}
	return &basicv1.HelloResponse{CloudEvent: ce}, nil
}

// Talk runs one scripted conversation per stream. The server closes the
// stream after answering a farewell; the client may close it at any time.
func (s *Service) Talk(stream basicv1.BasicService_TalkServer) error {
	_, span := tracing.StartSpan(stream.Context(), "BasicService.Talk")
	defer span.End()

	engine := eliza.NewEngine(s.scripts())
	sess := eliza.NewSession(s.historyLimit)
	metrics.ConversationsStarted.Inc()
	s.logger.Info("conversation opened")

	for {
		req, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			metrics.ConversationsEnded.WithLabelValues("client_closed").Inc()
			s.logger.Info("conversation closed by client")
			return nil
		}
		if err != nil {
			metrics.ConversationsEnded.WithLabelValues("error").Inc()
			return err
		}

		answer, done := engine.Respond(sess, req.GetMessage())
		if err := stream.Send(&basicv1.TalkResponse{Answer: answer}); err != nil {
			metrics.ConversationsEnded.WithLabelValues("error").Inc()
			return err
		}
		metrics.RepliesGenerated.Inc()

		if done {
			metrics.ConversationsEnded.WithLabelValues("farewell").Inc()
			s.logger.Info("conversation closed by farewell")
			return nil
		}
	}
}

// Background launches the requested number of workers and streams one
// envelope per progress step, ending with exactly one terminal envelope.
func (s *Service) Background(req *basicv1.BackgroundRequest, stream basicv1.BasicService_BackgroundServer) error {
	ctx, span := tracing.StartSpan(stream.Context(), "BasicService.Background")
	defer span.End()

	count := int(req.GetProcesses())
	updates, err := s.orch.Run(ctx, count)
	if err != nil {
		if errors.Is(err, orchestrator.ErrNegativeCount) || errors.Is(err, orchestrator.ErrTooManyWorkers) {
			return status.Error(codes.InvalidArgument, err.Error())
		}
		return status.Error(codes.Internal, err.Error())
	}

	var runID string
	for u := range updates {
		runID = u.RunID
		ce, err := backgroundEnvelope(u)
		if err != nil {
			s.logger.Error("background envelope build failed",
				zap.String("run_id", u.RunID), zap.Error(err))
			return status.Error(codes.Internal, "failed to build response envelope")
		}
		if err := stream.Send(&basicv1.BackgroundResponse{CloudEvent: ce}); err != nil {
			return err
		}
		s.publishRunEvent(u, count)
	}

	if err := ctx.Err(); err != nil {
		if s.bus != nil && runID != "" {
			s.bus.Publish(runID, streaming.Event{
				RunID:     runID,
				Type:      streaming.TypeRunCanceled,
				Requested: count,
				Timestamp: time.Now().UTC(),
			})
		}
		return status.FromContextError(err).Err()
	}
	return nil
}

// publishRunEvent mirrors one run update onto the admin event bus.
func (s *Service) publishRunEvent(u orchestrator.Update, requested int) {
	if s.bus == nil {
		return
	}
	evt := streaming.Event{
		RunID:     u.RunID,
		State:     u.State.String(),
		Completed: len(u.Results),
		Requested: requested,
		Timestamp: time.Now().UTC(),
	}
	switch {
	case u.Terminal():
		evt.Type = streaming.TypeRunFinished
	case len(u.Results) == 0:
		evt.Type = streaming.TypeRunStarted
	default:
		evt.Type = streaming.TypeWorkerCompleted
	}
	s.bus.Publish(u.RunID, evt)
}
