package server

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/cobaltline/basicd/internal/metrics"
	"github.com/cobaltline/basicd/internal/orchestrator"
	basicv1 "github.com/cobaltline/basicd/internal/pb/basicv1"
	cloudeventspb "github.com/cobaltline/basicd/internal/pb/cloudeventspb"
)

// CloudEvent context values shared by all envelopes this service emits.
const (
	ceSpecVersion = "1.0"

	sourceHello      = "basic.v1.BasicService/Hello"
	sourceBackground = "basic.v1.BasicService/Background"

	typeHelloEvent      = "basic.v1.HelloResponseEvent"
	typeBackgroundEvent = "basic.v1.BackgroundResponseEvent"
)

// newEnvelope wraps a payload message in a CloudEvent with a fresh id and a
// "time" context attribute stamped at build time.
func newEnvelope(source, eventType string, payload proto.Message) (*cloudeventspb.CloudEvent, error) {
	data, err := anypb.New(payload)
	if err != nil {
		return nil, fmt.Errorf("pack envelope payload: %w", err)
	}
	return &cloudeventspb.CloudEvent{
		Id:          uuid.NewString(),
		Source:      source,
		SpecVersion: ceSpecVersion,
		Type:        eventType,
		Attributes: map[string]*cloudeventspb.CloudEventAttributeValue{
			"time": {
				Attr: &cloudeventspb.CloudEventAttributeValue_CeTimestamp{
					CeTimestamp: timestamppb.New(time.Now().UTC()),
				},
			},
		},
		ProtoData: data,
	}, nil
}

// helloEnvelope builds the single envelope returned by Hello.
func helloEnvelope(greeting string) (*cloudeventspb.CloudEvent, error) {
	ce, err := newEnvelope(sourceHello, typeHelloEvent, &basicv1.HelloResponseEvent{
		Greeting: greeting,
	})
	if err != nil {
		return nil, err
	}
	metrics.EnvelopesEmitted.WithLabelValues("hello").Inc()
	return ce, nil
}

// backgroundEnvelope builds one envelope of the Background stream from a run
// update snapshot. The run id travels as a context attribute so callers can
// correlate the stream with the admin event feed.
func backgroundEnvelope(u orchestrator.Update) (*cloudeventspb.CloudEvent, error) {
	ce, err := newEnvelope(sourceBackground, typeBackgroundEvent, backgroundEvent(u))
	if err != nil {
		return nil, err
	}
	ce.Attributes["runid"] = &cloudeventspb.CloudEventAttributeValue{
		Attr: &cloudeventspb.CloudEventAttributeValue_CeString{CeString: u.RunID},
	}
	metrics.EnvelopesEmitted.WithLabelValues("background").Inc()
	return ce, nil
}

// backgroundEvent maps a run update to its wire payload. Worker failures
// travel inside the payload as data of type "error"; they never surface as
// RPC errors.
func backgroundEvent(u orchestrator.Update) *basicv1.BackgroundResponseEvent {
	evt := &basicv1.BackgroundResponseEvent{
		State:     wireState(u.State),
		StartedAt: timestamppb.New(u.StartedAt),
	}
	if !u.CompletedAt.IsZero() {
		evt.CompletedAt = timestamppb.New(u.CompletedAt)
	}
	for _, r := range u.Results {
		evt.Responses = append(evt.Responses, wireResult(r))
	}
	return evt
}

func wireResult(r orchestrator.Result) *basicv1.SomeServiceResponse {
	data := &basicv1.SomeServiceData{Value: r.Payload, Type: "protocol"}
	if r.Failed() {
		data = &basicv1.SomeServiceData{Value: r.Err.Error(), Type: "error"}
	}
	return &basicv1.SomeServiceResponse{
		Id:      r.ID,
		Name:    r.Name,
		Version: "v1",
		Data:    data,
	}
}

func wireState(s orchestrator.State) basicv1.State {
	switch s {
	case orchestrator.StateProcess:
		return basicv1.State_STATE_PROCESS
	case orchestrator.StateComplete:
		return basicv1.State_STATE_COMPLETE
	case orchestrator.StateError:
		return basicv1.State_STATE_ERROR
	case orchestrator.StateCompleteWithError:
		return basicv1.State_STATE_COMPLETE_WITH_ERROR
	default:
		return basicv1.State_STATE_UNSPECIFIED
	}
}
