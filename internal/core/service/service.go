package service

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/MikeRez0/sharpdata/internal/core/service")

// Push item outcomes reported to port.Recorder.
const (
	ItemOutcomeSuccess  = "success"
	ItemOutcomeInvalid  = "invalid"
	ItemOutcomeRejected = "rejected"
	ItemOutcomeError    = "error"
)

// detach keeps the values of ctx but drops its cancellation: once a push or a sync
// batch has started every unit runs to its own timeout.
func detach(ctx context.Context) context.Context {
	return context.WithoutCancel(ctx)
}

func spanError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
