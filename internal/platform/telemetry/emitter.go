package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/ahentschel/doppelkopf.club/internal/storage"
)

// Event names emitted by the service layer.
const (
	EventGameCreated   = "game.created"
	EventRoundRecorded = "round.recorded"
	EventGameEnded     = "game.ended"
)

// Emitter appends telemetry events to a TelemetryStore. A nil emitter or
// an emitter without a store is a no-op, so callers can emit
// unconditionally.
type Emitter struct {
	store storage.TelemetryStore
	clock func() time.Time
}

// NewEmitter creates an emitter over the given store.
func NewEmitter(store storage.TelemetryStore) *Emitter {
	return &Emitter{store: store, clock: time.Now}
}

// Emit appends the event, stamping a missing timestamp and the active
// span's trace and span ids from ctx.
func (e *Emitter) Emit(ctx context.Context, evt storage.TelemetryEvent) error {
	if e == nil || e.store == nil {
		return nil
	}

	if evt.Timestamp.IsZero() {
		clock := e.clock
		if clock == nil {
			clock = time.Now
		}
		evt.Timestamp = clock().UTC()
	}

	if evt.TraceID == "" && evt.SpanID == "" {
		if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
			evt.TraceID = sc.TraceID().String()
			evt.SpanID = sc.SpanID().String()
		}
	}

	return e.store.AppendTelemetryEvent(ctx, evt)
}
