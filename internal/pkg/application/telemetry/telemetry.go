package telemetry

import (
	"context"
	"sync"
	"time"

	"github.com/famcare/health-engine/internal/pkg/infrastructure/clock"
	"github.com/famcare/health-engine/pkg/types"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/google/uuid"
)

//go:generate moq -rm -out telemetrystorage_mock.go . TelemetryStorage
type TelemetryStorage interface {
	AddEvents(ctx context.Context, events []types.ObservabilityEvent) error
	AddMetrics(ctx context.Context, metrics []types.PlatformMetric) error
	AddAuditEntry(ctx context.Context, entry types.AlertAuditEntry) error
}

// Emitter is the ingestion point for all telemetry produced by the
// engine. Events and metrics are buffered in memory and flushed on an
// interval, when the buffer fills up, or on an explicit Flush. Audit
// entries are written through immediately.
//
// Delivery is at most once. A failed flush is logged and the batch is
// dropped, never requeued.
type Emitter interface {
	EmitHealthEvent(ctx context.Context, e types.ObservabilityEvent)
	EmitAlertEvent(ctx context.Context, e types.ObservabilityEvent)
	EmitPlatformEvent(ctx context.Context, e types.ObservabilityEvent)
	EmitMetric(ctx context.Context, m types.PlatformMetric)
	EmitAuditEntry(ctx context.Context, entry types.AlertAuditEntry) error

	Flush(ctx context.Context) error
	Start(ctx context.Context)
	Stop(ctx context.Context)
}

const (
	DefaultFlushInterval = 10 * time.Second
	DefaultMaxBuffered   = 50
)

type Option func(*emitter)

func WithFlushInterval(d time.Duration) Option {
	return func(e *emitter) {
		e.interval = d
	}
}

func WithMaxBuffered(n int) Option {
	return func(e *emitter) {
		e.maxBuffered = n
	}
}

func New(storage TelemetryStorage, clk clock.Clock, opts ...Option) Emitter {
	e := &emitter{
		storage:     storage,
		clk:         clk,
		interval:    DefaultFlushInterval,
		maxBuffered: DefaultMaxBuffered,
		done:        make(chan bool, 1),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

type emitter struct {
	storage TelemetryStorage
	clk     clock.Clock

	interval    time.Duration
	maxBuffered int

	mu      sync.Mutex
	events  []types.ObservabilityEvent
	metrics []types.PlatformMetric

	done chan bool
}

func (e *emitter) EmitHealthEvent(ctx context.Context, evt types.ObservabilityEvent) {
	e.emit(ctx, types.EventCategoryHealth, evt)
}

func (e *emitter) EmitAlertEvent(ctx context.Context, evt types.ObservabilityEvent) {
	e.emit(ctx, types.EventCategoryAlert, evt)
}

func (e *emitter) EmitPlatformEvent(ctx context.Context, evt types.ObservabilityEvent) {
	e.emit(ctx, types.EventCategoryPlatform, evt)
}

func (e *emitter) emit(ctx context.Context, category string, evt types.ObservabilityEvent) {
	evt.Category = category

	if evt.ID == "" {
		evt.ID = uuid.NewString()
	}
	if evt.CorrelationID == "" {
		evt.CorrelationID = uuid.NewString()
	}
	if evt.Timestamp.IsZero() {
		evt.Timestamp = e.clk.Now()
	}
	if evt.Severity == "" {
		evt.Severity = types.SeverityInfo
	}

	evt.Data = sanitizeMap(evt.Data)

	e.mu.Lock()
	e.events = append(e.events, evt)
	full := len(e.events)+len(e.metrics) >= e.maxBuffered
	e.mu.Unlock()

	if full {
		e.flushAndLog(ctx)
	}
}

func (e *emitter) EmitMetric(ctx context.Context, m types.PlatformMetric) {
	if m.Timestamp.IsZero() {
		m.Timestamp = e.clk.Now()
	}

	e.mu.Lock()
	e.metrics = append(e.metrics, m)
	full := len(e.events)+len(e.metrics) >= e.maxBuffered
	e.mu.Unlock()

	if full {
		e.flushAndLog(ctx)
	}
}

func (e *emitter) EmitAuditEntry(ctx context.Context, entry types.AlertAuditEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CorrelationID == "" {
		entry.CorrelationID = uuid.NewString()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = e.clk.Now()
	}
	if entry.Severity == "" {
		entry.Severity = types.SeverityInfo
	}

	entry.Details = sanitizeMap(entry.Details)

	return e.storage.AddAuditEntry(ctx, entry)
}

func (e *emitter) Flush(ctx context.Context) error {
	e.mu.Lock()
	events := e.events
	metrics := e.metrics
	e.events = nil
	e.metrics = nil
	e.mu.Unlock()

	if len(events) > 0 {
		if err := e.storage.AddEvents(ctx, events); err != nil {
			return err
		}
	}

	if len(metrics) > 0 {
		if err := e.storage.AddMetrics(ctx, metrics); err != nil {
			return err
		}
	}

	return nil
}

func (e *emitter) flushAndLog(ctx context.Context) {
	if err := e.Flush(ctx); err != nil {
		log := logging.GetFromContext(ctx)
		log.Error("failed to flush telemetry, batch dropped", "err", err.Error())
	}
}

func (e *emitter) Start(ctx context.Context) {
	go e.backgroundFlusher(ctx)
}

func (e *emitter) Stop(ctx context.Context) {
	select {
	case e.done <- true:
	default:
	}
}

func (e *emitter) backgroundFlusher(ctx context.Context) {
	for {
		select {
		case <-e.done:
			e.flushAndLog(ctx)
			return
		case <-time.After(e.interval):
			e.flushAndLog(ctx)
		}
	}
}
