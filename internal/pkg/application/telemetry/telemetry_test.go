package telemetry

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/famcare/health-engine/internal/pkg/infrastructure/clock"
	"github.com/famcare/health-engine/pkg/types"

	"github.com/matryer/is"
)

func TestEmitBuffersUntilFlush(t *testing.T) {
	is, ctx, s, e := testSetup(t)

	e.EmitHealthEvent(ctx, types.ObservabilityEvent{Type: "vital_evaluated", UserID: "u1"})
	e.EmitMetric(ctx, types.PlatformMetric{Name: "evaluations", Value: 1})

	is.Equal(0, len(s.AddEventsCalls()))
	is.Equal(0, len(s.AddMetricsCalls()))

	err := e.Flush(ctx)
	is.NoErr(err)

	is.Equal(1, len(s.AddEventsCalls()))
	is.Equal(1, len(s.AddEventsCalls()[0].Events))
	is.Equal(1, len(s.AddMetricsCalls()))
}

func TestEmitFillsInDefaults(t *testing.T) {
	is, ctx, s, e := testSetup(t)

	e.EmitAlertEvent(ctx, types.ObservabilityEvent{Type: "alert_triggered"})
	err := e.Flush(ctx)
	is.NoErr(err)

	evt := s.AddEventsCalls()[0].Events[0]
	is.True(evt.ID != "")
	is.True(evt.CorrelationID != "")
	is.Equal(types.EventCategoryAlert, evt.Category)
	is.Equal(types.SeverityInfo, evt.Severity)
	is.True(!evt.Timestamp.IsZero())
}

func TestBufferFullTriggersFlush(t *testing.T) {
	is, ctx, s, _ := testSetup(t)

	e := New(s, clock.NewFake(time.Now()), WithMaxBuffered(3))

	for i := 0; i < 3; i++ {
		e.EmitHealthEvent(ctx, types.ObservabilityEvent{Type: "vital_evaluated"})
	}

	is.Equal(1, len(s.AddEventsCalls()))
	is.Equal(3, len(s.AddEventsCalls()[0].Events))
}

func TestAuditEntriesAreWrittenThrough(t *testing.T) {
	is, ctx, s, e := testSetup(t)

	err := e.EmitAuditEntry(ctx, types.AlertAuditEntry{Action: "created", EscalationID: "esc-1"})
	is.NoErr(err)

	is.Equal(1, len(s.AddAuditEntryCalls()))
	is.Equal("created", s.AddAuditEntryCalls()[0].Entry.Action)
	is.True(s.AddAuditEntryCalls()[0].Entry.ID != "")
}

func TestFailedFlushDropsBatch(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s := &TelemetryStorageMock{
		AddEventsFunc: func(ctx context.Context, events []types.ObservabilityEvent) error {
			return context.DeadlineExceeded
		},
	}
	e := New(s, clock.NewFake(time.Now()))

	e.EmitHealthEvent(ctx, types.ObservabilityEvent{Type: "vital_evaluated"})
	err := e.Flush(ctx)
	is.True(err != nil)

	// the batch must not be requeued
	s.AddEventsFunc = func(ctx context.Context, events []types.ObservabilityEvent) error {
		return nil
	}
	err = e.Flush(ctx)
	is.NoErr(err)
	is.Equal(1, len(s.AddEventsCalls()))
}

func TestSanitizeRedactsPIIKeys(t *testing.T) {
	is := is.New(t)

	clean := sanitizeMap(map[string]any{
		"patientName": "Alice Andersson",
		"email":       "alice@example.com",
		"value":       72.0,
		"nested": map[string]any{
			"phoneNumber": "+46 70 123 45 67",
			"vitalType":   "heart_rate",
		},
	})

	is.Equal(redacted, clean["patientName"])
	is.Equal(redacted, clean["email"])
	is.Equal(72.0, clean["value"])

	nested := clean["nested"].(map[string]any)
	is.Equal(redacted, nested["phoneNumber"])
	is.Equal("heart_rate", nested["vitalType"])
}

func TestScrubRedactsPatternsInFreeText(t *testing.T) {
	is := is.New(t)

	s := scrub("contact alice@example.com or +46 70 123 45 67 for details")

	is.True(!strings.Contains(s, "alice@example.com"))
	is.True(!strings.Contains(s, "+46 70 123 45 67"))
	is.True(strings.Contains(s, redacted))
}

func testSetup(t *testing.T) (*is.I, context.Context, *TelemetryStorageMock, Emitter) {
	is := is.New(t)
	ctx := context.Background()

	s := &TelemetryStorageMock{
		AddEventsFunc: func(ctx context.Context, events []types.ObservabilityEvent) error {
			return nil
		},
		AddMetricsFunc: func(ctx context.Context, metrics []types.PlatformMetric) error {
			return nil
		},
		AddAuditEntryFunc: func(ctx context.Context, entry types.AlertAuditEntry) error {
			return nil
		},
	}

	e := New(s, clock.NewFake(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)))

	return is, ctx, s, e
}
