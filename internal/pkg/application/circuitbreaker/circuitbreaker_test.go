package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/famcare/health-engine/internal/pkg/infrastructure/clock"
	"github.com/famcare/health-engine/pkg/types"

	"github.com/matryer/is"
)

var errBoom = errors.New("boom")

func failing(ctx context.Context) error { return errBoom }
func succeeding(ctx context.Context) error { return nil }

func TestOpensAfterFailureThreshold(t *testing.T) {
	is, ctx, _, clk, cb := testSetup(t)
	_ = clk

	for i := 0; i < 4; i++ {
		err := cb.Execute(ctx, "store", failing, nil)
		is.True(errors.Is(err, errBoom))
		is.Equal(StateClosed, cb.State("store"))
	}

	// fifth consecutive failure trips the breaker
	err := cb.Execute(ctx, "store", failing, nil)
	is.True(errors.Is(err, ErrServiceUnavailable))
	is.Equal(StateOpen, cb.State("store"))
}

func TestOpenCircuitRejectsOrFallsBack(t *testing.T) {
	is, ctx, _, _, cb := testSetup(t)

	tripBreaker(ctx, cb, "store")

	err := cb.Execute(ctx, "store", succeeding, nil)
	is.True(errors.Is(err, ErrServiceUnavailable))

	fallbackCalled := false
	err = cb.Execute(ctx, "store", succeeding, func(ctx context.Context) error {
		fallbackCalled = true
		return nil
	})
	is.NoErr(err)
	is.True(fallbackCalled)
}

func TestHalfOpenAfterTimeout(t *testing.T) {
	is, ctx, _, clk, cb := testSetup(t)

	tripBreaker(ctx, cb, "store")
	clk.Advance(31 * time.Second)

	err := cb.Execute(ctx, "store", succeeding, nil)
	is.NoErr(err)
	is.Equal(StateHalfOpen, cb.State("store"))
}

func TestSuccessesInHalfOpenCloseTheCircuit(t *testing.T) {
	is, ctx, _, clk, cb := testSetup(t)

	tripBreaker(ctx, cb, "store")
	clk.Advance(31 * time.Second)

	is.NoErr(cb.Execute(ctx, "store", succeeding, nil))
	is.Equal(StateHalfOpen, cb.State("store"))

	is.NoErr(cb.Execute(ctx, "store", succeeding, nil))
	is.Equal(StateClosed, cb.State("store"))
}

func TestFailureInHalfOpenReopensTheCircuit(t *testing.T) {
	is, ctx, _, clk, cb := testSetup(t)

	tripBreaker(ctx, cb, "store")
	clk.Advance(31 * time.Second)

	err := cb.Execute(ctx, "store", failing, nil)
	is.True(errors.Is(err, ErrServiceUnavailable))
	is.Equal(StateOpen, cb.State("store"))

	// and the new open window starts from the reopening failure
	clk.Advance(10 * time.Second)
	err = cb.Execute(ctx, "store", succeeding, nil)
	is.True(errors.Is(err, ErrServiceUnavailable))
}

func TestHalfOpenAdmitsALimitedNumberOfRequests(t *testing.T) {
	is, ctx, _, clk, cb := testSetup(t)

	cb.Configure("store", Settings{
		FailureThreshold: 5,
		SuccessThreshold: 5,
		Timeout:          30 * time.Second,
		HalfOpenRequests: 3,
	})

	tripBreaker(ctx, cb, "store")
	clk.Advance(31 * time.Second)

	for i := 0; i < 3; i++ {
		is.NoErr(cb.Execute(ctx, "store", succeeding, nil))
	}

	// fourth probe is not admitted while the circuit is still half open
	err := cb.Execute(ctx, "store", succeeding, nil)
	is.True(errors.Is(err, ErrServiceUnavailable))
}

func TestSuccessResetsFailureCountWhileClosed(t *testing.T) {
	is, ctx, _, _, cb := testSetup(t)

	for i := 0; i < 4; i++ {
		_ = cb.Execute(ctx, "store", failing, nil)
	}
	is.NoErr(cb.Execute(ctx, "store", succeeding, nil))

	for i := 0; i < 4; i++ {
		_ = cb.Execute(ctx, "store", failing, nil)
	}
	is.Equal(StateClosed, cb.State("store"))
}

func TestTransitionsEmitPlatformEvents(t *testing.T) {
	is, ctx, tel, clk, cb := testSetup(t)

	tripBreaker(ctx, cb, "notifier")
	clk.Advance(31 * time.Second)
	is.NoErr(cb.Execute(ctx, "notifier", succeeding, nil))
	is.NoErr(cb.Execute(ctx, "notifier", succeeding, nil))

	events := tel.EmitPlatformEventCalls()
	is.Equal(3, len(events)) // open, half open, closed

	is.Equal(types.SeverityError, events[0].E.Severity)
	is.Equal(types.SeverityWarning, events[1].E.Severity)
	is.Equal(types.SeverityInfo, events[2].E.Severity)
}

func TestLatencyMetricIsTaggedWithOutcome(t *testing.T) {
	is, ctx, tel, _, cb := testSetup(t)

	is.NoErr(cb.Execute(ctx, "store", succeeding, nil))
	_ = cb.Execute(ctx, "store", failing, nil)

	metrics := tel.EmitMetricCalls()
	is.Equal(2, len(metrics))
	is.Equal("success", metrics[0].M.Tags["outcome"])
	is.Equal("failure", metrics[1].M.Tags["outcome"])
	is.Equal("store", metrics[0].M.Tags["service"])
}

func TestResetClosesTheCircuit(t *testing.T) {
	is, ctx, _, _, cb := testSetup(t)

	tripBreaker(ctx, cb, "store")
	cb.Reset("store")

	is.Equal(StateClosed, cb.State("store"))
	is.NoErr(cb.Execute(ctx, "store", succeeding, nil))
}

func TestStatusSnapshot(t *testing.T) {
	is, ctx, _, clk, cb := testSetup(t)

	tripBreaker(ctx, cb, "store")

	s := cb.Status("store")
	is.Equal("store", s.ServiceName)
	is.Equal(StateOpen, s.State)
	is.Equal(5, s.FailureCount)
	is.True(s.NextRetryAt != nil)
	is.Equal(clk.Now().Add(30*time.Second), *s.NextRetryAt)
}

func tripBreaker(ctx context.Context, cb CircuitBreaker, name string) {
	for i := 0; i < 5; i++ {
		_ = cb.Execute(ctx, name, failing, nil)
	}
}

func testSetup(t *testing.T) (*is.I, context.Context, *TelemetryMock, *clock.Fake, CircuitBreaker) {
	is := is.New(t)
	ctx := context.Background()

	tel := &TelemetryMock{
		EmitPlatformEventFunc: func(ctx context.Context, e types.ObservabilityEvent) {},
		EmitMetricFunc:        func(ctx context.Context, m types.PlatformMetric) {},
	}
	clk := clock.NewFake(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC))

	return is, ctx, tel, clk, New(tel, clk)
}
