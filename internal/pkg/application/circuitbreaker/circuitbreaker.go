package circuitbreaker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/famcare/health-engine/internal/pkg/infrastructure/clock"
	"github.com/famcare/health-engine/pkg/types"
)

type State string

const (
	StateClosed   State = "closed"
	StateOpen     State = "open"
	StateHalfOpen State = "half_open"
)

var ErrServiceUnavailable = errors.New("service unavailable")

//go:generate moq -rm -out telemetry_mock.go . Telemetry
type Telemetry interface {
	EmitPlatformEvent(ctx context.Context, e types.ObservabilityEvent)
	EmitMetric(ctx context.Context, m types.PlatformMetric)
}

type Settings struct {
	FailureThreshold int
	SuccessThreshold int
	Timeout          time.Duration
	HalfOpenRequests int
}

func DefaultSettings() Settings {
	return Settings{
		FailureThreshold: 5,
		SuccessThreshold: 2,
		Timeout:          30 * time.Second,
		HalfOpenRequests: 3,
	}
}

type Operation func(ctx context.Context) error

// Status is a point in time snapshot of the state machine for one
// named dependency.
type Status struct {
	ServiceName  string     `json:"serviceName"`
	State        State      `json:"state"`
	FailureCount int        `json:"failureCount"`
	LastFailure  *time.Time `json:"lastFailure,omitempty"`
	LastSuccess  *time.Time `json:"lastSuccess,omitempty"`
	NextRetryAt  *time.Time `json:"nextRetryAt,omitempty"`
}

// CircuitBreaker guards calls to unreliable dependencies. Each named
// dependency gets its own closed/open/half open state machine. The
// breaker imposes no timeout of its own, it only reacts to the error
// returned by the wrapped operation.
type CircuitBreaker interface {
	Execute(ctx context.Context, name string, op Operation, fallback Operation) error
	State(name string) State
	Status(name string) Status
	Configure(name string, settings Settings)
	Reset(name string)
}

func New(telemetry Telemetry, clk clock.Clock) CircuitBreaker {
	return &circuitBreaker{
		telemetry: telemetry,
		clk:       clk,
		breakers:  map[string]*breaker{},
	}
}

type breaker struct {
	settings Settings

	state            State
	failureCount     int
	successCount     int
	halfOpenAttempts int

	lastFailure time.Time
	lastSuccess time.Time
	nextRetryAt time.Time
}

type circuitBreaker struct {
	telemetry Telemetry
	clk       clock.Clock

	mu       sync.Mutex
	breakers map[string]*breaker
}

type transition struct {
	service string
	from    State
	to      State
	count   int
}

func (cb *circuitBreaker) Execute(ctx context.Context, name string, op Operation, fallback Operation) error {
	admitted, tr := cb.admit(name)
	cb.emitTransition(ctx, tr)

	if !admitted {
		if fallback != nil {
			return fallback(ctx)
		}
		return fmt.Errorf("%s: %w", name, ErrServiceUnavailable)
	}

	started := time.Now()
	err := op(ctx)
	duration := time.Since(started)

	outcome := "success"
	if err != nil {
		outcome = "failure"
	}

	cb.telemetry.EmitMetric(ctx, types.PlatformMetric{
		Name:  "dependency_call_duration_ms",
		Value: float64(duration.Milliseconds()),
		Tags:  map[string]string{"service": name, "outcome": outcome},
	})

	if err == nil {
		tr := cb.recordSuccess(name)
		cb.emitTransition(ctx, tr)
		return nil
	}

	opened, tr := cb.recordFailure(name)
	cb.emitTransition(ctx, tr)

	if opened {
		if fallback != nil {
			return fallback(ctx)
		}
		return fmt.Errorf("%s: %w: %s", name, ErrServiceUnavailable, err.Error())
	}

	return err
}

func (cb *circuitBreaker) State(name string) State {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.get(name).state
}

func (cb *circuitBreaker) Status(name string) Status {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	b := cb.get(name)

	s := Status{
		ServiceName:  name,
		State:        b.state,
		FailureCount: b.failureCount,
	}

	if !b.lastFailure.IsZero() {
		t := b.lastFailure
		s.LastFailure = &t
	}
	if !b.lastSuccess.IsZero() {
		t := b.lastSuccess
		s.LastSuccess = &t
	}
	if b.state == StateOpen {
		t := b.nextRetryAt
		s.NextRetryAt = &t
	}

	return s
}

func (cb *circuitBreaker) Configure(name string, settings Settings) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	b := cb.get(name)
	b.settings = settings
}

func (cb *circuitBreaker) Reset(name string) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	settings := cb.get(name).settings
	cb.breakers[name] = &breaker{settings: settings, state: StateClosed}
}

// get returns the breaker for name, creating one with default
// settings on first use. Callers must hold the mutex.
func (cb *circuitBreaker) get(name string) *breaker {
	b, ok := cb.breakers[name]
	if !ok {
		b = &breaker{settings: DefaultSettings(), state: StateClosed}
		cb.breakers[name] = b
	}
	return b
}

// admit decides whether a call may proceed, lazily moving an expired
// open breaker to half open.
func (cb *circuitBreaker) admit(name string) (bool, *transition) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	b := cb.get(name)
	now := cb.clk.Now()

	switch b.state {
	case StateClosed:
		return true, nil
	case StateOpen:
		if now.Before(b.nextRetryAt) {
			return false, nil
		}
		b.state = StateHalfOpen
		b.successCount = 0
		b.halfOpenAttempts = 1
		return true, &transition{service: name, from: StateOpen, to: StateHalfOpen, count: b.failureCount}
	default: // half open
		if b.halfOpenAttempts >= b.settings.HalfOpenRequests {
			return false, nil
		}
		b.halfOpenAttempts++
		return true, nil
	}
}

func (cb *circuitBreaker) recordSuccess(name string) *transition {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	b := cb.get(name)
	b.lastSuccess = cb.clk.Now()

	switch b.state {
	case StateClosed:
		b.failureCount = 0
	case StateHalfOpen:
		b.successCount++
		if b.successCount >= b.settings.SuccessThreshold {
			b.state = StateClosed
			b.failureCount = 0
			b.successCount = 0
			b.halfOpenAttempts = 0
			b.nextRetryAt = time.Time{}
			return &transition{service: name, from: StateHalfOpen, to: StateClosed}
		}
	}

	return nil
}

func (cb *circuitBreaker) recordFailure(name string) (bool, *transition) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	b := cb.get(name)
	now := cb.clk.Now()
	b.lastFailure = now

	switch b.state {
	case StateClosed:
		b.failureCount++
		if b.failureCount >= b.settings.FailureThreshold {
			b.state = StateOpen
			b.nextRetryAt = now.Add(b.settings.Timeout)
			return true, &transition{service: name, from: StateClosed, to: StateOpen, count: b.failureCount}
		}
		return false, nil
	case StateHalfOpen:
		// a single failure while probing reopens the circuit
		b.state = StateOpen
		b.failureCount++
		b.nextRetryAt = now.Add(b.settings.Timeout)
		return true, &transition{service: name, from: StateHalfOpen, to: StateOpen, count: b.failureCount}
	default:
		return true, nil
	}
}

func severityFor(s State) types.Severity {
	switch s {
	case StateOpen:
		return types.SeverityError
	case StateHalfOpen:
		return types.SeverityWarning
	default:
		return types.SeverityInfo
	}
}

func (cb *circuitBreaker) emitTransition(ctx context.Context, tr *transition) {
	if tr == nil {
		return
	}

	cb.telemetry.EmitPlatformEvent(ctx, types.ObservabilityEvent{
		Type:     "circuit_breaker_state_changed",
		Severity: severityFor(tr.to),
		Source:   tr.service,
		Data: map[string]any{
			"service":      tr.service,
			"from":         string(tr.from),
			"to":           string(tr.to),
			"failureCount": tr.count,
		},
	})
}
