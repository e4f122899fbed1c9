package analytics

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/famcare/health-engine/internal/pkg/application/circuitbreaker"
	"github.com/famcare/health-engine/internal/pkg/infrastructure/clock"
	"github.com/famcare/health-engine/pkg/types"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

var ErrBaselineNotFound = errors.New("baseline not found")

//go:generate moq -rm -out analyticsstorage_mock.go . AnalyticsStorage
type AnalyticsStorage interface {
	GetBaseline(ctx context.Context, userID, vitalType string) (types.PersonalizedBaseline, error)
	SaveBaseline(ctx context.Context, baseline types.PersonalizedBaseline) error
	AddHealthScore(ctx context.Context, score types.HealthScore) error
	QueryHealthScores(ctx context.Context, userID string, since time.Time) ([]types.HealthScore, error)
}

// AnalyticsService owns the personalized baselines and everything
// derived from them: anomaly scoring, composite health scores, risk
// assessments, cross vital correlation and alert throttling.
type AnalyticsService interface {
	RecordReading(ctx context.Context, reading types.VitalReading) []types.VitalReading
	Baseline(ctx context.Context, userID, vitalType string) (types.PersonalizedBaseline, bool)

	ComputeHealthScore(ctx context.Context, userID string) (types.HealthScore, error)
	AssessRisk(ctx context.Context, userID string) (types.RiskAssessment, error)
	CorrelateVitals(ctx context.Context, userID, vitalA, vitalB string) (types.CorrelationResult, error)

	ShouldThrottle(userID, alertType string) bool
	ShouldThrottleWithLimits(userID, alertType string, cooldown time.Duration, maxPerHour int) bool
	ResetThrottle(userID, alertType string)
}

const storeServiceName = "analytics-store"

func New(storage AnalyticsStorage, windows *WindowStore, breaker circuitbreaker.CircuitBreaker, clk clock.Clock) AnalyticsService {
	return &svc{
		storage:  storage,
		windows:  windows,
		breaker:  breaker,
		clk:      clk,
		throttle: newThrottle(clk),
	}
}

type svc struct {
	storage  AnalyticsStorage
	windows  *WindowStore
	breaker  circuitbreaker.CircuitBreaker
	clk      clock.Clock
	throttle *throttle
}

// RecordReading appends the reading to its rolling window and keeps
// the persisted baseline up to date: one is created once ten readings
// have accumulated and recomputed wholesale every ten readings after
// that. Returns the current window in arrival order.
func (s *svc) RecordReading(ctx context.Context, reading types.VitalReading) []types.VitalReading {
	window := s.windows.Append(reading)

	n := len(window)
	if n == MinSamplesForBaseline || (n >= RecomputeSampleCount && n%10 == 0) {
		baseline, ok := ComputeBaseline(reading.UserID, reading.Type, window, s.clk.Now())
		if ok {
			err := s.storage.SaveBaseline(ctx, baseline)
			if err != nil {
				log := logging.GetFromContext(ctx)
				log.Error("could not save baseline", "user_id", reading.UserID, "vital_type", reading.Type, "err", err.Error())
			}
		}
	}

	return window
}

// Baseline reads the persisted baseline through the circuit breaker.
// A missing baseline, a store failure or an open circuit all degrade
// to "no baseline", personalized checks are skipped rather than
// guessed at.
func (s *svc) Baseline(ctx context.Context, userID, vitalType string) (types.PersonalizedBaseline, bool) {
	var baseline types.PersonalizedBaseline
	found := false

	op := func(ctx context.Context) error {
		b, err := s.storage.GetBaseline(ctx, userID, vitalType)
		if err != nil {
			return err
		}
		baseline = b
		found = true
		return nil
	}

	var err error
	if s.breaker != nil {
		err = s.breaker.Execute(ctx, storeServiceName, op, func(ctx context.Context) error { return nil })
	} else {
		err = op(ctx)
	}

	if err != nil || !found {
		return types.PersonalizedBaseline{}, false
	}

	return baseline, true
}

func (s *svc) ComputeHealthScore(ctx context.Context, userID string) (types.HealthScore, error) {
	now := s.clk.Now()

	components := map[string]float64{}
	total := 0.0

	for family, vitals := range vitalFamilies {
		component := scoreFamily(vitals, func(vitalType string) (types.VitalReading, bool) {
			return s.windows.Latest(userID, vitalType)
		})
		components[family] = component
		total += component * familyWeights[family]
	}

	previous, err := s.storage.QueryHealthScores(ctx, userID, now.Add(-7*24*time.Hour))
	if err != nil {
		return types.HealthScore{}, err
	}

	score := types.HealthScore{
		UserID:     userID,
		Score:      math.Round(total*10) / 10,
		Components: components,
		Trend:      scoreTrend(total, previous),
		Timestamp:  now,
	}

	err = s.storage.AddHealthScore(ctx, score)
	if err != nil {
		return types.HealthScore{}, err
	}

	return score, nil
}

func (s *svc) AssessRisk(ctx context.Context, userID string) (types.RiskAssessment, error) {
	factors := make([]types.RiskFactor, 0)
	total := 0.0

	for _, vitalType := range s.windows.VitalTypes(userID) {
		window := s.windows.Window(userID, vitalType)
		if len(window) == 0 {
			continue
		}
		latest := window[len(window)-1]

		if baseline, ok := s.Baseline(ctx, userID, vitalType); ok {
			if factor, ok := anomalyRiskFactor(vitalType, DetectAnomaly(baseline, latest.Value)); ok {
				factors = append(factors, factor)
				total += factor.Contribution
			}
		}

		if factor, ok := trendRiskFactor(vitalType, window); ok {
			factors = append(factors, factor)
			total += factor.Contribution
		}
	}

	total = math.Min(total, 100)

	return types.RiskAssessment{
		UserID:          userID,
		Score:           total,
		Overall:         riskLevel(total),
		Factors:         factors,
		Recommendations: recommendationsFor(factors),
		Timestamp:       s.clk.Now(),
	}, nil
}

func (s *svc) CorrelateVitals(ctx context.Context, userID, vitalA, vitalB string) (types.CorrelationResult, error) {
	result, err := Correlate(s.windows.Window(userID, vitalA), s.windows.Window(userID, vitalB))
	if err != nil {
		return result, err
	}

	result.VitalA = vitalA
	result.VitalB = vitalB

	return result, nil
}

func (s *svc) ShouldThrottle(userID, alertType string) bool {
	return s.throttle.shouldThrottle(userID, alertType, DefaultThrottleCooldown, DefaultThrottleMaxPerHour)
}

func (s *svc) ShouldThrottleWithLimits(userID, alertType string, cooldown time.Duration, maxPerHour int) bool {
	return s.throttle.shouldThrottle(userID, alertType, cooldown, maxPerHour)
}

func (s *svc) ResetThrottle(userID, alertType string) {
	s.throttle.reset(userID, alertType)
}
