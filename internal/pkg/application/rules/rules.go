package rules

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/famcare/health-engine/internal/pkg/application/analytics"
	"github.com/famcare/health-engine/internal/pkg/infrastructure/clock"
	"github.com/famcare/health-engine/pkg/types"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

const (
	AlertTypeVitalCritical = "vital_critical"
	AlertTypeVitalAbnormal = "vital_abnormal"

	baselineCacheTTL = 5 * time.Minute

	minReadingsForTrend = 5
	trendWindowSize     = 10
	trendSlopeThreshold = 0.5
	trendDeviationRatio = 0.2
)

//go:generate moq -rm -out analytics_mock.go . Analytics
type Analytics interface {
	RecordReading(ctx context.Context, reading types.VitalReading) []types.VitalReading
	Baseline(ctx context.Context, userID, vitalType string) (types.PersonalizedBaseline, bool)
	ShouldThrottle(userID, alertType string) bool
}

//go:generate moq -rm -out alertstarter_mock.go . AlertStarter
type AlertStarter interface {
	StartEscalation(ctx context.Context, alertID, alertType, userID, familyID string) (*types.ActiveEscalation, error)
}

//go:generate moq -rm -out telemetry_mock.go . Telemetry
type Telemetry interface {
	EmitHealthEvent(ctx context.Context, evt types.ObservabilityEvent)
}

// RuleEngine evaluates incoming vital readings against the clinical
// threshold table, recent trends and, when a personalized baseline
// exists, the individual's own normal range.
type RuleEngine interface {
	EvaluateVital(ctx context.Context, reading types.VitalReading) types.RuleEvaluation
	EvaluateVitalWithPersonalization(ctx context.Context, reading types.VitalReading) types.RuleEvaluation
	ProcessVitalAndEmit(ctx context.Context, reading types.VitalReading) (types.RuleEvaluation, error)
}

func New(a Analytics, starter AlertStarter, t Telemetry, cfg *Config, clk clock.Clock) RuleEngine {
	thresholds := map[string][]ThresholdRow{}
	for _, row := range cfg.Thresholds {
		thresholds[row.VitalType] = append(thresholds[row.VitalType], row)
	}

	for vitalType := range thresholds {
		rows := thresholds[vitalType]
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Severity.Rank() > rows[j].Severity.Rank()
		})
	}

	return &engine{
		analytics:  a,
		starter:    starter,
		telemetry:  t,
		thresholds: thresholds,
		clk:        clk,
		baselines:  map[string]cachedBaseline{},
	}
}

type engine struct {
	analytics  Analytics
	starter    AlertStarter
	telemetry  Telemetry
	thresholds map[string][]ThresholdRow
	clk        clock.Clock

	mu        sync.Mutex
	baselines map[string]cachedBaseline
}

type cachedBaseline struct {
	baseline  types.PersonalizedBaseline
	found     bool
	fetchedAt time.Time
}

// EvaluateVital appends the reading to its rolling window and checks
// it against the configured thresholds, most severe band first, then
// against the window's recent trend. The first breach wins.
func (e *engine) EvaluateVital(ctx context.Context, reading types.VitalReading) types.RuleEvaluation {
	if reading.Timestamp.IsZero() {
		reading.Timestamp = e.clk.Now()
	}

	window := e.analytics.RecordReading(ctx, reading)

	for _, row := range e.thresholds[reading.Type] {
		if reading.Value < row.Min {
			return breachEvaluation(reading, row, "below", row.Min)
		}
		if reading.Value > row.Max {
			return breachEvaluation(reading, row, "above", row.Max)
		}
	}

	if evaluation, ok := trendEvaluation(reading, window); ok {
		return evaluation
	}

	return types.RuleEvaluation{}
}

// EvaluateVitalWithPersonalization runs the standard evaluation and
// then scores the reading against the user's personalized baseline.
// An anomaly the threshold and trend checks missed becomes a triggered
// result of its own, an anomaly alongside an already triggered result
// is attached as metadata.
func (e *engine) EvaluateVitalWithPersonalization(ctx context.Context, reading types.VitalReading) types.RuleEvaluation {
	evaluation := e.EvaluateVital(ctx, reading)

	baseline, found := e.cachedBaselineFor(ctx, reading.UserID, reading.Type)
	if !found {
		return evaluation
	}

	anomaly := analytics.DetectAnomaly(baseline, reading.Value)
	if !anomaly.IsAnomaly {
		return evaluation
	}

	zScore := anomaly.ZScore

	if evaluation.Triggered {
		evaluation.IsPersonalizedAnomaly = true
		evaluation.ZScore = &zScore
		return evaluation
	}

	severity := types.SeverityWarning
	if math.Abs(zScore) > 5 {
		severity = types.SeverityCritical
	} else if math.Abs(zScore) > 4 {
		severity = types.SeverityError
	}

	return types.RuleEvaluation{
		Triggered:             true,
		Severity:              severity,
		Message:               fmt.Sprintf("%s of %s is unusual compared to the personal baseline (z-score %.1f)", vitalName(reading.Type), formatValue(reading.Value), zScore),
		RecommendedAction:     actionForSeverity(severity, reading.Type, ""),
		IsPersonalizedAnomaly: true,
		ZScore:                &zScore,
	}
}

// ProcessVitalAndEmit evaluates the reading and, when triggered, emits
// a health event and opens an escalation. Alerts below error severity
// are subject to throttling so that a flapping vital does not page the
// whole family every few minutes.
func (e *engine) ProcessVitalAndEmit(ctx context.Context, reading types.VitalReading) (types.RuleEvaluation, error) {
	evaluation := e.EvaluateVitalWithPersonalization(ctx, reading)
	if !evaluation.Triggered {
		return evaluation, nil
	}

	alertType := AlertTypeVitalAbnormal
	if evaluation.Severity == types.SeverityCritical {
		alertType = AlertTypeVitalCritical
	}

	if evaluation.Severity.Rank() < types.SeverityError.Rank() {
		if e.analytics.ShouldThrottle(reading.UserID, alertType) {
			log := logging.GetFromContext(ctx)
			log.Debug("alert throttled", "user_id", reading.UserID, "alert_type", alertType)
			return evaluation, nil
		}
	}

	alertID := uuid.NewString()
	evaluation.AlertID = alertID
	evaluation.AlertType = alertType

	data := map[string]any{
		"alertID":   alertID,
		"alertType": alertType,
		"vitalType": reading.Type,
		"value":     reading.Value,
		"message":   evaluation.Message,
	}
	if evaluation.ThresholdBreached != "" {
		data["thresholdBreached"] = evaluation.ThresholdBreached
	}
	if evaluation.ZScore != nil {
		data["zScore"] = *evaluation.ZScore
	}

	e.telemetry.EmitHealthEvent(ctx, types.ObservabilityEvent{
		CorrelationID: alertID,
		Type:          "vital_alert",
		Severity:      evaluation.Severity,
		UserID:        reading.UserID,
		Data:          data,
	})

	_, err := e.starter.StartEscalation(ctx, alertID, alertType, reading.UserID, "")
	if err != nil {
		log := logging.GetFromContext(ctx)
		log.Error("could not start escalation", "alert_id", alertID, "user_id", reading.UserID, "err", err.Error())
		return evaluation, err
	}

	return evaluation, nil
}

func (e *engine) cachedBaselineFor(ctx context.Context, userID, vitalType string) (types.PersonalizedBaseline, bool) {
	key := userID + "_" + vitalType
	now := e.clk.Now()

	e.mu.Lock()
	cached, ok := e.baselines[key]
	e.mu.Unlock()

	if ok && now.Sub(cached.fetchedAt) < baselineCacheTTL {
		return cached.baseline, cached.found
	}

	baseline, found := e.analytics.Baseline(ctx, userID, vitalType)

	e.mu.Lock()
	e.baselines[key] = cachedBaseline{baseline: baseline, found: found, fetchedAt: now}
	e.mu.Unlock()

	return baseline, found
}

func breachEvaluation(reading types.VitalReading, row ThresholdRow, direction string, limit float64) types.RuleEvaluation {
	return types.RuleEvaluation{
		Triggered:         true,
		Severity:          row.Severity,
		ThresholdBreached: fmt.Sprintf("%s_%s_%s", reading.Type, direction, formatValue(limit)),
		Message:           fmt.Sprintf("%s of %s is %s the %s limit of %s", vitalName(reading.Type), formatValue(reading.Value), direction, row.Severity, formatValue(limit)),
		RecommendedAction: actionForSeverity(row.Severity, reading.Type, direction),
	}
}

func trendEvaluation(reading types.VitalReading, window []types.VitalReading) (types.RuleEvaluation, bool) {
	if len(window) < minReadingsForTrend {
		return types.RuleEvaluation{}, false
	}

	recent := window
	if len(recent) > trendWindowSize {
		recent = recent[len(recent)-trendWindowSize:]
	}

	values := lo.Map(recent, func(r types.VitalReading, _ int) float64 { return r.Value })

	slope := olsSlope(values)
	mean := lo.Sum(values) / float64(len(values))
	if mean == 0 {
		return types.RuleEvaluation{}, false
	}

	deviation := math.Abs(reading.Value-mean) / math.Abs(mean)
	if math.Abs(slope) <= trendSlopeThreshold || deviation <= trendDeviationRatio {
		return types.RuleEvaluation{}, false
	}

	wording := "increasing"
	if slope < 0 {
		wording = "decreasing"
	}

	return types.RuleEvaluation{
		Triggered:         true,
		Severity:          types.SeverityWarning,
		Message:           fmt.Sprintf("%s is rapidly %s", vitalName(reading.Type), wording),
		RecommendedAction: "Monitor closely and take another reading shortly",
	}, true
}

// olsSlope fits an ordinary least squares line through the values with
// their index as the x axis and returns its slope.
func olsSlope(values []float64) float64 {
	n := float64(len(values))
	if n < 2 {
		return 0
	}

	meanX := (n - 1) / 2
	meanY := lo.Sum(values) / n

	num := 0.0
	den := 0.0
	for i, v := range values {
		dx := float64(i) - meanX
		num += dx * (v - meanY)
		den += dx * dx
	}

	if den == 0 {
		return 0
	}

	return num / den
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var vitalNames = map[string]string{
	types.VitalHeartRate:              "Heart rate",
	types.VitalBloodOxygen:            "Blood oxygen",
	types.VitalTemperature:            "Body temperature",
	types.VitalRespiratoryRate:        "Respiratory rate",
	types.VitalBloodGlucose:           "Blood glucose",
	types.VitalBloodPressureSystolic:  "Systolic blood pressure",
	types.VitalBloodPressureDiastolic: "Diastolic blood pressure",
	types.VitalSteps:                  "Step count",
}

func vitalName(vitalType string) string {
	if name, ok := vitalNames[vitalType]; ok {
		return name
	}
	return vitalType
}

var selfCareAdvice = map[string]map[string]string{
	types.VitalHeartRate: {
		"below": "Rest, stay warm and take another reading in a few minutes",
		"above": "Sit down, breathe slowly and take another reading in a few minutes",
	},
	types.VitalBloodOxygen: {
		"below": "Sit upright, take deep breaths and re-measure in a few minutes",
	},
	types.VitalTemperature: {
		"below": "Move somewhere warm and re-measure in a few minutes",
		"above": "Drink water, rest and re-measure in half an hour",
	},
	types.VitalBloodGlucose: {
		"below": "Have a fast acting carbohydrate and re-measure in fifteen minutes",
		"above": "Drink water and re-measure in an hour",
	},
}

func actionForSeverity(severity types.Severity, vitalType, direction string) string {
	switch severity {
	case types.SeverityCritical:
		return "Seek immediate medical attention"
	case types.SeverityError:
		return "Contact your healthcare provider today"
	default:
		if advice, ok := selfCareAdvice[vitalType][direction]; ok {
			return advice
		}
		return "Take another reading in a few minutes and rest"
	}
}
