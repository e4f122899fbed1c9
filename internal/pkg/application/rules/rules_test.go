package rules

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/famcare/health-engine/internal/pkg/application/analytics"
	"github.com/famcare/health-engine/internal/pkg/infrastructure/clock"
	"github.com/famcare/health-engine/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/matryer/is"
)

func TestInRangeReadingDoesNotTrigger(t *testing.T) {
	is, ctx, f := rulesSetup(t)

	evaluation := f.engine.EvaluateVital(ctx, reading("u1", types.VitalHeartRate, 72))

	is.True(!evaluation.Triggered)
}

func TestBoundaryValueDoesNotTrigger(t *testing.T) {
	is, ctx, f := rulesSetup(t)

	// thresholds are strict, sitting exactly on the warning limit is fine
	evaluation := f.engine.EvaluateVital(ctx, reading("u1", types.VitalHeartRate, 50))

	is.True(!evaluation.Triggered)
}

func TestElevatedHeartRateTriggersErrorSeverity(t *testing.T) {
	is, ctx, f := rulesSetup(t)

	evaluation := f.engine.EvaluateVital(ctx, reading("u1", types.VitalHeartRate, 145))

	is.True(evaluation.Triggered)
	is.Equal(types.SeverityError, evaluation.Severity)
	is.Equal("heart_rate_above_120", evaluation.ThresholdBreached)
	is.Equal("Contact your healthcare provider today", evaluation.RecommendedAction)
}

func TestMostSevereBandIsCheckedFirst(t *testing.T) {
	is, ctx, f := rulesSetup(t)

	evaluation := f.engine.EvaluateVital(ctx, reading("u1", types.VitalHeartRate, 160))

	is.Equal(types.SeverityCritical, evaluation.Severity)
	is.Equal("heart_rate_above_150", evaluation.ThresholdBreached)
	is.Equal("Seek immediate medical attention", evaluation.RecommendedAction)
}

func TestLowBloodOxygenBreachKey(t *testing.T) {
	is, ctx, f := rulesSetup(t)

	evaluation := f.engine.EvaluateVital(ctx, reading("u1", types.VitalBloodOxygen, 88))

	is.Equal(types.SeverityError, evaluation.Severity)
	is.Equal("blood_oxygen_below_90", evaluation.ThresholdBreached)
}

func TestRapidTrendTriggersWarning(t *testing.T) {
	is, ctx, f := rulesSetup(t)

	var evaluation types.RuleEvaluation
	for _, v := range []float64{70, 72, 74, 76, 78, 95} {
		evaluation = f.engine.EvaluateVital(ctx, reading("u1", types.VitalHeartRate, v))
	}

	is.True(evaluation.Triggered)
	is.Equal(types.SeverityWarning, evaluation.Severity)
	is.Equal("Heart rate is rapidly increasing", evaluation.Message)
}

func TestPersonalizedAnomalySurfacesWhenThresholdsPass(t *testing.T) {
	is, ctx, f := rulesSetup(t)

	f.analytics.BaselineFunc = func(ctx context.Context, userID, vitalType string) (types.PersonalizedBaseline, bool) {
		return types.PersonalizedBaseline{UserID: userID, VitalType: vitalType, Mean: 70, StandardDeviation: 5, SampleCount: 100}, true
	}

	// 95 bpm is inside every configured band but five standard
	// deviations above this person's own normal
	evaluation := f.engine.EvaluateVitalWithPersonalization(ctx, reading("u1", types.VitalHeartRate, 95))

	is.True(evaluation.Triggered)
	is.True(evaluation.IsPersonalizedAnomaly)
	is.Equal(types.SeverityError, evaluation.Severity)
	is.Equal(5.0, *evaluation.ZScore)
}

func TestAnomalyAlongsideTriggerBecomesMetadata(t *testing.T) {
	is, ctx, f := rulesSetup(t)

	f.analytics.BaselineFunc = func(ctx context.Context, userID, vitalType string) (types.PersonalizedBaseline, bool) {
		return types.PersonalizedBaseline{Mean: 70, StandardDeviation: 5, SampleCount: 100}, true
	}

	evaluation := f.engine.EvaluateVitalWithPersonalization(ctx, reading("u1", types.VitalHeartRate, 145))

	is.Equal(types.SeverityError, evaluation.Severity)
	is.Equal("heart_rate_above_120", evaluation.ThresholdBreached)
	is.True(evaluation.IsPersonalizedAnomaly)
	is.Equal(15.0, *evaluation.ZScore)
}

func TestBaselineIsCachedForFiveMinutes(t *testing.T) {
	is, ctx, f := rulesSetup(t)

	f.analytics.BaselineFunc = func(ctx context.Context, userID, vitalType string) (types.PersonalizedBaseline, bool) {
		return types.PersonalizedBaseline{Mean: 70, StandardDeviation: 5, SampleCount: 100}, true
	}

	f.engine.EvaluateVitalWithPersonalization(ctx, reading("u1", types.VitalHeartRate, 72))
	f.engine.EvaluateVitalWithPersonalization(ctx, reading("u1", types.VitalHeartRate, 73))
	is.Equal(1, len(f.analytics.BaselineCalls()))

	f.clk.Advance(6 * time.Minute)
	f.engine.EvaluateVitalWithPersonalization(ctx, reading("u1", types.VitalHeartRate, 74))
	is.Equal(2, len(f.analytics.BaselineCalls()))
}

func TestProcessEmitsEventAndStartsEscalation(t *testing.T) {
	is, ctx, f := rulesSetup(t)

	evaluation, err := f.engine.ProcessVitalAndEmit(ctx, reading("u1", types.VitalHeartRate, 160))
	is.NoErr(err)
	is.True(evaluation.Triggered)

	is.Equal(1, len(f.telemetry.EmitHealthEventCalls()))
	evt := f.telemetry.EmitHealthEventCalls()[0].Evt
	is.Equal("vital_alert", evt.Type)
	is.Equal(types.SeverityCritical, evt.Severity)

	is.Equal(1, len(f.starter.StartEscalationCalls()))
	call := f.starter.StartEscalationCalls()[0]
	is.Equal(AlertTypeVitalCritical, call.AlertType)
	is.Equal("u1", call.UserID)
	is.Equal(evt.CorrelationID, call.AlertID)
}

func TestWarningAlertsCanBeThrottled(t *testing.T) {
	is, ctx, f := rulesSetup(t)

	f.analytics.ShouldThrottleFunc = func(userID, alertType string) bool { return true }

	evaluation, err := f.engine.ProcessVitalAndEmit(ctx, reading("u1", types.VitalHeartRate, 105))
	is.NoErr(err)
	is.True(evaluation.Triggered)
	is.Equal(types.SeverityWarning, evaluation.Severity)

	is.Equal(0, len(f.telemetry.EmitHealthEventCalls()))
	is.Equal(0, len(f.starter.StartEscalationCalls()))
}

func TestCriticalAlertsBypassThrottling(t *testing.T) {
	is, ctx, f := rulesSetup(t)

	f.analytics.ShouldThrottleFunc = func(userID, alertType string) bool { return true }

	_, err := f.engine.ProcessVitalAndEmit(ctx, reading("u1", types.VitalHeartRate, 160))
	is.NoErr(err)

	is.Equal(1, len(f.starter.StartEscalationCalls()))
	is.Equal(0, len(f.analytics.ShouldThrottleCalls()))
}

func TestVitalReadingHandlerPublishesCreatedAlerts(t *testing.T) {
	is, ctx, f := rulesSetup(t)

	messenger := &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			return nil
		},
	}

	msg := &messaging.IncomingTopicMessageMock{
		BodyFunc: func() []byte {
			b, _ := json.Marshal(reading("u1", types.VitalHeartRate, 160))
			return b
		},
	}

	handler := NewVitalReadingHandler(messenger, f.engine, f.clk)
	handler(ctx, msg, slog.Default())

	is.Equal(1, len(messenger.PublishOnTopicCalls()))

	published := messenger.PublishOnTopicCalls()[0].Message
	is.Equal("alert.created", published.TopicName())

	alert := types.AlertCreated{}
	is.NoErr(json.Unmarshal(published.Body(), &alert))
	is.Equal(AlertTypeVitalCritical, alert.AlertType)
	is.Equal("u1", alert.UserID)
	is.Equal(types.SeverityCritical, alert.Severity)
	is.Equal(f.clk.Now(), alert.Timestamp)

	is.Equal(alert.AlertID, f.starter.StartEscalationCalls()[0].AlertID)
}

func TestVitalReadingHandlerStaysQuietWhenNothingTriggers(t *testing.T) {
	is, ctx, f := rulesSetup(t)

	messenger := &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			return nil
		},
	}

	msg := &messaging.IncomingTopicMessageMock{
		BodyFunc: func() []byte {
			b, _ := json.Marshal(reading("u1", types.VitalHeartRate, 72))
			return b
		},
	}

	handler := NewVitalReadingHandler(messenger, f.engine, f.clk)
	handler(ctx, msg, slog.Default())

	is.Equal(0, len(messenger.PublishOnTopicCalls()))
}

type fixture struct {
	analytics *AnalyticsMock
	starter   *AlertStarterMock
	telemetry *TelemetryMock
	engine    RuleEngine
	clk       *clock.Fake
}

func rulesSetup(t *testing.T) (*is.I, context.Context, *fixture) {
	is := is.New(t)

	windows := analytics.NewWindowStore()

	f := &fixture{
		analytics: &AnalyticsMock{
			RecordReadingFunc: func(ctx context.Context, r types.VitalReading) []types.VitalReading {
				return windows.Append(r)
			},
			BaselineFunc: func(ctx context.Context, userID, vitalType string) (types.PersonalizedBaseline, bool) {
				return types.PersonalizedBaseline{}, false
			},
			ShouldThrottleFunc: func(userID, alertType string) bool { return false },
		},
		starter: &AlertStarterMock{
			StartEscalationFunc: func(ctx context.Context, alertID, alertType, userID, familyID string) (*types.ActiveEscalation, error) {
				return &types.ActiveEscalation{AlertID: alertID}, nil
			},
		},
		telemetry: &TelemetryMock{
			EmitHealthEventFunc: func(ctx context.Context, evt types.ObservabilityEvent) {},
		},
		clk: clock.NewFake(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)),
	}

	f.engine = New(f.analytics, f.starter, f.telemetry, DefaultConfig(), f.clk)

	return is, context.Background(), f
}

func reading(userID, vitalType string, value float64) types.VitalReading {
	return types.VitalReading{UserID: userID, Type: vitalType, Value: value}
}
