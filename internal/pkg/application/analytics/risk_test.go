package analytics

import (
	"context"
	"testing"

	"github.com/famcare/health-engine/pkg/types"
)

func TestRiskIsLowForSteadyReadings(t *testing.T) {
	is, ctx, storage, svc := analyticsSetup(t)

	storage.GetBaselineFunc = func(ctx context.Context, userID, vitalType string) (types.PersonalizedBaseline, error) {
		return types.PersonalizedBaseline{Mean: 70, StandardDeviation: 10, SampleCount: 100}, nil
	}

	for _, r := range readings("u1", types.VitalHeartRate, 70, 71, 69, 70, 70, 71, 70, 69, 70, 70) {
		svc.RecordReading(ctx, r)
	}

	risk, err := svc.AssessRisk(ctx, "u1")
	is.NoErr(err)

	is.Equal(0.0, risk.Score)
	is.Equal(types.RiskLow, risk.Overall)
	is.Equal(0, len(risk.Factors))
}

func TestRiskCombinesAnomalyAndTrendContributions(t *testing.T) {
	is, ctx, storage, svc := analyticsSetup(t)

	storage.GetBaselineFunc = func(ctx context.Context, userID, vitalType string) (types.PersonalizedBaseline, error) {
		return types.PersonalizedBaseline{Mean: 70, StandardDeviation: 10, SampleCount: 100}, nil
	}

	// five steady readings, then a sustained spike ending at z = 6
	for _, r := range readings("u1", types.VitalHeartRate, 70, 70, 70, 70, 70, 130, 130, 130, 130, 130) {
		svc.RecordReading(ctx, r)
	}

	risk, err := svc.AssessRisk(ctx, "u1")
	is.NoErr(err)

	// anomaly contribution capped at 30, trend concern 3 adds another 30
	is.Equal(60.0, risk.Score)
	is.Equal(types.RiskHigh, risk.Overall)
	is.Equal(2, len(risk.Factors))
	is.True(len(risk.Recommendations) > 0)
	is.True(len(risk.Recommendations) <= maxRecommendations)
}

func TestTrendRiskFactorConcernLevels(t *testing.T) {
	is, _, _, _ := analyticsSetup(t)

	factorFor := func(values ...float64) (types.RiskFactor, bool) {
		return trendRiskFactor(types.VitalHeartRate, readings("u1", types.VitalHeartRate, values...))
	}

	_, ok := factorFor(70, 70, 70, 70, 70, 70, 70, 70, 70, 70)
	is.True(!ok)

	f, ok := factorFor(100, 100, 100, 100, 100, 107, 107, 107, 107, 107)
	is.True(ok)
	is.Equal(10.0, f.Contribution) // 7% change, concern 1

	f, ok = factorFor(100, 100, 100, 100, 100, 115, 115, 115, 115, 115)
	is.True(ok)
	is.Equal(20.0, f.Contribution) // 15% change, concern 2

	f, ok = factorFor(100, 100, 100, 100, 100, 130, 130, 130, 130, 130)
	is.True(ok)
	is.Equal(30.0, f.Contribution) // 30% change, concern 3
}

func TestRiskScoreIsCappedAtOneHundred(t *testing.T) {
	is, ctx, storage, svc := analyticsSetup(t)

	storage.GetBaselineFunc = func(ctx context.Context, userID, vitalType string) (types.PersonalizedBaseline, error) {
		return types.PersonalizedBaseline{Mean: 70, StandardDeviation: 1, SampleCount: 100}, nil
	}

	for _, vitalType := range []string{types.VitalHeartRate, types.VitalRespiratoryRate, types.VitalBloodGlucose} {
		for _, r := range readings("u1", vitalType, 70, 70, 70, 70, 70, 200, 200, 200, 200, 200) {
			svc.RecordReading(ctx, r)
		}
	}

	risk, err := svc.AssessRisk(ctx, "u1")
	is.NoErr(err)

	is.Equal(100.0, risk.Score)
	is.Equal(types.RiskCritical, risk.Overall)
}
