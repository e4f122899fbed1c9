package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/famcare/health-engine/internal/pkg/infrastructure/clock"
	"github.com/famcare/health-engine/pkg/types"

	"github.com/matryer/is"
)

func TestScoreVitalAtOptimalScoresFull(t *testing.T) {
	is := is.New(t)

	score, ok := scoreVital(types.VitalHeartRate, 70)
	is.True(ok)
	is.Equal(100.0, score)
}

func TestScoreVitalFallsOffLinearlyWithinRange(t *testing.T) {
	is := is.New(t)

	// halfway between optimal (70) and the upper edge (100)
	score, ok := scoreVital(types.VitalHeartRate, 85)
	is.True(ok)
	is.Equal(85.0, score)
}

func TestScoreVitalPenalizesOutOfRangeReadings(t *testing.T) {
	is := is.New(t)

	outOfRange, _ := scoreVital(types.VitalHeartRate, 120)
	atEdge, _ := scoreVital(types.VitalHeartRate, 100)

	is.Equal(30.0, outOfRange)
	is.True(outOfRange < atEdge)

	farOut, _ := scoreVital(types.VitalHeartRate, 250)
	is.Equal(0.0, farOut)
}

func TestUnknownVitalTypeIsNotScored(t *testing.T) {
	is := is.New(t)

	_, ok := scoreVital("shoe_size", 42)
	is.True(!ok)
}

func TestHealthScoreUsesNeutralScoreForSilentFamilies(t *testing.T) {
	is, ctx, storage, svc := analyticsSetup(t)

	// only a cardiovascular reading is present
	svc.RecordReading(ctx, types.VitalReading{UserID: "u1", Type: types.VitalHeartRate, Value: 70})

	score, err := svc.ComputeHealthScore(ctx, "u1")
	is.NoErr(err)

	is.Equal(100.0, score.Components["cardiovascular"])
	is.Equal(neutralScore, score.Components["respiratory"])
	is.Equal(neutralScore, score.Components["metabolic"])
	is.Equal(neutralScore, score.Components["activity"])

	// 0.35*100 + 0.65*75
	is.Equal(83.8, score.Score)
	is.Equal(TrendStable, score.Trend)

	is.Equal(1, len(storage.AddHealthScoreCalls()))
}

func TestScoreTrendVerdicts(t *testing.T) {
	is := is.New(t)

	prior := func(scores ...float64) []types.HealthScore {
		out := make([]types.HealthScore, len(scores))
		for i, s := range scores {
			out[i] = types.HealthScore{Score: s}
		}
		return out
	}

	is.Equal(TrendStable, scoreTrend(80, nil))
	is.Equal(TrendImproving, scoreTrend(96, prior(90)))
	is.Equal(TrendDeclining, scoreTrend(80, prior(90, 90, 90)))
	is.Equal(TrendStable, scoreTrend(92, prior(90)))
}

func TestScoreTrendUsesTheMostRecentScores(t *testing.T) {
	is := is.New(t)

	// a week of old lows followed by seven recent 90s, stored oldest
	// first the way the score query returns them
	prior := make([]types.HealthScore, 0, 10)
	for _, s := range []float64{60, 60, 60, 90, 90, 90, 90, 90, 90, 90} {
		prior = append(prior, types.HealthScore{Score: s})
	}

	is.Equal(TrendDeclining, scoreTrend(80, prior))
}

func analyticsSetup(t *testing.T) (*is.I, context.Context, *AnalyticsStorageMock, AnalyticsService) {
	is := is.New(t)
	ctx := context.Background()

	storage := &AnalyticsStorageMock{
		GetBaselineFunc: func(ctx context.Context, userID, vitalType string) (types.PersonalizedBaseline, error) {
			return types.PersonalizedBaseline{}, ErrBaselineNotFound
		},
		SaveBaselineFunc: func(ctx context.Context, baseline types.PersonalizedBaseline) error {
			return nil
		},
		AddHealthScoreFunc: func(ctx context.Context, score types.HealthScore) error {
			return nil
		},
		QueryHealthScoresFunc: func(ctx context.Context, userID string, since time.Time) ([]types.HealthScore, error) {
			return nil, nil
		},
	}

	clk := clock.NewFake(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC))
	svc := New(storage, NewWindowStore(), nil, clk)

	return is, ctx, storage, svc
}
