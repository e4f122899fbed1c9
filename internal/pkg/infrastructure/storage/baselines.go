package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/famcare/health-engine/pkg/types"

	"github.com/jackc/pgx/v5"
)

func (s *Storage) SaveBaseline(ctx context.Context, baseline types.PersonalizedBaseline) error {
	if baseline.UserID == "" || baseline.VitalType == "" {
		return ErrNoID
	}

	percentiles, err := json.Marshal(baseline.Percentiles)
	if err != nil {
		return err
	}

	args := pgx.NamedArgs{
		"user_id":      baseline.UserID,
		"vital_type":   baseline.VitalType,
		"mean":         baseline.Mean,
		"std_dev":      baseline.StandardDeviation,
		"min_value":    baseline.Min,
		"max_value":    baseline.Max,
		"sample_count": baseline.SampleCount,
		"percentiles":  percentiles,
		"last_updated": baseline.LastUpdated,
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO baselines (user_id, vital_type, mean, std_dev, min_value, max_value, sample_count, percentiles, last_updated)
		VALUES (@user_id, @vital_type, @mean, @std_dev, @min_value, @max_value, @sample_count, @percentiles, @last_updated)
		ON CONFLICT (user_id, vital_type) DO UPDATE
		SET mean = EXCLUDED.mean, std_dev = EXCLUDED.std_dev, min_value = EXCLUDED.min_value, max_value = EXCLUDED.max_value,
			sample_count = EXCLUDED.sample_count, percentiles = EXCLUDED.percentiles, last_updated = EXCLUDED.last_updated
	`, args)
	if err != nil {
		return err
	}

	return nil
}

func (s *Storage) GetBaseline(ctx context.Context, userID, vitalType string) (types.PersonalizedBaseline, error) {
	condition := &Condition{}
	for _, f := range []ConditionFunc{WithUserID(userID), WithVitalType(vitalType)} {
		f(condition)
	}

	baseline := types.PersonalizedBaseline{UserID: userID, VitalType: vitalType}

	var percentiles []byte

	err := s.pool.QueryRow(ctx, `
		SELECT mean, std_dev, min_value, max_value, sample_count, percentiles, last_updated
		FROM baselines
		WHERE `+condition.Where(), condition.NamedArgs()).
		Scan(&baseline.Mean, &baseline.StandardDeviation, &baseline.Min, &baseline.Max, &baseline.SampleCount, &percentiles, &baseline.LastUpdated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.PersonalizedBaseline{}, ErrNoRows
		}
		return types.PersonalizedBaseline{}, err
	}

	err = json.Unmarshal(percentiles, &baseline.Percentiles)
	if err != nil {
		return types.PersonalizedBaseline{}, err
	}

	return baseline, nil
}

func (s *Storage) AddHealthScore(ctx context.Context, score types.HealthScore) error {
	if score.UserID == "" {
		return ErrNoID
	}

	components, err := json.Marshal(score.Components)
	if err != nil {
		return err
	}

	args := pgx.NamedArgs{
		"user_id":    score.UserID,
		"score":      score.Score,
		"components": components,
		"trend":      score.Trend,
		"time":       score.Timestamp,
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO health_scores (user_id, score, components, trend, time)
		VALUES (@user_id, @score, @components, @trend, @time)
		ON CONFLICT (user_id, time) DO UPDATE SET score = EXCLUDED.score, components = EXCLUDED.components, trend = EXCLUDED.trend
	`, args)
	if err != nil {
		return err
	}

	return nil
}

func (s *Storage) QueryHealthScores(ctx context.Context, userID string, since time.Time) ([]types.HealthScore, error) {
	condition := &Condition{}
	for _, f := range []ConditionFunc{WithUserID(userID), WithSince(since)} {
		f(condition)
	}

	rows, err := s.pool.Query(ctx, `
		SELECT user_id, score, components, trend, time
		FROM health_scores
		WHERE `+condition.Where()+`
		ORDER BY time ASC
	`, condition.NamedArgs())
	if err != nil {
		return nil, err
	}

	scores := make([]types.HealthScore, 0)

	var components []byte
	score := types.HealthScore{}

	_, err = pgx.ForEachRow(rows, []any{&score.UserID, &score.Score, &components, &score.Trend, &score.Timestamp}, func() error {
		s := score
		if err := json.Unmarshal(components, &s.Components); err != nil {
			return err
		}
		scores = append(scores, s)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return scores, nil
}
