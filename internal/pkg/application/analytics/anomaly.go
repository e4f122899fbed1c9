package analytics

import (
	"math"

	"github.com/famcare/health-engine/pkg/types"
)

type Anomaly struct {
	ZScore     float64 `json:"zScore"`
	Confidence float64 `json:"confidence"`
	IsAnomaly  bool    `json:"isAnomaly"`
}

// DetectAnomaly scores a reading against a personalized baseline.
// Baselines built from few samples require a larger deviation before
// they are trusted. A zero variance baseline never reports an anomaly,
// dividing by it would propagate infinities through every consumer.
func DetectAnomaly(baseline types.PersonalizedBaseline, value float64) Anomaly {
	if baseline.SampleCount == 0 || baseline.StandardDeviation == 0 {
		return Anomaly{}
	}

	zScore := (value - baseline.Mean) / baseline.StandardDeviation

	confidence := math.Min(float64(baseline.SampleCount)/100, 1)
	adjustedThreshold := 2.5 * (2 - confidence)

	return Anomaly{
		ZScore:     zScore,
		Confidence: confidence,
		IsAnomaly:  math.Abs(zScore) > adjustedThreshold,
	}
}
