package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/famcare/health-engine/pkg/types"
)

const (
	// MinSamplesForBaseline is the number of accumulated readings
	// required before a personalized baseline is created.
	MinSamplesForBaseline = 10
	// RecomputeSampleCount is the accumulation level from which the
	// baseline is periodically recomputed (replaced wholesale).
	RecomputeSampleCount = 20
)

// ComputeBaseline derives a personalized statistical profile from a
// user's accumulated readings. It reports false when fewer than
// MinSamplesForBaseline readings are available.
func ComputeBaseline(userID, vitalType string, readings []types.VitalReading, now time.Time) (types.PersonalizedBaseline, bool) {
	if len(readings) < MinSamplesForBaseline {
		return types.PersonalizedBaseline{}, false
	}

	values := make([]float64, len(readings))
	for i, r := range readings {
		values[i] = r.Value
	}

	mean := meanOf(values)

	variance := 0.0
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(values))

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return types.PersonalizedBaseline{
		UserID:            userID,
		VitalType:         vitalType,
		Mean:              mean,
		StandardDeviation: math.Sqrt(variance),
		Min:               sorted[0],
		Max:               sorted[len(sorted)-1],
		SampleCount:       len(values),
		Percentiles: types.Percentiles{
			P5:  percentile(sorted, 5),
			P25: percentile(sorted, 25),
			P50: percentile(sorted, 50),
			P75: percentile(sorted, 75),
			P95: percentile(sorted, 95),
		},
		LastUpdated: now,
	}, true
}

// percentile interpolates linearly between sorted order ranks.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if len(sorted) == 1 {
		return sorted[0]
	}

	rank := p / 100 * float64(len(sorted)-1)
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))

	if lower == upper {
		return sorted[lower]
	}

	frac := rank - float64(lower)
	return sorted[lower] + (sorted[upper]-sorted[lower])*frac
}

func meanOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
