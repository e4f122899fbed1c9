package analytics

import (
	"errors"
	"math"
	"time"

	"github.com/famcare/health-engine/pkg/types"
)

const (
	// MinCorrelationPairs is the number of matched reading pairs
	// required before a correlation coefficient is reported.
	MinCorrelationPairs = 10

	pairingWindow = 5 * time.Minute
)

var ErrInsufficientSamples = errors.New("insufficient samples")

// Correlate pairs two reading series by nearest timestamp within a
// five minute window (greedy, nearest match per reading of the first
// series, every reading of the second series used at most once) and
// computes the Pearson correlation coefficient over the pairs.
func Correlate(seriesA, seriesB []types.VitalReading) (types.CorrelationResult, error) {
	result := types.CorrelationResult{}

	if len(seriesA) > 0 {
		result.VitalA = seriesA[0].Type
	}
	if len(seriesB) > 0 {
		result.VitalB = seriesB[0].Type
	}

	xs, ys := pairByTimestamp(seriesA, seriesB)
	result.SampleCount = len(xs)

	if len(xs) < MinCorrelationPairs {
		return result, ErrInsufficientSamples
	}

	r := pearson(xs, ys)
	result.Coefficient = r
	result.Strength = correlationStrength(r)
	result.Direction = correlationDirection(r)

	return result, nil
}

func pairByTimestamp(seriesA, seriesB []types.VitalReading) ([]float64, []float64) {
	xs := make([]float64, 0, len(seriesA))
	ys := make([]float64, 0, len(seriesA))

	used := make([]bool, len(seriesB))

	for _, a := range seriesA {
		best := -1
		bestDistance := pairingWindow

		for i, b := range seriesB {
			if used[i] {
				continue
			}
			d := a.Timestamp.Sub(b.Timestamp)
			if d < 0 {
				d = -d
			}
			if d <= bestDistance {
				best = i
				bestDistance = d
			}
		}

		if best >= 0 {
			used[best] = true
			xs = append(xs, a.Value)
			ys = append(ys, seriesB[best].Value)
		}
	}

	return xs, ys
}

func pearson(xs, ys []float64) float64 {
	n := float64(len(xs))
	meanX := meanOf(xs)
	meanY := meanOf(ys)

	var cov, varX, varY float64
	for i := range xs {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}

	if varX == 0 || varY == 0 {
		return 0
	}

	return (cov / n) / (math.Sqrt(varX/n) * math.Sqrt(varY/n))
}

func correlationStrength(r float64) string {
	abs := math.Abs(r)
	switch {
	case abs >= 0.7:
		return "strong"
	case abs >= 0.4:
		return "moderate"
	case abs >= 0.2:
		return "weak"
	default:
		return "none"
	}
}

func correlationDirection(r float64) string {
	switch {
	case r > 0.1:
		return "positive"
	case r < -0.1:
		return "negative"
	default:
		return "none"
	}
}
