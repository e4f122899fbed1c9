package analytics

import (
	"math"

	"github.com/famcare/health-engine/pkg/types"
)

type vitalRange struct {
	min     float64
	max     float64
	optimal float64
}

var vitalRanges = map[string]vitalRange{
	types.VitalHeartRate:              {min: 50, max: 100, optimal: 70},
	types.VitalBloodPressureSystolic:  {min: 100, max: 140, optimal: 115},
	types.VitalBloodPressureDiastolic: {min: 60, max: 90, optimal: 75},
	types.VitalBloodOxygen:            {min: 94, max: 100, optimal: 98},
	types.VitalRespiratoryRate:        {min: 12, max: 20, optimal: 16},
	types.VitalBloodGlucose:           {min: 70, max: 140, optimal: 95},
	types.VitalTemperature:            {min: 36.0, max: 38.0, optimal: 36.8},
	types.VitalSteps:                  {min: 2000, max: 30000, optimal: 8000},
}

var vitalFamilies = map[string][]string{
	"cardiovascular": {types.VitalHeartRate, types.VitalBloodPressureSystolic, types.VitalBloodPressureDiastolic},
	"respiratory":    {types.VitalBloodOxygen, types.VitalRespiratoryRate},
	"metabolic":      {types.VitalBloodGlucose, types.VitalTemperature},
	"activity":       {types.VitalSteps},
}

var familyWeights = map[string]float64{
	"cardiovascular": 0.35,
	"respiratory":    0.25,
	"metabolic":      0.25,
	"activity":       0.15,
}

// neutralScore is used for vital families with no recent readings.
const neutralScore = 75.0

const (
	TrendImproving = "improving"
	TrendStable    = "stable"
	TrendDeclining = "declining"
)

// scoreVital maps a reading onto 0-100. Readings within range score on
// a linear falloff from the optimal point, readings outside score on a
// steeper penalty proportional to how far outside they are.
func scoreVital(vitalType string, value float64) (float64, bool) {
	r, ok := vitalRanges[vitalType]
	if !ok {
		return 0, false
	}

	if value >= r.min && value <= r.max {
		span := r.optimal - r.min
		if value > r.optimal {
			span = r.max - r.optimal
		}
		if span == 0 {
			return 100, true
		}
		return 100 - 30*math.Abs(value-r.optimal)/span, true
	}

	outside := r.min - value
	if value > r.max {
		outside = value - r.max
	}

	width := r.max - r.min
	score := 70 - 100*outside/width

	return math.Max(score, 0), true
}

func scoreFamily(vitals []string, latest func(vitalType string) (types.VitalReading, bool)) float64 {
	sum := 0.0
	count := 0

	for _, vt := range vitals {
		reading, ok := latest(vt)
		if !ok {
			continue
		}
		if score, ok := scoreVital(vt, reading.Value); ok {
			sum += score
			count++
		}
	}

	if count == 0 {
		return neutralScore
	}

	return sum / float64(count)
}

func scoreTrend(current float64, previous []types.HealthScore) string {
	if len(previous) == 0 {
		return TrendStable
	}

	// scores arrive oldest first, at most the seven most recent count
	if len(previous) > 7 {
		previous = previous[len(previous)-7:]
	}

	sum := 0.0
	for _, s := range previous {
		sum += s.Score
	}
	mean := sum / float64(len(previous))

	switch {
	case current > mean+5:
		return TrendImproving
	case current < mean-5:
		return TrendDeclining
	default:
		return TrendStable
	}
}
