package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/famcare/health-engine/pkg/types"

	"github.com/matryer/is"
)

func TestBaselineRequiresTenReadings(t *testing.T) {
	is := is.New(t)

	_, ok := ComputeBaseline("u1", types.VitalHeartRate, readings("u1", types.VitalHeartRate, 70, 70, 70, 70, 70, 70, 70, 70, 70), time.Now())

	is.True(!ok)
}

func TestBaselineStatistics(t *testing.T) {
	is := is.New(t)
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	b, ok := ComputeBaseline("u1", types.VitalHeartRate, readings("u1", types.VitalHeartRate, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10), now)

	is.True(ok)
	is.Equal("u1", b.UserID)
	is.Equal(types.VitalHeartRate, b.VitalType)
	is.Equal(5.5, b.Mean)
	is.Equal(math.Sqrt(8.25), b.StandardDeviation)
	is.Equal(1.0, b.Min)
	is.Equal(10.0, b.Max)
	is.Equal(10, b.SampleCount)
	is.Equal(now, b.LastUpdated)
}

func TestBaselinePercentilesInterpolateBetweenRanks(t *testing.T) {
	is := is.New(t)

	b, ok := ComputeBaseline("u1", types.VitalHeartRate, readings("u1", types.VitalHeartRate, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10), time.Now())

	is.True(ok)
	is.Equal(1.45, b.Percentiles.P5)
	is.Equal(3.25, b.Percentiles.P25)
	is.Equal(5.5, b.Percentiles.P50)
	is.Equal(7.75, b.Percentiles.P75)
	is.Equal(9.55, b.Percentiles.P95)
}

func TestAnomalyAgainstConfidentBaseline(t *testing.T) {
	is := is.New(t)

	baseline := types.PersonalizedBaseline{Mean: 70, StandardDeviation: 10, SampleCount: 100}

	a := DetectAnomaly(baseline, 130)
	is.Equal(6.0, a.ZScore)
	is.Equal(1.0, a.Confidence)
	is.True(a.IsAnomaly)

	a = DetectAnomaly(baseline, 75)
	is.Equal(0.5, a.ZScore)
	is.True(!a.IsAnomaly)
}

func TestLowSampleBaselineRequiresLargerDeviation(t *testing.T) {
	is := is.New(t)

	// ten samples means confidence 0.1 and an adjusted threshold of 4.75
	baseline := types.PersonalizedBaseline{Mean: 70, StandardDeviation: 10, SampleCount: 10}

	is.True(!DetectAnomaly(baseline, 115).IsAnomaly) // z = 4.5
	is.True(DetectAnomaly(baseline, 120).IsAnomaly)  // z = 5.0
}

func TestZeroVarianceBaselineNeverReportsAnomalies(t *testing.T) {
	is := is.New(t)

	baseline := types.PersonalizedBaseline{Mean: 70, StandardDeviation: 0, SampleCount: 100}

	a := DetectAnomaly(baseline, 200)
	is.True(!a.IsAnomaly)
	is.Equal(0.0, a.Confidence)
	is.Equal(0.0, a.ZScore)
}

func TestWindowEvictsOldestReadingFirst(t *testing.T) {
	is := is.New(t)

	w := NewWindowStore()

	for i := 0; i < MaxWindowSize+5; i++ {
		w.Append(types.VitalReading{UserID: "u1", Type: types.VitalHeartRate, Value: float64(i)})
	}

	window := w.Window("u1", types.VitalHeartRate)
	is.Equal(MaxWindowSize, len(window))
	is.Equal(5.0, window[0].Value)
	is.Equal(float64(MaxWindowSize+4), window[len(window)-1].Value)
}

func readings(userID, vitalType string, values ...float64) []types.VitalReading {
	ts := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	out := make([]types.VitalReading, len(values))
	for i, v := range values {
		out[i] = types.VitalReading{
			UserID:    userID,
			Type:      vitalType,
			Value:     v,
			Timestamp: ts.Add(time.Duration(i) * time.Minute),
		}
	}
	return out
}
