package analytics

import (
	"fmt"
	"math"

	"github.com/famcare/health-engine/pkg/types"

	"github.com/samber/lo"
)

const maxRecommendations = 5

var riskRecommendations = map[string]map[string][]string{
	types.VitalHeartRate: {
		"high":     {"Contact your healthcare provider about your heart rate readings"},
		"moderate": {"Monitor your heart rate closely over the next few hours"},
		"low":      {"Keep an eye on your heart rate and avoid strenuous activity"},
	},
	types.VitalBloodOxygen: {
		"high":     {"Seek medical advice about your oxygen saturation"},
		"moderate": {"Rest and re-measure your oxygen saturation in 15 minutes"},
		"low":      {"Re-measure your oxygen saturation while sitting still"},
	},
	types.VitalTemperature: {
		"high":     {"Contact your healthcare provider about your temperature"},
		"moderate": {"Rest, hydrate and re-check your temperature in an hour"},
		"low":      {"Re-check your temperature later today"},
	},
	types.VitalRespiratoryRate: {
		"high":     {"Seek medical advice about your breathing rate"},
		"moderate": {"Sit down, breathe calmly and re-measure"},
		"low":      {"Keep an eye on your breathing rate"},
	},
	types.VitalBloodGlucose: {
		"high":     {"Follow your care plan for out of range glucose and contact your provider"},
		"moderate": {"Check your glucose again after your next meal"},
		"low":      {"Keep monitoring your glucose levels"},
	},
	types.VitalBloodPressureSystolic: {
		"high":     {"Contact your healthcare provider about your blood pressure"},
		"moderate": {"Rest for ten minutes and re-measure your blood pressure"},
		"low":      {"Keep monitoring your blood pressure"},
	},
	types.VitalBloodPressureDiastolic: {
		"high":     {"Contact your healthcare provider about your blood pressure"},
		"moderate": {"Rest for ten minutes and re-measure your blood pressure"},
		"low":      {"Keep monitoring your blood pressure"},
	},
	types.VitalSteps: {
		"high":     {"Consider discussing your activity level with your provider"},
		"moderate": {"Try to get some light activity in today"},
		"low":      {"Keep up your daily activity routine"},
	},
}

// anomalyRiskFactor converts an anomaly into a risk contribution,
// capped at 30 points per vital.
func anomalyRiskFactor(vitalType string, a Anomaly) (types.RiskFactor, bool) {
	if !a.IsAnomaly {
		return types.RiskFactor{}, false
	}

	abs := math.Abs(a.ZScore)

	severity := "low"
	switch {
	case abs > 4:
		severity = "high"
	case abs > 3:
		severity = "moderate"
	}

	return types.RiskFactor{
		VitalType:    vitalType,
		Kind:         "anomaly",
		Contribution: math.Min(abs*10, 30),
		Severity:     severity,
		Detail:       fmt.Sprintf("%.1f standard deviations from personal baseline", abs),
	}, true
}

// trendRiskFactor compares the first half mean against the second half
// mean of the last ten readings and converts the percent change into a
// concern level between 0 and 3.
func trendRiskFactor(vitalType string, window []types.VitalReading) (types.RiskFactor, bool) {
	if len(window) < 6 {
		return types.RiskFactor{}, false
	}

	if len(window) > 10 {
		window = window[len(window)-10:]
	}

	half := len(window) / 2

	firstMean := meanOfReadings(window[:half])
	secondMean := meanOfReadings(window[half:])

	if firstMean == 0 {
		return types.RiskFactor{}, false
	}

	change := (secondMean - firstMean) / firstMean * 100
	abs := math.Abs(change)

	concern := 0
	switch {
	case abs > 20:
		concern = 3
	case abs > 10:
		concern = 2
	case abs > 5:
		concern = 1
	}

	if concern == 0 {
		return types.RiskFactor{}, false
	}

	severity := map[int]string{1: "low", 2: "moderate", 3: "high"}[concern]

	direction := "increased"
	if change < 0 {
		direction = "decreased"
	}

	return types.RiskFactor{
		VitalType:    vitalType,
		Kind:         "trend",
		Contribution: float64(concern) * 10,
		Severity:     severity,
		Detail:       fmt.Sprintf("%s by %.0f%% over recent readings", direction, abs),
	}, true
}

func riskLevel(score float64) string {
	switch {
	case score >= 70:
		return types.RiskCritical
	case score >= 50:
		return types.RiskHigh
	case score >= 25:
		return types.RiskModerate
	default:
		return types.RiskLow
	}
}

func recommendationsFor(factors []types.RiskFactor) []string {
	recommendations := make([]string, 0)

	for _, f := range factors {
		if byVital, ok := riskRecommendations[f.VitalType]; ok {
			recommendations = append(recommendations, byVital[f.Severity]...)
		}
	}

	recommendations = lo.Uniq(recommendations)
	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}

	return recommendations
}

func meanOfReadings(readings []types.VitalReading) float64 {
	values := make([]float64, len(readings))
	for i, r := range readings {
		values[i] = r.Value
	}
	return meanOf(values)
}
