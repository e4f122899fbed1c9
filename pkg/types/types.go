package types

import (
	"time"
)

const (
	VitalHeartRate              = "heart_rate"
	VitalBloodOxygen            = "blood_oxygen"
	VitalTemperature            = "temperature"
	VitalRespiratoryRate        = "respiratory_rate"
	VitalBloodGlucose           = "blood_glucose"
	VitalBloodPressureSystolic  = "blood_pressure_systolic"
	VitalBloodPressureDiastolic = "blood_pressure_diastolic"
	VitalSteps                  = "steps"
)

type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warn"
	SeverityError    Severity = "error"
	SeverityCritical Severity = "critical"
)

// Rank orders severities so that threshold tables can be sorted
// most severe first.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 3
	case SeverityError:
		return 2
	case SeverityWarning:
		return 1
	default:
		return 0
	}
}

type VitalReading struct {
	Type      string    `json:"type"`
	Value     float64   `json:"value"`
	Unit      string    `json:"unit,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	UserID    string    `json:"userID"`
}

type Percentiles struct {
	P5  float64 `json:"p5"`
	P25 float64 `json:"p25"`
	P50 float64 `json:"p50"`
	P75 float64 `json:"p75"`
	P95 float64 `json:"p95"`
}

type PersonalizedBaseline struct {
	UserID            string      `json:"userID"`
	VitalType         string      `json:"vitalType"`
	Mean              float64     `json:"mean"`
	StandardDeviation float64     `json:"standardDeviation"`
	Min               float64     `json:"min"`
	Max               float64     `json:"max"`
	SampleCount       int         `json:"sampleCount"`
	Percentiles       Percentiles `json:"percentiles"`
	LastUpdated       time.Time   `json:"lastUpdated"`
}

type RuleEvaluation struct {
	Triggered             bool     `json:"triggered"`
	Severity              Severity `json:"severity,omitempty"`
	ThresholdBreached     string   `json:"thresholdBreached,omitempty"`
	Message               string   `json:"message,omitempty"`
	RecommendedAction     string   `json:"recommendedAction,omitempty"`
	IsPersonalizedAnomaly bool     `json:"isPersonalizedAnomaly,omitempty"`
	ZScore                *float64 `json:"zScore,omitempty"`

	// set once an evaluation has been turned into an alert
	AlertID   string `json:"alertID,omitempty"`
	AlertType string `json:"alertType,omitempty"`
}

const (
	EscalationStatusActive       = "active"
	EscalationStatusAcknowledged = "acknowledged"
	EscalationStatusResolved     = "resolved"
	EscalationStatusExpired      = "expired"
)

type ActiveEscalation struct {
	ID               string     `json:"id"`
	AlertID          string     `json:"alertID"`
	AlertType        string     `json:"alertType"`
	UserID           string     `json:"userID"`
	FamilyID         string     `json:"familyID,omitempty"`
	PolicyID         string     `json:"policyID"`
	CurrentLevel     int        `json:"currentLevel"`
	MaxLevel         int        `json:"maxLevel"`
	Status           string     `json:"status"`
	CreatedAt        time.Time  `json:"createdAt"`
	LastEscalatedAt  time.Time  `json:"lastEscalatedAt"`
	NextEscalationAt *time.Time `json:"nextEscalationAt,omitempty"`
	AcknowledgedBy   string     `json:"acknowledgedBy,omitempty"`
	AcknowledgedAt   *time.Time `json:"acknowledgedAt,omitempty"`
	ResolvedBy       string     `json:"resolvedBy,omitempty"`
	ResolvedAt       *time.Time `json:"resolvedAt,omitempty"`

	NotificationsSent []string `json:"notificationsSent,omitempty"`
}

// Terminal reports whether the escalation has reached a state the
// timer driven ladder may no longer advance it from.
func (e ActiveEscalation) Terminal() bool {
	return e.Status != EscalationStatusActive
}

type EscalationLevel struct {
	Level        int      `json:"level" yaml:"level"`
	DelayMinutes int      `json:"delayMinutes" yaml:"delayMinutes"`
	NotifyRoles  []string `json:"notifyRoles" yaml:"notifyRoles"`
	Action       string   `json:"action" yaml:"action"`
	Message      string   `json:"message" yaml:"message"`
}

type EscalationPolicy struct {
	ID         string            `json:"id" yaml:"id"`
	Name       string            `json:"name" yaml:"name"`
	AlertTypes []string          `json:"alertTypes" yaml:"alertTypes"`
	Levels     []EscalationLevel `json:"levels" yaml:"levels"`
}

const (
	RoleAdmin     = "admin"
	RoleCaregiver = "caregiver"
	RoleMember    = "member"

	NotifyRoleCaregiver        = "caregiver"
	NotifyRoleSecondaryContact = "secondary_contact"
	NotifyRoleEmergency        = "emergency"
)

type FamilyMember struct {
	UserID   string `json:"userID"`
	FamilyID string `json:"familyID"`
	Name     string `json:"name,omitempty"`
	Role     string `json:"role"`

	// contact tiers this member belongs to when alerts escalate
	NotifyRoles []string `json:"notifyRoles,omitempty"`
}

type Notification struct {
	Title    string            `json:"title"`
	Body     string            `json:"body"`
	Data     map[string]string `json:"data,omitempty"`
	Sound    string            `json:"sound,omitempty"`
	Priority string            `json:"priority,omitempty"`
}

const (
	EventCategoryHealth   = "health"
	EventCategoryAlert    = "alert"
	EventCategoryPlatform = "platform"
)

type ObservabilityEvent struct {
	ID            string         `json:"id"`
	CorrelationID string         `json:"correlationID"`
	Category      string         `json:"category"`
	Type          string         `json:"type"`
	Severity      Severity       `json:"severity"`
	UserID        string         `json:"userID,omitempty"`
	Source        string         `json:"source,omitempty"`
	Data          map[string]any `json:"data,omitempty"`
	Timestamp     time.Time      `json:"timestamp"`
}

type PlatformMetric struct {
	Name      string            `json:"name"`
	Value     float64           `json:"value"`
	Tags      map[string]string `json:"tags,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

type AlertAuditEntry struct {
	ID            string         `json:"id"`
	CorrelationID string         `json:"correlationID"`
	EscalationID  string         `json:"escalationID,omitempty"`
	AlertID       string         `json:"alertID,omitempty"`
	Action        string         `json:"action"`
	Actor         string         `json:"actor,omitempty"`
	Severity      Severity       `json:"severity"`
	Details       map[string]any `json:"details,omitempty"`
	Timestamp     time.Time      `json:"timestamp"`
}

type HealthScore struct {
	UserID     string             `json:"userID"`
	Score      float64            `json:"score"`
	Components map[string]float64 `json:"components"`
	Trend      string             `json:"trend"`
	Timestamp  time.Time          `json:"timestamp"`
}

const (
	RiskLow      = "low"
	RiskModerate = "moderate"
	RiskHigh     = "high"
	RiskCritical = "critical"
)

type RiskFactor struct {
	VitalType    string  `json:"vitalType"`
	Kind         string  `json:"kind"`
	Contribution float64 `json:"contribution"`
	Severity     string  `json:"severity"`
	Detail       string  `json:"detail,omitempty"`
}

type RiskAssessment struct {
	UserID          string       `json:"userID"`
	Score           float64      `json:"score"`
	Overall         string       `json:"overall"`
	Factors         []RiskFactor `json:"factors,omitempty"`
	Recommendations []string     `json:"recommendations,omitempty"`
	Timestamp       time.Time    `json:"timestamp"`
}

type CorrelationResult struct {
	VitalA      string  `json:"vitalA"`
	VitalB      string  `json:"vitalB"`
	Coefficient float64 `json:"coefficient"`
	SampleCount int     `json:"sampleCount"`
	Strength    string  `json:"strength"`
	Direction   string  `json:"direction"`
}

type Collection[T any] struct {
	Data       []T
	Count      uint64
	Offset     uint64
	Limit      uint64
	TotalCount uint64
}
