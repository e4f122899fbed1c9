package escalation

import (
	"encoding/json"
	"time"
)

type EscalationStarted struct {
	EscalationID string    `json:"escalationID"`
	AlertID      string    `json:"alertID"`
	AlertType    string    `json:"alertType"`
	UserID       string    `json:"userID"`
	PolicyID     string    `json:"policyID"`
	Timestamp    time.Time `json:"timestamp"`
}

func (e *EscalationStarted) ContentType() string {
	return "application/json"
}
func (e *EscalationStarted) TopicName() string {
	return "escalation.started"
}
func (e *EscalationStarted) Body() []byte {
	b, _ := json.Marshal(e)
	return b
}

type EscalationLevelAdvanced struct {
	EscalationID string    `json:"escalationID"`
	AlertID      string    `json:"alertID"`
	AlertType    string    `json:"alertType"`
	UserID       string    `json:"userID"`
	Level        int       `json:"level"`
	Notified     []string  `json:"notified,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

func (e *EscalationLevelAdvanced) ContentType() string {
	return "application/json"
}
func (e *EscalationLevelAdvanced) TopicName() string {
	return "escalation.levelAdvanced"
}
func (e *EscalationLevelAdvanced) Body() []byte {
	b, _ := json.Marshal(e)
	return b
}

type EscalationAcknowledged struct {
	EscalationID   string    `json:"escalationID"`
	AlertID        string    `json:"alertID"`
	UserID         string    `json:"userID"`
	AcknowledgedBy string    `json:"acknowledgedBy"`
	Timestamp      time.Time `json:"timestamp"`
}

func (e *EscalationAcknowledged) ContentType() string {
	return "application/json"
}
func (e *EscalationAcknowledged) TopicName() string {
	return "escalation.acknowledged"
}
func (e *EscalationAcknowledged) Body() []byte {
	b, _ := json.Marshal(e)
	return b
}

type EscalationResolved struct {
	EscalationID string    `json:"escalationID"`
	AlertID      string    `json:"alertID"`
	UserID       string    `json:"userID"`
	ResolvedBy   string    `json:"resolvedBy"`
	Timestamp    time.Time `json:"timestamp"`
}

func (e *EscalationResolved) ContentType() string {
	return "application/json"
}
func (e *EscalationResolved) TopicName() string {
	return "escalation.resolved"
}
func (e *EscalationResolved) Body() []byte {
	b, _ := json.Marshal(e)
	return b
}

type EscalationExpired struct {
	EscalationID string    `json:"escalationID"`
	AlertID      string    `json:"alertID"`
	UserID       string    `json:"userID"`
	Timestamp    time.Time `json:"timestamp"`
}

func (e *EscalationExpired) ContentType() string {
	return "application/json"
}
func (e *EscalationExpired) TopicName() string {
	return "escalation.expired"
}
func (e *EscalationExpired) Body() []byte {
	b, _ := json.Marshal(e)
	return b
}
