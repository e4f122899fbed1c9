package types

import (
	"encoding/json"
	"time"
)

type AlertCreated struct {
	AlertID    string         `json:"alertID"`
	AlertType  string         `json:"alertType"`
	UserID     string         `json:"userID"`
	Severity   Severity       `json:"severity"`
	Evaluation RuleEvaluation `json:"evaluation"`
	Timestamp  time.Time      `json:"timestamp"`
}

func (a *AlertCreated) ContentType() string {
	return "application/json"
}
func (a *AlertCreated) TopicName() string {
	return "alert.created"
}
func (a *AlertCreated) Body() []byte {
	b, _ := json.Marshal(a)
	return b
}

type NotificationRequested struct {
	UserID       string       `json:"userID"`
	Notification Notification `json:"notification"`
	Timestamp    time.Time    `json:"timestamp"`
}

func (n *NotificationRequested) ContentType() string {
	return "application/json"
}
func (n *NotificationRequested) TopicName() string {
	return "notification.send"
}
func (n *NotificationRequested) Body() []byte {
	b, _ := json.Marshal(n)
	return b
}
