package escalation

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/famcare/health-engine/internal/pkg/application/circuitbreaker"
	"github.com/famcare/health-engine/internal/pkg/infrastructure/clock"
	"github.com/famcare/health-engine/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

var (
	ErrEscalationNotFound = errors.New("escalation not found")
	ErrNotActive          = errors.New("escalation is not active")
)

//go:generate moq -rm -out escalationstorage_mock.go . EscalationStorage
type EscalationStorage interface {
	AddEscalation(ctx context.Context, escalation types.ActiveEscalation) error
	UpdateEscalation(ctx context.Context, escalation types.ActiveEscalation) error
	GetEscalation(ctx context.Context, escalationID string) (types.ActiveEscalation, error)
	GetEscalationsByAlertID(ctx context.Context, alertID string) ([]types.ActiveEscalation, error)
	GetDueEscalations(ctx context.Context, now time.Time) ([]types.ActiveEscalation, error)
}

//go:generate moq -rm -out familydirectory_mock.go . FamilyDirectory
type FamilyDirectory interface {
	FamilyForUser(ctx context.Context, userID string) (string, error)
	UsersInRole(ctx context.Context, familyID, notifyRole string) ([]string, error)
}

//go:generate moq -rm -out notifier_mock.go . Notifier
type Notifier interface {
	Send(ctx context.Context, userID string, notification types.Notification) error
}

//go:generate moq -rm -out telemetry_mock.go . Telemetry
type Telemetry interface {
	EmitAlertEvent(ctx context.Context, evt types.ObservabilityEvent)
	EmitAuditEntry(ctx context.Context, entry types.AlertAuditEntry) error
}

// EscalationService drives the escalation ladder for alerts. Each
// alert has at most one active escalation, starting a new one
// supersedes whatever was active before it. Levels advance on a timer
// until someone acknowledges or resolves the alert, or the ladder runs
// out of levels and the escalation expires.
type EscalationService interface {
	StartEscalation(ctx context.Context, alertID, alertType, userID, familyID string) (*types.ActiveEscalation, error)
	Acknowledge(ctx context.Context, escalationID, userID string) error
	Resolve(ctx context.Context, alertID, userID string) error
	ProcessEscalations(ctx context.Context) error

	Start(ctx context.Context)
	Stop(ctx context.Context)
}

const (
	DefaultSweepInterval = 30 * time.Second

	notifierServiceName = "notifier"
)

type Option func(*svc)

func WithSweepInterval(d time.Duration) Option {
	return func(s *svc) {
		s.sweepInterval = d
	}
}

func New(storage EscalationStorage, directory FamilyDirectory, notifier Notifier, telemetry Telemetry, messenger messaging.MsgContext, breaker circuitbreaker.CircuitBreaker, cfg *Config, clk clock.Clock, opts ...Option) EscalationService {
	s := &svc{
		storage:       storage,
		directory:     directory,
		notifier:      notifier,
		telemetry:     telemetry,
		messenger:     messenger,
		breaker:       breaker,
		policies:      cfg.Policies,
		clk:           clk,
		sweepInterval: DefaultSweepInterval,
		done:          make(chan bool, 1),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

type svc struct {
	storage   EscalationStorage
	directory FamilyDirectory
	notifier  Notifier
	telemetry Telemetry
	messenger messaging.MsgContext
	breaker   circuitbreaker.CircuitBreaker

	policies []types.EscalationPolicy
	clk      clock.Clock

	sweepInterval time.Duration
	done          chan bool

	// serializes all ladder transitions
	mu sync.Mutex
}

// StartEscalation opens an escalation for the alert according to the
// policy that claims its alert type. Alert types without a policy are
// a no-op. A prior active escalation for the same alert is expired
// before the new one starts.
func (s *svc) StartEscalation(ctx context.Context, alertID, alertType, userID, familyID string) (*types.ActiveEscalation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	policy, ok := s.policyForAlertType(alertType)
	if !ok {
		return nil, nil
	}

	log := logging.GetFromContext(ctx)
	now := s.clk.Now()

	if familyID == "" {
		id, err := s.directory.FamilyForUser(ctx, userID)
		if err != nil {
			log.Warn("could not resolve family", "user_id", userID, "err", err.Error())
		} else {
			familyID = id
		}
	}

	prior, err := s.storage.GetEscalationsByAlertID(ctx, alertID)
	if err != nil {
		return nil, err
	}

	for _, p := range prior {
		if p.Terminal() {
			continue
		}
		p.Status = types.EscalationStatusExpired
		p.NextEscalationAt = nil
		if err := s.storage.UpdateEscalation(ctx, p); err != nil {
			return nil, err
		}
		log.Info("superseded active escalation", "escalation_id", p.ID, "alert_id", alertID)
	}

	next := now.Add(time.Duration(policy.Levels[0].DelayMinutes) * time.Minute)

	escalation := types.ActiveEscalation{
		ID:               uuid.NewString(),
		AlertID:          alertID,
		AlertType:        alertType,
		UserID:           userID,
		FamilyID:         familyID,
		PolicyID:         policy.ID,
		CurrentLevel:     0,
		MaxLevel:         len(policy.Levels),
		Status:           types.EscalationStatusActive,
		CreatedAt:        now,
		LastEscalatedAt:  now,
		NextEscalationAt: &next,
	}

	err = s.storage.AddEscalation(ctx, escalation)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, &EscalationStarted{
		EscalationID: escalation.ID,
		AlertID:      alertID,
		AlertType:    alertType,
		UserID:       userID,
		PolicyID:     policy.ID,
		Timestamp:    now,
	})
	s.audit(ctx, escalation, "escalation_started", "", types.SeverityInfo, nil)

	if policy.Levels[0].DelayMinutes == 0 {
		escalation, err = s.advance(ctx, escalation, policy)
		if err != nil {
			return &escalation, err
		}
	}

	return &escalation, nil
}

// Acknowledge stops the ladder for a single escalation. Only active
// escalations can be acknowledged.
func (s *svc) Acknowledge(ctx context.Context, escalationID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	escalation, err := s.storage.GetEscalation(ctx, escalationID)
	if err != nil {
		return err
	}

	if escalation.Terminal() {
		return ErrNotActive
	}

	now := s.clk.Now()

	escalation.Status = types.EscalationStatusAcknowledged
	escalation.AcknowledgedBy = userID
	escalation.AcknowledgedAt = &now
	escalation.NextEscalationAt = nil

	err = s.storage.UpdateEscalation(ctx, escalation)
	if err != nil {
		return err
	}

	s.publish(ctx, &EscalationAcknowledged{
		EscalationID:   escalation.ID,
		AlertID:        escalation.AlertID,
		UserID:         escalation.UserID,
		AcknowledgedBy: userID,
		Timestamp:      now,
	})
	s.audit(ctx, escalation, "escalation_acknowledged", userID, types.SeverityInfo, nil)

	return nil
}

// Resolve closes every non terminal escalation for the alert.
func (s *svc) Resolve(ctx context.Context, alertID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	escalations, err := s.storage.GetEscalationsByAlertID(ctx, alertID)
	if err != nil {
		return err
	}

	now := s.clk.Now()

	for _, escalation := range escalations {
		if escalation.Terminal() {
			continue
		}

		escalation.Status = types.EscalationStatusResolved
		escalation.ResolvedBy = userID
		escalation.ResolvedAt = &now
		escalation.NextEscalationAt = nil

		err = s.storage.UpdateEscalation(ctx, escalation)
		if err != nil {
			return err
		}

		s.publish(ctx, &EscalationResolved{
			EscalationID: escalation.ID,
			AlertID:      alertID,
			UserID:       escalation.UserID,
			ResolvedBy:   userID,
			Timestamp:    now,
		})
		s.audit(ctx, escalation, "escalation_resolved", userID, types.SeverityInfo, nil)
	}

	return nil
}

// ProcessEscalations advances every escalation whose next escalation
// time has passed. Failures are logged per escalation so that one
// broken ladder does not stall the rest.
func (s *svc) ProcessEscalations(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	due, err := s.storage.GetDueEscalations(ctx, s.clk.Now())
	if err != nil {
		return err
	}

	log := logging.GetFromContext(ctx)

	for _, escalation := range due {
		policy, ok := s.policyByID(escalation.PolicyID)
		if !ok {
			log.Error("escalation references unknown policy", "escalation_id", escalation.ID, "policy_id", escalation.PolicyID)
			continue
		}

		_, err := s.advance(ctx, escalation, policy)
		if err != nil {
			log.Error("could not advance escalation", "escalation_id", escalation.ID, "err", err.Error())
		}
	}

	return nil
}

func (s *svc) Start(ctx context.Context) {
	go s.backgroundSweeper(ctx)
}

func (s *svc) Stop(ctx context.Context) {
	select {
	case s.done <- true:
	default:
	}
}

func (s *svc) backgroundSweeper(ctx context.Context) {
	log := logging.GetFromContext(ctx)

	for {
		select {
		case <-s.done:
			return
		case <-time.After(s.sweepInterval):
			err := s.ProcessEscalations(ctx)
			if err != nil {
				log.Error("escalation sweep failed", "err", err.Error())
			}
		}
	}
}

// advance moves the escalation to its next level, or expires it when
// the ladder has run out. The next escalation time is always set while
// the escalation is active, after the final level it is reused so the
// sweep can expire the escalation once that window passes too.
func (s *svc) advance(ctx context.Context, escalation types.ActiveEscalation, policy types.EscalationPolicy) (types.ActiveEscalation, error) {
	now := s.clk.Now()
	nextLevel := escalation.CurrentLevel + 1

	if nextLevel > escalation.MaxLevel {
		escalation.Status = types.EscalationStatusExpired
		escalation.NextEscalationAt = nil

		err := s.storage.UpdateEscalation(ctx, escalation)
		if err != nil {
			return escalation, err
		}

		s.publish(ctx, &EscalationExpired{
			EscalationID: escalation.ID,
			AlertID:      escalation.AlertID,
			UserID:       escalation.UserID,
			Timestamp:    now,
		})
		s.audit(ctx, escalation, "escalation_expired", "", types.SeverityWarning, nil)

		return escalation, nil
	}

	level := policy.Levels[nextLevel-1]

	escalation.CurrentLevel = nextLevel
	escalation.LastEscalatedAt = now

	delay := level.DelayMinutes
	if nextLevel < escalation.MaxLevel {
		delay = policy.Levels[nextLevel].DelayMinutes
	}
	next := now.Add(time.Duration(delay) * time.Minute)
	escalation.NextEscalationAt = &next

	notified := s.executeLevel(ctx, escalation, level)
	escalation.NotificationsSent = append(escalation.NotificationsSent, notified...)

	err := s.storage.UpdateEscalation(ctx, escalation)
	if err != nil {
		return escalation, err
	}

	severity := severityForLevel(nextLevel, escalation.MaxLevel)

	s.publish(ctx, &EscalationLevelAdvanced{
		EscalationID: escalation.ID,
		AlertID:      escalation.AlertID,
		AlertType:    escalation.AlertType,
		UserID:       escalation.UserID,
		Level:        nextLevel,
		Notified:     notified,
		Timestamp:    now,
	})
	s.audit(ctx, escalation, "escalation_level_advanced", "", severity, map[string]any{
		"level":    nextLevel,
		"notified": len(notified),
	})

	return escalation, nil
}

// executeLevel expands the level's notify roles into family members
// and sends each of them a notification through the circuit breaker.
// The alert subject is never notified about their own alert. Send
// failures are logged, the ladder still advances.
func (s *svc) executeLevel(ctx context.Context, escalation types.ActiveEscalation, level types.EscalationLevel) []string {
	log := logging.GetFromContext(ctx)

	recipients := []string{}

	for _, role := range level.NotifyRoles {
		users, err := s.directory.UsersInRole(ctx, escalation.FamilyID, role)
		if err != nil {
			log.Error("could not expand notify role", "family_id", escalation.FamilyID, "role", role, "err", err.Error())
			continue
		}
		recipients = append(recipients, users...)
	}

	recipients = lo.Uniq(recipients)
	recipients = lo.Filter(recipients, func(userID string, _ int) bool {
		return userID != escalation.UserID
	})

	notification := notificationForLevel(escalation, level)

	notified := []string{}

	for _, userID := range recipients {
		op := func(ctx context.Context) error {
			return s.notifier.Send(ctx, userID, notification)
		}

		var err error
		if s.breaker != nil {
			err = s.breaker.Execute(ctx, notifierServiceName, op, nil)
		} else {
			err = op(ctx)
		}

		if err != nil {
			log.Error("could not notify family member", "user_id", userID, "escalation_id", escalation.ID, "err", err.Error())
			continue
		}

		notified = append(notified, userID)
	}

	return notified
}

func notificationForLevel(escalation types.ActiveEscalation, level types.EscalationLevel) types.Notification {
	priority := "normal"
	sound := "default"

	switch level.Action {
	case "emergency":
		priority = "high"
		sound = "emergency"
	case "alarm":
		priority = "high"
		sound = "alarm"
	}

	return types.Notification{
		Title:    alertTitle(escalation.AlertType),
		Body:     level.Message,
		Priority: priority,
		Sound:    sound,
		Data: map[string]string{
			"escalationID": escalation.ID,
			"alertID":      escalation.AlertID,
			"alertType":    escalation.AlertType,
			"userID":       escalation.UserID,
			"level":        strconv.Itoa(level.Level),
		},
	}
}

var alertTitles = map[string]string{
	"vital_critical": "Critical health alert",
	"vital_abnormal": "Health alert",
	"device_offline": "Device offline",
	"missed_checkin": "Missed check in",
}

func alertTitle(alertType string) string {
	if title, ok := alertTitles[alertType]; ok {
		return title
	}
	return "Family health alert"
}

func severityForLevel(level, maxLevel int) types.Severity {
	switch {
	case level >= maxLevel:
		return types.SeverityCritical
	case level == maxLevel-1:
		return types.SeverityError
	default:
		return types.SeverityWarning
	}
}

func (s *svc) policyForAlertType(alertType string) (types.EscalationPolicy, bool) {
	for _, policy := range s.policies {
		if lo.Contains(policy.AlertTypes, alertType) {
			return policy, true
		}
	}
	return types.EscalationPolicy{}, false
}

func (s *svc) policyByID(policyID string) (types.EscalationPolicy, bool) {
	for _, policy := range s.policies {
		if policy.ID == policyID {
			return policy, true
		}
	}
	return types.EscalationPolicy{}, false
}

func (s *svc) publish(ctx context.Context, msg messaging.TopicMessage) {
	if s.messenger == nil {
		return
	}

	err := s.messenger.PublishOnTopic(ctx, msg)
	if err != nil {
		log := logging.GetFromContext(ctx)
		log.Error("failed to publish message", "topic", msg.TopicName(), "err", err.Error())
	}
}

func (s *svc) audit(ctx context.Context, escalation types.ActiveEscalation, action, actor string, severity types.Severity, details map[string]any) {
	if s.telemetry == nil {
		return
	}

	s.telemetry.EmitAlertEvent(ctx, types.ObservabilityEvent{
		CorrelationID: escalation.AlertID,
		Type:          action,
		Severity:      severity,
		UserID:        escalation.UserID,
		Data: map[string]any{
			"escalationID": escalation.ID,
			"alertType":    escalation.AlertType,
			"level":        escalation.CurrentLevel,
			"status":       escalation.Status,
		},
	})

	err := s.telemetry.EmitAuditEntry(ctx, types.AlertAuditEntry{
		CorrelationID: escalation.AlertID,
		EscalationID:  escalation.ID,
		AlertID:       escalation.AlertID,
		Action:        action,
		Actor:         actor,
		Severity:      severity,
		Details:       details,
	})
	if err != nil {
		log := logging.GetFromContext(ctx)
		log.Error("could not write audit entry", "escalation_id", escalation.ID, "action", action, "err", err.Error())
	}
}
