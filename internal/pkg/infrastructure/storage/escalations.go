package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/famcare/health-engine/pkg/types"

	"github.com/jackc/pgx/v5"
)

func (s *Storage) AddEscalation(ctx context.Context, escalation types.ActiveEscalation) error {
	if escalation.ID == "" || escalation.AlertID == "" {
		return ErrNoID
	}

	args, err := escalationArgs(escalation)
	if err != nil {
		return err
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO escalations (escalation_id, alert_id, alert_type, user_id, family_id, policy_id, current_level, max_level, status,
			created_at, last_escalated_at, next_escalation_at, acknowledged_by, acknowledged_at, resolved_by, resolved_at, notifications_sent)
		VALUES (@escalation_id, @alert_id, @alert_type, @user_id, @family_id, @policy_id, @current_level, @max_level, @status,
			@created_at, @last_escalated_at, @next_escalation_at, @acknowledged_by, @acknowledged_at, @resolved_by, @resolved_at, @notifications_sent)
	`, args)
	if err != nil {
		return err
	}

	return nil
}

func (s *Storage) UpdateEscalation(ctx context.Context, escalation types.ActiveEscalation) error {
	if escalation.ID == "" {
		return ErrNoID
	}

	args, err := escalationArgs(escalation)
	if err != nil {
		return err
	}

	_, err = s.pool.Exec(ctx, `
		UPDATE escalations
		SET current_level = @current_level, status = @status, last_escalated_at = @last_escalated_at,
			next_escalation_at = @next_escalation_at, acknowledged_by = @acknowledged_by, acknowledged_at = @acknowledged_at,
			resolved_by = @resolved_by, resolved_at = @resolved_at, notifications_sent = @notifications_sent
		WHERE escalation_id = @escalation_id
	`, args)
	if err != nil {
		return err
	}

	return nil
}

func (s *Storage) GetEscalation(ctx context.Context, escalationID string) (types.ActiveEscalation, error) {
	collection, err := s.QueryEscalations(ctx, WithEscalationID(escalationID))
	if err != nil {
		return types.ActiveEscalation{}, err
	}

	if collection.Count == 0 {
		return types.ActiveEscalation{}, ErrNoRows
	}

	return collection.Data[0], nil
}

func (s *Storage) GetEscalationsByAlertID(ctx context.Context, alertID string) ([]types.ActiveEscalation, error) {
	collection, err := s.QueryEscalations(ctx, WithAlertID(alertID))
	if err != nil {
		return nil, err
	}

	return collection.Data, nil
}

func (s *Storage) GetDueEscalations(ctx context.Context, now time.Time) ([]types.ActiveEscalation, error) {
	collection, err := s.QueryEscalations(ctx, WithStatus(types.EscalationStatusActive), WithDueBefore(now))
	if err != nil {
		return nil, err
	}

	return collection.Data, nil
}

func (s *Storage) QueryEscalations(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.ActiveEscalation], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	if condition.sortBy == "" {
		condition.sortBy = "created_at"
	}

	var count int64
	var notificationsSent []byte

	e := types.ActiveEscalation{}

	query := fmt.Sprintf(`
		SELECT escalation_id, alert_id, alert_type, user_id, COALESCE(family_id, ''), policy_id, current_level, max_level, status,
			created_at, last_escalated_at, next_escalation_at, COALESCE(acknowledged_by, ''), acknowledged_at,
			COALESCE(resolved_by, ''), resolved_at, notifications_sent, count(*) OVER () AS count
		FROM escalations
		WHERE %s
		ORDER BY %s %s
		%s
	`, condition.Where(), condition.SortBy(), condition.SortOrder(), condition.OffsetLimit())

	rows, err := s.pool.Query(ctx, query, condition.NamedArgs())
	if err != nil {
		return types.Collection[types.ActiveEscalation]{}, err
	}

	escalations := make([]types.ActiveEscalation, 0)

	_, err = pgx.ForEachRow(rows, []any{
		&e.ID, &e.AlertID, &e.AlertType, &e.UserID, &e.FamilyID, &e.PolicyID, &e.CurrentLevel, &e.MaxLevel, &e.Status,
		&e.CreatedAt, &e.LastEscalatedAt, &e.NextEscalationAt, &e.AcknowledgedBy, &e.AcknowledgedAt,
		&e.ResolvedBy, &e.ResolvedAt, &notificationsSent, &count,
	}, func() error {
		escalation := e
		if len(notificationsSent) > 0 {
			if err := json.Unmarshal(notificationsSent, &escalation.NotificationsSent); err != nil {
				return err
			}
		}
		if e.NextEscalationAt != nil {
			next := *e.NextEscalationAt
			escalation.NextEscalationAt = &next
		}
		if e.AcknowledgedAt != nil {
			ack := *e.AcknowledgedAt
			escalation.AcknowledgedAt = &ack
		}
		if e.ResolvedAt != nil {
			res := *e.ResolvedAt
			escalation.ResolvedAt = &res
		}
		escalations = append(escalations, escalation)
		return nil
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Collection[types.ActiveEscalation]{}, ErrNoRows
		}
		return types.Collection[types.ActiveEscalation]{}, err
	}

	return types.Collection[types.ActiveEscalation]{
		Data:       escalations,
		Count:      uint64(len(escalations)),
		Limit:      uint64(condition.Limit()),
		Offset:     uint64(condition.Offset()),
		TotalCount: uint64(count),
	}, nil
}

func escalationArgs(escalation types.ActiveEscalation) (pgx.NamedArgs, error) {
	notificationsSent, err := json.Marshal(escalation.NotificationsSent)
	if err != nil {
		return nil, err
	}

	return pgx.NamedArgs{
		"escalation_id":      escalation.ID,
		"alert_id":           escalation.AlertID,
		"alert_type":         escalation.AlertType,
		"user_id":            escalation.UserID,
		"family_id":          escalation.FamilyID,
		"policy_id":          escalation.PolicyID,
		"current_level":      escalation.CurrentLevel,
		"max_level":          escalation.MaxLevel,
		"status":             escalation.Status,
		"created_at":         escalation.CreatedAt,
		"last_escalated_at":  escalation.LastEscalatedAt,
		"next_escalation_at": escalation.NextEscalationAt,
		"acknowledged_by":    escalation.AcknowledgedBy,
		"acknowledged_at":    escalation.AcknowledgedAt,
		"resolved_by":        escalation.ResolvedBy,
		"resolved_at":        escalation.ResolvedAt,
		"notifications_sent": notificationsSent,
	}, nil
}
