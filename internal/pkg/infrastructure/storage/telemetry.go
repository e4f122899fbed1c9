package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/famcare/health-engine/pkg/types"

	"github.com/jackc/pgx/v5"
)

func (s *Storage) AddEvents(ctx context.Context, events []types.ObservabilityEvent) error {
	if len(events) == 0 {
		return nil
	}

	batch := &pgx.Batch{}

	for _, evt := range events {
		if evt.ID == "" {
			return ErrNoID
		}

		data, err := json.Marshal(evt.Data)
		if err != nil {
			return err
		}

		batch.Queue(`
			INSERT INTO events (event_id, correlation_id, category, type, severity, user_id, source, data, time)
			VALUES (@event_id, @correlation_id, @category, @type, @severity, @user_id, @source, @data, @time)
			ON CONFLICT (event_id) DO NOTHING
		`, pgx.NamedArgs{
			"event_id":       evt.ID,
			"correlation_id": evt.CorrelationID,
			"category":       evt.Category,
			"type":           evt.Type,
			"severity":       string(evt.Severity),
			"user_id":        evt.UserID,
			"source":         evt.Source,
			"data":           data,
			"time":           evt.Timestamp,
		})
	}

	return s.pool.SendBatch(ctx, batch).Close()
}

func (s *Storage) AddMetrics(ctx context.Context, metrics []types.PlatformMetric) error {
	if len(metrics) == 0 {
		return nil
	}

	batch := &pgx.Batch{}

	for _, m := range metrics {
		tags, err := json.Marshal(m.Tags)
		if err != nil {
			return err
		}

		batch.Queue(`
			INSERT INTO metrics (time, name, value, tags)
			VALUES (@time, @name, @value, @tags)
		`, pgx.NamedArgs{
			"time":  m.Timestamp,
			"name":  m.Name,
			"value": m.Value,
			"tags":  tags,
		})
	}

	return s.pool.SendBatch(ctx, batch).Close()
}

func (s *Storage) AddAuditEntry(ctx context.Context, entry types.AlertAuditEntry) error {
	if entry.ID == "" {
		return ErrNoID
	}

	details, err := json.Marshal(entry.Details)
	if err != nil {
		return err
	}

	args := pgx.NamedArgs{
		"entry_id":       entry.ID,
		"correlation_id": entry.CorrelationID,
		"escalation_id":  entry.EscalationID,
		"alert_id":       entry.AlertID,
		"action":         entry.Action,
		"actor":          entry.Actor,
		"severity":       string(entry.Severity),
		"details":        details,
		"time":           entry.Timestamp,
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO audit_log (entry_id, correlation_id, escalation_id, alert_id, action, actor, severity, details, time)
		VALUES (@entry_id, @correlation_id, @escalation_id, @alert_id, @action, @actor, @severity, @details, @time)
	`, args)
	if err != nil {
		return err
	}

	return nil
}

func (s *Storage) QueryEvents(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.ObservabilityEvent], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	if condition.sortBy == "" {
		condition.sortBy = "time"
	}

	var count int64
	var data []byte

	evt := types.ObservabilityEvent{}

	query := fmt.Sprintf(`
		SELECT event_id, correlation_id, category, type, severity, COALESCE(user_id, ''), COALESCE(source, ''), data, time, count(*) OVER () AS count
		FROM events
		WHERE %s
		ORDER BY %s %s
		%s
	`, condition.Where(), condition.SortBy(), condition.SortOrder(), condition.OffsetLimit())

	rows, err := s.pool.Query(ctx, query, condition.NamedArgs())
	if err != nil {
		return types.Collection[types.ObservabilityEvent]{}, err
	}

	events := make([]types.ObservabilityEvent, 0)

	_, err = pgx.ForEachRow(rows, []any{&evt.ID, &evt.CorrelationID, &evt.Category, &evt.Type, &evt.Severity, &evt.UserID, &evt.Source, &data, &evt.Timestamp, &count}, func() error {
		event := evt
		if len(data) > 0 {
			if err := json.Unmarshal(data, &event.Data); err != nil {
				return err
			}
		}
		events = append(events, event)
		return nil
	})
	if err != nil {
		return types.Collection[types.ObservabilityEvent]{}, err
	}

	return types.Collection[types.ObservabilityEvent]{
		Data:       events,
		Count:      uint64(len(events)),
		Limit:      uint64(condition.Limit()),
		Offset:     uint64(condition.Offset()),
		TotalCount: uint64(count),
	}, nil
}
