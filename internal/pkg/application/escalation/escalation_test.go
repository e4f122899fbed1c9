package escalation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/famcare/health-engine/internal/pkg/infrastructure/clock"
	"github.com/famcare/health-engine/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/matryer/is"
)

func TestStartExecutesFirstLevelImmediately(t *testing.T) {
	is, ctx, f := escalationSetup(t)

	escalation, err := f.svc.StartEscalation(ctx, "a1", "vital_critical", "u1", "fam1")
	is.NoErr(err)

	is.Equal(1, escalation.CurrentLevel)
	is.Equal(types.EscalationStatusActive, escalation.Status)
	is.Equal([]string{"care1"}, escalation.NotificationsSent)

	// next fire time follows the second level's delay
	is.Equal(f.clk.Now().Add(5*time.Minute), *escalation.NextEscalationAt)
}

func TestStartWithoutPolicyIsANoOp(t *testing.T) {
	is, ctx, f := escalationSetup(t)

	escalation, err := f.svc.StartEscalation(ctx, "a1", "unknown_alert", "u1", "fam1")
	is.NoErr(err)

	is.Equal((*types.ActiveEscalation)(nil), escalation)
	is.Equal(0, len(f.storage.AddEscalationCalls()))
}

func TestStartSupersedesPriorActiveEscalation(t *testing.T) {
	is, ctx, f := escalationSetup(t)

	first, err := f.svc.StartEscalation(ctx, "a1", "vital_critical", "u1", "fam1")
	is.NoErr(err)

	second, err := f.svc.StartEscalation(ctx, "a1", "vital_critical", "u1", "fam1")
	is.NoErr(err)

	is.True(first.ID != second.ID)
	is.Equal(types.EscalationStatusExpired, f.store[first.ID].Status)
	is.Equal(types.EscalationStatusActive, f.store[second.ID].Status)
}

func TestLadderWidensTheCircle(t *testing.T) {
	is, ctx, f := escalationSetup(t)

	escalation, err := f.svc.StartEscalation(ctx, "a1", "vital_critical", "u1", "fam1")
	is.NoErr(err)
	is.Equal(1, len(f.notifier.SendCalls()))

	f.clk.Advance(6 * time.Minute)
	is.NoErr(f.svc.ProcessEscalations(ctx))

	is.Equal(2, f.store[escalation.ID].CurrentLevel)
	is.Equal(3, len(f.notifier.SendCalls()))

	f.clk.Advance(11 * time.Minute)
	is.NoErr(f.svc.ProcessEscalations(ctx))

	is.Equal(3, f.store[escalation.ID].CurrentLevel)
	is.Equal(6, len(f.notifier.SendCalls()))

	last := f.notifier.SendCalls()[5].Notification
	is.Equal("high", last.Priority)
	is.Equal("emergency", last.Sound)

	// past the final level the ladder expires instead of advancing
	f.clk.Advance(11 * time.Minute)
	is.NoErr(f.svc.ProcessEscalations(ctx))

	is.Equal(types.EscalationStatusExpired, f.store[escalation.ID].Status)
	is.Equal(6, len(f.notifier.SendCalls()))
}

func TestAcknowledgeStopsTheLadder(t *testing.T) {
	is, ctx, f := escalationSetup(t)

	escalation, err := f.svc.StartEscalation(ctx, "a1", "vital_critical", "u1", "fam1")
	is.NoErr(err)

	err = f.svc.Acknowledge(ctx, escalation.ID, "care1")
	is.NoErr(err)

	stored := f.store[escalation.ID]
	is.Equal(types.EscalationStatusAcknowledged, stored.Status)
	is.Equal("care1", stored.AcknowledgedBy)
	is.Equal((*time.Time)(nil), stored.NextEscalationAt)

	f.clk.Advance(time.Hour)
	is.NoErr(f.svc.ProcessEscalations(ctx))
	is.Equal(1, len(f.notifier.SendCalls()))
}

func TestAcknowledgeRequiresAnActiveEscalation(t *testing.T) {
	is, ctx, f := escalationSetup(t)

	escalation, err := f.svc.StartEscalation(ctx, "a1", "vital_critical", "u1", "fam1")
	is.NoErr(err)

	is.NoErr(f.svc.Acknowledge(ctx, escalation.ID, "care1"))

	err = f.svc.Acknowledge(ctx, escalation.ID, "care1")
	is.True(errors.Is(err, ErrNotActive))
}

func TestResolveClosesEverythingForTheAlert(t *testing.T) {
	is, ctx, f := escalationSetup(t)

	escalation, err := f.svc.StartEscalation(ctx, "a1", "vital_critical", "u1", "fam1")
	is.NoErr(err)

	err = f.svc.Resolve(ctx, "a1", "admin1")
	is.NoErr(err)

	stored := f.store[escalation.ID]
	is.Equal(types.EscalationStatusResolved, stored.Status)
	is.Equal("admin1", stored.ResolvedBy)
}

func TestTheSubjectIsNeverNotified(t *testing.T) {
	is, ctx, f := escalationSetup(t)

	f.directory.UsersInRoleFunc = func(ctx context.Context, familyID, notifyRole string) ([]string, error) {
		return []string{"u1", "care1"}, nil
	}

	_, err := f.svc.StartEscalation(ctx, "a1", "vital_critical", "u1", "fam1")
	is.NoErr(err)

	is.Equal(1, len(f.notifier.SendCalls()))
	is.Equal("care1", f.notifier.SendCalls()[0].UserID)
}

func TestRecipientsAreDeduplicatedAcrossRoles(t *testing.T) {
	is, ctx, f := escalationSetup(t)

	f.directory.UsersInRoleFunc = func(ctx context.Context, familyID, notifyRole string) ([]string, error) {
		switch notifyRole {
		case types.NotifyRoleCaregiver:
			return []string{"care1"}, nil
		case types.NotifyRoleSecondaryContact:
			return []string{"care1", "sec1"}, nil
		default:
			return []string{"em1"}, nil
		}
	}

	escalation, err := f.svc.StartEscalation(ctx, "a1", "vital_critical", "u1", "fam1")
	is.NoErr(err)

	f.clk.Advance(6 * time.Minute)
	is.NoErr(f.svc.ProcessEscalations(ctx))

	// level two notifies caregiver and secondary contact roles, care1
	// appears in both but is only notified once
	is.Equal(2, f.store[escalation.ID].CurrentLevel)
	is.Equal(3, len(f.notifier.SendCalls()))
}

func TestNotifierFailureDoesNotStallTheLadder(t *testing.T) {
	is, ctx, f := escalationSetup(t)

	f.notifier.SendFunc = func(ctx context.Context, userID string, notification types.Notification) error {
		return errors.New("push gateway unavailable")
	}

	escalation, err := f.svc.StartEscalation(ctx, "a1", "vital_critical", "u1", "fam1")
	is.NoErr(err)

	stored := f.store[escalation.ID]
	is.Equal(1, stored.CurrentLevel)
	is.Equal(types.EscalationStatusActive, stored.Status)
	is.Equal(0, len(stored.NotificationsSent))
}

func TestTransitionsArePublishedAndAudited(t *testing.T) {
	is, ctx, f := escalationSetup(t)

	escalation, err := f.svc.StartEscalation(ctx, "a1", "vital_critical", "u1", "fam1")
	is.NoErr(err)
	is.NoErr(f.svc.Acknowledge(ctx, escalation.ID, "care1"))

	topics := []string{}
	for _, call := range f.messenger.PublishOnTopicCalls() {
		topics = append(topics, call.Message.TopicName())
	}

	is.Equal([]string{"escalation.started", "escalation.levelAdvanced", "escalation.acknowledged"}, topics)
	is.Equal(3, len(f.telemetry.EmitAuditEntryCalls()))
}

type fixture struct {
	store     map[string]types.ActiveEscalation
	storage   *EscalationStorageMock
	directory *FamilyDirectoryMock
	notifier  *NotifierMock
	telemetry *TelemetryMock
	messenger *messaging.MsgContextMock
	svc       EscalationService
	clk       *clock.Fake
}

func escalationSetup(t *testing.T) (*is.I, context.Context, *fixture) {
	is := is.New(t)

	f := &fixture{
		store: map[string]types.ActiveEscalation{},
		clk:   clock.NewFake(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)),
	}

	f.storage = &EscalationStorageMock{
		AddEscalationFunc: func(ctx context.Context, e types.ActiveEscalation) error {
			f.store[e.ID] = e
			return nil
		},
		UpdateEscalationFunc: func(ctx context.Context, e types.ActiveEscalation) error {
			f.store[e.ID] = e
			return nil
		},
		GetEscalationFunc: func(ctx context.Context, escalationID string) (types.ActiveEscalation, error) {
			e, ok := f.store[escalationID]
			if !ok {
				return types.ActiveEscalation{}, ErrEscalationNotFound
			}
			return e, nil
		},
		GetEscalationsByAlertIDFunc: func(ctx context.Context, alertID string) ([]types.ActiveEscalation, error) {
			matches := []types.ActiveEscalation{}
			for _, e := range f.store {
				if e.AlertID == alertID {
					matches = append(matches, e)
				}
			}
			return matches, nil
		},
		GetDueEscalationsFunc: func(ctx context.Context, now time.Time) ([]types.ActiveEscalation, error) {
			due := []types.ActiveEscalation{}
			for _, e := range f.store {
				if e.Status == types.EscalationStatusActive && e.NextEscalationAt != nil && !e.NextEscalationAt.After(now) {
					due = append(due, e)
				}
			}
			return due, nil
		},
	}

	f.directory = &FamilyDirectoryMock{
		FamilyForUserFunc: func(ctx context.Context, userID string) (string, error) {
			return "fam1", nil
		},
		UsersInRoleFunc: func(ctx context.Context, familyID, notifyRole string) ([]string, error) {
			switch notifyRole {
			case types.NotifyRoleCaregiver:
				return []string{"care1"}, nil
			case types.NotifyRoleSecondaryContact:
				return []string{"sec1"}, nil
			case types.NotifyRoleEmergency:
				return []string{"em1"}, nil
			}
			return nil, nil
		},
	}

	f.notifier = &NotifierMock{
		SendFunc: func(ctx context.Context, userID string, notification types.Notification) error {
			return nil
		},
	}

	f.telemetry = &TelemetryMock{
		EmitAlertEventFunc: func(ctx context.Context, evt types.ObservabilityEvent) {},
		EmitAuditEntryFunc: func(ctx context.Context, entry types.AlertAuditEntry) error {
			return nil
		},
	}

	f.messenger = &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			return nil
		},
	}

	f.svc = New(f.storage, f.directory, f.notifier, f.telemetry, f.messenger, nil, DefaultConfig(), f.clk)

	return is, context.Background(), f
}
