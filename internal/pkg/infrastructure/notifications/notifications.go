package notifications

import (
	"context"

	"github.com/famcare/health-engine/internal/pkg/infrastructure/clock"
	"github.com/famcare/health-engine/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
)

// Notifier hands notifications off to the delivery services over the
// message broker. The engine decides who should be told what, the
// push and sms gateways downstream decide how.
type Notifier struct {
	messenger messaging.MsgContext
	clk       clock.Clock
}

func New(messenger messaging.MsgContext, clk clock.Clock) *Notifier {
	return &Notifier{
		messenger: messenger,
		clk:       clk,
	}
}

func (n *Notifier) Send(ctx context.Context, userID string, notification types.Notification) error {
	return n.messenger.PublishOnTopic(ctx, &types.NotificationRequested{
		UserID:       userID,
		Notification: notification,
		Timestamp:    n.clk.Now(),
	})
}
