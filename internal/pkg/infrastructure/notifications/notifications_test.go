package notifications

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/famcare/health-engine/internal/pkg/infrastructure/clock"
	"github.com/famcare/health-engine/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/matryer/is"
)

func TestSendPublishesNotificationRequest(t *testing.T) {
	is := is.New(t)

	messenger := &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			return nil
		},
	}

	clk := clock.NewFake(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC))
	notifier := New(messenger, clk)

	err := notifier.Send(context.Background(), "care1", types.Notification{
		Title:    "Critical health alert",
		Body:     "A critical vital sign was detected",
		Priority: "high",
	})
	is.NoErr(err)

	is.Equal(1, len(messenger.PublishOnTopicCalls()))

	msg := messenger.PublishOnTopicCalls()[0].Message
	is.Equal("notification.send", msg.TopicName())

	request := types.NotificationRequested{}
	is.NoErr(json.Unmarshal(msg.Body(), &request))
	is.Equal("care1", request.UserID)
	is.Equal("Critical health alert", request.Notification.Title)
	is.Equal(clk.Now(), request.Timestamp)
}
