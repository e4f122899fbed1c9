package rules

import (
	"context"
	"encoding/json"

	"log/slog"

	"go.opentelemetry.io/otel"

	"github.com/famcare/health-engine/internal/pkg/infrastructure/clock"
	"github.com/famcare/health-engine/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
)

const VitalReadingTopic = "vitals.reading"

var tracer = otel.Tracer("health-engine/rules")

func NewVitalReadingHandler(messenger messaging.MsgContext, engine RuleEngine, clk clock.Clock) messaging.TopicMessageHandler {
	return func(ctx context.Context, itm messaging.IncomingTopicMessage, l *slog.Logger) {
		var err error

		ctx, span := tracer.Start(ctx, "vital-reading")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, l, ctx)

		reading := types.VitalReading{}

		err = json.Unmarshal(itm.Body(), &reading)
		if err != nil {
			log.Error("failed to unmarshal message", "err", err.Error())
			return
		}

		if reading.UserID == "" || reading.Type == "" {
			log.Warn("discarding reading without user or vital type")
			return
		}

		if reading.Timestamp.IsZero() {
			reading.Timestamp = clk.Now()
		}

		evaluation, err := engine.ProcessVitalAndEmit(ctx, reading)
		if err != nil {
			log.Error("could not process reading", "user_id", reading.UserID, "vital_type", reading.Type, "err", err.Error())
			return
		}

		if !evaluation.Triggered {
			return
		}

		log.Info("vital rule triggered", "user_id", reading.UserID, "vital_type", reading.Type, "severity", string(evaluation.Severity))

		// throttled evaluations never became alerts
		if evaluation.AlertID == "" {
			return
		}

		err = messenger.PublishOnTopic(ctx, &types.AlertCreated{
			AlertID:    evaluation.AlertID,
			AlertType:  evaluation.AlertType,
			UserID:     reading.UserID,
			Severity:   evaluation.Severity,
			Evaluation: evaluation,
			Timestamp:  reading.Timestamp,
		})
		if err != nil {
			log.Error("failed to publish alert", "alert_id", evaluation.AlertID, "err", err.Error())
		}
	}
}
