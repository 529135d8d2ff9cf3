package audit

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type ZapRecorder struct {
	logger *zap.Logger
}

func NewZapRecorder(logger *zap.Logger) *ZapRecorder {
	if logger == nil {
		logger = zap.L()
	}
	return &ZapRecorder{logger: logger.Named("audit")}
}

func (r *ZapRecorder) Record(_ context.Context, event Event) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	r.logger.Info("audit event",
		zap.String("timestamp", event.OccurredAt.Format(time.RFC3339)),
		zap.String("action", event.Action),
		zap.String("entity", event.Entity),
		zap.String("entity_id", event.EntityID),
		zap.String("company_id", event.CompanyID),
		zap.String("actor_id", event.ActorID),
		zap.Any("old_value", event.OldValue),
		zap.Any("new_value", event.NewValue),
	)
}
