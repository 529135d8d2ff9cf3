package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/madhavny/mavi-hrms-sub002/internal/events"
	"github.com/madhavny/mavi-hrms-sub002/internal/messaging/kafka"
	"github.com/madhavny/mavi-hrms-sub002/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OutboxRecorder menulis audit event ke tabel outbox agar worker
// mempublikasikannya ke Kafka. Kegagalan hanya dicatat ke log; audit
// tidak boleh menggagalkan mutasi utama.
type OutboxRecorder struct {
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewOutboxRecorder(outbox kafka.OutboxRepository, logger *zap.Logger) *OutboxRecorder {
	if logger == nil {
		logger = zap.L()
	}
	return &OutboxRecorder{outbox: outbox, logger: logger.Named("audit.outbox")}
}

func (r *OutboxRecorder) Record(ctx context.Context, event Event) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	payload, err := json.Marshal(events.AuditRecordedEvent{
		EventType:  event.Action,
		Action:     event.Action,
		Entity:     event.Entity,
		EntityID:   event.EntityID,
		CompanyID:  event.CompanyID,
		ActorID:    event.ActorID,
		OldValue:   event.OldValue,
		NewValue:   event.NewValue,
		OccurredAt: event.OccurredAt,
	})
	if err != nil {
		r.logger.Error("marshal audit event failed", zap.Error(err))
		return
	}

	outboxEvent := kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: event.Entity,
		AggregateID:   event.EntityID,
		EventType:     event.Action,
		Topic:         events.AuditRecordedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}

	if err := r.outbox.Create(ctx, outboxEvent); err != nil {
		r.logger.Error("persist audit event failed",
			zap.String("action", event.Action),
			zap.String("entity", event.Entity),
			zap.String("entity_id", event.EntityID),
			zap.Error(err),
		)
	}
}
