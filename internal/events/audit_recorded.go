package events

import "time"

const AuditRecordedTopic = "hr.audit.v1"

type AuditRecordedEvent struct {
	EventType  string    `json:"event_type"`
	Action     string    `json:"action"`
	Entity     string    `json:"entity"`
	EntityID   string    `json:"entity_id"`
	CompanyID  string    `json:"company_id"`
	ActorID    string    `json:"actor_id"`
	OldValue   any       `json:"old_value,omitempty"`
	NewValue   any       `json:"new_value,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
