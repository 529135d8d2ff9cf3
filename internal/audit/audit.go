package audit

import (
	"context"
	"time"
)

// Event is the audit payload emitted by every mutating payroll operation.
// Storage and formatting belong to the audit collaborator; this package
// only delivers.
type Event struct {
	Action     string
	Entity     string
	EntityID   string
	CompanyID  string
	ActorID    string
	OldValue   any
	NewValue   any
	OccurredAt time.Time
}

// Recorder delivers audit events. Implementations must never return
// control-flow errors to the caller: a failed audit write is logged and
// swallowed so it cannot roll back or block the primary mutation.
type Recorder interface {
	Record(ctx context.Context, event Event)
}

type NopRecorder struct{}

func (NopRecorder) Record(context.Context, Event) {}
