package domain

import (
	"context"
	"time"
)

// PlanResultRecord is one event's outcome in a planning run, serialized for
// audit by the diagnostics collaborator.
type PlanResultRecord struct {
	RunID             string
	AppletID          string
	EventID           string
	EventName         string
	BreakReason       string
	NotificationCount int
	ReminderCount     int
	BuiltAt           time.Time
}

// PlanResultRecorder records planning run statistics to an analytics sink.
type PlanResultRecorder interface {
	RecordPlanResults(ctx context.Context, records []PlanResultRecord) error
	Flush(ctx context.Context) error
	Close() error
}
