package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=plan_repository.go -destination=plan_repository_mock.go -package=domain

// PlanRepository persists plan snapshots so a later pass can replace device
// notifications by identity instead of re-registering everything.
type PlanRepository interface {
	SavePlan(ctx context.Context, plan *NotificationPlan) error
	GetPlan(ctx context.Context, appletID string) (*NotificationPlan, error)
	DeletePlan(ctx context.Context, appletID string) error
}

// CompletionRepository stores completion day marks reported between planning
// passes; the reminder generator consumes them merged with the upstream feed.
type CompletionRepository interface {
	SaveCompletion(ctx context.Context, appletID, entityID, eventID string, at time.Time) error
	GetCompletions(ctx context.Context, appletID string) (CompletionRecords, error)
}
