package handler

import (
	"time"

	"github.com/KasumiMercury/primind-notification-planning/internal/domain"
)

// PlanRequest is the payload-driven planning input: the caller supplies the
// full applet snapshot instead of having it fetched from ScheduleManagement.
type PlanRequest struct {
	AppletID    string               `json:"applet_id" binding:"required"`
	AppletName  string               `json:"applet_name"`
	Events      []domain.EventEntity `json:"events" binding:"required"`
	Completions []CompletionEntry    `json:"completions"`
	Progress    []ProgressEntry      `json:"progress"`
}

type CompletionEntry struct {
	EntityID    string    `json:"entity_id"`
	EventID     string    `json:"event_id"`
	CompletedAt time.Time `json:"completed_at"`
}

type ProgressEntry struct {
	EntityID  string    `json:"entity_id"`
	EventID   string    `json:"event_id"`
	StartedAt time.Time `json:"started_at"`
}

// CompletionRequest records one completion between planning passes.
type CompletionRequest struct {
	AppletID    string    `json:"applet_id" binding:"required"`
	EntityID    string    `json:"entity_id" binding:"required"`
	EventID     string    `json:"event_id" binding:"required"`
	CompletedAt time.Time `json:"completed_at"`
}

// AppletPlanResponse is the result of a feed-driven planning pass, including
// how many notifications were handed to the delivery queue.
type AppletPlanResponse struct {
	AppletID          string                               `json:"applet_id"`
	AppletName        string                               `json:"applet_name"`
	Events            []domain.EventNotificationDescribers `json:"events"`
	NotificationCount int                                  `json:"notification_count"`
	BrokenCount       int                                  `json:"broken_count"`
	RegisteredCount   int                                  `json:"registered_count"`
}
