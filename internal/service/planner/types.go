package planner

import "github.com/KasumiMercury/primind-notification-planning/internal/domain"

// Input is everything one planning pass consumes. Completions and progress
// feed only the reminder computation.
type Input struct {
	AppletID      string                   `json:"applet_id"`
	AppletName    string                   `json:"applet_name"`
	EventEntities []domain.EventEntity     `json:"events"`
	Completions   domain.CompletionRecords `json:"completions,omitempty"`
	Progress      domain.ProgressRecords   `json:"progress,omitempty"`
}

// Response is the planning pass result: one record per event in input order.
type Response struct {
	AppletID          string                               `json:"applet_id"`
	AppletName        string                               `json:"applet_name"`
	Events            []domain.EventNotificationDescribers `json:"events"`
	NotificationCount int                                  `json:"notification_count"`
	BrokenCount       int                                  `json:"broken_count"`
}
