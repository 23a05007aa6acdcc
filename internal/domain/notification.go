package domain

import "time"

// NotificationDescriber is one notification to be scheduled on the device.
// Identity is NotificationID (ShortID where the OS imposes short identifiers);
// two describers with equal identity are the same scheduled notification.
type NotificationDescriber struct {
	NotificationID     string           `json:"notification_id"`
	ShortID            string           `json:"short_id"`
	AppletID           string           `json:"applet_id"`
	ActivityID         string           `json:"activity_id,omitempty"`
	ActivityFlowID     string           `json:"activity_flow_id,omitempty"`
	EntityName         string           `json:"entity_name"`
	EventID            string           `json:"event_id"`
	ScheduledAt        time.Time        `json:"scheduled_at"`
	ScheduledAtString  string           `json:"scheduled_at_string"`
	IsActive           bool             `json:"is_active"`
	NotificationHeader string           `json:"notification_header"`
	NotificationBody   string           `json:"notification_body"`
	Type               NotificationType `json:"type"`
}

// NewDescriber builds a describer for the given entity at the given instant.
// The header and body carry the entity name and description; variable
// substitution happens upstream.
func NewDescriber(ids IDSource, appletID string, ee EventEntity, at time.Time, typ NotificationType) NotificationDescriber {
	d := NotificationDescriber{
		NotificationID:     ids.NotificationID(),
		ShortID:            ids.ShortID(),
		AppletID:           appletID,
		EntityName:         ee.Entity.Name,
		EventID:            ee.Event.ID,
		ScheduledAt:        at,
		ScheduledAtString:  at.Format(time.RFC3339),
		IsActive:           true,
		NotificationHeader: ee.Entity.Name,
		NotificationBody:   ee.Entity.Description,
		Type:               typ,
	}

	if ee.Entity.PipelineType == PipelineFlow {
		d.ActivityFlowID = ee.Entity.ID
	} else {
		d.ActivityID = ee.Entity.ID
	}

	return d
}

// EventNotificationDescribers is the per-event planning result. A non-empty
// BreakReason means generation stopped early and Notifications is empty.
type EventNotificationDescribers struct {
	EventID       string                  `json:"event_id"`
	EventName     string                  `json:"event_name"`
	Notifications []NotificationDescriber `json:"notifications"`
	ScheduleEvent *ScheduleEvent          `json:"schedule_event"`
	BreakReason   BreakReason             `json:"break_reason,omitempty"`
}

// Broken reports whether generation stopped before producing notifications.
func (e *EventNotificationDescribers) Broken() bool {
	return e.BreakReason != ""
}

// NotificationPlan is a persisted snapshot of one applet's planning pass.
type NotificationPlan struct {
	AppletID   string                        `json:"applet_id"`
	AppletName string                        `json:"applet_name"`
	Events     []EventNotificationDescribers `json:"events"`
	BuiltAt    time.Time                     `json:"built_at"`
}

// TotalNotifications counts all describers across events.
func (p *NotificationPlan) TotalNotifications() int {
	total := 0
	for i := range p.Events {
		total += len(p.Events[i].Notifications)
	}
	return total
}
