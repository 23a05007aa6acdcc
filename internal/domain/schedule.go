package domain

import "time"

// EventAvailability holds the recurrence and access-window rules of one
// schedule event. TimeFrom/TimeTo are mandatory for every periodicity except
// ALWAYS; when they are missing for a scheduled-access event the event simply
// yields zero occurrence days.
type EventAvailability struct {
	AvailabilityType          AvailabilityType `json:"availability_type"`
	PeriodicityType           PeriodicityType  `json:"periodicity_type"`
	StartDate                 *time.Time       `json:"start_date,omitempty"`
	EndDate                   *time.Time       `json:"end_date,omitempty"`
	TimeFrom                  *TimeOfDay       `json:"time_from,omitempty"`
	TimeTo                    *TimeOfDay       `json:"time_to,omitempty"`
	AllowAccessBeforeFromTime bool             `json:"allow_access_before_from_time"`
	OneTimeCompletion         bool             `json:"one_time_completion"`
}

// NotificationSetting configures one notification per occurrence day.
// FIXED triggers fire at At; RANDOM triggers fire at a time drawn from
// [From, To).
type NotificationSetting struct {
	At          *TimeOfDay  `json:"at,omitempty"`
	TriggerType TriggerType `json:"trigger_type"`
	From        *TimeOfDay  `json:"from,omitempty"`
	To          *TimeOfDay  `json:"to,omitempty"`
}

// ReminderSetting configures the incomplete-streak reminder of an event.
// ActivityIncomplete is the number of consecutive incomplete occurrences that
// must elapse before a reminder fires.
type ReminderSetting struct {
	ActivityIncomplete int       `json:"activity_incomplete"`
	ReminderTime       TimeOfDay `json:"reminder_time"`
}

type NotificationSettings struct {
	Notifications []NotificationSetting `json:"notifications"`
	Reminder      *ReminderSetting      `json:"reminder,omitempty"`
}

// ScheduleEvent binds one recurrence rule to one entity. A nil ScheduledAt
// means the event was never configured.
type ScheduleEvent struct {
	EntityID             string               `json:"entity_id"`
	ID                   string               `json:"id"`
	ScheduledAt          *time.Time           `json:"scheduled_at,omitempty"`
	SelectedDate         *time.Time           `json:"selected_date,omitempty"`
	Availability         EventAvailability    `json:"availability"`
	NotificationSettings NotificationSettings `json:"notification_settings"`
}

// Entity is the assessment activity or flow a schedule event points at.
type Entity struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	Description  string               `json:"description"`
	IsVisible    bool                 `json:"is_visible"`
	PipelineType ActivityPipelineType `json:"pipeline_type"`
}

// EventEntity pairs one schedule event with its entity; it is the atomic unit
// a planning pass processes.
type EventEntity struct {
	Event  *ScheduleEvent `json:"event"`
	Entity Entity         `json:"entity"`
}
