package reminder

import (
	"time"

	"github.com/KasumiMercury/primind-notification-planning/internal/domain"
)

// Notification ties a reminder describer to the occurrence day it was
// computed for. The event day may precede every in-horizon occurrence when an
// incomplete streak carries over from before the horizon.
type Notification struct {
	EventDay time.Time
	Reminder domain.NotificationDescriber
}

// Creator computes reminder describers from the reminder-extended occurrence
// day sequence and the entity's completion and progress history.
type Creator struct {
	ids domain.IDSource
}

func NewCreator(ids domain.IDSource) *Creator {
	return &Creator{ids: ids}
}

// Create emits one reminder for every day that ends a run of at least
// ActivityIncomplete consecutive unfinished occurrences. An occurrence counts
// as finished when it was completed or is currently in progress. A nil
// reminder configuration yields no output.
func (c *Creator) Create(
	appletID string,
	ee domain.EventEntity,
	days []time.Time,
	completions domain.CompletionRecords,
	progress domain.ProgressRecords,
) []Notification {
	setting := ee.Event.NotificationSettings.Reminder
	if setting == nil || len(days) == 0 {
		return nil
	}

	out := make([]Notification, 0, len(days))
	streak := 0
	for _, day := range days {
		if c.finishedOn(ee, day, completions, progress) {
			streak = 0
			continue
		}
		streak++
		if streak < setting.ActivityIncomplete {
			continue
		}

		at := setting.ReminderTime.On(day)
		out = append(out, Notification{
			EventDay: day,
			Reminder: domain.NewDescriber(c.ids, appletID, ee, at, domain.NotificationReminder),
		})
	}

	return out
}

func (c *Creator) finishedOn(ee domain.EventEntity, day time.Time, completions domain.CompletionRecords, progress domain.ProgressRecords) bool {
	if completions != nil && completions.CompletedOn(ee.Entity.ID, ee.Event.ID, day) {
		return true
	}
	if progress != nil && progress.InProgressOn(ee.Entity.ID, ee.Event.ID, day) {
		return true
	}
	return false
}

// Describers strips the event-day pairing for the merge step.
func Describers(reminders []Notification) []domain.NotificationDescriber {
	if len(reminders) == 0 {
		return nil
	}
	out := make([]domain.NotificationDescriber, len(reminders))
	for i, r := range reminders {
		out[i] = r.Reminder
	}
	return out
}
