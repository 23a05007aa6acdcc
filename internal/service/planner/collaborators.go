package planner

import (
	"time"

	"github.com/KasumiMercury/primind-notification-planning/internal/domain"
	"github.com/KasumiMercury/primind-notification-planning/internal/service/reminder"
)

//go:generate mockgen -source=collaborators.go -destination=mock.go -package=planner

// DaysExtractor computes occurrence days for one event within the horizon.
type DaysExtractor interface {
	Extract(event *domain.ScheduleEvent, now, lastScheduleDay time.Time) []time.Time
	ExtractForReminders(event *domain.ScheduleEvent, now, lastScheduleDay time.Time) []time.Time
}

// DayProcessor produces the regular describers for one occurrence day.
type DayProcessor interface {
	GenerateForDay(appletID string, ee domain.EventEntity, day time.Time) []domain.NotificationDescriber
}

// ReminderCreator produces reminder describers for one event.
type ReminderCreator interface {
	Create(appletID string, ee domain.EventEntity, days []time.Time, completions domain.CompletionRecords, progress domain.ProgressRecords) []reminder.Notification
}
