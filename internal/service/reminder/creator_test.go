package reminder

import (
	"fmt"
	"testing"
	"time"

	"github.com/KasumiMercury/primind-notification-planning/internal/domain"
)

type seqIDs struct {
	n int
}

func (s *seqIDs) NotificationID() string {
	s.n++
	return fmt.Sprintf("notification-%d", s.n)
}

func (s *seqIDs) ShortID() string {
	return fmt.Sprintf("short-%d", s.n)
}

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func reminderEntity(activityIncomplete int) domain.EventEntity {
	scheduledAt := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	return domain.EventEntity{
		Event: &domain.ScheduleEvent{
			EntityID:    "entity-1",
			ID:          "event-1",
			ScheduledAt: &scheduledAt,
			NotificationSettings: domain.NotificationSettings{
				Reminder: &domain.ReminderSetting{
					ActivityIncomplete: activityIncomplete,
					ReminderTime:       domain.TimeOfDay{Hours: 18, Minutes: 25},
				},
			},
		},
		Entity: domain.Entity{
			ID:        "entity-1",
			Name:      "mock-entity-name",
			IsVisible: true,
		},
	}
}

func assertReminderDays(t *testing.T, got []Notification, wantDays []time.Time) {
	t.Helper()

	if len(got) != len(wantDays) {
		t.Fatalf("got %d reminders, want %d", len(got), len(wantDays))
	}
	for i, want := range wantDays {
		if !got[i].EventDay.Equal(want) {
			t.Errorf("reminder[%d].EventDay = %v, want %v", i, got[i].EventDay, want)
		}
		wantAt := time.Date(want.Year(), want.Month(), want.Day(), 18, 25, 0, 0, time.UTC)
		if !got[i].Reminder.ScheduledAt.Equal(wantAt) {
			t.Errorf("reminder[%d].ScheduledAt = %v, want %v", i, got[i].Reminder.ScheduledAt, wantAt)
		}
		if got[i].Reminder.Type != domain.NotificationReminder {
			t.Errorf("reminder[%d].Type = %q, want %q", i, got[i].Reminder.Type, domain.NotificationReminder)
		}
	}
}

func TestCreateNoReminderSetting(t *testing.T) {
	creator := NewCreator(&seqIDs{})

	ee := reminderEntity(1)
	ee.Event.NotificationSettings.Reminder = nil

	if got := creator.Create("applet-1", ee, []time.Time{day(15)}, nil, nil); got != nil {
		t.Errorf("expected no reminders without a setting, got %d", len(got))
	}
}

func TestCreateEveryIncompleteDay(t *testing.T) {
	creator := NewCreator(&seqIDs{})

	// Threshold one: every unfinished occurrence fires a reminder.
	got := creator.Create("applet-1", reminderEntity(1),
		[]time.Time{day(15), day(16), day(17)}, nil, nil)

	assertReminderDays(t, got, []time.Time{day(15), day(16), day(17)})
}

func TestCreateStreakThreshold(t *testing.T) {
	creator := NewCreator(&seqIDs{})

	// Threshold two: the first unfinished day only builds the streak.
	got := creator.Create("applet-1", reminderEntity(2),
		[]time.Time{day(15), day(16), day(17)}, nil, nil)

	assertReminderDays(t, got, []time.Time{day(16), day(17)})
}

func TestCreateCompletionResetsStreak(t *testing.T) {
	creator := NewCreator(&seqIDs{})

	completions := make(domain.CompletionRecords)
	completions.Add("entity-1", "event-1", time.Date(2024, 1, 16, 14, 0, 0, 0, time.UTC))

	got := creator.Create("applet-1", reminderEntity(2),
		[]time.Time{day(15), day(16), day(17), day(18)}, completions, nil)

	// 15 builds, 16 completed resets, 17 builds, 18 reaches the threshold.
	assertReminderDays(t, got, []time.Time{day(18)})
}

func TestCreateInProgressCountsAsFinished(t *testing.T) {
	creator := NewCreator(&seqIDs{})

	progress := make(domain.ProgressRecords)
	progress.Add("entity-1", "event-1", time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC))

	got := creator.Create("applet-1", reminderEntity(1),
		[]time.Time{day(15), day(16)}, nil, progress)

	assertReminderDays(t, got, []time.Time{day(16)})
}

func TestCreateCompletionForOtherEventDoesNotReset(t *testing.T) {
	creator := NewCreator(&seqIDs{})

	completions := make(domain.CompletionRecords)
	completions.Add("entity-1", "other-event", time.Date(2024, 1, 15, 14, 0, 0, 0, time.UTC))

	got := creator.Create("applet-1", reminderEntity(1),
		[]time.Time{day(15)}, completions, nil)

	assertReminderDays(t, got, []time.Time{day(15)})
}

func TestDescribers(t *testing.T) {
	if Describers(nil) != nil {
		t.Error("expected nil for empty input")
	}

	reminders := []Notification{
		{EventDay: day(15), Reminder: domain.NotificationDescriber{NotificationID: "a"}},
		{EventDay: day(16), Reminder: domain.NotificationDescriber{NotificationID: "b"}},
	}

	got := Describers(reminders)
	if len(got) != 2 || got[0].NotificationID != "a" || got[1].NotificationID != "b" {
		t.Errorf("Describers() = %v, want stripped describers in order", got)
	}
}
