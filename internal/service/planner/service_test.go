package planner

import (
	"context"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/KasumiMercury/primind-notification-planning/internal/domain"
	"github.com/KasumiMercury/primind-notification-planning/internal/service/reminder"
)

var (
	testNow             = time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	testLastScheduleDay = time.Date(2024, 1, 29, 0, 0, 0, 0, time.UTC)
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func todPtr(hours, minutes int) *domain.TimeOfDay {
	return &domain.TimeOfDay{Hours: hours, Minutes: minutes}
}

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func newTestService(t *testing.T) (*Service, *MockDaysExtractor, *MockDayProcessor, *MockReminderCreator) {
	t.Helper()

	ctrl := gomock.NewController(t)
	extractor := NewMockDaysExtractor(ctrl)
	processor := NewMockDayProcessor(ctrl)
	creator := NewMockReminderCreator(ctrl)

	svc := NewService(domain.FixedClock{Instant: testNow}, extractor, processor, creator, nil, 14)
	return svc, extractor, processor, creator
}

func mockEventEntity(periodicity domain.PeriodicityType, notifications int, withReminder bool) domain.EventEntity {
	scheduledAt := time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)

	settings := make([]domain.NotificationSetting, 0, notifications)
	for i := 0; i < notifications; i++ {
		settings = append(settings, domain.NotificationSetting{
			TriggerType: domain.TriggerFixed,
			At:          todPtr(15, 30),
		})
	}

	var reminderSetting *domain.ReminderSetting
	if withReminder {
		reminderSetting = &domain.ReminderSetting{
			ActivityIncomplete: 1,
			ReminderTime:       domain.TimeOfDay{Hours: 18, Minutes: 25},
		}
	}

	return domain.EventEntity{
		Event: &domain.ScheduleEvent{
			EntityID:    "entity-1",
			ID:          "event-1",
			ScheduledAt: &scheduledAt,
			Availability: domain.EventAvailability{
				AvailabilityType: domain.AvailabilityScheduledAccess,
				PeriodicityType:  periodicity,
				TimeFrom:         todPtr(9, 0),
				TimeTo:           todPtr(21, 0),
			},
			NotificationSettings: domain.NotificationSettings{
				Notifications: settings,
				Reminder:      reminderSetting,
			},
		},
		Entity: domain.Entity{
			ID:           "entity-1",
			Name:         "mock-entity-name",
			Description:  "mock-description",
			IsVisible:    true,
			PipelineType: domain.PipelineRegular,
		},
	}
}

func regularAt(id string, at time.Time) domain.NotificationDescriber {
	return domain.NotificationDescriber{
		NotificationID: id,
		ScheduledAt:    at,
		Type:           domain.NotificationRegular,
	}
}

func reminderAt(id string, eventDay time.Time, at time.Time) reminder.Notification {
	return reminder.Notification{
		EventDay: eventDay,
		Reminder: domain.NotificationDescriber{
			NotificationID: id,
			ScheduledAt:    at,
			Type:           domain.NotificationReminder,
		},
	}
}

func TestBuildBreakReasons(t *testing.T) {
	tests := []struct {
		name          string
		ee            domain.EventEntity
		wantReason    domain.BreakReason
		wantEventName string
	}{
		{
			name: "missing scheduledAt leaves the event name empty",
			ee: func() domain.EventEntity {
				ee := mockEventEntity(domain.PeriodicityOnce, 1, false)
				ee.Event.ScheduledAt = nil
				return ee
			}(),
			wantReason:    domain.BreakScheduledAtIsEmpty,
			wantEventName: "",
		},
		{
			name: "once scheduled before yesterday",
			ee: func() domain.EventEntity {
				ee := mockEventEntity(domain.PeriodicityOnce, 1, false)
				ee.Event.ScheduledAt = timePtr(time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC))
				return ee
			}(),
			wantReason:    domain.BreakScheduledDayIsLessThanYesterday,
			wantEventName: "For mock-entity-name, ONCE, 1 notifications, reminder unset",
		},
		{
			name: "daily already ended",
			ee: func() domain.EventEntity {
				ee := mockEventEntity(domain.PeriodicityDaily, 1, false)
				ee.Event.Availability.EndDate = timePtr(day(10))
				return ee
			}(),
			wantReason:    domain.BreakEventDayToIsLessThanCurrentDay,
			wantEventName: "For mock-entity-name, DAILY, 1 notifications, reminder unset",
		},
		{
			name: "weekly starting beyond the horizon",
			ee: func() domain.EventEntity {
				ee := mockEventEntity(domain.PeriodicityWeekly, 1, false)
				ee.Event.Availability.StartDate = timePtr(day(30))
				return ee
			}(),
			wantReason:    domain.BreakEventDayFromIsMoreThanLastScheduleDay,
			wantEventName: "For mock-entity-name, WEEKLY, 1 notifications, reminder unset",
		},
		{
			name: "hidden entity",
			ee: func() domain.EventEntity {
				ee := mockEventEntity(domain.PeriodicityDaily, 1, false)
				ee.Entity.IsVisible = false
				return ee
			}(),
			wantReason:    domain.BreakEntityHidden,
			wantEventName: "For mock-entity-name, DAILY, 1 notifications, reminder unset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _, _ := newTestService(t)

			resp := svc.Build(context.Background(), Input{
				AppletID:      "applet-1",
				EventEntities: []domain.EventEntity{tt.ee},
			})

			if len(resp.Events) != 1 {
				t.Fatalf("got %d events, want 1", len(resp.Events))
			}
			event := resp.Events[0]

			if event.BreakReason != tt.wantReason {
				t.Errorf("BreakReason = %q, want %q", event.BreakReason, tt.wantReason)
			}
			if event.EventName != tt.wantEventName {
				t.Errorf("EventName = %q, want %q", event.EventName, tt.wantEventName)
			}
			if len(event.Notifications) != 0 {
				t.Errorf("got %d notifications, want 0", len(event.Notifications))
			}
			if resp.BrokenCount != 1 {
				t.Errorf("BrokenCount = %d, want 1", resp.BrokenCount)
			}
			if resp.NotificationCount != 0 {
				t.Errorf("NotificationCount = %d, want 0", resp.NotificationCount)
			}
		})
	}
}

func TestBuildNilEventIsBroken(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	resp := svc.Build(context.Background(), Input{
		AppletID: "applet-1",
		EventEntities: []domain.EventEntity{
			{Entity: domain.Entity{ID: "entity-1", Name: "mock-entity-name", IsVisible: true}},
		},
	})

	if len(resp.Events) != 1 {
		t.Fatalf("got %d events, want 1", len(resp.Events))
	}
	event := resp.Events[0]

	if event.BreakReason != domain.BreakScheduledAtIsEmpty {
		t.Errorf("BreakReason = %q, want %q", event.BreakReason, domain.BreakScheduledAtIsEmpty)
	}
	if event.EventName != "" {
		t.Errorf("EventName = %q, want empty", event.EventName)
	}
	if len(event.Notifications) != 0 {
		t.Errorf("got %d notifications, want 0", len(event.Notifications))
	}
	if resp.BrokenCount != 1 {
		t.Errorf("BrokenCount = %d, want 1", resp.BrokenCount)
	}
}

func TestBuildOnceWithReminder(t *testing.T) {
	svc, extractor, processor, creator := newTestService(t)

	ee := mockEventEntity(domain.PeriodicityOnce, 1, true)
	occurrence := day(15)
	regular := regularAt("regular-1", time.Date(2024, 1, 15, 15, 30, 0, 0, time.UTC))
	rem := reminderAt("reminder-1", occurrence, time.Date(2024, 1, 15, 18, 25, 0, 0, time.UTC))

	extractor.EXPECT().
		Extract(ee.Event, testNow, testLastScheduleDay).
		Return([]time.Time{occurrence})
	processor.EXPECT().
		GenerateForDay("applet-1", ee, occurrence).
		Return([]domain.NotificationDescriber{regular})
	extractor.EXPECT().
		ExtractForReminders(ee.Event, testNow, testLastScheduleDay).
		Return([]time.Time{occurrence})
	creator.EXPECT().
		Create("applet-1", ee, []time.Time{occurrence}, gomock.Nil(), gomock.Nil()).
		Return([]reminder.Notification{rem})

	resp := svc.Build(context.Background(), Input{
		AppletID:      "applet-1",
		EventEntities: []domain.EventEntity{ee},
	})

	if len(resp.Events) != 1 {
		t.Fatalf("got %d events, want 1", len(resp.Events))
	}
	event := resp.Events[0]

	wantName := "For mock-entity-name, ONCE, 1 notifications, reminder set"
	if event.EventName != wantName {
		t.Errorf("EventName = %q, want %q", event.EventName, wantName)
	}
	if event.BreakReason != "" {
		t.Errorf("BreakReason = %q, want empty", event.BreakReason)
	}

	if len(event.Notifications) != 2 {
		t.Fatalf("got %d notifications, want 2", len(event.Notifications))
	}
	if event.Notifications[0].NotificationID != "regular-1" {
		t.Errorf("first notification = %q, want the 15:30 regular", event.Notifications[0].NotificationID)
	}
	if event.Notifications[1].NotificationID != "reminder-1" {
		t.Errorf("second notification = %q, want the 18:25 reminder", event.Notifications[1].NotificationID)
	}

	if resp.NotificationCount != 2 {
		t.Errorf("NotificationCount = %d, want 2", resp.NotificationCount)
	}
	if resp.BrokenCount != 0 {
		t.Errorf("BrokenCount = %d, want 0", resp.BrokenCount)
	}
}

func TestBuildDailyInterleavesReminders(t *testing.T) {
	svc, extractor, processor, creator := newTestService(t)

	ee := mockEventEntity(domain.PeriodicityDaily, 1, true)
	days := []time.Time{day(15), day(16), day(17)}
	reminderDays := []time.Time{day(14), day(15), day(16), day(17)}

	extractor.EXPECT().
		Extract(ee.Event, testNow, testLastScheduleDay).
		Return(days)
	for _, d := range days {
		processor.EXPECT().
			GenerateForDay("applet-1", ee, d).
			Return([]domain.NotificationDescriber{
				regularAt("regular-"+d.Format("02"), time.Date(2024, 1, d.Day(), 15, 30, 0, 0, time.UTC)),
			})
	}
	extractor.EXPECT().
		ExtractForReminders(ee.Event, testNow, testLastScheduleDay).
		Return(reminderDays)
	creator.EXPECT().
		Create("applet-1", ee, reminderDays, gomock.Nil(), gomock.Nil()).
		Return([]reminder.Notification{
			reminderAt("reminder-14", day(14), time.Date(2024, 1, 14, 18, 25, 0, 0, time.UTC)),
			reminderAt("reminder-15", day(15), time.Date(2024, 1, 15, 18, 25, 0, 0, time.UTC)),
			reminderAt("reminder-16", day(16), time.Date(2024, 1, 16, 18, 25, 0, 0, time.UTC)),
		})

	resp := svc.Build(context.Background(), Input{
		AppletID:      "applet-1",
		EventEntities: []domain.EventEntity{ee},
	})

	if len(resp.Events) != 1 {
		t.Fatalf("got %d events, want 1", len(resp.Events))
	}

	wantOrder := []string{
		"reminder-14",
		"regular-15",
		"reminder-15",
		"regular-16",
		"reminder-16",
		"regular-17",
	}
	notifications := resp.Events[0].Notifications
	if len(notifications) != len(wantOrder) {
		t.Fatalf("got %d notifications, want %d", len(notifications), len(wantOrder))
	}
	for i, want := range wantOrder {
		if notifications[i].NotificationID != want {
			t.Errorf("notification[%d] = %q, want %q", i, notifications[i].NotificationID, want)
		}
	}
}

func TestBuildWithoutReminderSkipsReminderComputation(t *testing.T) {
	svc, extractor, processor, _ := newTestService(t)

	ee := mockEventEntity(domain.PeriodicityDaily, 1, false)
	days := []time.Time{day(15)}

	extractor.EXPECT().
		Extract(ee.Event, testNow, testLastScheduleDay).
		Return(days)
	processor.EXPECT().
		GenerateForDay("applet-1", ee, day(15)).
		Return([]domain.NotificationDescriber{
			regularAt("regular-1", time.Date(2024, 1, 15, 15, 30, 0, 0, time.UTC)),
		})

	// No ExtractForReminders or Create expectations: the controller fails the
	// test if either is called.
	resp := svc.Build(context.Background(), Input{
		AppletID:      "applet-1",
		EventEntities: []domain.EventEntity{ee},
	})

	if resp.NotificationCount != 1 {
		t.Errorf("NotificationCount = %d, want 1", resp.NotificationCount)
	}
}

func TestBuildProcessesEventsIndependently(t *testing.T) {
	svc, extractor, processor, _ := newTestService(t)

	broken := mockEventEntity(domain.PeriodicityOnce, 1, false)
	broken.Event.ScheduledAt = nil

	ok := mockEventEntity(domain.PeriodicityDaily, 1, false)
	ok.Event.ID = "event-2"

	extractor.EXPECT().
		Extract(ok.Event, testNow, testLastScheduleDay).
		Return([]time.Time{day(15)})
	processor.EXPECT().
		GenerateForDay("applet-1", ok, day(15)).
		Return([]domain.NotificationDescriber{
			regularAt("regular-1", time.Date(2024, 1, 15, 15, 30, 0, 0, time.UTC)),
		})

	resp := svc.Build(context.Background(), Input{
		AppletID:      "applet-1",
		EventEntities: []domain.EventEntity{broken, ok},
	})

	if len(resp.Events) != 2 {
		t.Fatalf("got %d events, want 2", len(resp.Events))
	}
	if !resp.Events[0].Broken() {
		t.Error("expected first event to be broken")
	}
	if resp.Events[1].Broken() {
		t.Error("expected second event to succeed")
	}
	if resp.Events[1].EventID != "event-2" {
		t.Errorf("event order changed: got %q", resp.Events[1].EventID)
	}
	if resp.NotificationCount != 1 || resp.BrokenCount != 1 {
		t.Errorf("counts = (%d, %d), want (1, 1)", resp.NotificationCount, resp.BrokenCount)
	}
}

func TestEventName(t *testing.T) {
	tests := []struct {
		name string
		ee   domain.EventEntity
		want string
	}{
		{
			name: "reminder unset",
			ee:   mockEventEntity(domain.PeriodicityOnce, 1, false),
			want: "For mock-entity-name, ONCE, 1 notifications, reminder unset",
		},
		{
			name: "reminder set",
			ee:   mockEventEntity(domain.PeriodicityWeekly, 2, true),
			want: "For mock-entity-name, WEEKLY, 2 notifications, reminder set",
		},
		{
			name: "no notification settings",
			ee:   mockEventEntity(domain.PeriodicityAlways, 0, false),
			want: "For mock-entity-name, ALWAYS, 0 notifications, reminder unset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EventName(tt.ee); got != tt.want {
				t.Errorf("EventName() = %q, want %q", got, tt.want)
			}
		})
	}
}
