package planner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/KasumiMercury/primind-notification-planning/internal/domain"
	"github.com/KasumiMercury/primind-notification-planning/internal/observability/metrics"
	"github.com/KasumiMercury/primind-notification-planning/internal/service/availability"
	"github.com/KasumiMercury/primind-notification-planning/internal/service/merge"
	"github.com/KasumiMercury/primind-notification-planning/internal/service/reminder"
)

// Service orchestrates one planning pass: availability evaluation, occurrence
// extraction, per-day generation, reminder computation and the chronological
// merge, independently per event.
type Service struct {
	clock           domain.Clock
	evaluator       *availability.Evaluator
	daysExtractor   DaysExtractor
	dayProcessor    DayProcessor
	reminderCreator ReminderCreator
	plannerMetrics  *metrics.PlannerMetrics
	horizonDays     int
}

func NewService(
	clock domain.Clock,
	daysExtractor DaysExtractor,
	dayProcessor DayProcessor,
	reminderCreator ReminderCreator,
	plannerMetrics *metrics.PlannerMetrics,
	horizonDays int,
) *Service {
	return &Service{
		clock:           clock,
		evaluator:       availability.NewEvaluator(),
		daysExtractor:   daysExtractor,
		dayProcessor:    dayProcessor,
		reminderCreator: reminderCreator,
		plannerMetrics:  plannerMetrics,
		horizonDays:     horizonDays,
	}
}

// Build runs one planning pass over the given event entities. The clock is
// read exactly once; every event in the pass sees the same "now" and horizon.
func (s *Service) Build(ctx context.Context, in Input) *Response {
	started := time.Now()

	now := s.clock.Now()
	lastScheduleDay := domain.AddDays(domain.StartOfDay(now), s.horizonDays)

	events := make([]domain.EventNotificationDescribers, 0, len(in.EventEntities))
	notificationCount := 0
	brokenCount := 0

	for _, ee := range in.EventEntities {
		result := s.processEvent(ctx, in, ee, now, lastScheduleDay)
		if result.Broken() {
			brokenCount++
		}
		notificationCount += len(result.Notifications)
		events = append(events, result)
	}

	if s.plannerMetrics != nil {
		s.plannerMetrics.RecordBuildDuration(ctx, time.Since(started).Seconds())
	}

	slog.InfoContext(ctx, "planning pass completed",
		slog.String("applet_id", in.AppletID),
		slog.Int("event_count", len(in.EventEntities)),
		slog.Int("notification_count", notificationCount),
		slog.Int("broken_count", brokenCount),
		slog.Time("last_schedule_day", lastScheduleDay),
	)

	return &Response{
		AppletID:          in.AppletID,
		AppletName:        in.AppletName,
		Events:            events,
		NotificationCount: notificationCount,
		BrokenCount:       brokenCount,
	}
}

func (s *Service) processEvent(
	ctx context.Context,
	in Input,
	ee domain.EventEntity,
	now, lastScheduleDay time.Time,
) domain.EventNotificationDescribers {
	// A snapshot entry without an event is treated like one that was never
	// configured; Build must not panic for any representable input.
	if ee.Event == nil {
		if s.plannerMetrics != nil {
			s.plannerMetrics.RecordEventProcessed(ctx, domain.BreakScheduledAtIsEmpty.String())
		}
		return domain.EventNotificationDescribers{
			Notifications: []domain.NotificationDescriber{},
			BreakReason:   domain.BreakScheduledAtIsEmpty,
		}
	}

	result := domain.EventNotificationDescribers{
		EventID:       ee.Event.ID,
		Notifications: []domain.NotificationDescriber{},
		ScheduleEvent: ee.Event,
	}

	if reason, broken := s.evaluator.Evaluate(ee, now, lastScheduleDay); broken {
		result.BreakReason = reason
		// No entity or periodicity context exists for an unconfigured event.
		if reason != domain.BreakScheduledAtIsEmpty {
			result.EventName = EventName(ee)
		}

		slog.DebugContext(ctx, "event generation stopped",
			slog.String("event_id", ee.Event.ID),
			slog.String("break_reason", reason.String()),
		)
		if s.plannerMetrics != nil {
			s.plannerMetrics.RecordEventProcessed(ctx, reason.String())
		}

		return result
	}

	result.EventName = EventName(ee)

	days := s.daysExtractor.Extract(ee.Event, now, lastScheduleDay)

	regulars := make([]domain.NotificationDescriber, 0, len(days)*len(ee.Event.NotificationSettings.Notifications))
	for _, day := range days {
		regulars = append(regulars, s.dayProcessor.GenerateForDay(in.AppletID, ee, day)...)
	}

	var reminders []reminder.Notification
	if ee.Event.NotificationSettings.Reminder != nil {
		reminderDays := s.daysExtractor.ExtractForReminders(ee.Event, now, lastScheduleDay)
		reminders = s.reminderCreator.Create(in.AppletID, ee, reminderDays, in.Completions, in.Progress)
	}

	result.Notifications = merge.Chronological(regulars, reminder.Describers(reminders))

	slog.DebugContext(ctx, "event processed",
		slog.String("event_id", ee.Event.ID),
		slog.Int("occurrence_days", len(days)),
		slog.Int("regular_count", len(regulars)),
		slog.Int("reminder_count", len(reminders)),
	)
	if s.plannerMetrics != nil {
		s.plannerMetrics.RecordEventProcessed(ctx, "scheduled")
		s.plannerMetrics.RecordNotificationsBuilt(ctx, domain.NotificationRegular.String(), len(regulars))
		s.plannerMetrics.RecordNotificationsBuilt(ctx, domain.NotificationReminder.String(), len(reminders))
	}

	return result
}

// EventName renders the human-readable event summary used by diagnostics:
// "For {entity}, {PERIODICITY}, {count} notifications, reminder {set|unset}".
// It reflects the configured settings, not the generated output.
func EventName(ee domain.EventEntity) string {
	reminderState := "unset"
	if ee.Event.NotificationSettings.Reminder != nil {
		reminderState = "set"
	}
	return fmt.Sprintf("For %s, %s, %d notifications, reminder %s",
		ee.Entity.Name,
		ee.Event.Availability.PeriodicityType,
		len(ee.Event.NotificationSettings.Notifications),
		reminderState,
	)
}
