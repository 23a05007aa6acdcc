package calendar

import (
	"time"

	"github.com/KasumiMercury/primind-notification-planning/internal/domain"
)

// Extractor computes the calendar days on which a schedule event occurs
// within the planning horizon. Results are distinct, ascending midnights in
// the input's location.
type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the occurrence days of the event restricted to
// [max(currentDay, startDate), min(lastScheduleDay, endDate)]. A
// scheduled-access event lacking its mandatory time window yields no days.
func (e *Extractor) Extract(event *domain.ScheduleEvent, now, lastScheduleDay time.Time) []time.Time {
	av := event.Availability
	periodicity := av.PeriodicityType

	if periodicity != domain.PeriodicityAlways && (av.TimeFrom == nil || av.TimeTo == nil) {
		return nil
	}

	from := domain.StartOfDay(now)
	if av.StartDate != nil {
		if start := domain.StartOfDay(*av.StartDate); start.After(from) {
			from = start
		}
	}

	to := domain.StartOfDay(lastScheduleDay)
	if av.EndDate != nil {
		if end := domain.StartOfDay(*av.EndDate); end.Before(to) {
			to = end
		}
	}

	if to.Before(from) {
		return nil
	}

	switch periodicity {
	case domain.PeriodicityAlways, domain.PeriodicityDaily:
		return daysBetween(from, to, nil)
	case domain.PeriodicityWeekdays:
		return daysBetween(from, to, func(d time.Time) bool {
			wd := d.Weekday()
			return wd != time.Saturday && wd != time.Sunday
		})
	case domain.PeriodicityOnce:
		if event.ScheduledAt == nil {
			return nil
		}
		day := domain.StartOfDay(*event.ScheduledAt)
		if day.Before(from) || day.After(to) {
			return nil
		}
		return []time.Time{day}
	case domain.PeriodicityWeekly:
		return e.weeklyDays(event, from, to)
	case domain.PeriodicityMonthly:
		return e.monthlyDays(event, from, to)
	default:
		return nil
	}
}

// ExtractForReminders returns the occurrence days extended backward by the
// reminder streak window, so a carried-over incomplete streak can place a
// reminder on a day preceding the first in-horizon occurrence. The extension
// never reaches before the event's start date or recurrence anchor.
func (e *Extractor) ExtractForReminders(event *domain.ScheduleEvent, now, lastScheduleDay time.Time) []time.Time {
	days := e.Extract(event, now, lastScheduleDay)

	reminder := event.NotificationSettings.Reminder
	if reminder == nil || reminder.ActivityIncomplete <= 0 || len(days) == 0 {
		return days
	}

	floor := recurrenceFloor(event)
	prior := make([]time.Time, 0, reminder.ActivityIncomplete)
	day := days[0]
	for i := 0; i < reminder.ActivityIncomplete; i++ {
		prev, ok := previousOccurrence(event.Availability.PeriodicityType, event, day)
		if !ok {
			break
		}
		if floor != nil && prev.Before(*floor) {
			break
		}
		prior = append([]time.Time{prev}, prior...)
		day = prev
	}

	return append(prior, days...)
}

func (e *Extractor) weeklyDays(event *domain.ScheduleEvent, from, to time.Time) []time.Time {
	if event.ScheduledAt == nil {
		return nil
	}

	days := make([]time.Time, 0, 4)
	for day := domain.StartOfDay(*event.ScheduledAt); !day.After(to); day = domain.AddDays(day, 7) {
		if day.Before(from) {
			continue
		}
		days = append(days, day)
	}
	return days
}

func (e *Extractor) monthlyDays(event *domain.ScheduleEvent, from, to time.Time) []time.Time {
	if event.ScheduledAt == nil {
		return nil
	}

	anchor := domain.StartOfDay(*event.ScheduledAt)
	dayOfMonth := anchor.Day()

	days := make([]time.Time, 0, 2)
	year, month := anchor.Year(), anchor.Month()
	for {
		day := monthlyOccurrence(year, month, dayOfMonth, anchor.Location())
		if day.After(to) {
			break
		}
		if !day.Before(from) && !day.Before(anchor) {
			days = append(days, day)
		}
		month++
		if month > time.December {
			month = time.January
			year++
		}
	}
	return days
}

// monthlyOccurrence clamps the target day of month to the last valid day of
// shorter months.
func monthlyOccurrence(year int, month time.Month, dayOfMonth int, loc *time.Location) time.Time {
	if last := daysInMonth(year, month, loc); dayOfMonth > last {
		dayOfMonth = last
	}
	return time.Date(year, month, dayOfMonth, 0, 0, 0, 0, loc)
}

func daysInMonth(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}

func daysBetween(from, to time.Time, include func(time.Time) bool) []time.Time {
	days := make([]time.Time, 0, 16)
	for day := from; !day.After(to); day = domain.AddDays(day, 1) {
		if include != nil && !include(day) {
			continue
		}
		days = append(days, day)
	}
	return days
}

// previousOccurrence steps one recurrence interval backward from day.
func previousOccurrence(periodicity domain.PeriodicityType, event *domain.ScheduleEvent, day time.Time) (time.Time, bool) {
	switch periodicity {
	case domain.PeriodicityAlways, domain.PeriodicityDaily:
		return domain.AddDays(day, -1), true
	case domain.PeriodicityWeekdays:
		prev := domain.AddDays(day, -1)
		for prev.Weekday() == time.Saturday || prev.Weekday() == time.Sunday {
			prev = domain.AddDays(prev, -1)
		}
		return prev, true
	case domain.PeriodicityWeekly:
		return domain.AddDays(day, -7), true
	case domain.PeriodicityMonthly:
		if event.ScheduledAt == nil {
			return time.Time{}, false
		}
		anchorDay := domain.StartOfDay(*event.ScheduledAt).Day()
		year, month := day.Year(), day.Month()
		month--
		if month < time.January {
			month = time.December
			year--
		}
		return monthlyOccurrence(year, month, anchorDay, day.Location()), true
	default:
		// ONCE has no prior occurrences.
		return time.Time{}, false
	}
}

// recurrenceFloor is the earliest day a backward extension may reach.
func recurrenceFloor(event *domain.ScheduleEvent) *time.Time {
	var floor *time.Time
	if event.Availability.StartDate != nil {
		start := domain.StartOfDay(*event.Availability.StartDate)
		floor = &start
	}
	if event.ScheduledAt != nil && event.Availability.PeriodicityType != domain.PeriodicityDaily &&
		event.Availability.PeriodicityType != domain.PeriodicityAlways &&
		event.Availability.PeriodicityType != domain.PeriodicityWeekdays {
		anchor := domain.StartOfDay(*event.ScheduledAt)
		if floor == nil || anchor.After(*floor) {
			floor = &anchor
		}
	}
	return floor
}
