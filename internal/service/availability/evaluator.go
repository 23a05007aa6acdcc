package availability

import (
	"time"

	"github.com/KasumiMercury/primind-notification-planning/internal/domain"
)

// Evaluator classifies whether notification generation should proceed for one
// event entity or stop early with a break reason. Checks run in strict order
// and the first match is terminal.
type Evaluator struct{}

func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate returns the break reason and true when generation must stop, or a
// zero reason and false when the event passes all checks.
func (e *Evaluator) Evaluate(ee domain.EventEntity, now, lastScheduleDay time.Time) (domain.BreakReason, bool) {
	event := ee.Event

	if event.ScheduledAt == nil {
		return domain.BreakScheduledAtIsEmpty, true
	}

	currentDay := domain.StartOfDay(now)

	if event.Availability.PeriodicityType == domain.PeriodicityOnce {
		scheduledDay := domain.StartOfDay(*event.ScheduledAt)
		yesterday := domain.AddDays(currentDay, -1)
		if scheduledDay.Before(yesterday) {
			return domain.BreakScheduledDayIsLessThanYesterday, true
		}
	}

	if event.Availability.PeriodicityType.IsRepeatable() {
		if end := event.Availability.EndDate; end != nil && domain.StartOfDay(*end).Before(currentDay) {
			return domain.BreakEventDayToIsLessThanCurrentDay, true
		}
		if start := event.Availability.StartDate; start != nil && domain.StartOfDay(*start).After(lastScheduleDay) {
			return domain.BreakEventDayFromIsMoreThanLastScheduleDay, true
		}
	}

	if !ee.Entity.IsVisible {
		return domain.BreakEntityHidden, true
	}

	return "", false
}
