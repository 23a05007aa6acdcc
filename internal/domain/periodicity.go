package domain

// PeriodicityType is the recurrence rule bound to a schedule event.
type PeriodicityType string

const (
	PeriodicityNotDefined PeriodicityType = "NOT_DEFINED"
	PeriodicityAlways     PeriodicityType = "ALWAYS"
	PeriodicityOnce       PeriodicityType = "ONCE"
	PeriodicityDaily      PeriodicityType = "DAILY"
	PeriodicityWeekly     PeriodicityType = "WEEKLY"
	PeriodicityWeekdays   PeriodicityType = "WEEKDAYS"
	PeriodicityMonthly    PeriodicityType = "MONTHLY"
)

func (p PeriodicityType) String() string {
	return string(p)
}

// IsRepeatable reports whether the rule recurs across a start/end date range.
func (p PeriodicityType) IsRepeatable() bool {
	switch p {
	case PeriodicityDaily, PeriodicityWeekly, PeriodicityWeekdays, PeriodicityMonthly:
		return true
	default:
		return false
	}
}

// AvailabilityType classifies whether an entity is open around the clock or
// only inside a scheduled window.
type AvailabilityType string

const (
	AvailabilityAlwaysAvailable AvailabilityType = "ALWAYS_AVAILABLE"
	AvailabilityScheduledAccess AvailabilityType = "SCHEDULED_ACCESS"
)

// TriggerType is the policy for deriving a notification's time of day.
type TriggerType string

const (
	TriggerFixed  TriggerType = "FIXED"
	TriggerRandom TriggerType = "RANDOM"
)

// ActivityPipelineType distinguishes single activities from multi-activity flows.
type ActivityPipelineType string

const (
	PipelineRegular ActivityPipelineType = "regular"
	PipelineFlow    ActivityPipelineType = "flow"
)

// NotificationType distinguishes regular notifications from reminders.
type NotificationType string

const (
	NotificationRegular  NotificationType = "REGULAR"
	NotificationReminder NotificationType = "REMINDER"
)

func (n NotificationType) String() string {
	return string(n)
}

// BreakReason is a terminal classification explaining why notification
// generation stopped for an event before producing any notifications.
type BreakReason string

const (
	BreakScheduledAtIsEmpty                    BreakReason = "ScheduledAtIsEmpty"
	BreakScheduledDayIsLessThanYesterday       BreakReason = "ScheduledDayIsLessThanYesterday"
	BreakEventDayToIsLessThanCurrentDay        BreakReason = "EventDayToIsLessThanCurrentDay"
	BreakEventDayFromIsMoreThanLastScheduleDay BreakReason = "EventDayFromIsMoreThanLastScheduleDay"
	BreakEntityHidden                          BreakReason = "EntityHidden"
)

func (b BreakReason) String() string {
	return string(b)
}
