package availability

import (
	"testing"
	"time"

	"github.com/KasumiMercury/primind-notification-planning/internal/domain"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func eventEntity(event *domain.ScheduleEvent, visible bool) domain.EventEntity {
	return domain.EventEntity{
		Event: event,
		Entity: domain.Entity{
			ID:        "entity-1",
			Name:      "mock-entity-name",
			IsVisible: visible,
		},
	}
}

func TestEvaluate(t *testing.T) {
	evaluator := NewEvaluator()

	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	lastScheduleDay := time.Date(2024, 1, 29, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		ee         domain.EventEntity
		wantReason domain.BreakReason
		wantBroken bool
	}{
		{
			name: "nil scheduledAt stops generation",
			ee: eventEntity(&domain.ScheduleEvent{
				ID: "event-1",
			}, true),
			wantReason: domain.BreakScheduledAtIsEmpty,
			wantBroken: true,
		},
		{
			name: "once scheduled before yesterday stops generation",
			ee: eventEntity(&domain.ScheduleEvent{
				ID:          "event-1",
				ScheduledAt: timePtr(time.Date(2024, 1, 13, 12, 0, 0, 0, time.UTC)),
				Availability: domain.EventAvailability{
					PeriodicityType: domain.PeriodicityOnce,
				},
			}, true),
			wantReason: domain.BreakScheduledDayIsLessThanYesterday,
			wantBroken: true,
		},
		{
			name: "once scheduled yesterday passes",
			ee: eventEntity(&domain.ScheduleEvent{
				ID:          "event-1",
				ScheduledAt: timePtr(time.Date(2024, 1, 14, 12, 0, 0, 0, time.UTC)),
				Availability: domain.EventAvailability{
					PeriodicityType: domain.PeriodicityOnce,
				},
			}, true),
			wantBroken: false,
		},
		{
			name: "repeatable with end date in the past stops generation",
			ee: eventEntity(&domain.ScheduleEvent{
				ID:          "event-1",
				ScheduledAt: timePtr(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)),
				Availability: domain.EventAvailability{
					PeriodicityType: domain.PeriodicityDaily,
					EndDate:         timePtr(time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC)),
				},
			}, true),
			wantReason: domain.BreakEventDayToIsLessThanCurrentDay,
			wantBroken: true,
		},
		{
			name: "repeatable ending today passes",
			ee: eventEntity(&domain.ScheduleEvent{
				ID:          "event-1",
				ScheduledAt: timePtr(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)),
				Availability: domain.EventAvailability{
					PeriodicityType: domain.PeriodicityDaily,
					EndDate:         timePtr(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)),
				},
			}, true),
			wantBroken: false,
		},
		{
			name: "repeatable starting beyond the horizon stops generation",
			ee: eventEntity(&domain.ScheduleEvent{
				ID:          "event-1",
				ScheduledAt: timePtr(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)),
				Availability: domain.EventAvailability{
					PeriodicityType: domain.PeriodicityWeekly,
					StartDate:       timePtr(time.Date(2024, 1, 30, 0, 0, 0, 0, time.UTC)),
				},
			}, true),
			wantReason: domain.BreakEventDayFromIsMoreThanLastScheduleDay,
			wantBroken: true,
		},
		{
			name: "repeatable starting on the last schedule day passes",
			ee: eventEntity(&domain.ScheduleEvent{
				ID:          "event-1",
				ScheduledAt: timePtr(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)),
				Availability: domain.EventAvailability{
					PeriodicityType: domain.PeriodicityWeekly,
					StartDate:       timePtr(time.Date(2024, 1, 29, 0, 0, 0, 0, time.UTC)),
				},
			}, true),
			wantBroken: false,
		},
		{
			name: "hidden entity stops generation",
			ee: eventEntity(&domain.ScheduleEvent{
				ID:          "event-1",
				ScheduledAt: timePtr(time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)),
				Availability: domain.EventAvailability{
					PeriodicityType: domain.PeriodicityDaily,
				},
			}, false),
			wantReason: domain.BreakEntityHidden,
			wantBroken: true,
		},
		{
			name: "date range checks run before visibility",
			ee: eventEntity(&domain.ScheduleEvent{
				ID:          "event-1",
				ScheduledAt: timePtr(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)),
				Availability: domain.EventAvailability{
					PeriodicityType: domain.PeriodicityDaily,
					EndDate:         timePtr(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)),
				},
			}, false),
			wantReason: domain.BreakEventDayToIsLessThanCurrentDay,
			wantBroken: true,
		},
		{
			name: "visible always event passes",
			ee: eventEntity(&domain.ScheduleEvent{
				ID:          "event-1",
				ScheduledAt: timePtr(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)),
				Availability: domain.EventAvailability{
					PeriodicityType: domain.PeriodicityAlways,
				},
			}, true),
			wantBroken: false,
		},
		{
			name: "once date range is not checked against start and end dates",
			ee: eventEntity(&domain.ScheduleEvent{
				ID:          "event-1",
				ScheduledAt: timePtr(time.Date(2024, 1, 16, 12, 0, 0, 0, time.UTC)),
				Availability: domain.EventAvailability{
					PeriodicityType: domain.PeriodicityOnce,
					EndDate:         timePtr(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
				},
			}, true),
			wantBroken: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reason, broken := evaluator.Evaluate(tt.ee, now, lastScheduleDay)

			if broken != tt.wantBroken {
				t.Fatalf("Evaluate() broken = %v, want %v (reason %q)", broken, tt.wantBroken, reason)
			}
			if reason != tt.wantReason {
				t.Errorf("Evaluate() reason = %q, want %q", reason, tt.wantReason)
			}
		})
	}
}
