package trigger

import (
	"fmt"
	"testing"
	"time"

	"github.com/KasumiMercury/primind-notification-planning/internal/domain"
)

type stubRandom struct {
	value int
	calls int
}

func (s *stubRandom) Intn(n int) int {
	s.calls++
	if s.value >= n {
		return n - 1
	}
	return s.value
}

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

func todPtr(hours, minutes int) *domain.TimeOfDay {
	return &domain.TimeOfDay{Hours: hours, Minutes: minutes}
}

func dayUTC(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func eventEntity(settings []domain.NotificationSetting, av domain.EventAvailability) domain.EventEntity {
	scheduledAt := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	return domain.EventEntity{
		Event: &domain.ScheduleEvent{
			EntityID:     "entity-1",
			ID:           "event-1",
			ScheduledAt:  &scheduledAt,
			Availability: av,
			NotificationSettings: domain.NotificationSettings{
				Notifications: settings,
			},
		},
		Entity: domain.Entity{
			ID:        "entity-1",
			Name:      "mock-entity-name",
			IsVisible: true,
		},
	}
}

func TestGenerateForDayFixedTrigger(t *testing.T) {
	gen := NewGenerator(&stubRandom{}, &seqIDs{})
	day := dayUTC(2024, 1, 15)

	ee := eventEntity(
		[]domain.NotificationSetting{
			{TriggerType: domain.TriggerFixed, At: todPtr(15, 30)},
		},
		domain.EventAvailability{
			PeriodicityType:           domain.PeriodicityDaily,
			TimeFrom:                  todPtr(9, 0),
			TimeTo:                    todPtr(17, 0),
			AllowAccessBeforeFromTime: true,
		},
	)

	got := gen.GenerateForDay("applet-1", ee, day)

	if len(got) != 1 {
		t.Fatalf("got %d describers, want 1", len(got))
	}
	want := time.Date(2024, 1, 15, 15, 30, 0, 0, time.UTC)
	if !got[0].ScheduledAt.Equal(want) {
		t.Errorf("ScheduledAt = %v, want %v", got[0].ScheduledAt, want)
	}
	if got[0].Type != domain.NotificationRegular {
		t.Errorf("Type = %q, want %q", got[0].Type, domain.NotificationRegular)
	}
}

func TestGenerateForDayConfigurationOrder(t *testing.T) {
	gen := NewGenerator(&stubRandom{}, &seqIDs{})
	day := dayUTC(2024, 1, 15)

	ee := eventEntity(
		[]domain.NotificationSetting{
			{TriggerType: domain.TriggerFixed, At: todPtr(16, 0)},
			{TriggerType: domain.TriggerFixed, At: todPtr(10, 0)},
		},
		domain.EventAvailability{
			PeriodicityType:           domain.PeriodicityDaily,
			AllowAccessBeforeFromTime: true,
		},
	)

	got := gen.GenerateForDay("applet-1", ee, day)

	if len(got) != 2 {
		t.Fatalf("got %d describers, want 2", len(got))
	}
	// Configuration order is preserved even when it is not chronological.
	if got[0].ScheduledAt.Hour() != 16 || got[1].ScheduledAt.Hour() != 10 {
		t.Errorf("describer order = [%v, %v], want configured order", got[0].ScheduledAt, got[1].ScheduledAt)
	}
}

func TestGenerateForDayRandomTrigger(t *testing.T) {
	day := dayUTC(2024, 1, 15)

	tests := []struct {
		name   string
		random *stubRandom
		from   *domain.TimeOfDay
		to     *domain.TimeOfDay
		want   time.Time
	}{
		{
			name:   "offset added to window start",
			random: &stubRandom{value: 25},
			from:   todPtr(10, 0),
			to:     todPtr(12, 0),
			want:   time.Date(2024, 1, 15, 10, 25, 0, 0, time.UTC),
		},
		{
			name:   "zero width window collapses to from",
			random: &stubRandom{value: 7},
			from:   todPtr(10, 0),
			to:     todPtr(10, 0),
			want:   time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
		},
		{
			name:   "inverted window collapses to from",
			random: &stubRandom{value: 7},
			from:   todPtr(14, 0),
			to:     todPtr(12, 0),
			want:   time.Date(2024, 1, 15, 14, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := NewGenerator(tt.random, &seqIDs{})
			ee := eventEntity(
				[]domain.NotificationSetting{
					{TriggerType: domain.TriggerRandom, From: tt.from, To: tt.to},
				},
				domain.EventAvailability{
					PeriodicityType:           domain.PeriodicityDaily,
					AllowAccessBeforeFromTime: true,
				},
			)

			got := gen.GenerateForDay("applet-1", ee, day)

			if len(got) != 1 {
				t.Fatalf("got %d describers, want 1", len(got))
			}
			if !got[0].ScheduledAt.Equal(tt.want) {
				t.Errorf("ScheduledAt = %v, want %v", got[0].ScheduledAt, tt.want)
			}
		})
	}
}

func TestGenerateForDayRandomDrawStaysInWindow(t *testing.T) {
	day := dayUTC(2024, 1, 15)
	from := todPtr(10, 0)
	to := todPtr(11, 0)

	gen := NewGenerator(NewRandomSource(), &seqIDs{})
	ee := eventEntity(
		[]domain.NotificationSetting{
			{TriggerType: domain.TriggerRandom, From: from, To: to},
		},
		domain.EventAvailability{
			PeriodicityType:           domain.PeriodicityDaily,
			AllowAccessBeforeFromTime: true,
		},
	)

	windowStart := from.On(day)
	windowEnd := to.On(day)
	for i := 0; i < 50; i++ {
		got := gen.GenerateForDay("applet-1", ee, day)
		if len(got) != 1 {
			t.Fatalf("got %d describers, want 1", len(got))
		}
		at := got[0].ScheduledAt
		if at.Before(windowStart) || !at.Before(windowEnd) {
			t.Fatalf("draw %v outside [%v, %v)", at, windowStart, windowEnd)
		}
	}
}

func TestGenerateForDayClampsToWindowStart(t *testing.T) {
	day := dayUTC(2024, 1, 15)

	tests := []struct {
		name string
		av   domain.EventAvailability
		at   *domain.TimeOfDay
		want time.Time
	}{
		{
			name: "before window start lifts to window start",
			av: domain.EventAvailability{
				PeriodicityType: domain.PeriodicityDaily,
				TimeFrom:        todPtr(9, 0),
				TimeTo:          todPtr(17, 0),
			},
			at:   todPtr(8, 0),
			want: time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC),
		},
		{
			name: "early access allowed keeps configured time",
			av: domain.EventAvailability{
				PeriodicityType:           domain.PeriodicityDaily,
				TimeFrom:                  todPtr(9, 0),
				TimeTo:                    todPtr(17, 0),
				AllowAccessBeforeFromTime: true,
			},
			at:   todPtr(8, 0),
			want: time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC),
		},
		{
			name: "always available events are never clamped",
			av: domain.EventAvailability{
				PeriodicityType: domain.PeriodicityAlways,
				TimeFrom:        todPtr(9, 0),
				TimeTo:          todPtr(17, 0),
			},
			at:   todPtr(8, 0),
			want: time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC),
		},
		{
			name: "inside window keeps configured time",
			av: domain.EventAvailability{
				PeriodicityType: domain.PeriodicityDaily,
				TimeFrom:        todPtr(9, 0),
				TimeTo:          todPtr(17, 0),
			},
			at:   todPtr(12, 0),
			want: time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := NewGenerator(&stubRandom{}, &seqIDs{})
			ee := eventEntity(
				[]domain.NotificationSetting{
					{TriggerType: domain.TriggerFixed, At: tt.at},
				},
				tt.av,
			)

			got := gen.GenerateForDay("applet-1", ee, day)

			if len(got) != 1 {
				t.Fatalf("got %d describers, want 1", len(got))
			}
			if !got[0].ScheduledAt.Equal(tt.want) {
				t.Errorf("ScheduledAt = %v, want %v", got[0].ScheduledAt, tt.want)
			}
		})
	}
}

func TestGenerateForDaySkipsSettingsWithoutTime(t *testing.T) {
	gen := NewGenerator(&stubRandom{}, &seqIDs{})
	day := dayUTC(2024, 1, 15)

	ee := eventEntity(
		[]domain.NotificationSetting{
			{TriggerType: domain.TriggerFixed},
			{TriggerType: domain.TriggerRandom, From: todPtr(10, 0)},
			{TriggerType: domain.TriggerFixed, At: todPtr(11, 0)},
		},
		domain.EventAvailability{
			PeriodicityType:           domain.PeriodicityDaily,
			AllowAccessBeforeFromTime: true,
		},
	)

	got := gen.GenerateForDay("applet-1", ee, day)

	if len(got) != 1 {
		t.Fatalf("got %d describers, want 1", len(got))
	}
	if got[0].ScheduledAt.Hour() != 11 {
		t.Errorf("ScheduledAt = %v, want the 11:00 setting", got[0].ScheduledAt)
	}
}
