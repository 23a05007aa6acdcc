package trigger

import (
	"math/rand"
	"sync"
	"time"

	"github.com/KasumiMercury/primind-notification-planning/internal/domain"
)

// RandomSource yields a uniform int in [0, n). The sampling strategy for
// RANDOM triggers is pluggable; tests pin it instead of relying on the RNG.
type RandomSource interface {
	Intn(n int) int
}

type lockedRandSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewRandomSource returns the production random source.
func NewRandomSource() RandomSource {
	return &lockedRandSource{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (s *lockedRandSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Intn(n)
}

// Generator produces the regular notification describers for one occurrence
// day, honoring each configured setting's trigger policy in declared order.
type Generator struct {
	random RandomSource
	ids    domain.IDSource
}

func NewGenerator(random RandomSource, ids domain.IDSource) *Generator {
	return &Generator{
		random: random,
		ids:    ids,
	}
}

// GenerateForDay returns zero or more describers for the given occurrence day,
// one per configured notification, preserving configuration order.
func (g *Generator) GenerateForDay(appletID string, ee domain.EventEntity, day time.Time) []domain.NotificationDescriber {
	event := ee.Event
	settings := event.NotificationSettings.Notifications

	out := make([]domain.NotificationDescriber, 0, len(settings))
	for _, setting := range settings {
		at, ok := g.instantFor(setting, day)
		if !ok {
			continue
		}
		at = clampToWindowStart(event.Availability, day, at)
		out = append(out, domain.NewDescriber(g.ids, appletID, ee, at, domain.NotificationRegular))
	}
	return out
}

func (g *Generator) instantFor(setting domain.NotificationSetting, day time.Time) (time.Time, bool) {
	if setting.TriggerType == domain.TriggerRandom && setting.From != nil && setting.To != nil {
		return g.randomInstant(*setting.From, *setting.To, day), true
	}
	if setting.At == nil {
		return time.Time{}, false
	}
	return setting.At.On(day), true
}

// randomInstant draws a uniform minute from [from, to); a window of zero or
// negative width collapses to from.
func (g *Generator) randomInstant(from, to domain.TimeOfDay, day time.Time) time.Time {
	span := to.MinuteOfDay() - from.MinuteOfDay()
	if span <= 0 {
		return from.On(day)
	}
	offset := g.random.Intn(span)
	return from.On(day).Add(time.Duration(offset) * time.Minute)
}

// clampToWindowStart lifts instants that precede the access window when
// early access is not allowed. ALWAYS events have no window to clamp to.
func clampToWindowStart(av domain.EventAvailability, day time.Time, at time.Time) time.Time {
	if av.AllowAccessBeforeFromTime || av.TimeFrom == nil || av.PeriodicityType == domain.PeriodicityAlways {
		return at
	}
	if windowStart := av.TimeFrom.On(day); at.Before(windowStart) {
		return windowStart
	}
	return at
}
