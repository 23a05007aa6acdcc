package merge

import (
	"sort"

	"github.com/KasumiMercury/primind-notification-planning/internal/domain"
)

// Chronological combines regular describers (already day-ascending, with the
// configured order kept inside a day) and reminder describers into one
// sequence ascending by scheduled instant. The sort is stable over the
// regulars-then-reminders concatenation, so on an exactly equal instant a
// regular notification precedes a reminder.
func Chronological(regulars, reminders []domain.NotificationDescriber) []domain.NotificationDescriber {
	combined := make([]domain.NotificationDescriber, 0, len(regulars)+len(reminders))
	combined = append(combined, regulars...)
	combined = append(combined, reminders...)

	sort.SliceStable(combined, func(i, j int) bool {
		return combined[i].ScheduledAt.Before(combined[j].ScheduledAt)
	})

	return combined
}
