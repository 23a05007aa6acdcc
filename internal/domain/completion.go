package domain

import "time"

// EntityEventKey identifies one entity/event pair in completion and progress
// records.
func EntityEventKey(entityID, eventID string) string {
	return entityID + "/" + eventID
}

// CompletionRecords holds completion instants keyed by entity/event pair.
type CompletionRecords map[string][]time.Time

func (c CompletionRecords) Add(entityID, eventID string, at time.Time) {
	key := EntityEventKey(entityID, eventID)
	c[key] = append(c[key], at)
}

// CompletedOn reports whether the entity was completed for the event on the
// given calendar day.
func (c CompletionRecords) CompletedOn(entityID, eventID string, day time.Time) bool {
	for _, at := range c[EntityEventKey(entityID, eventID)] {
		if SameDay(at, day) {
			return true
		}
	}
	return false
}

// CompletedEver reports whether any completion exists for the pair.
func (c CompletionRecords) CompletedEver(entityID, eventID string) bool {
	return len(c[EntityEventKey(entityID, eventID)]) > 0
}

// Merge folds other's records into c.
func (c CompletionRecords) Merge(other CompletionRecords) {
	for key, times := range other {
		c[key] = append(c[key], times...)
	}
}

// ProgressRecords holds in-progress (started but unfinished) instants keyed by
// entity/event pair.
type ProgressRecords map[string][]time.Time

func (p ProgressRecords) Add(entityID, eventID string, at time.Time) {
	key := EntityEventKey(entityID, eventID)
	p[key] = append(p[key], at)
}

// InProgressOn reports whether the entity was started for the event on the
// given calendar day.
func (p ProgressRecords) InProgressOn(entityID, eventID string, day time.Time) bool {
	for _, at := range p[EntityEventKey(entityID, eventID)] {
		if SameDay(at, day) {
			return true
		}
	}
	return false
}
