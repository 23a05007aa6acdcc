package domain

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time without a date.
type TimeOfDay struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

// On places the time of day onto the given calendar day, keeping the day's location.
func (t TimeOfDay) On(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hours, t.Minutes, 0, 0, day.Location())
}

// MinuteOfDay returns the time of day as minutes since midnight.
func (t TimeOfDay) MinuteOfDay() int {
	return t.Hours*60 + t.Minutes
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.MinuteOfDay() < other.MinuteOfDay()
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hours, t.Minutes)
}
