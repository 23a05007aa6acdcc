package schedulefeed

import (
	"time"

	"github.com/KasumiMercury/primind-notification-planning/internal/domain"
)

// AppletSchedule is the schedule management service's snapshot of one applet:
// its event/entity pairs plus the completion and progress history known
// upstream.
type AppletSchedule struct {
	AppletID    string               `json:"applet_id"`
	AppletName  string               `json:"applet_name"`
	Events      []domain.EventEntity `json:"events"`
	Completions []CompletionEntry    `json:"completions"`
	Progress    []ProgressEntry      `json:"progress"`
}

type CompletionEntry struct {
	EntityID    string    `json:"entity_id"`
	EventID     string    `json:"event_id"`
	CompletedAt time.Time `json:"completed_at"`
}

type ProgressEntry struct {
	EntityID  string    `json:"entity_id"`
	EventID   string    `json:"event_id"`
	StartedAt time.Time `json:"started_at"`
}

// CompletionRecords converts the feed entries into the domain lookup form.
func (s *AppletSchedule) CompletionRecords() domain.CompletionRecords {
	records := make(domain.CompletionRecords)
	for _, entry := range s.Completions {
		records.Add(entry.EntityID, entry.EventID, entry.CompletedAt)
	}
	return records
}

// ProgressRecords converts the feed entries into the domain lookup form.
func (s *AppletSchedule) ProgressRecords() domain.ProgressRecords {
	records := make(domain.ProgressRecords)
	for _, entry := range s.Progress {
		records.Add(entry.EntityID, entry.EventID, entry.StartedAt)
	}
	return records
}
