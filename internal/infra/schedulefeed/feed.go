package schedulefeed

import "context"

//go:generate mockgen -source=feed.go -destination=mock.go -package=schedulefeed

// ScheduleFeed fetches one applet's schedule snapshot from the schedule
// management service.
type ScheduleFeed interface {
	GetAppletSchedule(ctx context.Context, appletID string) (*AppletSchedule, error)
}
