package schedulefeed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/KasumiMercury/primind-notification-planning/internal/observability/logging"
	"github.com/KasumiMercury/primind-notification-planning/internal/observability/tracing"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: newHTTPClient(baseURL),
	}
}

func (c *Client) GetAppletSchedule(ctx context.Context, appletID string) (*AppletSchedule, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	u.Path = fmt.Sprintf("/api/v1/applets/%s/schedule", appletID)

	slog.Debug("fetching applet schedule from ScheduleManagement",
		slog.String("applet_id", appletID),
		slog.String("url", u.String()),
	)

	ctx, span := tracing.StartExternalAPISpan(ctx, "get_applet_schedule", u.String())
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	requestID := logging.ValidateAndExtractRequestID(logging.RequestIDFromContext(ctx))
	req.Header.Set("x-request-id", requestID)
	tracing.InjectToHTTPRequest(ctx, req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Error("failed to send request to ScheduleManagement",
			slog.String("url", u.String()),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrAppletNotFound
	}

	if resp.StatusCode != http.StatusOK {
		slog.Error("unexpected status code from ScheduleManagement",
			slog.String("url", u.String()),
			slog.Int("status_code", resp.StatusCode),
		)
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		slog.Error("failed to read response body from ScheduleManagement",
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var schedule AppletSchedule
	if err := json.Unmarshal(body, &schedule); err != nil {
		slog.Error("failed to decode response from ScheduleManagement",
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	slog.Debug("successfully fetched applet schedule",
		slog.String("applet_id", schedule.AppletID),
		slog.Int("event_count", len(schedule.Events)),
	)

	return &schedule, nil
}
