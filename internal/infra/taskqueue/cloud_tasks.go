//go:build gcloud

package taskqueue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	cloudtasks "cloud.google.com/go/cloudtasks/apiv2"
	"cloud.google.com/go/cloudtasks/apiv2/cloudtaskspb"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const cloudTasksRetryBaseDelay = 500 * time.Millisecond

type CloudTasksConfig struct {
	ProjectID  string
	LocationID string
	QueueID    string
	TargetURL  string
	MaxRetries int
}

type cloudTasksClient struct {
	client *cloudtasks.Client
	cfg    CloudTasksConfig
}

func NewCloudTasksClient(ctx context.Context, cfg CloudTasksConfig) (*cloudTasksClient, error) {
	if cfg.ProjectID == "" || cfg.LocationID == "" || cfg.QueueID == "" || cfg.TargetURL == "" {
		return nil, fmt.Errorf("incomplete cloud tasks configuration")
	}

	client, err := cloudtasks.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloud tasks client: %w", err)
	}

	return &cloudTasksClient{
		client: client,
		cfg:    cfg,
	}, nil
}

func (c *cloudTasksClient) queuePath() string {
	return fmt.Sprintf("projects/%s/locations/%s/queues/%s", c.cfg.ProjectID, c.cfg.LocationID, c.cfg.QueueID)
}

func (c *cloudTasksClient) RegisterNotification(ctx context.Context, task *NotificationTask) (*TaskResponse, error) {
	payload, err := json.Marshal(task)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal task payload: %w", err)
	}

	req := &cloudtaskspb.CreateTaskRequest{
		Parent: c.queuePath(),
		Task: &cloudtaskspb.Task{
			MessageType: &cloudtaskspb.Task_HttpRequest{
				HttpRequest: &cloudtaskspb.HttpRequest{
					HttpMethod: cloudtaskspb.HttpMethod_POST,
					Url:        c.cfg.TargetURL,
					Headers: map[string]string{
						"Content-Type": "application/json",
					},
					Body: payload,
				},
			},
			ScheduleTime: timestamppb.New(task.ScheduleAt),
		},
	}

	var lastErr error
	for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := cloudTasksRetryBaseDelay * time.Duration(1<<(attempt-1))
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		created, err := c.client.CreateTask(ctx, req)
		if err == nil {
			return &TaskResponse{
				Name:         created.GetName(),
				ScheduleTime: created.GetScheduleTime().AsTime(),
				CreateTime:   created.GetCreateTime().AsTime(),
			}, nil
		}
		lastErr = err

		if !isRetryable(err) {
			return nil, fmt.Errorf("failed to create task: %w", err)
		}

		slog.Warn("task creation attempt failed",
			slog.String("notification_id", task.NotificationID),
			slog.Int("attempt", attempt+1),
			slog.String("error", err.Error()),
		)
	}

	return nil, fmt.Errorf("failed to create task after %d attempts: %w", c.cfg.MaxRetries+1, lastErr)
}

func (c *cloudTasksClient) DeleteTask(ctx context.Context, taskID string) error {
	name := fmt.Sprintf("%s/tasks/%s", c.queuePath(), taskID)

	err := c.client.DeleteTask(ctx, &cloudtaskspb.DeleteTaskRequest{Name: name})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}

func (c *cloudTasksClient) Close() error {
	return c.client.Close()
}

func isRetryable(err error) bool {
	switch status.Code(err) {
	case codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted:
		return true
	default:
		return false
	}
}
