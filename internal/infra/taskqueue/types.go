package taskqueue

import "time"

type NotificationTask struct {
	NotificationID string    `json:"-"`
	AppletID       string    `json:"-"`
	ScheduleAt     time.Time `json:"-"`

	TaskID   string `json:"task_id"`
	TaskType string `json:"task_type"`
	EventID  string `json:"event_id"`
	Header   string `json:"header"`
	Body     string `json:"body"`
}

type TaskResponse struct {
	Name         string    `json:"name"`
	ScheduleTime time.Time `json:"schedule_time"`
	CreateTime   time.Time `json:"create_time"`
}

type PrimindTaskRequest struct {
	Task PrimindTask `json:"task"`
}

type PrimindTask struct {
	HTTPRequest  PrimindHTTPRequest `json:"httpRequest"`
	ScheduleTime string             `json:"scheduleTime,omitempty"`
}

type PrimindHTTPRequest struct {
	Body    string            `json:"body"`
	Headers map[string]string `json:"headers,omitempty"`
}

type PrimindTaskResponse struct {
	Name         string `json:"name"`
	ScheduleTime string `json:"scheduleTime"`
	CreateTime   string `json:"createTime"`
}
