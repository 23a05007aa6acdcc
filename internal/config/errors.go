package config

import "errors"

var (
	ErrRedisAddrMissing    = errors.New("REDIS_ADDR is required")
	ErrInvalidRedisDB      = errors.New("REDIS_DB must be a valid integer")
	ErrInvalidHorizonDays  = errors.New("PLANNER_HORIZON_DAYS must be a positive integer")
	ErrScheduleURLMissing  = errors.New("SCHEDULE_MANAGEMENT_URL environment variable is required")
	ErrTaskQueueURLMissing = errors.New("PRIMIND_TASKS_URL environment variable is required")
	ErrGCloudConfigMissing = errors.New("GCLOUD_PROJECT_ID, GCLOUD_LOCATION_ID, GCLOUD_QUEUE_ID and GCLOUD_TARGET_URL are required")
)
