package config

func ValidateForRun(cfg *Config) error {
	if cfg.ScheduleManagementURL == "" {
		return ErrScheduleURLMissing
	}
	if err := cfg.Redis.Validate(); err != nil {
		return err
	}
	return nil
}

// ValidateLocal checks the primind-tasks settings used by default builds.
// Callers may treat the error as a reason to run with registration disabled.
func (c TaskQueueConfig) ValidateLocal() error {
	if c.PrimindTasksURL == "" {
		return ErrTaskQueueURLMissing
	}
	return nil
}

// ValidateGCloud checks the Cloud Tasks settings used under the gcloud tag.
func (c TaskQueueConfig) ValidateGCloud() error {
	if c.GCloudProjectID == "" || c.GCloudLocationID == "" || c.GCloudQueueID == "" || c.GCloudTargetURL == "" {
		return ErrGCloudConfigMissing
	}
	return nil
}
