package config

import (
	"os"
	"strconv"
)

const (
	plannerHorizonDaysEnv = "PLANNER_HORIZON_DAYS"

	defaultPlannerHorizonDays = 14
)

type PlannerConfig struct {
	HorizonDays int
}

func LoadPlannerConfig() (*PlannerConfig, error) {
	horizon := defaultPlannerHorizonDays
	if raw := os.Getenv(plannerHorizonDaysEnv); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return nil, ErrInvalidHorizonDays
		}
		horizon = parsed
	}

	return &PlannerConfig{
		HorizonDays: horizon,
	}, nil
}
