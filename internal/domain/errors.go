package domain

import "errors"

var (
	ErrPlanNotFound        = errors.New("plan not found")
	ErrCompletionsNotFound = errors.New("completion records not found")
)
