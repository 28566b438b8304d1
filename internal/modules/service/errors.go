package service

import "errors"

// Service layer errors for better error handling
var (
	ErrInvalidToken = errors.New("invalid or expired token")

	ErrProjectNotFound = errors.New("project not found")
	ErrWellNotFound    = errors.New("well not found")
	ErrStageNotFound   = errors.New("tracking sheet stage not found")

	ErrInvalidDateRange = errors.New("job_start_date must not be after job_end_date")
	ErrInvalidJobType   = errors.New("unknown job type")
	ErrInvalidState     = errors.New("unknown state code")
	ErrInvalidCategory  = errors.New("unknown input data category")
)
