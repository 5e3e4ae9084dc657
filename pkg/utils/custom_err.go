package utils

import "errors"

var (
	ErrLoadFailed       = errors.New("failed to load itinerary activities")
	ErrDuplicateEntry   = errors.New("activity already added to itinerary")
	ErrOutOfRange       = errors.New("date outside of trip date range")
	ErrInvalidTimeRange = errors.New("invalid time range")
	ErrPersistence      = errors.New("persistence write failed")
	ErrEntryNotFound    = errors.New("scheduled entry not found")
	ErrActivityNotFound = errors.New("activity not found")
	ErrRangeNotFound    = errors.New("date range not found")
	ErrPlanNotFound     = errors.New("subscription plan not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidPage      = errors.New("invalid page parameter")
	ErrInvalidPageSize  = errors.New("invalid page size parameter")
	ErrDatabaseError    = errors.New("database error")
)
