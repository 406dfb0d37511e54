package domain

import "errors"

var (
	// ErrCourseNotFound indicates no course in the active list has the given id.
	ErrCourseNotFound = errors.New("course not found")

	// ErrInvalidClock indicates a time string that is not a valid HH:MM value.
	ErrInvalidClock = errors.New("invalid time, expected HH:MM")
)
