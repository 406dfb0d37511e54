package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Clock is a wall-clock time of day.
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock parses a strict "HH:MM" (or "H:MM") 24-hour time.
func ParseClock(s string) (Clock, error) {
	h, m, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(m) != 2 || len(h) == 0 || len(h) > 2 {
		return Clock{}, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	hour, err := strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return Clock{}, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	minute, err := strconv.Atoi(m)
	if err != nil || minute < 0 || minute > 59 {
		return Clock{}, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	return Clock{Hour: hour, Minute: minute}, nil
}

// Minutes returns the number of minutes since midnight.
func (c Clock) Minutes() int {
	return c.Hour*60 + c.Minute
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// DurationMinutes returns end minus start in minutes for a course whose times
// parse, and false otherwise.
func (c Course) DurationMinutes() (int, bool) {
	start, err := ParseClock(c.StartTime)
	if err != nil {
		return 0, false
	}
	end, err := ParseClock(c.EndTime)
	if err != nil {
		return 0, false
	}
	return end.Minutes() - start.Minutes(), true
}
