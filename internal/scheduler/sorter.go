package scheduler

import (
	"sort"

	"github.com/alexanderramin/eduplan/internal/domain"
)

// DayOrder returns the display position of a weekday (lower = earlier).
// The week starts on Monday; Sunday sorts last.
func DayOrder(day int) int {
	if day == 0 {
		return 7
	}
	return day
}

// startMinutes returns minutes since midnight, or -1 for a malformed time.
func startMinutes(c domain.Course) int {
	clock, err := domain.ParseClock(c.StartTime)
	if err != nil {
		return -1
	}
	return clock.Minutes()
}

// CanonicalSort orders courses for display by the deterministic rules:
// 1. Day: Monday first, Sunday last
// 2. Start time: earliest first (malformed last)
// 3. Title: lexical ascending
// 4. ID: lexical ascending
func CanonicalSort(courses []domain.Course) {
	sort.SliceStable(courses, func(i, j int) bool {
		a, b := courses[i], courses[j]

		// 1. Day
		if da, db := DayOrder(a.DayOfWeek), DayOrder(b.DayOfWeek); da != db {
			return da < db
		}

		// 2. Start time (malformed last)
		sa, sb := startMinutes(a), startMinutes(b)
		if (sa < 0) != (sb < 0) {
			return sa >= 0
		}
		if sa != sb {
			return sa < sb
		}

		// 3. Title
		if a.Title != b.Title {
			return a.Title < b.Title
		}

		// 4. ID
		return a.ID < b.ID
	})
}

// Sorted returns a sorted copy, leaving courses untouched.
func Sorted(courses []domain.Course) []domain.Course {
	out := domain.CloneCourses(courses)
	CanonicalSort(out)
	return out
}
