package intelligence

import (
	"github.com/alexanderramin/eduplan/internal/domain"
	"github.com/alexanderramin/eduplan/internal/scheduler"
)

// Workload is the at-a-glance summary shown next to the suggestions.
type Workload struct {
	CourseCount    int
	TotalCredits   int
	TotalMinutes   int
	ActiveDays     int
	AvgHoursPerDay float64
	ConflictsExist bool
	CoursesByDay   map[int]int
}

// TotalHours returns TotalMinutes in hours.
func (w Workload) TotalHours() float64 {
	return float64(w.TotalMinutes) / 60
}

// SummarizeWorkload computes minute-accurate hours, unlike the hour-truncated
// conflict test. Courses whose times do not parse contribute no hours.
func SummarizeWorkload(courses []domain.Course) Workload {
	w := Workload{
		CourseCount:    len(courses),
		TotalCredits:   TotalCredits(courses),
		CoursesByDay:   CoursesPerDay(courses),
		ConflictsExist: scheduler.HasConflicts(courses),
	}
	for _, c := range courses {
		if mins, ok := c.DurationMinutes(); ok && mins > 0 {
			w.TotalMinutes += mins
		}
	}
	w.ActiveDays = len(w.CoursesByDay)
	if w.ActiveDays > 0 {
		w.AvgHoursPerDay = w.TotalHours() / float64(w.ActiveDays)
	}
	return w
}
