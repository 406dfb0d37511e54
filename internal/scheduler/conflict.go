package scheduler

import (
	"github.com/alexanderramin/eduplan/internal/domain"
)

// Conflict is an unordered pair of overlapping courses, reported in its
// canonical form with I < J (indices into the input slice).
type Conflict struct {
	I int
	J int
}

// hourSpan is a course interval truncated to whole hours.
type hourSpan struct {
	day   int
	start int
	end   int
	ok    bool
}

func spanOf(c domain.Course) hourSpan {
	start, err := domain.ParseClock(c.StartTime)
	if err != nil {
		return hourSpan{}
	}
	end, err := domain.ParseClock(c.EndTime)
	if err != nil {
		return hourSpan{}
	}
	return hourSpan{day: c.DayOfWeek, start: start.Hour, end: end.Hour, ok: true}
}

// Overlaps reports whether a and b share a day and their hour-truncated
// intervals [start, end) intersect. Minutes are ignored: 09:00-10:30 becomes
// [9, 10) and does not overlap 10:00-11:00, while 10:00-10:30 and 10:30-11:00
// both start in hour 10 and do. Courses with unparsable times never overlap.
//
// The test is "either start falls inside the other interval", which equals
// s1 < e2 && s2 < e1 for non-empty intervals and also catches courses that
// start and end within the same hour.
func Overlaps(a, b domain.Course) bool {
	return spanOf(a).overlaps(spanOf(b))
}

func (s hourSpan) overlaps(o hourSpan) bool {
	if !s.ok || !o.ok || s.day != o.day {
		return false
	}
	return (s.start >= o.start && s.start < o.end) ||
		(o.start >= s.start && o.start < s.end)
}

// DetectConflicts scans every pair once and returns the overlapping pairs in
// scan order (by I, then J).
func DetectConflicts(courses []domain.Course) []Conflict {
	spans := make([]hourSpan, len(courses))
	for i, c := range courses {
		spans[i] = spanOf(c)
	}

	var conflicts []Conflict
	for i := 0; i < len(spans); i++ {
		for j := i + 1; j < len(spans); j++ {
			if spans[i].overlaps(spans[j]) {
				conflicts = append(conflicts, Conflict{I: i, J: j})
			}
		}
	}
	return conflicts
}

// HasConflicts reports whether any pair of courses overlaps.
func HasConflicts(courses []domain.Course) bool {
	for i := 0; i < len(courses); i++ {
		for j := i + 1; j < len(courses); j++ {
			if Overlaps(courses[i], courses[j]) {
				return true
			}
		}
	}
	return false
}
