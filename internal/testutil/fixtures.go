package testutil

import (
	"fmt"
	"sync/atomic"

	"github.com/alexanderramin/eduplan/internal/domain"
	"github.com/google/uuid"
)

var testProfessorCounter atomic.Int64

// CourseOption customises a test course.
type CourseOption func(*domain.Course)

func WithDay(day int) CourseOption {
	return func(c *domain.Course) {
		c.DayOfWeek = day
	}
}

func WithTimes(start, end string) CourseOption {
	return func(c *domain.Course) {
		c.StartTime = start
		c.EndTime = end
	}
}

func WithCredits(n int) CourseOption {
	return func(c *domain.Course) {
		c.Credits = domain.IntPtr(n)
	}
}

func WithoutCredits() CourseOption {
	return func(c *domain.Course) {
		c.Credits = nil
	}
}

func WithID(id string) CourseOption {
	return func(c *domain.Course) {
		c.ID = id
	}
}

func WithDescription(desc string) CourseOption {
	return func(c *domain.Course) {
		c.Description = desc
	}
}

// NewTestCourse returns a valid Monday 09:00-11:00 course worth 3 credits.
func NewTestCourse(title string, opts ...CourseOption) domain.Course {
	n := testProfessorCounter.Add(1)
	c := domain.Course{
		ID:        uuid.New().String(),
		Title:     title,
		Professor: fmt.Sprintf("Prof. Test %d", n),
		Location:  "Salle A101",
		StartTime: "09:00",
		EndTime:   "11:00",
		DayOfWeek: 1,
		Color:     domain.DefaultColor,
		Credits:   domain.IntPtr(3),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// NewTestDraft returns the draft form of NewTestCourse.
func NewTestDraft(title string, opts ...CourseOption) domain.CourseDraft {
	return NewTestCourse(title, opts...).Draft()
}

// CoursesOnDay returns n one-hour courses on day, starting at 08:00 and
// spaced two hours apart so they never overlap.
func CoursesOnDay(day, n int) []domain.Course {
	out := make([]domain.Course, 0, n)
	for i := 0; i < n; i++ {
		start := 8 + 2*i
		out = append(out, NewTestCourse(
			fmt.Sprintf("Cours %d-%d", day, i),
			WithDay(day),
			WithTimes(fmt.Sprintf("%02d:00", start), fmt.Sprintf("%02d:00", start+1)),
		))
	}
	return out
}
