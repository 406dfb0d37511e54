package importer

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/eduplan/internal/domain"
)

// ValidateDraft checks a draft before it is committed.
// Returns a slice of all validation errors found.
func ValidateDraft(d domain.CourseDraft) []error {
	return validateFields("course", d)
}

// ValidateCourse checks a single course, including its id.
func ValidateCourse(c domain.Course) []error {
	return validateCourse("course", c)
}

// ValidateCourses checks every course of an imported list and rejects
// duplicate ids.
func ValidateCourses(courses []domain.Course) []error {
	var errs []error

	seen := make(map[string]int, len(courses))
	for i, c := range courses {
		prefix := fmt.Sprintf("courses[%d]", i)
		errs = append(errs, validateCourse(prefix, c)...)
		if c.ID == "" {
			continue
		}
		if first, dup := seen[c.ID]; dup {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q (first used by courses[%d])", prefix, c.ID, first))
		} else {
			seen[c.ID] = i
		}
	}

	return errs
}

func validateCourse(prefix string, c domain.Course) []error {
	var errs []error
	if strings.TrimSpace(c.ID) == "" {
		errs = append(errs, fmt.Errorf("%s.id is required", prefix))
	}
	return append(errs, validateFields(prefix, c.Draft())...)
}

func validateFields(prefix string, d domain.CourseDraft) []error {
	var errs []error

	if strings.TrimSpace(d.Title) == "" {
		errs = append(errs, fmt.Errorf("%s.title is required", prefix))
	}
	if strings.TrimSpace(d.Professor) == "" {
		errs = append(errs, fmt.Errorf("%s.professor is required", prefix))
	}
	if strings.TrimSpace(d.Location) == "" {
		errs = append(errs, fmt.Errorf("%s.location is required", prefix))
	}

	start, startErr := domain.ParseClock(d.StartTime)
	if startErr != nil {
		errs = append(errs, fmt.Errorf("%s.startTime: %w", prefix, startErr))
	}
	end, endErr := domain.ParseClock(d.EndTime)
	if endErr != nil {
		errs = append(errs, fmt.Errorf("%s.endTime: %w", prefix, endErr))
	}
	if startErr == nil && endErr == nil && end.Minutes() <= start.Minutes() {
		errs = append(errs, fmt.Errorf("%s.endTime %q must be after startTime %q", prefix, d.EndTime, d.StartTime))
	}

	if !domain.ValidDay(d.DayOfWeek) {
		errs = append(errs, fmt.Errorf("%s.dayOfWeek: invalid value %d (expected 0-6)", prefix, d.DayOfWeek))
	}
	if d.Credits != nil && *d.Credits < 0 {
		errs = append(errs, fmt.Errorf("%s.credits must be non-negative", prefix))
	}

	return errs
}
