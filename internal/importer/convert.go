package importer

import (
	"github.com/alexanderramin/eduplan/internal/domain"
	"github.com/google/uuid"
)

// IDFunc generates identifiers for new courses.
type IDFunc func() string

// NewID returns a random uuid string.
func NewID() string {
	return uuid.New().String()
}

// Promote converts reviewed drafts into courses with fresh ids.
// A nil idFn uses NewID.
func Promote(drafts []domain.CourseDraft, idFn IDFunc) []domain.Course {
	if idFn == nil {
		idFn = NewID
	}
	courses := make([]domain.Course, 0, len(drafts))
	for _, d := range drafts {
		courses = append(courses, d.ToCourse(idFn()))
	}
	return courses
}

// AssignMissingIDs gives a fresh id to every imported course without one
// and fills an empty colour with the default.
func AssignMissingIDs(courses []domain.Course, idFn IDFunc) []domain.Course {
	if idFn == nil {
		idFn = NewID
	}
	out := domain.CloneCourses(courses)
	for i := range out {
		if out[i].ID == "" {
			out[i].ID = idFn()
		}
		out[i].Color = domain.CoalesceStr(out[i].Color, domain.DefaultColor)
	}
	return out
}
