package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/alexanderramin/eduplan/internal/domain"
	"github.com/alexanderramin/eduplan/internal/repository"
)

// Session owns the authoritative course list of one planner workspace.
// Readers always receive copies.
type Session struct {
	mu      sync.RWMutex
	courses []domain.Course
}

func NewSession(courses ...domain.Course) *Session {
	return &Session{courses: domain.CloneCourses(courses)}
}

// LoadSession builds a session from the courses held by store.
func LoadSession(ctx context.Context, store repository.CourseStore) (*Session, error) {
	courses, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading courses: %w", err)
	}
	return NewSession(courses...), nil
}

func (s *Session) Courses() []domain.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.CloneCourses(s.courses)
}

func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.courses)
}

// Find returns the course with the given id.
func (s *Session) Find(id string) (domain.Course, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.courses {
		if c.ID == id {
			return domain.CloneCourses([]domain.Course{c})[0], true
		}
	}
	return domain.Course{}, false
}

// Update replaces the list with the result of fn, which receives a copy of
// the current list. The list is left untouched when fn fails.
func (s *Session) Update(fn func(current []domain.Course) ([]domain.Course, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := fn(domain.CloneCourses(s.courses))
	if err != nil {
		return err
	}
	s.courses = domain.CloneCourses(next)
	return nil
}
