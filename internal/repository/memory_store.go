package repository

import (
	"context"
	"sync"

	"github.com/alexanderramin/eduplan/internal/domain"
)

// MemoryStore keeps the course list in memory. Used by tests and by hosts
// that do not persist a workspace.
type MemoryStore struct {
	mu      sync.Mutex
	courses []domain.Course
	saves   int
}

func NewMemoryStore(initial ...domain.Course) *MemoryStore {
	return &MemoryStore{courses: domain.CloneCourses(initial)}
}

func (s *MemoryStore) Load(ctx context.Context) ([]domain.Course, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CloneCourses(s.courses), nil
}

func (s *MemoryStore) Save(ctx context.Context, courses []domain.Course) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.courses = domain.CloneCourses(courses)
	s.saves++
	return nil
}

// Saves reports how many times Save succeeded.
func (s *MemoryStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}
