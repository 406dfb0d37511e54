package repository

import (
	"context"

	"github.com/alexanderramin/eduplan/internal/domain"
)

// CourseStore persists the active course list as a whole.
type CourseStore interface {
	Load(ctx context.Context) ([]domain.Course, error)
	Save(ctx context.Context, courses []domain.Course) error
}
