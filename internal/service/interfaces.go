package service

import (
	"context"

	"github.com/alexanderramin/eduplan/internal/domain"
	"github.com/alexanderramin/eduplan/internal/export"
	"github.com/alexanderramin/eduplan/internal/intelligence"
	"github.com/alexanderramin/eduplan/internal/scheduler"
)

// CourseConflict is a detected overlap resolved to the two courses involved.
type CourseConflict struct {
	First  domain.Course
	Second domain.Course
}

// ImportResult holds the outcome of a course file import.
type ImportResult struct {
	Imported int
	Replaced bool
	Total    int
	// Renumbered counts imported courses whose id was already in use.
	Renumbered int
}

type PlannerService interface {
	AddCourse(ctx context.Context, draft domain.CourseDraft) (*domain.Course, error)
	ConfirmDrafts(ctx context.Context, drafts []domain.CourseDraft) ([]domain.Course, error)
	RemoveCourse(ctx context.Context, id string) (*domain.Course, error)
	ListCourses(ctx context.Context) ([]domain.Course, error)
	Conflicts(ctx context.Context) ([]CourseConflict, error)
	Suggest(ctx context.Context) ([]domain.Suggestion, error)
	Summary(ctx context.Context) (intelligence.Workload, error)
	Week(ctx context.Context) (scheduler.WeekGrid, error)
	Export(ctx context.Context, format export.Format) (*export.Document, error)
	Import(ctx context.Context, path string, replace bool) (*ImportResult, error)
}

type ExtractionService interface {
	Extract(ctx context.Context, path string, progress intelligence.ProgressNotifier) ([]domain.CourseDraft, error)
}
