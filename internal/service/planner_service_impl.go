package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/eduplan/internal/domain"
	"github.com/alexanderramin/eduplan/internal/export"
	"github.com/alexanderramin/eduplan/internal/importer"
	"github.com/alexanderramin/eduplan/internal/intelligence"
	"github.com/alexanderramin/eduplan/internal/repository"
	"github.com/alexanderramin/eduplan/internal/scheduler"
)

type plannerService struct {
	session  *Session
	store    repository.CourseStore
	engine   *intelligence.Engine
	exporter *export.Exporter
	newID    importer.IDFunc
	observer UseCaseObserver
}

// PlannerDeps collects the optional collaborators of the planner service.
// Zero values select the defaults.
type PlannerDeps struct {
	Store    repository.CourseStore
	Engine   *intelligence.Engine
	Exporter *export.Exporter
	NewID    importer.IDFunc
}

func NewPlannerService(session *Session, deps PlannerDeps, observers ...UseCaseObserver) PlannerService {
	if session == nil {
		session = NewSession()
	}
	if deps.Engine == nil {
		deps.Engine = intelligence.NewEngine()
	}
	if deps.Exporter == nil {
		deps.Exporter = export.NewExporter()
	}
	if deps.NewID == nil {
		deps.NewID = importer.NewID
	}
	return &plannerService{
		session:  session,
		store:    deps.Store,
		engine:   deps.Engine,
		exporter: deps.Exporter,
		newID:    deps.NewID,
		observer: useCaseObserverOrNoop(observers),
	}
}

// commit applies fn to the session and writes the result through the store
// before it becomes visible.
func (s *plannerService) commit(ctx context.Context, fn func(current []domain.Course) ([]domain.Course, error)) error {
	return s.session.Update(func(current []domain.Course) ([]domain.Course, error) {
		next, err := fn(current)
		if err != nil {
			return nil, err
		}
		if s.store != nil {
			if err := s.store.Save(ctx, next); err != nil {
				return nil, fmt.Errorf("saving courses: %w", err)
			}
		}
		return next, nil
	})
}

func (s *plannerService) AddCourse(ctx context.Context, draft domain.CourseDraft) (course *domain.Course, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"title": draft.Title}
	defer func() { observeUseCase(ctx, s.observer, "add-course", startedAt, fields, err) }()

	if errs := importer.ValidateDraft(draft); len(errs) > 0 {
		return nil, formatValidationErrors("invalid course", errs)
	}

	c := draft.ToCourse(s.newID())
	err = s.commit(ctx, func(current []domain.Course) ([]domain.Course, error) {
		return append(current, c), nil
	})
	if err != nil {
		return nil, err
	}
	fields["course_id"] = c.ID
	return &c, nil
}

func (s *plannerService) ConfirmDrafts(ctx context.Context, drafts []domain.CourseDraft) (added []domain.Course, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"draft_count": len(drafts)}
	defer func() { observeUseCase(ctx, s.observer, "confirm-drafts", startedAt, fields, err) }()

	var errs []error
	for i, d := range drafts {
		for _, e := range importer.ValidateDraft(d) {
			errs = append(errs, fmt.Errorf("drafts[%d]: %w", i, e))
		}
	}
	if len(errs) > 0 {
		return nil, formatValidationErrors("invalid drafts", errs)
	}

	added = importer.Promote(drafts, s.newID)
	err = s.commit(ctx, func(current []domain.Course) ([]domain.Course, error) {
		return append(current, added...), nil
	})
	if err != nil {
		return nil, err
	}
	fields["added"] = len(added)
	return added, nil
}

func (s *plannerService) RemoveCourse(ctx context.Context, id string) (removed *domain.Course, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"course_id": id}
	defer func() { observeUseCase(ctx, s.observer, "remove-course", startedAt, fields, err) }()

	err = s.commit(ctx, func(current []domain.Course) ([]domain.Course, error) {
		for i, c := range current {
			if c.ID == id {
				removed = &c
				return append(current[:i], current[i+1:]...), nil
			}
		}
		return nil, fmt.Errorf("course %q: %w", id, domain.ErrCourseNotFound)
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}

func (s *plannerService) ListCourses(ctx context.Context) ([]domain.Course, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.session.Courses(), nil
}

func (s *plannerService) Conflicts(ctx context.Context) ([]CourseConflict, error) {
	courses, err := s.ListCourses(ctx)
	if err != nil {
		return nil, err
	}
	pairs := scheduler.DetectConflicts(courses)
	out := make([]CourseConflict, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, CourseConflict{First: courses[p.I], Second: courses[p.J]})
	}
	return out, nil
}

func (s *plannerService) Suggest(ctx context.Context) ([]domain.Suggestion, error) {
	courses, err := s.ListCourses(ctx)
	if err != nil {
		return nil, err
	}
	return s.engine.Generate(courses), nil
}

func (s *plannerService) Summary(ctx context.Context) (intelligence.Workload, error) {
	courses, err := s.ListCourses(ctx)
	if err != nil {
		return intelligence.Workload{}, err
	}
	return intelligence.SummarizeWorkload(courses), nil
}

func (s *plannerService) Week(ctx context.Context) (scheduler.WeekGrid, error) {
	courses, err := s.ListCourses(ctx)
	if err != nil {
		return scheduler.WeekGrid{}, err
	}
	return scheduler.BuildWeekGrid(courses), nil
}

func (s *plannerService) Export(ctx context.Context, format export.Format) (doc *export.Document, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"format": string(format)}
	defer func() { observeUseCase(ctx, s.observer, "export", startedAt, fields, err) }()

	courses, err := s.ListCourses(ctx)
	if err != nil {
		return nil, err
	}
	fields["course_count"] = len(courses)
	return s.exporter.Render(format, courses)
}

func (s *plannerService) Import(ctx context.Context, path string, replace bool) (result *ImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"path": path, "replace": replace}
	defer func() { observeUseCase(ctx, s.observer, "import", startedAt, fields, err) }()

	loaded, err := importer.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	loaded = importer.AssignMissingIDs(loaded, s.newID)
	if errs := importer.ValidateCourses(loaded); len(errs) > 0 {
		return nil, formatValidationErrors("import rejected", errs)
	}

	result = &ImportResult{Imported: len(loaded), Replaced: replace}
	err = s.commit(ctx, func(current []domain.Course) ([]domain.Course, error) {
		if replace {
			result.Total = len(loaded)
			return loaded, nil
		}
		used := make(map[string]bool, len(current))
		for _, c := range current {
			used[c.ID] = true
		}
		for i := range loaded {
			if used[loaded[i].ID] {
				loaded[i].ID = s.newID()
				result.Renumbered++
			}
			used[loaded[i].ID] = true
		}
		next := append(current, loaded...)
		result.Total = len(next)
		return next, nil
	})
	if err != nil {
		return nil, err
	}
	fields["imported"] = result.Imported
	fields["total"] = result.Total
	return result, nil
}
