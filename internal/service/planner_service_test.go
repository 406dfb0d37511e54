package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/alexanderramin/eduplan/internal/domain"
	"github.com/alexanderramin/eduplan/internal/export"
	"github.com/alexanderramin/eduplan/internal/intelligence"
	"github.com/alexanderramin/eduplan/internal/repository"
	"github.com/alexanderramin/eduplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}

type failingStore struct{}

func (failingStore) Load(context.Context) ([]domain.Course, error) { return nil, nil }
func (failingStore) Save(context.Context, []domain.Course) error {
	return errors.New("disk full")
}

func sequentialIDs() func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newTestPlanner(t *testing.T, initial ...domain.Course) (PlannerService, *repository.MemoryStore, *recordingObserver) {
	t.Helper()
	store := repository.NewMemoryStore(initial...)
	obs := &recordingObserver{}
	svc := NewPlannerService(NewSession(initial...), PlannerDeps{Store: store, NewID: sequentialIDs()}, obs)
	return svc, store, obs
}

func TestPlanner_AddCourse(t *testing.T) {
	ctx := context.Background()
	svc, store, obs := newTestPlanner(t)

	c, err := svc.AddCourse(ctx, testutil.NewTestDraft("Algorithmique"))
	require.NoError(t, err)
	assert.Equal(t, "id-1", c.ID)

	listed, err := svc.ListCourses(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Algorithmique", listed[0].Title)

	saved, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, listed, saved)

	ev := obs.last()
	assert.Equal(t, "add-course", ev.Name)
	assert.True(t, ev.Success)
	assert.Equal(t, "id-1", ev.Fields["course_id"])
}

func TestPlanner_AddCourseRejectsInvalidDraft(t *testing.T) {
	ctx := context.Background()
	svc, store, obs := newTestPlanner(t)

	d := testutil.NewTestDraft("")
	d.StartTime = "12:00"
	d.EndTime = "10:00"

	_, err := svc.AddCourse(ctx, d)
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "course.title is required")
	assert.Contains(t, err.Error(), "must be after startTime")
	assert.Equal(t, 0, store.Saves())
	assert.False(t, obs.last().Success)
}

func TestPlanner_SaveFailureLeavesSessionUnchanged(t *testing.T) {
	ctx := context.Background()
	svc := NewPlannerService(NewSession(), PlannerDeps{Store: failingStore{}})

	_, err := svc.AddCourse(ctx, testutil.NewTestDraft("A"))
	assert.ErrorContains(t, err, "saving courses: disk full")

	listed, err := svc.ListCourses(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestPlanner_ConfirmDrafts(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestPlanner(t, testutil.NewTestCourse("Existant", testutil.WithID("x")))

	added, err := svc.ConfirmDrafts(ctx, intelligence.StubDrafts())
	require.NoError(t, err)
	require.Len(t, added, 3)
	assert.Equal(t, []string{"id-1", "id-2", "id-3"}, []string{added[0].ID, added[1].ID, added[2].ID})

	listed, err := svc.ListCourses(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, 4)
	assert.Equal(t, "x", listed[0].ID)
}

func TestPlanner_ConfirmDraftsIsAllOrNothing(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestPlanner(t)

	drafts := intelligence.StubDrafts()
	drafts[2].DayOfWeek = 9

	_, err := svc.ConfirmDrafts(ctx, drafts)
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "drafts[2]: course.dayOfWeek")

	listed, err := svc.ListCourses(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestPlanner_RemoveCourse(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestPlanner(t,
		testutil.NewTestCourse("A", testutil.WithID("a")),
		testutil.NewTestCourse("B", testutil.WithID("b")),
		testutil.NewTestCourse("C", testutil.WithID("c")),
	)

	removed, err := svc.RemoveCourse(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "B", removed.Title)

	listed, err := svc.ListCourses(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, []string{listed[0].ID, listed[1].ID})

	_, err = svc.RemoveCourse(ctx, "b")
	assert.ErrorIs(t, err, domain.ErrCourseNotFound)
}

func TestPlanner_ConflictsResolveCourses(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestPlanner(t,
		testutil.NewTestCourse("Algo", testutil.WithDay(1), testutil.WithTimes("09:00", "11:00")),
		testutil.NewTestCourse("Réseaux", testutil.WithDay(1), testutil.WithTimes("10:00", "12:00")),
		testutil.NewTestCourse("Anglais", testutil.WithDay(2), testutil.WithTimes("10:00", "12:00")),
	)

	conflicts, err := svc.Conflicts(ctx)
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, "Algo", conflicts[0].First.Title)
	assert.Equal(t, "Réseaux", conflicts[0].Second.Title)
}

func TestPlanner_SuggestEmptyReturnsDefaults(t *testing.T) {
	svc, _, _ := newTestPlanner(t)

	got, err := svc.Suggest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, intelligence.DefaultSuggestions(), got)
}

func TestPlanner_SuggestUsesInjectedEngine(t *testing.T) {
	custom := []domain.Suggestion{{ID: "custom", Type: domain.SuggestionRecommendation, Message: "x", Priority: domain.PriorityLow}}
	svc := NewPlannerService(NewSession(), PlannerDeps{Engine: &intelligence.Engine{Defaults: custom}})

	got, err := svc.Suggest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, custom, got)
}

func TestPlanner_SummaryAndWeek(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestPlanner(t,
		testutil.NewTestCourse("Algo", testutil.WithDay(1), testutil.WithTimes("09:00", "10:30"), testutil.WithCredits(6)),
		testutil.NewTestCourse("Réseaux", testutil.WithDay(3), testutil.WithTimes("14:00", "16:00"), testutil.WithCredits(4)),
	)

	w, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, w.TotalCredits)
	assert.Equal(t, 210, w.TotalMinutes)
	assert.Equal(t, 2, w.ActiveDays)

	grid, err := svc.Week(ctx)
	require.NoError(t, err)
	cell, ok := grid.Cell(3, 15)
	require.True(t, ok)
	require.NotNil(t, cell.Course)
	assert.Equal(t, "Réseaux", cell.Course.Title)
}

func TestPlanner_Export(t *testing.T) {
	ctx := context.Background()
	svc, _, obs := newTestPlanner(t, testutil.NewTestCourse("Algo", testutil.WithID("c1")))

	doc, err := svc.Export(ctx, export.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "emploi-du-temps.json", doc.Filename)
	assert.Contains(t, string(doc.Body), `"id": "c1"`)
	assert.Equal(t, 1, obs.last().Fields["course_count"])

	_, err = svc.Export(ctx, export.Format("pdf"))
	assert.ErrorIs(t, err, export.ErrUnknownFormat)
}

func writeSnapshot(t *testing.T, courses []domain.Course) string {
	t.Helper()
	data, err := export.Snapshot(courses)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "import.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestPlanner_ImportMerge(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestPlanner(t, testutil.NewTestCourse("Existant", testutil.WithID("dup")))

	path := writeSnapshot(t, []domain.Course{
		testutil.NewTestCourse("Importé 1", testutil.WithID("dup")),
		testutil.NewTestCourse("Importé 2", testutil.WithID("")),
	})

	res, err := svc.Import(ctx, path, false)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, 1, res.Renumbered)
	assert.False(t, res.Replaced)

	listed, err := svc.ListCourses(ctx)
	require.NoError(t, err)
	ids := map[string]bool{}
	for _, c := range listed {
		assert.False(t, ids[c.ID], "duplicate id %s", c.ID)
		ids[c.ID] = true
	}
}

func TestPlanner_ImportReplace(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := newTestPlanner(t, testutil.NewTestCourse("Ancien"))

	path := writeSnapshot(t, []domain.Course{testutil.NewTestCourse("Nouveau")})
	res, err := svc.Import(ctx, path, true)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)

	saved, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, "Nouveau", saved[0].Title)
}

func TestPlanner_ImportRejectsInvalidFile(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := newTestPlanner(t)

	path := writeSnapshot(t, []domain.Course{testutil.NewTestCourse("X", testutil.WithTimes("10:00", "09:00"))})
	_, err := svc.Import(ctx, path, false)
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "courses[0].endTime")
	assert.Equal(t, 0, store.Saves())

	_, err = svc.Import(ctx, filepath.Join(t.TempDir(), "absent.json"), false)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPlanner_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	svc, _, _ := newTestPlanner(t)

	_, err := svc.ListCourses(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = svc.AddCourse(ctx, testutil.NewTestDraft("A"))
	assert.ErrorIs(t, err, context.Canceled)
}
