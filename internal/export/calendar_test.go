package export

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/eduplan/internal/domain"
	"github.com/alexanderramin/eduplan/internal/testutil"
	ics "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paris(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)
	return loc
}

// Wednesday 7 January 2026, 10:00 in Paris.
func fixedNow(t *testing.T) func() time.Time {
	loc := paris(t)
	return func() time.Time { return time.Date(2026, 1, 7, 10, 0, 0, 0, loc) }
}

func TestCalendar_Header(t *testing.T) {
	out := Calendar(nil, WithNow(fixedNow(t)), WithLocation(paris(t)))

	assert.True(t, strings.HasPrefix(out, "BEGIN:VCALENDAR"))
	assert.True(t, strings.HasSuffix(strings.TrimRight(out, "\r\n"), "END:VCALENDAR"))
	for _, want := range []string{
		"VERSION:2.0",
		"PRODID:-//EduPlan IA//Emploi du Temps//FR",
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
		"X-WR-CALNAME:Emploi du Temps - EduPlan",
		"X-WR-TIMEZONE:Europe/Paris",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "BEGIN:VEVENT")
}

func TestCalendar_EmptyListIsParseable(t *testing.T) {
	out := Calendar([]domain.Course{}, WithNow(fixedNow(t)))

	cal, err := ics.ParseCalendar(strings.NewReader(out))
	require.NoError(t, err)
	assert.Empty(t, cal.Events())
}

func TestCalendar_OneEventPerCourse(t *testing.T) {
	courses := []domain.Course{
		testutil.NewTestCourse("Algorithmique", testutil.WithID("c1"), testutil.WithDay(1), testutil.WithTimes("09:00", "11:00")),
		testutil.NewTestCourse("Réseaux", testutil.WithID("c2"), testutil.WithDay(5), testutil.WithTimes("14:00", "16:00")),
		testutil.NewTestCourse("Anglais", testutil.WithID("c3"), testutil.WithDay(0), testutil.WithTimes("10:00", "11:00")),
	}
	out := Calendar(courses, WithNow(fixedNow(t)), WithLocation(paris(t)))

	cal, err := ics.ParseCalendar(strings.NewReader(out))
	require.NoError(t, err)
	require.Len(t, cal.Events(), 3)

	assert.Contains(t, out, "UID:c1@eduplan.ia")
	assert.Contains(t, out, "UID:c2@eduplan.ia")
	assert.Contains(t, out, "UID:c3@eduplan.ia")
	assert.Contains(t, out, "RRULE:FREQ=WEEKLY;BYDAY=MO")
	assert.Contains(t, out, "RRULE:FREQ=WEEKLY;BYDAY=FR")
	assert.Contains(t, out, "RRULE:FREQ=WEEKLY;BYDAY=SU")
	assert.Contains(t, out, "SUMMARY:Algorithmique")
	assert.Contains(t, out, "STATUS:CONFIRMED")
	assert.Equal(t, 3, strings.Count(out, "BEGIN:VEVENT"))
}

func TestCalendar_TimesAreUTCOfNextOccurrence(t *testing.T) {
	courses := []domain.Course{
		testutil.NewTestCourse("Lundi", testutil.WithID("mon"), testutil.WithDay(1), testutil.WithTimes("09:00", "11:00")),
		testutil.NewTestCourse("Vendredi", testutil.WithID("fri"), testutil.WithDay(5), testutil.WithTimes("14:00", "16:30")),
	}
	out := Calendar(courses, WithNow(fixedNow(t)), WithLocation(paris(t)))

	// Paris is UTC+1 in January.
	assert.Contains(t, out, "DTSTART:20260112T080000Z")
	assert.Contains(t, out, "DTEND:20260112T100000Z")
	assert.Contains(t, out, "DTSTART:20260109T130000Z")
	assert.Contains(t, out, "DTEND:20260109T153000Z")
}

func TestOccurrence(t *testing.T) {
	loc := paris(t)
	wednesday := time.Date(2026, 1, 7, 10, 0, 0, 0, loc)

	tests := []struct {
		name      string
		day       int
		now       time.Time
		wantStart time.Time
	}{
		{"later this week", 5, wednesday, time.Date(2026, 1, 9, 8, 0, 0, 0, time.UTC)},
		{"next week", 1, wednesday, time.Date(2026, 1, 12, 8, 0, 0, 0, time.UTC)},
		{"same weekday rolls forward a week", 3, wednesday, time.Date(2026, 1, 14, 8, 0, 0, 0, time.UTC)},
		{"sunday", 0, wednesday, time.Date(2026, 1, 11, 8, 0, 0, 0, time.UTC)},
		{"summer time offset", 1, time.Date(2026, 7, 1, 10, 0, 0, 0, loc), time.Date(2026, 7, 6, 7, 0, 0, 0, time.UTC)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := testutil.NewTestCourse("X", testutil.WithDay(tc.day), testutil.WithTimes("09:00", "10:00"))
			start, end := Occurrence(c, tc.now, loc)
			assert.True(t, tc.wantStart.Equal(start), "start = %s, want %s", start.UTC(), tc.wantStart)
			assert.Equal(t, time.Hour, end.Sub(start))
			assert.True(t, start.After(tc.now))
		})
	}
}

func TestOccurrence_NowLateInTheDayInUTC(t *testing.T) {
	loc := paris(t)
	// 23:30 UTC on Tuesday is already Wednesday in Paris.
	now := time.Date(2026, 1, 6, 23, 30, 0, 0, time.UTC)
	c := testutil.NewTestCourse("X", testutil.WithDay(3), testutil.WithTimes("09:00", "10:00"))

	start, _ := Occurrence(c, now, loc)
	assert.Equal(t, time.Date(2026, 1, 14, 8, 0, 0, 0, time.UTC), start.UTC())
}

func TestEventDescription(t *testing.T) {
	c := testutil.NewTestCourse("Algo",
		testutil.WithCredits(6),
		testutil.WithDescription("Cours magistral"),
	)
	c.Professor = "Dr. Martin"

	assert.Equal(t, "Professeur: Dr. Martin\nCrédits: 6 ECTS\nCours magistral", EventDescription(c))

	c.Credits = nil
	c.Description = ""
	assert.Equal(t, "Professeur: Dr. Martin\nCrédits: 0 ECTS\n", EventDescription(c))
}
