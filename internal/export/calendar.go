package export

import (
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/alexanderramin/eduplan/internal/domain"
	ics "github.com/arran4/golang-ical"
)

// Calendar header values.
const (
	CalendarProductID   = "-//EduPlan IA//Emploi du Temps//FR"
	CalendarName        = "Emploi du Temps - EduPlan"
	CalendarTimezone    = "Europe/Paris"
	CalendarDescription = "Emploi du temps généré par EduPlan IA"
	CalendarScale       = "GREGORIAN"
	uidDomain           = "eduplan.ia"
)

type calendarConfig struct {
	now func() time.Time
	loc *time.Location
}

// CalendarOption configures calendar rendering.
type CalendarOption func(*calendarConfig)

// WithNow sets the clock used for the first occurrence and DTSTAMP.
func WithNow(now func() time.Time) CalendarOption {
	return func(c *calendarConfig) {
		if now != nil {
			c.now = now
		}
	}
}

// WithLocation sets the timezone in which course wall-clock times are read.
// It is also declared in the X-WR-TIMEZONE header.
func WithLocation(loc *time.Location) CalendarOption {
	return func(c *calendarConfig) {
		if loc != nil {
			c.loc = loc
		}
	}
}

// DefaultLocation loads CalendarTimezone, falling back to UTC.
func DefaultLocation() *time.Location {
	loc, err := time.LoadLocation(CalendarTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Calendar renders courses as an iCalendar document with one weekly
// recurring event per course, anchored on the next occurrence of its weekday
// after today. A course on today's weekday starts next week.
func Calendar(courses []domain.Course, opts ...CalendarOption) string {
	cfg := calendarConfig{now: time.Now, loc: DefaultLocation()}
	for _, opt := range opts {
		opt(&cfg)
	}
	now := cfg.now()

	cal := ics.NewCalendar()
	cal.SetProductId(CalendarProductID)
	cal.SetCalscale(CalendarScale)
	cal.SetMethod(ics.MethodPublish)
	cal.SetXWRCalName(CalendarName)
	cal.SetXWRTimezone(cfg.loc.String())
	cal.SetXWRCalDesc(CalendarDescription)

	for _, c := range courses {
		start, end := Occurrence(c, now, cfg.loc)

		ev := cal.AddEvent(c.ID + "@" + uidDomain)
		ev.SetDtStampTime(now)
		ev.SetStartAt(start)
		ev.SetEndAt(end)
		ev.SetSummary(c.Title)
		ev.SetDescription(EventDescription(c))
		ev.SetLocation(c.Location)
		ev.AddRrule(fmt.Sprintf("FREQ=WEEKLY;BYDAY=%s", domain.DayCode(c.DayOfWeek)))
		ev.SetStatus(ics.ObjectStatusConfirmed)
	}

	return cal.Serialize()
}

// Occurrence returns the first start and end instants of c strictly after
// the day of now, read in loc. Unparsable times read as midnight.
func Occurrence(c domain.Course, now time.Time, loc *time.Location) (time.Time, time.Time) {
	local := now.In(loc)
	target := ((c.DayOfWeek % 7) + 7) % 7
	days := (target - int(local.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	y, m, d := local.AddDate(0, 0, days).Date()

	startClock, _ := domain.ParseClock(c.StartTime)
	endClock, _ := domain.ParseClock(c.EndTime)

	start := time.Date(y, m, d, startClock.Hour, startClock.Minute, 0, 0, loc)
	end := time.Date(y, m, d, endClock.Hour, endClock.Minute, 0, 0, loc)
	return start, end
}

// EventDescription combines professor, credits and free text.
func EventDescription(c domain.Course) string {
	return fmt.Sprintf("Professeur: %s\nCrédits: %d ECTS\n%s", c.Professor, c.CreditValue(), c.Description)
}
