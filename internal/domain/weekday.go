package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// DayNames holds the French weekday names, indexed from Sunday.
var DayNames = [7]string{"Dimanche", "Lundi", "Mardi", "Mercredi", "Jeudi", "Vendredi", "Samedi"}

// DayCodes holds the two-letter iCalendar weekday codes, indexed from Sunday.
var DayCodes = [7]string{"SU", "MO", "TU", "WE", "TH", "FR", "SA"}

// Friday is the day the free-day heuristic looks at.
const Friday = 5

// ValidDay reports whether d is a weekday index in 0–6.
func ValidDay(d int) bool {
	return d >= 0 && d < len(DayNames)
}

// DayName returns the French name for d, or "Jour d" when out of range.
func DayName(d int) string {
	if !ValidDay(d) {
		return fmt.Sprintf("Jour %d", d)
	}
	return DayNames[d]
}

// DayCode returns the iCalendar code for d. Out-of-range values wrap modulo 7.
func DayCode(d int) string {
	return DayCodes[((d%7)+7)%7]
}

var englishDays = [7]string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

// ParseDay accepts an index ("1"), a French or English name, a three-letter
// English prefix ("mon") or an iCalendar code ("MO").
func ParseDay(s string) (int, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	if in == "" {
		return 0, fmt.Errorf("day is required")
	}
	if n, err := strconv.Atoi(in); err == nil {
		if !ValidDay(n) {
			return 0, fmt.Errorf("day %d out of range 0-6", n)
		}
		return n, nil
	}
	for i := range DayNames {
		if in == strings.ToLower(DayNames[i]) ||
			in == englishDays[i] ||
			in == englishDays[i][:3] ||
			in == strings.ToLower(DayCodes[i]) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown day %q", s)
}
