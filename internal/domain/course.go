package domain

// Course is one weekly recurring class session.
type Course struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Professor   string `json:"professor"`
	Location    string `json:"location"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	DayOfWeek   int    `json:"dayOfWeek"` // 0 = Sunday
	Color       string `json:"color"`
	Description string `json:"description,omitempty"`
	Credits     *int   `json:"credits,omitempty"`
}

// CreditValue returns the course weight used in aggregate math.
// Absent and negative credits count as zero.
func (c Course) CreditValue() int {
	n := IntFromPtrWithDefault(0, c.Credits)
	if n < 0 {
		return 0
	}
	return n
}

// Draft strips the identifier, returning the editable form of the course.
func (c Course) Draft() CourseDraft {
	return CourseDraft{
		Title:       c.Title,
		Professor:   c.Professor,
		Location:    c.Location,
		StartTime:   c.StartTime,
		EndTime:     c.EndTime,
		DayOfWeek:   c.DayOfWeek,
		Color:       c.Color,
		Description: c.Description,
		Credits:     CopyIntPtr(c.Credits),
	}
}

// CourseDraft is a course that has not been committed to the active list yet.
// Drafts come from the add form or from document extraction and may be
// edited freely during review.
type CourseDraft struct {
	Title       string `json:"title"`
	Professor   string `json:"professor"`
	Location    string `json:"location"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	DayOfWeek   int    `json:"dayOfWeek"`
	Color       string `json:"color"`
	Description string `json:"description,omitempty"`
	Credits     *int   `json:"credits,omitempty"`
}

// NewCourseDraft returns a draft carrying the add-form defaults.
func NewCourseDraft() CourseDraft {
	credits := DefaultCredits
	return CourseDraft{
		DayOfWeek: DefaultDayOfWeek,
		Color:     DefaultColor,
		Credits:   &credits,
	}
}

// ToCourse promotes the draft to a course with the given id.
func (d CourseDraft) ToCourse(id string) Course {
	return Course{
		ID:          id,
		Title:       d.Title,
		Professor:   d.Professor,
		Location:    d.Location,
		StartTime:   d.StartTime,
		EndTime:     d.EndTime,
		DayOfWeek:   d.DayOfWeek,
		Color:       CoalesceStr(d.Color, DefaultColor),
		Description: d.Description,
		Credits:     CopyIntPtr(d.Credits),
	}
}

// CloneCourses returns a deep copy of cs.
func CloneCourses(cs []Course) []Course {
	out := make([]Course, len(cs))
	for i, c := range cs {
		c.Credits = CopyIntPtr(c.Credits)
		out[i] = c
	}
	return out
}
