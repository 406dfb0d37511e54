package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/eduplan/internal/cli/formatter"
	"github.com/alexanderramin/eduplan/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// eduplanHuhTheme returns a custom huh theme using the Gruvbox palette.
func eduplanHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorGreen).SetString("[✓] ")
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorDim).SetString("[ ] ")
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// courseFormValues holds the string-typed fields edited by the course form.
type courseFormValues struct {
	Title       string
	Professor   string
	Location    string
	Day         int
	Start       string
	End         string
	Credits     string
	Color       string
	Description string
}

func formValuesFromDraft(d domain.CourseDraft) *courseFormValues {
	v := &courseFormValues{
		Title:       d.Title,
		Professor:   d.Professor,
		Location:    d.Location,
		Day:         d.DayOfWeek,
		Start:       d.StartTime,
		End:         d.EndTime,
		Color:       domain.CoalesceStr(d.Color, domain.DefaultColor),
		Description: d.Description,
	}
	if d.Credits != nil {
		v.Credits = strconv.Itoa(*d.Credits)
	}
	return v
}

// Draft converts the form values back. An empty credits field means none.
func (v *courseFormValues) Draft() domain.CourseDraft {
	d := domain.CourseDraft{
		Title:       strings.TrimSpace(v.Title),
		Professor:   strings.TrimSpace(v.Professor),
		Location:    strings.TrimSpace(v.Location),
		StartTime:   normalizeClock(v.Start),
		EndTime:     normalizeClock(v.End),
		DayOfWeek:   v.Day,
		Color:       v.Color,
		Description: strings.TrimSpace(v.Description),
	}
	if s := strings.TrimSpace(v.Credits); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			d.Credits = &n
		}
	}
	return d
}

// normalizeClock pads "9:00" to "09:00"; invalid input is returned trimmed.
func normalizeClock(s string) string {
	c, err := domain.ParseClock(s)
	if err != nil {
		return strings.TrimSpace(s)
	}
	return c.String()
}

func dayOptions() []huh.Option[int] {
	// Monday first, Sunday last.
	order := []int{1, 2, 3, 4, 5, 6, 0}
	opts := make([]huh.Option[int], 0, len(order))
	for _, d := range order {
		opts = append(opts, huh.NewOption(domain.DayName(d), d))
	}
	return opts
}

func colorOptions(current string) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(domain.Palette)+1)
	known := false
	for _, p := range domain.Palette {
		opts = append(opts, huh.NewOption(formatter.Swatch(p.Value)+" "+p.Name, p.Value))
		if p.Value == current {
			known = true
		}
	}
	if current != "" && !known {
		opts = append(opts, huh.NewOption(formatter.Swatch(current)+" "+current, current))
	}
	return opts
}

func requiredText(title string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", title)
		}
		return nil
	}
}

// validateClock accepts H:MM or HH:MM.
func validateClock(s string) error {
	if _, err := domain.ParseClock(s); err != nil {
		return fmt.Errorf("use HH:MM format")
	}
	return nil
}

// validateEndAfter returns a validator rejecting end times not after *start.
func validateEndAfter(start *string) func(string) error {
	return func(s string) error {
		end, err := domain.ParseClock(s)
		if err != nil {
			return fmt.Errorf("use HH:MM format")
		}
		if begin, err := domain.ParseClock(*start); err == nil && end.Minutes() <= begin.Minutes() {
			return fmt.Errorf("end must be after %s", begin)
		}
		return nil
	}
}

// validateNonNegativeInt accepts empty or a non-negative integer.
func validateNonNegativeInt(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return fmt.Errorf("enter a non-negative number")
	}
	return nil
}

// courseForm builds the add/edit form over v.
func courseForm(title string, v *courseFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title(title),
			huh.NewInput().Title("Title").Value(&v.Title).Validate(requiredText("title")),
			huh.NewInput().Title("Professor").Value(&v.Professor).Validate(requiredText("professor")),
			huh.NewInput().Title("Room").Value(&v.Location).Validate(requiredText("room")),
		),
		huh.NewGroup(
			huh.NewSelect[int]().Title("Day").Options(dayOptions()...).Value(&v.Day),
			huh.NewInput().Title("Start (HH:MM)").Placeholder("09:00").Value(&v.Start).Validate(validateClock),
			huh.NewInput().Title("End (HH:MM)").Placeholder("11:00").Value(&v.End).Validate(validateEndAfter(&v.Start)),
		),
		huh.NewGroup(
			huh.NewInput().Title("Credits (ECTS, blank for none)").Placeholder(strconv.Itoa(domain.DefaultCredits)).
				Value(&v.Credits).Validate(validateNonNegativeInt),
			huh.NewSelect[string]().Title("Color").Options(colorOptions(v.Color)...).Value(&v.Color),
			huh.NewText().Title("Description (optional)").Value(&v.Description),
		),
	).WithTheme(eduplanHuhTheme()).WithShowHelp(false)
}

// reviewForm lets the user pick which drafts to keep and whether to edit them.
func reviewForm(drafts []domain.CourseDraft, selected *[]int, edit *bool) *huh.Form {
	opts := make([]huh.Option[int], 0, len(drafts))
	for i, d := range drafts {
		label := fmt.Sprintf("%s · %s %s", d.Title, domain.DayName(d.DayOfWeek), formatter.TimeRange(d.StartTime, d.EndTime))
		opts = append(opts, huh.NewOption(label, i).Selected(true))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[int]().
				Title("Courses to add").
				Options(opts...).
				Value(selected),
			huh.NewConfirm().
				Title("Edit the selected courses before adding them?").
				Affirmative("Edit").
				Negative("Add as is").
				Value(edit),
		),
	).WithTheme(eduplanHuhTheme()).WithShowHelp(false)
}

// wizardConfirm creates a huh form for a yes/no confirmation.
func wizardConfirm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(eduplanHuhTheme()).WithShowHelp(false)
}
