package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/eduplan/internal/cli/formatter"
	"github.com/alexanderramin/eduplan/internal/domain"
	"github.com/alexanderramin/eduplan/internal/intelligence"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// stageMsg carries one extraction progress update into the view.
type stageMsg intelligence.Stage

// extractDoneMsg ends the view with the extraction result.
type extractDoneMsg struct {
	drafts []domain.CourseDraft
	err    error
}

// extractModel shows the staged analysis of a document.
type extractModel struct {
	document string
	spinner  spinner.Model
	progress progress.Model
	stage    intelligence.Stage

	cancel    func()
	cancelled bool
	finished  bool
	drafts    []domain.CourseDraft
	err       error
}

func newExtractModel(document string, cancel func()) extractModel {
	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	s.Style = lipgloss.NewStyle().Foreground(formatter.ColorPurple)
	return extractModel{
		document: document,
		spinner:  s,
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		stage:    intelligence.Stage{Label: "Préparation"},
		cancel:   cancel,
	}
}

func (m extractModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m extractModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			m.cancelled = true
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		}
		return m, nil

	case stageMsg:
		m.stage = intelligence.Stage(msg)
		return m, nil

	case extractDoneMsg:
		m.finished = true
		m.drafts = msg.drafts
		m.err = msg.err
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m extractModel) View() string {
	if m.finished || m.cancelled {
		return ""
	}
	var b strings.Builder
	b.WriteString(formatter.Header("Analyzing " + m.document))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  %s %s\n", m.spinner.View(), m.stage.Label))
	b.WriteString("  " + m.progress.ViewAs(float64(m.stage.Percent)/100) + "\n\n")
	b.WriteString(formatter.Dim("  esc to cancel") + "\n")
	return b.String()
}
