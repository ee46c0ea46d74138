package checkin

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	checkindto "tempo/internal/modules/checkin/dto"
	"tempo/internal/ui/theme"
)

// Port is the slice of the check-in module this view drives.
type Port interface {
	Add(ctx context.Context, input checkindto.AddInput) (checkindto.CheckInOutput, error)
	Today(ctx context.Context) (checkindto.DaySummaryOutput, error)
}

type summaryLoadedMsg struct {
	summary checkindto.DaySummaryOutput
	err     error
}

type addedMsg struct {
	entry checkindto.CheckInOutput
	err   error
}

var moodFaces = [...]string{"", "😞", "😕", "😐", "🙂", "😄"}

type Model struct {
	port Port

	summary checkindto.DaySummaryOutput
	status  string
	loaded  bool
	width   int
}

func New(port Port) Model {
	return Model{port: port}
}

func (m Model) Init() tea.Cmd {
	return m.Refresh()
}

func (m Model) Refresh() tea.Cmd {
	if m.port == nil {
		return nil
	}
	port := m.port
	return func() tea.Msg {
		summary, err := port.Today(context.Background())
		return summaryLoadedMsg{summary: summary, err: err}
	}
}

// Add records a check-in; the app layer feeds it from the palette with
// a full mood/energy/note triple, the quick keys use energy 3.
func (m Model) Add(mood, energy int, note string) tea.Cmd {
	port := m.port
	return func() tea.Msg {
		if port == nil {
			return addedMsg{err: fmt.Errorf("check-in not configured")}
		}
		entry, err := port.Add(context.Background(), checkindto.AddInput{Mood: mood, Energy: energy, Note: note})
		return addedMsg{entry: entry, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case summaryLoadedMsg:
		if msg.err != nil {
			m.status = "load failed: " + msg.err.Error()
			return m, nil
		}
		m.summary = msg.summary
		m.loaded = true

	case addedMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}
		m.status = fmt.Sprintf("recorded mood %d", msg.entry.Mood)
		return m, m.Refresh()

	case tea.KeyMsg:
		switch msg.String() {
		case "1", "2", "3", "4", "5":
			mood := int(msg.String()[0] - '0')
			return m, m.Add(mood, 3, "")
		case "r":
			return m, m.Refresh()
		}
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Check-in") + "  " +
		theme.Muted.Render(m.summary.DayKey) + "\n\n")

	if !m.loaded {
		sb.WriteString(theme.Muted.Render("loading…") + "\n")
		return theme.Pane.Render(sb.String())
	}

	sb.WriteString("how are you feeling?  ")
	for mood := 1; mood <= 5; mood++ {
		sb.WriteString(fmt.Sprintf("%d %s  ", mood, moodFaces[mood]))
	}
	sb.WriteString("\n\n")

	if len(m.summary.Entries) == 0 {
		sb.WriteString(theme.Muted.Render("no check-ins yet today") + "\n")
	} else {
		for _, e := range m.summary.Entries {
			line := fmt.Sprintf("%s  mood %d  energy %d", e.At.Format("15:04"), e.Mood, e.Energy)
			if e.Note != "" {
				line += "  " + e.Note
			}
			sb.WriteString("  " + line + "\n")
		}
		sb.WriteString(fmt.Sprintf("\naverage mood %.1f\n", m.summary.AverageMood))
	}
	if m.status != "" {
		sb.WriteString("\n" + theme.Muted.Render(m.status) + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("1-5 quick mood  r refresh"))

	return theme.Pane.Width(maxInt(m.width-4, 20)).Render(sb.String())
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
