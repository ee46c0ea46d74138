package breathe

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	calmdto "tempo/internal/modules/calm/dto"
	"tempo/internal/ui/theme"
)

// Port is the slice of the calm module this view drives.
type Port interface {
	Patterns(ctx context.Context) ([]calmdto.PatternOutput, error)
	StepAt(ctx context.Context, patternID string, elapsedSeconds int) (calmdto.StepOutput, error)
}

type patternsLoadedMsg struct {
	patterns []calmdto.PatternOutput
	err      error
}

type stepMsg struct {
	step calmdto.StepOutput
	err  error
}

type tickMsg struct{}

// Model runs a guided breathing session. It owns its own one second
// tick so the exercise keeps moving regardless of the focus timer.
type Model struct {
	port Port

	patterns []calmdto.PatternOutput
	selected int
	running  bool
	elapsed  int
	step     calmdto.StepOutput
	status   string
	width    int
}

func New(port Port) Model {
	return Model{port: port}
}

func (m Model) Init() tea.Cmd {
	if m.port == nil {
		return nil
	}
	port := m.port
	return func() tea.Msg {
		patterns, err := port.Patterns(context.Background())
		return patternsLoadedMsg{patterns: patterns, err: err}
	}
}

// Running reports whether a breathing run is in progress; quitting the
// tab stops the tick loop.
func (m Model) Running() bool { return m.running }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case patternsLoadedMsg:
		if msg.err != nil {
			m.status = "load failed: " + msg.err.Error()
			return m, nil
		}
		m.patterns = msg.patterns

	case tickMsg:
		if !m.running {
			return m, nil
		}
		m.elapsed++
		return m, tea.Batch(m.stepCmd(), m.tickCmd())

	case stepMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			m.running = false
			return m, nil
		}
		m.step = msg.step

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if !m.running && m.selected > 0 {
				m.selected--
			}
		case "down", "j":
			if !m.running && m.selected < len(m.patterns)-1 {
				m.selected++
			}
		case " ", "enter":
			if m.running {
				m.running = false
				m.status = "stopped"
				return m, nil
			}
			if len(m.patterns) == 0 {
				return m, nil
			}
			m.running = true
			m.elapsed = 0
			m.status = ""
			return m, tea.Batch(m.stepCmd(), m.tickCmd())
		}
	}
	return m, nil
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return tickMsg{} })
}

func (m Model) stepCmd() tea.Cmd {
	port := m.port
	id := m.patterns[m.selected].ID
	elapsed := m.elapsed
	return func() tea.Msg {
		step, err := port.StepAt(context.Background(), id, elapsed)
		return stepMsg{step: step, err: err}
	}
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Breathe") + "\n\n")

	if len(m.patterns) == 0 {
		sb.WriteString(theme.Muted.Render(m.status) + "\n")
		return theme.Pane.Render(sb.String())
	}

	for i, p := range m.patterns {
		line := fmt.Sprintf("%s (%ds cycle)", p.Name, p.CycleSeconds)
		if i == m.selected {
			sb.WriteString(theme.Hot.Render("> "+line) + "\n")
		} else {
			sb.WriteString(theme.Muted.Render("  "+line) + "\n")
		}
	}
	sb.WriteString("\n")

	if m.running {
		sb.WriteString(theme.Clock.Render(strings.ToUpper(m.step.PhaseName)) + "\n")
		sb.WriteString(fmt.Sprintf("%d seconds left, cycle %d\n", m.step.RemainingSeconds, m.step.Cycle))
	} else if m.status != "" {
		sb.WriteString(theme.Muted.Render(m.status) + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("space start/stop  j/k choose pattern"))

	return theme.Pane.Width(maxInt(m.width-4, 20)).Render(sb.String())
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
