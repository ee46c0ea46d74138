package timer

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	sessiondto "tempo/internal/modules/session/dto"
	"tempo/internal/ui/theme"
)

// Model renders the focus timer. The app layer owns the session port
// and the tick loop; this view only draws the latest status it was
// handed.
type Model struct {
	status sessiondto.StatusOutput
	width  int
	height int
}

func New() Model {
	return Model{}
}

func (m *Model) SetStatus(status sessiondto.StatusOutput) {
	m.status = status
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if sz, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = sz.Width
		m.height = sz.Height
	}
	return m, nil
}

func (m Model) View() string {
	s := m.status

	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Focus") + "\n\n")

	phase := s.Phase
	if phase == "" {
		phase = "study"
	}
	switch s.State {
	case "running":
		if phase == "break" {
			sb.WriteString(theme.Good.Render("break") + "\n")
		} else {
			sb.WriteString(theme.Hot.Render("studying") + "\n")
		}
	case "paused":
		sb.WriteString(theme.Muted.Render("paused") + "\n")
	default:
		sb.WriteString(theme.Muted.Render("idle (press s to start)") + "\n")
	}

	sb.WriteString(theme.Clock.Render(clockFace(s.RemainingSeconds)) + "\n\n")

	if s.Label != "" {
		sb.WriteString(theme.Muted.Render("label: ") + s.Label + "\n")
	}
	sb.WriteString(goalLine(s.GoalProgressSeconds, s.DailyGoalSeconds, m.barWidth()) + "\n")
	if s.PromptPending && s.StatusText != "" {
		sb.WriteString("\n" + theme.Hot.Render(s.StatusText+"  (enter to dismiss)") + "\n")
	} else if s.StatusText != "" {
		sb.WriteString("\n" + theme.Muted.Render(s.StatusText) + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("s start  space pause/resume  b skip break  x stop"))

	return theme.Pane.Width(max(m.width-4, 20)).Render(sb.String())
}

func (m Model) barWidth() int {
	w := m.width - 16
	if w < 10 {
		return 10
	}
	if w > 50 {
		return 50
	}
	return w
}

func clockFace(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("  %02d:%02d", seconds/60, seconds%60)
}

func goalLine(progress, goal, width int) string {
	if goal < 1 {
		goal = 1
	}
	ratio := float64(progress) / float64(goal)
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio * float64(width))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	style := theme.Muted
	if ratio >= 1 {
		style = theme.Good
	}
	return fmt.Sprintf("goal  %s %s", style.Render(bar), formatHours(progress)+" / "+formatHours(goal))
}

func formatHours(seconds int) string {
	h := seconds / 3600
	mtn := (seconds % 3600) / 60
	if h == 0 {
		return fmt.Sprintf("%dm", mtn)
	}
	return fmt.Sprintf("%dh%02dm", h, mtn)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
