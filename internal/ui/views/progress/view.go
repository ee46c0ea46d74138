package progress

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	progressdto "tempo/internal/modules/progress/dto"
	"tempo/internal/ui/theme"
)

// Port is the slice of the progress module this view reads from.
type Port interface {
	Today(ctx context.Context) (progressdto.TodayOutput, error)
	Streaks(ctx context.Context) (progressdto.StreakOutput, error)
	WeekSummary(ctx context.Context) (progressdto.SummaryOutput, error)
	MonthSummary(ctx context.Context) (progressdto.SummaryOutput, error)
	Badges(ctx context.Context) ([]progressdto.BadgeOutput, error)
}

type loadedMsg struct {
	today   progressdto.TodayOutput
	streaks progressdto.StreakOutput
	week    progressdto.SummaryOutput
	month   progressdto.SummaryOutput
	badges  []progressdto.BadgeOutput
	err     error
}

type Model struct {
	port Port

	today   progressdto.TodayOutput
	streaks progressdto.StreakOutput
	week    progressdto.SummaryOutput
	month   progressdto.SummaryOutput
	badges  []progressdto.BadgeOutput
	loaded  bool
	loadErr string
	width   int
}

func New(port Port) Model {
	return Model{port: port}
}

func (m Model) Init() tea.Cmd {
	return m.Refresh()
}

// Refresh reloads every panel. The app layer triggers it when the tab
// gains focus and after each goal-affecting event.
func (m Model) Refresh() tea.Cmd {
	if m.port == nil {
		return nil
	}
	port := m.port
	return func() tea.Msg {
		ctx := context.Background()
		out := loadedMsg{}
		var err error
		if out.today, err = port.Today(ctx); err != nil {
			return loadedMsg{err: err}
		}
		if out.streaks, err = port.Streaks(ctx); err != nil {
			return loadedMsg{err: err}
		}
		if out.week, err = port.WeekSummary(ctx); err != nil {
			return loadedMsg{err: err}
		}
		if out.month, err = port.MonthSummary(ctx); err != nil {
			return loadedMsg{err: err}
		}
		if out.badges, err = port.Badges(ctx); err != nil {
			return loadedMsg{err: err}
		}
		return out
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case loadedMsg:
		if msg.err != nil {
			m.loadErr = msg.err.Error()
			return m, nil
		}
		m.today = msg.today
		m.streaks = msg.streaks
		m.week = msg.week
		m.month = msg.month
		m.badges = msg.badges
		m.loaded = true
		m.loadErr = ""
	case tea.KeyMsg:
		if msg.String() == "r" {
			return m, m.Refresh()
		}
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Progress") + "\n\n")

	if m.loadErr != "" {
		sb.WriteString(theme.Bad.Render("load failed: "+m.loadErr) + "\n")
		return theme.Pane.Render(sb.String())
	}
	if !m.loaded {
		sb.WriteString(theme.Muted.Render("loading…") + "\n")
		return theme.Pane.Render(sb.String())
	}

	sb.WriteString(fmt.Sprintf("today   %s  (%d%% of goal, %s left)\n",
		formatDuration(m.today.EffectiveStudySeconds),
		int(m.today.Ratio*100),
		formatDuration(m.today.RemainingGoalSeconds)))
	sb.WriteString(fmt.Sprintf("streak  %s now, best %d days\n",
		theme.Hot.Render(fmt.Sprintf("%d days", m.streaks.Current)), m.streaks.Longest))
	sb.WriteString(fmt.Sprintf("week    %s study, %d sessions over %d days\n",
		formatDuration(m.week.StudySeconds), m.week.SessionsCount, m.week.ActiveDays))
	sb.WriteString(fmt.Sprintf("month   %s study, %d sessions over %d days\n",
		formatDuration(m.month.StudySeconds), m.month.SessionsCount, m.month.ActiveDays))

	sb.WriteString("\n" + theme.Title.Render("Badges") + "\n")
	for _, b := range m.badges {
		if b.Earned {
			sb.WriteString(theme.Good.Render("  ● "+b.Title) + "\n")
		} else {
			sb.WriteString(theme.Muted.Render("  ○ "+b.Title) + "\n")
		}
	}
	sb.WriteString("\n" + theme.Muted.Render("r refresh"))

	return theme.Pane.Width(maxInt(m.width-4, 20)).Render(sb.String())
}

func formatDuration(seconds int) string {
	h := seconds / 3600
	mtn := (seconds % 3600) / 60
	if h == 0 {
		return fmt.Sprintf("%dm", mtn)
	}
	return fmt.Sprintf("%dh%02dm", h, mtn)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
