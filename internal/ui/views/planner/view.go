package planner

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	plannerdto "tempo/internal/modules/planner/dto"
	"tempo/internal/ui/theme"
)

// Port is the slice of the planner module this view drives.
type Port interface {
	Add(ctx context.Context, input plannerdto.AddInput) (plannerdto.TaskOutput, error)
	Complete(ctx context.Context, id string) (plannerdto.TaskOutput, error)
	Remove(ctx context.Context, id string) error
	TodayPlan(ctx context.Context) (plannerdto.DayPlanOutput, error)
	CarryOver(ctx context.Context) ([]plannerdto.TaskOutput, error)
}

type planLoadedMsg struct {
	plan plannerdto.DayPlanOutput
	err  error
}

type mutatedMsg struct {
	note string
	err  error
}

type Model struct {
	port Port

	plan   plannerdto.DayPlanOutput
	cursor int
	status string
	loaded bool
	width  int
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
		plan, err := port.TodayPlan(context.Background())
		return planLoadedMsg{plan: plan, err: err}
	}
}

// AddTask creates a task for today; the app layer feeds it from the
// command palette.
func (m Model) AddTask(title string) tea.Cmd {
	port := m.port
	return func() tea.Msg {
		if port == nil {
			return mutatedMsg{err: fmt.Errorf("planner not configured")}
		}
		task, err := port.Add(context.Background(), plannerdto.AddInput{Title: title})
		if err != nil {
			return mutatedMsg{err: err}
		}
		return mutatedMsg{note: "added: " + task.Title}
	}
}

// CarryOver pulls yesterday's unfinished tasks onto today.
func (m Model) CarryOver() tea.Cmd {
	port := m.port
	return func() tea.Msg {
		if port == nil {
			return mutatedMsg{err: fmt.Errorf("planner not configured")}
		}
		moved, err := port.CarryOver(context.Background())
		if err != nil {
			return mutatedMsg{err: err}
		}
		return mutatedMsg{note: fmt.Sprintf("carried over %d task(s)", len(moved))}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case planLoadedMsg:
		if msg.err != nil {
			m.status = "load failed: " + msg.err.Error()
			return m, nil
		}
		m.plan = msg.plan
		m.loaded = true
		if m.cursor >= len(m.plan.Tasks) {
			m.cursor = len(m.plan.Tasks) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}

	case mutatedMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}
		m.status = msg.note
		return m, m.Refresh()

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.plan.Tasks)-1 {
				m.cursor++
			}
		case "c", "enter":
			if task, ok := m.selected(); ok {
				return m, m.completeCmd(task.ID)
			}
		case "d":
			if task, ok := m.selected(); ok {
				return m, m.removeCmd(task.ID)
			}
		case "o":
			return m, m.CarryOver()
		case "r":
			return m, m.Refresh()
		}
	}
	return m, nil
}

func (m Model) selected() (plannerdto.TaskOutput, bool) {
	if m.cursor < 0 || m.cursor >= len(m.plan.Tasks) {
		return plannerdto.TaskOutput{}, false
	}
	return m.plan.Tasks[m.cursor], true
}

func (m Model) completeCmd(id string) tea.Cmd {
	port := m.port
	return func() tea.Msg {
		task, err := port.Complete(context.Background(), id)
		if err != nil {
			return mutatedMsg{err: err}
		}
		return mutatedMsg{note: "done: " + task.Title}
	}
}

func (m Model) removeCmd(id string) tea.Cmd {
	port := m.port
	return func() tea.Msg {
		if err := port.Remove(context.Background(), id); err != nil {
			return mutatedMsg{err: err}
		}
		return mutatedMsg{note: "removed"}
	}
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Planner") + "  " +
		theme.Muted.Render(m.plan.DayKey) + "\n\n")

	if !m.loaded {
		sb.WriteString(theme.Muted.Render("loading…") + "\n")
		return theme.Pane.Render(sb.String())
	}
	if len(m.plan.Tasks) == 0 {
		sb.WriteString(theme.Muted.Render("nothing planned; use :plan:add <title>") + "\n")
	}
	for i, task := range m.plan.Tasks {
		marker := "○"
		style := theme.Muted
		if task.Done {
			marker = "●"
			style = theme.Good
		}
		line := fmt.Sprintf("%s %s", marker, task.Title)
		if i == m.cursor {
			sb.WriteString(theme.Hot.Render("> "+line) + "\n")
		} else {
			sb.WriteString(style.Render("  "+line) + "\n")
		}
	}
	sb.WriteString(fmt.Sprintf("\n%d open, %d done\n", m.plan.OpenCount, m.plan.DoneCount))
	if m.status != "" {
		sb.WriteString(theme.Muted.Render(m.status) + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("c complete  d delete  o carry over  r refresh"))

	return theme.Pane.Width(maxInt(m.width-4, 20)).Render(sb.String())
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
