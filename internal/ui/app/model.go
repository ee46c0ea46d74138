package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	sessiondto "tempo/internal/modules/session/dto"
	apperrors "tempo/internal/platform/errors"
	"tempo/internal/ui/components"
	"tempo/internal/ui/theme"
	breatheview "tempo/internal/ui/views/breathe"
	checkinview "tempo/internal/ui/views/checkin"
	plannerview "tempo/internal/ui/views/planner"
	progressview "tempo/internal/ui/views/progress"
	timerview "tempo/internal/ui/views/timer"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// sessionPort is the slice of the session module the root model drives;
// the other modules are consumed through the view-local ports.

type sessionPort interface {
	Start(ctx context.Context, input sessiondto.StartInput) (sessiondto.StatusOutput, error)
	Pause(ctx context.Context) (sessiondto.StatusOutput, error)
	Resume(ctx context.Context) (sessiondto.StatusOutput, error)
	Tick(ctx context.Context) (sessiondto.TickOutput, error)
	SkipBreak(ctx context.Context) (sessiondto.StatusOutput, error)
	Acknowledge(ctx context.Context) (sessiondto.StatusOutput, error)
	Stop(ctx context.Context) (sessiondto.StopOutput, error)
	Suspend(ctx context.Context) error
	Restore(ctx context.Context) (sessiondto.StatusOutput, error)
	Status(ctx context.Context) (sessiondto.StatusOutput, error)
}

type ambiencePort interface {
	AmbienceOn(ctx context.Context, sound string) error
	AmbienceOff(ctx context.Context) error
}

// StartDefaults supplies the configured durations for a new session.
type StartDefaults func() sessiondto.StartInput

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabTimer tabID = iota
	tabProgress
	tabPlanner
	tabCheckin
	tabBreathe
	tabCount
)

var tabLabels = [tabCount]string{
	"Timer", "Progress", "Planner", "Check-in", "Breathe",
}

// ─── async messages ───────────────────────────────────────────────────────────

type restoredMsg struct {
	status sessiondto.StatusOutput
	err    error
}

type statusMsg struct {
	status sessiondto.StatusOutput
	note   string
	err    error
}

type tickDoneMsg struct {
	out sessiondto.TickOutput
	err error
}

type stoppedMsg struct {
	out sessiondto.StopOutput
	err error
}

type ambienceMsg struct {
	note string
	err  error
}

type clockTickMsg struct{}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Start   key.Binding
	Toggle  key.Binding
	Skip    key.Binding
	Stop    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Start:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start session")),
		Toggle:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pause/resume")),
		Skip:    key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "skip break")),
		Stop:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "stop session")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Toggle, k.Skip, k.Stop},
		{k.Tab, k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the focus
// timer tick loop and the command palette; rendering and per-module
// state live in the sub-views.
type Model struct {
	session  sessionPort
	ambience ambiencePort
	defaults StartDefaults

	timerView    timerview.Model
	progressView progressview.Model
	plannerView  plannerview.Model
	checkinView  checkinview.Model
	breatheView  breatheview.Model

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	status    string
	tickArmed bool
	width     int
	height    int
}

func NewModel(
	session sessionPort,
	progress progressview.Port,
	planner plannerview.Port,
	checkin checkinview.Port,
	calm breatheview.Port,
	ambience ambiencePort,
	defaults StartDefaults,
) Model {
	return Model{
		session:      session,
		ambience:     ambience,
		defaults:     defaults,
		timerView:    timerview.New(),
		progressView: progressview.New(progress),
		plannerView:  plannerview.New(planner),
		checkinView:  checkinview.New(checkin),
		breatheView:  breatheview.New(calm),
		activeTab:    tabTimer,
		keys:         defaultKeys(),
		help:         help.New(),
		palette:      components.NewPalette(),
		status:       "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.restoreCmd(),
		m.progressView.Init(),
		m.plannerView.Init(),
		m.checkinView.Init(),
		m.breatheView.Init(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The palette intercepts all input while open.
	if m.palette.Visible() {
		if _, isKey := msg.(tea.KeyMsg); isKey {
			var cmd tea.Cmd
			m.palette, cmd = m.palette.Update(msg)
			return m, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(minInt(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()

	case restoredMsg:
		if msg.err != nil {
			if !errors.Is(msg.err, apperrors.ErrNoSnapshot) {
				m.status = "restore: " + msg.err.Error()
			}
			return m, nil
		}
		m.timerView.SetStatus(msg.status)
		if msg.status.State != "idle" {
			m.status = "session restored, paused"
		}

	case statusMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}
		m.timerView.SetStatus(msg.status)
		if msg.note != "" {
			m.status = msg.note
		}
		if msg.status.State == "running" && !m.tickArmed {
			m.tickArmed = true
			cmds = append(cmds, m.clockCmd())
		}

	case clockTickMsg:
		m.tickArmed = false
		return m, m.tickCmd()

	case tickDoneMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}
		m.timerView.SetStatus(msg.out.Status)
		for _, prompt := range msg.out.Prompts {
			m.status = prompt
		}
		if msg.out.Status.State == "running" && !m.tickArmed {
			m.tickArmed = true
			cmds = append(cmds, m.clockCmd())
		}
		return m, tea.Batch(cmds...)

	case stoppedMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}
		m.status = fmt.Sprintf("session stopped: %s studied", formatMinutes(msg.out.StudySeconds))
		return m, tea.Batch(m.statusCmd(""), m.progressView.Refresh())

	case ambienceMsg:
		if msg.err != nil {
			m.status = "ambience: " + msg.err.Error()
		} else {
			m.status = msg.note
		}

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Sequence(m.suspendCmd(), tea.Quit)
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
			cmds = append(cmds, m.refreshTab())
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
			cmds = append(cmds, m.refreshTab())
		case "?":
			m.showHelp = !m.showHelp
		case ":":
			cmds = append(cmds, m.palette.Open())
			return m, tea.Batch(cmds...)
		case "s":
			if m.activeTab == tabTimer {
				return m, m.startCmd("")
			}
		case " ":
			if m.activeTab == tabTimer {
				return m, m.toggleCmd()
			}
		case "b":
			if m.activeTab == tabTimer {
				return m, m.actionCmd("break skipped", m.session.SkipBreak)
			}
		case "x":
			if m.activeTab == tabTimer {
				return m, m.stopCmd()
			}
		case "enter":
			if m.activeTab == tabTimer {
				return m, m.actionCmd("", m.session.Acknowledge)
			}
		}
	}

	// Propagate the message to the active tab's sub-view.
	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabTimer:
		m.timerView, tabCmd = m.timerView.Update(msg)
	case tabProgress:
		m.progressView, tabCmd = m.progressView.Update(msg)
	case tabPlanner:
		m.plannerView, tabCmd = m.plannerView.Update(msg)
	case tabCheckin:
		m.checkinView, tabCmd = m.checkinView.Update(msg)
	case tabBreathe:
		m.breatheView, tabCmd = m.breatheView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	contentH := m.height - lipgloss.Height(tabBar) - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabTimer:
		return m.timerView.View()
	case tabProgress:
		return m.progressView.View()
	case tabPlanner:
		return m.plannerView.View()
	case tabCheckin:
		return m.checkinView.View()
	case tabBreathe:
		return m.breatheView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "tempo  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	right := theme.Muted.Render("?:help  tab:switch  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)

	switch parts[0] {
	case "session:start":
		label := strings.TrimSpace(strings.TrimPrefix(input, parts[0]))
		return m, m.startCmd(label)

	case "session:pause":
		return m, m.actionCmd("paused", m.session.Pause)

	case "session:resume":
		return m, m.actionCmd("resumed", m.session.Resume)

	case "session:stop":
		return m, m.stopCmd()

	case "session:skip-break":
		return m, m.actionCmd("break skipped", m.session.SkipBreak)

	case "plan:add":
		title := strings.TrimSpace(strings.TrimPrefix(input, parts[0]))
		if title == "" {
			m.status = "usage: plan:add <title>"
			return m, nil
		}
		m.activeTab = tabPlanner
		return m, m.plannerView.AddTask(title)

	case "plan:carry-over":
		m.activeTab = tabPlanner
		return m, m.plannerView.CarryOver()

	case "checkin:add":
		if len(parts) < 2 {
			m.status = "usage: checkin:add <mood 1-5> [energy 1-5] [note]"
			return m, nil
		}
		mood, err := strconv.Atoi(parts[1])
		if err != nil {
			m.status = "invalid mood"
			return m, nil
		}
		energy := 3
		note := ""
		if len(parts) >= 3 {
			if e, err := strconv.Atoi(parts[2]); err == nil {
				energy = e
				note = strings.TrimSpace(strings.TrimPrefix(input, parts[0]+" "+parts[1]+" "+parts[2]))
			} else {
				note = strings.TrimSpace(strings.TrimPrefix(input, parts[0]+" "+parts[1]))
			}
		}
		m.activeTab = tabCheckin
		return m, m.checkinView.Add(mood, energy, note)

	case "ambience:on":
		sound := m.defaults().Ambience
		if len(parts) >= 2 {
			sound = parts[1]
		}
		return m, m.ambienceCmd(true, sound)

	case "ambience:off":
		return m, m.ambienceCmd(false, "")

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.timerView, _ = m.timerView.Update(sz)
	m.progressView, _ = m.progressView.Update(sz)
	m.plannerView, _ = m.plannerView.Update(sz)
	m.checkinView, _ = m.checkinView.Update(sz)
	m.breatheView, _ = m.breatheView.Update(sz)
}

func (m Model) refreshTab() tea.Cmd {
	switch m.activeTab {
	case tabProgress:
		return m.progressView.Refresh()
	case tabPlanner:
		return m.plannerView.Refresh()
	case tabCheckin:
		return m.checkinView.Refresh()
	}
	return nil
}

func formatMinutes(seconds int) string {
	return fmt.Sprintf("%dm%02ds", seconds/60, seconds%60)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) restoreCmd() tea.Cmd {
	return func() tea.Msg {
		status, err := m.session.Restore(context.Background())
		return restoredMsg{status: status, err: err}
	}
}

func (m Model) clockCmd() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return clockTickMsg{} })
}

func (m Model) tickCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.session.Tick(context.Background())
		return tickDoneMsg{out: out, err: err}
	}
}

func (m Model) startCmd(label string) tea.Cmd {
	return func() tea.Msg {
		input := m.defaults()
		input.Label = label
		status, err := m.session.Start(context.Background(), input)
		if err != nil {
			return statusMsg{status: status, err: err}
		}
		return statusMsg{status: status, note: "session started"}
	}
}

func (m Model) toggleCmd() tea.Cmd {
	return func() tea.Msg {
		status, err := m.session.Status(context.Background())
		if err != nil {
			return statusMsg{err: err}
		}
		switch status.State {
		case "running":
			status, err = m.session.Pause(context.Background())
			return statusMsg{status: status, note: "paused", err: err}
		case "paused":
			status, err = m.session.Resume(context.Background())
			return statusMsg{status: status, note: "resumed", err: err}
		default:
			return statusMsg{status: status, note: "no session; press s to start"}
		}
	}
}

func (m Model) actionCmd(note string, action func(context.Context) (sessiondto.StatusOutput, error)) tea.Cmd {
	return func() tea.Msg {
		status, err := action(context.Background())
		return statusMsg{status: status, note: note, err: err}
	}
}

func (m Model) statusCmd(note string) tea.Cmd {
	return m.actionCmd(note, m.session.Status)
}

func (m Model) stopCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.session.Stop(context.Background())
		return stoppedMsg{out: out, err: err}
	}
}

func (m Model) suspendCmd() tea.Cmd {
	return func() tea.Msg {
		_ = m.session.Suspend(context.Background())
		return nil
	}
}

func (m Model) ambienceCmd(on bool, sound string) tea.Cmd {
	return func() tea.Msg {
		if m.ambience == nil {
			return ambienceMsg{err: fmt.Errorf("no ambience plugin configured")}
		}
		if on {
			if err := m.ambience.AmbienceOn(context.Background(), sound); err != nil {
				return ambienceMsg{err: err}
			}
			return ambienceMsg{note: "ambience on: " + sound}
		}
		if err := m.ambience.AmbienceOff(context.Background()); err != nil {
			return ambienceMsg{err: err}
		}
		return ambienceMsg{note: "ambience off"}
	}
}
