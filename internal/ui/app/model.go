package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	missiondomain "wayne/internal/modules/mission/domain"
	profiledomain "wayne/internal/modules/profile/domain"
	sessiondomain "wayne/internal/modules/session/domain"
	sessiondto "wayne/internal/modules/session/dto"
	apperrors "wayne/internal/platform/errors"
	"wayne/internal/ui/components"
	"wayne/internal/ui/theme"
)

// sessionPort is the part of the session controller the board drives.
type sessionPort interface {
	Generate(ctx context.Context, input sessiondto.GenerateInput) (sessiondto.StateOutput, error)
	AbandonGeneration() sessiondto.StateOutput
	SelectForDebrief(missionID string) sessiondto.StateOutput
	CancelDebrief() sessiondto.StateOutput
	ConfirmDebrief(ctx context.Context, multiplier profiledomain.Multiplier) (sessiondto.DebriefOutput, error)
	SortBy(criterion missiondomain.Criterion) sessiondto.StateOutput
	State() sessiondto.StateOutput
}

// ─── async messages ───────────────────────────────────────────────────────────

type generatedMsg struct {
	state sessiondto.StateOutput
	err   error
}

type debriefedMsg struct {
	out sessiondto.DebriefOutput
	err error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Generate key.Binding
	Debrief  key.Binding
	SortTime key.Binding
	SortXP   key.Binding
	SortDiff key.Binding
	Abandon  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Generate: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "new objectives")),
		Debrief:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "debrief")),
		SortTime: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "sort by time")),
		SortXP:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "sort by xp")),
		SortDiff: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "sort by difficulty")),
		Abandon:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "abandon generation")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Generate, k.Debrief, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Debrief},
		{k.SortTime, k.SortXP, k.SortDiff},
		{k.Generate, k.Abandon},
		{k.Help, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. The session controller owns all state;
// the model keeps the last snapshot plus cursor and overlay state.
type Model struct {
	ctx     context.Context
	session sessionPort

	state      sessiondto.StateOutput
	cursor     int
	generating bool

	keys     keyMap
	help     help.Model
	showHelp bool
	prompt   components.Prompt
	dialog   components.DebriefDialog
	briefing components.Briefing
	spinner  spinner.Model
	status   string
	width    int
	height   int
}

func NewModel(ctx context.Context, session sessionPort) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Hot
	return Model{
		ctx:      ctx,
		session:  session,
		state:    session.State(),
		keys:     defaultKeys(),
		help:     help.New(),
		prompt:   components.NewPrompt(),
		dialog:   components.NewDebriefDialog(),
		briefing: components.NewBriefing(60),
		spinner:  sp,
		status:   "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Overlays intercept all input while open.
	if m.prompt.Visible() {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}
	if m.dialog.Visible() {
		var cmd tea.Cmd
		m.dialog, cmd = m.dialog.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.prompt.SetWidth(min(m.width-4, 80))
		m.dialog.SetWidth(min(m.width-4, 56))
		m.briefing.SetWidth(max(m.width-38, 20))
		m.help.Width = m.width

	case spinner.TickMsg:
		if !m.generating {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case generatedMsg:
		switch {
		case errors.Is(msg.err, apperrors.ErrStaleGeneration):
			// The user abandoned this request; the snapshot we hold is newer.
			return m, nil
		case errors.Is(msg.err, apperrors.ErrGenerationInFlight):
			m.status = "a schedule is already being generated"
			return m, nil
		}
		m.generating = false
		m.setState(msg.state)
		if msg.err != nil {
			m.status = msg.state.ErrorMessage
			if m.status == "" {
				m.status = msg.err.Error()
			}
		} else {
			m.cursor = 0
			m.status = fmt.Sprintf("%d missions assigned", len(msg.state.Missions))
		}

	case debriefedMsg:
		if msg.err != nil {
			m.status = "debrief failed: " + msg.err.Error()
			m.setState(m.session.State())
			return m, nil
		}
		m.setState(msg.out.State)
		if !msg.out.Applied {
			m.status = "nothing to debrief"
			return m, nil
		}
		m.status = fmt.Sprintf("+%d XP  %s +%d", msg.out.Outcome.XPGained, msg.out.Outcome.Attribute, msg.out.Outcome.StatIncrease)
		if msg.out.Outcome.LeveledUp {
			m.status += fmt.Sprintf("  level up: %d, %s", msg.out.State.Profile.Level, msg.out.State.Rank)
		}

	case components.PromptSubmitMsg:
		m.generating = true
		m.status = "contacting the Batcomputer…"
		return m, tea.Batch(m.generateCmd(msg.Objectives), m.spinner.Tick)

	case components.PromptCancelMsg:
		m.status = "ready"

	case components.DebriefChoiceMsg:
		return m, m.confirmDebriefCmd(msg.Multiplier)

	case components.DebriefCancelMsg:
		m.setState(m.session.CancelDebrief())
		m.status = "debrief aborted"

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.Abandon):
		if m.generating {
			m.generating = false
			m.setState(m.session.AbandonGeneration())
			m.status = "generation abandoned"
		}
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.state.Missions)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.SortTime):
		m.sortBy(missiondomain.SortByTime)
	case key.Matches(msg, m.keys.SortXP):
		m.sortBy(missiondomain.SortByXP)
	case key.Matches(msg, m.keys.SortDiff):
		m.sortBy(missiondomain.SortByDifficulty)
	case key.Matches(msg, m.keys.Generate):
		if m.generating {
			m.status = "a schedule is already being generated"
			return m, nil
		}
		return m, m.prompt.Open()
	case key.Matches(msg, m.keys.Debrief):
		mission, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.setState(m.session.SelectForDebrief(mission.ID))
		if m.state.PendingDebrief != mission.ID {
			m.status = "mission already debriefed"
			return m, nil
		}
		m.dialog.Open(mission)
	}
	return m, nil
}

// sortBy keeps the cursor on the same mission across reorders.
func (m *Model) sortBy(criterion missiondomain.Criterion) {
	current, ok := m.selected()
	m.setState(m.session.SortBy(criterion))
	if ok {
		if idx := missiondomain.Find(m.state.Missions, current.ID); idx >= 0 {
			m.cursor = idx
		}
	}
}

func (m *Model) setState(state sessiondto.StateOutput) {
	m.state = state
	if m.cursor >= len(state.Missions) {
		m.cursor = max(len(state.Missions)-1, 0)
	}
}

func (m Model) selected() (missiondomain.Mission, bool) {
	if m.cursor < 0 || m.cursor >= len(m.state.Missions) {
		return missiondomain.Mission{}, false
	}
	return m.state.Missions[m.cursor], true
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	header := m.renderHeader()
	statusBar := m.renderStatusBar()
	contentH := max(m.height-lipgloss.Height(header)-lipgloss.Height(statusBar), 1)

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).Render(m.help.View(m.keys))
	case m.prompt.Visible():
		content = lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center, m.prompt.View())
	case m.dialog.Visible():
		content = lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center, m.dialog.View())
	default:
		content = lipgloss.JoinHorizontal(lipgloss.Top, m.renderProfile(), m.renderMissions())
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

func (m Model) renderHeader() string {
	bar := theme.Title.Render("WAYNE PLANNER") + theme.Muted.Render("  tactical schedule")
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderProfile() string {
	p := m.state.Profile
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(p.Name) + "\n")
	sb.WriteString(fmt.Sprintf("Level %d  %s\n", p.Level, theme.Hot.Render(m.state.Rank)))
	sb.WriteString(fmt.Sprintf("XP %d / %d\n", p.CurrentXP, p.XPToNextLevel))
	sb.WriteString(xpBar(p.CurrentXP, p.XPToNextLevel, 20) + "\n\n")
	sb.WriteString(fmt.Sprintf("%-10s %3d\n", "Intellect", p.Stats.Intellect))
	sb.WriteString(fmt.Sprintf("%-10s %3d\n", "Strength", p.Stats.Strength))
	sb.WriteString(fmt.Sprintf("%-10s %3d\n", "Tech", p.Stats.Tech))
	sb.WriteString(fmt.Sprintf("%-10s %3d\n", "Willpower", p.Stats.Willpower))
	sb.WriteString(fmt.Sprintf("\nStreak %d", p.Streak))
	return theme.Pane.Width(28).Render(sb.String())
}

func (m Model) renderMissions() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Missions") + "  " + theme.Muted.Render(sortLabel(m.state.Sort)) + "\n\n")
	if m.generating {
		sb.WriteString(m.spinner.View() + " decomposing objectives…\n")
	} else if len(m.state.Missions) == 0 {
		sb.WriteString(theme.Muted.Render("no missions. press g to brief the Batcomputer") + "\n")
	}
	for i, mission := range m.state.Missions {
		line := fmt.Sprintf("%s  %-9s %-9s %3dxp  %s", mission.StartTime, mission.Category, mission.Difficulty, mission.XPReward, mission.Title)
		switch {
		case i == m.cursor && !m.generating:
			line = theme.Selected.Render(line)
		case mission.Completed:
			line = theme.Done.Render(line)
		}
		sb.WriteString(line + "\n")
	}
	if mission, ok := m.selected(); ok && !m.generating {
		sb.WriteString("\n" + m.briefing.View(mission) + "\n")
	}
	width := max(m.width-32, 40)
	return theme.PaneActive.Width(width).Render(sb.String())
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.state.Status == sessiondomain.StatusError {
		left = theme.Alert.Render(left)
	}
	right := theme.Muted.Render("g:objectives  enter:debrief  t/x/d:sort  ?:help  q:quit")
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

func sortLabel(s missiondomain.SortState) string {
	arrow := "↑"
	if s.Direction == missiondomain.Descending {
		arrow = "↓"
	}
	return fmt.Sprintf("by %s %s", s.Criterion, arrow)
}

func xpBar(current, total, width int) string {
	if total <= 0 {
		return ""
	}
	filled := min(current*width/total, width)
	return theme.Hot.Render(strings.Repeat("█", filled)) + theme.Muted.Render(strings.Repeat("░", width-filled))
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) generateCmd(objectives string) tea.Cmd {
	return func() tea.Msg {
		state, err := m.session.Generate(m.ctx, sessiondto.GenerateInput{Objectives: objectives})
		return generatedMsg{state: state, err: err}
	}
}

func (m Model) confirmDebriefCmd(multiplier profiledomain.Multiplier) tea.Cmd {
	return func() tea.Msg {
		out, err := m.session.ConfirmDebrief(m.ctx, multiplier)
		return debriefedMsg{out: out, err: err}
	}
}
