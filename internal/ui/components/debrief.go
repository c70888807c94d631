package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	missiondomain "wayne/internal/modules/mission/domain"
	profiledomain "wayne/internal/modules/profile/domain"
	"wayne/internal/ui/theme"
)

// DebriefChoiceMsg is emitted when the user rates the pending mission.
type DebriefChoiceMsg struct{ Multiplier profiledomain.Multiplier }

// DebriefCancelMsg is emitted when the user closes the dialog without rating.
type DebriefCancelMsg struct{}

// DebriefDialog asks how a mission went.
type DebriefDialog struct {
	mission missiondomain.Mission
	visible bool
	width   int
}

func NewDebriefDialog() DebriefDialog {
	return DebriefDialog{}
}

func (d DebriefDialog) Visible() bool { return d.visible }

func (d *DebriefDialog) Open(mission missiondomain.Mission) {
	d.mission = mission
	d.visible = true
}

func (d *DebriefDialog) Close() {
	d.visible = false
}

func (d *DebriefDialog) SetWidth(w int) { d.width = w }

func (d DebriefDialog) Update(msg tea.Msg) (DebriefDialog, tea.Cmd) {
	if !d.visible {
		return d, nil
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}
	var choice profiledomain.Multiplier
	switch key.String() {
	case "1":
		choice = profiledomain.Exceptional
	case "2":
		choice = profiledomain.OnTarget
	case "3":
		choice = profiledomain.Compromised
	case "esc":
		d.visible = false
		return d, func() tea.Msg { return DebriefCancelMsg{} }
	default:
		return d, nil
	}
	d.visible = false
	return d, func() tea.Msg { return DebriefChoiceMsg{Multiplier: choice} }
}

func (d DebriefDialog) View() string {
	if !d.visible {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Mission debrief") + "\n")
	sb.WriteString(d.mission.Title + "\n")
	sb.WriteString(theme.Muted.Render(fmt.Sprintf("%s · %s · %d XP", d.mission.Category, d.mission.Difficulty, d.mission.XPReward)) + "\n\n")
	for i, m := range profiledomain.Multipliers {
		gained := int(float64(d.mission.XPReward) * float64(m))
		sb.WriteString(fmt.Sprintf("%s %-12s %s\n", theme.Hot.Render(fmt.Sprintf("[%d]", i+1)), m.Label(), theme.Muted.Render(fmt.Sprintf("+%d XP", gained))))
	}
	sb.WriteString("\n" + theme.Muted.Render("esc: abort debrief"))

	w := d.width
	if w < 20 {
		w = 48
	}
	return theme.Overlay.Width(w - 2).Render(sb.String())
}
