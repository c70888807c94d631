package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	missiondomain "wayne/internal/modules/mission/domain"
)

// Briefing renders the selected mission as markdown through glamour.
type Briefing struct {
	renderer *glamour.TermRenderer
	style    string
	width    int
}

func NewBriefing(width int) Briefing {
	return newBriefing(width, "dark")
}

func newBriefing(width int, style string) Briefing {
	b := Briefing{style: style}
	b.SetWidth(width)
	return b
}

// SetWidth rebuilds the renderer when the wrap width changes.
func (b *Briefing) SetWidth(width int) {
	width = max(width, 20)
	if b.renderer != nil && width == b.width {
		return
	}
	b.width = width
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(b.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		b.renderer = nil
		return
	}
	b.renderer = renderer
}

func (b Briefing) View(mission missiondomain.Mission) string {
	md := briefingMarkdown(mission)
	if b.renderer == nil {
		return md
	}
	out, err := b.renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

func briefingMarkdown(mission missiondomain.Mission) string {
	var sb strings.Builder
	sb.WriteString("### " + mission.Title + "\n\n")
	if desc := strings.TrimSpace(mission.Description); desc != "" {
		sb.WriteString("> " + desc + "\n\n")
	}
	sb.WriteString(fmt.Sprintf("`%s` · %d min · %s · %s · +%d XP\n",
		mission.StartTime, mission.DurationMinutes, mission.Category, mission.Difficulty, mission.XPReward))
	if mission.Completed {
		sb.WriteString("\n*Debriefed.*\n")
	}
	return sb.String()
}
