package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	missiondomain "wayne/internal/modules/mission/domain"
)

func TestBriefingMarkdown(t *testing.T) {
	t.Parallel()
	md := briefingMarkdown(missiondomain.Mission{
		Title:           "Gadget Calibration",
		Description:     "Refactor the grapple firmware.",
		StartTime:       "14:00",
		DurationMinutes: 90,
		Category:        missiondomain.CategoryGadgets,
		XPReward:        80,
		Difficulty:      missiondomain.DifficultyKnight,
		Completed:       true,
	})
	for _, want := range []string{"### Gadget Calibration", "> Refactor the grapple firmware.", "`14:00` · 90 min · GADGETS · KNIGHT · +80 XP", "*Debriefed.*"} {
		if !strings.Contains(md, want) {
			t.Fatalf("briefing missing %q:\n%s", want, md)
		}
	}
}

func TestBriefingViewRendersTitle(t *testing.T) {
	t.Parallel()
	out := newBriefing(40, "notty").View(nightPatrol())
	if !strings.Contains(out, "Night Patrol") {
		t.Fatalf("rendered briefing lost the title:\n%s", out)
	}
}

func TestBriefingDarkStyleKeepsTextUnderEscapes(t *testing.T) {
	t.Parallel()
	out := NewBriefing(100).View(nightPatrol())
	plain := ansi.Strip(out)
	for _, want := range []string{"Night Patrol", "21:00", "VIGILANTE"} {
		if !strings.Contains(plain, want) {
			t.Fatalf("dark briefing missing %q:\n%s", want, plain)
		}
	}
}

func nightPatrol() missiondomain.Mission {
	return missiondomain.Mission{Title: "Night Patrol", StartTime: "21:00", DurationMinutes: 60, Category: missiondomain.CategoryPhysical, XPReward: 50, Difficulty: missiondomain.DifficultyVigilante}
}
