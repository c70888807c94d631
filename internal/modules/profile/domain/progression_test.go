package domain_test

import (
	"errors"
	"testing"

	missiondomain "wayne/internal/modules/mission/domain"
	"wayne/internal/modules/profile/domain"
	apperrors "wayne/internal/platform/errors"
)

func mission(category missiondomain.Category, reward int) missiondomain.Mission {
	return missiondomain.Mission{ID: "m-1", Title: "Patrol", StartTime: "09:00", DurationMinutes: 30, Category: category, XPReward: reward, Difficulty: missiondomain.DifficultyRookie}
}

func TestApplyDebriefXPGained(t *testing.T) {
	t.Parallel()
	cases := []struct {
		reward     int
		multiplier domain.Multiplier
		want       int
	}{
		{50, domain.Exceptional, 62},
		{50, domain.OnTarget, 50},
		{50, domain.Compromised, 25},
		{45, domain.Compromised, 22},
		{33, domain.Exceptional, 41},
	}
	for _, tc := range cases {
		next, outcome, err := domain.ApplyDebrief(domain.Default(""), mission(missiondomain.CategoryIntellect, tc.reward), tc.multiplier)
		if err != nil {
			t.Fatalf("apply: %v", err)
		}
		if outcome.XPGained != tc.want || next.CurrentXP != tc.want {
			t.Fatalf("reward %d x %v: expected %d, got outcome %d xp %d", tc.reward, tc.multiplier, tc.want, outcome.XPGained, next.CurrentXP)
		}
	}
}

func TestApplyDebriefStatIncreaseByMultiplier(t *testing.T) {
	t.Parallel()
	want := map[domain.Multiplier]int{domain.Exceptional: 3, domain.OnTarget: 2, domain.Compromised: 1}
	for multiplier, increase := range want {
		next, outcome, err := domain.ApplyDebrief(domain.Default(""), mission(missiondomain.CategoryGadgets, 40), multiplier)
		if err != nil {
			t.Fatalf("apply: %v", err)
		}
		if next.Stats.Tech != 10+increase || outcome.StatIncrease != increase {
			t.Fatalf("multiplier %v: expected tech %d, got %d", multiplier, 10+increase, next.Stats.Tech)
		}
		if next.Stats.Intellect != 10 || next.Stats.Strength != 10 || next.Stats.Willpower != 10 {
			t.Fatalf("only the mapped stat may change: %+v", next.Stats)
		}
	}
}

func TestApplyDebriefCategoryMapping(t *testing.T) {
	t.Parallel()
	cases := map[missiondomain.Category]domain.Attribute{
		missiondomain.CategoryIntellect: domain.AttributeIntellect,
		missiondomain.CategoryPhysical:  domain.AttributeStrength,
		missiondomain.CategoryGadgets:   domain.AttributeTech,
		missiondomain.CategoryRestore:   domain.AttributeWillpower,
	}
	for category, attribute := range cases {
		next, outcome, err := domain.ApplyDebrief(domain.Default(""), mission(category, 20), domain.OnTarget)
		if err != nil {
			t.Fatalf("apply: %v", err)
		}
		if outcome.Attribute != attribute || next.Stats.Get(attribute) != 12 {
			t.Fatalf("%s: expected %s raised to 12, got %+v", category, attribute, next.Stats)
		}
	}
}

func TestApplyDebriefLevelUp(t *testing.T) {
	t.Parallel()
	profile := domain.Default("")
	profile.CurrentXP = 470

	next, outcome, err := domain.ApplyDebrief(profile, mission(missiondomain.CategoryPhysical, 50), domain.OnTarget)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if !outcome.LeveledUp || next.Level != 2 || next.XPToNextLevel != 750 {
		t.Fatalf("expected level 2 with threshold 750, got %+v", next)
	}
	if next.CurrentXP != 520 {
		t.Fatalf("xp must accumulate without rollover, got %d", next.CurrentXP)
	}

	below := domain.Default("")
	below.CurrentXP = 400
	next, outcome, err = domain.ApplyDebrief(below, mission(missiondomain.CategoryPhysical, 50), domain.OnTarget)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if outcome.LeveledUp || next.Level != 1 || next.XPToNextLevel != 500 {
		t.Fatalf("expected no level up, got %+v", next)
	}
}

func TestApplyDebriefLevelsUpOncePerDebrief(t *testing.T) {
	t.Parallel()
	profile := domain.Default("")
	profile.CurrentXP = 2000
	next, _, err := domain.ApplyDebrief(profile, mission(missiondomain.CategoryRestore, 20), domain.Compromised)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if next.Level != 2 || next.XPToNextLevel != 750 {
		t.Fatalf("expected a single level up, got %+v", next)
	}
}

func TestProgressionRollover(t *testing.T) {
	t.Parallel()
	profile := domain.Default("")
	profile.CurrentXP = 470
	next, _, err := domain.Progression{Rollover: true}.Apply(profile, mission(missiondomain.CategoryPhysical, 50), domain.OnTarget)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if next.Level != 2 || next.CurrentXP != 20 || next.XPToNextLevel != 750 {
		t.Fatalf("expected rollover to spend the threshold, got %+v", next)
	}
}

func TestStreakAdvancesOnlyFromZero(t *testing.T) {
	t.Parallel()
	profile := domain.Default("")

	profile, outcome, err := domain.ApplyDebrief(profile, mission(missiondomain.CategoryIntellect, 20), domain.Compromised)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if profile.Streak != 0 || outcome.StreakAdvanced {
		t.Fatalf("compromised debrief must not advance streak, got %d", profile.Streak)
	}

	profile, outcome, err = domain.ApplyDebrief(profile, mission(missiondomain.CategoryIntellect, 20), domain.OnTarget)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if profile.Streak != 1 || !outcome.StreakAdvanced {
		t.Fatalf("expected streak 1, got %d", profile.Streak)
	}

	profile, outcome, err = domain.ApplyDebrief(profile, mission(missiondomain.CategoryIntellect, 20), domain.Exceptional)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if profile.Streak != 1 || outcome.StreakAdvanced {
		t.Fatalf("second qualifying debrief must leave streak at 1, got %d", profile.Streak)
	}
}

func TestApplyDebriefRejectsInvalidInput(t *testing.T) {
	t.Parallel()
	start := domain.Default("")
	next, _, err := domain.ApplyDebrief(start, mission(missiondomain.CategoryIntellect, 20), domain.Multiplier(2))
	if !errors.Is(err, apperrors.ErrInvalidMultiplier) {
		t.Fatalf("expected invalid multiplier, got %v", err)
	}
	if next != start {
		t.Fatalf("profile must be unchanged on error")
	}
	if _, _, err := domain.ApplyDebrief(start, mission("STEALTH", 20), domain.OnTarget); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input for unknown category, got %v", err)
	}
}

func TestParseMultiplier(t *testing.T) {
	t.Parallel()
	valid := map[string]domain.Multiplier{
		"exceptional": domain.Exceptional,
		" On-Target ": domain.OnTarget,
		"compromised": domain.Compromised,
		"1.25":        domain.Exceptional,
		"0.5":         domain.Compromised,
	}
	for input, want := range valid {
		got, err := domain.ParseMultiplier(input)
		if err != nil || got != want {
			t.Fatalf("parse %q: got %v, %v", input, got, err)
		}
	}
	for _, input := range []string{"", "0.75", "great"} {
		if _, err := domain.ParseMultiplier(input); !errors.Is(err, apperrors.ErrInvalidMultiplier) {
			t.Fatalf("parse %q: expected invalid multiplier, got %v", input, err)
		}
	}
}
