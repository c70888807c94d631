package domain_test

import (
	"testing"

	"wayne/internal/modules/mission/domain"
)

func startTimes(missions []domain.Mission) []string {
	out := make([]string, len(missions))
	for i, m := range missions {
		out[i] = m.StartTime
	}
	return out
}

func ids(missions []domain.Mission) []string {
	out := make([]string, len(missions))
	for i, m := range missions {
		out[i] = m.ID
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSortByTimeAndToggle(t *testing.T) {
	t.Parallel()
	missions := []domain.Mission{
		{ID: "a", StartTime: "16:00", XPReward: 40, Difficulty: domain.DifficultyVigilante},
		{ID: "b", StartTime: "09:00", XPReward: 50, Difficulty: domain.DifficultyRookie},
	}
	state := domain.DefaultSort()
	if got := startTimes(state.Apply(missions)); !equal(got, []string{"09:00", "16:00"}) {
		t.Fatalf("expected ascending time order, got %v", got)
	}
	state = state.Select(domain.SortByTime)
	if state.Direction != domain.Descending {
		t.Fatalf("selecting the active criterion should flip direction")
	}
	if got := startTimes(state.Apply(missions)); !equal(got, []string{"16:00", "09:00"}) {
		t.Fatalf("expected descending time order, got %v", got)
	}
	state = state.Select(domain.SortByXP)
	if state != (domain.SortState{Criterion: domain.SortByXP, Direction: domain.Ascending}) {
		t.Fatalf("new criterion should reset to ascending, got %+v", state)
	}
	if got := ids(missions); !equal(got, []string{"a", "b"}) {
		t.Fatalf("input must not be reordered, got %v", got)
	}
}

func TestSortByXPAndDifficultyIsStable(t *testing.T) {
	t.Parallel()
	missions := []domain.Mission{
		{ID: "k1", XPReward: 80, Difficulty: domain.DifficultyKnight},
		{ID: "r1", XPReward: 20, Difficulty: domain.DifficultyRookie},
		{ID: "k2", XPReward: 20, Difficulty: domain.DifficultyKnight},
		{ID: "v1", XPReward: 50, Difficulty: domain.DifficultyVigilante},
	}
	if got := ids(domain.SortMissions(missions, domain.SortByXP, domain.Ascending)); !equal(got, []string{"r1", "k2", "v1", "k1"}) {
		t.Fatalf("unexpected xp order %v", got)
	}
	if got := ids(domain.SortMissions(missions, domain.SortByDifficulty, domain.Ascending)); !equal(got, []string{"r1", "v1", "k1", "k2"}) {
		t.Fatalf("unexpected difficulty order %v", got)
	}
	if got := ids(domain.SortMissions(missions, domain.SortByDifficulty, domain.Descending)); !equal(got, []string{"k1", "k2", "v1", "r1"}) {
		t.Fatalf("descending must keep ties in input order, got %v", got)
	}
}

func TestSortMissionsEmptyAndParse(t *testing.T) {
	t.Parallel()
	if got := domain.SortMissions(nil, domain.SortByTime, domain.Ascending); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
	if c, err := domain.ParseCriterion(" XP "); err != nil || c != domain.SortByXP {
		t.Fatalf("expected xp criterion, got %q %v", c, err)
	}
	if _, err := domain.ParseCriterion("title"); err == nil {
		t.Fatalf("unknown criterion should fail")
	}
}

func TestParseDirection(t *testing.T) {
	t.Parallel()
	for input, want := range map[string]domain.Direction{"": domain.Ascending, "ASC": domain.Ascending, " desc ": domain.Descending} {
		got, err := domain.ParseDirection(input)
		if err != nil || got != want {
			t.Fatalf("parse %q: got %q, %v", input, got, err)
		}
	}
	if _, err := domain.ParseDirection("sideways"); err == nil {
		t.Fatalf("expected error for unknown direction")
	}
}
