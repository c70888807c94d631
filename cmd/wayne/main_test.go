package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func run(t *testing.T, data string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--data", data}, args...))
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("wayne %s: %v\n%s", strings.Join(args, " "), err, out.String())
	}
	return out.String()
}

func TestPlanDebriefHistoryWithFixturePlanner(t *testing.T) {
	t.Setenv("WAYNE_PLANNER_PROVIDER", "fixture")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "")
	color.NoColor = true
	data := t.TempDir()

	planned := run(t, data, "plan", "study", "algebra", "then", "gym")
	lines := strings.Split(strings.TrimSpace(planned), "\n")
	if len(lines) != 2 || !strings.Contains(lines[0], "09:00") || !strings.Contains(lines[1], "16:00") {
		t.Fatalf("unexpected plan output:\n%s", planned)
	}
	missionID := strings.Fields(lines[0])[0]

	byXP := run(t, data, "missions", "--sort", "xp", "--desc")
	if !strings.HasPrefix(byXP, missionID) {
		t.Fatalf("expected the 50xp mission first:\n%s", byXP)
	}

	debriefed := run(t, data, "debrief", "--id", missionID, "--outcome", "exceptional")
	if !strings.Contains(debriefed, "xp +62") || !strings.Contains(debriefed, "intellect +3") {
		t.Fatalf("unexpected debrief output:\n%s", debriefed)
	}
	again := run(t, data, "debrief", "--id", missionID, "--outcome", "exceptional")
	if !strings.Contains(again, "nothing to debrief") {
		t.Fatalf("second debrief must be a no-op:\n%s", again)
	}

	profile := run(t, data, "profile")
	if !strings.Contains(profile, "xp 62/500") || !strings.Contains(profile, "streak 1") || !strings.Contains(profile, "Gotham Citizen") {
		t.Fatalf("unexpected profile output:\n%s", profile)
	}
	renamed := run(t, data, "profile", "rename", "--name", "Robin")
	if !strings.HasPrefix(renamed, "Robin") {
		t.Fatalf("unexpected rename output:\n%s", renamed)
	}

	history := run(t, data, "history")
	if !strings.Contains(history, "Analyze Algebra Patterns") || !strings.Contains(history, "Exceptional") {
		t.Fatalf("unexpected history:\n%s", history)
	}
	if err := os.Remove(filepath.Join(data, ".wayne", "wayne.db")); err != nil {
		t.Fatalf("remove index: %v", err)
	}
	if got := run(t, data, "reindex"); !strings.Contains(got, "reindexed 1 debriefs") {
		t.Fatalf("unexpected reindex output: %s", got)
	}
}
