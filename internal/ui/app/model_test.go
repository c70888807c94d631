package app

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	missiondomain "wayne/internal/modules/mission/domain"
	profiledomain "wayne/internal/modules/profile/domain"
	sessiondomain "wayne/internal/modules/session/domain"
	sessiondto "wayne/internal/modules/session/dto"
	apperrors "wayne/internal/platform/errors"
	"wayne/internal/ui/components"
)

type fakeSession struct {
	state      sessiondto.StateOutput
	abandoned  int
	confirmed  []profiledomain.Multiplier
	generateFn func(string) (sessiondto.StateOutput, error)
}

func (f *fakeSession) Generate(_ context.Context, input sessiondto.GenerateInput) (sessiondto.StateOutput, error) {
	return f.generateFn(input.Objectives)
}

func (f *fakeSession) AbandonGeneration() sessiondto.StateOutput {
	f.abandoned++
	return f.state
}

func (f *fakeSession) SelectForDebrief(id string) sessiondto.StateOutput {
	if idx := missiondomain.Find(f.state.Missions, id); idx >= 0 && !f.state.Missions[idx].Completed {
		f.state.PendingDebrief = id
	}
	return f.state
}

func (f *fakeSession) CancelDebrief() sessiondto.StateOutput {
	f.state.PendingDebrief = ""
	return f.state
}

func (f *fakeSession) ConfirmDebrief(_ context.Context, multiplier profiledomain.Multiplier) (sessiondto.DebriefOutput, error) {
	f.confirmed = append(f.confirmed, multiplier)
	f.state.PendingDebrief = ""
	return sessiondto.DebriefOutput{State: f.state, Applied: true, Outcome: profiledomain.Outcome{XPGained: 62, Attribute: profiledomain.AttributeIntellect, StatIncrease: 3}}, nil
}

func (f *fakeSession) SortBy(criterion missiondomain.Criterion) sessiondto.StateOutput {
	f.state.Sort = f.state.Sort.Select(criterion)
	f.state.Missions = f.state.Sort.Apply(f.state.Missions)
	return f.state
}

func (f *fakeSession) State() sessiondto.StateOutput { return f.state }

func newFake() *fakeSession {
	return &fakeSession{state: sessiondto.StateOutput{
		Status:  sessiondomain.StatusIdle,
		Profile: profiledomain.Default(""),
		Rank:    profiledomain.Rank(1),
		Missions: []missiondomain.Mission{
			{ID: "a", Title: "Analyze Algebra Patterns", StartTime: "09:00", DurationMinutes: 60, Category: missiondomain.CategoryIntellect, XPReward: 50, Difficulty: missiondomain.DifficultyRookie},
			{ID: "b", Title: "Physical Conditioning", StartTime: "16:00", DurationMinutes: 30, Category: missiondomain.CategoryPhysical, XPReward: 40, Difficulty: missiondomain.DifficultyVigilante, Completed: true},
		},
		Sort: missiondomain.DefaultSort(),
	}}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return model, cmd
}

func TestSortKeysFollowSelection(t *testing.T) {
	t.Parallel()
	fake := newFake()
	m := NewModel(context.Background(), fake)

	m, _ = step(t, m, runes("t"))
	if fake.state.Sort.Direction != missiondomain.Descending {
		t.Fatalf("t on active criterion must toggle direction")
	}
	if m.state.Missions[0].ID != "b" || m.cursor != 1 {
		t.Fatalf("cursor must follow mission a, got cursor %d order %s", m.cursor, m.state.Missions[0].ID)
	}
	m, _ = step(t, m, runes("x"))
	if m.state.Sort.Criterion != missiondomain.SortByXP || m.state.Sort.Direction != missiondomain.Ascending {
		t.Fatalf("unexpected sort %+v", m.state.Sort)
	}
}

func TestDebriefDialogFlow(t *testing.T) {
	t.Parallel()
	fake := newFake()
	m := NewModel(context.Background(), fake)

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.dialog.Visible() || fake.state.PendingDebrief != "a" {
		t.Fatalf("enter must open the debrief dialog")
	}
	m, cmd := step(t, m, runes("1"))
	if cmd == nil {
		t.Fatalf("expected choice command")
	}
	choice, ok := cmd().(components.DebriefChoiceMsg)
	if !ok || choice.Multiplier != profiledomain.Exceptional {
		t.Fatalf("unexpected choice %+v", choice)
	}
	m, cmd = step(t, m, choice)
	m, _ = step(t, m, cmd())
	if len(fake.confirmed) != 1 || !strings.Contains(m.status, "+62 XP") {
		t.Fatalf("expected confirmed debrief, status %q", m.status)
	}

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.dialog.Visible() {
		t.Fatalf("completed mission must not open the dialog")
	}
}

func TestDebriefDialogCancel(t *testing.T) {
	t.Parallel()
	fake := newFake()
	m := NewModel(context.Background(), fake)
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = step(t, m, cmd())
	if m.dialog.Visible() || fake.state.PendingDebrief != "" || len(fake.confirmed) != 0 {
		t.Fatalf("esc must cancel without confirming")
	}
}

func TestGenerateAndAbandon(t *testing.T) {
	t.Parallel()
	fake := newFake()
	fake.generateFn = func(string) (sessiondto.StateOutput, error) {
		return sessiondto.StateOutput{}, apperrors.ErrStaleGeneration
	}
	m := NewModel(context.Background(), fake)

	m, _ = step(t, m, runes("g"))
	if !m.prompt.Visible() {
		t.Fatalf("g must open the objectives prompt")
	}
	m, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.prompt.Visible() || fake.abandoned != 0 {
		t.Fatalf("esc in the prompt must only close it")
	}
	m, _ = step(t, m, cmd())

	m, cmd = step(t, m, components.PromptSubmitMsg{Objectives: "gym"})
	if !m.generating || cmd == nil {
		t.Fatalf("submit must start generating")
	}
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.generating || fake.abandoned != 1 {
		t.Fatalf("esc must abandon the generation")
	}
	m, _ = step(t, m, generatedMsg{err: apperrors.ErrStaleGeneration})
	if len(m.state.Missions) != 2 {
		t.Fatalf("stale result must not replace the board")
	}
}

func TestGenerateFailureShowsMessage(t *testing.T) {
	t.Parallel()
	fake := newFake()
	m := NewModel(context.Background(), fake)
	failed := fake.state
	failed.Status = sessiondomain.StatusError
	failed.ErrorMessage = sessiondomain.ErrorMessage
	m.generating = true
	m, _ = step(t, m, generatedMsg{state: failed, err: apperrors.ErrServiceUnavailable})
	if m.generating || m.status != sessiondomain.ErrorMessage {
		t.Fatalf("expected error status, got %q", m.status)
	}
	if !strings.Contains(m.View(), "Network interference") {
		t.Fatalf("status bar must show the error")
	}
}
