package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"wayne/internal/ui/theme"
)

// PromptSubmitMsg carries the objectives typed by the user.
type PromptSubmitMsg struct{ Objectives string }

// PromptCancelMsg is emitted when the user presses esc.
type PromptCancelMsg struct{}

var promptHints = []string{
	"Study for the algebra exam, gym after lunch",
	"Finish the coding assignment, sleep by 23:00",
}

// Prompt is the objectives overlay backed by bubbles/textinput.
type Prompt struct {
	input   textinput.Model
	visible bool
	width   int
}

func NewPrompt() Prompt {
	ti := textinput.New()
	ti.Placeholder = "describe today's objectives…"
	ti.CharLimit = 512
	return Prompt{input: ti}
}

func (p Prompt) Visible() bool { return p.visible }

// Open shows the prompt, clears the input, and returns the focus command.
func (p *Prompt) Open() tea.Cmd {
	p.visible = true
	p.input.SetValue("")
	return p.input.Focus()
}

func (p *Prompt) SetWidth(w int) {
	p.width = w
	p.input.Width = max(w-8, 10)
}

func (p Prompt) Update(msg tea.Msg) (Prompt, tea.Cmd) {
	if !p.visible {
		return p, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			p.visible = false
			p.input.Blur()
			return p, func() tea.Msg { return PromptCancelMsg{} }
		case "enter":
			val := strings.TrimSpace(p.input.Value())
			if val == "" {
				return p, nil
			}
			p.visible = false
			p.input.Blur()
			return p, func() tea.Msg { return PromptSubmitMsg{Objectives: val} }
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p Prompt) View() string {
	if !p.visible {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Batcomputer: new objectives") + "\n")
	sb.WriteString("> " + p.input.View() + "\n\n")
	for _, h := range promptHints {
		sb.WriteString(theme.Muted.Render("  e.g. "+h) + "\n")
	}
	sb.WriteString(theme.Muted.Render("enter: generate  esc: cancel"))

	w := p.width
	if w < 20 {
		w = 64
	}
	return theme.Overlay.Width(w - 2).Render(sb.String())
}
