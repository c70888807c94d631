package theme

import "github.com/charmbracelet/lipgloss"

var (
	Base     = lipgloss.Color("#0b0d12")
	Mantle   = lipgloss.Color("#14171f")
	Surface0 = lipgloss.Color("#232734")
	Surface1 = lipgloss.Color("#3a3f50")
	Text     = lipgloss.Color("#d8dbe4")
	Subtext0 = lipgloss.Color("#8b90a0")
	Signal   = lipgloss.Color("#f5c518")
	Steel    = lipgloss.Color("#7aa2c8")
	Green    = lipgloss.Color("#8fcf8f")
	Red      = lipgloss.Color("#e06c75")

	App = lipgloss.NewStyle().
		Background(Base).
		Foreground(Text).
		Padding(1, 2)

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Foreground(Text).
		Padding(0, 1)

	PaneActive = Pane.BorderForeground(Signal)

	Overlay = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Signal).
		Background(Mantle).
		Foreground(Text).
		Padding(0, 1)

	Title    = lipgloss.NewStyle().Foreground(Signal).Bold(true)
	Muted    = lipgloss.NewStyle().Foreground(Subtext0)
	Hot      = lipgloss.NewStyle().Foreground(Signal).Bold(true)
	Done     = lipgloss.NewStyle().Foreground(Green).Strikethrough(true)
	Selected = lipgloss.NewStyle().Foreground(Base).Background(Steel)
	Alert    = lipgloss.NewStyle().Foreground(Red).Bold(true)
)
