package domain

import (
	"fmt"
	"strings"
	"time"
)

type Category string

const (
	CategoryIntellect Category = "INTELLECT"
	CategoryPhysical  Category = "PHYSICAL"
	CategoryGadgets   Category = "GADGETS"
	CategoryRestore   Category = "RESTORE"
)

type Difficulty string

const (
	DifficultyRookie    Difficulty = "ROOKIE"
	DifficultyVigilante Difficulty = "VIGILANTE"
	DifficultyKnight    Difficulty = "KNIGHT"
)

// Categories lists every category in display order.
var Categories = []Category{CategoryIntellect, CategoryPhysical, CategoryGadgets, CategoryRestore}

// Difficulties lists every difficulty from easiest to hardest.
var Difficulties = []Difficulty{DifficultyRookie, DifficultyVigilante, DifficultyKnight}

const startTimeLayout = "15:04"

func (c Category) Validate() error {
	switch c {
	case CategoryIntellect, CategoryPhysical, CategoryGadgets, CategoryRestore:
		return nil
	default:
		return fmt.Errorf("unsupported mission category %q", string(c))
	}
}

func (d Difficulty) Validate() error {
	if d.Rank() == 0 {
		return fmt.Errorf("unsupported mission difficulty %q", string(d))
	}
	return nil
}

// Rank orders difficulties for sorting. Unknown values rank 0.
func (d Difficulty) Rank() int {
	switch d {
	case DifficultyRookie:
		return 1
	case DifficultyVigilante:
		return 2
	case DifficultyKnight:
		return 3
	default:
		return 0
	}
}

// Draft is a mission as proposed by the planner, before it gets an identity.
type Draft struct {
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	StartTime       string     `json:"startTime"`
	DurationMinutes int        `json:"durationMinutes"`
	Category        Category   `json:"type"`
	XPReward        int        `json:"xpReward"`
	Difficulty      Difficulty `json:"difficulty"`
}

type Mission struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	StartTime       string     `json:"startTime"`
	DurationMinutes int        `json:"durationMinutes"`
	Category        Category   `json:"type"`
	XPReward        int        `json:"xpReward"`
	Completed       bool       `json:"isCompleted"`
	Difficulty      Difficulty `json:"difficulty"`
}

// Canonical returns the draft with trimmed text and a zero-padded start time.
func (d Draft) Canonical() (Draft, error) {
	d.Title = strings.TrimSpace(d.Title)
	d.Description = strings.TrimSpace(d.Description)
	d.Category = Category(strings.ToUpper(strings.TrimSpace(string(d.Category))))
	d.Difficulty = Difficulty(strings.ToUpper(strings.TrimSpace(string(d.Difficulty))))
	start, err := CanonicalStartTime(d.StartTime)
	if err != nil {
		return Draft{}, err
	}
	d.StartTime = start
	if err := d.Validate(); err != nil {
		return Draft{}, err
	}
	return d, nil
}

func (d Draft) Validate() error {
	if d.Title == "" {
		return fmt.Errorf("title is required")
	}
	if _, err := time.Parse(startTimeLayout, d.StartTime); err != nil || len(d.StartTime) != len(startTimeLayout) {
		return fmt.Errorf("start time %q must be HH:MM", d.StartTime)
	}
	if d.DurationMinutes <= 0 {
		return fmt.Errorf("duration must be positive, got %d", d.DurationMinutes)
	}
	if d.XPReward <= 0 {
		return fmt.Errorf("xp reward must be positive, got %d", d.XPReward)
	}
	if err := d.Category.Validate(); err != nil {
		return err
	}
	return d.Difficulty.Validate()
}

// Mission attaches an identity to the draft. The mission starts incomplete.
func (d Draft) Mission(id string) Mission {
	return Mission{
		ID:              id,
		Title:           d.Title,
		Description:     d.Description,
		StartTime:       d.StartTime,
		DurationMinutes: d.DurationMinutes,
		Category:        d.Category,
		XPReward:        d.XPReward,
		Completed:       false,
		Difficulty:      d.Difficulty,
	}
}

// CanonicalStartTime accepts H:MM or HH:MM in 24-hour form and returns HH:MM.
func CanonicalStartTime(value string) (string, error) {
	parsed, err := time.Parse(startTimeLayout, strings.TrimSpace(value))
	if err != nil {
		return "", fmt.Errorf("start time %q must be HH:MM", value)
	}
	return parsed.Format(startTimeLayout), nil
}

// Find returns the index of the mission with id, or -1.
func Find(missions []Mission, id string) int {
	for i, m := range missions {
		if m.ID == id {
			return i
		}
	}
	return -1
}
