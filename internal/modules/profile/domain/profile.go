package domain

import (
	"fmt"
	"strings"

	missiondomain "wayne/internal/modules/mission/domain"
)

const (
	DefaultName          = "Initiate"
	initialLevel         = 1
	initialXPToNextLevel = 500
	initialStat          = 10
)

type Stats struct {
	Intellect int `json:"intellect"`
	Strength  int `json:"strength"`
	Tech      int `json:"tech"`
	Willpower int `json:"willpower"`
}

type Profile struct {
	Name          string `json:"name"`
	Level         int    `json:"level"`
	CurrentXP     int    `json:"currentXp"`
	XPToNextLevel int    `json:"xpToNextLevel"`
	Stats         Stats  `json:"stats"`
	Streak        int    `json:"streak"`
}

// Default returns a fresh level 1 profile. A blank name falls back to DefaultName.
func Default(name string) Profile {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultName
	}
	return Profile{
		Name:          name,
		Level:         initialLevel,
		CurrentXP:     0,
		XPToNextLevel: initialXPToNextLevel,
		Stats: Stats{
			Intellect: initialStat,
			Strength:  initialStat,
			Tech:      initialStat,
			Willpower: initialStat,
		},
		Streak: 0,
	}
}

func (p Profile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("profile name is required")
	}
	if p.Level < 1 {
		return fmt.Errorf("profile level must be at least 1, got %d", p.Level)
	}
	if p.CurrentXP < 0 {
		return fmt.Errorf("profile xp must be non-negative, got %d", p.CurrentXP)
	}
	if p.XPToNextLevel <= 0 {
		return fmt.Errorf("xp threshold must be positive, got %d", p.XPToNextLevel)
	}
	if p.Streak < 0 {
		return fmt.Errorf("streak must be non-negative, got %d", p.Streak)
	}
	return nil
}

type Attribute string

const (
	AttributeIntellect Attribute = "intellect"
	AttributeStrength  Attribute = "strength"
	AttributeTech      Attribute = "tech"
	AttributeWillpower Attribute = "willpower"
)

// AttributeFor maps a mission category to the stat it trains.
func AttributeFor(category missiondomain.Category) (Attribute, error) {
	switch category {
	case missiondomain.CategoryIntellect:
		return AttributeIntellect, nil
	case missiondomain.CategoryPhysical:
		return AttributeStrength, nil
	case missiondomain.CategoryGadgets:
		return AttributeTech, nil
	case missiondomain.CategoryRestore:
		return AttributeWillpower, nil
	default:
		return "", fmt.Errorf("unsupported mission category %q", string(category))
	}
}

// Add returns a copy of s with attribute raised by n.
func (s Stats) Add(attribute Attribute, n int) Stats {
	switch attribute {
	case AttributeIntellect:
		s.Intellect += n
	case AttributeStrength:
		s.Strength += n
	case AttributeTech:
		s.Tech += n
	case AttributeWillpower:
		s.Willpower += n
	}
	return s
}

func (s Stats) Get(attribute Attribute) int {
	switch attribute {
	case AttributeIntellect:
		return s.Intellect
	case AttributeStrength:
		return s.Strength
	case AttributeTech:
		return s.Tech
	case AttributeWillpower:
		return s.Willpower
	}
	return 0
}

var ranks = []string{
	"Gotham Citizen",
	"GCPD Rookie",
	"Detective",
	"Vigilante",
	"Caped Crusader",
	"Dark Knight",
	"Legend",
}

// Rank is the cosmetic title for a level: one step every five levels.
func Rank(level int) string {
	idx := level / 5
	if idx < 0 {
		idx = 0
	}
	if idx >= len(ranks) {
		idx = len(ranks) - 1
	}
	return ranks[idx]
}
