package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	missiondomain "wayne/internal/modules/mission/domain"
	apperrors "wayne/internal/platform/errors"
)

// Multiplier scales the XP of a debriefed mission.
type Multiplier float64

const (
	Compromised Multiplier = 0.5
	OnTarget    Multiplier = 1.0
	Exceptional Multiplier = 1.25
)

// Multipliers lists the accepted outcomes from best to worst.
var Multipliers = []Multiplier{Exceptional, OnTarget, Compromised}

func (m Multiplier) Validate() error {
	switch m {
	case Compromised, OnTarget, Exceptional:
		return nil
	default:
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidMultiplier, float64(m))
	}
}

func (m Multiplier) Label() string {
	switch m {
	case Exceptional:
		return "Exceptional"
	case OnTarget:
		return "On Target"
	case Compromised:
		return "Compromised"
	default:
		return strconv.FormatFloat(float64(m), 'f', -1, 64)
	}
}

// ParseMultiplier accepts an outcome name or one of the numeric multipliers.
func ParseMultiplier(value string) (Multiplier, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	switch normalized {
	case "exceptional":
		return Exceptional, nil
	case "on-target", "on_target", "ontarget", "accomplished":
		return OnTarget, nil
	case "compromised":
		return Compromised, nil
	}
	f, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", apperrors.ErrInvalidMultiplier, value)
	}
	m := Multiplier(f)
	if err := m.Validate(); err != nil {
		return 0, err
	}
	return m, nil
}

// Outcome summarizes what one debrief changed.
type Outcome struct {
	XPGained       int
	LeveledUp      bool
	Attribute      Attribute
	StatIncrease   int
	StreakAdvanced bool
}

// Progression applies debriefs to profiles. With Rollover set, a level up
// spends the old threshold from the current XP; otherwise XP keeps accumulating.
type Progression struct {
	Rollover bool
}

// ApplyDebrief applies the default progression policy.
func ApplyDebrief(profile Profile, mission missiondomain.Mission, multiplier Multiplier) (Profile, Outcome, error) {
	return Progression{}.Apply(profile, mission, multiplier)
}

// Apply returns the progressed profile. The input profile is not modified.
func (p Progression) Apply(profile Profile, mission missiondomain.Mission, multiplier Multiplier) (Profile, Outcome, error) {
	if err := multiplier.Validate(); err != nil {
		return profile, Outcome{}, err
	}
	attribute, err := AttributeFor(mission.Category)
	if err != nil {
		return profile, Outcome{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}

	next := profile
	gained := int(math.Floor(float64(mission.XPReward) * float64(multiplier)))
	next.CurrentXP += gained

	leveled := false
	if next.CurrentXP >= profile.XPToNextLevel {
		leveled = true
		next.Level++
		next.XPToNextLevel = profile.XPToNextLevel * 3 / 2
		if p.Rollover {
			next.CurrentXP -= profile.XPToNextLevel
		}
	}

	increase := statIncrease(multiplier)
	next.Stats = profile.Stats.Add(attribute, increase)

	advanced := false
	if multiplier >= OnTarget && profile.Streak == 0 {
		next.Streak = 1
		advanced = true
	}

	return next, Outcome{
		XPGained:       gained,
		LeveledUp:      leveled,
		Attribute:      attribute,
		StatIncrease:   increase,
		StreakAdvanced: advanced,
	}, nil
}

func statIncrease(multiplier Multiplier) int {
	switch {
	case multiplier >= Exceptional:
		return 3
	case multiplier <= Compromised:
		return 1
	default:
		return 2
	}
}
