package domain

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

type Criterion string

const (
	SortByTime       Criterion = "time"
	SortByXP         Criterion = "xp"
	SortByDifficulty Criterion = "difficulty"
)

type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

func ParseCriterion(value string) (Criterion, error) {
	switch c := Criterion(strings.ToLower(strings.TrimSpace(value))); c {
	case SortByTime, SortByXP, SortByDifficulty:
		return c, nil
	default:
		return "", fmt.Errorf("unsupported sort criterion %q", value)
	}
}

// ParseDirection accepts asc or desc. Blank means ascending.
func ParseDirection(value string) (Direction, error) {
	switch d := Direction(strings.ToLower(strings.TrimSpace(value))); d {
	case "", Ascending:
		return Ascending, nil
	case Descending:
		return Descending, nil
	default:
		return "", fmt.Errorf("unsupported sort direction %q", value)
	}
}

// SortState is the user's current ordering of the mission list.
type SortState struct {
	Criterion Criterion
	Direction Direction
}

func DefaultSort() SortState {
	return SortState{Criterion: SortByTime, Direction: Ascending}
}

// Select applies a click on criterion: the active criterion flips direction,
// any other criterion becomes active in ascending order.
func (s SortState) Select(criterion Criterion) SortState {
	if s.Criterion == criterion {
		if s.Direction == Ascending {
			return SortState{Criterion: criterion, Direction: Descending}
		}
		return SortState{Criterion: criterion, Direction: Ascending}
	}
	return SortState{Criterion: criterion, Direction: Ascending}
}

// SortMissions returns a stably sorted copy of missions. The input is not modified.
func SortMissions(missions []Mission, criterion Criterion, direction Direction) []Mission {
	out := slices.Clone(missions)
	if out == nil {
		out = []Mission{}
	}
	compare := comparator(criterion)
	slices.SortStableFunc(out, func(a, b Mission) int {
		res := compare(a, b)
		if direction == Descending {
			return -res
		}
		return res
	})
	return out
}

func (s SortState) Apply(missions []Mission) []Mission {
	return SortMissions(missions, s.Criterion, s.Direction)
}

func comparator(criterion Criterion) func(a, b Mission) int {
	switch criterion {
	case SortByXP:
		return func(a, b Mission) int { return cmp.Compare(a.XPReward, b.XPReward) }
	case SortByDifficulty:
		return func(a, b Mission) int { return cmp.Compare(a.Difficulty.Rank(), b.Difficulty.Rank()) }
	case SortByTime:
		return func(a, b Mission) int { return strings.Compare(a.StartTime, b.StartTime) }
	default:
		return func(Mission, Mission) int { return 0 }
	}
}
