package out

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/kaptinlin/jsonrepair"

	"wayne/internal/modules/mission/domain"
)

type wireDraft struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	StartTime       string  `json:"startTime"`
	DurationMinutes float64 `json:"durationMinutes"`
	Type            string  `json:"type"`
	XPReward        float64 `json:"xpReward"`
	Difficulty      string  `json:"difficulty"`
}

type wireEnvelope struct {
	Missions []wireDraft `json:"missions"`
}

// DecodeDrafts parses a planner answer. It accepts a bare array or an object
// with a "missions" array, optionally inside a markdown code fence, and falls
// back to JSON repair when the answer is malformed.
func DecodeDrafts(text string) ([]domain.Draft, error) {
	payload := stripFence(text)
	if payload == "" {
		return nil, fmt.Errorf("empty planner response")
	}
	wire, err := decodeWire(payload)
	if err != nil {
		repaired, repairErr := jsonrepair.JSONRepair(payload)
		if repairErr != nil {
			return nil, fmt.Errorf("decode planner response: %w", err)
		}
		wire, err = decodeWire(repaired)
		if err != nil {
			return nil, fmt.Errorf("decode repaired planner response: %w", err)
		}
	}
	out := make([]domain.Draft, 0, len(wire))
	for _, w := range wire {
		out = append(out, domain.Draft{
			Title:           w.Title,
			Description:     w.Description,
			StartTime:       w.StartTime,
			DurationMinutes: int(math.Round(w.DurationMinutes)),
			Category:        domain.Category(w.Type),
			XPReward:        int(math.Round(w.XPReward)),
			Difficulty:      domain.Difficulty(w.Difficulty),
		})
	}
	return out, nil
}

func decodeWire(payload string) ([]wireDraft, error) {
	var list []wireDraft
	if strings.HasPrefix(payload, "[") {
		if err := json.Unmarshal([]byte(payload), &list); err != nil {
			return nil, err
		}
		return list, nil
	}
	var env wireEnvelope
	if err := json.Unmarshal([]byte(payload), &env); err != nil {
		return nil, err
	}
	if env.Missions == nil {
		return nil, fmt.Errorf("response has no missions array")
	}
	return env.Missions, nil
}

func stripFence(text string) string {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	if nl := strings.Index(s, "\n"); nl >= 0 {
		s = s[nl+1:]
	} else {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
