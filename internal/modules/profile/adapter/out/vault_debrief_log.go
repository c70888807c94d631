package out

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	missiondomain "wayne/internal/modules/mission/domain"
	"wayne/internal/modules/profile/domain"
	profileout "wayne/internal/modules/profile/port/out"
	"wayne/internal/platform/markdown"
	"wayne/internal/platform/slug"
)

const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

type debriefNote struct {
	SchemaVersion int     `yaml:"schema_version"`
	ID            string  `yaml:"id"`
	MissionID     string  `yaml:"mission_id"`
	MissionTitle  string  `yaml:"mission_title"`
	Category      string  `yaml:"category"`
	Difficulty    string  `yaml:"difficulty"`
	Multiplier    float64 `yaml:"multiplier"`
	XPGained      int     `yaml:"xp_gained"`
	LevelBefore   int     `yaml:"level_before"`
	LevelAfter    int     `yaml:"level_after"`
	Attribute     string  `yaml:"attribute"`
	StatIncrease  int     `yaml:"stat_increase"`
	StreakAfter   int     `yaml:"streak_after"`
	RecordedAt    string  `yaml:"recorded_at"`
}

// VaultDebriefLog writes one markdown note per debrief under
// <data>/debriefs/YYYY/MM/DD.
type VaultDebriefLog struct {
	dataPath string
}

func NewVaultDebriefLog(dataPath string) profileout.DebriefLog {
	return &VaultDebriefLog{dataPath: dataPath}
}

func (s *VaultDebriefLog) root() string {
	return filepath.Join(s.dataPath, "debriefs")
}

func (s *VaultDebriefLog) Save(_ context.Context, record domain.DebriefRecord) (string, error) {
	at := record.RecordedAt.UTC()
	dir := filepath.Join(s.root(), at.Format("2006"), at.Format("01"), at.Format("02"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create debrief dir: %w", err)
	}
	base := fmt.Sprintf("%s-%s", at.Format("150405"), slug.Make(record.MissionTitle))
	path := filepath.Join(dir, base+".md")
	if _, err := os.Stat(path); err == nil {
		path = filepath.Join(dir, fmt.Sprintf("%s-%s.md", base, shortID(record.ID)))
	}

	meta := debriefNote{
		SchemaVersion: domain.SchemaVersion,
		ID:            record.ID,
		MissionID:     record.MissionID,
		MissionTitle:  record.MissionTitle,
		Category:      string(record.Category),
		Difficulty:    string(record.Difficulty),
		Multiplier:    float64(record.Multiplier),
		XPGained:      record.XPGained,
		LevelBefore:   record.LevelBefore,
		LevelAfter:    record.LevelAfter,
		Attribute:     string(record.Attribute),
		StatIncrease:  record.StatIncrease,
		StreakAfter:   record.StreakAfter,
		RecordedAt:    at.Format(timeLayout),
	}
	body := fmt.Sprintf("# Debrief: %s\n\n- Outcome: %s\n- XP gained: %d\n- %s +%d\n- Level: %d -> %d\n",
		record.MissionTitle,
		record.Multiplier.Label(),
		record.XPGained,
		record.Attribute,
		record.StatIncrease,
		record.LevelBefore,
		record.LevelAfter,
	)
	rendered, err := markdown.Render(meta, body)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return "", fmt.Errorf("write debrief note: %w", err)
	}
	return path, nil
}

// List reads every debrief note, oldest first.
func (s *VaultDebriefLog) List(ctx context.Context) ([]domain.DebriefRecord, error) {
	records := []domain.DebriefRecord{}
	err := filepath.WalkDir(s.root(), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) && path == s.root() {
				return fs.SkipDir
			}
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read debrief note: %w", err)
		}
		var note debriefNote
		if _, err := markdown.Decode(string(content), &note); err != nil {
			return fmt.Errorf("decode debrief note %s: %w", path, err)
		}
		record, err := note.record()
		if err != nil {
			return fmt.Errorf("decode debrief note %s: %w", path, err)
		}
		records = append(records, record)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].RecordedAt.Before(records[j].RecordedAt)
	})
	return records, nil
}

func (n debriefNote) record() (domain.DebriefRecord, error) {
	at, err := time.Parse(timeLayout, n.RecordedAt)
	if err != nil {
		return domain.DebriefRecord{}, fmt.Errorf("parse recorded_at: %w", err)
	}
	return domain.DebriefRecord{
		ID:           n.ID,
		MissionID:    n.MissionID,
		MissionTitle: n.MissionTitle,
		Category:     missiondomain.Category(n.Category),
		Difficulty:   missiondomain.Difficulty(n.Difficulty),
		Multiplier:   domain.Multiplier(n.Multiplier),
		XPGained:     n.XPGained,
		LevelBefore:  n.LevelBefore,
		LevelAfter:   n.LevelAfter,
		Attribute:    domain.Attribute(n.Attribute),
		StatIncrease: n.StatIncrease,
		StreakAfter:  n.StreakAfter,
		RecordedAt:   at,
	}, nil
}

func shortID(id string) string {
	id = strings.ReplaceAll(id, "-", "")
	if len(id) > 8 {
		return id[:8]
	}
	if id == "" {
		return "dup"
	}
	return id
}
