package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	missiondomain "wayne/internal/modules/mission/domain"
	"wayne/internal/modules/profile/domain"
	profileout "wayne/internal/modules/profile/port/out"

	_ "modernc.org/sqlite"
)

type SQLiteDebriefProjector struct {
	db *sql.DB
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func NewSQLiteDebriefProjector(dbPath string) (*SQLiteDebriefProjector, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	projector := &SQLiteDebriefProjector{db: db}
	if err := projector.ensureSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return projector, nil
}

var _ profileout.DebriefProjector = (*SQLiteDebriefProjector)(nil)

func (s *SQLiteDebriefProjector) Close() error {
	return s.db.Close()
}

func (s *SQLiteDebriefProjector) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS debriefs (
  id TEXT PRIMARY KEY,
  mission_id TEXT NOT NULL,
  mission_title TEXT NOT NULL,
  category TEXT NOT NULL,
  difficulty TEXT NOT NULL,
  multiplier REAL NOT NULL,
  xp_gained INTEGER NOT NULL,
  level_before INTEGER NOT NULL,
  level_after INTEGER NOT NULL,
  attribute TEXT NOT NULL,
  stat_increase INTEGER NOT NULL,
  streak_after INTEGER NOT NULL,
  recorded_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS debriefs_recorded_at ON debriefs(recorded_at);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create debriefs table: %w", err)
	}
	return nil
}

func (s *SQLiteDebriefProjector) Reset(ctx context.Context) error {
	return reset(ctx, s.db)
}

func (s *SQLiteDebriefProjector) Upsert(ctx context.Context, record domain.DebriefRecord) error {
	return upsert(ctx, s.db, record)
}

// Replace swaps the whole projection for records in one transaction. On any
// failure the previous rows are kept.
func (s *SQLiteDebriefProjector) Replace(ctx context.Context, records []domain.DebriefRecord) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()
	if err = reset(ctx, tx); err != nil {
		return err
	}
	for _, record := range records {
		if err = upsert(ctx, tx, record); err != nil {
			return err
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit replace: %w", err)
	}
	return nil
}

func reset(ctx context.Context, db execer) error {
	if _, err := db.ExecContext(ctx, `DELETE FROM debriefs`); err != nil {
		return fmt.Errorf("reset debriefs: %w", err)
	}
	return nil
}

func upsert(ctx context.Context, db execer, record domain.DebriefRecord) error {
	const stmt = `
INSERT INTO debriefs (id, mission_id, mission_title, category, difficulty, multiplier, xp_gained, level_before, level_after, attribute, stat_increase, streak_after, recorded_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  mission_id=excluded.mission_id,
  mission_title=excluded.mission_title,
  category=excluded.category,
  difficulty=excluded.difficulty,
  multiplier=excluded.multiplier,
  xp_gained=excluded.xp_gained,
  level_before=excluded.level_before,
  level_after=excluded.level_after,
  attribute=excluded.attribute,
  stat_increase=excluded.stat_increase,
  streak_after=excluded.streak_after,
  recorded_at=excluded.recorded_at;
`
	_, err := db.ExecContext(ctx, stmt,
		record.ID,
		record.MissionID,
		record.MissionTitle,
		string(record.Category),
		string(record.Difficulty),
		float64(record.Multiplier),
		record.XPGained,
		record.LevelBefore,
		record.LevelAfter,
		string(record.Attribute),
		record.StatIncrease,
		record.StreakAfter,
		record.RecordedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("upsert debrief: %w", err)
	}
	return nil
}

// Recent returns up to limit records, newest first.
func (s *SQLiteDebriefProjector) Recent(ctx context.Context, limit int) ([]domain.DebriefRecord, error) {
	const query = `
SELECT id, mission_id, mission_title, category, difficulty, multiplier, xp_gained, level_before, level_after, attribute, stat_increase, streak_after, recorded_at
FROM debriefs
ORDER BY recorded_at DESC, id DESC
LIMIT ?;
`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query debriefs: %w", err)
	}
	defer rows.Close()

	records := []domain.DebriefRecord{}
	for rows.Next() {
		var (
			record                         domain.DebriefRecord
			category, difficulty, attr, at string
			multiplier                     float64
		)
		if err := rows.Scan(
			&record.ID,
			&record.MissionID,
			&record.MissionTitle,
			&category,
			&difficulty,
			&multiplier,
			&record.XPGained,
			&record.LevelBefore,
			&record.LevelAfter,
			&attr,
			&record.StatIncrease,
			&record.StreakAfter,
			&at,
		); err != nil {
			return nil, fmt.Errorf("scan debrief: %w", err)
		}
		recordedAt, err := time.Parse(timeLayout, at)
		if err != nil {
			return nil, fmt.Errorf("parse debrief time: %w", err)
		}
		record.Category = missiondomain.Category(category)
		record.Difficulty = missiondomain.Difficulty(difficulty)
		record.Multiplier = domain.Multiplier(multiplier)
		record.Attribute = domain.Attribute(attr)
		record.RecordedAt = recordedAt
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate debriefs: %w", err)
	}
	return records, nil
}
