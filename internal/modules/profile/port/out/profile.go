package out

import (
	"context"

	"wayne/internal/modules/profile/domain"
)

// DebriefLog is the durable ledger of debrief notes.
type DebriefLog interface {
	Save(ctx context.Context, record domain.DebriefRecord) (string, error)
	List(ctx context.Context) ([]domain.DebriefRecord, error)
}

// DebriefProjector maintains the queryable index of debrief records.
type DebriefProjector interface {
	Upsert(ctx context.Context, record domain.DebriefRecord) error
	// Replace swaps every projected record for records atomically.
	Replace(ctx context.Context, records []domain.DebriefRecord) error
	Recent(ctx context.Context, limit int) ([]domain.DebriefRecord, error)
}
