package out

import (
	"context"

	missiondomain "wayne/internal/modules/mission/domain"
	profiledomain "wayne/internal/modules/profile/domain"
)

// StateStore persists the profile and the mission list as two independent
// slots. Loads return ErrNotFound for an absent slot and ErrCorruptState for
// one that cannot be decoded.
type StateStore interface {
	LoadProfile(ctx context.Context) (profiledomain.Profile, error)
	LoadMissions(ctx context.Context) ([]missiondomain.Mission, error)
	SaveProfile(ctx context.Context, profile profiledomain.Profile) error
	SaveMissions(ctx context.Context, missions []missiondomain.Mission) error
}
