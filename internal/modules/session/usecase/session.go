package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	missiondomain "wayne/internal/modules/mission/domain"
	missiondto "wayne/internal/modules/mission/dto"
	missionin "wayne/internal/modules/mission/port/in"
	profiledomain "wayne/internal/modules/profile/domain"
	profiledto "wayne/internal/modules/profile/dto"
	profilein "wayne/internal/modules/profile/port/in"
	"wayne/internal/modules/session/domain"
	sessiondto "wayne/internal/modules/session/dto"
	sessionin "wayne/internal/modules/session/port/in"
	sessionout "wayne/internal/modules/session/port/out"
	apperrors "wayne/internal/platform/errors"
	"wayne/internal/platform/logging"
)

type Options struct {
	ProfileName string
}

// Interactor owns the session state. Every mutation is mirrored to the state
// store; persistence failures are logged and never undo the mutation.
type Interactor struct {
	missions missionin.Usecase
	profiles profilein.Usecase
	store    sessionout.StateStore
	log      *zap.Logger

	mu    sync.Mutex
	state domain.State
	busy  bool
	token uint64
}

// NewInteractor loads both state slots. A missing slot starts from defaults;
// a malformed one is logged and replaced by defaults.
func NewInteractor(ctx context.Context, missions missionin.Usecase, profiles profilein.Usecase, store sessionout.StateStore, opts Options, log *zap.Logger) sessionin.Usecase {
	i := &Interactor{missions: missions, profiles: profiles, store: store, log: logging.OrNop(log)}
	i.state = domain.NewState(i.loadProfile(ctx, opts.ProfileName), i.loadMissions(ctx))
	return i
}

func (i *Interactor) loadProfile(ctx context.Context, name string) profiledomain.Profile {
	profile, err := i.store.LoadProfile(ctx)
	switch {
	case err == nil:
		return profile
	case errors.Is(err, apperrors.ErrNotFound):
		i.log.Debug("no stored profile, starting fresh")
	default:
		i.log.Warn("stored profile unreadable, using defaults", zap.Error(err))
	}
	return profiledomain.Default(name)
}

func (i *Interactor) loadMissions(ctx context.Context) []missiondomain.Mission {
	missions, err := i.store.LoadMissions(ctx)
	switch {
	case err == nil:
		return missions
	case errors.Is(err, apperrors.ErrNotFound):
		i.log.Debug("no stored missions")
	default:
		i.log.Warn("stored missions unreadable, using empty list", zap.Error(err))
	}
	return []missiondomain.Mission{}
}

// Generate replaces the mission list with a freshly planned schedule. Only
// one generation may be in flight; a result whose token was superseded by
// AbandonGeneration is discarded.
func (i *Interactor) Generate(ctx context.Context, input sessiondto.GenerateInput) (sessiondto.StateOutput, error) {
	objectives := strings.TrimSpace(input.Objectives)
	if objectives == "" {
		return i.State(), fmt.Errorf("%w: objectives are required", apperrors.ErrInvalidInput)
	}

	i.mu.Lock()
	if i.busy {
		i.mu.Unlock()
		return i.State(), apperrors.ErrGenerationInFlight
	}
	i.busy = true
	i.token++
	token := i.token
	i.state.Status = domain.StatusGenerating
	i.state.ErrorMessage = ""
	i.mu.Unlock()

	i.log.Info("generating schedule", zap.Uint64("token", token))
	out, err := i.missions.Plan(ctx, missiondto.PlanInput{Objectives: objectives})

	i.mu.Lock()
	defer i.mu.Unlock()
	if token != i.token {
		i.log.Info("discarding stale schedule", zap.Uint64("token", token), zap.Uint64("current", i.token))
		return i.snapshotLocked(), apperrors.ErrStaleGeneration
	}
	i.busy = false
	if err != nil {
		i.state.Status = domain.StatusError
		i.state.ErrorMessage = domain.ErrorMessage
		i.log.Warn("schedule generation failed", zap.Error(err))
		return i.snapshotLocked(), err
	}
	i.state.Status = domain.StatusIdle
	i.state.Missions = out.Missions
	i.state.PendingDebrief = ""
	i.saveMissionsLocked(ctx)
	i.log.Info("schedule generated", zap.Int("missions", len(out.Missions)))
	return i.snapshotLocked(), nil
}

// AbandonGeneration forgets the in-flight request, if any.
func (i *Interactor) AbandonGeneration() sessiondto.StateOutput {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.busy {
		i.token++
		i.busy = false
		i.state.Status = domain.StatusIdle
		i.log.Info("schedule generation abandoned")
	}
	return i.snapshotLocked()
}

// SelectForDebrief opens a pending debrief for an incomplete mission. Any
// other id leaves the session untouched.
func (i *Interactor) SelectForDebrief(missionID string) sessiondto.StateOutput {
	i.mu.Lock()
	defer i.mu.Unlock()
	if _, ok := i.state.Debriefable(missionID); ok {
		i.state.PendingDebrief = missionID
	}
	return i.snapshotLocked()
}

func (i *Interactor) CancelDebrief() sessiondto.StateOutput {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.state.PendingDebrief = ""
	return i.snapshotLocked()
}

func (i *Interactor) ConfirmDebrief(ctx context.Context, multiplier profiledomain.Multiplier) (sessiondto.DebriefOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if err := multiplier.Validate(); err != nil {
		return sessiondto.DebriefOutput{State: i.snapshotLocked()}, err
	}
	return i.debriefLocked(ctx, i.state.PendingDebrief, multiplier)
}

// Debrief selects and confirms in one step.
func (i *Interactor) Debrief(ctx context.Context, input sessiondto.DebriefInput) (sessiondto.DebriefOutput, error) {
	multiplier, err := profiledomain.ParseMultiplier(input.Outcome)
	i.mu.Lock()
	defer i.mu.Unlock()
	if err != nil {
		return sessiondto.DebriefOutput{State: i.snapshotLocked()}, err
	}
	return i.debriefLocked(ctx, input.MissionID, multiplier)
}

func (i *Interactor) debriefLocked(ctx context.Context, missionID string, multiplier profiledomain.Multiplier) (sessiondto.DebriefOutput, error) {
	idx, ok := i.state.Debriefable(missionID)
	if !ok {
		i.state.PendingDebrief = ""
		i.log.Debug("debrief ignored", zap.String("mission_id", missionID))
		return sessiondto.DebriefOutput{State: i.snapshotLocked()}, nil
	}
	out, err := i.profiles.ApplyDebrief(ctx, profiledto.DebriefInput{
		Profile:    i.state.Profile,
		Mission:    i.state.Missions[idx],
		Multiplier: multiplier,
	})
	if err != nil {
		return sessiondto.DebriefOutput{State: i.snapshotLocked()}, err
	}
	i.state.Missions = domain.CompleteMission(i.state.Missions, idx)
	i.state.Profile = out.Profile
	i.state.PendingDebrief = ""
	i.saveProfileLocked(ctx)
	i.saveMissionsLocked(ctx)
	return sessiondto.DebriefOutput{
		State:    i.snapshotLocked(),
		Applied:  true,
		Outcome:  out.Outcome,
		NotePath: out.NotePath,
	}, nil
}

func (i *Interactor) SortBy(criterion missiondomain.Criterion) sessiondto.StateOutput {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.state.Sort = i.state.Sort.Select(criterion)
	return i.snapshotLocked()
}

func (i *Interactor) State() sessiondto.StateOutput {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.snapshotLocked()
}

// ListMissions returns a one-off ordering without touching the sort state.
func (i *Interactor) ListMissions(input sessiondto.ListInput) (sessiondto.MissionListOutput, error) {
	sortBy := input.SortBy
	if strings.TrimSpace(sortBy) == "" {
		sortBy = string(missiondomain.SortByTime)
	}
	criterion, err := missiondomain.ParseCriterion(sortBy)
	if err != nil {
		return sessiondto.MissionListOutput{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	direction, err := missiondomain.ParseDirection(input.Direction)
	if err != nil {
		return sessiondto.MissionListOutput{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	return sessiondto.MissionListOutput{Missions: missiondomain.SortMissions(i.state.Missions, criterion, direction)}, nil
}

func (i *Interactor) RenameProfile(ctx context.Context, name string) (sessiondto.StateOutput, error) {
	name = strings.TrimSpace(name)
	i.mu.Lock()
	defer i.mu.Unlock()
	if name == "" {
		return i.snapshotLocked(), fmt.Errorf("%w: profile name is required", apperrors.ErrInvalidInput)
	}
	if name != i.state.Profile.Name {
		i.state.Profile.Name = name
		i.saveProfileLocked(ctx)
	}
	return i.snapshotLocked(), nil
}

func (i *Interactor) snapshotLocked() sessiondto.StateOutput {
	return sessiondto.StateOutput{
		Status:         i.state.Status,
		ErrorMessage:   i.state.ErrorMessage,
		Profile:        i.state.Profile,
		Rank:           profiledomain.Rank(i.state.Profile.Level),
		Missions:       i.state.Sort.Apply(i.state.Missions),
		Sort:           i.state.Sort,
		PendingDebrief: i.state.PendingDebrief,
	}
}

func (i *Interactor) saveProfileLocked(ctx context.Context) {
	if err := i.store.SaveProfile(ctx, i.state.Profile); err != nil {
		i.log.Error("persist profile", zap.Error(err))
	}
}

func (i *Interactor) saveMissionsLocked(ctx context.Context) {
	if err := i.store.SaveMissions(ctx, i.state.Missions); err != nil {
		i.log.Error("persist missions", zap.Error(err))
	}
}
