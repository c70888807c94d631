package out_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	missiondomain "wayne/internal/modules/mission/domain"
	profiledomain "wayne/internal/modules/profile/domain"
	"wayne/internal/modules/session/adapter/out"
	apperrors "wayne/internal/platform/errors"
)

func TestFileStateStoreRoundTrip(t *testing.T) {
	t.Parallel()
	data := t.TempDir()
	store := out.NewFileStateStore(data)
	ctx := context.Background()

	_, err := store.LoadProfile(ctx)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = store.LoadMissions(ctx)
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	profile := profiledomain.Default("Robin")
	profile.CurrentXP = 120
	missions := []missiondomain.Mission{{ID: "m-1", Title: "Patrol", StartTime: "21:00", DurationMinutes: 60, Category: missiondomain.CategoryPhysical, XPReward: 50, Completed: true, Difficulty: missiondomain.DifficultyKnight}}
	require.NoError(t, store.SaveProfile(ctx, profile))
	require.NoError(t, store.SaveMissions(ctx, missions))

	loadedProfile, err := store.LoadProfile(ctx)
	require.NoError(t, err)
	require.Equal(t, profile, loadedProfile)
	loadedMissions, err := store.LoadMissions(ctx)
	require.NoError(t, err)
	require.Equal(t, missions, loadedMissions)

	raw, err := os.ReadFile(filepath.Join(data, ".wayne", "missions.json"))
	require.NoError(t, err)
	require.Contains(t, string(raw), `"isCompleted": true`)
	require.Contains(t, string(raw), `"type": "PHYSICAL"`)

	entries, err := os.ReadDir(filepath.Join(data, ".wayne"))
	require.NoError(t, err)
	require.Len(t, entries, 2, "temp files must not be left behind")
}

func TestFileStateStoreCorruptSlots(t *testing.T) {
	t.Parallel()
	data := t.TempDir()
	dir := filepath.Join(data, ".wayne")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "profile.json"), []byte(`{"name":`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "missions.json"), []byte(`{"not":"a list"}`), 0o644))

	store := out.NewFileStateStore(data)
	_, err := store.LoadProfile(context.Background())
	require.ErrorIs(t, err, apperrors.ErrCorruptState)
	_, err = store.LoadMissions(context.Background())
	require.ErrorIs(t, err, apperrors.ErrCorruptState)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "profile.json"), []byte(`{"name":"X","level":0}`), 0o644))
	_, err = store.LoadProfile(context.Background())
	require.ErrorIs(t, err, apperrors.ErrCorruptState)
}
