package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	missiondomain "wayne/internal/modules/mission/domain"
	profiledomain "wayne/internal/modules/profile/domain"
	sessionout "wayne/internal/modules/session/port/out"
	apperrors "wayne/internal/platform/errors"
)

const (
	profileSlot  = "profile.json"
	missionsSlot = "missions.json"
)

// FileStateStore keeps each slot as a JSON file under <data>/.wayne.
type FileStateStore struct {
	dir string
}

func NewFileStateStore(dataPath string) sessionout.StateStore {
	return &FileStateStore{dir: filepath.Join(dataPath, ".wayne")}
}

func (s *FileStateStore) LoadProfile(_ context.Context) (profiledomain.Profile, error) {
	profile := profiledomain.Profile{}
	if err := s.read(profileSlot, &profile); err != nil {
		return profiledomain.Profile{}, err
	}
	if err := profile.Validate(); err != nil {
		return profiledomain.Profile{}, fmt.Errorf("%w: %s: %v", apperrors.ErrCorruptState, profileSlot, err)
	}
	return profile, nil
}

func (s *FileStateStore) LoadMissions(_ context.Context) ([]missiondomain.Mission, error) {
	missions := []missiondomain.Mission{}
	if err := s.read(missionsSlot, &missions); err != nil {
		return nil, err
	}
	if missions == nil {
		missions = []missiondomain.Mission{}
	}
	return missions, nil
}

func (s *FileStateStore) SaveProfile(_ context.Context, profile profiledomain.Profile) error {
	return s.write(profileSlot, profile)
}

func (s *FileStateStore) SaveMissions(_ context.Context, missions []missiondomain.Mission) error {
	if missions == nil {
		missions = []missiondomain.Mission{}
	}
	return s.write(missionsSlot, missions)
}

func (s *FileStateStore) read(slot string, out any) error {
	payload, err := os.ReadFile(filepath.Join(s.dir, slot))
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", apperrors.ErrNotFound, slot)
		}
		return fmt.Errorf("read %s: %w", slot, err)
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("%w: %s: %v", apperrors.ErrCorruptState, slot, err)
	}
	return nil
}

func (s *FileStateStore) write(slot string, value any) error {
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", slot, err)
	}
	if err := writeFileAtomic(filepath.Join(s.dir, slot), payload, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", slot, err)
	}
	return nil
}

// writeFileAtomic replaces path through a synced temp file in the same
// directory, so readers never observe a partial slot.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()
	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	committed = true
	return nil
}
