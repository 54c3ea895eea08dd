// Package save persists run progress between sessions: the deepest
// level reached and whether the hardest difficulty has been unlocked.
package save

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Data is the on-disk progress record.
type Data struct {
	Version         string `json:"version"`
	BestLevel       int    `json:"bestLevel"`
	BestTier        string `json:"bestTier,omitempty"`
	HardestUnlocked bool   `json:"hardestUnlocked,omitempty"`
	UpdatedAt       string `json:"updatedAt,omitempty"`
}

// Store owns one save file. Records only improve: writing progress
// that is not strictly better than what is on disk is a no-op, so
// callers can report every run end without churning the file.
type Store struct {
	path string
	data Data
}

// DefaultPath returns the save file location under the user config
// directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config dir: %w", err)
	}
	return filepath.Join(dir, "gauntlet", "save.json"), nil
}

// Open loads the save file at path. A missing file is not an error;
// the store starts from an empty record and the file is created on
// the first write.
func Open(path string) (*Store, error) {
	s := &Store{
		path: path,
		data: Data{Version: "1.0"},
	}

	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open save: %w", err)
	}
	defer func() { _ = file.Close() }()

	if err := json.NewDecoder(file).Decode(&s.data); err != nil {
		return nil, fmt.Errorf("failed to decode save: %w", err)
	}
	return s, nil
}

// Data returns the current record.
func (s *Store) Data() Data {
	return s.data
}

// BestLevel returns the deepest level recorded so far, 0 if none.
func (s *Store) BestLevel() int {
	return s.data.BestLevel
}

// HardestUnlocked reports whether the hardest tier is available.
func (s *Store) HardestUnlocked() bool {
	return s.data.HardestUnlocked
}

// RecordProgress stores the level a run reached on the named tier.
// Only a strictly deeper level than the recorded best is written.
func (s *Store) RecordProgress(level int, tier string) error {
	if level <= s.data.BestLevel {
		return nil
	}
	s.data.BestLevel = level
	s.data.BestTier = tier
	return s.write()
}

// RecordUnlock stores the hardest-tier unlock. Recording an unlock
// that is already on disk is a no-op.
func (s *Store) RecordUnlock() error {
	if s.data.HardestUnlocked {
		return nil
	}
	s.data.HardestUnlocked = true
	return s.write()
}

func (s *Store) write() error {
	s.data.UpdatedAt = time.Now().Format(time.RFC3339)

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create save dir: %w", err)
		}
	}

	file, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("failed to create save: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(s.data); err != nil {
		return fmt.Errorf("failed to encode save: %w", err)
	}
	return nil
}
