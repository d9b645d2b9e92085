// Package state persists the per-game record of overlaid files.
//
// The state file is a JSON object mapping each relative path ever
// touched by the overlay to its tracked record. It lives under the
// game's backup root, is created on the first successful apply and is
// deleted when a revert completes.
package state

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/arthur-debert/gamepatch/pkg/errors"
	"github.com/arthur-debert/gamepatch/pkg/logging"
)

// PatchedFile is one tracked entry: a file the overlay has written.
//
// OriginalChecksum is nil when the file did not exist before patching;
// in that case HasBackup is always false and revert deletes the file.
// When HasBackup is true a backup copy exists at the same relative
// path under the backup root.
type PatchedFile struct {
	RelativePath     string  `json:"relative_path"`
	OriginalChecksum *string `json:"original_checksum"`
	PatchedChecksum  string  `json:"patched_checksum"`
	HasBackup        bool    `json:"has_backup"`
}

// Store reads and writes the state file for one game
type Store struct {
	path string
}

// NewStore creates a Store bound to one state file path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the state file path
func (s *Store) Path() string {
	return s.path
}

// Load reads the current patch state. A missing state file is not an
// error; it yields an empty map.
func (s *Store) Load() (map[string]PatchedFile, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]PatchedFile{}, nil
		}
		return nil, errors.Wrapf(err, errors.ErrStateLoad, "failed to read state file %s", s.path)
	}

	files := map[string]PatchedFile{}
	if err := json.Unmarshal(data, &files); err != nil {
		return nil, errors.Wrapf(err, errors.ErrStateLoad, "state file %s is corrupt", s.path)
	}

	logger := logging.GetLogger("state")
	logger.Debug().
		Str("path", s.path).
		Int("entries", len(files)).
		Msg("Loaded patch state")
	return files, nil
}

// Save writes the patch state, creating parent directories as needed
func (s *Store) Save(files map[string]PatchedFile) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.Wrapf(err, errors.ErrStateSave, "failed to create state directory for %s", s.path)
	}

	data, err := json.MarshalIndent(files, "", "  ")
	if err != nil {
		return errors.Wrapf(err, errors.ErrStateSave, "failed to encode state for %s", s.path)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return errors.Wrapf(err, errors.ErrStateSave, "failed to write state file %s", s.path)
	}

	logger := logging.GetLogger("state")
	logger.Debug().
		Str("path", s.path).
		Int("entries", len(files)).
		Msg("Saved patch state")
	return nil
}

// Delete removes the state file. A missing file is not an error.
func (s *Store) Delete() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, errors.ErrStateSave, "failed to delete state file %s", s.path)
	}
	return nil
}
