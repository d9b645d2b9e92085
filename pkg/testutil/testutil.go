// Package testutil provides shared helpers for gamepatch tests.
package testutil

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/gamepatch/pkg/config"
)

// GameName is the game configured by NewEnv
const GameName = "testgame"

// Env is an isolated on-disk environment: a config directory with
// config.json and a patches tree, a target tree and a backup root,
// all under one temp directory that the test framework cleans up.
type Env struct {
	ConfigDir  string
	Target     string
	Backup     string
	PatchesDir string
}

// NewEnv builds an isolated environment with one configured game
func NewEnv(t *testing.T) *Env {
	t.Helper()

	root := t.TempDir()
	env := &Env{
		ConfigDir:  filepath.Join(root, "config"),
		Target:     filepath.Join(root, "game"),
		Backup:     filepath.Join(root, "config", "backups", GameName),
		PatchesDir: filepath.Join(root, "config", "patches", GameName),
	}

	for _, dir := range []string{env.ConfigDir, env.Target, env.PatchesDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("failed to create %s: %v", dir, err)
		}
	}

	configJSON := fmt.Sprintf(`{"games": {%q: {"target": %q, "backup": %q}}}`,
		GameName, env.Target, env.Backup)
	if err := os.WriteFile(filepath.Join(env.ConfigDir, "config.json"), []byte(configJSON), 0o644); err != nil {
		t.Fatalf("failed to write config.json: %v", err)
	}

	return env
}

// GameConfig returns the config.Game for the environment's game
func (e *Env) GameConfig() config.Game {
	return config.Game{Target: e.Target, Backup: e.Backup}
}

// WriteTarget writes a file into the target tree
func (e *Env) WriteTarget(t *testing.T, relativePath, content string) {
	t.Helper()
	writeFile(t, filepath.Join(e.Target, filepath.FromSlash(relativePath)), content)
}

// WritePatch writes a file into the patch source tree
func (e *Env) WritePatch(t *testing.T, relativePath, content string) {
	t.Helper()
	writeFile(t, filepath.Join(e.PatchesDir, filepath.FromSlash(relativePath)), content)
}

// ReadTarget reads a file from the target tree
func (e *Env) ReadTarget(t *testing.T, relativePath string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(e.Target, filepath.FromSlash(relativePath)))
	if err != nil {
		t.Fatalf("failed to read target file %s: %v", relativePath, err)
	}
	return string(data)
}

// TargetExists reports whether a target file exists
func (e *Env) TargetExists(relativePath string) bool {
	_, err := os.Stat(filepath.Join(e.Target, filepath.FromSlash(relativePath)))
	return err == nil
}

// BackupExists reports whether a backup file exists
func (e *Env) BackupExists(relativePath string) bool {
	_, err := os.Stat(filepath.Join(e.Backup, filepath.FromSlash(relativePath)))
	return err == nil
}

// StatePath returns the path of the environment's state file
func (e *Env) StatePath() string {
	return filepath.Join(e.Backup, "state.json")
}

// StateExists reports whether the state file exists
func (e *Env) StateExists() bool {
	_, err := os.Stat(e.StatePath())
	return err == nil
}

// Checksum calculates the SHA-256 checksum of test content, matching
// what the engine records for a file holding those bytes.
func Checksum(content string) string {
	hash := sha256.Sum256([]byte(content))
	return fmt.Sprintf("%x", hash)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}
