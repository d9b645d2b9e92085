// Package paths provides centralized path handling for gamepatch.
// The config directory holds config.json and the per-game patches
// trees; state and lock files live under each game's backup root.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the config directory for gamepatch
	EnvConfigDir = "GAMEPATCH_CONFIG_DIR"
)

// Well-known file and directory names.
// These define gamepatch's on-disk layout and are not user-configurable.
const (
	// AppDirName is the directory name used under XDG base directories
	AppDirName = "gamepatch"

	// ConfigFileName is the name of the config file
	ConfigFileName = "config.json"

	// PatchesDirName is the directory holding per-game patch trees
	PatchesDirName = "patches"

	// StateFileName is the name of the per-game state file
	StateFileName = "state.json"

	// LockFileName is the name of the per-game lock file
	LockFileName = "patcher.lock"
)

// Paths resolves the locations gamepatch reads and writes for one
// config directory.
type Paths struct {
	configDir string
}

// New creates a Paths instance. Resolution order for the config
// directory: explicit value (--config-dir flag) > GAMEPATCH_CONFIG_DIR
// environment variable > $XDG_CONFIG_HOME/gamepatch.
func New(configDir string) *Paths {
	if configDir == "" {
		configDir = os.Getenv(EnvConfigDir)
	}
	if configDir == "" {
		configDir = filepath.Join(xdg.ConfigHome, AppDirName)
	}
	return &Paths{configDir: configDir}
}

// ConfigDir returns the resolved config directory
func (p *Paths) ConfigDir() string {
	return p.configDir
}

// ConfigFile returns the path of config.json
func (p *Paths) ConfigFile() string {
	return filepath.Join(p.configDir, ConfigFileName)
}

// PatchesDir returns the patch source tree for one game
func (p *Paths) PatchesDir(game string) string {
	return filepath.Join(p.configDir, PatchesDirName, game)
}

// StateFile returns the state file path under a game's backup root
func StateFile(backupRoot string) string {
	return filepath.Join(backupRoot, StateFileName)
}

// LockFile returns the lock file path under a game's backup root
func LockFile(backupRoot string) string {
	return filepath.Join(backupRoot, LockFileName)
}
