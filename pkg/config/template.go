package config

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/gamepatch/pkg/errors"
	"github.com/arthur-debert/gamepatch/pkg/paths"
)

// ExampleGame is the placeholder game name written by WriteTemplate
const ExampleGame = "example-game"

// templateJSON is the starter config written by `gamepatch init`
const templateJSON = `{
  "games": {
    "example-game": {
      "target": "/path/to/game/directory",
      "backup": "~/.local/share/gamepatch/backups/example-game"
    }
  }
}
`

// TemplateExists reports whether the config directory already holds a
// config.json.
func TemplateExists(configDir string) bool {
	_, err := os.Stat(filepath.Join(configDir, paths.ConfigFileName))
	return err == nil
}

// WriteTemplate writes the starter config.json and creates the
// patches directory for the example game. An existing config.json is
// overwritten; callers confirm with the operator first.
func WriteTemplate(configDir string) error {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to create config directory %s", configDir)
	}

	configFile := filepath.Join(configDir, paths.ConfigFileName)
	if err := os.WriteFile(configFile, []byte(templateJSON), 0o644); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to write %s", configFile)
	}

	patchesDir := filepath.Join(configDir, paths.PatchesDirName, ExampleGame)
	if err := os.MkdirAll(patchesDir, 0o755); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to create patches directory %s", patchesDir)
	}
	return nil
}
