// Package config loads the gamepatch configuration file.
//
// config.json maps game names to a target directory (the tree patches
// are overlaid onto) and a backup directory (where originals, state
// and the lock file live). The file is validated against an embedded
// JSON Schema before decoding so malformed configs fail with a precise
// message instead of a half-populated struct.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/gamepatch/pkg/errors"
	"github.com/arthur-debert/gamepatch/pkg/logging"
	"github.com/arthur-debert/gamepatch/pkg/paths"
	"github.com/xeipuuv/gojsonschema"
)

// configSchema is the JSON Schema every config.json must satisfy
const configSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["games"],
  "properties": {
    "games": {
      "type": "object",
      "additionalProperties": {
        "type": "object",
        "required": ["target", "backup"],
        "properties": {
          "target": {"type": "string", "minLength": 1},
          "backup": {"type": "string", "minLength": 1}
        }
      }
    }
  }
}`

// Game holds the per-game directories. Target is the directory tree
// patches are applied to; Backup is where originals are kept so the
// overlay can be reversed. Both are absolute after loading (leading
// "~" is expanded).
type Game struct {
	Target string `json:"target"`
	Backup string `json:"backup"`
}

// Config is the decoded config.json
type Config struct {
	Games map[string]Game `json:"games"`
}

// Load reads and validates config.json from the given config directory
func Load(configDir string) (*Config, error) {
	configFile := filepath.Join(configDir, paths.ConfigFileName)

	data, err := os.ReadFile(configFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrConfigNotFound, "config file not found: %s", configFile)
		}
		return nil, errors.Wrapf(err, errors.ErrConfigNotFound, "cannot read config file %s", configFile)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(configSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "config file %s is not valid JSON", configFile)
	}
	if !result.Valid() {
		issues := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			issues = append(issues, desc.String())
		}
		return nil, errors.Newf(errors.ErrConfigInvalid, "config file %s is invalid: %s",
			configFile, strings.Join(issues, "; "))
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to decode config file %s", configFile)
	}

	for name, game := range cfg.Games {
		game.Target = expandUser(game.Target)
		game.Backup = expandUser(game.Backup)
		cfg.Games[name] = game
	}

	logger := logging.GetLogger("config")
	logger.Debug().
		Str("path", configFile).
		Int("games", len(cfg.Games)).
		Msg("Loaded config")
	return &cfg, nil
}

// Game returns the configuration for one game by name
func (c *Config) Game(name string) (Game, error) {
	game, ok := c.Games[name]
	if !ok {
		return Game{}, errors.Newf(errors.ErrGameNotConfigured, "game %q not found in config", name)
	}
	return game, nil
}

// expandUser replaces a leading "~" with the current user's home
// directory, mirroring how the config file is written by hand.
func expandUser(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
	}
	return path
}
