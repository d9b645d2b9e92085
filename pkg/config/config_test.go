package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/gamepatch/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(content), 0o644))
}

func TestLoadValidConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"games": {"testgame": {"target": "/games/test", "backup": "/backups/test"}}}`)

	cfg, err := Load(dir)
	require.NoError(t, err)

	game, err := cfg.Game("testgame")
	require.NoError(t, err)
	assert.Equal(t, "/games/test", game.Target)
	assert.Equal(t, "/backups/test", game.Backup)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigNotFound))
}

func TestLoadMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"games": `)

	_, err := Load(dir)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestLoadSchemaViolation(t *testing.T) {
	dir := t.TempDir()
	// "backup" is required per game.
	writeConfig(t, dir, `{"games": {"testgame": {"target": "/games/test"}}}`)

	_, err := Load(dir)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))
	assert.Contains(t, err.Error(), "backup")
}

func TestLoadMissingGamesKey(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"something": {}}`)

	_, err := Load(dir)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))
}

func TestGameNotConfigured(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"games": {"testgame": {"target": "/t", "backup": "/b"}}}`)

	cfg, err := Load(dir)
	require.NoError(t, err)

	_, err = cfg.Game("othergame")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrGameNotConfigured))
}

func TestLoadExpandsTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := t.TempDir()
	writeConfig(t, dir, `{"games": {"testgame": {"target": "~/game", "backup": "~/backups"}}}`)

	cfg, err := Load(dir)
	require.NoError(t, err)

	game, err := cfg.Game("testgame")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "game"), game.Target)
	assert.Equal(t, filepath.Join(home, "backups"), game.Backup)
}

func TestWriteTemplate(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "config")

	require.NoError(t, WriteTemplate(dir))

	data, err := os.ReadFile(filepath.Join(dir, "config.json"))
	require.NoError(t, err)

	var raw map[string]map[string]map[string]string
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "/path/to/game/directory", raw["games"][ExampleGame]["target"])
	assert.NotEmpty(t, raw["games"][ExampleGame]["backup"])

	info, err := os.Stat(filepath.Join(dir, "patches", ExampleGame))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// The template itself must pass our own validation.
	_, err = Load(dir)
	assert.NoError(t, err)
}

func TestTemplateExists(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, TemplateExists(dir))

	writeConfig(t, dir, `{}`)
	assert.True(t, TemplateExists(dir))
}

func TestWriteTemplateOverwrites(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"games": {"oldgame": {"target": "/old", "backup": "/old-b"}}}`)

	require.NoError(t, WriteTemplate(dir))

	cfg, err := Load(dir)
	require.NoError(t, err)
	_, err = cfg.Game("oldgame")
	assert.Error(t, err)
	_, err = cfg.Game(ExampleGame)
	assert.NoError(t, err)
}
