package patcher

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/arthur-debert/gamepatch/pkg/lock"
	"github.com/arthur-debert/gamepatch/pkg/state"
)

// RevertResult reports the outcome of one revert run
type RevertResult struct {
	// EntriesProcessed is the number of tracked entries handled,
	// including ones whose restore failed
	EntriesProcessed int

	// Failed lists the relative paths whose restore failed
	Failed []string
}

// Revert undoes the overlay. Unlike apply it is deliberately
// best-effort per file: a failed restore is logged and skipped so one
// unwritable path cannot strand every other original. After all
// entries are processed the state file is deleted and empty
// directories under the backup root are pruned bottom-up.
func (p *Patcher) Revert() (*RevertResult, error) {
	guard, err := lock.Acquire(p.lockPath())
	if err != nil {
		return nil, err
	}
	defer func() { _ = guard.Release() }()

	current, err := p.store.Load()
	if err != nil {
		return nil, err
	}
	if len(current) == 0 {
		p.logger.Info().Msg("No patches applied, nothing to revert")
		return &RevertResult{}, nil
	}

	result := &RevertResult{}
	for _, rel := range sortedPaths(current) {
		result.EntriesProcessed++
		if err := p.restoreFile(rel, true); err != nil {
			p.logger.Error().Err(err).Str("path", rel).Msg("Failed to revert file")
			result.Failed = append(result.Failed, rel)
		}
	}

	if err := p.store.Delete(); err != nil {
		p.logger.Warn().Err(err).Msg("Could not remove state file")
	}
	p.pruneBackupDirs()

	p.logger.Info().
		Int("entries", result.EntriesProcessed).
		Int("failed", len(result.Failed)).
		Msg("Revert complete")
	return result, nil
}

// pruneBackupDirs removes now-empty directories under the backup
// root, deepest first. The backup root itself stays (it still holds
// the lock file). Failures here are cosmetic and only logged.
func (p *Patcher) pruneBackupDirs() {
	var dirs []string
	err := filepath.WalkDir(p.cfg.Backup, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() && path != p.cfg.Backup {
			dirs = append(dirs, path)
		}
		return nil
	})
	if err != nil {
		p.logger.Warn().Err(err).Msg("Could not clean up backup directory")
		return
	}

	sort.Slice(dirs, func(i, j int) bool { return len(dirs[i]) > len(dirs[j]) })
	for _, dir := range dirs {
		// os.Remove refuses non-empty directories, which is exactly the
		// filter we want.
		_ = os.Remove(dir)
	}
}

// sortedPaths returns the tracked relative paths in lexical order
func sortedPaths(files map[string]state.PatchedFile) []string {
	out := make([]string, 0, len(files))
	for rel := range files {
		out = append(out, rel)
	}
	sort.Strings(out)
	return out
}
