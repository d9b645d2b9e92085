package patcher

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/arthur-debert/gamepatch/pkg/conflict"
	"github.com/arthur-debert/gamepatch/pkg/config"
	"github.com/arthur-debert/gamepatch/pkg/errors"
	"github.com/arthur-debert/gamepatch/pkg/logging"
	"github.com/arthur-debert/gamepatch/pkg/paths"
	"github.com/arthur-debert/gamepatch/pkg/state"
	"github.com/rs/zerolog"
)

// Patcher manages the overlay for a single game: one target tree, one
// backup root, one patch source tree, one state file. It is not safe
// for concurrent use within a process; cross-process exclusion is the
// lock guard's job.
type Patcher struct {
	game       string
	cfg        config.Game
	patchesDir string
	store      *state.Store
	resolver   conflict.Resolver
	logger     zerolog.Logger
}

// New creates a Patcher for one game. The resolver decides conflicted
// files during apply; pass conflict.Terminal{} for interactive use or
// conflict.Static for a scripted answer.
func New(game string, cfg config.Game, patchesDir string, resolver conflict.Resolver) *Patcher {
	return &Patcher{
		game:       game,
		cfg:        cfg,
		patchesDir: patchesDir,
		store:      state.NewStore(paths.StateFile(cfg.Backup)),
		resolver:   resolver,
		logger:     logging.GetLogger("patcher").With().Str("game", game).Logger(),
	}
}

// lockPath returns the per-game lock file path
func (p *Patcher) lockPath() string {
	return paths.LockFile(p.cfg.Backup)
}

// targetPath maps a relative patch path into the target tree
func (p *Patcher) targetPath(relativePath string) string {
	return filepath.Join(p.cfg.Target, filepath.FromSlash(relativePath))
}

// backupPath maps a relative patch path into the backup tree
func (p *Patcher) backupPath(relativePath string) string {
	return filepath.Join(p.cfg.Backup, filepath.FromSlash(relativePath))
}

// patchSourcePath maps a relative path into the patch source tree
func (p *Patcher) patchSourcePath(relativePath string) string {
	return filepath.Join(p.patchesDir, filepath.FromSlash(relativePath))
}

// patchFiles enumerates every regular file under the patch source
// tree and returns their POSIX-style relative paths in lexical order.
func (p *Patcher) patchFiles() ([]string, error) {
	info, err := os.Stat(p.patchesDir)
	if err != nil || !info.IsDir() {
		return nil, errors.Newf(errors.ErrPatchSourceMissing, "patches directory not found: %s", p.patchesDir)
	}

	var files []string
	err = filepath.WalkDir(p.patchesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(p.patchesDir, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to enumerate patches in %s", p.patchesDir)
	}
	return files, nil
}

// backupFile copies the current target file for relativePath into the
// backup tree, overwriting any previous backup.
func (p *Patcher) backupFile(relativePath string) error {
	return copyFile(p.targetPath(relativePath), p.backupPath(relativePath))
}

// restoreFile puts a tracked path back to its original condition:
// copy the backup over the target, or delete the target if the file
// never existed. During rollback the backup is kept so a retry can
// reuse it; during revert it is deleted.
func (p *Patcher) restoreFile(relativePath string, deleteBackup bool) error {
	backup := p.backupPath(relativePath)
	target := p.targetPath(relativePath)

	if fileExists(backup) {
		if err := copyFile(backup, target); err != nil {
			return err
		}
		if deleteBackup {
			if err := os.Remove(backup); err != nil {
				return errors.Wrapf(err, errors.ErrFileAccess, "failed to remove backup %s", backup)
			}
		}
		return nil
	}

	if fileExists(target) {
		if err := os.Remove(target); err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "failed to remove %s", target)
		}
	}
	return nil
}

// copyFile copies src to dst wholesale, creating dst's parent
// directories and carrying over the permission bits and modification
// time.
func copyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileCopy, "cannot stat %s", src)
	}

	in, err := os.Open(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileCopy, "cannot open %s", src)
	}
	defer func() { _ = in.Close() }()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return errors.Wrapf(err, errors.ErrFileCopy, "cannot create directory for %s", dst)
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, info.Mode().Perm())
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileCopy, "cannot create %s", dst)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return errors.Wrapf(err, errors.ErrFileCopy, "failed to copy %s to %s", src, dst)
	}
	if err := out.Close(); err != nil {
		return errors.Wrapf(err, errors.ErrFileCopy, "failed to flush %s", dst)
	}

	_ = os.Chtimes(dst, time.Now(), info.ModTime())
	return nil
}

// fileExists reports whether path exists as a regular file
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// dirExists reports whether path exists as a directory
func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
