package patcher

import (
	"github.com/arthur-debert/gamepatch/pkg/checksum"
	"github.com/arthur-debert/gamepatch/pkg/conflict"
	"github.com/arthur-debert/gamepatch/pkg/errors"
	"github.com/arthur-debert/gamepatch/pkg/lock"
	"github.com/arthur-debert/gamepatch/pkg/state"
)

// pendingOperation is one planned overlay write. Computed during the
// planning pass, consumed in order by the execution pass, never
// persisted.
type pendingOperation struct {
	patchSource   string
	relativePath  string
	targetPath    string
	needsBackup   bool
	forceRebackup bool
}

// ApplyResult reports the outcome of one apply run
type ApplyResult struct {
	// FilesPatched is the number of files written to the target tree
	FilesPatched int

	// Aborted is true when the operator chose to abort on a conflict;
	// nothing was touched and no error is raised
	Aborted bool
}

// Apply overlays the patch source tree onto the target.
//
// The run is atomic from the caller's perspective: either every
// candidate ends up patched and the state fully updated, or target
// tree and state return to their pre-call condition. Backups created
// by a failed run are kept so a retry can reuse them.
func (p *Patcher) Apply() (*ApplyResult, error) {
	guard, err := lock.Acquire(p.lockPath())
	if err != nil {
		return nil, err
	}
	defer func() { _ = guard.Release() }()

	if !dirExists(p.cfg.Target) {
		return nil, errors.Newf(errors.ErrTargetMissing, "target directory does not exist: %s", p.cfg.Target)
	}

	current, err := p.store.Load()
	if err != nil {
		return nil, err
	}

	candidates, err := p.patchFiles()
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		p.logger.Info().Str("patchesDir", p.patchesDir).Msg("No patch files found")
		return &ApplyResult{}, nil
	}

	ops, aborted, err := p.plan(candidates, current)
	if err != nil {
		return nil, err
	}
	if aborted {
		p.logger.Info().Msg("Patching aborted by conflict resolution")
		return &ApplyResult{Aborted: true}, nil
	}

	updated := make(map[string]state.PatchedFile, len(current)+len(ops))
	for rel, entry := range current {
		updated[rel] = entry
	}

	var patched []string
	execErr := p.execute(ops, current, updated, &patched)
	if execErr == nil {
		execErr = p.store.Save(updated)
	}
	if execErr != nil {
		p.rollback(patched)
		if saveErr := p.store.Save(current); saveErr != nil {
			p.logger.Error().Err(saveErr).Msg("Failed to restore pre-apply state file")
		}
		return nil, errors.Wrap(execErr, errors.ErrPatchingFailed, "patching failed and was rolled back")
	}

	p.logger.Info().Int("files", len(patched)).Msg("Apply complete")
	return &ApplyResult{FilesPatched: len(patched)}, nil
}

// plan runs the mutation-free planning pass: per candidate, decide
// whether the target needs a backup and consult the resolver on
// conflicts. Returns aborted=true when the resolver chose to cancel.
func (p *Patcher) plan(candidates []string, current map[string]state.PatchedFile) ([]pendingOperation, bool, error) {
	ops := make([]pendingOperation, 0, len(candidates))

	for _, rel := range candidates {
		targetPath := p.targetPath(rel)
		needsBackup := fileExists(targetPath)
		forceRebackup := false

		if needsBackup {
			if entry, tracked := current[rel]; tracked {
				live, err := checksum.File(targetPath)
				if err != nil {
					return nil, false, err
				}
				if conflict.Detect(live, &entry) {
					resolution, err := p.resolver.Resolve(rel)
					if err != nil {
						return nil, false, err
					}
					p.logger.Info().
						Str("path", rel).
						Str("resolution", resolution.String()).
						Msg("Conflict resolved")

					switch resolution {
					case conflict.ResolutionAbort:
						return nil, true, nil
					case conflict.ResolutionForce:
						// The modified content is discarded, nothing to restore later.
						needsBackup = false
					case conflict.ResolutionRebackup:
						forceRebackup = true
					}
				}
			}
		}

		ops = append(ops, pendingOperation{
			patchSource:   p.patchSourcePath(rel),
			relativePath:  rel,
			targetPath:    targetPath,
			needsBackup:   needsBackup,
			forceRebackup: forceRebackup,
		})
	}

	return ops, false, nil
}

// execute runs the planned operations in order, recording each
// success in updated and appending to patched as it goes so a failure
// can be rolled back precisely.
func (p *Patcher) execute(ops []pendingOperation, current, updated map[string]state.PatchedFile, patched *[]string) error {
	for _, op := range ops {
		var original *string

		if op.needsBackup {
			entry, tracked := current[op.relativePath]
			if !tracked || !entry.HasBackup || op.forceRebackup {
				if err := p.backupFile(op.relativePath); err != nil {
					return err
				}
				sum, err := checksum.File(op.targetPath)
				if err != nil {
					return err
				}
				original = &sum
			} else {
				// A backup from an earlier run already holds the true
				// original; keep its checksum so repeated patching never
				// drifts the restore baseline.
				original = entry.OriginalChecksum
			}
		}

		if err := copyFile(op.patchSource, op.targetPath); err != nil {
			return err
		}

		patchedSum, err := checksum.File(op.patchSource)
		if err != nil {
			return err
		}

		updated[op.relativePath] = state.PatchedFile{
			RelativePath:     op.relativePath,
			OriginalChecksum: original,
			PatchedChecksum:  patchedSum,
			HasBackup:        op.needsBackup,
		}
		*patched = append(*patched, op.relativePath)

		p.logger.Debug().Str("path", op.relativePath).Bool("backup", op.needsBackup).Msg("Patched file")
	}
	return nil
}

// rollback restores every path patched during a failed run. Backups
// are kept for a future retry. Individual restore failures are logged
// and skipped; rollback itself is best-effort.
func (p *Patcher) rollback(patched []string) {
	p.logger.Warn().Int("files", len(patched)).Msg("Rolling back failed apply")
	for _, rel := range patched {
		if err := p.restoreFile(rel, false); err != nil {
			p.logger.Error().Err(err).Str("path", rel).Msg("Failed to roll back file")
		}
	}
}
