// Package patcher is the overlay engine: it decides, for each
// candidate file, whether to back the target up, reuse an existing
// backup, treat it as a conflict or create it fresh, and it owns the
// transactional apply / best-effort revert semantics that make
// repeated invocations safe.
//
// Apply is atomic-or-rolled-back: a mid-run failure restores every
// file patched so far (keeping the backups for a retry) and re-saves
// the pre-apply state. Revert is best-effort per file so a single bad
// path cannot strand the other originals. Status is read-only and
// lock-free.
package patcher
