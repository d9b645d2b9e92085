// Package lock prevents concurrent patch operations on one game using
// advisory file locks.
//
// Apply and revert take an exclusive non-blocking flock on
// <backup_root>/patcher.lock before touching state or files; a second
// concurrent invocation fails fast with a lock-held error rather than
// queuing. Status never locks and may observe a transient mid-apply
// view, which is an accepted race.
//
// The lock is advisory: nothing stops an uncooperative process from
// writing to the target tree. Existence of the lock file does not mean
// the lock is held; only the flock does.
package lock
