package lock

import (
	"os"
	"path/filepath"
	"syscall"

	gperrors "github.com/arthur-debert/gamepatch/pkg/errors"
)

// Guard holds an exclusive advisory lock for one game's backup root.
// Only the flock implies the lock is held; the lock file itself is a
// zero-length marker and is left in place on release.
type Guard struct {
	path string
	file *os.File
}

// Acquire creates the lock file (and its parent directories) and takes
// a non-blocking exclusive lock on it. If another process holds the
// lock it fails immediately with LOCK_HELD; it never waits or retries.
func Acquire(path string) (*Guard, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, gperrors.Wrapf(err, gperrors.ErrFileAccess, "failed to create lock directory for %s", path)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, gperrors.Wrapf(err, gperrors.ErrFileAccess, "failed to open lock file %s", path)
	}

	if err := syscall.Flock(int(file.Fd()), syscall.LOCK_EX|syscall.LOCK_NB); err != nil {
		_ = file.Close()

		// Checking either EWOULDBLOCK or EAGAIN: older Unix systems used
		// distinct codes, portable programs treat them the same.
		if err == syscall.EWOULDBLOCK || err == syscall.EAGAIN {
			return nil, gperrors.New(gperrors.ErrLockHeld,
				"another patcher operation is in progress for this game").
				WithDetail("lockFile", path)
		}
		return nil, gperrors.Wrapf(err, gperrors.ErrFileAccess, "failed to lock %s", path)
	}

	return &Guard{path: path, file: file}, nil
}

// Path returns the lock file path
func (g *Guard) Path() string {
	return g.path
}

// Release drops the lock and closes the lock file. It is safe to call
// more than once; callers defer it so it runs on every exit path.
func (g *Guard) Release() error {
	if g.file == nil {
		return nil
	}

	var err error
	if flockErr := syscall.Flock(int(g.file.Fd()), syscall.LOCK_UN); flockErr != nil {
		err = gperrors.Wrapf(flockErr, gperrors.ErrFileAccess, "failed to release lock %s", g.path)
	}

	if closeErr := g.file.Close(); closeErr != nil && err == nil {
		err = gperrors.Wrapf(closeErr, gperrors.ErrFileAccess, "failed to close lock file %s", g.path)
	}

	g.file = nil
	return err
}
