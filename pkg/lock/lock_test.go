package lock

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/arthur-debert/gamepatch/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backups", "testgame", "patcher.lock")

	guard, err := Acquire(path)
	require.NoError(t, err)
	defer func() { _ = guard.Release() }()

	_, err = os.Stat(path)
	assert.NoError(t, err, "lock file should exist on disk")
}

func TestSecondAcquireFailsFast(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patcher.lock")

	first, err := Acquire(path)
	require.NoError(t, err)
	defer func() { _ = first.Release() }()

	// flock locks are per open file description, so a second acquire in
	// the same process contends just like a second process would.
	second, err := Acquire(path)
	require.Error(t, err)
	assert.Nil(t, second)
	assert.True(t, errors.IsErrorCode(err, errors.ErrLockHeld))
}

func TestReleaseAllowsReacquire(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patcher.lock")

	guard, err := Acquire(path)
	require.NoError(t, err)
	require.NoError(t, guard.Release())

	again, err := Acquire(path)
	require.NoError(t, err)
	assert.NoError(t, again.Release())
}

func TestReleaseIdempotent(t *testing.T) {
	guard, err := Acquire(filepath.Join(t.TempDir(), "patcher.lock"))
	require.NoError(t, err)

	assert.NoError(t, guard.Release())
	assert.NoError(t, guard.Release())
}

func TestLockFileLeftInPlace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patcher.lock")

	guard, err := Acquire(path)
	require.NoError(t, err)
	require.NoError(t, guard.Release())

	// The marker file stays; its existence does not imply the lock is held.
	_, err = os.Stat(path)
	assert.NoError(t, err)

	again, err := Acquire(path)
	require.NoError(t, err)
	_ = again.Release()
}

func TestConcurrentAcquireExactlyOneWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patcher.lock")

	const attempts = 8
	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		held   []*Guard
		failed int
	)

	start := make(chan struct{})
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			guard, err := Acquire(path)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				assert.True(t, errors.IsErrorCode(err, errors.ErrLockHeld))
				failed++
				return
			}
			held = append(held, guard)
		}()
	}
	close(start)
	wg.Wait()

	require.Len(t, held, 1, "exactly one acquire should succeed")
	assert.Equal(t, attempts-1, failed)
	_ = held[0].Release()
}
