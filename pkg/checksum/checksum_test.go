package checksum

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/gamepatch/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileKnownDigest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hello.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	sum, err := File(path)
	require.NoError(t, err)

	// sha256("hello")
	assert.Equal(t, "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824", sum)
}

func TestFileDeterministic(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.bin")
	b := filepath.Join(dir, "sub", "b.bin")
	require.NoError(t, os.WriteFile(a, []byte("same content"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Dir(b), 0o755))
	require.NoError(t, os.WriteFile(b, []byte("same content"), 0o600))

	sumA, err := File(a)
	require.NoError(t, err)
	sumB, err := File(b)
	require.NoError(t, err)

	assert.Equal(t, sumA, sumB, "identical bytes must fingerprint identically regardless of path or mode")
}

func TestFileDiffersOnContent(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	require.NoError(t, os.WriteFile(a, []byte("one"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("two"), 0o644))

	sumA, _ := File(a)
	sumB, _ := File(b)
	assert.NotEqual(t, sumA, sumB)
}

func TestFileLargerThanChunk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.bin")
	content := make([]byte, chunkSize*3+17)
	for i := range content {
		content[i] = byte(i % 251)
	}
	require.NoError(t, os.WriteFile(path, content, 0o644))

	sum, err := File(path)
	require.NoError(t, err)
	assert.Equal(t, Bytes(content), sum)
}

func TestFileMissing(t *testing.T) {
	_, err := File(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))
}

func TestBytesMatchesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.txt")
	require.NoError(t, os.WriteFile(path, []byte("orig"), 0o644))

	sum, err := File(path)
	require.NoError(t, err)
	assert.Equal(t, Bytes([]byte("orig")), sum)
}
