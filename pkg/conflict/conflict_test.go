package conflict

import (
	"testing"

	"github.com/arthur-debert/gamepatch/pkg/errors"
	"github.com/arthur-debert/gamepatch/pkg/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	tracked := &state.PatchedFile{
		RelativePath:    "a.txt",
		PatchedChecksum: "abc123",
	}

	assert.False(t, Detect("abc123", tracked), "matching checksum is clean")
	assert.True(t, Detect("fff000", tracked), "diverged checksum is a conflict")
	assert.False(t, Detect("fff000", nil), "untracked files never conflict")
}

func TestParseResolution(t *testing.T) {
	tests := []struct {
		in   string
		want Resolution
	}{
		{"abort", ResolutionAbort},
		{"force", ResolutionForce},
		{"re-backup", ResolutionRebackup},
		{"rebackup", ResolutionRebackup},
	}
	for _, tt := range tests {
		got, err := ParseResolution(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseResolutionInvalid(t *testing.T) {
	_, err := ParseResolution("yolo")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConflictPrompt))
}

func TestResolutionString(t *testing.T) {
	assert.Equal(t, "abort", ResolutionAbort.String())
	assert.Equal(t, "force", ResolutionForce.String())
	assert.Equal(t, "re-backup", ResolutionRebackup.String())
}

func TestStaticResolver(t *testing.T) {
	var r Resolver = Static{Answer: ResolutionRebackup}

	got, err := r.Resolve("any/path.txt")
	require.NoError(t, err)
	assert.Equal(t, ResolutionRebackup, got)
}

func TestTerminalRefusesWithoutTTY(t *testing.T) {
	// Test processes have no controlling terminal on stdin, so the
	// interactive resolver must refuse rather than default.
	var r Resolver = Terminal{}

	_, err := r.Resolve("data/config.ini")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConflictPrompt))
	assert.Contains(t, err.Error(), "data/config.ini")
}
