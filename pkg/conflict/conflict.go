// Package conflict classifies externally modified target files and
// decides how an apply should proceed.
//
// A conflict exists when a tracked file's live checksum no longer
// matches the checksum recorded at the last apply: something other
// than the patcher wrote to it. Resolution is always explicit; there
// is no default. The Resolver interface lets the CLI inject an
// interactive prompt while tests and scripts inject a fixed answer.
package conflict

import (
	"github.com/arthur-debert/gamepatch/pkg/errors"
	"github.com/arthur-debert/gamepatch/pkg/state"
)

// Resolution is the operator's answer to a detected conflict
type Resolution int

const (
	// ResolutionAbort cancels the entire apply with zero side effects
	ResolutionAbort Resolution = iota

	// ResolutionForce discards the modified content; no backup is taken
	// and the external modification is permanently lost
	ResolutionForce

	// ResolutionRebackup adopts the current on-disk content as the new
	// original baseline, overwriting any existing backup
	ResolutionRebackup
)

// String returns the CLI spelling of a resolution
func (r Resolution) String() string {
	switch r {
	case ResolutionAbort:
		return "abort"
	case ResolutionForce:
		return "force"
	case ResolutionRebackup:
		return "re-backup"
	default:
		return "unknown"
	}
}

// ParseResolution maps a CLI flag value to a Resolution
func ParseResolution(s string) (Resolution, error) {
	switch s {
	case "abort":
		return ResolutionAbort, nil
	case "force":
		return ResolutionForce, nil
	case "re-backup", "rebackup":
		return ResolutionRebackup, nil
	default:
		return ResolutionAbort, errors.Newf(errors.ErrConflictPrompt,
			"invalid conflict resolution %q (want abort, force or re-backup)", s)
	}
}

// Resolver decides what to do about a conflicted file during apply
type Resolver interface {
	// Resolve returns the resolution for the conflicted relative path.
	// It may block on operator input.
	Resolve(relativePath string) (Resolution, error)
}

// Static is a pre-resolved Resolver for non-interactive use: scripted
// applies (--on-conflict) and tests.
type Static struct {
	Answer Resolution
}

// Resolve returns the fixed answer
func (s Static) Resolve(string) (Resolution, error) {
	return s.Answer, nil
}

// Detect reports whether a tracked file conflicts with its live
// content. An untracked path never conflicts (it simply needs a
// backup), and the caller handles an absent target file before
// hashing it.
func Detect(liveChecksum string, tracked *state.PatchedFile) bool {
	if tracked == nil {
		return false
	}
	return liveChecksum != tracked.PatchedChecksum
}
