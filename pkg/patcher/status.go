package patcher

import (
	"github.com/arthur-debert/gamepatch/pkg/checksum"
)

// FileState classifies one tracked file against its recorded patched
// checksum.
type FileState string

const (
	// StateClean means the target file matches what the last apply wrote
	StateClean FileState = "clean"

	// StateModified means something else wrote to the target file since
	StateModified FileState = "modified"

	// StateMissing means the target file is gone
	StateMissing FileState = "missing"
)

// FileStatus is the classification of one tracked file
type FileStatus struct {
	RelativePath string
	State        FileState
}

// StatusReport aggregates the classification of every tracked file
type StatusReport struct {
	Files    []FileStatus
	Clean    int
	Modified int
	Missing  int
}

// Empty reports whether there is no tracked state at all
func (r *StatusReport) Empty() bool {
	return len(r.Files) == 0
}

// Status classifies every tracked file. It takes no lock and mutates
// nothing; run concurrently with an apply it may report a transient
// mid-apply view, which is accepted.
func (p *Patcher) Status() (*StatusReport, error) {
	current, err := p.store.Load()
	if err != nil {
		return nil, err
	}

	report := &StatusReport{Files: make([]FileStatus, 0, len(current))}
	for _, rel := range sortedPaths(current) {
		entry := current[rel]
		targetPath := p.targetPath(rel)

		var fileState FileState
		switch {
		case !fileExists(targetPath):
			fileState = StateMissing
			report.Missing++
		default:
			live, err := checksum.File(targetPath)
			if err != nil {
				return nil, err
			}
			if live == entry.PatchedChecksum {
				fileState = StateClean
				report.Clean++
			} else {
				fileState = StateModified
				report.Modified++
			}
		}

		report.Files = append(report.Files, FileStatus{RelativePath: rel, State: fileState})
	}

	return report, nil
}
