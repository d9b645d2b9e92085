package conflict

import (
	"os"

	"github.com/arthur-debert/gamepatch/pkg/errors"
	"github.com/arthur-debert/gamepatch/pkg/logging"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
)

// Prompt option labels, matched back to resolutions by prefix
const (
	optionAbort    = "abort (cancel patching)"
	optionRebackup = "re-backup (use current file as new baseline)"
	optionForce    = "force (overwrite, discard changes)"
)

// Terminal is a Resolver that asks the operator on the controlling
// terminal. It refuses to resolve when stdin is not a TTY so that a
// scripted run never falls into an implicit default.
type Terminal struct{}

// Resolve prompts for one of abort / re-backup / force
func (Terminal) Resolve(relativePath string) (Resolution, error) {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return ResolutionAbort, errors.Newf(errors.ErrConflictPrompt,
			"conflict on %s requires a resolution; rerun interactively or pass --on-conflict",
			relativePath)
	}

	logger := logging.GetLogger("conflict")
	logger.Info().
		Str("path", relativePath).
		Msg("Prompting for conflict resolution")

	pterm.Warning.Printfln("Conflict detected for %s: file has been modified since last patch", relativePath)

	choice, err := pterm.DefaultInteractiveSelect.
		WithOptions([]string{optionAbort, optionRebackup, optionForce}).
		Show("Resolve conflict")
	if err != nil {
		return ResolutionAbort, errors.Wrapf(err, errors.ErrConflictPrompt,
			"conflict prompt failed for %s", relativePath)
	}

	switch choice {
	case optionRebackup:
		return ResolutionRebackup, nil
	case optionForce:
		return ResolutionForce, nil
	default:
		return ResolutionAbort, nil
	}
}
