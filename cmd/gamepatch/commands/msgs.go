package commands

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort    = "Manage file overlays for game modifications"
	MsgApplyShort   = "Apply patches to a game"
	MsgRevertShort  = "Revert all patches for a game"
	MsgStatusShort  = "Show patch status for a game"
	MsgInitShort    = "Create a template config.json and patches directory"
	MsgVersionShort = "Print version information"

	// Status messages
	MsgApplySuccess    = "Successfully patched %d file(s)\n"
	MsgApplyNoFiles    = "No patch files found in %s\n"
	MsgApplyAborted    = "Patching aborted."
	MsgRevertSuccess   = "Reverted %d file(s)\n"
	MsgRevertFailures  = "Warning: %d file(s) could not be reverted:\n"
	MsgRevertFailItem  = "  %s\n"
	MsgNoPatches       = "No patches applied"
	MsgStatusHeader    = "\nPatched files for %s:\n\n"
	MsgInitSuccess     = "Successfully initialized gamepatch config at %s\n"
	MsgInitExists      = "Config file already exists at %s"
	MsgInitCancelled   = "Initialization cancelled."
	MsgInitEditHint    = "Edit config.json to add your games, then drop patch files under patches/<game>/\n"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfigDir  = "Directory containing config.json and patches/ (default: $XDG_CONFIG_HOME/gamepatch)"
	MsgFlagOnConflict = "Pre-resolved answer for conflicts: abort, force or re-backup (default: ask)"
	MsgFlagForceInit  = "Overwrite an existing config.json without asking"
)

// Long messages (multi-line)
const (
	MsgRootLong = `gamepatch overlays patch files onto a game's directory tree while
remembering enough per-file state to reverse the overlay exactly, even
across repeated applications and interrupted runs.

Patches for a game live under <config-dir>/patches/<game>/ and mirror
the target tree. Originals are backed up under the game's backup
directory so 'revert' restores the exact pre-patch content.`

	MsgApplyLong = `Apply overlays every file under patches/<game>/ onto the game's target
directory. Files that already exist are backed up first; repeated
applies keep the original backup as the restore baseline. If a patched
file was modified outside gamepatch, apply asks whether to abort,
force-overwrite or adopt the modified content as the new baseline.

The run is atomic: a mid-run failure rolls every file of the run back
and leaves state untouched.`

	MsgRevertLong = `Revert restores every tracked file from its backup (or deletes files
that did not exist before patching), then removes the state file and
prunes empty backup directories. Restores are best-effort per file: a
single failed path is reported and skipped.`

	MsgStatusLong = `Status classifies every tracked file as clean (matches the applied
patch), modified (changed since the patch was applied) or missing
(deleted from the target). It takes no lock and never modifies
anything.`
)
