package commands

import (
	"github.com/arthur-debert/gamepatch/pkg/patcher"
	"github.com/arthur-debert/gamepatch/pkg/style"
	"github.com/spf13/cobra"
)

func newStatusCmd(configDir *string) *cobra.Command {
	return &cobra.Command{
		Use:     "status <game>",
		Short:   MsgStatusShort,
		Long:    MsgStatusLong,
		Args:    cobra.ExactArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newPatcher(*configDir, args[0], "")
			if err != nil {
				return err
			}

			report, err := p.Status()
			if err != nil {
				return err
			}
			if report.Empty() {
				cmd.Println(MsgNoPatches)
				return nil
			}

			cmd.Printf(MsgStatusHeader, args[0])
			for _, file := range report.Files {
				cmd.Println(style.RenderFileStatus(statusLabel(file.State), file.RelativePath))
			}
			cmd.Println()
			cmd.Println(style.RenderSummary(report.Clean, report.Modified, report.Missing))
			return nil
		},
	}
}

// statusLabel maps an engine file state to its display label. Clean is
// lowercase; the states needing attention shout.
func statusLabel(s patcher.FileState) string {
	switch s {
	case patcher.StateModified:
		return style.LabelModified
	case patcher.StateMissing:
		return style.LabelMissing
	default:
		return style.LabelClean
	}
}
