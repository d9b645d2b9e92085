package commands

import (
	"github.com/spf13/cobra"
)

func newApplyCmd(configDir *string) *cobra.Command {
	var onConflict string

	cmd := &cobra.Command{
		Use:     "apply <game>",
		Short:   MsgApplyShort,
		Long:    MsgApplyLong,
		Args:    cobra.ExactArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newPatcher(*configDir, args[0], onConflict)
			if err != nil {
				return err
			}

			result, err := p.Apply()
			if err != nil {
				return err
			}
			if result.Aborted {
				cmd.Println(MsgApplyAborted)
				return nil
			}
			if result.FilesPatched == 0 {
				cmd.Printf(MsgApplyNoFiles, args[0])
				return nil
			}
			cmd.Printf(MsgApplySuccess, result.FilesPatched)
			return nil
		},
	}

	cmd.Flags().StringVar(&onConflict, "on-conflict", "", MsgFlagOnConflict)
	return cmd
}
