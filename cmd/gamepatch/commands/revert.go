package commands

import (
	"github.com/spf13/cobra"
)

func newRevertCmd(configDir *string) *cobra.Command {
	return &cobra.Command{
		Use:     "revert <game>",
		Short:   MsgRevertShort,
		Long:    MsgRevertLong,
		Args:    cobra.ExactArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newPatcher(*configDir, args[0], "")
			if err != nil {
				return err
			}

			result, err := p.Revert()
			if err != nil {
				return err
			}
			if result.EntriesProcessed == 0 {
				cmd.Println(MsgNoPatches)
				return nil
			}
			if len(result.Failed) > 0 {
				cmd.PrintErrf(MsgRevertFailures, len(result.Failed))
				for _, rel := range result.Failed {
					cmd.PrintErrf(MsgRevertFailItem, rel)
				}
			}
			cmd.Printf(MsgRevertSuccess, result.EntriesProcessed)
			return nil
		},
	}
}
