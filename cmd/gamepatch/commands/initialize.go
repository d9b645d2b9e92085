package commands

import (
	"os"

	"github.com/arthur-debert/gamepatch/pkg/config"
	"github.com/arthur-debert/gamepatch/pkg/errors"
	"github.com/arthur-debert/gamepatch/pkg/paths"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newInitCmd(configDir *string) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "init",
		Short:   MsgInitShort,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := paths.New(*configDir).ConfigDir()

			if config.TemplateExists(dir) && !force {
				cmd.Printf(MsgInitExists+"\n", dir)
				if !isatty.IsTerminal(os.Stdin.Fd()) {
					return errors.Newf(errors.ErrConfigInvalid,
						"config.json already exists at %s; pass --force to overwrite", dir)
				}
				overwrite, err := pterm.DefaultInteractiveConfirm.Show("Overwrite existing config?")
				if err != nil {
					return errors.Wrap(err, errors.ErrConflictPrompt, "overwrite prompt failed")
				}
				if !overwrite {
					cmd.Println(MsgInitCancelled)
					return nil
				}
			}

			if err := config.WriteTemplate(dir); err != nil {
				return err
			}
			cmd.Printf(MsgInitSuccess, dir)
			cmd.Print(MsgInitEditHint)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForceInit)
	return cmd
}
