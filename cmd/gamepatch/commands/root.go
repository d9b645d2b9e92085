package commands

import (
	"fmt"

	"github.com/arthur-debert/gamepatch/internal/version"
	"github.com/arthur-debert/gamepatch/pkg/conflict"
	"github.com/arthur-debert/gamepatch/pkg/config"
	"github.com/arthur-debert/gamepatch/pkg/logging"
	"github.com/arthur-debert/gamepatch/pkg/patcher"
	"github.com/arthur-debert/gamepatch/pkg/paths"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		configDir string
	)

	rootCmd := &cobra.Command{
		Use:     "gamepatch",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", MsgFlagConfigDir)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})

	rootCmd.AddCommand(newApplyCmd(&configDir))
	rootCmd.AddCommand(newRevertCmd(&configDir))
	rootCmd.AddCommand(newStatusCmd(&configDir))
	rootCmd.AddCommand(newInitCmd(&configDir))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// newPatcher wires config loading, path resolution and the resolver
// for one game. onConflict is the --on-conflict flag value; empty
// means ask interactively.
func newPatcher(configDir, game, onConflict string) (*patcher.Patcher, error) {
	p := paths.New(configDir)

	cfg, err := config.Load(p.ConfigDir())
	if err != nil {
		return nil, err
	}
	gameCfg, err := cfg.Game(game)
	if err != nil {
		return nil, err
	}

	var resolver conflict.Resolver = conflict.Terminal{}
	if onConflict != "" {
		answer, err := conflict.ParseResolution(onConflict)
		if err != nil {
			return nil, err
		}
		resolver = conflict.Static{Answer: answer}
	}

	return patcher.New(game, gameCfg, p.PatchesDir(game), resolver), nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("gamepatch version %s\n", version.Version)
			cmd.Printf("  commit: %s\n", version.Commit)
			cmd.Printf("  built:  %s\n", version.Date)
		},
	}
}
