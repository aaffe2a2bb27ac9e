// Package cli implements the lamps command-line interface.
package cli

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lamps"
	"github.com/mesh-intelligence/lamps/internal/demo"
	"github.com/mesh-intelligence/lamps/internal/logging"
	"github.com/mesh-intelligence/lamps/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// errSystem marks failures of the host rather than of the user's input.
var errSystem = errors.New("system error")

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	delay     time.Duration
	entry     string
	logLevel  string
	plan      bool
}

var flags rootFlags

// NewRootCmd creates the top-level "lamps" command. Run without arguments it
// plays the lamp chain scenario.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "lamps",
		Short: "Ripple a switch symmetrically along a chain of lamps",
		Long: "lamps builds a chain of linked lamps, switches them all on starting\n" +
			"from the entry lamp and spreading outward to both ends, then switches\n" +
			"them all off the same way.\n\n" +
			"Settings come from config.yaml, LAMPS_* environment variables, and flags.\n" +
			"LAMPS_LAMPS takes a comma-separated list, e.g. \"Lamp A, Lamp B\".",
		Version: lamps.Version,
		Args:    cobra.NoArgs,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
		RunE:         runScenario,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/lamps)")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", types.LogLevelInfo, "log level: debug, info, warn, error")
	root.Flags().DurationVar(&flags.delay, "delay", types.DefaultDelay, "pause after each lamp switches")
	root.Flags().StringVar(&flags.entry, "entry", "", "lamp to start the ripple from (default: last lamp)")
	root.Flags().BoolVar(&flags.plan, "plan", false, "print the ripple levels before switching")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitSuccess
	case errors.Is(err, errSystem):
		return exitSysError
	default:
		return exitUserError
	}
}

func runScenario(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log := logging.New(cmd.ErrOrStderr(), level)

	r := demo.New(cfg, cmd.OutOrStdout(), log)
	r.ShowPlan = flags.plan
	_, err = r.Run()
	return err
}
