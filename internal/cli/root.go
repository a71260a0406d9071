// Package cli implements the herodex command-line interface.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/herodex/internal/heroes"
	"github.com/mesh-intelligence/herodex/internal/loading"
	"github.com/mesh-intelligence/herodex/internal/paths"
	"github.com/mesh-intelligence/herodex/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	backend   string
	latency   time.Duration
	jsonMode  bool
}

// app is the state shared by the commands of one invocation.
type app struct {
	flags     rootFlags
	configDir string
	v         *viper.Viper
	cfg       types.Config
	logger    *slog.Logger
}

// NewRootCmd creates the top-level "herodex" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{cfg: types.DefaultConfig()}

	root := &cobra.Command{
		Use:     "herodex",
		Short:   "Browse and edit a catalogue of superheroes",
		Long:    "Herodex keeps a small catalogue of superheroes in memory.\nEvery invocation starts from the sample heroes; changes are not saved.",
		Version: Version,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch cmd.Name() {
			case "version", "help", "init":
				return nil
			}
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/herodex)")
	pf.StringVar(&a.flags.backend, "backend", types.DefaultBackend, "storage backend (memory, sqlite)")
	pf.DurationVar(&a.flags.latency, "latency", types.DefaultLatency, "simulated latency of remote operations")
	pf.BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(
		newVersionCmd(),
		newInitCmd(a),
		newListCmd(a),
		newSearchCmd(a),
		newGetCmd(a),
		newAddCmd(a),
		newUpdateCmd(a),
		newDeleteCmd(a),
		newTUICmd(a),
	)
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
	case errors.Is(err, types.ErrOperationFailed), errors.Is(err, errConfig):
		return exitSysError
	default:
		return exitUserError
	}
}

// setup resolves the config directory, loads configuration and builds the
// logger.
func (a *app) setup(cmd *cobra.Command) error {
	dir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return fmt.Errorf("%w: resolve config dir: %w", errConfig, err)
	}
	a.configDir = dir

	v, err := loadConfig(dir)
	if err != nil {
		return fmt.Errorf("%w: %w", errConfig, err)
	}
	if err := bindFlags(v, cmd.Root()); err != nil {
		return fmt.Errorf("%w: %w", errConfig, err)
	}
	a.v = v

	cfg, err := decodeConfig(v)
	if err != nil {
		return fmt.Errorf("%w: %w", errConfig, err)
	}
	a.cfg = cfg
	a.logger = newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	a.logger.Debug("configuration loaded", "dir", dir, "backend", cfg.Backend, "latency", cfg.Latency)
	return nil
}

// openStore creates a freshly seeded store and the coordinator it reports to.
func (a *app) openStore() (*heroes.Store, *loading.Coordinator, error) {
	coord := loading.New(loading.WithLogger(a.logger))
	s, err := heroes.Open(a.cfg, coord, heroes.WithLogger(a.logger))
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	return s, coord, nil
}
