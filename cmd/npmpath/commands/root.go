package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/npmpath/internal/version"
	"github.com/arthur-debert/npmpath/pkg/config"
	"github.com/arthur-debert/npmpath/pkg/environment"
	"github.com/arthur-debert/npmpath/pkg/filesystem"
	"github.com/arthur-debert/npmpath/pkg/logging"
	"github.com/arthur-debert/npmpath/pkg/npmpath"
	"github.com/arthur-debert/npmpath/pkg/paths"
	"github.com/arthur-debert/npmpath/pkg/types"
)

// Options replaces the process-level dependencies of the CLI. Zero values
// mean the real thing.
type Options struct {
	Env        types.Environment
	FS         types.FS
	Executable func() (string, error)
	Getwd      func() (string, error)
}

// app holds the state shared by every command of one invocation
type app struct {
	opts       Options
	verbosity  int
	cwd        string
	configFile string
	overrides  []string

	paths  paths.Paths
	cfg    *config.Config
	logger zerolog.Logger
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithOptions(Options{})
}

// NewRootCmdWithOptions creates the root command over injected dependencies
func NewRootCmdWithOptions(opts Options) *cobra.Command {
	if opts.Env == nil {
		opts.Env = environment.OS()
	}
	if opts.FS == nil {
		opts.FS = filesystem.NewOS()
	}
	a := &app{opts: opts, logger: zerolog.Nop()}

	rootCmd := &cobra.Command{
		Use:     "npmpath",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.composer(a.opts.Env).ComputeSync(a.options())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringVar(&a.cwd, "cwd", "", MsgFlagCwd)
	flags.StringVar(&a.configFile, "config", "", MsgFlagConfig)
	flags.StringArrayVar(&a.overrides, "set", nil, MsgFlagSet)
	flags.String("npm", "", MsgFlagNpm)
	flags.String("marker-dir", "node_modules", MsgFlagMarkerDir)
	flags.String("bin-dir", ".bin", MsgFlagBinDir)

	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newExecCmd(a))
	rootCmd.AddCommand(newShellCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	if err := installHelpTopics(rootCmd); err != nil {
		logger := logging.GetLogger("cmd")
		logger.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// setup configures logging and loads the layered configuration
func (a *app) setup(cmd *cobra.Command) error {
	logging.SetupLoggerWithOutput(a.verbosity, cmd.ErrOrStderr())
	a.logger = logging.GetLogger("cmd." + cmd.Name())
	a.logger.Debug().Str("command", cmd.CommandPath()).Msg("Command started")

	p, err := paths.New()
	if err != nil {
		return err
	}
	a.paths = p

	if a.configFile == "" {
		a.configFile = p.ConfigFilePath()
	}
	a.configFile = paths.ExpandHome(a.configFile)

	overrides, err := config.ParseOverrides(a.overrides)
	if err != nil {
		return err
	}

	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: a.configFile,
		Flags:      cmd.Flags(),
		Overrides:  overrides,
	})
	if err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

// composer builds a composer reading and writing env
func (a *app) composer(env types.Environment) *npmpath.Composer {
	opts := []npmpath.ComposerOption{
		npmpath.WithFS(a.opts.FS),
		npmpath.WithEnvironment(env),
		npmpath.WithConfig(a.cfg),
		npmpath.WithLogger(logging.GetLogger("npmpath")),
	}
	if a.opts.Executable != nil {
		opts = append(opts, npmpath.WithExecutable(a.opts.Executable))
	}
	if a.opts.Getwd != nil {
		opts = append(opts, npmpath.WithGetwd(a.opts.Getwd))
	}
	return npmpath.New(opts...)
}

func (a *app) options() npmpath.Options {
	return npmpath.Options{Cwd: paths.ExpandHome(a.cwd)}
}
