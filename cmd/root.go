package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/hustlecli/hustle/pkg/catalog"
	"github.com/hustlecli/hustle/pkg/config"
	"github.com/hustlecli/hustle/pkg/docker"
	"github.com/hustlecli/hustle/pkg/engine"
	"github.com/hustlecli/hustle/pkg/envfile"
	"github.com/hustlecli/hustle/pkg/resolver"
)

var (
	flagVerbose   bool
	flagDaemonize bool
	flagEnv       string
	flagNoLinks   bool
	flagLink      string
	flagForce     bool
	flagPorts     string
	flagService   string
)

var rootCmd = &cobra.Command{
	Use:   "hustle [verb]",
	Short: "Drive a single dev container with short verbs",
	Long: `Hustle maps developer verbs (start, stop, build, restart, pristine,
run, shell, debug) onto container-engine invocations for one named dev
container, remembering the generated container name in .env.

When a docker-compose.yaml is present in the working directory, start, stop
and build go through compose instead of the engine directly.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return forwardVerb(cmd, args)
	},
}

// Execute runs the CLI. A failed engine command exits with that command's
// status; every other error exits 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		var exitErr *engine.ExitError
		if errors.As(err, &exitErr) && exitErr.Status > 0 {
			os.Exit(exitErr.Status)
		}
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Log every engine command before running it")
	pf.BoolVarP(&flagDaemonize, "daemonize", "d", false, "Run the container in the background")
	pf.StringVarP(&flagEnv, "env", "e", config.EnvDevelopment, "Target environment (development or production)")
	pf.BoolVar(&flagNoLinks, "no-links", false, "Disable the default volume mount")
	pf.StringVarP(&flagLink, "link", "l", "", "Volume mount src:dst replacing the default")
	pf.BoolVarP(&flagForce, "force", "f", false, "Overwrite an existing .env on new")
	pf.StringVarP(&flagPorts, "ports", "p", config.DefaultPorts, "Port mapping ext:int")
	pf.StringVarP(&flagService, "service", "s", "", "Target a named service container")
}

// invocationConfig snapshots the parsed flags into the immutable value the
// rest of the program receives. Nothing below the cmd layer reads flag state.
func invocationConfig() config.Config {
	cfg := config.Default()
	cfg.Verbose = flagVerbose
	cfg.Daemonize = flagDaemonize
	cfg.Environment = flagEnv
	cfg.NoLinks = flagNoLinks
	cfg.Link = flagLink
	cfg.Force = flagForce
	cfg.Ports = flagPorts
	cfg.Service = flagService
	return cfg
}

func newLogger(cfg config.Config) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
	if cfg.Verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// newEngine wires an engine for a verb targeting an existing container: the
// identity is resolved exactly once here and threaded down as a value.
func newEngine() (*engine.Engine, error) {
	cfg := invocationConfig()
	logger := newLogger(cfg)

	client, err := docker.NewClient(logger)
	if err != nil {
		return nil, err
	}

	identity, err := resolver.Resolve(cfg, config.LoadRC(), envfile.DefaultPath)
	if err != nil {
		return nil, err
	}

	return engine.New(cfg, catalog.DetectMode("."), identity, client, logger), nil
}

// newUnresolvedEngine wires an engine for "new", which generates and
// persists its own identity instead of resolving one.
func newUnresolvedEngine() (*engine.Engine, error) {
	cfg := invocationConfig()
	logger := newLogger(cfg)

	client, err := docker.NewClient(logger)
	if err != nil {
		return nil, err
	}

	return engine.New(cfg, catalog.DetectMode("."), "", client, logger), nil
}

// forwardVerb handles verbs with no subcommand of their own: anything
// matching the run-alias allow-list is forwarded as "run <verb> <args...>";
// everything else is an unrecognized command and exits 1.
func forwardVerb(cmd *cobra.Command, args []string) error {
	verb := args[0]
	rc := config.LoadRC()

	if rc.RunAliasPattern().MatchString(verb) {
		eng, err := newEngine()
		if err != nil {
			return err
		}
		return eng.Run(args)
	}

	cfg := invocationConfig()
	fmt.Fprintf(os.Stderr, "hustle: unrecognized command %q\n\n", verb)
	fmt.Fprintf(os.Stderr, "Forward a command into the container with:\n  hustle run <command> [args...]\n")
	fmt.Fprintf(os.Stderr, "Run aliases: %s\n", strings.Join(rc.RunAliases(), ", "))
	fmt.Fprintf(os.Stderr, "Current config: %+v\n\n", cfg)
	_ = cmd.Usage()
	return fmt.Errorf("unrecognized command %q", verb)
}
