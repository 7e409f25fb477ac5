package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"barescript/internal/config"
	"barescript/internal/fetch"
	"barescript/internal/library"
	"barescript/internal/logging"
)

var (
	Version   = "dev"
	BuildDate = "unknown"
	Commit    = "unknown"
)

// app holds the state shared by the commands of one invocation.
type app struct {
	configPath string
	logLevel   string
	logFile    string
	debug      bool

	cfg      config.Configuration
	closeLog func()
}

func newRootCmd() *cobra.Command {
	a := &app{closeLog: func() {}}

	rootCmd := &cobra.Command{
		Use:   "barescript",
		Short: "Call BareScript built-in functions",
		Long: `barescript calls BareScript built-in functions by name.

Arguments are JSON values; an argument that is not valid JSON is passed as a
string. Globals can be persisted between calls in a SQL database.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadConfig(cmd); err != nil {
				return err
			}
			a.closeLog = logging.Setup(a.cfg.Log.Level, a.cfg.Log.File)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.closeLog()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "TOML config file")
	flags.StringVar(&a.logLevel, "log-level", config.DefaultLogLevel, "Log level: debug, info, warn, error")
	flags.StringVar(&a.logFile, "log-file", "", "Log file path (if not set, logs to stderr)")
	flags.BoolVar(&a.debug, "debug", false, "Enable debug mode (systemLogDebug output, fetch failure logging)")

	rootCmd.AddCommand(a.callCmd(), a.listCmd(), versionCmd())
	return rootCmd
}

// loadConfig applies defaults, then the config file, then explicitly set
// flags.
func (a *app) loadConfig(cmd *cobra.Command) error {
	a.cfg = config.Default()
	a.cfg.Version, a.cfg.BuildDate, a.cfg.Commit = Version, BuildDate, Commit
	if a.configPath != "" {
		if err := config.Load(a.configPath, &a.cfg); err != nil {
			return err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		a.cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-file") {
		a.cfg.Log.File = a.logFile
	}
	if flags.Changed("debug") {
		a.cfg.Debug = a.debug
	}
	return nil
}

// options builds the built-in context for one call. Script log output goes
// to out.
func (a *app) options(ctx context.Context, out io.Writer) *library.Options {
	client := fetch.NewClient(a.cfg.RootPath, a.cfg.FetchTimeout.Duration)
	opts := &library.Options{
		FetchFn: client.Fetch,
		LogFn: func(message string) {
			fmt.Fprintln(out, message)
		},
		Debug:      a.cfg.Debug,
		FetchLimit: a.cfg.FetchLimit,
		Context:    ctx,
	}
	if a.cfg.URLBase != "" {
		opts.URLFn = fetch.RelativeURLFn(a.cfg.URLBase)
	}
	return opts
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "barescript version 'v%s' %s %s\n", Version, BuildDate, Commit)
		},
	}
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "barescript: %v\n", err)
		os.Exit(1)
	}
}
