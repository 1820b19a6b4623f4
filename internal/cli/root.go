// Package cli is the studio command tree: the terminal wizard, the HTTP API, the fixture
// federation and one-shot rendering.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/club-studio/internal/config"
	"github.com/preston-bernstein/club-studio/internal/logging"
)

const serviceName = "club-studio"

type rootFlags struct {
	logLevel      string
	logFormat     string
	logFile       string
	federationURL string
}

// app carries what every sub-command shares. cfg is loaded once the command line is parsed.
type app struct {
	version string
	flags   rootFlags
	cfg     config.Config
}

// NewRootCommand builds the studio command tree.
func NewRootCommand(version string) *cobra.Command {
	a := &app{version: version}

	root := &cobra.Command{
		Use:           "studio",
		Short:         "Compose club branding templates from federation schedules",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.load()
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&a.flags.logFormat, "log-format", "", "log format: text or json")
	pf.StringVar(&a.flags.logFile, "log-file", "", "write logs to a rotating file")
	pf.StringVar(&a.flags.federationURL, "federation-url", "", `federation base URL, or "fixture" for seeded data`)

	root.AddCommand(
		newTUICommand(a),
		newServeCommand(a),
		newFixturesCommand(a),
		newRenderCommand(a),
		newVersionCommand(a),
	)
	return root
}

// Execute runs the command tree under ctx and reports the first error on stderr.
func Execute(ctx context.Context, version string, args []string) error {
	root := NewRootCommand(version)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
	}
	return err
}

// load reads the environment and applies flag overrides.
func (a *app) load() {
	a.cfg = config.Load()
	if a.flags.logLevel != "" {
		a.cfg.Log.Level = a.flags.logLevel
	}
	if a.flags.logFormat != "" {
		a.cfg.Log.Format = a.flags.logFormat
	}
	if a.flags.logFile != "" {
		a.cfg.Log.File = a.flags.logFile
	}
	if a.flags.federationURL != "" {
		a.cfg.Federation.BaseURL = a.flags.federationURL
	}
}

// logger builds the process logger. fallbackFile is used when no log file is configured;
// the TUI passes one because stdout belongs to the screen.
func (a *app) logger(fallbackFile string) *slog.Logger {
	file := a.cfg.Log.File
	if file == "" {
		file = fallbackFile
	}
	return logging.NewLogger(logging.Config{
		Level:   a.cfg.Log.Level,
		Format:  a.cfg.Log.Format,
		Service: serviceName,
		Version: a.version,
		File:    file,
	})
}

func newVersionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the studio version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", serviceName, a.version)
		},
	}
}
