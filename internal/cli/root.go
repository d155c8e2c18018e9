// Package cli wires the tracker's commands together.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Gulur101/quran-toolkit/internal/client"
	"github.com/Gulur101/quran-toolkit/internal/config"
	"github.com/Gulur101/quran-toolkit/internal/logging"
)

// app carries what the persistent flags and pre-run resolve.
type app struct {
	configPath string
	verbose    bool
	serverURL  string

	cfg    *config.Config
	logger *zap.Logger
}

// NewRootCommand builds the full command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "tracker",
		Short: "Track a group's Quran reading across the 604-page mushaf",
		Long: `tracker keeps a shared list of readers and the page each one has reached.
It serves that list over HTTP, and the other commands talk to a running server.
"lookup" and "surahs" work offline.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.preRun,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Config file (YAML)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	root.PersistentFlags().StringVar(&a.serverURL, "server", "", "Tracker server URL (overrides config)")

	root.AddCommand(
		a.serveCommand(),
		a.tuiCommand(),
		a.listCommand(),
		a.addCommand(),
		a.setPageCommand(),
		a.renameCommand(),
		a.removeCommand(),
		a.reportCommand(),
		a.lookupCommand(),
		a.surahsCommand(),
		a.configCommand(),
	)
	return root
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

func (a *app) preRun(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.serverURL != "" {
		cfg.Client.ServerURL = a.serverURL
	}
	a.cfg = cfg

	// The TUI owns the terminal; log to the configured file only.
	quiet := cmd.Name() == "tui"
	logger, err := logging.New(cfg.Logging, logging.Options{Verbose: a.verbose, Quiet: quiet})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger
	return nil
}

func (a *app) client() *client.Client {
	return client.New(a.cfg.Client.ServerURL, a.cfg.GetClientTimeout())
}

func (a *app) requestContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), a.cfg.GetClientTimeout())
}
