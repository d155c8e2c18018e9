package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Gulur101/quran-toolkit/internal/api"
	"github.com/Gulur101/quran-toolkit/internal/progress"
	"github.com/Gulur101/quran-toolkit/internal/store"
	"github.com/Gulur101/quran-toolkit/internal/ui"
)

func (a *app) serveCommand() *cobra.Command {
	var addr, data, driver string
	var noWatch bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API over the participant store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				a.cfg.Server.Addr = addr
			}
			if data != "" {
				a.cfg.Storage.Path = data
			}
			if driver != "" {
				a.cfg.Storage.Driver = driver
			}
			if noWatch {
				a.cfg.Storage.Watch = false
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config, :5000)")
	cmd.Flags().StringVar(&data, "data", "", "Data file or database path")
	cmd.Flags().StringVar(&driver, "storage", "", "Storage driver: json or sqlite")
	cmd.Flags().BoolVar(&noWatch, "no-watch", false, "Do not reload the data file on external edits")
	return cmd
}

// serve runs the API, and the file watcher when enabled, until ctx ends.
func (a *app) serve(ctx context.Context) error {
	backend, err := progress.Open(a.cfg.Storage.Driver, a.cfg.Storage.Path)
	if err != nil {
		return err
	}
	defer backend.Close()

	a.logger.Info("Opening store",
		zap.String("driver", a.cfg.Storage.Driver),
		zap.String("path", a.cfg.Storage.Path))
	st := store.Open(ctx, backend, a.logger)

	srv := api.NewServer(st, a.logger,
		api.WithAllowedOrigins(a.cfg.Server.AllowedOrigins),
		api.WithShutdownTimeout(a.cfg.GetShutdownTimeout()))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(gctx, a.cfg.Server.Addr)
	})

	if a.cfg.Storage.Watch && a.cfg.Storage.Driver == progress.DriverJSON {
		w, err := store.NewWatcher(st, a.cfg.Storage.Path, a.logger)
		if err != nil {
			a.logger.Warn("File watcher disabled", zap.Error(err))
		} else {
			g.Go(func() error {
				return w.Run(gctx)
			})
		}
	}
	return g.Wait()
}

func (a *app) tuiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive tracker",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := a.client()
			ctx, cancel := a.requestContext(cmd)
			err := c.Health(ctx)
			cancel()
			if err != nil {
				return fmt.Errorf("tracker server not reachable at %s: %w", c.BaseURL, err)
			}

			model := ui.InitialModel(c)
			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("tui: %w", err)
			}
			return nil
		},
	}
}
