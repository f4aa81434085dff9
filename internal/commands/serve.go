package commands

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/3-lines-studio/landing/internal/config"
)

func newServeCommand(s *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the landing page",
		Long: `serve renders the page on every request and serves the assets it
references. With --dev, render errors are shown in the browser and the
content is reloaded when files in the site directory change.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return s.serve(ctx)
		},
	}

	cmd.Flags().String("addr", config.DefaultAddr, "address to listen on")

	return cmd
}

func (s *state) serve(ctx context.Context) error {
	app, err := s.app()
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:           s.cfg.Addr,
		Handler:        app.Handler(),
		ReadTimeout:    config.ServerReadTimeout,
		WriteTimeout:   config.ServerWriteTimeout,
		IdleTimeout:    config.ServerIdleTimeout,
		MaxHeaderBytes: config.ServerMaxHeaderBytes,
	}

	if app.IsDev() {
		go func() {
			if err := app.Watch(ctx); err != nil {
				s.logger.Warn("content reload disabled", zap.Error(err))
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening",
			zap.String("addr", s.cfg.Addr),
			zap.String("siteDir", s.cfg.SiteDir),
			zap.Bool("dev", app.IsDev()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("initiating graceful shutdown", zap.Duration("timeout", config.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	s.logger.Info("server stopped gracefully")
	return nil
}
