package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"sparkshelf/config"
	"sparkshelf/handlers"
	"sparkshelf/logger"
	"sparkshelf/projects"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the project list over HTTP",
		RunE:  runServe,
	}
}

// newHandler opens the configured source, runs the startup connection test
// and returns the site's router. A backend that is down at startup is only
// logged: the page shows its own error panel until it comes back.
func newHandler(ctx context.Context, settings *config.Settings) (http.Handler, func(), error) {
	src, closeSource, err := openSource(ctx, settings)
	if err != nil {
		return nil, nil, err
	}
	_ = projects.Check(ctx, src)
	return handlers.NewRouter(src, settings.Version), closeSource, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	settings, err := config.FromEnv()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	handler, closeSource, err := newHandler(ctx, settings)
	if err != nil {
		return err
	}
	defer closeSource()

	srv := &http.Server{
		Addr:              settings.Listen,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("Server listening on %s (%s backend)", settings.Listen, settings.Backend)
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

	logger.Infof("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("forced shutdown: %v", err)
	}
	if err, ok := <-errCh; ok && err != nil {
		return err
	}
	logger.Infof("server stopped")
	return nil
}
