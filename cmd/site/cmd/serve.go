package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jakechampion/site/internal/config"
	"github.com/jakechampion/site/internal/routes"
	"github.com/jakechampion/site/internal/watch"
)

func ServeCmd() *cobra.Command {
	var (
		port    string
		noWatch bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a live preview of the site",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := setup(func(cfg *config.Config) {
				if port != "" {
					cfg.Port = port
				}
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			// Broken content should not stop the preview; fixing the file triggers a reload.
			err := a.Content.Reload(ctx)
			if err != nil {
				slog.Error("failed to load content", "error", err)
			}

			if !noWatch {
				w := watch.New(watch.DefaultDebounce, func(ctx context.Context) {
					err := a.Content.Reload(ctx)
					if err != nil {
						slog.Error("failed to reload content", "error", err)
						return
					}
					slog.Info("content reloaded", "posts", len(a.Content.Snapshot().Posts))
				}, a.Cfg.ContentPath)
				go func() {
					err := w.Run(ctx)
					if err != nil {
						slog.Error("file watcher stopped", "error", err)
					}
				}()
			}

			srv := &http.Server{
				Addr:              ":" + a.Cfg.Port,
				Handler:           routes.SetupRoutes(a),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				slog.Info("server starting", "port", a.Cfg.Port, "env", a.Cfg.AppEnv, "url", "http://localhost:"+a.Cfg.Port)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err = <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			slog.Info("server shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "port to listen on (defaults to PORT)")
	cmd.Flags().BoolVar(&noWatch, "no-watch", false, "do not reload when content changes")
	return cmd
}
