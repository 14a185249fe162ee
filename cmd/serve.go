package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/zap"

	config "taskphoto.com/taskphoto/internal/configs"
	httpapi "taskphoto.com/taskphoto/internal/http"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the task HTTP API and the notification workers",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := fx.New(
			coreModule,
			fx.Provide(
				httpapi.NewHandler,
				newEcho,
			),
			fx.Invoke(serverLifecycle),
		)
		if err := app.Err(); err != nil {
			return err
		}

		startCtx, cancel := context.WithTimeout(cmd.Context(), app.StartTimeout())
		defer cancel()
		if err := app.Start(startCtx); err != nil {
			return err
		}

		sig := <-app.Wait()

		stopCtx, cancel := context.WithTimeout(context.Background(), app.StopTimeout())
		defer cancel()
		if err := app.Stop(stopCtx); err != nil {
			return err
		}
		if sig.ExitCode != 0 {
			return fmt.Errorf("server exited with code %d", sig.ExitCode)
		}
		return nil
	},
}

func newEcho(cfg config.Config, h *httpapi.Handler, logger *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	httpapi.Register(e, h, cfg.RateLimit, logger)
	return e
}

// listen blocks serving addr. Any failure other than a graceful close asks the
// app to shut down with a non-zero exit code.
func listen(e *echo.Echo, addr string, shutdowner fx.Shutdowner, logger *zap.Logger) {
	logger.Info("HTTP server listening", zap.String("addr", addr))
	err := e.Start(addr)
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		return
	}
	logger.Error("server stopped", zap.Error(err))
	if err := shutdowner.Shutdown(fx.ExitCode(1)); err != nil {
		logger.Error("failed to request shutdown", zap.Error(err))
	}
}

func serverLifecycle(lc fx.Lifecycle, shutdowner fx.Shutdowner, cfg config.Config, e *echo.Echo, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go listen(e, cfg.AppURL, shutdowner, logger)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
			defer cancel()
			if err := e.Shutdown(shutdownCtx); err != nil {
				return err
			}
			logger.Info("HTTP server shut down gracefully")
			return nil
		},
	})
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
