package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	cobra "github.com/spf13/cobra"
	errgroup "golang.org/x/sync/errgroup"

	config "github.com/inference-gateway/touchbridge/config"
	gesture "github.com/inference-gateway/touchbridge/internal/gesture"
	handlers "github.com/inference-gateway/touchbridge/internal/handlers"
	storage "github.com/inference-gateway/touchbridge/internal/infra/storage"
	logger "github.com/inference-gateway/touchbridge/internal/logger"
	transport "github.com/inference-gateway/touchbridge/internal/transport"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the gesture server",
	Long: `Start an HTTP server that accepts operator pointer feeds over WebSocket and
forwards the resulting gestures to the configured device transport.

The server provides:
  - A WebSocket pointer feed at /ws
  - Device profile management under /api/v1/devices
  - Health checks`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfigFromViper()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		port, _ := cmd.Flags().GetInt("port")
		host, _ := cmd.Flags().GetString("host")
		transportType, _ := cmd.Flags().GetString("transport")

		if port != 0 {
			cfg.Server.Port = port
		}
		if host != "" {
			cfg.Server.Host = host
		}
		if transportType != "" {
			cfg.Transport.Type = transportType
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return runServer(ctx, cfg)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().Int("port", 0, "Server port (default: 8088)")
	serveCmd.Flags().String("host", "", "Server host (default: 127.0.0.1)")
	serveCmd.Flags().String("transport", "", "Device transport: appium or log")
}

func runServer(ctx context.Context, cfg *config.Config) error {
	devices, err := storage.NewDeviceStore(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to open device storage: %w", err)
	}
	defer func() {
		if err := devices.Close(); err != nil {
			logger.Warn("Failed to close device storage", "error", err)
		}
	}()

	if err := checkStorageHealth(ctx, devices); err != nil {
		logger.Warn("Storage health check failed", "error", err)
	}

	commands, err := transport.New(cfg.Transport, devices)
	if err != nil {
		return err
	}

	classifier := gesture.NewClassifier(cfg.Gesture.HoldThresholdMs, cfg.Gesture.MovementTolerance)
	sessionManager := handlers.NewSessionManager(classifier, commands)
	defer sessionManager.Shutdown()

	server := newHTTPServer(cfg, devices, sessionManager)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting gesture server", "address", server.Addr, "transport", cfg.Transport.Type, "storage", cfg.Storage.Type)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down gesture server", "active_sessions", sessionManager.ActiveSessionCount())

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		sessionManager.Shutdown()
		if err := server.Shutdown(shutdownCtx); err != nil {
			if closeErr := server.Close(); closeErr != nil {
				logger.Warn("Failed to force close server", "error", closeErr)
			}
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	})

	return g.Wait()
}

func newHTTPServer(cfg *config.Config, devices storage.DeviceStore, sessionManager *handlers.SessionManager) *http.Server {
	apiHandler := handlers.NewAPIHandler(devices, sessionManager)
	wsHandler := handlers.NewWebSocketHandler(sessionManager, devices)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", apiHandler.HandleHealth)
	mux.HandleFunc("/ws", wsHandler.HandleWebSocket)
	mux.HandleFunc("/api/v1/devices", apiHandler.HandleDevices)
	mux.HandleFunc("/api/v1/devices/", apiHandler.HandleDeviceByID)

	return &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      mux,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}
}

func checkStorageHealth(ctx context.Context, devices storage.DeviceStore) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return devices.Health(ctx)
}
