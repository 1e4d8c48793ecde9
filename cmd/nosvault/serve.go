package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"nosvault"
	"nosvault/config"
	"nosvault/filesystem"
	nosvaulthttp "nosvault/http"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Start the nosvault HTTP server.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Int("port", 3118, "HTTP server port")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	var configFiles []string
	if cf, _ := cmd.Flags().GetString("config"); cf != "" {
		configFiles = append(configFiles, cf)
	}

	cfg, err := config.Load(configFiles, cmd.Flags())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := os.MkdirAll(cfg.Storage.Path, 0o750); err != nil {
		return fmt.Errorf("create storage directory: %w", err)
	}

	root, err := os.OpenRoot(cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("open storage root: %w", err)
	}
	defer func() { _ = root.Close() }()

	storage := filesystem.NewFileStorage(root)
	service := nosvault.NewService(storage, nosvault.NewVerifier())

	handlerConfig := nosvaulthttp.HandlerConfig{
		CORS:          cfg.CORS,
		MaxUploadSize: cfg.Server.MaxUploadSize,
	}
	handler := nosvaulthttp.NewHandler(&handlerConfig, service)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)

	server := &http.Server{
		Addr:         addr,
		Handler:      handler.Router(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down server...")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown error", "err", err)
		}
	}()

	slog.Info("starting server", "addr", addr, "storage", cfg.Storage.Path)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
