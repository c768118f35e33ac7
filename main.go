package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Gauravvedi19/LUCID--Collaborative-Canvas/api"
	"github.com/Gauravvedi19/LUCID--Collaborative-Canvas/config"
	"github.com/Gauravvedi19/LUCID--Collaborative-Canvas/internal/logx"
	"github.com/Gauravvedi19/LUCID--Collaborative-Canvas/middleware"
	"github.com/Gauravvedi19/LUCID--Collaborative-Canvas/room"
	"github.com/Gauravvedi19/LUCID--Collaborative-Canvas/ws"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:           "canvas-server",
		Short:         "Realtime collaborative canvas sync server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}

	rootCmd.AddCommand(serveCmd(), versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the sync server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}
}

func serve() error {
	cfg := config.Load()
	logx.Init(cfg.Env)
	defer logx.Sync()

	registry := room.NewRegistry()
	hub := ws.NewHub()
	wsHandler := ws.NewHandler(cfg, hub, registry)
	apiHandler := api.NewHandler(hub, registry)

	r := chi.NewRouter()
	r.Use(middleware.Logging)
	r.Use(func(next http.Handler) http.Handler {
		return middleware.CORSMiddleware(cfg, next)
	})

	r.Handle("/ws", wsHandler)
	r.Get("/healthz", apiHandler.Health)
	r.Mount("/api", apiHandler.Routes())
	r.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: r,
	}

	errCh := make(chan error, 1)
	go func() {
		logx.L.Info("server starting", zap.String("addr", cfg.Addr))
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logx.L.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(ctx)
}
