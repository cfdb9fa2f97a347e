package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"growbraz/internal/adapters/advisor/gemini"
	"growbraz/internal/platform/config"
	"growbraz/internal/platform/logger"
	"growbraz/internal/platform/metrics"
	"growbraz/internal/ports/advisor"
	"growbraz/internal/router"
)

// @title GrowBraZ API
// @version 1.0
// @description Diario de cultivo: espacios, plantas, registros de mantenimiento y asistente.
// @BasePath /
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		addr       string
	)

	cmd := &cobra.Command{
		Use:           "growbraz",
		Short:         "API del diario de cultivo GrowBraZ",
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if strings.TrimSpace(addr) != "" {
				cfg.HTTP.Addr = addr
			}
			return run(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "archivo YAML de configuración (opcional)")
	cmd.Flags().StringVar(&addr, "addr", "", "dirección de escucha, pisa PORT (ej: :8080)")
	return cmd
}

func run(parent context.Context, cfg config.Config) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
	})
	defer logger.Sync(log)

	store, closeStore, err := openStore(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Warn("close storage failed", map[string]any{"err": err})
		}
	}()

	// Sin API_KEY el servicio arranca igual; el asistente responde offline.
	var adv advisor.Advisor
	if strings.TrimSpace(cfg.Advisor.APIKey) != "" {
		c, err := gemini.New(ctx, gemini.Config{APIKey: cfg.Advisor.APIKey, Model: cfg.Advisor.Model})
		if err != nil {
			return err
		}
		adv = c
	} else {
		log.Warn("API_KEY not set, advisory disabled", nil)
	}

	h := router.NewRouter(router.Options{
		KV:           store,
		Advisor:      adv,
		Logger:       log,
		Metrics:      metrics.New(),
		SeedDefaults: cfg.SeedDefaults,
	})

	// Sin WriteTimeout: la consulta al asistente no tiene plazo.
	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{
			"addr":    cfg.HTTP.Addr,
			"storage": storageDriver(cfg.Storage),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
