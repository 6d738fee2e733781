package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/webnest/internal/auth"
	"github.com/mmynk/webnest/internal/metrics"
	"github.com/mmynk/webnest/internal/service"
	"github.com/mmynk/webnest/internal/storage/sqlstore"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the project service",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default :8080)")
	serveCmd.Flags().String("db-driver", "", "sqlite or postgres")
	serveCmd.Flags().String("db-dsn", "", "database path or connection string")
	_ = viper.BindPFlag("listen_addr", serveCmd.Flags().Lookup("addr"))
	_ = viper.BindPFlag("db.driver", serveCmd.Flags().Lookup("db-driver"))
	_ = viper.BindPFlag("db.dsn", serveCmd.Flags().Lookup("db-dsn"))
}

func runServe(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	store, err := sqlstore.New(cfg.DB.Driver, cfg.DB.DSN)
	if err != nil {
		return err
	}
	defer store.Close()
	slog.Info("Storage initialized", "driver", cfg.DB.Driver)

	var jwtManager *auth.JWTManager
	if cfg.Auth.Secret != "" {
		jwtManager = auth.NewJWTManager(cfg.Auth.Secret, cfg.Auth.TokenTTL)
	} else {
		slog.Warn("auth.secret not set, CreateProject is open to anyone")
	}

	m := metrics.New()
	handler := service.Routes(service.NewProjectService(store, cat, m), m, jwtManager)

	// h2c serves HTTP/2 without TLS, which Connect clients use by default.
	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Connect server starting", "address", cfg.ListenAddr, "currency", cfg.Currency)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
