package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"medguardian/internal/adapters/auth/jwtauth"
	"medguardian/internal/ports/auth"
	"medguardian/internal/router"
)

var (
	serveFlagPort    string
	serveFlagMigrate bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveFlagPort, "port", "", "listen port (env PORT, default 8080)")
	serveCmd.Flags().BoolVar(&serveFlagMigrate, "migrate", true, "apply pending migrations before serving")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	db, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	if db != nil {
		defer db.Close()
		if serveFlagMigrate {
			if _, err := db.Migrate(cmd.Context()); err != nil {
				return err
			}
		}
	}

	var verifier auth.AuthVerifier
	if !cfg.DevMode() {
		verifier = jwtauth.NewVerifier(cfg.JWTSecret, cfg.JWTIssuer)
	} else {
		log.Warn("JWT_SECRET not set, accepting X-Debug-User-ID", nil)
	}

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: router.NewRouter(router.Options{
			AuthVerifier:        verifier,
			DB:                  db,
			Logger:              log,
			DispatchConcurrency: cfg.DispatchConcurrency,
		}),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "storage": string(cfg.Storage)})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
