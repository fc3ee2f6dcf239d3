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

	"github.com/spf13/cobra"

	"vendor-admin/internal/config"
	"vendor-admin/internal/logging"
	"vendor-admin/internal/stubserver"
)

var stubSeed bool

var stubCmd = &cobra.Command{
	Use:   "stub",
	Short: "Serve a local in-memory vendor backend",
	Long: `Serve the vendor API contract from memory, for development and demos.
State is lost on exit. With --seed the store starts with a demo dataset.`,
	RunE: runStub,
}

func init() {
	stubCmd.Flags().BoolVar(&stubSeed, "seed", true, "start with the demo dataset")
	rootCmd.AddCommand(stubCmd)
}

func runStub(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logging.New(os.Stderr, cfg.LogLevel)

	s := stubserver.New(log)
	if stubSeed {
		s.SeedDemo()
	}

	srv := &http.Server{
		Addr:         cfg.StubAddr,
		Handler:      s.Router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("stub server listening", "addr", cfg.StubAddr, "seeded", stubSeed)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("stub server: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
