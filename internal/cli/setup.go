package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Richard-Gidi/Ridewise/internal/config"
)

// loadProjectConfig loads .env into the environment and reads the
// optional ridewise.yaml from the working directory. A missing config
// file is not an error; a malformed one is.
func loadProjectConfig(verbose bool) (*config.ProjectConfig, error) {
	_ = godotenv.Load()

	projectCfg, err := config.Load(".")
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load %s: %w", "ridewise.yaml", err)
	}
	if verbose {
		fmt.Fprintln(os.Stderr, "[VERBOSE] Loaded ridewise.yaml")
	}
	return projectCfg, nil
}

// resolveTimeout applies the ridewise.yaml timeout when --timeout was
// not explicitly set on the command line.
func resolveTimeout(cmd *cobra.Command, flagTimeout time.Duration, projectCfg *config.ProjectConfig) (time.Duration, error) {
	if projectCfg == nil || projectCfg.Timeout == "" || cmd.Flags().Changed("timeout") {
		return flagTimeout, nil
	}
	parsed, err := time.ParseDuration(projectCfg.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout in ridewise.yaml: %w", err)
	}
	return parsed, nil
}

// commandContext returns a context bounded by timeout and cancelled on
// SIGINT/SIGTERM so a half-finished run exits cleanly.
func commandContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case <-sigChan:
			fmt.Fprintln(os.Stderr, "\n[INTERRUPT] Received interrupt signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
