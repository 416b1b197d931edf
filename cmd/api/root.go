package main

import (
	"context"
	"fmt"

	"resume-backend/infrastructure/config"
	"resume-backend/infrastructure/di"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	envFile string
	addr    string
	backend string
	mode    string
)

// NewRootCmd creates the root command; without a subcommand it serves HTTP.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "resume-api",
		Short:        "Resume site backend: visitor counter and contact form",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if envFile != "" {
				if err := godotenv.Overload(envFile); err != nil {
					return fmt.Errorf("load env file: %w", err)
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Additional .env file that overrides the environment")
	rootCmd.PersistentFlags().StringVar(&addr, "addr", "", "Listen address (overrides SERVER_ADDRESS)")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "", "Counter backend: dynamodb, sqlite, bolt or memory (overrides COUNTER_BACKEND)")
	rootCmd.PersistentFlags().StringVar(&mode, "mode", "", "Counter mode: atomic or read-write (overrides COUNTER_MODE)")

	rootCmd.AddCommand(newServeCmd(), newCountCmd())
	return rootCmd
}

// loadConfig reads the environment and applies command-line overrides
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	if addr != "" {
		cfg.ServerAddress = addr
	}
	if backend != "" {
		cfg.CounterBackend = backend
	}
	if mode != "" {
		cfg.CounterMode = mode
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newContainer(ctx context.Context) (*di.Container, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	container, cleanup, err := di.InitializeContainer(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize container: %w", err)
	}
	return container, cleanup, nil
}
