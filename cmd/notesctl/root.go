package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	clientconfig "gonotes/internal/client/config"
	"gonotes/internal/client/notes"
	"gonotes/pkg/logger"
)

// Константы для сообщений об ошибках.
const (
	ErrInitLogger = "failed to initialize logger"
	ErrLoadConfig = "failed to load client configuration"
)

type rootOptions struct {
	apiURL  string
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "notesctl",
		Short:         "Command line client for the notes API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := "warn"
			if opts.verbose {
				level = "debug"
			}
			log, err := logger.NewLogger(logger.Development, level)
			if err != nil {
				return fmt.Errorf("%s: %w", ErrInitLogger, err)
			}
			logger.SetGlobalLogger(log)
			cmd.SetContext(logger.NewContext(cmd.Context(), log))
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.apiURL, "api-url", "", "notes API base URL (overrides NOTES_API_URL)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(newListCmd(opts), newCreateCmd(opts))

	return cmd
}

// newClient собирает клиент из конфигурации и флагов.
func newClient(cmd *cobra.Command, opts *rootOptions) (*notes.Client, error) {
	ctx := cmd.Context()

	cfg, err := clientconfig.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrLoadConfig, err)
	}

	baseURL := cfg.BaseURL
	if opts.apiURL != "" {
		baseURL = opts.apiURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	logger.Log(ctx).Debug(ctx, "using notes API",
		zap.String("base_url", baseURL),
		zap.Duration("timeout", cfg.Timeout))

	return notes.New(baseURL, cfg.Timeout), nil
}
