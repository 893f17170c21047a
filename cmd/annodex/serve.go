package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/annodex/annodex/internal/cli/config"
	"github.com/annodex/annodex/internal/fixture"
	"github.com/annodex/annodex/internal/web/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the introspection HTTP API over the sample index",
	Long: `Start the read-only introspection server. The listen address comes from
annodex.yml (or the --addr flag). The server exposes the sample index;
embedding applications serve their own index through the library API.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		addr := cfg.Server.Addr()
		if serveAddr != "" {
			addr = serveAddr
		}

		idx, err := fixture.Build()
		if err != nil {
			return fmt.Errorf("failed to build sample index: %w", err)
		}

		logger, err := zap.NewProduction()
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logger.Sync()

		logger.Info("serving sample index",
			zap.String("index_id", idx.ID()),
			zap.Int("classes", len(idx.Classes())),
		)

		s := server.New(server.DefaultConfig(addr), idx, logger)
		return server.Run(s, server.DefaultShutdownConfig(), logger)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
}
