package cmd

import (
	"os/signal"
	"syscall"

	"github.com/fulmenhq/gofulmen/foundry"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/3leaps/gostratus/internal/config"
	"github.com/3leaps/gostratus/internal/observability"
	"github.com/3leaps/gostratus/internal/server"
	"github.com/3leaps/gostratus/internal/server/handlers"
	"github.com/3leaps/gostratus/pkg/wire"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the wire inspector HTTP service",
	Long: `Run the HTTP service exposing the translation operations:

  POST /v1/tags/render
  POST /v1/tags/parse
  POST /v1/list/translate
  POST /v1/multipart/complete
  GET  /healthz
  GET  /version

Configuration is read from gostratus.yaml and GOSTRATUS_* environment
variables.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return exitError(foundry.ExitInvalidArgument, "Failed to load configuration", err)
	}

	logger, err := observability.NewServiceLogger(cfg.Logging.Level)
	if err != nil {
		return exitError(foundry.ExitInvalidArgument, "Failed to initialize logger", err)
	}
	defer func() { _ = logger.Sync() }()

	dialect, err := wire.ParseDialect(cfg.Translate.Dialect)
	if err != nil {
		return exitError(foundry.ExitInvalidArgument, "Invalid default dialect", err)
	}

	srv := server.New(cfg.Server, dialect, logger, handlers.VersionInfo{
		Version:   versionInfo.Version,
		Commit:    versionInfo.Commit,
		BuildDate: versionInfo.BuildDate,
	})

	logger.Info("starting inspector service",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
		zap.String("dialect", dialect.String()),
		zap.String("version", versionInfo.Version),
	)

	if err := srv.Start(ctx); err != nil {
		logger.Error("server exited with error", zap.Error(err))
		return exitError(foundry.ExitExternalServiceUnavailable, "Server failed", err)
	}
	return nil
}
