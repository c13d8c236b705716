package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/at-ishikawa/deeplmock/internal/bootstrap"
	"github.com/at-ishikawa/deeplmock/internal/config"
	"github.com/at-ishikawa/deeplmock/internal/server"
	"github.com/at-ishikawa/deeplmock/internal/stub"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the mock translation API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("loadConfig() > %w", err)
			}
			return runServer(cmd.Context(), cfg)
		},
	}
}

func runServer(ctx context.Context, cfg *config.Config) error {
	app := bootstrap.New()

	handler, err := newHandler(cfg)
	if err != nil {
		return fmt.Errorf("newHandler() > %w", err)
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: server.CORSMiddleware(h2c.NewHandler(handler.Router(), &http2.Server{}), cfg.Server.CORS.AllowedOrigins),
	}
	app.AddShutdownHook(srv.Shutdown)

	return app.Run(ctx, func(ctx context.Context) error {
		slog.Info("Starting server", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
}

func newHandler(cfg *config.Config) (*server.Handler, error) {
	table := stub.DefaultTranslationTable()
	if cfg.Seed.TranslationsFile != "" {
		seeded, err := stub.LoadTranslationTable(cfg.Seed.TranslationsFile)
		if err != nil {
			return nil, fmt.Errorf("stub.LoadTranslationTable() > %w", err)
		}
		table = append(table, seeded...)
		slog.Debug("Loaded seed translations", "file", cfg.Seed.TranslationsFile, "entries", len(seeded))
	}

	counter := stub.NewCharacterCounter()
	return server.NewHandler(
		stub.NewTranslator(table, counter),
		stub.NewUsageReporter(counter, stub.UsageConfig{
			FreeCharacterLimit: cfg.Usage.FreeCharacterLimit,
			ProCharacterLimit:  cfg.Usage.ProCharacterLimit,
			ProCountMultiplier: cfg.Usage.ProCountMultiplier,
		}),
		stub.NewCatalog(),
		stub.NewGlossaryStore(),
		cfg.Server,
	)
}
