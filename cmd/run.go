package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/leetsprint/internal/app"
	"github.com/abhisek/leetsprint/internal/catalog"
)

// runApp resolves configuration, opens the log and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cat, err := resolveCatalog(cmd)
	if err != nil {
		return err
	}
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger(cmd)
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Info("catalog loaded",
		"easy", cat.Count(catalog.Easy),
		"medium", cat.Count(catalog.Medium),
		"hard", cat.Count(catalog.Hard))

	light, _ := cmd.Flags().GetBool("light")
	return app.Run(app.Options{
		Catalog: cat,
		Config:  cfg,
		Logger:  logger,
		Rand:    resolveRand(cmd),
		Light:   light,
	})
}

// openLogger returns a text logger writing to --log-file or
// LEETSPRINT_LOG_FILE. Without either, logs are discarded since the
// terminal belongs to the TUI.
func openLogger(cmd *cobra.Command) (*slog.Logger, func(), error) {
	path, _ := cmd.Flags().GetString("log-file")
	if path == "" {
		path = os.Getenv("LEETSPRINT_LOG_FILE")
	}
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return newLogger(f), func() { f.Close() }, nil
}

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
