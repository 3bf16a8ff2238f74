package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/taigrr/foldercat/internal/config"
	"github.com/taigrr/foldercat/internal/logging"
	"github.com/taigrr/foldercat/internal/notify"
	"github.com/taigrr/foldercat/internal/pathfilter"
	"github.com/taigrr/foldercat/internal/types"
	"github.com/taigrr/foldercat/internal/watcher"
)

// loadConfig reads the configuration and sets up logging from it.
func loadConfig(opts *options) (*types.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	logging.Setup(logging.ParseLevel(cfg.Log.Level, opts.verbosity), os.Stderr)
	return cfg, nil
}

func runWatch(cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	logger := logging.GetLogger("watch")
	logger.Info().Str("config", cfg.Source).Str("path", cfg.WatchPath).Msg("Configuration loaded")

	filter, err := pathfilter.New(cfg.Ignore)
	if err != nil {
		return fmt.Errorf("failed to compile ignore patterns: %w", err)
	}

	w, err := watcher.New(cfg.WatchPath, filter, logging.GetLogger("watcher"))
	if err != nil {
		if errors.Is(err, watcher.ErrPathNotExist) || errors.Is(err, watcher.ErrPathNotDirectory) {
			return fmt.Errorf("cannot watch %s: %w", cfg.WatchPath, err)
		}
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer w.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	events, err := w.Start(ctx)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", cfg.WatchPath, err)
	}

	n := notify.New(cmd.OutOrStdout(), cfg.FilePatterns, cfg.FolderPatterns, cfg.Color)
	n.Banner(cfg.WatchPath, filter.Patterns())

	for event := range events {
		if matches := n.Handle(event); len(matches) > 0 {
			logger.Debug().Str("path", event.Path).Strs("matches", matches).Msg("Patterns matched")
		}
	}

	if err := w.Close(); err != nil {
		logger.Warn().Err(err).Msg("Failed to close watcher")
	}
	n.Farewell()
	return nil
}
