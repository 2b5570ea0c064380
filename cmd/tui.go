package cmd

import (
	"fmt"

	"github.com/matheuskafuri/newsmatch/internal/article"
	"github.com/matheuskafuri/newsmatch/internal/config"
	"github.com/matheuskafuri/newsmatch/internal/feed"
	"github.com/matheuskafuri/newsmatch/internal/logger"
	"github.com/matheuskafuri/newsmatch/internal/profile"
	"github.com/matheuskafuri/newsmatch/internal/state"
	"github.com/matheuskafuri/newsmatch/internal/swipe"
	"github.com/matheuskafuri/newsmatch/internal/tui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log, closeLog := logger.NewOrNop(cfg.LogPath(), cfg.LogLevel)
	defer closeLog()

	provider, err := openProvider(cfg)
	if err != nil {
		return err
	}

	store, err := state.Open(cfg.StateBackend(), cfg.StatePath())
	if err != nil {
		return fmt.Errorf("opening state: %w", err)
	}
	defer store.Close()

	if flagResetTutorial {
		if err := state.ResetTutorial(store); err != nil {
			return fmt.Errorf("resetting tutorial: %w", err)
		}
	}

	userID := resolveUser(flagUser, cfg)
	log.Info("starting",
		zap.String("version", version),
		zap.Int("articles", provider.Len()),
		zap.String("state_backend", cfg.StateBackend()),
		zap.String("user", userID),
	)

	err = tui.Run(tui.RunOpts{
		Stack:      swipe.New(provider),
		Profile:    profile.NewEditor(profile.Default(userID)),
		Store:      store,
		Logger:     log,
		UserID:     userID,
		ShareBase:  cfg.ShareBase(),
		StackDepth: cfg.GetStackDepth(),
	})
	if err != nil {
		log.Error("tui exited", zap.Error(err))
	}
	return err
}

// openProvider loads the --feed file, the configured feed, or the bundled set.
func openProvider(cfg *config.Config) (*article.Static, error) {
	path := resolveFeed(flagFeed, cfg)
	if path == "" {
		p, err := article.Embedded()
		if err != nil {
			return nil, fmt.Errorf("loading bundled articles: %w", err)
		}
		return p, nil
	}
	p, err := feed.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loading feed: %w", err)
	}
	return p, nil
}

func resolveFeed(flag string, cfg *config.Config) string {
	if flag != "" {
		return flag
	}
	return cfg.FeedPath()
}

func resolveUser(flag string, cfg *config.Config) string {
	if flag != "" {
		return flag
	}
	return cfg.UserID()
}
