package cmd

import (
	"fmt"
	"os"

	"github.com/matheuskafuri/newsmatch/internal/config"
	"github.com/matheuskafuri/newsmatch/internal/state"
	"github.com/spf13/cobra"
)

var tutorialCmd = &cobra.Command{
	Use:   "tutorial",
	Short: "Inspect or reset the first-run tutorial",
}

var tutorialResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Show the tutorial again on next launch",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openState()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := state.ResetTutorial(store); err != nil {
			return fmt.Errorf("resetting tutorial: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Tutorial will be shown on next launch.")
		return nil
	},
}

var tutorialStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether the tutorial has been seen",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, cfg, err := openState()
		if err != nil {
			return err
		}
		defer store.Close()

		out := cmd.OutOrStdout()
		seen := "not seen"
		if state.TutorialSeen(store) {
			seen = "seen"
		}
		fmt.Fprintf(out, "Tutorial: %s\n", seen)
		fmt.Fprintf(out, "Backend: %s\n", cfg.StateBackend())

		switch cfg.StateBackend() {
		case "memory", "none":
		default:
			path := cfg.StatePath()
			if info, err := os.Stat(path); err == nil {
				fmt.Fprintf(out, "State: %s (%s)\n", path, formatBytes(info.Size()))
			} else {
				fmt.Fprintf(out, "State: %s\n", path)
			}
		}
		return nil
	},
}

func init() {
	tutorialCmd.AddCommand(tutorialResetCmd)
	tutorialCmd.AddCommand(tutorialStatusCmd)
}

func openState() (state.Store, *config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	store, err := state.Open(cfg.StateBackend(), cfg.StatePath())
	if err != nil {
		return nil, nil, fmt.Errorf("opening state: %w", err)
	}
	return store, cfg, nil
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
