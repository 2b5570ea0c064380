package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagConfig        string
	flagFeed          string
	flagUser          string
	flagResetTutorial bool
)

var rootCmd = &cobra.Command{
	Use:   "newsmatch",
	Short: "Swipe through the news in your terminal",
	Long:  "newsmatch shows the day's articles as a stack of cards. Swipe right to save an article, left to skip it, and browse what you saved by tag and date.",
	RunE:  runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flagFeed, "feed", "", "article file to load (.json, .xml, .rss, .atom)")
	rootCmd.Flags().StringVar(&flagUser, "user", "", "profile user id")
	rootCmd.Flags().BoolVar(&flagResetTutorial, "reset-tutorial", false, "show the tutorial again on launch")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(articlesCmd)
	rootCmd.AddCommand(tutorialCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "newsmatch %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}
