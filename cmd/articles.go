package cmd

import (
	"fmt"
	"time"

	"github.com/matheuskafuri/newsmatch/internal/article"
	"github.com/matheuskafuri/newsmatch/internal/config"
	"github.com/matheuskafuri/newsmatch/internal/filter"
	"github.com/spf13/cobra"
)

var (
	flagTag  string
	flagDate string
)

var articlesCmd = &cobra.Command{
	Use:   "articles",
	Short: "List the articles in stack order",
	Long: `Print the article sequence the discover stack starts from.

Narrow the list with --tag and --date (YYYY-MM-DD); both must match when given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagDate != "" {
			if _, err := time.Parse(article.DateLayout, flagDate); err != nil {
				return fmt.Errorf("invalid --date value %q: want YYYY-MM-DD", flagDate)
			}
		}

		cfg, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		provider, err := openProvider(cfg)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		matched := filter.Apply(provider.Articles(), filter.Selector{Tag: flagTag, Date: flagDate})
		if len(matched) == 0 {
			fmt.Fprintln(out, "No articles match.")
			return nil
		}
		for _, a := range matched {
			fmt.Fprintln(out, formatArticleLine(a))
		}
		fmt.Fprintf(out, "\n%d of %d article(s)\n", len(matched), provider.Len())
		return nil
	},
}

func init() {
	articlesCmd.Flags().StringVar(&flagTag, "tag", "", "only show articles with this tag")
	articlesCmd.Flags().StringVar(&flagDate, "date", "", "only show articles published on this date (YYYY-MM-DD)")
}

func formatArticleLine(a article.Article) string {
	return fmt.Sprintf("%-6s %s  %-12s %s", a.ID, a.DisplayDate(), "#"+a.Tag, a.Title)
}
