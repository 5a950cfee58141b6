package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kanbanzone/kz/internal/printer"
)

var (
	searchIncludeArchived bool
	searchFilters         filterFlags
)

var searchCardsCmd = &cobra.Command{
	Use:   "search-cards",
	Short: "Search cards across all boards",
	Long: `Search cards across all non-archived boards.

At least one of --query or a filter flag is required; an unfiltered scan
across every board is rejected before any request is made. Boards whose card
fetch fails are skipped and the search continues with the rest.`,
	RunE: runSearchCards,
}

func init() {
	searchCardsCmd.Flags().StringVar(&searchFilters.query, "query", "", "Search title and description (case-insensitive)")
	searchCardsCmd.Flags().StringVar(&searchFilters.label, "label", "", "Filter by label name (case-insensitive)")
	searchCardsCmd.Flags().StringVar(&searchFilters.owner, "owner", "", "Filter by owner email (case-insensitive)")
	searchCardsCmd.Flags().StringVar(&searchFilters.priority, "priority", "", "Filter by priority level")
	searchCardsCmd.Flags().BoolVar(&searchFilters.blocked, "blocked", false, "Show only blocked cards")
	searchCardsCmd.Flags().BoolVar(&searchIncludeArchived, "include-archived", false, "Include archived cards")
	rootCmd.AddCommand(searchCardsCmd)
}

func runSearchCards(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	client, _, err := newClient()
	if err != nil {
		return printer.Fail(err)
	}

	results, skipped, err := client.SearchCards(ctx, searchFilters.criteria(), searchIncludeArchived)
	if err != nil {
		return printer.Fail(err)
	}
	if len(skipped) > 0 && verbose {
		printer.Warning("skipped boards with failed card fetches: %s\n", strings.Join(skipped, ", "))
	}

	return output(map[string]any{
		"count": len(results),
		"cards": results,
	})
}
