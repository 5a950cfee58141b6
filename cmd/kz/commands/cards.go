package commands

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kanbanzone/kz/internal/printer"
)

var (
	cardsPage            int
	cardsCount           int
	cardsDaysSinceUpdate int
	cardsIncludeArchived bool
	cardsFilters         filterFlags
)

var cardsCmd = &cobra.Command{
	Use:   "cards",
	Short: "List cards on a board",
	Long: `List cards on a board.

Without filter flags, a single page is requested and returned as-is.
With any filter flag set, every page is fetched and the filters are applied
client-side; the response then carries the full filtered set with
hasMore=false.`,
	RunE: runCards,
}

func init() {
	cardsCmd.Flags().IntVar(&cardsPage, "page", 1, "Page number (default: 1)")
	cardsCmd.Flags().IntVar(&cardsCount, "count", 100, "Cards per page (default: 100, max: 100)")
	cardsCmd.Flags().IntVar(&cardsDaysSinceUpdate, "days-since-update", -1, "Filter by days since last update")
	cardsCmd.Flags().BoolVar(&cardsIncludeArchived, "include-archived", false, "Include archived cards")
	cardsFilters.register(cardsCmd, true)
	rootCmd.AddCommand(cardsCmd)
}

func runCards(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	client, cfg, err := newClient()
	if err != nil {
		return printer.Fail(err)
	}
	board, err := requireBoard(cfg)
	if err != nil {
		return printer.Fail(err)
	}

	criteria := cardsFilters.criteria()
	if criteria.HasFilters() {
		set, err := client.FetchAllCards(ctx, board, cardsIncludeArchived)
		if err != nil {
			return printer.Fail(err)
		}
		if set.Partial && verbose {
			printer.Warning("card fetch truncated at page %d; results are partial\n", set.FailedPage)
		}

		filtered := criteria.Apply(set.Cards)
		return output(map[string]any{
			"count":          len(filtered),
			"totalAvailable": len(filtered),
			"cards":          filtered,
			"hasMore":        false,
		})
	}

	query := url.Values{
		"board": {board},
		"page":  {strconv.Itoa(cardsPage)},
		"count": {strconv.Itoa(cardsCount)},
	}
	if cardsDaysSinceUpdate >= 0 {
		query.Set("daysSinceLastUpdate", strconv.Itoa(cardsDaysSinceUpdate))
	}
	if cardsIncludeArchived {
		query.Set("includeArchived", "true")
	}

	resp, err := client.Do(ctx, http.MethodGet, "/cards", query, nil)
	if err != nil {
		return printer.Fail(err)
	}
	return output(resp)
}
