package commands

import (
	"context"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/kanbanzone/kz/internal/kanban"
	"github.com/kanbanzone/kz/internal/printer"
)

var wipCheckCmd = &cobra.Command{
	Use:   "wip-check",
	Short: "Check WIP limits across board columns",
	Long: `Check WIP limits across board columns.

Counts the board's cards per column and reports each CARD-typed column with
its current count, configured min/max WIP thresholds, and any violations.`,
	RunE: runWipCheck,
}

func init() {
	rootCmd.AddCommand(wipCheckCmd)
}

func runWipCheck(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	client, cfg, err := newClient()
	if err != nil {
		return printer.Fail(err)
	}
	board, err := requireBoard(cfg)
	if err != nil {
		return printer.Fail(err)
	}

	boardResp, err := client.Do(ctx, http.MethodGet, "/board/"+board, url.Values{"includeColumns": {"true"}}, nil)
	if err != nil {
		return printer.Fail(err)
	}

	set, err := client.FetchAllCards(ctx, board, false)
	if err != nil {
		return printer.Fail(err)
	}
	if set.Partial && verbose {
		printer.Warning("card fetch truncated at page %d; counts are partial\n", set.FailedPage)
	}

	counts := kanban.CountByColumn(set.Cards)

	var columns []kanban.Record
	if boards := kanban.Records(boardResp["boards"]); len(boards) > 0 {
		info := kanban.Unwrap(boards[0], kanban.BoardWrapper)
		columns = kanban.Records(info["columns"])
	}

	return output(map[string]any{
		"board":   board,
		"columns": kanban.EvaluateWIP(columns, counts),
	})
}
