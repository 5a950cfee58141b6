package commands

import (
	"context"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/kanbanzone/kz/internal/printer"
)

var (
	boardsIncludeArchived bool
	boardsIncludeColumns  bool
)

var boardsCmd = &cobra.Command{
	Use:   "boards",
	Short: "List all boards with metrics",
	RunE:  runBoards,
}

func init() {
	boardsCmd.Flags().BoolVar(&boardsIncludeArchived, "include-archived", false, "Include archived boards")
	boardsCmd.Flags().BoolVar(&boardsIncludeColumns, "include-columns", false, "Include column details")
	rootCmd.AddCommand(boardsCmd)
}

func runBoards(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	client, _, err := newClient()
	if err != nil {
		return printer.Fail(err)
	}

	query := url.Values{}
	if boardsIncludeArchived {
		query.Set("includeArchived", "true")
	}
	if boardsIncludeColumns {
		query.Set("includeColumns", "true")
	}

	resp, err := client.Do(ctx, http.MethodGet, "/boards", query, nil)
	if err != nil {
		return printer.Fail(err)
	}
	return output(resp)
}
