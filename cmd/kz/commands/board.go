package commands

import (
	"context"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/kanbanzone/kz/internal/printer"
)

var boardIncludeColumns bool

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Get a specific board's details",
	RunE:  runBoard,
}

func init() {
	boardCmd.Flags().BoolVar(&boardIncludeColumns, "include-columns", false, "Include column details")
	rootCmd.AddCommand(boardCmd)
}

func runBoard(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	client, cfg, err := newClient()
	if err != nil {
		return printer.Fail(err)
	}
	board, err := requireBoard(cfg)
	if err != nil {
		return printer.Fail(err)
	}

	query := url.Values{}
	if boardIncludeColumns {
		query.Set("includeColumns", "true")
	}

	resp, err := client.Do(ctx, http.MethodGet, "/board/"+board, query, nil)
	if err != nil {
		return printer.Fail(err)
	}
	return output(resp)
}
