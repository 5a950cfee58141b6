package commands

import (
	"context"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/kanbanzone/kz/internal/printer"
)

var cardNumber string

var cardCmd = &cobra.Command{
	Use:   "card",
	Short: "Get a single card by number",
	RunE:  runCard,
}

func init() {
	cardCmd.Flags().StringVar(&cardNumber, "number", "", "Card number")
	_ = cardCmd.MarkFlagRequired("number")
	rootCmd.AddCommand(cardCmd)
}

func runCard(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	client, cfg, err := newClient()
	if err != nil {
		return printer.Fail(err)
	}
	board, err := requireBoard(cfg)
	if err != nil {
		return printer.Fail(err)
	}

	query := url.Values{
		"board":  {board},
		"number": {cardNumber},
	}
	resp, err := client.Do(ctx, http.MethodGet, "/card", query, nil)
	if err != nil {
		return printer.Fail(err)
	}
	return output(resp)
}
