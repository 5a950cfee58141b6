package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/kanbanzone/kz/internal/printer"
)

var createCardsFile string

var createCardsCmd = &cobra.Command{
	Use:   "create-cards",
	Short: "Create multiple cards from a JSON file",
	Long: `Create multiple cards from a JSON file.

The file's top level must be a JSON object. When it has no "board" key, the
resolved default or --board override is injected before the request is sent.`,
	RunE: runCreateCards,
}

func init() {
	createCardsCmd.Flags().StringVar(&createCardsFile, "file", "", "Path to JSON file with cards data")
	_ = createCardsCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(createCardsCmd)
}

func runCreateCards(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	client, cfg, err := newClient()
	if err != nil {
		return printer.Fail(err)
	}

	data, err := os.ReadFile(createCardsFile)
	if err != nil {
		return printer.Fail(fmt.Errorf("failed to read cards file: %w", err))
	}

	var body map[string]any
	if err := json.Unmarshal(data, &body); err != nil {
		return printer.Fail(fmt.Errorf("failed to parse cards file: %w", err))
	}

	if _, ok := body["board"]; !ok {
		board, err := requireBoard(cfg)
		if err != nil {
			return printer.Fail(err)
		}
		body["board"] = board
	}

	resp, err := client.Do(ctx, http.MethodPost, "/cards", nil, body)
	if err != nil {
		return printer.Fail(err)
	}
	return output(resp)
}
