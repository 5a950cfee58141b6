package commands

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kanbanzone/kz/internal/printer"
)

var (
	unlinkID          int
	unlinkCard        int
	unlinkURL         string
	unlinkMirrorBoard string
)

var unlinkCardCmd = &cobra.Command{
	Use:   "unlink-card",
	Short: "Remove a link from a card",
	RunE:  runUnlinkCard,
}

func init() {
	unlinkCardCmd.Flags().IntVar(&unlinkID, "id", 0, "Card number")
	unlinkCardCmd.Flags().IntVar(&unlinkCard, "card", 0, "Target card number to unlink")
	unlinkCardCmd.Flags().StringVar(&unlinkURL, "url", "", "External URL to unlink")
	unlinkCardCmd.Flags().StringVar(&unlinkMirrorBoard, "mirror-board", "", "Board ID for mirrored cards")
	unlinkCardCmd.MarkFlagsMutuallyExclusive("card", "url")
	_ = unlinkCardCmd.MarkFlagRequired("id")
	rootCmd.AddCommand(unlinkCardCmd)
}

func runUnlinkCard(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	link := map[string]any{}
	switch {
	case cmd.Flags().Changed("card"):
		link["card"] = unlinkCard
	case unlinkURL != "":
		link["url"] = unlinkURL
	default:
		return printer.Fail(fmt.Errorf("provide either --card or --url to unlink"))
	}

	client, _, err := newClient()
	if err != nil {
		return printer.Fail(err)
	}

	body := map[string]any{
		"links": map[string]any{"remove": []any{link}},
	}
	if unlinkMirrorBoard != "" {
		body["board"] = unlinkMirrorBoard
	}

	resp, err := client.Do(ctx, http.MethodPut, "/card/"+strconv.Itoa(unlinkID), nil, body)
	if err != nil {
		return printer.Fail(err)
	}
	return output(resp)
}
