package commands

import (
	"context"
	"net/http"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kanbanzone/kz/internal/printer"
)

var (
	moveID          int
	moveColumnID    string
	moveMirrorBoard string
)

var moveCardCmd = &cobra.Command{
	Use:   "move-card",
	Short: "Move a card to a different column",
	RunE:  runMoveCard,
}

func init() {
	moveCardCmd.Flags().IntVar(&moveID, "id", 0, "Card number")
	moveCardCmd.Flags().StringVar(&moveColumnID, "column-id", "", "Target column ID")
	moveCardCmd.Flags().StringVar(&moveMirrorBoard, "mirror-board", "", "Board ID for mirrored cards")
	_ = moveCardCmd.MarkFlagRequired("id")
	_ = moveCardCmd.MarkFlagRequired("column-id")
	rootCmd.AddCommand(moveCardCmd)
}

func runMoveCard(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	client, _, err := newClient()
	if err != nil {
		return printer.Fail(err)
	}

	body := map[string]any{"columnId": moveColumnID}
	if moveMirrorBoard != "" {
		body["board"] = moveMirrorBoard
	}

	resp, err := client.Do(ctx, http.MethodPost, "/card/"+strconv.Itoa(moveID)+"/move", nil, body)
	if err != nil {
		return printer.Fail(err)
	}
	return output(resp)
}
