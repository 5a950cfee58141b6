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
	linkID          int
	linkCard        int
	linkURL         string
	linkType        string
	linkTitle       string
	linkMirrorBoard string
)

var linkCardCmd = &cobra.Command{
	Use:   "link-card",
	Short: "Add a link to a card",
	Long: `Add a link to a card.

Links target either another card (--card) or an external URL (--url).
Card links default to type "related", URL links to type "external".`,
	RunE: runLinkCard,
}

func init() {
	linkCardCmd.Flags().IntVar(&linkID, "id", 0, "Card number")
	linkCardCmd.Flags().IntVar(&linkCard, "card", 0, "Target card number to link")
	linkCardCmd.Flags().StringVar(&linkURL, "url", "", "External URL to link")
	linkCardCmd.Flags().StringVar(&linkType, "type", "", "Link type (default: 'related' for cards, 'external' for URLs)")
	linkCardCmd.Flags().StringVar(&linkTitle, "title", "", "Link title (for URL links)")
	linkCardCmd.Flags().StringVar(&linkMirrorBoard, "mirror-board", "", "Board ID for mirrored cards")
	linkCardCmd.MarkFlagsMutuallyExclusive("card", "url")
	_ = linkCardCmd.MarkFlagRequired("id")
	rootCmd.AddCommand(linkCardCmd)
}

func runLinkCard(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	link := map[string]any{}
	switch {
	case cmd.Flags().Changed("card"):
		link["card"] = linkCard
		link["type"] = "related"
		if linkType != "" {
			link["type"] = linkType
		}
	case linkURL != "":
		link["url"] = linkURL
		link["type"] = "external"
		if linkType != "" {
			link["type"] = linkType
		}
		if linkTitle != "" {
			link["title"] = linkTitle
		}
	default:
		return printer.Fail(fmt.Errorf("provide either --card or --url to link"))
	}

	client, _, err := newClient()
	if err != nil {
		return printer.Fail(err)
	}

	body := map[string]any{
		"links": map[string]any{"add": []any{link}},
	}
	if linkMirrorBoard != "" {
		body["board"] = linkMirrorBoard
	}

	resp, err := client.Do(ctx, http.MethodPut, "/card/"+strconv.Itoa(linkID), nil, body)
	if err != nil {
		return printer.Fail(err)
	}
	return output(resp)
}
