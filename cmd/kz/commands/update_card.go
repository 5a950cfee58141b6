package commands

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kanbanzone/kz/internal/printer"
)

var (
	updateID            int
	updateTitle         string
	updateDescription   string
	updateColumnID      string
	updateOwner         string
	updatePriority      string
	updateLabel         string
	updateSize          string
	updateDue           string
	updateBlocked       string
	updateBlockedBy     string
	updateBlockedReason string
	updateMirrorBoard   string
	updateWatchers      []string
	updateCustomFields  []string
)

var updateCardCmd = &cobra.Command{
	Use:   "update-card",
	Short: "Update a card's fields",
	RunE:  runUpdateCard,
}

func init() {
	updateCardCmd.Flags().IntVar(&updateID, "id", 0, "Card number")
	updateCardCmd.Flags().StringVar(&updateTitle, "title", "", "New title")
	updateCardCmd.Flags().StringVar(&updateDescription, "description", "", "New description")
	updateCardCmd.Flags().StringVar(&updateColumnID, "column-id", "", "Move to column ID")
	updateCardCmd.Flags().StringVar(&updateOwner, "owner", "", "Owner email")
	updateCardCmd.Flags().StringVar(&updatePriority, "priority", "", "Priority (1-4)")
	updateCardCmd.Flags().StringVar(&updateLabel, "label", "", "Label name")
	updateCardCmd.Flags().StringVar(&updateSize, "size", "", "Card size (S, M, L, or XL)")
	updateCardCmd.Flags().StringVar(&updateDue, "due", "", "Due date")
	updateCardCmd.Flags().StringVar(&updateBlocked, "blocked", "", "true or false")
	updateCardCmd.Flags().StringVar(&updateBlockedBy, "blocked-by", "", "Blocker email")
	updateCardCmd.Flags().StringVar(&updateBlockedReason, "blocked-reason", "", "Block reason")
	updateCardCmd.Flags().StringVar(&updateMirrorBoard, "mirror-board", "", "Board ID for mirrored cards")
	updateCardCmd.Flags().StringArrayVar(&updateWatchers, "watcher", nil, "Watcher email (repeatable)")
	updateCardCmd.Flags().StringArrayVar(&updateCustomFields, "custom-field", nil, "Custom field as 'Label=Value' (repeatable)")
	_ = updateCardCmd.MarkFlagRequired("id")
	rootCmd.AddCommand(updateCardCmd)
}

func runUpdateCard(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	client, _, err := newClient()
	if err != nil {
		return printer.Fail(err)
	}

	body := map[string]any{}
	if updateTitle != "" {
		body["title"] = updateTitle
	}
	if updateDescription != "" {
		body["description"] = updateDescription
	}
	if updateColumnID != "" {
		body["columnId"] = updateColumnID
	}
	if updateOwner != "" {
		body["owner"] = updateOwner
	}
	if updatePriority != "" {
		body["priority"] = updatePriority
	}
	if updateLabel != "" {
		body["label"] = updateLabel
	}
	if updateSize != "" {
		body["size"] = updateSize
	}
	if updateDue != "" {
		body["dueAt"] = updateDue
	}
	if updateBlocked != "" {
		body["blocked"] = strings.EqualFold(updateBlocked, "true")
	}
	if updateBlockedBy != "" {
		body["blockedBy"] = updateBlockedBy
	}
	if updateBlockedReason != "" {
		body["blockedReason"] = updateBlockedReason
	}
	if updateMirrorBoard != "" {
		body["board"] = updateMirrorBoard
	}
	if len(updateWatchers) > 0 {
		body["watchers"] = updateWatchers
	}
	if len(updateCustomFields) > 0 {
		fields, err := parseCustomFields(updateCustomFields)
		if err != nil {
			return printer.Fail(err)
		}
		body["customFields"] = fields
	}

	if len(body) == 0 {
		return printer.Fail(fmt.Errorf("no fields to update. Provide at least one field flag"))
	}

	resp, err := client.Do(ctx, http.MethodPut, "/card/"+strconv.Itoa(updateID), nil, body)
	if err != nil {
		return printer.Fail(err)
	}
	return output(resp)
}
