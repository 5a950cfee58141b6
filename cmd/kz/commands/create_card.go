package commands

import (
	"context"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/kanbanzone/kz/internal/printer"
)

var (
	createTitle        string
	createColumnID     string
	createDescription  string
	createOwner        string
	createPriority     string
	createLabel        string
	createSize         string
	createDue          string
	createTemplateID   string
	createAddToTop     bool
	createWatchers     []string
	createCustomFields []string
)

var createCardCmd = &cobra.Command{
	Use:   "create-card",
	Short: "Create a single card",
	RunE:  runCreateCard,
}

func init() {
	createCardCmd.Flags().StringVar(&createTitle, "title", "", "Card title")
	createCardCmd.Flags().StringVar(&createColumnID, "column-id", "", "Target column ID")
	createCardCmd.Flags().StringVar(&createDescription, "description", "", "Card description (text or HTML)")
	createCardCmd.Flags().StringVar(&createOwner, "owner", "", "Owner email address")
	createCardCmd.Flags().StringVar(&createPriority, "priority", "", "Priority level (1-4)")
	createCardCmd.Flags().StringVar(&createLabel, "label", "", "Label name")
	createCardCmd.Flags().StringVar(&createSize, "size", "", "Card size (S, M, L, or XL)")
	createCardCmd.Flags().StringVar(&createDue, "due", "", "Due date (MM/DD/YYYY or ISO 8601)")
	createCardCmd.Flags().StringVar(&createTemplateID, "template-id", "", "Card template public ID (8-char)")
	createCardCmd.Flags().BoolVar(&createAddToTop, "add-to-top", false, "Add to top of column")
	createCardCmd.Flags().StringArrayVar(&createWatchers, "watcher", nil, "Watcher email (repeatable)")
	createCardCmd.Flags().StringArrayVar(&createCustomFields, "custom-field", nil, "Custom field as 'Label=Value' (repeatable)")
	_ = createCardCmd.MarkFlagRequired("title")
	rootCmd.AddCommand(createCardCmd)
}

func runCreateCard(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	client, cfg, err := newClient()
	if err != nil {
		return printer.Fail(err)
	}
	board, err := requireBoard(cfg)
	if err != nil {
		return printer.Fail(err)
	}

	body := map[string]any{
		"board": board,
		"title": createTitle,
	}
	if createColumnID != "" {
		body["columnId"] = createColumnID
	}
	if createDescription != "" {
		body["description"] = createDescription
	}
	if createOwner != "" {
		body["owner"] = createOwner
	}
	if createPriority != "" {
		body["priority"] = createPriority
	}
	if createLabel != "" {
		body["label"] = createLabel
	}
	if createSize != "" {
		body["size"] = createSize
	}
	if createDue != "" {
		body["dueAt"] = createDue
	}
	if createTemplateID != "" {
		body["templateId"] = createTemplateID
	}
	if createAddToTop {
		body["addToTop"] = true
	}
	if len(createWatchers) > 0 {
		body["watchers"] = createWatchers
	}
	if len(createCustomFields) > 0 {
		fields, err := parseCustomFields(createCustomFields)
		if err != nil {
			return printer.Fail(err)
		}
		body["customFields"] = fields
	}

	resp, err := client.Do(ctx, http.MethodPost, "/card", nil, body)
	if err != nil {
		return printer.Fail(err)
	}
	return output(resp)
}
