package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kanbanzone/kz/internal/config"
	"github.com/kanbanzone/kz/internal/kanban"
	"github.com/kanbanzone/kz/internal/printer"
	"github.com/kanbanzone/kz/pkg/kanbanzone"
)

// newClient resolves configuration and builds the API client.
// Fails before any network activity when the API key is missing.
func newClient() (*kanbanzone.Client, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.RequireKey(); err != nil {
		return nil, nil, err
	}
	return kanbanzone.New(cfg.APIKey, cfg.BaseURL), cfg, nil
}

// requireBoard resolves the target board from the --board override or the
// configured default.
func requireBoard(cfg *config.Config) (string, error) {
	return cfg.ResolveBoard(boardOverride)
}

// output writes the success document for a command.
func output(v any) error {
	if err := printer.JSON(v); err != nil {
		return printer.Fail(err)
	}
	return nil
}

// parseCustomFields parses "Label=Value" strings into {label, value} objects.
func parseCustomFields(raw []string) ([]map[string]string, error) {
	fields := make([]map[string]string, 0, len(raw))
	for _, item := range raw {
		label, value, ok := strings.Cut(item, "=")
		if !ok {
			return nil, fmt.Errorf("invalid custom field format: '%s'. Use 'Label=Value'", item)
		}
		fields = append(fields, map[string]string{
			"label": strings.TrimSpace(label),
			"value": strings.TrimSpace(value),
		})
	}
	return fields, nil
}

// filterFlags holds the card filter flags shared by cards and search-cards.
type filterFlags struct {
	label    string
	owner    string
	column   string
	priority string
	blocked  bool
	query    string
}

// register adds the common filter flags to a command. withColumn controls the
// --column flag, which only applies to single-board listings.
func (f *filterFlags) register(cmd *cobra.Command, withColumn bool) {
	cmd.Flags().StringVar(&f.label, "label", "", "Filter by label name (case-insensitive)")
	cmd.Flags().StringVar(&f.owner, "owner", "", "Filter by owner email (case-insensitive)")
	if withColumn {
		cmd.Flags().StringVar(&f.column, "column", "", "Filter by column title (case-insensitive)")
	}
	cmd.Flags().StringVar(&f.priority, "priority", "", "Filter by priority level")
	cmd.Flags().BoolVar(&f.blocked, "blocked", false, "Show only blocked cards")
	cmd.Flags().StringVar(&f.query, "query", "", "Search title and description (case-insensitive)")
}

func (f *filterFlags) criteria() *kanban.Criteria {
	return &kanban.Criteria{
		Label:    f.label,
		Owner:    f.owner,
		Column:   f.column,
		Priority: f.priority,
		Blocked:  f.blocked,
		Query:    f.query,
	}
}
