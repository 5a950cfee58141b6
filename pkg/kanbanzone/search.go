package kanbanzone

import (
	"context"
	"fmt"
	"net/http"

	"github.com/kanbanzone/kz/internal/kanban"
)

// SearchCards fetches and filters cards across every non-archived board.
//
// At least one criterion must be set: an unfiltered scan across all boards is
// rejected with a usage error before any network activity. Board listing is a
// single unpaginated call; each board's cards are then fetched and filtered in
// board-listing order. Boards whose fetch fails are skipped and reported in
// the returned slice of board IDs rather than failing the whole search.
func (c *Client) SearchCards(ctx context.Context, criteria *kanban.Criteria, includeArchived bool) (results []kanban.Record, skipped []string, err error) {
	if !criteria.HasFilters() {
		return nil, nil, fmt.Errorf("provide --query and/or filter flags (--label, --owner, --priority, --blocked)")
	}

	boardsResp, err := c.Do(ctx, http.MethodGet, "/boards", nil, nil)
	if err != nil {
		return nil, nil, err
	}

	results = make([]kanban.Record, 0)
	for _, board := range kanban.Records(boardsResp["boards"]) {
		info := kanban.Unwrap(board, kanban.BoardWrapper)
		if kanban.Truthy(info["isArchived"]) {
			continue
		}
		boardID := kanban.Str(info["publicId"])

		set, err := c.FetchAllCards(ctx, boardID, includeArchived)
		if err != nil {
			skipped = append(skipped, boardID)
			continue
		}
		results = append(results, criteria.Apply(set.Cards)...)
	}
	return results, skipped, nil
}
