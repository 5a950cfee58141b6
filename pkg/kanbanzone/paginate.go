package kanbanzone

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/kanbanzone/kz/internal/kanban"
)

// pageSize is the server's documented maximum cards per page.
const pageSize = 100

// CardSet is the result of a full card fetch for one board. When a page
// beyond the first fails, Cards holds everything accumulated up to that
// point, Partial is true, and FailedPage names the page that errored.
type CardSet struct {
	Cards      []kanban.Record
	Partial    bool
	FailedPage int
}

// FetchAllCards retrieves every card on a board, following pagination until
// the server reports no more pages. Pages are requested strictly in order and
// appended without reordering or de-duplication.
//
// A first-page error is returned directly. An error on a later page stops the
// loop and returns the partial accumulation with the Partial sentinel set, so
// callers can observe the truncation instead of failing outright.
func (c *Client) FetchAllCards(ctx context.Context, board string, includeArchived bool) (*CardSet, error) {
	query := url.Values{
		"board": {board},
		"count": {strconv.Itoa(pageSize)},
	}
	if includeArchived {
		query.Set("includeArchived", "true")
	}

	// Page 1 is implicit on the first request
	page, err := c.Do(ctx, http.MethodGet, "/cards", query, nil)
	if err != nil {
		return nil, err
	}

	set := &CardSet{Cards: kanban.Records(page["cards"])}
	for pageNum := 2; hasMore(page); pageNum++ {
		query.Set("page", strconv.Itoa(pageNum))
		page, err = c.Do(ctx, http.MethodGet, "/cards", query, nil)
		if err != nil {
			set.Partial = true
			set.FailedPage = pageNum
			break
		}
		set.Cards = append(set.Cards, kanban.Records(page["cards"])...)
	}
	return set, nil
}

func hasMore(page map[string]any) bool {
	more, _ := page["hasMore"].(bool)
	return more
}
