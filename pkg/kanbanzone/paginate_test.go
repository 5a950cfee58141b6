package kanbanzone

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kanbanzone/kz/internal/kanban"
)

// cardPage builds a page response with n cards numbered from start.
func cardPage(start, n int, hasMore bool) map[string]any {
	cards := make([]any, n)
	for i := range cards {
		cards[i] = map[string]any{"number": fmt.Sprintf("%d", start+i)}
	}
	return map[string]any{"cards": cards, "hasMore": hasMore}
}

// pagedServer serves one canned response per requested page number and
// records the requests it saw.
func pagedServer(t *testing.T, pages map[string]any, errorPages map[string]int) (*httptest.Server, *[]string) {
	t.Helper()
	var seen []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		if page == "" {
			page = "1"
		}
		seen = append(seen, page)

		if status, ok := errorPages[page]; ok {
			w.WriteHeader(status)
			return
		}
		resp, ok := pages[page]
		require.True(t, ok, "unexpected page request: %s", page)
		_ = json.NewEncoder(w).Encode(resp)
	}))
	return server, &seen
}

func TestFetchAllCards_SinglePage(t *testing.T) {
	server, seen := pagedServer(t, map[string]any{
		"1": cardPage(1, 3, false),
	}, nil)
	defer server.Close()

	client := New("key", server.URL)
	set, err := client.FetchAllCards(context.Background(), "b1", false)
	require.NoError(t, err)

	assert.Len(t, set.Cards, 3)
	assert.False(t, set.Partial)
	assert.Equal(t, []string{"1"}, *seen)
}

func TestFetchAllCards_MergesPagesInOrder(t *testing.T) {
	server, seen := pagedServer(t, map[string]any{
		"1": cardPage(1, 100, true),
		"2": cardPage(101, 100, true),
		"3": cardPage(201, 37, false),
	}, nil)
	defer server.Close()

	client := New("key", server.URL)
	set, err := client.FetchAllCards(context.Background(), "b1", false)
	require.NoError(t, err)

	require.Len(t, set.Cards, 237)
	assert.False(t, set.Partial)
	assert.Equal(t, []string{"1", "2", "3"}, *seen)

	// Page order preserved, no duplicates, no drops
	for i, card := range set.Cards {
		assert.Equal(t, fmt.Sprintf("%d", i+1), kanban.Str(card.CardField("number")))
	}
}

func TestFetchAllCards_SendsBoardCountAndArchivedParams(t *testing.T) {
	var gotBoard, gotCount, gotArchived string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBoard = r.URL.Query().Get("board")
		gotCount = r.URL.Query().Get("count")
		gotArchived = r.URL.Query().Get("includeArchived")
		_ = json.NewEncoder(w).Encode(cardPage(1, 1, false))
	}))
	defer server.Close()

	client := New("key", server.URL)
	_, err := client.FetchAllCards(context.Background(), "b1", true)
	require.NoError(t, err)

	assert.Equal(t, "b1", gotBoard)
	assert.Equal(t, "100", gotCount)
	assert.Equal(t, "true", gotArchived)
}

func TestFetchAllCards_FirstPageErrorIsReturned(t *testing.T) {
	server, _ := pagedServer(t, nil, map[string]int{"1": http.StatusInternalServerError})
	defer server.Close()

	client := New("key", server.URL)
	set, err := client.FetchAllCards(context.Background(), "b1", false)
	assert.Nil(t, set)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
}

func TestFetchAllCards_LaterPageErrorReturnsPartialSet(t *testing.T) {
	server, seen := pagedServer(t, map[string]any{
		"1": cardPage(1, 100, true),
	}, map[string]int{"2": http.StatusBadGateway})
	defer server.Close()

	client := New("key", server.URL)
	set, err := client.FetchAllCards(context.Background(), "b1", false)
	require.NoError(t, err)

	assert.Len(t, set.Cards, 100)
	assert.True(t, set.Partial)
	assert.Equal(t, 2, set.FailedPage)
	assert.Equal(t, []string{"1", "2"}, *seen)
}
