package kanbanzone

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kanbanzone/kz/internal/kanban"
)

// searchServer fakes /boards plus per-board /cards responses.
func searchServer(boards []any, cardsByBoard map[string]map[string]any, errorBoards map[string]int, calls *atomic.Int64) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls != nil {
			calls.Add(1)
		}
		switch r.URL.Path {
		case "/boards":
			_ = json.NewEncoder(w).Encode(map[string]any{"boards": boards})
		case "/cards":
			board := r.URL.Query().Get("board")
			if status, ok := errorBoards[board]; ok {
				w.WriteHeader(status)
				return
			}
			_ = json.NewEncoder(w).Encode(cardsByBoard[board])
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestSearchCards_RequiresAtLeastOneCriterion(t *testing.T) {
	var calls atomic.Int64
	server := searchServer(nil, nil, nil, &calls)
	defer server.Close()

	client := New("key", server.URL)
	results, skipped, err := client.SearchCards(context.Background(), &kanban.Criteria{}, false)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "--query")
	assert.Nil(t, results)
	assert.Nil(t, skipped)
	assert.Equal(t, int64(0), calls.Load(), "usage error must fire before any network call")
}

func TestSearchCards_FiltersAcrossBoardsInListingOrder(t *testing.T) {
	boards := []any{
		map[string]any{"BoardItem": map[string]any{"publicId": "b1"}},
		map[string]any{"publicId": "b2"},
	}
	cards := map[string]map[string]any{
		"b1": {"cards": []any{
			map[string]any{"title": "alpha", "label": "bug"},
			map[string]any{"title": "beta", "label": "chore"},
		}, "hasMore": false},
		"b2": {"cards": []any{
			map[string]any{"title": "gamma", "label": "BUG"},
		}, "hasMore": false},
	}
	server := searchServer(boards, cards, nil, nil)
	defer server.Close()

	client := New("key", server.URL)
	results, skipped, err := client.SearchCards(context.Background(), &kanban.Criteria{Label: "bug"}, false)
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, "alpha", results[0].CardField("title"))
	assert.Equal(t, "gamma", results[1].CardField("title"))
	assert.Empty(t, skipped)
}

func TestSearchCards_SkipsArchivedBoards(t *testing.T) {
	boards := []any{
		map[string]any{"publicId": "b1", "isArchived": true},
		map[string]any{"BoardItem": map[string]any{"publicId": "b2", "isArchived": false}},
	}
	cards := map[string]map[string]any{
		"b2": {"cards": []any{map[string]any{"title": "kept", "label": "x"}}, "hasMore": false},
	}
	server := searchServer(boards, cards, nil, nil)
	defer server.Close()

	client := New("key", server.URL)
	results, _, err := client.SearchCards(context.Background(), &kanban.Criteria{Label: "x"}, false)
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "kept", results[0].CardField("title"))
}

func TestSearchCards_SkipsBoardsWhoseFetchFails(t *testing.T) {
	boards := []any{
		map[string]any{"publicId": "broken"},
		map[string]any{"publicId": "ok"},
	}
	cards := map[string]map[string]any{
		"ok": {"cards": []any{map[string]any{"title": "survivor", "label": "x"}}, "hasMore": false},
	}
	server := searchServer(boards, cards, map[string]int{"broken": http.StatusInternalServerError}, nil)
	defer server.Close()

	client := New("key", server.URL)
	results, skipped, err := client.SearchCards(context.Background(), &kanban.Criteria{Label: "x"}, false)
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "survivor", results[0].CardField("title"))
	assert.Equal(t, []string{"broken"}, skipped)
}

func TestSearchCards_BoardListingErrorIsFatal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := New("key", server.URL)
	_, _, err := client.SearchCards(context.Background(), &kanban.Criteria{Query: "q"}, false)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
}

func TestSearchCards_NoMatchesReturnsEmptySlice(t *testing.T) {
	boards := []any{map[string]any{"publicId": "b1"}}
	cards := map[string]map[string]any{
		"b1": {"cards": []any{map[string]any{"title": "nope"}}, "hasMore": false},
	}
	server := searchServer(boards, cards, nil, nil)
	defer server.Close()

	client := New("key", server.URL)
	results, _, err := client.SearchCards(context.Background(), &kanban.Criteria{Label: "absent"}, false)
	require.NoError(t, err)

	assert.NotNil(t, results)
	assert.Empty(t, results)
}
