// Package kanbanzone provides a typed client for the KanbanZone integrations
// API.
//
// # Overview
//
// The client wraps a single capability: issue one authenticated HTTP call and
// decode the JSON response (Do). On top of that it builds the two operations
// with real logic: FetchAllCards, which follows server-side pagination until
// a board's card set is complete, and SearchCards, which joins a board
// listing with per-board fetches and client-side filtering.
//
// # Error Model
//
// Every transport failure and non-2xx response is surfaced as *Error, a
// uniform value carrying an optional HTTP status, a human message, and the
// raw response body. There are no retries and no caching; calls are
// sequential and blocking.
//
// # Partial Results
//
// Pagination failures after the first page and per-board failures during a
// cross-board search do not abort the operation. They are reported through
// explicit sentinels (CardSet.Partial, the skipped board list) so callers can
// observe truncation while still using what was fetched.
package kanbanzone
