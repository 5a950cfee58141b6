package kanbanzone

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// DefaultBaseURL is the production KanbanZone integrations endpoint.
const DefaultBaseURL = "https://integrations.kanbanzone.io/v1"

// Error is the uniform error value for transport failures and non-2xx
// responses. Status and Body are zero for network-level failures.
type Error struct {
	Status  int    // HTTP status code, 0 for network failures
	Message string // Human-readable summary
	Body    string // Raw response body for HTTP-level failures
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("API error %d: %s", e.Status, e.Message)
	}
	return e.Message
}

// Client issues authenticated requests against the KanbanZone API.
// All calls are synchronous and blocking; the client holds no mutable state
// beyond the underlying connection pool and is safe for sequential reuse.
type Client struct {
	baseURL    string
	authHeader string
	httpClient *http.Client
}

// New creates a client for the given raw API key. The key is Base64-encoded
// into a Basic authorization header applied to every request. An empty
// baseURL selects the production endpoint.
func New(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		authHeader: "Basic " + base64.StdEncoding.EncodeToString([]byte(apiKey)),
		httpClient: &http.Client{},
	}
}

// Do performs a single API call and decodes the JSON response.
// Query parameters with empty values are dropped. A non-nil body is sent as
// JSON. Failures of any kind are returned as *Error; a 2xx response whose
// body is not JSON is also an *Error carrying the raw body text.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body any) (map[string]any, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		filtered := url.Values{}
		for key, values := range query {
			for _, value := range values {
				if value != "" {
					filtered.Add(key, value)
				}
			}
		}
		if encoded := filtered.Encode(); encoded != "" {
			endpoint += "?" + encoded
		}
	}

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", c.authHeader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Message: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{
			Status:  resp.StatusCode,
			Message: http.StatusText(resp.StatusCode),
			Body:    string(raw),
		}
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		message := strings.TrimSpace(string(raw))
		if message == "" {
			message = "Empty response"
		}
		return nil, &Error{Message: message}
	}
	return decoded, nil
}
