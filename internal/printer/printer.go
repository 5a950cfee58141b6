package printer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/kanbanzone/kz/pkg/kanbanzone"
)

func init() {
	// Force color output even when not connected to TTY
	// Users can disable with NO_COLOR environment variable
	if os.Getenv("NO_COLOR") == "" {
		color.NoColor = false
	}
}

var (
	yellow = color.New(color.FgYellow)
	cyan   = color.New(color.FgCyan)
)

// Out is where JSON documents are written. Overridden in tests.
var Out io.Writer = os.Stdout

// JSON writes v as a single pretty-printed JSON document followed by a
// trailing newline. Every successful command invocation emits exactly one.
func JSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Fprintln(Out, string(data))
	return nil
}

// reportedError marks an error whose JSON document has already been written,
// so main does not render it a second time.
type reportedError struct {
	err error
}

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

// Fail writes the uniform error document for err to stdout and returns a
// marked error for cobra (not printed again due to SilenceErrors).
// API errors carry their status and raw body; every other error renders as a
// message-only document.
func Fail(err error) error {
	doc := map[string]any{
		"error":   true,
		"message": err.Error(),
	}

	var apiErr *kanbanzone.Error
	if errors.As(err, &apiErr) {
		doc["message"] = apiErr.Message
		if apiErr.Status != 0 {
			doc["status"] = apiErr.Status
		}
		if apiErr.Body != "" {
			doc["body"] = apiErr.Body
		}
	}

	_ = JSON(doc)
	return reportedError{err: err}
}

// Reported returns true if err was already rendered by Fail.
func Reported(err error) bool {
	var r reportedError
	return errors.As(err, &r)
}

// Warning prints a diagnostic to stderr in yellow. stdout stays reserved for
// the JSON document.
func Warning(format string, a ...any) {
	yellow.Fprintf(os.Stderr, "⚠️  %s", fmt.Sprintf(format, a...))
}

// Step prints a progress diagnostic to stderr (used under --verbose).
func Step(format string, a ...any) {
	cyan.Fprintf(os.Stderr, "→ %s", fmt.Sprintf(format, a...))
}
