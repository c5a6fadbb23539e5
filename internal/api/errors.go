package api

import (
	"fmt"
	"strings"
)

// APIError represents a non-2xx response from the API (other than the GET 404
// case, which is normalized to Response.NoContent).
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Body)
}

// ValidationError is raised before any network activity: unknown operation,
// missing required parameter, or an output format outside the operation's
// accepted set. Deterministic and locally detectable.
type ValidationError struct {
	Op          string
	Reason      string
	Suggestions []string // populated for unknown operation names
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "invalid call to %q: %s", e.Op, e.Reason)
	if len(e.Suggestions) > 0 {
		b.WriteString(" (did you mean: ")
		b.WriteString(strings.Join(e.Suggestions, ", "))
		b.WriteString("?)")
	}
	return b.String()
}
