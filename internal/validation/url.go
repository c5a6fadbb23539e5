// Package validation checks user-supplied API base URLs before they are
// stored or used for requests.
package validation

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidateBaseURL checks an API base URL and returns it normalized:
// scheme://host[:port], lowercased host, no trailing slash. Embedded
// credentials, query strings, and fragments are rejected because they would
// silently leak into every request URL built on top of the base.
func ValidateBaseURL(rawURL string) (string, error) {
	raw := strings.TrimSpace(rawURL)
	if raw == "" {
		return "", fmt.Errorf("base URL cannot be empty")
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid base URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("invalid base URL scheme %q: only http and https are allowed", parsed.Scheme)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("invalid base URL: missing host")
	}
	if parsed.User != nil {
		return "", fmt.Errorf("base URL must not contain credentials")
	}
	if parsed.RawQuery != "" || parsed.Fragment != "" {
		return "", fmt.Errorf("base URL must not contain a query string or fragment")
	}

	base := fmt.Sprintf("%s://%s", parsed.Scheme, strings.ToLower(parsed.Host))
	if path := strings.TrimRight(parsed.Path, "/"); path != "" {
		base += path
	}
	return base, nil
}
