// Package urlparse extracts user and status identifiers from microblog web
// URLs, so commands accept a pasted link wherever they accept an id.
package urlparse

import (
	"fmt"
	"net/url"
	"regexp"
)

// ParsedURL is the resource a web URL points at: a user page, or one of that
// user's statuses.
type ParsedURL struct {
	BaseURL  string
	User     string
	StatusID string // empty for profile URLs
}

// urlPattern matches /{user} and /{user}/statuses/{id} paths.
var urlPattern = regexp.MustCompile(`^/([A-Za-z0-9_]+)(?:/statuses/(\d+))?/?$`)

// Parse extracts the user and optional status id from a web URL like
// https://twitter.com/alice or https://twitter.com/alice/statuses/1431.
func Parse(rawURL string) (*ParsedURL, error) {
	if rawURL == "" {
		return nil, fmt.Errorf("URL cannot be empty")
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("invalid URL scheme %q: expected http or https", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("invalid URL: missing host")
	}

	matches := urlPattern.FindStringSubmatch(parsed.Path)
	if matches == nil {
		return nil, fmt.Errorf("unrecognized URL path %q: expected /{user} or /{user}/statuses/{id}", parsed.Path)
	}

	return &ParsedURL{
		BaseURL:  fmt.Sprintf("%s://%s", parsed.Scheme, parsed.Host),
		User:     matches[1],
		StatusID: matches[2],
	}, nil
}

// HasStatusID reports whether the URL names a single status.
func (p *ParsedURL) HasStatusID() bool {
	return p.StatusID != ""
}
