package cmd

import (
	"fmt"
	"strings"

	"github.com/birdsong/birdsong-cli/internal/urlparse"
)

// statusIDArg resolves a status argument that may be either a bare id or a
// pasted web URL like https://twitter.com/alice/statuses/1431.
func statusIDArg(arg string) (string, error) {
	if !strings.HasPrefix(arg, "http://") && !strings.HasPrefix(arg, "https://") {
		return arg, nil
	}
	parsed, err := urlparse.Parse(arg)
	if err != nil {
		return "", err
	}
	if !parsed.HasStatusID() {
		return "", fmt.Errorf("URL %q does not point at a status", arg)
	}
	return parsed.StatusID, nil
}

// userArg resolves a user argument that may be either a screen name or a
// profile URL like https://twitter.com/alice.
func userArg(arg string) (string, error) {
	if !strings.HasPrefix(arg, "http://") && !strings.HasPrefix(arg, "https://") {
		return arg, nil
	}
	parsed, err := urlparse.Parse(arg)
	if err != nil {
		return "", err
	}
	return parsed.User, nil
}
