package cmd

import (
	"errors"
	"fmt"

	"github.com/birdsong/birdsong-cli/internal/api"
	"github.com/birdsong/birdsong-cli/internal/config"
)

const projectURL = "https://github.com/birdsong/birdsong-cli"

// getClient builds an API client from the active profile. A missing profile
// is not an error here: unauthenticated GETs (public timeline, featured) are
// legal, and POSTs without credentials follow the documented silent no-op.
func getClient() (*api.Client, api.Credentials, error) {
	var creds api.Credentials
	baseURL := flags.BaseURL
	source := ""

	account, err := config.Load(flags.Profile)
	switch {
	case err == nil:
		creds = api.Credentials{Username: account.Username, Password: account.Password}
		if baseURL == "" {
			baseURL = account.BaseURL
		}
		source = account.Source
	case errors.Is(err, config.ErrNotConfigured):
		// fall through with empty credentials
	default:
		return nil, creds, err
	}

	client := api.New(baseURL)
	client.UserAgent = fmt.Sprintf("birdsong-cli/%s", version)
	client.Identity = api.ClientIdentity{
		Name:    "birdsong",
		Version: version,
		URL:     projectURL,
	}
	client.Source = source
	return client, creds, nil
}

// requireClient is getClient but with credentials mandatory, for commands
// where a silent no-op would only confuse.
func requireClient() (*api.Client, api.Credentials, error) {
	client, creds, err := getClient()
	if err != nil {
		return nil, creds, err
	}
	if creds.Username == "" || creds.Password == "" {
		return nil, creds, config.ErrNotConfigured
	}
	return client, creds, nil
}
