package api

import "context"

// Show fetches extended information for a single user by id or screen name.
func (s UsersService) Show(ctx context.Context, format Format, creds Credentials, id string) (*Response, error) {
	return s.Invoke(ctx, "users.show", format, map[string]string{"id": id}, creds)
}
