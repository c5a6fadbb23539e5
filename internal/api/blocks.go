package api

import "context"

// Create blocks the given user.
func (s BlocksService) Create(ctx context.Context, format Format, creds Credentials, id string) (*Response, error) {
	return s.Invoke(ctx, "blocks.create", format, map[string]string{"id": id}, creds)
}

// Destroy unblocks the given user.
func (s BlocksService) Destroy(ctx context.Context, format Format, creds Credentials, id string) (*Response, error) {
	return s.Invoke(ctx, "blocks.destroy", format, map[string]string{"id": id}, creds)
}
