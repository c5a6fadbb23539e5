package api

import (
	"context"
	"strconv"
)

// List fetches the favorite statuses of the authenticating user, or of the
// user named by id. Uses the flat favorites.<format> URL shape.
func (s FavoritesService) List(ctx context.Context, format Format, creds Credentials, id string, page int) (*Response, error) {
	params := map[string]string{}
	if id != "" {
		params["id"] = id
	}
	if page > 0 {
		params["page"] = strconv.Itoa(page)
	}
	return s.Invoke(ctx, "favorites", format, params, creds)
}

// Create favorites the status with the given id.
func (s FavoritesService) Create(ctx context.Context, format Format, creds Credentials, id string) (*Response, error) {
	return s.Invoke(ctx, "favorites.create", format, map[string]string{"id": id}, creds)
}

// Destroy un-favorites the status with the given id.
func (s FavoritesService) Destroy(ctx context.Context, format Format, creds Credentials, id string) (*Response, error) {
	return s.Invoke(ctx, "favorites.destroy", format, map[string]string{"id": id}, creds)
}
