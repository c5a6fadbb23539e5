package api

import "context"

// Follow enables device notifications for updates from the given user.
func (s NotificationsService) Follow(ctx context.Context, format Format, creds Credentials, id string) (*Response, error) {
	return s.Invoke(ctx, "notifications.follow", format, map[string]string{"id": id}, creds)
}

// Leave disables device notifications for updates from the given user.
func (s NotificationsService) Leave(ctx context.Context, format Format, creds Credentials, id string) (*Response, error) {
	return s.Invoke(ctx, "notifications.leave", format, map[string]string{"id": id}, creds)
}
