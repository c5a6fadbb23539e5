package api

import "context"

// Create befriends the given user as the authenticating user.
func (s FriendshipsService) Create(ctx context.Context, format Format, creds Credentials, id string) (*Response, error) {
	return s.Invoke(ctx, "friendships.create", format, map[string]string{"id": id}, creds)
}

// Destroy discontinues friendship with the given user.
func (s FriendshipsService) Destroy(ctx context.Context, format Format, creds Credentials, id string) (*Response, error) {
	return s.Invoke(ctx, "friendships.destroy", format, map[string]string{"id": id}, creds)
}

// Exists reports whether userA follows userB. The response body is a bare
// boolean in the requested format.
func (s FriendshipsService) Exists(ctx context.Context, format Format, creds Credentials, userA, userB string) (*Response, error) {
	return s.Invoke(ctx, "friendships.exists", format, map[string]string{"user_a": userA, "user_b": userB}, creds)
}
