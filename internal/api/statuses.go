package api

import (
	"context"
	"strconv"
)

// TimelineOptions filters timeline fetches. Zero values are omitted from the
// request entirely.
type TimelineOptions struct {
	ID      string // user id or screen name (path suffix where supported)
	Since   string // HTTP-date cutoff
	SinceID string
	Count   int
	Page    int
}

func (o TimelineOptions) params() map[string]string {
	p := map[string]string{}
	if o.ID != "" {
		p["id"] = o.ID
	}
	if o.Since != "" {
		p["since"] = o.Since
	}
	if o.SinceID != "" {
		p["since_id"] = o.SinceID
	}
	if o.Count > 0 {
		p["count"] = strconv.Itoa(o.Count)
	}
	if o.Page > 0 {
		p["page"] = strconv.Itoa(o.Page)
	}
	return p
}

// PublicTimeline fetches the 20 most recent public statuses. No credentials
// required.
func (s StatusesService) PublicTimeline(ctx context.Context, format Format, sinceID string) (*Response, error) {
	params := map[string]string{}
	if sinceID != "" {
		params["since_id"] = sinceID
	}
	return s.Invoke(ctx, "statuses.public_timeline", format, params, Credentials{})
}

// FriendsTimeline fetches the authenticating user's friends timeline, or a
// named user's via opts.ID.
func (s StatusesService) FriendsTimeline(ctx context.Context, format Format, creds Credentials, opts TimelineOptions) (*Response, error) {
	return s.Invoke(ctx, "statuses.friends_timeline", format, opts.params(), creds)
}

// UserTimeline fetches a single user's timeline.
func (s StatusesService) UserTimeline(ctx context.Context, format Format, creds Credentials, opts TimelineOptions) (*Response, error) {
	return s.Invoke(ctx, "statuses.user_timeline", format, opts.params(), creds)
}

// Show fetches a single status by id.
func (s StatusesService) Show(ctx context.Context, format Format, id string) (*Response, error) {
	return s.Invoke(ctx, "statuses.show", format, map[string]string{"id": id}, Credentials{})
}

// Update posts a new status. inReplyTo is optional.
func (s StatusesService) Update(ctx context.Context, format Format, creds Credentials, status, inReplyTo string) (*Response, error) {
	params := map[string]string{"status": status}
	if inReplyTo != "" {
		params["in_reply_to_status_id"] = inReplyTo
	}
	return s.Invoke(ctx, "statuses.update", format, params, creds)
}

// Replies fetches the 20 most recent @replies for the authenticating user.
func (s StatusesService) Replies(ctx context.Context, format Format, creds Credentials, opts TimelineOptions) (*Response, error) {
	return s.Invoke(ctx, "statuses.replies", format, opts.params(), creds)
}

// Destroy deletes a status owned by the authenticating user.
func (s StatusesService) Destroy(ctx context.Context, format Format, creds Credentials, id string) (*Response, error) {
	return s.Invoke(ctx, "statuses.destroy", format, map[string]string{"id": id}, creds)
}

// Friends lists the users the given (or authenticating) user follows.
func (s StatusesService) Friends(ctx context.Context, format Format, creds Credentials, id string, page int) (*Response, error) {
	params := map[string]string{}
	if id != "" {
		params["id"] = id
	}
	if page > 0 {
		params["page"] = strconv.Itoa(page)
	}
	return s.Invoke(ctx, "statuses.friends", format, params, creds)
}

// Followers lists the authenticating user's followers.
func (s StatusesService) Followers(ctx context.Context, format Format, creds Credentials, page int) (*Response, error) {
	params := map[string]string{}
	if page > 0 {
		params["page"] = strconv.Itoa(page)
	}
	return s.Invoke(ctx, "statuses.followers", format, params, creds)
}

// Featured lists the featured users.
func (s StatusesService) Featured(ctx context.Context, format Format) (*Response, error) {
	return s.Invoke(ctx, "statuses.featured", format, nil, Credentials{})
}
