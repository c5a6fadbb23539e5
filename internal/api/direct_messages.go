package api

import (
	"context"
	"strconv"
)

// MessageOptions filters direct-message listings.
type MessageOptions struct {
	Since   string
	SinceID string
	Page    int
}

func (o MessageOptions) params() map[string]string {
	p := map[string]string{}
	if o.Since != "" {
		p["since"] = o.Since
	}
	if o.SinceID != "" {
		p["since_id"] = o.SinceID
	}
	if o.Page > 0 {
		p["page"] = strconv.Itoa(o.Page)
	}
	return p
}

// List fetches the 20 most recent direct messages sent to the authenticating
// user. Uses the flat direct_messages.<format> URL shape.
func (s DirectMessagesService) List(ctx context.Context, format Format, creds Credentials, opts MessageOptions) (*Response, error) {
	return s.Invoke(ctx, "direct_messages", format, opts.params(), creds)
}

// Sent fetches the direct messages sent by the authenticating user.
func (s DirectMessagesService) Sent(ctx context.Context, format Format, creds Credentials, opts MessageOptions) (*Response, error) {
	return s.Invoke(ctx, "direct_messages.sent", format, opts.params(), creds)
}

// Send delivers a new direct message to the given user.
func (s DirectMessagesService) Send(ctx context.Context, format Format, creds Credentials, user, text string) (*Response, error) {
	return s.Invoke(ctx, "direct_messages.new", format, map[string]string{"user": user, "text": text}, creds)
}

// Destroy deletes a direct message by id.
func (s DirectMessagesService) Destroy(ctx context.Context, format Format, creds Credentials, id string) (*Response, error) {
	return s.Invoke(ctx, "direct_messages.destroy", format, map[string]string{"id": id}, creds)
}
