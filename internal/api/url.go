package api

import (
	"net/url"
	"strings"
)

// Format is the wire encoding of the response body, selected per call.
// The canonical lowercase name doubles as the URL extension.
type Format string

const (
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
	FormatRSS  Format = "rss"
	FormatAtom Format = "atom"
)

// Formats lists all supported output formats.
var Formats = []Format{FormatJSON, FormatXML, FormatRSS, FormatAtom}

// ParseFormat converts a user-supplied format name into a Format.
func ParseFormat(s string) (Format, bool) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatJSON:
		return FormatJSON, true
	case FormatXML:
		return FormatXML, true
	case FormatRSS:
		return FormatRSS, true
	case FormatAtom:
		return FormatAtom, true
	}
	return "", false
}

// Resource is a top-level API noun.
type Resource string

const (
	ResourceStatuses       Resource = "statuses"
	ResourceAccount        Resource = "account"
	ResourceUsers          Resource = "users"
	ResourceDirectMessages Resource = "direct_messages"
	ResourceFriendships    Resource = "friendships"
	ResourceFavorites      Resource = "favorites"
	ResourceNotifications  Resource = "notifications"
	ResourceBlocks         Resource = "blocks"
)

// Action is a verb applied to a resource. Flat listing operations
// (direct_messages, favorites) carry no action segment at all.
type Action string

const (
	ActionPublicTimeline       Action = "public_timeline"
	ActionFriendsTimeline      Action = "friends_timeline"
	ActionUserTimeline         Action = "user_timeline"
	ActionShow                 Action = "show"
	ActionUpdate               Action = "update"
	ActionReplies              Action = "replies"
	ActionDestroy              Action = "destroy"
	ActionFriends              Action = "friends"
	ActionFollowers            Action = "followers"
	ActionFeatured             Action = "featured"
	ActionSent                 Action = "sent"
	ActionNew                  Action = "new"
	ActionCreate               Action = "create"
	ActionExists               Action = "exists"
	ActionVerifyCredentials    Action = "verify_credentials"
	ActionEndSession           Action = "end_session"
	ActionUpdateDeliveryDevice Action = "update_delivery_device"
	ActionUpdateProfileColors  Action = "update_profile_colors"
	ActionUpdateProfile        Action = "update_profile"
	ActionRateLimitStatus      Action = "rate_limit_status"
	ActionFollow               Action = "follow"
	ActionLeave                Action = "leave"
)

// Param is a single key/value pair. Query strings and form bodies are built
// from []Param rather than url.Values so that the caller's ordering survives
// encoding intact.
type Param struct {
	Key   string
	Value string
}

// buildURL assembles <base>/<resource>/<action>[/<suffix>].<format> plus an
// optional query string. An empty action yields the flat
// <base>/<resource>.<format> shape used by the direct_messages and favorites
// listings. Pure and deterministic.
func buildURL(base string, resource Resource, action Action, format Format, suffix string, query []Param) string {
	var b strings.Builder
	b.WriteString(strings.TrimRight(base, "/"))
	b.WriteByte('/')
	b.WriteString(string(resource))
	if action != "" {
		b.WriteByte('/')
		b.WriteString(string(action))
	}
	if suffix != "" {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(suffix))
	}
	b.WriteByte('.')
	b.WriteString(string(format))
	if len(query) > 0 {
		b.WriteByte('?')
		b.WriteString(encodeParams(query))
	}
	return b.String()
}

// encodeParams percent-encodes params in order, joined with '&'. Never emits
// a trailing separator.
func encodeParams(params []Param) string {
	var b strings.Builder
	for i, p := range params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}
