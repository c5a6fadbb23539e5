package api

import (
	"context"
	"fmt"
	"net/http"
	"sort"

	"github.com/birdsong/birdsong-cli/internal/resolve"
)

// OperationSpec declares one API operation: where it lives, how it is
// dispatched, which output formats it accepts, and how logical parameters
// map into the path, query string, or POST body.
type OperationSpec struct {
	Resource Resource
	Action   Action // empty for flat listings (<base>/<resource>.<format>)
	Method   string

	// Formats is the non-empty accepted-format set. Calls with a format
	// outside it fail validation before any network activity.
	Formats []Format

	// Required parameters; checked before the URL is built.
	Required []string

	// PathParam names the parameter whose value becomes the path suffix
	// (id or screen name). Empty means no suffix segment.
	PathParam string

	// QueryParams and BodyParams list parameter names in emission order.
	// Parameters with empty values are skipped.
	QueryParams []string
	BodyParams  []string
}

func (s OperationSpec) acceptsFormat(f Format) bool {
	for _, accepted := range s.Formats {
		if accepted == f {
			return true
		}
	}
	return false
}

var (
	allFormats = Formats
	recFormats = []Format{FormatJSON, FormatXML} // record-bearing operations
)

// operations is the full catalog, keyed by operation name. Names follow
// <resource>.<action>; the flat listings use the bare resource name.
var operations = map[string]OperationSpec{
	// Statuses.
	"statuses.public_timeline": {
		Resource: ResourceStatuses, Action: ActionPublicTimeline, Method: http.MethodGet,
		Formats: allFormats, QueryParams: []string{"since_id"},
	},
	"statuses.friends_timeline": {
		Resource: ResourceStatuses, Action: ActionFriendsTimeline, Method: http.MethodGet,
		Formats: allFormats, PathParam: "id",
		QueryParams: []string{"since", "since_id", "count", "page"},
	},
	"statuses.user_timeline": {
		Resource: ResourceStatuses, Action: ActionUserTimeline, Method: http.MethodGet,
		Formats: allFormats, PathParam: "id",
		QueryParams: []string{"since", "since_id", "count", "page"},
	},
	"statuses.show": {
		Resource: ResourceStatuses, Action: ActionShow, Method: http.MethodGet,
		Formats: recFormats, Required: []string{"id"}, PathParam: "id",
	},
	"statuses.update": {
		Resource: ResourceStatuses, Action: ActionUpdate, Method: http.MethodPost,
		Formats: recFormats, Required: []string{"status"},
		BodyParams: []string{"status", "in_reply_to_status_id"},
	},
	"statuses.replies": {
		Resource: ResourceStatuses, Action: ActionReplies, Method: http.MethodGet,
		Formats: allFormats, QueryParams: []string{"since", "since_id", "page"},
	},
	"statuses.destroy": {
		Resource: ResourceStatuses, Action: ActionDestroy, Method: http.MethodPost,
		Formats: recFormats, Required: []string{"id"}, PathParam: "id",
	},
	"statuses.friends": {
		Resource: ResourceStatuses, Action: ActionFriends, Method: http.MethodGet,
		Formats: recFormats, PathParam: "id", QueryParams: []string{"page"},
	},
	"statuses.followers": {
		Resource: ResourceStatuses, Action: ActionFollowers, Method: http.MethodGet,
		Formats: recFormats, QueryParams: []string{"page"},
	},
	"statuses.featured": {
		Resource: ResourceStatuses, Action: ActionFeatured, Method: http.MethodGet,
		Formats: recFormats,
	},

	// Users.
	"users.show": {
		Resource: ResourceUsers, Action: ActionShow, Method: http.MethodGet,
		Formats: recFormats, Required: []string{"id"}, PathParam: "id",
	},

	// Direct messages. The listing is the flat shape with no action segment.
	"direct_messages": {
		Resource: ResourceDirectMessages, Method: http.MethodGet,
		Formats: allFormats, QueryParams: []string{"since", "since_id", "page"},
	},
	"direct_messages.sent": {
		Resource: ResourceDirectMessages, Action: ActionSent, Method: http.MethodGet,
		Formats: recFormats, QueryParams: []string{"since", "since_id", "page"},
	},
	"direct_messages.new": {
		Resource: ResourceDirectMessages, Action: ActionNew, Method: http.MethodPost,
		Formats: recFormats, Required: []string{"user", "text"},
		BodyParams: []string{"user", "text"},
	},
	"direct_messages.destroy": {
		Resource: ResourceDirectMessages, Action: ActionDestroy, Method: http.MethodPost,
		Formats: recFormats, Required: []string{"id"}, PathParam: "id",
	},

	// Friendships.
	"friendships.create": {
		Resource: ResourceFriendships, Action: ActionCreate, Method: http.MethodPost,
		Formats: recFormats, Required: []string{"id"}, PathParam: "id",
	},
	"friendships.destroy": {
		Resource: ResourceFriendships, Action: ActionDestroy, Method: http.MethodPost,
		Formats: recFormats, Required: []string{"id"}, PathParam: "id",
	},
	"friendships.exists": {
		Resource: ResourceFriendships, Action: ActionExists, Method: http.MethodGet,
		Formats: recFormats, Required: []string{"user_a", "user_b"},
		QueryParams: []string{"user_a", "user_b"},
	},

	// Account.
	"account.verify_credentials": {
		Resource: ResourceAccount, Action: ActionVerifyCredentials, Method: http.MethodGet,
		Formats: recFormats,
	},
	"account.end_session": {
		Resource: ResourceAccount, Action: ActionEndSession, Method: http.MethodPost,
		Formats: recFormats,
	},
	"account.update_delivery_device": {
		Resource: ResourceAccount, Action: ActionUpdateDeliveryDevice, Method: http.MethodPost,
		Formats: recFormats, Required: []string{"device"}, BodyParams: []string{"device"},
	},
	"account.update_profile_colors": {
		Resource: ResourceAccount, Action: ActionUpdateProfileColors, Method: http.MethodPost,
		Formats: recFormats,
		BodyParams: []string{
			"profile_background_color", "profile_text_color", "profile_link_color",
			"profile_sidebar_fill_color", "profile_sidebar_border_color",
		},
	},
	"account.update_profile": {
		Resource: ResourceAccount, Action: ActionUpdateProfile, Method: http.MethodPost,
		Formats:    recFormats,
		BodyParams: []string{"name", "email", "url", "location", "description"},
	},
	"account.rate_limit_status": {
		Resource: ResourceAccount, Action: ActionRateLimitStatus, Method: http.MethodGet,
		Formats: recFormats,
	},

	// Favorites. The listing is flat, with an optional user suffix.
	"favorites": {
		Resource: ResourceFavorites, Method: http.MethodGet,
		Formats: allFormats, PathParam: "id", QueryParams: []string{"page"},
	},
	"favorites.create": {
		Resource: ResourceFavorites, Action: ActionCreate, Method: http.MethodPost,
		Formats: recFormats, Required: []string{"id"}, PathParam: "id",
	},
	"favorites.destroy": {
		Resource: ResourceFavorites, Action: ActionDestroy, Method: http.MethodPost,
		Formats: recFormats, Required: []string{"id"}, PathParam: "id",
	},

	// Notifications.
	"notifications.follow": {
		Resource: ResourceNotifications, Action: ActionFollow, Method: http.MethodPost,
		Formats: recFormats, Required: []string{"id"}, PathParam: "id",
	},
	"notifications.leave": {
		Resource: ResourceNotifications, Action: ActionLeave, Method: http.MethodPost,
		Formats: recFormats, Required: []string{"id"}, PathParam: "id",
	},

	// Blocks.
	"blocks.create": {
		Resource: ResourceBlocks, Action: ActionCreate, Method: http.MethodPost,
		Formats: recFormats, Required: []string{"id"}, PathParam: "id",
	},
	"blocks.destroy": {
		Resource: ResourceBlocks, Action: ActionDestroy, Method: http.MethodPost,
		Formats: recFormats, Required: []string{"id"}, PathParam: "id",
	},
}

// OperationNames returns all catalog keys, sorted.
func OperationNames() []string {
	names := make([]string, 0, len(operations))
	for name := range operations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Operation looks up a catalog entry by name.
func Operation(name string) (OperationSpec, bool) {
	spec, ok := operations[name]
	return spec, ok
}

// Invoke dispatches one named operation. Validation runs strictly before any
// network activity: operation lookup, then required parameters, then format
// acceptance; only then is the URL built and the request sent.
//
// For POST operations called without complete credentials, Invoke returns
// (nil, nil) without touching the network (see executePost).
func (c *Client) Invoke(ctx context.Context, name string, format Format, params map[string]string, creds Credentials) (*Response, error) {
	spec, ok := operations[name]
	if !ok {
		return nil, &ValidationError{
			Op:          name,
			Reason:      "unknown operation",
			Suggestions: resolve.Suggest(name, OperationNames()),
		}
	}

	for _, required := range spec.Required {
		if params[required] == "" {
			return nil, &ValidationError{
				Op:     name,
				Reason: fmt.Sprintf("missing required parameter %q", required),
			}
		}
	}
	if !spec.acceptsFormat(format) {
		return nil, &ValidationError{
			Op:     name,
			Reason: fmt.Sprintf("format %q not accepted (supported: %v)", format, spec.Formats),
		}
	}

	var suffix string
	if spec.PathParam != "" {
		suffix = params[spec.PathParam]
	}
	query := selectParams(params, spec.QueryParams)
	reqURL := buildURL(c.BaseURL, spec.Resource, spec.Action, format, suffix, query)

	if spec.Method == http.MethodPost {
		return c.executePost(ctx, reqURL, creds, selectParams(params, spec.BodyParams))
	}
	return c.executeGet(ctx, reqURL, creds)
}

// selectParams picks named parameters from params in declaration order,
// dropping absent ones.
func selectParams(params map[string]string, names []string) []Param {
	var out []Param
	for _, name := range names {
		if v := params[name]; v != "" {
			out = append(out, Param{Key: name, Value: v})
		}
	}
	return out
}
