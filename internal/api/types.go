package api

import (
	"encoding/json"
	"fmt"
)

// Domain types for JSON-format responses. Decoding is a downstream concern:
// the core returns raw bodies, and these helpers are only applied to
// non-empty JSON bodies by callers that want typed records (the CLI's text
// rendering, mainly). XML-family bodies are passed through untouched.

// User is a user record as embedded in statuses and returned by users/show.
type User struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	ScreenName      string  `json:"screen_name"`
	Location        string  `json:"location"`
	Description     string  `json:"description"`
	URL             string  `json:"url"`
	Protected       bool    `json:"protected"`
	FollowersCount  int     `json:"followers_count"`
	FriendsCount    int     `json:"friends_count"`
	FavouritesCount int     `json:"favourites_count"`
	StatusesCount   int     `json:"statuses_count"`
	Status          *Status `json:"status,omitempty"`
}

// Status is a single status record.
type Status struct {
	ID                int64  `json:"id"`
	CreatedAt         string `json:"created_at"`
	Text              string `json:"text"`
	Source            string `json:"source"`
	Truncated         bool   `json:"truncated"`
	InReplyToStatusID int64  `json:"in_reply_to_status_id"`
	InReplyToUserID   int64  `json:"in_reply_to_user_id"`
	Favorited         bool   `json:"favorited"`
	User              *User  `json:"user,omitempty"`
}

// DirectMessage is a single direct-message record.
type DirectMessage struct {
	ID                  int64  `json:"id"`
	CreatedAt           string `json:"created_at"`
	Text                string `json:"text"`
	SenderID            int64  `json:"sender_id"`
	SenderScreenName    string `json:"sender_screen_name"`
	RecipientID         int64  `json:"recipient_id"`
	RecipientScreenName string `json:"recipient_screen_name"`
	Sender              *User  `json:"sender,omitempty"`
	Recipient           *User  `json:"recipient,omitempty"`
}

// RateLimitStatus is the account/rate_limit_status record.
type RateLimitStatus struct {
	RemainingHits      int    `json:"remaining_hits"`
	HourlyLimit        int    `json:"hourly_limit"`
	ResetTime          string `json:"reset_time"`
	ResetTimeInSeconds int64  `json:"reset_time_in_seconds"`
}

// DecodeStatuses decodes a JSON array of statuses.
func DecodeStatuses(body []byte) ([]Status, error) {
	var statuses []Status
	if err := json.Unmarshal(body, &statuses); err != nil {
		return nil, fmt.Errorf("unexpected API response format (JSON decode failed): %w", err)
	}
	return statuses, nil
}

// DecodeStatus decodes a single JSON status.
func DecodeStatus(body []byte) (*Status, error) {
	var status Status
	if err := json.Unmarshal(body, &status); err != nil {
		return nil, fmt.Errorf("unexpected API response format (JSON decode failed): %w", err)
	}
	return &status, nil
}

// DecodeUsers decodes a JSON array of users.
func DecodeUsers(body []byte) ([]User, error) {
	var users []User
	if err := json.Unmarshal(body, &users); err != nil {
		return nil, fmt.Errorf("unexpected API response format (JSON decode failed): %w", err)
	}
	return users, nil
}

// DecodeUser decodes a single JSON user.
func DecodeUser(body []byte) (*User, error) {
	var user User
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("unexpected API response format (JSON decode failed): %w", err)
	}
	return &user, nil
}

// DecodeDirectMessages decodes a JSON array of direct messages.
func DecodeDirectMessages(body []byte) ([]DirectMessage, error) {
	var messages []DirectMessage
	if err := json.Unmarshal(body, &messages); err != nil {
		return nil, fmt.Errorf("unexpected API response format (JSON decode failed): %w", err)
	}
	return messages, nil
}

// DecodeRateLimitStatus decodes the rate-limit record.
func DecodeRateLimitStatus(body []byte) (*RateLimitStatus, error) {
	var status RateLimitStatus
	if err := json.Unmarshal(body, &status); err != nil {
		return nil, fmt.Errorf("unexpected API response format (JSON decode failed): %w", err)
	}
	return &status, nil
}
