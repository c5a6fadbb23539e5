package api

import "context"

// ProfileColors holds the hex color values accepted by
// account/update_profile_colors. Empty fields are left unchanged server-side.
type ProfileColors struct {
	Background    string
	Text          string
	Link          string
	SidebarFill   string
	SidebarBorder string
}

// Profile holds the fields accepted by account/update_profile. Empty fields
// are left unchanged server-side.
type Profile struct {
	Name        string
	Email       string
	URL         string
	Location    string
	Description string
}

// VerifyCredentials checks the supplied credentials. A 401 surfaces as
// *APIError.
func (s AccountService) VerifyCredentials(ctx context.Context, format Format, creds Credentials) (*Response, error) {
	return s.Invoke(ctx, "account.verify_credentials", format, nil, creds)
}

// EndSession signs the authenticating user out.
func (s AccountService) EndSession(ctx context.Context, format Format, creds Credentials) (*Response, error) {
	return s.Invoke(ctx, "account.end_session", format, nil, creds)
}

// UpdateDeliveryDevice sets which device receives notifications ("sms", "im",
// or "none").
func (s AccountService) UpdateDeliveryDevice(ctx context.Context, format Format, creds Credentials, device string) (*Response, error) {
	return s.Invoke(ctx, "account.update_delivery_device", format, map[string]string{"device": device}, creds)
}

// UpdateProfileColors sets the authenticating user's profile colors.
func (s AccountService) UpdateProfileColors(ctx context.Context, format Format, creds Credentials, colors ProfileColors) (*Response, error) {
	params := map[string]string{
		"profile_background_color":     colors.Background,
		"profile_text_color":           colors.Text,
		"profile_link_color":           colors.Link,
		"profile_sidebar_fill_color":   colors.SidebarFill,
		"profile_sidebar_border_color": colors.SidebarBorder,
	}
	return s.Invoke(ctx, "account.update_profile_colors", format, params, creds)
}

// UpdateProfile sets the authenticating user's profile fields.
func (s AccountService) UpdateProfile(ctx context.Context, format Format, creds Credentials, profile Profile) (*Response, error) {
	params := map[string]string{
		"name":        profile.Name,
		"email":       profile.Email,
		"url":         profile.URL,
		"location":    profile.Location,
		"description": profile.Description,
	}
	return s.Invoke(ctx, "account.update_profile", format, params, creds)
}

// RateLimitStatus reports the remaining API request budget for the
// authenticating user, or the calling IP when unauthenticated.
func (s AccountService) RateLimitStatus(ctx context.Context, format Format, creds Credentials) (*Response, error) {
	return s.Invoke(ctx, "account.rate_limit_status", format, nil, creds)
}
