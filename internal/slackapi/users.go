package slackapi

import (
	"context"
	"net/url"
)

// auth.* and users.* API

// AuthTestResponse is the identity of the token holder.
type AuthTestResponse struct {
	BaseResponse
	URL    string `json:"url"`
	Team   string `json:"team"`
	User   string `json:"user"`
	TeamID string `json:"team_id"`
	UserID string `json:"user_id"`
	BotID  string `json:"bot_id,omitempty"`
}

// AuthTest checks the validity of the token and returns the authenticated
// identity.
func (c *Client) AuthTest(ctx context.Context) (*AuthTestResponse, error) {
	var r AuthTestResponse
	if err := c.get(ctx, "auth.test", nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// Profile is the profile record of a user, passed through to the export
// unmodified.
type Profile struct {
	Title                 string `json:"title,omitempty"`
	Phone                 string `json:"phone,omitempty"`
	RealName              string `json:"real_name"`
	RealNameNormalized    string `json:"real_name_normalized,omitempty"`
	DisplayName           string `json:"display_name"`
	DisplayNameNormalized string `json:"display_name_normalized,omitempty"`
	StatusText            string `json:"status_text,omitempty"`
	StatusEmoji           string `json:"status_emoji,omitempty"`
	AvatarHash            string `json:"avatar_hash,omitempty"`
	Image72               string `json:"image_72,omitempty"`
	Image192              string `json:"image_192,omitempty"`
	Image512              string `json:"image_512,omitempty"`
	Email                 string `json:"email,omitempty"`
	Team                  string `json:"team,omitempty"`
}

// User is a single member of the workspace.
type User struct {
	ID       string  `json:"id"`
	TeamID   string  `json:"team_id,omitempty"`
	Name     string  `json:"name"`
	RealName string  `json:"real_name,omitempty"`
	Deleted  bool    `json:"deleted"`
	Profile  Profile `json:"profile"`
	IsAdmin  bool    `json:"is_admin,omitempty"`
	IsOwner  bool    `json:"is_owner,omitempty"`
	IsBot    bool    `json:"is_bot"`
	TZ       string  `json:"tz,omitempty"`
	TZOffset int64   `json:"tz_offset,omitempty"`
	Updated  int64   `json:"updated,omitempty"`
}

// UsersListResponse is the response of users.list.  The payload key is
// "members", not "users".
type UsersListResponse struct {
	BaseResponse
	Members []User `json:"members"`
}

// UsersList returns a single page of the workspace user directory.
func (c *Client) UsersList(ctx context.Context, cursor string) (*UsersListResponse, error) {
	form := url.Values{}
	if cursor != "" {
		form.Set("cursor", cursor)
	}
	var r UsersListResponse
	if err := c.get(ctx, "users.list", form, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// UsersProfileSetResponse is the response of users.profile.set.
type UsersProfileSetResponse struct {
	BaseResponse
	Profile Profile `json:"profile"`
}

// UsersProfileSet sets a single profile field of the user.  Not used by the
// export flow, but kept as part of the client contract.
func (c *Client) UsersProfileSet(ctx context.Context, userID, name, value string) (*UsersProfileSetResponse, error) {
	form := url.Values{}
	form.Set("user", userID)
	form.Set("name", name)
	form.Set("value", value)
	var r UsersProfileSetResponse
	if err := c.postForm(ctx, "users.profile.set", form, &r); err != nil {
		return nil, err
	}
	return &r, nil
}
