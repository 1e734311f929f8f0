package catalog

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prittywoman/harmonyctl/internal/shared"
)

// Login exchanges a username and password for an API token. The request is
// unauthenticated; failures surface as [shared.ErrLoginFailed].
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", fmt.Errorf("%w: username and password are required", shared.ErrLoginFailed)
	}

	payload := map[string]string{"username": username, "password": password}
	var result struct {
		Token string `json:"token"`
	}

	if err := c.doJSON(ctx, http.MethodPost, "/api-auth/", payload, &result); err != nil {
		return "", fmt.Errorf("%w: %v", shared.ErrLoginFailed, err)
	}
	if result.Token == "" {
		return "", fmt.Errorf("%w: empty token in response", shared.ErrLoginFailed)
	}

	return result.Token, nil
}

// ProfileData fetches the authenticated user's profile.
func (c *Client) ProfileData(ctx context.Context) (*Profile, error) {
	var profile Profile
	if err := c.doRequest(ctx, http.MethodGet, "/users/profiles/profile_data/", nil, "", &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile patches the profile with the given user id.
func (c *Client) UpdateProfile(ctx context.Context, userID int, fields map[string]any) (*Profile, error) {
	var profile Profile
	path := fmt.Sprintf("/users/profiles/%d/", userID)
	if err := c.doJSON(ctx, http.MethodPatch, path, fields, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
