package api

import (
	"context"
	"net/http"
)

type UpdateProfileRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// Profile endpoints are consumed as ok/error only; any response body is
// discarded.

func (c *Client) UpdateProfile(ctx context.Context, req UpdateProfileRequest) error {
	return c.doJSON(ctx, request{
		method:   http.MethodPut,
		path:     "/api/user/update-profile",
		json:     req,
		fallback: "profile update failed",
	}, nil)
}

func (c *Client) ChangePassword(ctx context.Context, req ChangePasswordRequest) error {
	return c.doJSON(ctx, request{
		method:   http.MethodPut,
		path:     "/api/user/change-password",
		json:     req,
		fallback: "password change failed",
	}, nil)
}
