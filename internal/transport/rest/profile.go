package rest

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/quickbite/storefront/internal/core/domain"
)

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// CurrentUser fetches the fresh profile for the held token. Bootstrap uses
// it to validate a persisted session instead of trusting the stored record.
func (c *Client) CurrentUser(ctx context.Context) (*domain.User, error) {
	var out domain.User
	if err := c.do(ctx, "user_me", http.MethodGet, "/user/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProfile(ctx context.Context, user *domain.User) (*domain.User, error) {
	var out domain.User
	if err := c.do(ctx, "user_update", http.MethodPut, "/user/update", user, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ChangePassword(ctx context.Context, current, next string) error {
	req := changePasswordRequest{CurrentPassword: current, NewPassword: next}
	return c.do(ctx, "user_change_password", http.MethodPost, "/user/change-password", req, nil)
}

// UploadProfileImage sends the image as multipart form data under the
// "image" field and returns the updated user record.
func (c *Client) UploadProfileImage(ctx context.Context, filename string, data []byte) (*domain.User, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("image", filename)
	if err != nil {
		return nil, fmt.Errorf("rest: build multipart: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("rest: write multipart: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("rest: close multipart: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/user/profile-image", &buf)
	if err != nil {
		return nil, fmt.Errorf("rest: build upload request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var out domain.User
	if err := c.roundTrip("user_profile_image", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
