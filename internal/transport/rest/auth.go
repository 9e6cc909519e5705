package rest

import (
	"context"
	"net/http"

	"github.com/quickbite/storefront/internal/core/domain"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type registerRequest struct {
	FirstName string `json:"fname"`
	LastName  string `json:"lname"`
	Email     string `json:"email"`
	Contact   string `json:"contact"`
	Password  string `json:"password"`
}

// Login exchanges credentials for a token and user record. Credential
// validation is the backend's job; a rejection comes back verbatim.
func (c *Client) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	var out loginResponse
	err := c.do(ctx, "login", http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return "", nil, err
	}
	return out.Token, out.User, nil
}

// Register creates a new customer account.
func (c *Client) Register(ctx context.Context, fname, lname, email, contact, password string) (*domain.User, error) {
	var out domain.User
	req := registerRequest{FirstName: fname, LastName: lname, Email: email, Contact: contact, Password: password}
	if err := c.do(ctx, "register", http.MethodPost, "/auth/register", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
