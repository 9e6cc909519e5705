package domain

import "errors"

var (
	// ErrSessionExpired is the uniform mapping of any 401/403 backend
	// response; observing it forces a logout.
	ErrSessionExpired = errors.New("session expired or invalid")

	// ErrNotAuthenticated guards operations that require an identity.
	ErrNotAuthenticated = errors.New("not authenticated")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidQuantity    = errors.New("quantity must be at least 1")
	ErrNotFound           = errors.New("resource not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrProductNotFound    = errors.New("product not found")
	ErrCartItemNotFound   = errors.New("cart item not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmptyCart          = errors.New("cart is empty")

	// ErrBackend wraps any other non-2xx backend response.
	ErrBackend = errors.New("backend error")
)
