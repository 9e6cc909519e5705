package ports

import (
	"context"

	"github.com/quickbite/storefront/internal/core/domain"
)

// CredentialStore persists the bearer token and the user record across
// process restarts — the localStorage slot of the original client. Save and
// Clear always act on both entries together.
type CredentialStore interface {
	// Load returns the persisted token and user. A missing entry is not an
	// error: both return values are zero and err is nil.
	Load(ctx context.Context) (token string, user *domain.User, err error)
	Save(ctx context.Context, token string, user *domain.User) error
	Clear(ctx context.Context) error
}

// TokenSource is read by the HTTP transport at call time to build the
// Authorization header. Implementations must never hand out a token cached
// from before the last logout.
type TokenSource interface {
	Token() string
}
