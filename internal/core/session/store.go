// Package session owns the authenticated identity and the shopping cart.
//
// The Store is the single source of truth for both: pages read from it,
// mutations go through it, and it alone talks to the credential store and the
// cart/profile endpoints. Cart state is never edited optimistically — every
// mutation applies the cart the server returns, or nothing at all.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/quickbite/storefront/internal/core/domain"
	"github.com/quickbite/storefront/internal/core/ports"
)

// Backend is the slice of the REST surface the store itself needs: identity
// refresh plus the four cart calls.
type Backend interface {
	CurrentUser(ctx context.Context) (*domain.User, error)
	ports.CartGateway
}

// Store holds the session aggregate {identity, cart, ready}.
//
// Network calls are made outside the lock, so two mutations fired in quick
// succession race to apply their responses and the last one wins — the same
// behaviour the backend contract implies, since it carries no cart version.
type Store struct {
	backend Backend
	creds   ports.CredentialStore
	tokens  *TokenHolder
	log     zerolog.Logger

	bootstrap sync.Once

	mu    sync.RWMutex
	user  *domain.User
	cart  []domain.CartLine
	ready bool
}

func New(backend Backend, creds ports.CredentialStore, tokens *TokenHolder, log zerolog.Logger) *Store {
	return &Store{
		backend: backend,
		creds:   creds,
		tokens:  tokens,
		log:     log,
	}
}

// Bootstrap restores the session from persisted credentials. It runs its
// body at most once; ready becomes true after the first attempt resolves,
// whatever the outcome. A stale token is not an error: the credentials are
// cleared and the session is anonymous.
func (s *Store) Bootstrap(ctx context.Context) error {
	var err error
	s.bootstrap.Do(func() {
		err = s.restore(ctx)
		s.mu.Lock()
		s.ready = true
		s.mu.Unlock()
	})
	return err
}

func (s *Store) restore(ctx context.Context) error {
	token, _, err := s.creds.Load(ctx)
	if err != nil {
		return err
	}
	if token == "" {
		return nil
	}

	// Validate against the backend instead of trusting the persisted record.
	s.tokens.set(token)
	user, err := s.backend.CurrentUser(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("persisted session is invalid, discarding")
		s.ForceLogout()
		if errors.Is(err, domain.ErrSessionExpired) {
			return nil
		}
		return err
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()

	return s.refreshCart(ctx)
}

// Login installs a token/user pair obtained from the auth endpoint, persists
// both, and pulls the user's cart. Both values are required.
func (s *Store) Login(ctx context.Context, token string, user *domain.User) error {
	if token == "" || user == nil {
		return domain.ErrInvalidCredentials
	}
	if err := s.creds.Save(ctx, token, user); err != nil {
		return err
	}
	s.tokens.set(token)

	u := *user
	s.mu.Lock()
	s.user = &u
	s.cart = nil
	s.mu.Unlock()

	return s.refreshCart(ctx)
}

// Logout drops the identity, the cart, the in-memory token and the persisted
// credentials. Calling it while anonymous is a no-op with the same result.
func (s *Store) Logout(ctx context.Context) error {
	err := s.creds.Clear(ctx)
	s.tokens.set("")

	s.mu.Lock()
	s.user = nil
	s.cart = nil
	s.mu.Unlock()

	return err
}

// ForceLogout is the recovery path for an expired or revoked token. It is
// wired as the transport's on-unauthorized hook and is also invoked when any
// store operation observes ErrSessionExpired.
func (s *Store) ForceLogout() {
	if err := s.Logout(context.Background()); err != nil {
		s.log.Error().Err(err).Msg("clearing persisted credentials failed")
	}
}

// UpdateUser replaces the identity fields after a profile edit and
// re-persists the user record. The cart is untouched. State is left as-is
// when persisting fails.
func (s *Store) UpdateUser(ctx context.Context, user *domain.User) error {
	if user == nil {
		return domain.ErrInvalidCredentials
	}
	if !s.Authenticated() {
		return domain.ErrNotAuthenticated
	}
	if err := s.creds.Save(ctx, s.tokens.Token(), user); err != nil {
		return err
	}

	u := *user
	s.mu.Lock()
	s.user = &u
	s.mu.Unlock()
	return nil
}

// AddToCart adds quantity units of a product. The visible state change is the
// cart the server returns.
func (s *Store) AddToCart(ctx context.Context, product domain.Product, quantity int) error {
	if quantity < 1 {
		return domain.ErrInvalidQuantity
	}
	if !s.Authenticated() {
		return domain.ErrNotAuthenticated
	}
	lines, err := s.backend.AddToCart(ctx, product.ID, quantity)
	return s.applyCart(lines, err)
}

// UpdateQuantity sets the quantity of an existing cart line.
func (s *Store) UpdateQuantity(ctx context.Context, lineID string, quantity int) error {
	if quantity < 1 {
		return domain.ErrInvalidQuantity
	}
	if !s.Authenticated() {
		return domain.ErrNotAuthenticated
	}
	lines, err := s.backend.UpdateQuantity(ctx, lineID, quantity)
	return s.applyCart(lines, err)
}

// RemoveFromCart deletes a cart line.
func (s *Store) RemoveFromCart(ctx context.Context, lineID string) error {
	if !s.Authenticated() {
		return domain.ErrNotAuthenticated
	}
	lines, err := s.backend.RemoveFromCart(ctx, lineID)
	return s.applyCart(lines, err)
}

// ClearCart empties the local cart without a backend call. Used after an
// order has been placed, when the server has already consumed the cart.
func (s *Store) ClearCart() {
	s.mu.Lock()
	s.cart = nil
	s.mu.Unlock()
}

func (s *Store) refreshCart(ctx context.Context) error {
	lines, err := s.backend.Cart(ctx)
	return s.applyCart(lines, err)
}

// applyCart replaces the whole cart with the server's view. On error the
// local cart is left at its last known-good value; an expired session
// additionally forces logout.
func (s *Store) applyCart(lines []domain.CartLine, err error) error {
	if err != nil {
		if errors.Is(err, domain.ErrSessionExpired) {
			s.ForceLogout()
		}
		return err
	}

	s.mu.Lock()
	// A response landing after logout must not resurrect a cart for an
	// absent identity.
	if s.user != nil {
		s.cart = lines
	}
	s.mu.Unlock()
	return nil
}

// Ready reports whether the initial bootstrap attempt has resolved.
// Identity-dependent rendering must wait for it.
func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// Authenticated reports whether an identity is present.
func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// User returns a copy of the identity, or nil while anonymous.
func (s *Store) User() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// CartItems returns a copy of the cart lines in server order.
func (s *Store) CartItems() []domain.CartLine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.CartLine, len(s.cart))
	copy(out, s.cart)
	return out
}

// Subtotal is the sum of price × quantity over the cart.
func (s *Store) Subtotal() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.CartSubtotal(s.cart)
}

// Token exposes the current bearer token; the store satisfies
// ports.TokenSource for collaborators that only need reads.
func (s *Store) Token() string {
	return s.tokens.Token()
}
