package session

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/quickbite/storefront/internal/core/domain"
)

// stubBackend scripts the profile and cart endpoints.
type stubBackend struct {
	user    *domain.User
	userErr error

	cart    []domain.CartLine
	cartErr error

	addResult    []domain.CartLine
	addErr       error
	updateResult []domain.CartLine
	updateErr    error
	removeResult []domain.CartLine
	removeErr    error

	calls []string
}

func (b *stubBackend) CurrentUser(context.Context) (*domain.User, error) {
	b.calls = append(b.calls, "me")
	if b.userErr != nil {
		return nil, b.userErr
	}
	u := *b.user
	return &u, nil
}

func (b *stubBackend) Cart(context.Context) ([]domain.CartLine, error) {
	b.calls = append(b.calls, "cart")
	return b.cart, b.cartErr
}

func (b *stubBackend) AddToCart(_ context.Context, _ int64, _ int) ([]domain.CartLine, error) {
	b.calls = append(b.calls, "add")
	return b.addResult, b.addErr
}

func (b *stubBackend) UpdateQuantity(_ context.Context, _ string, _ int) ([]domain.CartLine, error) {
	b.calls = append(b.calls, "update")
	return b.updateResult, b.updateErr
}

func (b *stubBackend) RemoveFromCart(_ context.Context, _ string) ([]domain.CartLine, error) {
	b.calls = append(b.calls, "remove")
	return b.removeResult, b.removeErr
}

// stubCreds is an in-memory credential store.
type stubCreds struct {
	token   string
	user    *domain.User
	saveErr error
}

func (c *stubCreds) Load(context.Context) (string, *domain.User, error) {
	return c.token, c.user, nil
}

func (c *stubCreds) Save(_ context.Context, token string, user *domain.User) error {
	if c.saveErr != nil {
		return c.saveErr
	}
	c.token = token
	c.user = user
	return nil
}

func (c *stubCreds) Clear(context.Context) error {
	c.token = ""
	c.user = nil
	return nil
}

func newTestStore(backend *stubBackend, creds *stubCreds) *Store {
	return New(backend, creds, NewTokenHolder(), zerolog.Nop())
}

func checkInvariant(t *testing.T, s *Store) {
	t.Helper()
	if !s.Authenticated() && len(s.CartItems()) != 0 {
		t.Fatalf("anonymous session holds a cart: %v", s.CartItems())
	}
}

func price(v string) decimal.Decimal {
	d, _ := decimal.NewFromString(v)
	return d
}

func TestBootstrap_NoToken(t *testing.T) {
	backend := &stubBackend{}
	s := newTestStore(backend, &stubCreds{})

	if s.Ready() {
		t.Fatalf("ready before bootstrap")
	}
	if err := s.Bootstrap(context.Background()); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	if !s.Ready() {
		t.Fatalf("not ready after bootstrap")
	}
	if s.Authenticated() {
		t.Fatalf("authenticated without token")
	}
	if len(backend.calls) != 0 {
		t.Fatalf("unexpected backend calls: %v", backend.calls)
	}
	checkInvariant(t, s)
}

func TestBootstrap_ValidToken(t *testing.T) {
	backend := &stubBackend{
		user: &domain.User{ID: 1, Email: "a@b.com", Role: domain.RoleUser},
		cart: []domain.CartLine{},
	}
	creds := &stubCreds{token: "abc"}
	s := newTestStore(backend, creds)

	if err := s.Bootstrap(context.Background()); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	if !s.Authenticated() {
		t.Fatalf("expected authenticated session")
	}
	if got := s.User().Email; got != "a@b.com" {
		t.Fatalf("user email = %q", got)
	}
	if len(s.CartItems()) != 0 {
		t.Fatalf("expected empty cart, got %v", s.CartItems())
	}
	if s.Token() != "abc" {
		t.Fatalf("token = %q", s.Token())
	}
}

func TestBootstrap_StaleToken(t *testing.T) {
	backend := &stubBackend{userErr: domain.ErrSessionExpired}
	creds := &stubCreds{token: "stale", user: &domain.User{ID: 9}}
	s := newTestStore(backend, creds)

	if err := s.Bootstrap(context.Background()); err != nil {
		t.Fatalf("stale token should not surface an error, got %v", err)
	}
	if !s.Ready() {
		t.Fatalf("not ready after failed bootstrap")
	}
	if s.Authenticated() {
		t.Fatalf("stale token left session authenticated")
	}
	if creds.token != "" || creds.user != nil {
		t.Fatalf("persisted credentials not cleared: %q %v", creds.token, creds.user)
	}
	if s.Token() != "" {
		t.Fatalf("token source still holds %q", s.Token())
	}
	checkInvariant(t, s)
}

func TestBootstrap_RunsOnce(t *testing.T) {
	backend := &stubBackend{
		user: &domain.User{ID: 1, Email: "a@b.com"},
		cart: []domain.CartLine{},
	}
	s := newTestStore(backend, &stubCreds{token: "abc"})

	_ = s.Bootstrap(context.Background())
	calls := len(backend.calls)
	_ = s.Bootstrap(context.Background())
	if len(backend.calls) != calls {
		t.Fatalf("second bootstrap issued backend calls")
	}
	if !s.Ready() {
		t.Fatalf("ready flag lost")
	}
}

func TestLogin_RoundTrip(t *testing.T) {
	backend := &stubBackend{cart: []domain.CartLine{}}
	creds := &stubCreds{}
	s := newTestStore(backend, creds)

	u := &domain.User{ID: 7, Email: "u@b.com", FirstName: "Uma", Role: domain.RoleUser}
	if err := s.Login(context.Background(), "T", u); err != nil {
		t.Fatalf("login: %v", err)
	}

	got := s.User()
	if got == nil || *got != *u {
		t.Fatalf("identity = %+v, want %+v", got, u)
	}
	if creds.token != "T" {
		t.Fatalf("persisted token = %q, want T", creds.token)
	}
	if s.Token() != "T" {
		t.Fatalf("token source = %q", s.Token())
	}
}

func TestLogin_RequiresBothParts(t *testing.T) {
	s := newTestStore(&stubBackend{}, &stubCreds{})

	if err := s.Login(context.Background(), "", &domain.User{ID: 1}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("missing token: got %v", err)
	}
	if err := s.Login(context.Background(), "T", nil); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("missing user: got %v", err)
	}
	if s.Authenticated() {
		t.Fatalf("partial login authenticated the session")
	}
}

func TestLogout_Idempotent(t *testing.T) {
	backend := &stubBackend{cart: []domain.CartLine{}}
	creds := &stubCreds{}
	s := newTestStore(backend, creds)

	_ = s.Login(context.Background(), "T", &domain.User{ID: 1})
	if err := s.Logout(context.Background()); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if err := s.Logout(context.Background()); err != nil {
		t.Fatalf("second logout: %v", err)
	}
	if s.Authenticated() || s.Token() != "" || creds.token != "" {
		t.Fatalf("logout left residue: auth=%t token=%q persisted=%q",
			s.Authenticated(), s.Token(), creds.token)
	}
	checkInvariant(t, s)
}

func TestAddToCart_ReplacesWithServerCart(t *testing.T) {
	line := domain.CartLine{
		ID:       "L1",
		Product:  domain.Product{ID: 5, Name: "Classic Burger", Price: price("10.00")},
		Quantity: 2,
	}
	backend := &stubBackend{cart: []domain.CartLine{}, addResult: []domain.CartLine{line}}
	s := newTestStore(backend, &stubCreds{})
	_ = s.Login(context.Background(), "T", &domain.User{ID: 1})

	if err := s.AddToCart(context.Background(), line.Product, 2); err != nil {
		t.Fatalf("add: %v", err)
	}

	items := s.CartItems()
	if len(items) != 1 || items[0].ID != "L1" || items[0].Quantity != 2 {
		t.Fatalf("cart = %+v", items)
	}
	if !s.Subtotal().Equal(price("20.00")) {
		t.Fatalf("subtotal = %s, want 20.00", s.Subtotal())
	}
}

func TestAddToCart_RejectsBadQuantity(t *testing.T) {
	backend := &stubBackend{cart: []domain.CartLine{}}
	s := newTestStore(backend, &stubCreds{})
	_ = s.Login(context.Background(), "T", &domain.User{ID: 1})

	if err := s.AddToCart(context.Background(), domain.Product{ID: 5}, 0); !errors.Is(err, domain.ErrInvalidQuantity) {
		t.Fatalf("got %v", err)
	}
	for _, c := range backend.calls {
		if c == "add" {
			t.Fatalf("backend called despite invalid quantity")
		}
	}
}

func TestUpdateQuantity_FailureLeavesCartUntouched(t *testing.T) {
	line := domain.CartLine{
		ID:       "L1",
		Product:  domain.Product{ID: 5, Price: price("10.00")},
		Quantity: 2,
	}
	backend := &stubBackend{
		cart:      []domain.CartLine{line},
		updateErr: errors.New("connection reset"),
	}
	s := newTestStore(backend, &stubCreds{})
	_ = s.Login(context.Background(), "T", &domain.User{ID: 1})

	err := s.UpdateQuantity(context.Background(), "L1", 3)
	if err == nil {
		t.Fatalf("expected error")
	}
	items := s.CartItems()
	if len(items) != 1 || items[0].Quantity != 2 {
		t.Fatalf("cart changed on failure: %+v", items)
	}
	if !s.Authenticated() {
		t.Fatalf("transient failure logged the user out")
	}
}

func TestRemoveFromCart_ForbiddenForcesLogout(t *testing.T) {
	line := domain.CartLine{ID: "L1", Product: domain.Product{ID: 5}, Quantity: 1}
	backend := &stubBackend{
		cart:      []domain.CartLine{line},
		removeErr: domain.ErrSessionExpired,
	}
	creds := &stubCreds{}
	s := newTestStore(backend, creds)
	_ = s.Login(context.Background(), "T", &domain.User{ID: 1})

	err := s.RemoveFromCart(context.Background(), "L1")
	if !errors.Is(err, domain.ErrSessionExpired) {
		t.Fatalf("got %v", err)
	}
	if s.Authenticated() {
		t.Fatalf("session survived a 403")
	}
	if len(s.CartItems()) != 0 {
		t.Fatalf("cart survived a forced logout: %v", s.CartItems())
	}
	if creds.token != "" {
		t.Fatalf("persisted token survived a forced logout")
	}
	checkInvariant(t, s)
}

func TestUpdateUser_ReplacesIdentityOnly(t *testing.T) {
	line := domain.CartLine{ID: "L1", Product: domain.Product{ID: 5}, Quantity: 1}
	backend := &stubBackend{cart: []domain.CartLine{line}}
	creds := &stubCreds{}
	s := newTestStore(backend, creds)
	_ = s.Login(context.Background(), "T", &domain.User{ID: 1, FirstName: "Old"})

	next := &domain.User{ID: 1, FirstName: "New", Role: domain.RoleUser}
	if err := s.UpdateUser(context.Background(), next); err != nil {
		t.Fatalf("update user: %v", err)
	}
	if s.User().FirstName != "New" {
		t.Fatalf("identity not replaced: %+v", s.User())
	}
	if len(s.CartItems()) != 1 {
		t.Fatalf("cart affected by profile update")
	}
	if creds.user == nil || creds.user.FirstName != "New" {
		t.Fatalf("user record not re-persisted: %+v", creds.user)
	}
}

func TestUpdateUser_RequiresIdentity(t *testing.T) {
	s := newTestStore(&stubBackend{}, &stubCreds{})
	err := s.UpdateUser(context.Background(), &domain.User{ID: 1})
	if !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("got %v", err)
	}
}

func TestClearCart_LocalOnly(t *testing.T) {
	line := domain.CartLine{ID: "L1", Product: domain.Product{ID: 5}, Quantity: 1}
	backend := &stubBackend{cart: []domain.CartLine{line}}
	s := newTestStore(backend, &stubCreds{})
	_ = s.Login(context.Background(), "T", &domain.User{ID: 1})

	calls := len(backend.calls)
	s.ClearCart()
	if len(backend.calls) != calls {
		t.Fatalf("ClearCart reached the backend")
	}
	if len(s.CartItems()) != 0 {
		t.Fatalf("cart not cleared")
	}
	if !s.Authenticated() {
		t.Fatalf("ClearCart touched the identity")
	}
}

func TestCartMutation_RequiresIdentity(t *testing.T) {
	s := newTestStore(&stubBackend{}, &stubCreds{})

	if err := s.AddToCart(context.Background(), domain.Product{ID: 5}, 1); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("add: got %v", err)
	}
	if err := s.UpdateQuantity(context.Background(), "L1", 2); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("update: got %v", err)
	}
	if err := s.RemoveFromCart(context.Background(), "L1"); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("remove: got %v", err)
	}
}
