package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/quickbite/storefront/internal/core/domain"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func newTestClient(t *testing.T, token string, handler http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return NewClient(ts.URL+"/api", staticToken(token), ts.Client(), zerolog.Nop())
}

func TestClient_InjectsBearerToken(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, "tok-1", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]any{"cartItems": []any{}})
	})

	if _, err := c.Cart(context.Background()); err != nil {
		t.Fatalf("cart: %v", err)
	}
	if gotAuth != "Bearer tok-1" {
		t.Fatalf("authorization = %q", gotAuth)
	}
}

func TestClient_NoHeaderWhenAnonymous(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]domain.Product{})
	})

	if _, err := c.Products(context.Background()); err != nil {
		t.Fatalf("products: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("anonymous call sent authorization %q", gotAuth)
	}
}

func TestClient_UnauthorizedMapsAndFiresHook(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		c := newTestClient(t, "tok", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(status)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "nope"})
		})

		fired := false
		c.OnUnauthorized(func() { fired = true })

		_, err := c.Cart(context.Background())
		if !errors.Is(err, domain.ErrSessionExpired) {
			t.Fatalf("status %d: got %v, want ErrSessionExpired", status, err)
		}
		if !fired {
			t.Fatalf("status %d: on-unauthorized hook not fired", status)
		}
	}
}

func TestClient_ConflictMapsToEmailTaken(t *testing.T) {
	c := newTestClient(t, "", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "email already registered"})
	})

	_, err := c.Register(context.Background(), "A", "B", "a@b.com", "", "secret1")
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("got %v, want ErrEmailTaken", err)
	}
}

func TestClient_NotFoundAndBackendErrors(t *testing.T) {
	c := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/products/99":
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "product not found"})
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	})

	if _, err := c.Product(context.Background(), 99); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("404: got %v", err)
	}
	if _, err := c.Products(context.Background()); !errors.Is(err, domain.ErrBackend) {
		t.Fatalf("500: got %v", err)
	}
}

func TestClient_CartAddSendsExpectedPayload(t *testing.T) {
	var body map[string]any
	c := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/cart/add" {
			t.Errorf("unexpected call %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		_ = json.NewEncoder(w).Encode(map[string]any{"cartItems": []map[string]any{
			{"id": "L1", "product": map[string]any{"id": 5, "price": "10"}, "quantity": 2},
		}})
	})

	lines, err := c.AddToCart(context.Background(), 5, 2)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if body["productId"] != float64(5) || body["quantity"] != float64(2) {
		t.Fatalf("payload = %v", body)
	}
	if len(lines) != 1 || lines[0].ID != "L1" || lines[0].Quantity != 2 {
		t.Fatalf("lines = %+v", lines)
	}
}

func TestClient_RemoveEscapesLineID(t *testing.T) {
	var gotPath string
	c := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		_ = json.NewEncoder(w).Encode(map[string]any{"cartItems": []any{}})
	})

	if _, err := c.RemoveFromCart(context.Background(), "a/b"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if gotPath != "/api/cart/remove/a%2Fb" {
		t.Fatalf("path = %q", gotPath)
	}
}

func TestClient_LoginDecodesTokenAndUser(t *testing.T) {
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req["email"] != "a@b.com" || req["password"] != "pw" {
			t.Errorf("payload = %v", req)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"token": "issued",
			"user":  map[string]any{"id": 1, "email": "a@b.com", "role": "USER"},
		})
	})

	token, user, err := c.Login(context.Background(), "a@b.com", "pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token != "issued" || user == nil || user.Email != "a@b.com" {
		t.Fatalf("token=%q user=%+v", token, user)
	}
}
