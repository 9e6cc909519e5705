package credstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/quickbite/storefront/internal/core/domain"
)

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "credentials.json")
	store := NewFileStore(path)
	ctx := context.Background()

	user := &domain.User{ID: 3, Email: "a@b.com", Role: domain.RoleUser}
	if err := store.Save(ctx, "tok-123", user); err != nil {
		t.Fatalf("save: %v", err)
	}

	token, got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if token != "tok-123" {
		t.Fatalf("token = %q", token)
	}
	if got == nil || got.Email != "a@b.com" || got.ID != 3 {
		t.Fatalf("user = %+v", got)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("mode = %v, want 0600", info.Mode().Perm())
	}
}

func TestFileStore_MissingFileIsEmpty(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "absent.json"))

	token, user, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if token != "" || user != nil {
		t.Fatalf("expected empty credentials, got %q %+v", token, user)
	}
}

func TestFileStore_ClearRemovesBoth(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	store := NewFileStore(path)
	ctx := context.Background()

	_ = store.Save(ctx, "tok", &domain.User{ID: 1})
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}

	token, user, err := store.Load(ctx)
	if err != nil || token != "" || user != nil {
		t.Fatalf("credentials survived clear: %q %+v %v", token, user, err)
	}

	// Clearing again must stay silent.
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("second clear: %v", err)
	}
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, _, err := NewFileStore(path).Load(context.Background())
	if err == nil {
		t.Fatalf("expected decode error")
	}
}
