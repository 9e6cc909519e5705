// Package credstore persists the bearer token and user record between runs —
// the client-side storage slot of the session. Two backends exist: a JSON
// file for single-user installs and Redis for shared kiosk deployments.
package credstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/quickbite/storefront/internal/core/domain"
)

// credentials is the on-disk layout. Token and user live and die together.
type credentials struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// FileStore keeps credentials in a mode-0600 JSON file.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath places the credentials file under the user config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("credstore: resolve config dir: %w", err)
	}
	return filepath.Join(dir, "storefront", "credentials.json"), nil
}

func (f *FileStore) Load(_ context.Context) (string, *domain.User, error) {
	raw, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil, nil
	}
	if err != nil {
		return "", nil, fmt.Errorf("credstore: read %s: %w", f.path, err)
	}

	var c credentials
	if err := json.Unmarshal(raw, &c); err != nil {
		return "", nil, fmt.Errorf("credstore: decode %s: %w", f.path, err)
	}
	return c.Token, c.User, nil
}

func (f *FileStore) Save(_ context.Context, token string, user *domain.User) error {
	raw, err := json.Marshal(credentials{Token: token, User: user})
	if err != nil {
		return fmt.Errorf("credstore: encode credentials: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("credstore: create dir: %w", err)
	}

	// Write-then-rename so a crash never leaves a half-written file behind.
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("credstore: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("credstore: rename: %w", err)
	}
	return nil
}

func (f *FileStore) Clear(_ context.Context) error {
	err := os.Remove(f.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("credstore: remove %s: %w", f.path, err)
	}
	return nil
}
