package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Client is the storefront CLI configuration.
type Client struct {
	// APIBaseURL is the remote backend, e.g. http://localhost:8080/api.
	APIBaseURL  string        `env:"STOREFRONT_API_URL,   default=http://localhost:8080/api"`
	HTTPTimeout time.Duration `env:"STOREFRONT_TIMEOUT,   default=15s"`
	LogLevel    string        `env:"LOG_LEVEL,            default=info"`
	LogPretty   bool          `env:"LOG_PRETTY,           default=true"`

	Credentials CredentialsConfig
}

// CredentialsConfig selects where the session token and user record persist.
type CredentialsConfig struct {
	// Backend is "file" or "redis".
	Backend string `env:"STOREFRONT_CRED_BACKEND, default=file"`
	// File overrides the default credentials file path.
	File string `env:"STOREFRONT_CRED_FILE"`

	Redis RedisConfig
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// DevServer configures the in-memory development backend.
type DevServer struct {
	Port      string        `env:"PORT,       default=8080"`
	Env       string        `env:"ENV,        default=development"`
	JWTSecret string        `env:"JWT_SECRET, default=dev-secret"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=24h"`
	LogLevel  string        `env:"LOG_LEVEL,  default=info"`
}

// LoadClient reads the CLI configuration from the environment.
func LoadClient(ctx context.Context) (*Client, error) {
	var cfg Client
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// LoadDevServer reads the development backend configuration.
func LoadDevServer(ctx context.Context) (*DevServer, error) {
	var cfg DevServer
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
