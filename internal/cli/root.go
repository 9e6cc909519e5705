// Package cli is the terminal front-end: thin commands over the session
// store and the REST gateways, gated by the same route-guard policy the
// original screens used.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/quickbite/storefront/internal/config"
	"github.com/quickbite/storefront/internal/core/ports"
	"github.com/quickbite/storefront/internal/core/session"
	"github.com/quickbite/storefront/internal/credstore"
	"github.com/quickbite/storefront/internal/guard"
	"github.com/quickbite/storefront/internal/transport/rest"
	"github.com/quickbite/storefront/pkg/logger"
)

// App carries the wired collaborators into every command.
type App struct {
	cfg    *config.Client
	log    zerolog.Logger
	client *rest.Client
	store  *session.Store
	out    io.Writer
}

// NewRootCmd builds the command tree. Wiring and bootstrap happen in the
// persistent pre-run so each command starts from a restored session.
func NewRootCmd() *cobra.Command {
	app := &App{out: os.Stdout}

	root := &cobra.Command{
		Use:           "storefront",
		Short:         "QuickBite food-ordering storefront",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.init(cmd.Context())
		},
	}

	root.AddCommand(
		app.loginCmd(),
		app.logoutCmd(),
		app.registerCmd(),
		app.whoamiCmd(),
		app.menuCmd(),
		app.cartCmd(),
		app.checkoutCmd(),
		app.ordersCmd(),
		app.profileCmd(),
		app.adminCmd(),
	)
	return root
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	return 0
}

func (a *App) init(ctx context.Context) error {
	cfg, err := config.LoadClient(ctx)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty, Output: os.Stderr})

	creds, err := a.openCredStore(ctx)
	if err != nil {
		return err
	}

	tokens := session.NewTokenHolder()
	a.client = rest.NewClient(cfg.APIBaseURL, tokens, &http.Client{Timeout: cfg.HTTPTimeout}, a.log)
	a.store = session.New(a.client, creds, tokens, a.log)
	a.client.OnUnauthorized(a.store.ForceLogout)

	if err := a.store.Bootstrap(ctx); err != nil {
		a.log.Warn().Err(err).Msg("session bootstrap failed")
	}
	return nil
}

func (a *App) openCredStore(ctx context.Context) (ports.CredentialStore, error) {
	switch a.cfg.Credentials.Backend {
	case "redis":
		return credstore.ConnectRedis(ctx, a.cfg.Credentials.Redis.Addr, a.cfg.Credentials.Redis.DB)
	case "file", "":
		path := a.cfg.Credentials.File
		if path == "" {
			var err error
			if path, err = credstore.DefaultPath(); err != nil {
				return nil, err
			}
		}
		return credstore.NewFileStore(path), nil
	default:
		return nil, fmt.Errorf("unknown credential backend %q", a.cfg.Credentials.Backend)
	}
}

// requireRoute enforces the guard policy before a command body runs.
func (a *App) requireRoute(class guard.RouteClass) error {
	snap := guard.Snapshot{Authenticated: a.store.Authenticated()}
	if u := a.store.User(); u != nil {
		snap.Role = u.Role
	}

	d := guard.Evaluate(snap, class)
	if d.Allow {
		return nil
	}
	switch d.RedirectTo {
	case "/login":
		return errors.New("you are not signed in; run `storefront login` first")
	default:
		if class == guard.AdminOnly {
			return errors.New("this command needs an admin account")
		}
		return errors.New("you are already signed in; run `storefront logout` first")
	}
}
