package guard

import (
	"testing"

	"github.com/quickbite/storefront/internal/core/domain"
)

func TestEvaluate(t *testing.T) {
	anon := Snapshot{}
	user := Snapshot{Authenticated: true, Role: domain.RoleUser}
	admin := Snapshot{Authenticated: true, Role: domain.RoleAdmin}

	tests := []struct {
		name     string
		snap     Snapshot
		class    RouteClass
		allow    bool
		redirect string
	}{
		{"guest sees login", anon, PublicOnly, true, ""},
		{"user bounced off login", user, PublicOnly, false, "/"},
		{"admin bounced off login", admin, PublicOnly, false, "/"},
		{"guest blocked from private", anon, Authenticated, false, "/login"},
		{"user sees private", user, Authenticated, true, ""},
		{"admin sees private", admin, Authenticated, true, ""},
		{"guest blocked from admin", anon, AdminOnly, false, "/"},
		{"user blocked from admin", user, AdminOnly, false, "/"},
		{"admin sees admin", admin, AdminOnly, true, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := Evaluate(tc.snap, tc.class)
			if d.Allow != tc.allow {
				t.Fatalf("allow = %t, want %t", d.Allow, tc.allow)
			}
			if d.RedirectTo != tc.redirect {
				t.Fatalf("redirect = %q, want %q", d.RedirectTo, tc.redirect)
			}
		})
	}
}

func TestEvaluate_UnknownClassDenies(t *testing.T) {
	d := Evaluate(Snapshot{Authenticated: true, Role: domain.RoleAdmin}, RouteClass(42))
	if d.Allow {
		t.Fatalf("unknown route class allowed")
	}
}
