// Package guard decides route visibility from session state alone. It is a
// pure function so any front-end (CLI commands here, previously page routing)
// can enforce the same policy.
package guard

import "github.com/quickbite/storefront/internal/core/domain"

// RouteClass partitions the application's screens.
type RouteClass int

const (
	// PublicOnly screens (login, register) are for guests; an authenticated
	// user is sent home instead.
	PublicOnly RouteClass = iota
	// Authenticated screens require any logged-in identity.
	Authenticated
	// AdminOnly screens additionally require the ADMIN role.
	AdminOnly
)

// Snapshot is the slice of session state guarding depends on.
type Snapshot struct {
	Authenticated bool
	Role          string
}

// Decision says whether to show the route, and where to send the caller
// otherwise.
type Decision struct {
	Allow      bool
	RedirectTo string
}

// Evaluate applies the guard policy:
//
//	public-only    + authenticated  → redirect "/"
//	authenticated  + anonymous      → redirect "/login"
//	admin-only     + not an admin   → redirect "/"
func Evaluate(s Snapshot, class RouteClass) Decision {
	switch class {
	case PublicOnly:
		if s.Authenticated {
			return Decision{RedirectTo: "/"}
		}
		return Decision{Allow: true}
	case Authenticated:
		if !s.Authenticated {
			return Decision{RedirectTo: "/login"}
		}
		return Decision{Allow: true}
	case AdminOnly:
		if s.Authenticated && s.Role == domain.RoleAdmin {
			return Decision{Allow: true}
		}
		return Decision{RedirectTo: "/"}
	default:
		return Decision{RedirectTo: "/"}
	}
}
