package domain

// Role values as the backend serialises them.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User models the authenticated identity the backend returns from /user/me.
// The same record is persisted alongside the bearer token so the profile can
// be shown before bootstrap finishes.
type User struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	FirstName    string `json:"fname"`
	LastName     string `json:"lname"`
	Contact      string `json:"contact,omitempty"`
	Role         string `json:"role"`
	ProfileImage string `json:"profileImage,omitempty"`
	Address      string `json:"address,omitempty"`
	City         string `json:"city,omitempty"`
	PostalCode   string `json:"postalCode,omitempty"`
	Enabled      bool   `json:"enabled"`
}

// IsAdmin reports whether the user may reach admin-only routes.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// FullName joins first and last name for display.
func (u *User) FullName() string {
	if u == nil {
		return ""
	}
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
