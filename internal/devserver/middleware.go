package devserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/quickbite/storefront/internal/core/domain"
)

const ctxUserKey = "devserver.user"

// issueToken signs an HS256 token for the user.
func (s *Server) issueToken(u *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   u.ID,
		"email": u.Email,
		"role":  u.Role,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// requireAuth validates the bearer token and loads the account into the echo
// context. A token for a disabled account is rejected with 403, which the
// client treats as a session invalidation.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get("Authorization")
		if header == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
		}

		claims := jwt.MapClaims{}
		tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
			if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return []byte(s.jwtSecret), nil
		})
		if err != nil || !tkn.Valid {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}

		sub, ok := claims["sub"].(float64)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token subject")
		}

		s.state.mu.Lock()
		rec := s.state.users[int64(sub)]
		s.state.mu.Unlock()
		if rec == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "unknown account")
		}
		if !rec.Enabled {
			return echo.NewHTTPError(http.StatusForbidden, "account disabled")
		}

		c.Set(ctxUserKey, rec)
		return next(c)
	}
}

// requireAdmin gates the back-office routes.
func requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		rec := currentUser(c)
		if rec == nil || rec.Role != domain.RoleAdmin {
			return echo.NewHTTPError(http.StatusForbidden, "forbidden")
		}
		return next(c)
	}
}

// currentUser returns the account loaded by requireAuth.
func currentUser(c echo.Context) *userRecord {
	rec, _ := c.Get(ctxUserKey).(*userRecord)
	return rec
}
