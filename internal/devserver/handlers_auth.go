package devserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/quickbite/storefront/internal/core/domain"
)

type registerRequest struct {
	FirstName string `json:"fname" validate:"required"`
	LastName  string `json:"lname" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Contact   string `json:"contact"`
	Password  string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

func (s *Server) handleRegister(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if s.state.userByEmail(req.Email) != nil {
		return echo.NewHTTPError(http.StatusConflict, "email already registered")
	}

	rec := s.state.addUser(req.FirstName, req.LastName, req.Email, req.Password, domain.RoleUser)
	rec.Contact = req.Contact
	user := rec.User
	return c.JSON(http.StatusCreated, &user)
}

func (s *Server) handleLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	s.state.mu.Lock()
	rec := s.state.userByEmail(req.Email)
	s.state.mu.Unlock()

	if rec == nil || bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(req.Password)) != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}
	if !rec.Enabled {
		return echo.NewHTTPError(http.StatusForbidden, "account disabled")
	}

	token, err := s.issueToken(&rec.User)
	if err != nil {
		return err
	}
	user := rec.User
	return c.JSON(http.StatusOK, loginResponse{Token: token, User: &user})
}
