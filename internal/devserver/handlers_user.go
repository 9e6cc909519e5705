package devserver

import (
	"io"
	"net/http"
	"path"
	"sort"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/quickbite/storefront/internal/core/domain"
)

type updateProfileRequest struct {
	FirstName  string `json:"fname"`
	LastName   string `json:"lname"`
	Contact    string `json:"contact"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

func (s *Server) handleMe(c echo.Context) error {
	user := currentUser(c).User
	return c.JSON(http.StatusOK, &user)
}

func (s *Server) handleUpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	rec := currentUser(c)
	s.state.mu.Lock()
	if req.FirstName != "" {
		rec.FirstName = req.FirstName
	}
	if req.LastName != "" {
		rec.LastName = req.LastName
	}
	if req.Contact != "" {
		rec.Contact = req.Contact
	}
	if req.Address != "" {
		rec.Address = req.Address
	}
	if req.City != "" {
		rec.City = req.City
	}
	if req.PostalCode != "" {
		rec.PostalCode = req.PostalCode
	}
	user := rec.User
	s.state.mu.Unlock()

	return c.JSON(http.StatusOK, &user)
}

func (s *Server) handleChangePassword(c echo.Context) error {
	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rec := currentUser(c)
	if bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(req.CurrentPassword)) != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	s.state.mu.Lock()
	rec.PasswordHash = string(hash)
	s.state.mu.Unlock()

	return c.JSON(http.StatusOK, map[string]string{"message": "password updated"})
}

// handleProfileImage accepts a multipart upload under the "image" field and
// stores only a generated reference; the dev backend keeps no file contents.
func (s *Server) handleProfileImage(c echo.Context) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "image file is required")
	}

	src, err := fh.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable image")
	}
	defer src.Close()
	if _, err := io.Copy(io.Discard, src); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable image")
	}

	rec := currentUser(c)
	s.state.mu.Lock()
	rec.ProfileImage = "/uploads/" + uuid.NewString() + path.Ext(fh.Filename)
	user := rec.User
	s.state.mu.Unlock()

	return c.JSON(http.StatusOK, &user)
}

func (s *Server) handleAllUsers(c echo.Context) error {
	s.state.mu.Lock()
	out := make([]domain.User, 0, len(s.state.users))
	for _, rec := range s.state.users {
		out = append(out, rec.User)
	}
	s.state.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return c.JSON(http.StatusOK, out)
}

func (s *Server) handleToggleUser(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	rec := s.state.users[id]
	if rec == nil {
		return echo.NewHTTPError(http.StatusNotFound, "user not found")
	}
	rec.Enabled = !rec.Enabled
	user := rec.User
	return c.JSON(http.StatusOK, &user)
}
