// Package devserver is an in-memory stand-in for the storefront backend.
// It serves the full REST surface the client consumes — auth, catalog, cart,
// orders, profile, and back-office — with the same JSON envelopes and the
// same 401/403 semantics, so it backs both local development and the
// integration tests. Data lives in process memory and resets on restart.
package devserver

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// Options configures the server.
type Options struct {
	JWTSecret string
	TokenTTL  time.Duration
	Log       zerolog.Logger
	// Metrics mounts the echoprometheus middleware and /metrics. Off in
	// tests to avoid duplicate collector registration.
	Metrics bool
}

// Server holds the fake backend's state and settings.
type Server struct {
	state     *state
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
	metrics   bool
}

func New(opts Options) *Server {
	ttl := opts.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Server{
		state:     newState(),
		jwtSecret: opts.JWTSecret,
		tokenTTL:  ttl,
		log:       opts.Log,
		metrics:   opts.Metrics,
	}
}

// Router builds the Echo instance with every route mounted under /api.
func (s *Server) Router() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = newValidator()
	e.HTTPErrorHandler = s.errorHandler

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	if s.metrics {
		e.Use(echoprometheus.NewMiddleware("devserver"))
		e.GET("/metrics", echoprometheus.NewHandler())
	}

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	api := e.Group("/api")

	api.POST("/auth/register", s.handleRegister)
	api.POST("/auth/login", s.handleLogin)

	authed := api.Group("", s.requireAuth)
	authed.GET("/user/me", s.handleMe)
	authed.PUT("/user/update", s.handleUpdateProfile)
	authed.POST("/user/change-password", s.handleChangePassword)
	authed.POST("/user/profile-image", s.handleProfileImage)

	authed.GET("/cart", s.handleCart)
	authed.POST("/cart/add", s.handleCartAdd)
	authed.PUT("/cart/update", s.handleCartUpdate)
	authed.DELETE("/cart/remove/:id", s.handleCartRemove)

	authed.GET("/products/all", s.handleProducts)
	authed.GET("/products/search", s.handleProductSearch)
	authed.GET("/products/category/:name", s.handleProductsByCategory)
	authed.GET("/products/:id", s.handleProduct)

	authed.POST("/orders/place", s.handlePlaceOrder)
	authed.GET("/orders/my-orders", s.handleMyOrders)

	admin := authed.Group("", requireAdmin)
	admin.POST("/products", s.handleProductCreate)
	admin.PUT("/products/:id", s.handleProductUpdate)
	admin.DELETE("/products/:id", s.handleProductDelete)
	admin.GET("/orders/all", s.handleAllOrders)
	admin.PUT("/orders/:id/status", s.handleOrderStatus)
	admin.GET("/user/all", s.handleAllUsers)
	admin.PUT("/user/:id/toggle-status", s.handleToggleUser)
	admin.GET("/admin/stats", s.handleStats)
	admin.GET("/admin/reports/analytics", s.handleAnalytics)

	return e
}

// errorResponse is the canonical error envelope.
type errorResponse struct {
	Error string `json:"error"`
}

// errorHandler renders every error as {"error": "<message>"} and keeps
// unexpected causes out of the response body.
func (s *Server) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		_ = c.JSON(he.Code, errorResponse{Error: fmt.Sprintf("%v", he.Message)})
		return
	}

	s.log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")
	_ = c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}
