package devserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quickbite/storefront/internal/core/domain"
)

// cartEnvelope is the response shape for every cart endpoint: the complete
// cart as the server now sees it.
type cartEnvelope struct {
	CartItems []domain.CartLine `json:"cartItems"`
}

type addToCartRequest struct {
	ProductID int64 `json:"productId" validate:"required"`
	Quantity  int   `json:"quantity" validate:"required,gte=1"`
}

type updateCartRequest struct {
	CartItemID string `json:"cartItemId" validate:"required"`
	Quantity   int    `json:"quantity" validate:"required,gte=1"`
}

func (s *Server) handleCart(c echo.Context) error {
	rec := currentUser(c)

	s.state.mu.Lock()
	lines := s.state.cartFor(rec.ID)
	s.state.mu.Unlock()

	return c.JSON(http.StatusOK, cartEnvelope{CartItems: lines})
}

func (s *Server) handleCartAdd(c echo.Context) error {
	var req addToCartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rec := currentUser(c)

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	product, ok := s.state.products[req.ProductID]
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}
	lines := s.state.addCartLine(rec.ID, product, req.Quantity)
	return c.JSON(http.StatusOK, cartEnvelope{CartItems: lines})
}

func (s *Server) handleCartUpdate(c echo.Context) error {
	var req updateCartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rec := currentUser(c)

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	lines, ok := s.state.updateCartLine(rec.ID, req.CartItemID, req.Quantity)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "cart item not found")
	}
	return c.JSON(http.StatusOK, cartEnvelope{CartItems: lines})
}

func (s *Server) handleCartRemove(c echo.Context) error {
	lineID := c.Param("id")
	rec := currentUser(c)

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	lines, ok := s.state.removeCartLine(rec.ID, lineID)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "cart item not found")
	}
	return c.JSON(http.StatusOK, cartEnvelope{CartItems: lines})
}
