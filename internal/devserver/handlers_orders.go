package devserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/quickbite/storefront/internal/core/domain"
)

type orderStatusRequest struct {
	Status domain.OrderStatus `json:"status" validate:"required"`
}

func (s *Server) handlePlaceOrder(c echo.Context) error {
	var shipping domain.ShippingInfo
	if err := c.Bind(&shipping); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&shipping); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rec := currentUser(c)

	s.state.mu.Lock()
	order, ok := s.state.placeOrder(rec, shipping)
	s.state.mu.Unlock()
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "cart is empty")
	}

	return c.JSON(http.StatusCreated, &order)
}

func (s *Server) handleMyOrders(c echo.Context) error {
	rec := currentUser(c)

	s.state.mu.Lock()
	out := s.state.ordersSorted(rec.ID)
	s.state.mu.Unlock()

	return c.JSON(http.StatusOK, out)
}

func (s *Server) handleAllOrders(c echo.Context) error {
	s.state.mu.Lock()
	out := s.state.ordersSorted(0)
	s.state.mu.Unlock()

	return c.JSON(http.StatusOK, out)
}

func (s *Server) handleOrderStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	var req orderStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if !domain.ValidOrderStatus(req.Status) {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown order status")
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	order, ok := s.state.orders[id]
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "order not found")
	}
	order.Status = req.Status
	s.state.orders[id] = order

	return c.JSON(http.StatusOK, &order)
}

func (s *Server) handleStats(c echo.Context) error {
	s.state.mu.Lock()
	st := s.state.stats()
	s.state.mu.Unlock()

	return c.JSON(http.StatusOK, &st)
}

func (s *Server) handleAnalytics(c echo.Context) error {
	s.state.mu.Lock()
	a := s.state.analytics()
	s.state.mu.Unlock()

	return c.JSON(http.StatusOK, &a)
}
