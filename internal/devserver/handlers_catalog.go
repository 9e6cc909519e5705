package devserver

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/quickbite/storefront/internal/core/domain"
)

type productRequest struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Category    string          `json:"category" validate:"required"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl"`
	Rating      float64         `json:"rating"`
}

func (s *Server) handleProducts(c echo.Context) error {
	s.state.mu.Lock()
	out := make([]domain.Product, 0, len(s.state.products))
	for _, p := range s.state.products {
		out = append(out, p)
	}
	s.state.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return c.JSON(http.StatusOK, out)
}

func (s *Server) handleProduct(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	s.state.mu.Lock()
	p, ok := s.state.products[id]
	s.state.mu.Unlock()
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}
	return c.JSON(http.StatusOK, &p)
}

func (s *Server) handleProductsByCategory(c echo.Context) error {
	category := c.Param("name")

	s.state.mu.Lock()
	out := make([]domain.Product, 0)
	for _, p := range s.state.products {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	s.state.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return c.JSON(http.StatusOK, out)
}

func (s *Server) handleProductSearch(c echo.Context) error {
	q := strings.ToLower(strings.TrimSpace(c.QueryParam("q")))

	s.state.mu.Lock()
	out := make([]domain.Product, 0)
	for _, p := range s.state.products {
		if q == "" ||
			strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			out = append(out, p)
		}
	}
	s.state.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return c.JSON(http.StatusOK, out)
}

func (s *Server) handleProductCreate(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Price.IsNegative() {
		return echo.NewHTTPError(http.StatusBadRequest, "price must not be negative")
	}

	s.state.mu.Lock()
	s.state.nextProductID++
	p := domain.Product{
		ID:          s.state.nextProductID,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Rating:      req.Rating,
	}
	s.state.products[p.ID] = p
	s.state.mu.Unlock()

	return c.JSON(http.StatusCreated, &p)
}

func (s *Server) handleProductUpdate(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Price.IsNegative() {
		return echo.NewHTTPError(http.StatusBadRequest, "price must not be negative")
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	p, ok := s.state.products[id]
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}
	p.Name = req.Name
	p.Description = req.Description
	p.Category = req.Category
	p.Price = req.Price
	p.ImageURL = req.ImageURL
	p.Rating = req.Rating
	s.state.products[id] = p

	return c.JSON(http.StatusOK, &p)
}

func (s *Server) handleProductDelete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if _, ok := s.state.products[id]; !ok {
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}
	delete(s.state.products, id)
	return c.NoContent(http.StatusNoContent)
}
