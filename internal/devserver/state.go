package devserver

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/quickbite/storefront/internal/core/domain"
)

// userRecord pairs a user with its password hash; the hash never leaves the
// server.
type userRecord struct {
	domain.User
	PasswordHash string
}

// state is the process-local data store behind the development backend.
type state struct {
	mu       sync.Mutex
	users    map[int64]*userRecord
	products map[int64]domain.Product
	carts    map[int64][]domain.CartLine
	orders   map[int64]domain.Order

	nextUserID    int64
	nextProductID int64
	nextOrderID   int64

	now func() time.Time
}

func newState() *state {
	s := &state{
		users:    make(map[int64]*userRecord),
		products: make(map[int64]domain.Product),
		carts:    make(map[int64][]domain.CartLine),
		orders:   make(map[int64]domain.Order),
		now:      time.Now,
	}
	s.seed()
	return s
}

// seed provides two accounts and a small menu so the CLI works out of the
// box: admin@quickbite.dev/admin123 and demo@quickbite.dev/demo123.
func (s *state) seed() {
	s.addUser("Ada", "Mendez", "admin@quickbite.dev", "admin123", domain.RoleAdmin)
	s.addUser("Dev", "Customer", "demo@quickbite.dev", "demo123", domain.RoleUser)

	menu := []struct {
		name, category, desc string
		price                string
	}{
		{"Classic Burger", "Burgers", "Beef patty, cheddar, pickles", "8.50"},
		{"Double Smash", "Burgers", "Two smashed patties, onion jam", "11.90"},
		{"Margherita", "Pizza", "Tomato, mozzarella, basil", "9.00"},
		{"Pepperoni", "Pizza", "Loaded pepperoni, extra cheese", "10.50"},
		{"Caesar Salad", "Salads", "Romaine, parmesan, croutons", "7.25"},
		{"Fries", "Sides", "Crispy, sea salt", "3.00"},
		{"Cola", "Drinks", "330ml can", "2.00"},
		{"Brownie", "Desserts", "Warm, with walnuts", "4.50"},
	}
	for _, m := range menu {
		price, _ := decimal.NewFromString(m.price)
		s.nextProductID++
		s.products[s.nextProductID] = domain.Product{
			ID:          s.nextProductID,
			Name:        m.name,
			Description: m.desc,
			Category:    m.category,
			Price:       price,
			ImageURL:    "/images/" + strings.ToLower(strings.ReplaceAll(m.name, " ", "-")) + ".jpg",
			Rating:      4.2,
		}
	}
}

func (s *state) addUser(fname, lname, email, password, role string) *userRecord {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	s.nextUserID++
	rec := &userRecord{
		User: domain.User{
			ID:        s.nextUserID,
			Email:     email,
			FirstName: fname,
			LastName:  lname,
			Role:      role,
			Enabled:   true,
		},
		PasswordHash: string(hash),
	}
	s.users[rec.ID] = rec
	return rec
}

func (s *state) userByEmail(email string) *userRecord {
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u
		}
	}
	return nil
}

// cartFor returns the user's cart in insertion order.
func (s *state) cartFor(userID int64) []domain.CartLine {
	lines := s.carts[userID]
	out := make([]domain.CartLine, len(lines))
	copy(out, lines)
	return out
}

func (s *state) addCartLine(userID int64, product domain.Product, qty int) []domain.CartLine {
	lines := s.carts[userID]
	for i, l := range lines {
		if l.Product.ID == product.ID {
			lines[i].Quantity += qty
			s.carts[userID] = lines
			return s.cartFor(userID)
		}
	}
	s.carts[userID] = append(lines, domain.CartLine{
		ID:       uuid.NewString(),
		Product:  product,
		Quantity: qty,
	})
	return s.cartFor(userID)
}

func (s *state) updateCartLine(userID int64, lineID string, qty int) ([]domain.CartLine, bool) {
	lines := s.carts[userID]
	for i, l := range lines {
		if l.ID == lineID {
			lines[i].Quantity = qty
			s.carts[userID] = lines
			return s.cartFor(userID), true
		}
	}
	return nil, false
}

func (s *state) removeCartLine(userID int64, lineID string) ([]domain.CartLine, bool) {
	lines := s.carts[userID]
	for i, l := range lines {
		if l.ID == lineID {
			s.carts[userID] = append(lines[:i], lines[i+1:]...)
			return s.cartFor(userID), true
		}
	}
	return nil, false
}

// placeOrder freezes the user's cart into a PENDING order and empties the
// server-side cart.
func (s *state) placeOrder(rec *userRecord, shipping domain.ShippingInfo) (domain.Order, bool) {
	lines := s.carts[rec.ID]
	if len(lines) == 0 {
		return domain.Order{}, false
	}

	items := make([]domain.OrderItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, domain.OrderItem{ID: l.ID, Product: l.Product, Quantity: l.Quantity})
	}

	user := rec.User
	s.nextOrderID++
	order := domain.Order{
		ID:          s.nextOrderID,
		User:        &user,
		Items:       items,
		TotalAmount: domain.CartSubtotal(lines),
		Status:      domain.OrderPending,
		OrderDate:   s.now().UTC(),
		Shipping:    shipping,
	}
	s.orders[order.ID] = order
	delete(s.carts, rec.ID)
	return order, true
}

func (s *state) ordersSorted(filterUser int64) []domain.Order {
	out := make([]domain.Order, 0, len(s.orders))
	for _, o := range s.orders {
		if filterUser != 0 && (o.User == nil || o.User.ID != filterUser) {
			continue
		}
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

func (s *state) stats() domain.Stats {
	st := domain.Stats{
		TotalOrders:  len(s.orders),
		TotalUsers:   len(s.users),
		TotalRevenue: decimal.Zero,
	}
	for _, o := range s.orders {
		if o.Status == domain.OrderPending {
			st.PendingOrders++
		}
		if o.Status != domain.OrderCancelled {
			st.TotalRevenue = st.TotalRevenue.Add(o.TotalAmount)
		}
	}
	return st
}

// analytics buckets the last seven days of orders for the reports chart.
func (s *state) analytics() domain.Analytics {
	st := s.stats()
	a := domain.Analytics{
		TotalOrders:  st.TotalOrders,
		TotalUsers:   st.TotalUsers,
		TotalRevenue: st.TotalRevenue,
	}

	today := s.now().UTC().Truncate(24 * time.Hour)
	for d := 6; d >= 0; d-- {
		day := today.AddDate(0, 0, -d)
		bucket := domain.DayBucket{Day: day.Format("Jan 02")}
		for _, o := range s.orders {
			if o.OrderDate.UTC().Truncate(24 * time.Hour).Equal(day) {
				bucket.Orders++
			}
		}
		a.OrdersByDay = append(a.OrdersByDay, bucket)
	}
	return a
}
