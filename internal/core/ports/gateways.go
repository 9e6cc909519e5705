package ports

import (
	"context"

	"github.com/quickbite/storefront/internal/core/domain"
)

// AuthGateway covers the unauthenticated endpoints.
type AuthGateway interface {
	// Login exchanges credentials for a bearer token and the user record.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Register(ctx context.Context, fname, lname, email, contact, password string) (*domain.User, error)
}

// ProfileGateway covers the current user's own record.
type ProfileGateway interface {
	CurrentUser(ctx context.Context) (*domain.User, error)
	UpdateProfile(ctx context.Context, user *domain.User) (*domain.User, error)
	ChangePassword(ctx context.Context, current, next string) error
	UploadProfileImage(ctx context.Context, filename string, data []byte) (*domain.User, error)
}

// CartGateway covers the remote cart. Every mutation returns the complete
// cart as the server now sees it; callers replace, never merge.
type CartGateway interface {
	Cart(ctx context.Context) ([]domain.CartLine, error)
	AddToCart(ctx context.Context, productID int64, quantity int) ([]domain.CartLine, error)
	UpdateQuantity(ctx context.Context, lineID string, quantity int) ([]domain.CartLine, error)
	RemoveFromCart(ctx context.Context, lineID string) ([]domain.CartLine, error)
}

// CatalogGateway covers product browsing and search.
type CatalogGateway interface {
	Products(ctx context.Context) ([]domain.Product, error)
	Product(ctx context.Context, id int64) (*domain.Product, error)
	ProductsByCategory(ctx context.Context, category string) ([]domain.Product, error)
	SearchProducts(ctx context.Context, query string) ([]domain.Product, error)
}

// OrderGateway covers checkout and the user's own order history.
type OrderGateway interface {
	PlaceOrder(ctx context.Context, shipping domain.ShippingInfo) (*domain.Order, error)
	MyOrders(ctx context.Context) ([]domain.Order, error)
}

// AdminGateway covers the back-office endpoints. All of them require the
// ADMIN role; the backend enforces it, the route guard pre-checks it.
type AdminGateway interface {
	CreateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	AllOrders(ctx context.Context) ([]domain.Order, error)
	SetOrderStatus(ctx context.Context, orderID int64, status domain.OrderStatus) (*domain.Order, error)
	AllUsers(ctx context.Context) ([]domain.User, error)
	ToggleUserStatus(ctx context.Context, userID int64) (*domain.User, error)
	Stats(ctx context.Context) (*domain.Stats, error)
	Analytics(ctx context.Context) (*domain.Analytics, error)
}
