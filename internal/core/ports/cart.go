package ports

import (
	"context"

	"github.com/bistroboss/restaurant-api/internal/core/domain"
)

// CartRepository defines persistence operations on the carts collection.
type CartRepository interface {
	Insert(ctx context.Context, item *domain.CartItem) (domain.InsertAck, error)
	// ListByEmail returns the cart items owned by the given email.
	ListByEmail(ctx context.Context, email string) ([]domain.CartItem, error)
	DeleteByID(ctx context.Context, id string) (domain.DeleteAck, error)
}

// AddCartItemInput carries a menu item being placed in a cart.
type AddCartItemInput struct {
	MenuItemID string
	Name       string
	Image      string
	Price      float64
	Email      string
}

// CartService defines use-case operations for carts.
type CartService interface {
	Add(ctx context.Context, input AddCartItemInput) (domain.InsertAck, error)
	ListByEmail(ctx context.Context, email string) ([]domain.CartItem, error)
	Delete(ctx context.Context, id string) (domain.DeleteAck, error)
}
