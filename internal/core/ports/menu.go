package ports

import (
	"context"

	"github.com/bistroboss/restaurant-api/internal/core/domain"
)

// MenuRepository defines persistence operations on the menu collection.
type MenuRepository interface {
	List(ctx context.Context) ([]domain.MenuItem, error)
	Insert(ctx context.Context, item *domain.MenuItem) (domain.InsertAck, error)
	DeleteByID(ctx context.Context, id string) (domain.DeleteAck, error)
	Count(ctx context.Context) (int64, error)
}

// CreateMenuItemInput carries the fields for a new dish.
type CreateMenuItemInput struct {
	Name     string
	Recipe   string
	Image    string
	Category string
	Price    float64
}

// MenuService defines use-case operations for the menu.
type MenuService interface {
	List(ctx context.Context) ([]domain.MenuItem, error)
	Create(ctx context.Context, input CreateMenuItemInput) (domain.InsertAck, error)
	Delete(ctx context.Context, id string) (domain.DeleteAck, error)
}

// ReviewRepository defines persistence operations on the reviews collection.
type ReviewRepository interface {
	List(ctx context.Context) ([]domain.Review, error)
	Insert(ctx context.Context, review *domain.Review) (domain.InsertAck, error)
}

// CreateReviewInput carries a new testimonial.
type CreateReviewInput struct {
	Name    string
	Details string
	Rating  float64
}

// ReviewService defines use-case operations for reviews.
type ReviewService interface {
	List(ctx context.Context) ([]domain.Review, error)
	Create(ctx context.Context, input CreateReviewInput) (domain.InsertAck, error)
}
