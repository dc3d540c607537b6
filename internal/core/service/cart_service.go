package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bistroboss/restaurant-api/internal/core/domain"
	"github.com/bistroboss/restaurant-api/internal/core/ports"
)

// CartService implements cart use cases. Carts are scoped by the email
// carried in the item itself, not by the caller's token identity.
type CartService struct {
	repo   ports.CartRepository
	logger zerolog.Logger
}

func NewCartService(repo ports.CartRepository, logger zerolog.Logger) *CartService {
	return &CartService{repo: repo, logger: logger}
}

func (s *CartService) Add(ctx context.Context, input ports.AddCartItemInput) (domain.InsertAck, error) {
	item := &domain.CartItem{
		MenuItemID: input.MenuItemID,
		Name:       input.Name,
		Image:      input.Image,
		Price:      input.Price,
		Email:      input.Email,
	}

	ack, err := s.repo.Insert(ctx, item)
	if err != nil {
		return domain.InsertAck{}, err
	}

	s.logger.Debug().Str("email", input.Email).Str("menu_item_id", input.MenuItemID).Msg("cart item added")
	return ack, nil
}

func (s *CartService) ListByEmail(ctx context.Context, email string) ([]domain.CartItem, error) {
	return s.repo.ListByEmail(ctx, email)
}

func (s *CartService) Delete(ctx context.Context, id string) (domain.DeleteAck, error) {
	return s.repo.DeleteByID(ctx, id)
}
