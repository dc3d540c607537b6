package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bistroboss/restaurant-api/internal/core/domain"
	"github.com/bistroboss/restaurant-api/internal/core/ports"
)

// MenuService implements menu use cases.
type MenuService struct {
	repo   ports.MenuRepository
	logger zerolog.Logger
}

func NewMenuService(repo ports.MenuRepository, logger zerolog.Logger) *MenuService {
	return &MenuService{repo: repo, logger: logger}
}

func (s *MenuService) List(ctx context.Context) ([]domain.MenuItem, error) {
	return s.repo.List(ctx)
}

func (s *MenuService) Create(ctx context.Context, input ports.CreateMenuItemInput) (domain.InsertAck, error) {
	item := &domain.MenuItem{
		Name:     input.Name,
		Recipe:   input.Recipe,
		Image:    input.Image,
		Category: input.Category,
		Price:    input.Price,
	}

	ack, err := s.repo.Insert(ctx, item)
	if err != nil {
		return domain.InsertAck{}, err
	}

	s.logger.Info().Str("menu_item_id", ack.InsertedID).Str("category", input.Category).Msg("menu item created")
	return ack, nil
}

func (s *MenuService) Delete(ctx context.Context, id string) (domain.DeleteAck, error) {
	return s.repo.DeleteByID(ctx, id)
}
