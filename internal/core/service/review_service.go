package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bistroboss/restaurant-api/internal/core/domain"
	"github.com/bistroboss/restaurant-api/internal/core/ports"
)

// ReviewService implements review use cases.
type ReviewService struct {
	repo   ports.ReviewRepository
	logger zerolog.Logger
}

func NewReviewService(repo ports.ReviewRepository, logger zerolog.Logger) *ReviewService {
	return &ReviewService{repo: repo, logger: logger}
}

func (s *ReviewService) List(ctx context.Context) ([]domain.Review, error) {
	return s.repo.List(ctx)
}

func (s *ReviewService) Create(ctx context.Context, input ports.CreateReviewInput) (domain.InsertAck, error) {
	review := &domain.Review{
		Name:    input.Name,
		Details: input.Details,
		Rating:  input.Rating,
	}
	return s.repo.Insert(ctx, review)
}
