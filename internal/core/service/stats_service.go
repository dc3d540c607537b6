package service

import (
	"context"

	"github.com/bistroboss/restaurant-api/internal/core/ports"
)

// StatsService aggregates dashboard counts from the other collections.
type StatsService struct {
	users ports.UserRepository
	menu  ports.MenuRepository
}

func NewStatsService(users ports.UserRepository, menu ports.MenuRepository) *StatsService {
	return &StatsService{users: users, menu: menu}
}

func (s *StatsService) Stats(ctx context.Context) (*ports.StatsResult, error) {
	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}

	totalMenu, err := s.menu.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &ports.StatsResult{
		TotalUsers:     totalUsers,
		TotalMenuItems: totalMenu,
	}, nil
}
