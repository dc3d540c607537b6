package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/bistroboss/restaurant-api/internal/core/domain"
	"github.com/bistroboss/restaurant-api/internal/core/ports"
)

// UserService implements registration and directory operations.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// Register creates a user record on first registration. Registering an
// existing email is a no-op reported through AlreadyExists.
func (s *UserService) Register(ctx context.Context, input ports.RegisterUserInput) (*ports.RegisterResult, error) {
	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return &ports.RegisterResult{AlreadyExists: true}, nil
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	user := &domain.User{
		Name:      input.Name,
		Email:     input.Email,
		Role:      domain.RoleMember,
		CreatedAt: time.Now().UTC(),
	}

	ack, err := s.repo.Insert(ctx, user)
	if err != nil {
		// Lost the race against a concurrent registration of the same email.
		if errors.Is(err, domain.ErrUserExists) {
			return &ports.RegisterResult{AlreadyExists: true}, nil
		}
		return nil, err
	}

	s.logger.Info().Str("email", input.Email).Msg("user registered")

	return &ports.RegisterResult{Ack: ack}, nil
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

// IsAdmin resolves the user's current role from the directory. An
// unregistered email reports false.
func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return user.Role == domain.RoleAdmin, nil
}

// Promote sets the user's role to admin. Takes effect on the next
// role-gated request since roles are never cached.
func (s *UserService) Promote(ctx context.Context, id string) (domain.UpdateAck, error) {
	ack, err := s.repo.PromoteByID(ctx, id)
	if err != nil {
		return domain.UpdateAck{}, err
	}
	if ack.ModifiedCount > 0 {
		s.logger.Info().Str("user_id", id).Msg("user promoted to admin")
	}
	return ack, nil
}

func (s *UserService) Delete(ctx context.Context, id string) (domain.DeleteAck, error) {
	ack, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return domain.DeleteAck{}, err
	}
	if ack.DeletedCount > 0 {
		s.logger.Info().Str("user_id", id).Msg("user deleted")
	}
	return ack, nil
}
