package ports

import (
	"context"

	"github.com/bistroboss/restaurant-api/internal/core/domain"
)

// UserRepository defines persistence operations on the user collection.
type UserRepository interface {
	// FindByEmail is the directory lookup: a point query by the natural key.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Insert(ctx context.Context, user *domain.User) (domain.InsertAck, error)
	List(ctx context.Context) ([]domain.User, error)
	// PromoteByID sets the user's role to admin. A missing or malformed id
	// yields a zero-count ack.
	PromoteByID(ctx context.Context, id string) (domain.UpdateAck, error)
	DeleteByID(ctx context.Context, id string) (domain.DeleteAck, error)
	Count(ctx context.Context) (int64, error)
}

// RegisterUserInput carries the self-registration payload.
type RegisterUserInput struct {
	Name  string
	Email string
}

// RegisterResult reports the outcome of a registration attempt.
type RegisterResult struct {
	Ack domain.InsertAck
	// AlreadyExists is true when a record with the email was present; no
	// second write is performed.
	AlreadyExists bool
}

// UserService defines use-case operations on users.
type UserService interface {
	Register(ctx context.Context, input RegisterUserInput) (*RegisterResult, error)
	List(ctx context.Context) ([]domain.User, error)
	// IsAdmin reports whether the user's current role is admin. An
	// unregistered email reports false, not an error.
	IsAdmin(ctx context.Context, email string) (bool, error)
	Promote(ctx context.Context, id string) (domain.UpdateAck, error)
	Delete(ctx context.Context, id string) (domain.DeleteAck, error)
}

// StatsResult is the aggregate-count view for the admin dashboard.
type StatsResult struct {
	TotalUsers     int64
	TotalMenuItems int64
}

// StatsService produces aggregate counts, no sensitive fields.
type StatsService interface {
	Stats(ctx context.Context) (*StatsResult, error)
}
