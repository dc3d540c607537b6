package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/bistroboss/restaurant-api/internal/core/domain"
	"github.com/bistroboss/restaurant-api/internal/core/ports"
)

type stubUserRepo struct {
	users   map[string]*domain.User // keyed by email
	inserts int
	nextID  int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) Insert(_ context.Context, user *domain.User) (domain.InsertAck, error) {
	if _, exists := r.users[user.Email]; exists {
		return domain.InsertAck{}, domain.ErrUserExists
	}
	r.inserts++
	r.nextID++
	clone := *user
	clone.ID = fmt.Sprintf("id-%d", r.nextID)
	r.users[user.Email] = &clone
	return domain.InsertAck{InsertedID: clone.ID}, nil
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := []domain.User{}
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) PromoteByID(_ context.Context, id string) (domain.UpdateAck, error) {
	for _, u := range r.users {
		if u.ID == id {
			modified := int64(0)
			if u.Role != domain.RoleAdmin {
				u.Role = domain.RoleAdmin
				modified = 1
			}
			return domain.UpdateAck{MatchedCount: 1, ModifiedCount: modified}, nil
		}
	}
	return domain.UpdateAck{}, nil
}

func (r *stubUserRepo) DeleteByID(_ context.Context, id string) (domain.DeleteAck, error) {
	for email, u := range r.users {
		if u.ID == id {
			delete(r.users, email)
			return domain.DeleteAck{DeletedCount: 1}, nil
		}
	}
	return domain.DeleteAck{}, nil
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func TestUserService_Register_New(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	result, err := svc.Register(context.Background(), ports.RegisterUserInput{Name: "Alice", Email: "alice@example.com"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if result.AlreadyExists {
		t.Fatalf("expected fresh registration")
	}
	if result.Ack.InsertedID == "" {
		t.Fatalf("expected inserted id in ack")
	}
	if repo.users["alice@example.com"].Role != domain.RoleMember {
		t.Fatalf("expected default role member, got %s", repo.users["alice@example.com"].Role)
	}
}

func TestUserService_Register_Idempotent(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	if _, err := svc.Register(context.Background(), ports.RegisterUserInput{Name: "Bob", Email: "bob@example.com"}); err != nil {
		t.Fatalf("first register: %v", err)
	}

	result, err := svc.Register(context.Background(), ports.RegisterUserInput{Name: "Bob", Email: "bob@example.com"})
	if err != nil {
		t.Fatalf("second register: %v", err)
	}
	if !result.AlreadyExists {
		t.Fatalf("expected already-exists marker")
	}
	if repo.inserts != 1 {
		t.Fatalf("expected a single write, got %d", repo.inserts)
	}
}

func TestUserService_IsAdmin(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	_, _ = svc.Register(context.Background(), ports.RegisterUserInput{Name: "Carol", Email: "carol@example.com"})

	admin, err := svc.IsAdmin(context.Background(), "carol@example.com")
	if err != nil {
		t.Fatalf("is admin: %v", err)
	}
	if admin {
		t.Fatalf("member must not report admin")
	}

	// Unregistered emails report false, not an error.
	admin, err = svc.IsAdmin(context.Background(), "ghost@example.com")
	if err != nil {
		t.Fatalf("is admin for unknown email: %v", err)
	}
	if admin {
		t.Fatalf("unknown email must not report admin")
	}
}

func TestUserService_Promote_VisibleImmediately(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	result, _ := svc.Register(context.Background(), ports.RegisterUserInput{Name: "Dave", Email: "dave@example.com"})

	ack, err := svc.Promote(context.Background(), result.Ack.InsertedID)
	if err != nil {
		t.Fatalf("promote: %v", err)
	}
	if ack.ModifiedCount != 1 {
		t.Fatalf("expected one modification, got %d", ack.ModifiedCount)
	}

	admin, err := svc.IsAdmin(context.Background(), "dave@example.com")
	if err != nil {
		t.Fatalf("is admin: %v", err)
	}
	if !admin {
		t.Fatalf("promotion must be visible on the next lookup")
	}
}

func TestUserService_Promote_UnknownID(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	ack, err := svc.Promote(context.Background(), "missing")
	if err != nil {
		t.Fatalf("promote: %v", err)
	}
	if ack.MatchedCount != 0 || ack.ModifiedCount != 0 {
		t.Fatalf("expected zero-count ack, got %+v", ack)
	}
}

func TestUserService_Delete_UnknownID(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	ack, err := svc.Delete(context.Background(), "missing")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if ack.DeletedCount != 0 {
		t.Fatalf("expected zero-count ack, got %+v", ack)
	}
}
