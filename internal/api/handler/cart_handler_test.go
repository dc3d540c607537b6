package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/bistroboss/restaurant-api/internal/core/domain"
	"github.com/bistroboss/restaurant-api/internal/core/ports"
)

type stubCartService struct {
	addFn    func(ctx context.Context, input ports.AddCartItemInput) (domain.InsertAck, error)
	listFn   func(ctx context.Context, email string) ([]domain.CartItem, error)
	deleteFn func(ctx context.Context, id string) (domain.DeleteAck, error)
}

func (s *stubCartService) Add(ctx context.Context, input ports.AddCartItemInput) (domain.InsertAck, error) {
	return s.addFn(ctx, input)
}

func (s *stubCartService) ListByEmail(ctx context.Context, email string) ([]domain.CartItem, error) {
	return s.listFn(ctx, email)
}

func (s *stubCartService) Delete(ctx context.Context, id string) (domain.DeleteAck, error) {
	return s.deleteFn(ctx, id)
}

func TestCartHandler_Add(t *testing.T) {
	e := newTestEcho()
	stub := &stubCartService{
		addFn: func(_ context.Context, input ports.AddCartItemInput) (domain.InsertAck, error) {
			if input.Email != "alice@example.com" || input.Price != 12.5 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return domain.InsertAck{InsertedID: "c1"}, nil
		},
	}
	h := NewCartHandler(stub)

	body := strings.NewReader(`{"menu_item_id":"m1","name":"Soupe à l'oignon","price":12.5,"email":"alice@example.com"}`)
	req := httptest.NewRequest(http.MethodPost, "/carts", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Add(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestCartHandler_List_ScopedByEmail(t *testing.T) {
	e := newTestEcho()
	stub := &stubCartService{
		listFn: func(_ context.Context, email string) ([]domain.CartItem, error) {
			if email != "bob@example.com" {
				t.Fatalf("unexpected email: %s", email)
			}
			return []domain.CartItem{{ID: "c1", Email: email}}, nil
		},
	}
	h := NewCartHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/carts?email=bob@example.com", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var items []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
}

func TestCartHandler_List_MissingEmail(t *testing.T) {
	e := newTestEcho()
	stub := &stubCartService{
		listFn: func(_ context.Context, _ string) ([]domain.CartItem, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewCartHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/carts", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCartHandler_Delete_ZeroCount(t *testing.T) {
	e := newTestEcho()
	stub := &stubCartService{
		deleteFn: func(_ context.Context, _ string) (domain.DeleteAck, error) {
			return domain.DeleteAck{}, nil
		},
	}
	h := NewCartHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/carts/unknown", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("unknown")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
