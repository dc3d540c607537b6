package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bistroboss/restaurant-api/internal/core/domain"
)

func TestHTTPErrorHandler(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{
			name:     "echo error passes through",
			err:      echo.NewHTTPError(http.StatusUnauthorized, "invalid token"),
			wantCode: http.StatusUnauthorized,
			wantMsg:  "invalid token",
		},
		{
			name:     "invalid amount",
			err:      domain.ErrInvalidAmount,
			wantCode: http.StatusBadRequest,
			wantMsg:  "invalid payment amount",
		},
		{
			name:     "wrapped provider error",
			err:      fmt.Errorf("%w: status 503", domain.ErrPaymentProvider),
			wantCode: http.StatusBadGateway,
			wantMsg:  "payment provider unavailable",
		},
		{
			name:     "unexpected error hides the cause",
			err:      errors.New("mongo: connection reset"),
			wantCode: http.StatusInternalServerError,
			wantMsg:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			NewHTTPErrorHandler(zerolog.Nop())(tt.err, c)

			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, rec.Code)
			}

			var resp map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp["error"] != tt.wantMsg {
				t.Fatalf("expected %q, got %q", tt.wantMsg, resp["error"])
			}
		})
	}
}
