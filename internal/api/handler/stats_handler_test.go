package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bistroboss/restaurant-api/internal/core/ports"
)

type stubStatsService struct {
	result ports.StatsResult
}

func (s *stubStatsService) Stats(_ context.Context) (*ports.StatsResult, error) {
	return &s.result, nil
}

func TestStatsHandler_Stats(t *testing.T) {
	e := newTestEcho()
	h := NewStatsHandler(&stubStatsService{result: ports.StatsResult{TotalUsers: 7, TotalMenuItems: 42}})

	req := httptest.NewRequest(http.MethodGet, "/admin-stats", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Stats(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]int64
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["totalUser"] != 7 || resp["totalFoodMenus"] != 42 {
		t.Fatalf("unexpected counts: %+v", resp)
	}
}
