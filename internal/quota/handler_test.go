package quota

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kkkk66/GROWit/internal/shared/server/middleware"
)

func setupUsageRouter(t *testing.T, svc *Service) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api/v1")
	api.Use(middleware.Identity())
	NewHandler(svc).RegisterRoutes(api)
	return r
}

func getUsage(t *testing.T, router *gin.Engine, clientID string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/usage", nil)
	req.Header.Set("X-Client-Id", clientID)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return resp.Code, body
}

func TestUsageEndpoint(t *testing.T) {
	svc := NewService(5)
	for i := 0; i < 2; i++ {
		if _, err := svc.Reserve(context.Background(), "client-1"); err != nil {
			t.Fatalf("reserve %d: %v", i+1, err)
		}
	}
	router := setupUsageRouter(t, svc)

	code, body := getUsage(t, router, "client-1")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if body["count"].(float64) != 2 || body["limit"].(float64) != 5 {
		t.Fatalf("body = %v", body)
	}
	if body["remaining"].(float64) != 3 {
		t.Fatalf("remaining = %v, want 3", body["remaining"])
	}
}

func TestUsageEndpointClampsRemaining(t *testing.T) {
	// A stored count above the limit (e.g. after the operator lowers the
	// limit) must report zero remaining, never a negative number.
	store := newMemoryStore()
	if err := store.Save(context.Background(), "client-1", Counter{Count: 9, Date: Today(time.Now())}); err != nil {
		t.Fatalf("seed counter: %v", err)
	}
	router := setupUsageRouter(t, newService(store, 5))

	code, body := getUsage(t, router, "client-1")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if body["count"].(float64) != 9 {
		t.Fatalf("count = %v, want 9", body["count"])
	}
	if body["remaining"].(float64) != 0 {
		t.Fatalf("remaining = %v, want 0", body["remaining"])
	}
}

func TestUsageEndpointFreshClient(t *testing.T) {
	router := setupUsageRouter(t, NewService(5))

	code, body := getUsage(t, router, "client-new")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if body["count"].(float64) != 0 || body["remaining"].(float64) != 5 {
		t.Fatalf("fresh client body = %v", body)
	}
}
