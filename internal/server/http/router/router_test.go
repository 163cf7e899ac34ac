package router

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Saby007/go-microservices-demo/internal/server/http/handlers"
	testhelpers "github.com/Saby007/go-microservices-demo/internal/test"
)

func TestSetupOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	engine := SetupOrders(testhelpers.OrderFacadeStub{}, logger)

	body, _ := json.Marshal(map[string]any{"userId": 1, "productName": "Laptop", "quantity": 1, "price": 999.99})
	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for create, got %d", resp.Code)
	}

	for _, path := range []string{
		"/api/orders",
		"/api/orders/1",
		"/api/orders/user/1",
		"/api/orders/status/PENDING",
		"/api/orders/recent",
		"/api/orders/summary",
		"/api/orders/health",
	} {
		resp = httptest.NewRecorder()
		engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, path, nil))
		if resp.Code != http.StatusOK {
			t.Fatalf("expected status 200 for %s, got %d", path, resp.Code)
		}
	}
}

func TestSetupUsers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	engine := SetupUsers(testhelpers.UserFacadeStub{}, logger)

	body, _ := json.Marshal(map[string]string{"name": "Jane Smith", "email": "jane.smith@company.com", "department": "Marketing"})
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for create, got %d", resp.Code)
	}

	for _, path := range []string{
		"/api/users",
		"/api/users/1",
		"/api/users/email/jane.smith@company.com",
		"/api/users/department/Marketing",
		"/api/users/search?query=jane",
		"/api/users/health",
	} {
		resp = httptest.NewRecorder()
		engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, path, nil))
		if resp.Code != http.StatusOK {
			t.Fatalf("expected status 200 for %s, got %d", path, resp.Code)
		}
	}
}

var _ handlers.OrderFacade = (*testhelpers.OrderFacadeStub)(nil)
var _ handlers.UserFacade = (*testhelpers.UserFacadeStub)(nil)
