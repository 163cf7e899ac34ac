package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/Saby007/go-microservices-demo/internal/domain/errors"
	"github.com/Saby007/go-microservices-demo/internal/domain/model"
	"github.com/Saby007/go-microservices-demo/internal/server/http/dto"
	testhelpers "github.com/Saby007/go-microservices-demo/internal/test"
	"github.com/Saby007/go-microservices-demo/internal/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(t *testing.T, method, route, path string, handler gin.HandlerFunc, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, route, handler)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeOrder(t *testing.T, resp *httptest.ResponseRecorder) dto.OrderResponse {
	t.Helper()
	var out dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

func TestOrderHandlerCreateReturnsAssignedStatus(t *testing.T) {
	body, _ := json.Marshal(dto.OrderRequest{UserID: 7, ProductName: "Mouse", Quantity: 2, Price: 25.50})
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{CreateFn: func(ctx context.Context, candidate usecase.OrderCandidate) (*model.Order, error) {
		if candidate.UserID != 7 || candidate.ProductName != "Mouse" || candidate.Quantity != 2 || candidate.Price != 25.50 {
			t.Fatalf("unexpected candidate: %+v", candidate)
		}
		return &model.Order{ID: 1, UserID: 7, ProductName: "Mouse", Quantity: 2, Price: 25.50, Status: model.OrderStatusPending}, nil
	}})

	resp := performRequest(t, http.MethodPost, "/api/orders", "/api/orders", handler.Create, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	out := decodeOrder(t, resp)
	if out.Status != "PENDING" || out.ID != 1 {
		t.Fatalf("unexpected response: %+v", out)
	}
}

func TestOrderHandlerCreateIgnoresCallerStatus(t *testing.T) {
	body := []byte(`{"userId":7,"productName":"Mouse","quantity":2,"price":25.5,"status":"COMPLETED"}`)
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{CreateFn: func(ctx context.Context, candidate usecase.OrderCandidate) (*model.Order, error) {
		return &model.Order{ID: 1, UserID: 7, ProductName: "Mouse", Quantity: 2, Price: 25.5, Status: model.OrderStatusPendingValidation}, nil
	}})

	resp := performRequest(t, http.MethodPost, "/api/orders", "/api/orders", handler.Create, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if out := decodeOrder(t, resp); out.Status != "PENDING_VALIDATION" {
		t.Fatalf("status must come from admission policy, got %q", out.Status)
	}
}

func TestOrderHandlerCreateInvalidInput(t *testing.T) {
	body, _ := json.Marshal(dto.OrderRequest{UserID: 7, ProductName: "Mouse", Quantity: -1, Price: 25.50})
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{CreateFn: func(ctx context.Context, candidate usecase.OrderCandidate) (*model.Order, error) {
		return nil, domainErrors.ErrInvalidQuantity
	}})

	resp := performRequest(t, http.MethodPost, "/api/orders", "/api/orders", handler.Create, body)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestOrderHandlerCreateMalformedBody(t *testing.T) {
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{CreateFn: func(ctx context.Context, candidate usecase.OrderCandidate) (*model.Order, error) {
		t.Fatal("facade must not be called for malformed body")
		return nil, nil
	}})

	resp := performRequest(t, http.MethodPost, "/api/orders", "/api/orders", handler.Create, []byte(`{"quantity":`))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestOrderHandlerGet(t *testing.T) {
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{OrderFn: func(ctx context.Context, id int64) (*model.Order, error) {
		if id != 5 {
			t.Fatalf("unexpected id %d", id)
		}
		return &model.Order{ID: 5, ProductName: "Laptop", Status: model.OrderStatusCompleted}, nil
	}})

	resp := performRequest(t, http.MethodGet, "/api/orders/:id", "/api/orders/5", handler.Get, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if out := decodeOrder(t, resp); out.ProductName != "Laptop" {
		t.Fatalf("unexpected response: %+v", out)
	}
}

func TestOrderHandlerGetNotFound(t *testing.T) {
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{OrderFn: func(ctx context.Context, id int64) (*model.Order, error) {
		return nil, domainErrors.ErrNotFound
	}})

	resp := performRequest(t, http.MethodGet, "/api/orders/:id", "/api/orders/99", handler.Get, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestOrderHandlerGetMalformedID(t *testing.T) {
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{})

	resp := performRequest(t, http.MethodGet, "/api/orders/:id", "/api/orders/abc", handler.Get, nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestOrderHandlerUpdateNotFound(t *testing.T) {
	body, _ := json.Marshal(dto.OrderRequest{UserID: 1, ProductName: "Mouse", Quantity: 1, Price: 10, Status: "PENDING"})
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{UpdateFn: func(ctx context.Context, id int64, candidate usecase.OrderCandidate, status string) (*model.Order, error) {
		return nil, domainErrors.ErrNotFound
	}})

	resp := performRequest(t, http.MethodPut, "/api/orders/:id", "/api/orders/42", handler.Update, body)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestOrderHandlerUpdateUnknownStatus(t *testing.T) {
	body, _ := json.Marshal(dto.OrderRequest{UserID: 1, ProductName: "Mouse", Quantity: 1, Price: 10, Status: "SHIPPED"})
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{UpdateFn: func(ctx context.Context, id int64, candidate usecase.OrderCandidate, status string) (*model.Order, error) {
		return nil, domainErrors.ErrUnknownStatus
	}})

	resp := performRequest(t, http.MethodPut, "/api/orders/:id", "/api/orders/1", handler.Update, body)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestOrderHandlerDelete(t *testing.T) {
	deleted := int64(0)
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{DeleteFn: func(ctx context.Context, id int64) error {
		deleted = id
		return nil
	}})

	resp := performRequest(t, http.MethodDelete, "/api/orders/:id", "/api/orders/3", handler.Delete, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if deleted != 3 {
		t.Fatalf("expected delete of order 3, got %d", deleted)
	}
}

func TestOrderHandlerDeleteNotFound(t *testing.T) {
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{DeleteFn: func(ctx context.Context, id int64) error {
		return domainErrors.ErrNotFound
	}})

	resp := performRequest(t, http.MethodDelete, "/api/orders/:id", "/api/orders/3", handler.Delete, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestOrderHandlerList(t *testing.T) {
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{OrdersFn: func(ctx context.Context) ([]model.Order, error) {
		return []model.Order{
			{ID: 1, ProductName: "Laptop", Status: model.OrderStatusPending},
			{ID: 2, ProductName: "Mouse", Status: model.OrderStatusCompleted},
		}, nil
	}})

	resp := performRequest(t, http.MethodGet, "/api/orders", "/api/orders", handler.List, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var out []dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(out) != 2 || out[0].ProductName != "Laptop" {
		t.Fatalf("unexpected response: %+v", out)
	}
}

func TestOrderHandlerListByStatusUnknown(t *testing.T) {
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{ByStatusFn: func(ctx context.Context, status string) ([]model.Order, error) {
		return nil, domainErrors.ErrUnknownStatus
	}})

	resp := performRequest(t, http.MethodGet, "/api/orders/status/:status", "/api/orders/status/SHIPPED", handler.ListByStatus, nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestOrderHandlerSummary(t *testing.T) {
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{CountFn: func(ctx context.Context) (int64, error) {
		return 6, nil
	}})

	resp := performRequest(t, http.MethodGet, "/api/orders/summary", "/api/orders/summary", handler.Summary, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if got := resp.Body.String(); got != "Total Orders: 6 | Service: order-service" {
		t.Fatalf("unexpected summary %q", got)
	}
}

func TestOrderHandlerHealth(t *testing.T) {
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{})

	resp := performRequest(t, http.MethodGet, "/api/orders/health", "/api/orders/health", handler.Health, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if got := resp.Body.String(); got != "Order Service is running" {
		t.Fatalf("unexpected health body %q", got)
	}
}
