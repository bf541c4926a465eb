package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/brightcart/storefront-api/internal/api/middleware"
	"github.com/brightcart/storefront-api/internal/api/session"
	"github.com/brightcart/storefront-api/internal/core/domain"
	"github.com/brightcart/storefront-api/internal/core/ports"
	"github.com/brightcart/storefront-api/internal/core/service"
)

type stubOrderService struct {
	orders []domain.Order
}

func (s *stubOrderService) CreateOrder(_ context.Context, in ports.CreateOrderInput) (*ports.OrderResult, error) {
	s.orders = append(s.orders, domain.Order{Email: in.Email, Product: in.Product, Pricing: in.Pricing})
	return &ports.OrderResult{OrderID: "order-1", CreatedAt: time.Now()}, nil
}

func (s *stubOrderService) ListByEmail(_ context.Context, email string) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range s.orders {
		if o.Email == email {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *stubOrderService) ListAll(context.Context) ([]domain.Order, error) {
	return s.orders, nil
}

// newOrderApp wires the admin order listing behind the real middleware chain,
// so the 401/403/200 matrix is exercised end to end.
func newOrderApp(t *testing.T, svc ports.OrderService) (*echo.Echo, *service.TokenService) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	tokens := service.NewTokenService("secret", time.Hour)
	carrier := session.NewCarrier(false, http.SameSiteLaxMode, time.Hour)
	authn := middleware.Authenticate(carrier, tokens)

	h := NewOrderHandler(svc)
	e.POST("/orders", h.Create, authn)
	e.GET("/orders", h.ListByEmail, authn)
	e.GET("/ordersA", h.ListAll, authn, middleware.RequireRole(domain.RoleAdmin))
	return e, tokens
}

func TestAdminOrderList_NoToken(t *testing.T) {
	e, _ := newOrderApp(t, &stubOrderService{})

	req := httptest.NewRequest(http.MethodGet, "/ordersA", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
}

func TestAdminOrderList_UserRoleForbidden(t *testing.T) {
	e, tokens := newOrderApp(t, &stubOrderService{})
	userToken, err := tokens.Issue("user-1", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/ordersA", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: userToken})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for user role, got %d", rec.Code)
	}
}

func TestAdminOrderList_InvalidToken(t *testing.T) {
	e, _ := newOrderApp(t, &stubOrderService{})

	req := httptest.NewRequest(http.MethodGet, "/ordersA", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer bogus")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for invalid token, got %d", rec.Code)
	}
}

func TestAdminOrderList_AdminAllowed(t *testing.T) {
	svc := &stubOrderService{orders: []domain.Order{{Email: "a@x.com"}}}
	e, tokens := newOrderApp(t, svc)
	adminToken, err := tokens.Issue("admin-1", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/ordersA", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: adminToken})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "a@x.com") {
		t.Fatalf("expected order list in body: %s", rec.Body.String())
	}
}

func TestOrderCreate_MissingProductOrPricing(t *testing.T) {
	e, tokens := newOrderApp(t, &stubOrderService{})
	token, err := tokens.Issue("user-1", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{"email":"a@x.com"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing product/pricing, got %d", rec.Code)
	}
}

func TestOrderCreate_Success(t *testing.T) {
	svc := &stubOrderService{}
	e, tokens := newOrderApp(t, svc)
	token, err := tokens.Issue("user-1", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	body := `{"email":"a@x.com","product":{"name":"Lamp","quantity":1},"pricing":{"amount":25.5,"currency":"USD"}}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(svc.orders) != 1 {
		t.Fatalf("expected one stored order, got %d", len(svc.orders))
	}
}

func TestOrderListByEmail_RequiresEmailParam(t *testing.T) {
	e, tokens := newOrderApp(t, &stubOrderService{})
	token, err := tokens.Issue("user-1", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without email param, got %d", rec.Code)
	}
}
