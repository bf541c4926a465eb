package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/brightcart/storefront-api/internal/core/domain"
	"github.com/brightcart/storefront-api/internal/core/ports"
)

// OrderHandler handles HTTP requests for order operations.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

type orderItemRequest struct {
	Name     string `json:"name" validate:"required"`
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
}

type pricingRequest struct {
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Currency string  `json:"currency"`
}

type createOrderRequest struct {
	Email   string           `json:"email"`
	Product orderItemRequest `json:"product" validate:"required"`
	Pricing pricingRequest   `json:"pricing" validate:"required"`
	Notes   string           `json:"notes"`
}

type createOrderResponse struct {
	Message string `json:"message"`
	OrderID string `json:"order_id"`
}

// Create handles POST /orders.
//
// @Summary      Place an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createOrderRequest  true  "Order payload"
// @Success      201   {object}  createOrderResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Product.Name == "" || req.Pricing.Amount == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing product or pricing info")
	}

	result, err := h.service.CreateOrder(c.Request().Context(), ports.CreateOrderInput{
		Email: req.Email,
		Product: domain.OrderItem{
			Name:     req.Product.Name,
			SKU:      req.Product.SKU,
			Quantity: req.Product.Quantity,
		},
		Pricing: domain.Pricing{
			Amount:   req.Pricing.Amount,
			Currency: req.Pricing.Currency,
		},
		Notes: req.Notes,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createOrderResponse{
		Message: "Order created successfully",
		OrderID: result.OrderID,
	})
}

// ListByEmail handles GET /orders?email=…
//
// @Summary      List orders for a customer email
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        email  query     string  true  "Customer email"
// @Success      200    {array}   domain.Order
// @Failure      400    {object}  messageResponse
// @Failure      401    {object}  messageResponse
// @Router       /orders [get]
func (h *OrderHandler) ListByEmail(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Email query parameter is required")
	}

	orders, err := h.service.ListByEmail(c.Request().Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// ListAll handles the admin-only full order listing. It is registered behind
// Authenticate + RequireRole(admin).
//
// @Summary      List every order (admin)
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Order
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Router       /ordersA [get]
func (h *OrderHandler) ListAll(c echo.Context) error {
	if _, err := ctxIdentity(c); err != nil {
		return err
	}

	orders, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}
