package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/brightcart/storefront-api/internal/api/session"
	"github.com/brightcart/storefront-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
	carrier     *session.Carrier
}

func NewAuthHandler(authService ports.AuthService, carrier *session.Carrier) *AuthHandler {
	return &AuthHandler{authService: authService, carrier: carrier}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type userProfile struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

type loginResponse struct {
	Message string      `json:"message"`
	User    userProfile `json:"user"`
}

// Register creates a new account. No token is issued here; the client must
// log in separately.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	_, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		RemoteIP: c.RealIP(),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, messageResponse{Message: "User registered successfully"})
}

// Login verifies credentials, issues a token, and sets the session cookie.
// The response body never carries the password hash.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	token, account, err := h.authService.Login(c.Request().Context(), ports.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		RemoteIP: c.RealIP(),
	})
	if err != nil {
		return err
	}

	h.carrier.Attach(c, token)
	return c.JSON(http.StatusOK, loginResponse{
		Message: "Logged in successfully",
		User:    userProfile{Name: account.Name, Role: account.Role},
	})
}

// Logout records the discarded token for auditing and clears the session
// cookie. There is no server-side revocation: a bearer token captured before
// logout keeps verifying until it expires.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.authService.Logout(c.Request().Context(), ports.LogoutInput{
		Token:    h.carrier.Extract(c),
		RemoteIP: c.RealIP(),
	})
	h.carrier.Clear(c)
	return c.JSON(http.StatusOK, messageResponse{Message: "Logged out successfully"})
}
