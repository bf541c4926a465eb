// Package session moves the auth token between HTTP requests and responses.
// Tokens travel in the "token" cookie or, failing that, the Authorization
// bearer header; responses carry them back as an HttpOnly cookie.
package session

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// CookieName is the cookie the token travels in.
const CookieName = "token"

// Carrier reads tokens from requests and writes the session cookie on
// responses. Cookie attributes are environment configuration: Secure must be
// set whenever the transport is encrypted.
type Carrier struct {
	Secure   bool
	SameSite http.SameSite
	TTL      time.Duration
}

func NewCarrier(secure bool, sameSite http.SameSite, ttl time.Duration) *Carrier {
	return &Carrier{Secure: secure, SameSite: sameSite, TTL: ttl}
}

// Extract returns the token carried by the request, preferring the cookie
// over the bearer header. The empty string means no token was presented.
func (s *Carrier) Extract(c echo.Context) string {
	if cookie, err := c.Cookie(CookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	auth := c.Request().Header.Get(echo.HeaderAuthorization)
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// Attach sets the session cookie on the response. HttpOnly is unconditional:
// client-side scripts never read the token.
func (s *Carrier) Attach(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(s.TTL),
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: s.SameSite,
	})
}

// Clear expires the session cookie. This only affects the client copy; an
// already-captured bearer token stays valid until its natural expiry.
func (s *Carrier) Clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: s.SameSite,
	})
}
