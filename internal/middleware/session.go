// Package middleware provides HTTP middleware for the application.
package middleware

import (
	"moneta/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

const (
	// SessionCookie is the name of the cookie carrying the session token.
	SessionCookie = "sessionId"
	// SessionKey is the locals key the token is stored under for handlers.
	SessionKey = "sessionID"
)

// RequireSession rejects requests that carry no session cookie. A present
// token is passed through untouched: no format, existence, or expiry check is
// performed, the store's row filter is the only access control.
func RequireSession(c *fiber.Ctx) error {
	token := c.Cookies(SessionCookie)
	if token == "" {
		return response.Unauthorized(c)
	}

	c.Locals(SessionKey, token)
	return c.Next()
}
