package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mpetrov/yatube/internal/models"
	"github.com/mpetrov/yatube/internal/repositories"
)

// SessionCookie is the name of the auth cookie
const SessionCookie = "session_id"

// LoginURL is where unauthenticated requests to protected routes are sent
const LoginURL = "/auth/login"

const userContextKey = "user"

// SessionAuth resolves the session cookie to a user and stores it in the
// request context. Anonymous and expired-session requests pass through
// with no user set.
func SessionAuth(sessions repositories.SessionRepository, users repositories.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				return next(c)
			}
			session, err := sessions.GetSession(cookie.Value)
			if err != nil || session.ExpiresAt.Before(time.Now()) {
				return next(c)
			}
			user, err := users.GetUserByID(session.UserID)
			if err != nil {
				return next(c)
			}
			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// LoginRequired redirects anonymous requests to the login page, carrying
// the original path as the ?next= return parameter.
func LoginRequired() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if CurrentUser(c) == nil {
				return c.Redirect(http.StatusFound, LoginURL+"?next="+c.Request().URL.Path)
			}
			return next(c)
		}
	}
}

// CurrentUser returns the authenticated user for this request, or nil
func CurrentUser(c echo.Context) *models.User {
	user, _ := c.Get(userContextKey).(*models.User)
	return user
}
