package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/mpetrov/yatube/internal/middleware"
	"github.com/mpetrov/yatube/internal/models"
	"github.com/mpetrov/yatube/internal/repositories"
)

// AuthHandler handles signup, login and logout
type AuthHandler struct {
	userRepository    repositories.UserRepository
	sessionRepository repositories.SessionRepository
	sessionLifetime   time.Duration
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userRepo repositories.UserRepository, sessionRepo repositories.SessionRepository, sessionLifetime time.Duration) *AuthHandler {
	return &AuthHandler{
		userRepository:    userRepo,
		sessionRepository: sessionRepo,
		sessionLifetime:   sessionLifetime,
	}
}

// RegisterAuthRoutes registers authentication-related routes
func (h *AuthHandler) RegisterAuthRoutes(e *echo.Echo, requireLogin echo.MiddlewareFunc) {
	e.GET("/auth/signup", h.Signup)
	e.POST("/auth/signup", h.Signup)
	e.GET("/auth/login", h.Login)
	e.POST("/auth/login", h.Login)
	e.GET("/auth/logout", h.Logout, requireLogin)
}

// Signup creates a new user and logs them in
func (h *AuthHandler) Signup(c echo.Context) error {
	if c.Request().Method == http.MethodGet {
		return c.Render(http.StatusOK, "signup.html", echo.Map{
			"User":     middleware.CurrentUser(c),
			"Username": "",
		})
	}

	req := models.SignupRequest{
		Username: strings.TrimSpace(c.FormValue("username")),
		Password: c.FormValue("password"),
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return c.Render(http.StatusOK, "signup.html", echo.Map{
			"User":     middleware.CurrentUser(c),
			"Username": req.Username,
			"Error":    "Username must be 2-150 characters and password at least 6.",
		})
	}

	if _, err := h.userRepository.GetUserByUsername(req.Username); err == nil {
		return c.Render(http.StatusOK, "signup.html", echo.Map{
			"User":     middleware.CurrentUser(c),
			"Username": req.Username,
			"Error":    "This username is already taken.",
		})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := &models.User{
		Username:     req.Username,
		PasswordHash: string(hash),
	}
	if err := h.userRepository.CreateUser(user); err != nil {
		return err
	}

	if err := h.startSession(c, user); err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, "/")
}

// Login authenticates a user, creates a session and honors the ?next=
// return parameter set by the login-required redirect.
func (h *AuthHandler) Login(c echo.Context) error {
	next := c.QueryParam("next")
	if c.Request().Method == http.MethodGet {
		return c.Render(http.StatusOK, "login.html", echo.Map{
			"User":     middleware.CurrentUser(c),
			"Username": "",
			"Next":     next,
		})
	}

	if v := c.FormValue("next"); v != "" {
		next = v
	}
	username := strings.TrimSpace(c.FormValue("username"))
	password := c.FormValue("password")

	user, err := h.userRepository.GetUserByUsername(username)
	if err != nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return c.Render(http.StatusOK, "login.html", echo.Map{
			"User":     middleware.CurrentUser(c),
			"Username": username,
			"Next":     next,
			"Error":    "Invalid username or password.",
		})
	}

	// One active session per user
	if err := h.sessionRepository.DeleteUserSessions(user.ID); err != nil {
		return err
	}
	if err := h.startSession(c, user); err != nil {
		return err
	}

	if next == "" || !strings.HasPrefix(next, "/") {
		next = "/"
	}
	return c.Redirect(http.StatusFound, next)
}

// Logout destroys the current session and clears the cookie
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(middleware.SessionCookie); err == nil {
		if err := h.sessionRepository.DeleteSession(cookie.Value); err != nil {
			return err
		}
	}
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) startSession(c echo.Context, user *models.User) error {
	session := &models.Session{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(h.sessionLifetime),
	}
	if err := h.sessionRepository.CreateSession(session); err != nil {
		return err
	}
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    session.ID,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
	})
	return nil
}
