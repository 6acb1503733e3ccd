package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/mpetrov/yatube/internal/middleware"
	"github.com/mpetrov/yatube/internal/pagination"
	"github.com/mpetrov/yatube/internal/repositories"
)

// ProfileHandler handles author profile pages
type ProfileHandler struct {
	userRepository   repositories.UserRepository
	postRepository   repositories.PostRepository
	followRepository repositories.FollowRepository
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(userRepo repositories.UserRepository, postRepo repositories.PostRepository, followRepo repositories.FollowRepository) *ProfileHandler {
	return &ProfileHandler{
		userRepository:   userRepo,
		postRepository:   postRepo,
		followRepository: followRepo,
	}
}

// RegisterProfileRoutes registers profile-related routes
func (h *ProfileHandler) RegisterProfileRoutes(e *echo.Echo) {
	e.GET("/:username", h.Profile)
}

// Profile lists an author's posts, paginated, and tells the template
// whether the current viewer follows this author. The flag is only
// computed for an authenticated viewer looking at someone else's page.
func (h *ProfileHandler) Profile(c echo.Context) error {
	author, err := h.userRepository.GetUserByUsername(c.Param("username"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.ErrNotFound
		}
		return err
	}

	total, err := h.postRepository.CountByAuthor(author.ID)
	if err != nil {
		return err
	}
	page := pagination.New(total, c.QueryParam("page"))
	posts, err := h.postRepository.PostsByAuthor(author.ID, page.Offset(), pagination.PageSize)
	if err != nil {
		return err
	}

	following := false
	user := middleware.CurrentUser(c)
	if user != nil && user.ID != author.ID {
		following, err = h.followRepository.IsFollowing(user.ID, author.ID)
		if err != nil {
			return err
		}
	}

	return c.Render(http.StatusOK, "profile.html", echo.Map{
		"User":      user,
		"Author":    author,
		"Posts":     posts,
		"Page":      page,
		"Following": following,
	})
}
