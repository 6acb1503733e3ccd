package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/mpetrov/yatube/internal/middleware"
	"github.com/mpetrov/yatube/internal/models"
	"github.com/mpetrov/yatube/internal/pagination"
	"github.com/mpetrov/yatube/internal/repositories"
)

// FollowHandler handles the personal feed and follow/unfollow actions
type FollowHandler struct {
	followRepository repositories.FollowRepository
	userRepository   repositories.UserRepository
	postRepository   repositories.PostRepository
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(followRepo repositories.FollowRepository, userRepo repositories.UserRepository, postRepo repositories.PostRepository) *FollowHandler {
	return &FollowHandler{
		followRepository: followRepo,
		userRepository:   userRepo,
		postRepository:   postRepo,
	}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(e *echo.Echo, requireLogin echo.MiddlewareFunc) {
	e.GET("/follow", h.FollowIndex, requireLogin)
	e.GET("/:username/follow", h.ProfileFollow, requireLogin)
	e.GET("/:username/unfollow", h.ProfileUnfollow, requireLogin)
}

// FollowIndex lists posts authored by anyone the requester follows,
// newest first, paginated like every other listing.
func (h *FollowHandler) FollowIndex(c echo.Context) error {
	user := middleware.CurrentUser(c)

	total, err := h.postRepository.CountByFollowedAuthors(user.ID)
	if err != nil {
		return err
	}
	page := pagination.New(total, c.QueryParam("page"))
	posts, err := h.postRepository.PostsByFollowedAuthors(user.ID, page.Offset(), pagination.PageSize)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "follow.html", echo.Map{
		"User":  user,
		"Posts": posts,
		"Page":  page,
	})
}

// ProfileFollow creates a follow edge from the requester to the target
// author unless the requester is the target or already follows them,
// then redirects to the target's profile.
func (h *FollowHandler) ProfileFollow(c echo.Context) error {
	user := middleware.CurrentUser(c)
	username := c.Param("username")

	author, err := h.userRepository.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.ErrNotFound
		}
		return err
	}

	if author.ID != user.ID {
		following, err := h.followRepository.IsFollowing(user.ID, author.ID)
		if err != nil {
			return err
		}
		if !following {
			follow := &models.Follow{UserID: user.ID, AuthorID: author.ID}
			if err := h.followRepository.CreateFollow(follow); err != nil {
				return err
			}
		}
	}

	return c.Redirect(http.StatusFound, "/"+username)
}

// ProfileUnfollow deletes the requester's follow edge to the target
// author. 404 when no such edge exists.
func (h *FollowHandler) ProfileUnfollow(c echo.Context) error {
	user := middleware.CurrentUser(c)
	username := c.Param("username")

	author, err := h.userRepository.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.ErrNotFound
		}
		return err
	}

	if err := h.followRepository.DeleteFollow(user.ID, author.ID); err != nil {
		if errors.Is(err, repositories.ErrFollowNotFound) {
			return echo.ErrNotFound
		}
		return err
	}

	return c.Redirect(http.StatusFound, "/"+username)
}
