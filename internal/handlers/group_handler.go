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

// GroupHandler handles group listing pages
type GroupHandler struct {
	groupRepository repositories.GroupRepository
	postRepository  repositories.PostRepository
}

// NewGroupHandler creates a new GroupHandler
func NewGroupHandler(groupRepo repositories.GroupRepository, postRepo repositories.PostRepository) *GroupHandler {
	return &GroupHandler{
		groupRepository: groupRepo,
		postRepository:  postRepo,
	}
}

// RegisterGroupRoutes registers group-related routes
func (h *GroupHandler) RegisterGroupRoutes(e *echo.Echo) {
	e.GET("/group/:slug", h.GroupPosts)
}

// GroupPosts lists a group's posts, newest first, paginated by 10.
// An unknown slug is a 404.
func (h *GroupHandler) GroupPosts(c echo.Context) error {
	group, err := h.groupRepository.GetGroupBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.ErrNotFound
		}
		return err
	}

	total, err := h.postRepository.CountByGroup(group.ID)
	if err != nil {
		return err
	}
	page := pagination.New(total, c.QueryParam("page"))
	posts, err := h.postRepository.PostsByGroup(group.ID, page.Offset(), pagination.PageSize)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "group.html", echo.Map{
		"User":  middleware.CurrentUser(c),
		"Group": group,
		"Posts": posts,
		"Page":  page,
	})
}
