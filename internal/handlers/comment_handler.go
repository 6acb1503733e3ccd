package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/mpetrov/yatube/internal/forms"
	"github.com/mpetrov/yatube/internal/middleware"
	"github.com/mpetrov/yatube/internal/models"
	"github.com/mpetrov/yatube/internal/repositories"
)

// CommentHandler handles comment submission
type CommentHandler struct {
	commentRepository repositories.CommentRepository
	postRepository    repositories.PostRepository
	userRepository    repositories.UserRepository
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository, userRepo repositories.UserRepository) *CommentHandler {
	return &CommentHandler{
		commentRepository: commentRepo,
		postRepository:    postRepo,
		userRepository:    userRepo,
	}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(e *echo.Echo, requireLogin echo.MiddlewareFunc) {
	e.POST("/:username/:post_id/comment", h.AddComment, requireLogin)
}

// AddComment creates a comment on a post and redirects back to the post
// view. Invalid text is dropped without an error page; the redirect
// happens either way.
func (h *CommentHandler) AddComment(c echo.Context) error {
	username := c.Param("username")

	author, err := h.userRepository.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.ErrNotFound
		}
		return err
	}
	id, err := strconv.ParseUint(c.Param("post_id"), 10, 32)
	if err != nil {
		return echo.ErrNotFound
	}
	post, err := h.postRepository.GetPostByAuthorAndID(author.ID, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.ErrNotFound
		}
		return err
	}

	form := &forms.CommentForm{Text: c.FormValue("text")}
	if !form.Validate().Any() {
		comment := &models.Comment{
			PostID:   post.ID,
			AuthorID: middleware.CurrentUser(c).ID,
			Text:     form.Text,
		}
		if err := h.commentRepository.CreateComment(comment); err != nil {
			return err
		}
	}

	return c.Redirect(http.StatusFound, "/"+username+"/"+c.Param("post_id"))
}
