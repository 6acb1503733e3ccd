package handlers

import (
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/mpetrov/yatube/internal/cache"
	"github.com/mpetrov/yatube/internal/forms"
	"github.com/mpetrov/yatube/internal/middleware"
	"github.com/mpetrov/yatube/internal/models"
	"github.com/mpetrov/yatube/internal/pagination"
	"github.com/mpetrov/yatube/internal/render"
	"github.com/mpetrov/yatube/internal/repositories"
)

// indexCachePrefix keys cached index pages; post mutations invalidate it
const indexCachePrefix = "index:"

// PostHandler handles post listing, creation, viewing and editing
type PostHandler struct {
	postRepository    repositories.PostRepository
	groupRepository   repositories.GroupRepository
	commentRepository repositories.CommentRepository
	userRepository    repositories.UserRepository
	pageCache         cache.Cache
	renderer          *render.Renderer
	mediaRoot         string
	cacheTTL          time.Duration
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(
	postRepo repositories.PostRepository,
	groupRepo repositories.GroupRepository,
	commentRepo repositories.CommentRepository,
	userRepo repositories.UserRepository,
	pageCache cache.Cache,
	renderer *render.Renderer,
	mediaRoot string,
	cacheTTL time.Duration,
) *PostHandler {
	return &PostHandler{
		postRepository:    postRepo,
		groupRepository:   groupRepo,
		commentRepository: commentRepo,
		userRepository:    userRepo,
		pageCache:         pageCache,
		renderer:          renderer,
		mediaRoot:         mediaRoot,
		cacheTTL:          cacheTTL,
	}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(e *echo.Echo, requireLogin echo.MiddlewareFunc) {
	e.GET("/", h.Index)
	e.GET("/new", h.NewPost, requireLogin)
	e.POST("/new", h.NewPost, requireLogin)
	e.GET("/:username/:post_id", h.PostView)
	e.GET("/:username/:post_id/edit", h.PostEdit, requireLogin)
	e.POST("/:username/:post_id/edit", h.PostEdit, requireLogin)
}

// Index lists all posts, newest first, paginated by 10. Rendered pages
// are served from the page cache until a post mutation invalidates them
// or the TTL runs out.
func (h *PostHandler) Index(c echo.Context) error {
	rawPage := c.QueryParam("page")
	key := indexCachePrefix + "page:" + rawPage

	if body, ok := h.pageCache.Get(key); ok {
		return c.HTMLBlob(http.StatusOK, body)
	}

	total, err := h.postRepository.CountAll()
	if err != nil {
		return err
	}
	page := pagination.New(total, rawPage)
	posts, err := h.postRepository.PostsAll(page.Offset(), pagination.PageSize)
	if err != nil {
		return err
	}

	body, err := h.renderer.RenderBytes("index.html", echo.Map{
		"User":  middleware.CurrentUser(c),
		"Posts": posts,
		"Page":  page,
	})
	if err != nil {
		return err
	}
	h.pageCache.Set(key, body, h.cacheTTL)
	return c.HTMLBlob(http.StatusOK, body)
}

// NewPost renders the post creation form and handles its submission.
// On valid submission the post is persisted with the requester as author
// and the request redirects to the index.
func (h *PostHandler) NewPost(c echo.Context) error {
	user := middleware.CurrentUser(c)
	groups, err := h.groupRepository.GetGroups()
	if err != nil {
		return err
	}

	form := &forms.PostForm{}
	if c.Request().Method == http.MethodGet {
		return c.Render(http.StatusOK, "new_post.html", echo.Map{
			"User":          user,
			"Form":          form,
			"Errors":        forms.Errors{},
			"Groups":        groups,
			"SelectedGroup": uint(0),
		})
	}

	form.Text = c.FormValue("text")
	form.RawGroup = c.FormValue("group")
	fieldErrors, err := form.Validate(h.groupRepository)
	if err != nil {
		return err
	}
	if fieldErrors.Any() {
		return c.Render(http.StatusOK, "new_post.html", echo.Map{
			"User":          user,
			"Form":          form,
			"Errors":        fieldErrors,
			"Groups":        groups,
			"SelectedGroup": selectedGroup(form.GroupID),
		})
	}

	image, err := h.saveImage(c)
	if err != nil {
		return err
	}

	post := &models.Post{
		Text:     form.Text,
		AuthorID: user.ID,
		GroupID:  form.GroupID,
		Image:    image,
	}
	if err := h.postRepository.CreatePost(post); err != nil {
		return err
	}
	h.pageCache.Invalidate(indexCachePrefix)
	return c.Redirect(http.StatusFound, "/")
}

// PostView shows a single post with its comments and an empty comment form
func (h *PostHandler) PostView(c echo.Context) error {
	author, post, err := h.lookupPost(c)
	if err != nil {
		return err
	}
	comments, err := h.commentRepository.GetCommentsByPostID(post.ID)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "post.html", echo.Map{
		"User":     middleware.CurrentUser(c),
		"Author":   author,
		"Post":     post,
		"Comments": comments,
		"Form":     &forms.CommentForm{},
	})
}

// PostEdit lets the author change a post. A logged-in requester who is
// not the author is redirected to the post view without edits applied.
func (h *PostHandler) PostEdit(c echo.Context) error {
	user := middleware.CurrentUser(c)
	username := c.Param("username")
	postURL := "/" + username + "/" + c.Param("post_id")

	if user.Username != username {
		return c.Redirect(http.StatusFound, postURL)
	}

	_, post, err := h.lookupPost(c)
	if err != nil {
		return err
	}
	groups, err := h.groupRepository.GetGroups()
	if err != nil {
		return err
	}

	if c.Request().Method == http.MethodGet {
		form := &forms.PostForm{Text: post.Text, GroupID: post.GroupID}
		return c.Render(http.StatusOK, "new_post.html", echo.Map{
			"User":          user,
			"Form":          form,
			"Errors":        forms.Errors{},
			"Groups":        groups,
			"Post":          post,
			"SelectedGroup": selectedGroup(post.GroupID),
		})
	}

	form := &forms.PostForm{
		Text:     c.FormValue("text"),
		RawGroup: c.FormValue("group"),
	}
	fieldErrors, err := form.Validate(h.groupRepository)
	if err != nil {
		return err
	}
	if fieldErrors.Any() {
		return c.Render(http.StatusOK, "new_post.html", echo.Map{
			"User":          user,
			"Form":          form,
			"Errors":        fieldErrors,
			"Groups":        groups,
			"Post":          post,
			"SelectedGroup": selectedGroup(form.GroupID),
		})
	}

	post.Text = form.Text
	post.GroupID = form.GroupID
	post.Group = nil
	if image, err := h.saveImage(c); err != nil {
		return err
	} else if image != "" {
		post.Image = image
	}
	if err := h.postRepository.UpdatePost(post); err != nil {
		return err
	}
	h.pageCache.Invalidate(indexCachePrefix)
	return c.Redirect(http.StatusFound, postURL)
}

// lookupPost resolves the :username/:post_id pair. A missing user, a
// non-numeric ID or an author mismatch all surface as 404.
func (h *PostHandler) lookupPost(c echo.Context) (*models.User, *models.Post, error) {
	author, err := h.userRepository.GetUserByUsername(c.Param("username"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, echo.ErrNotFound
		}
		return nil, nil, err
	}
	id, err := strconv.ParseUint(c.Param("post_id"), 10, 32)
	if err != nil {
		return nil, nil, echo.ErrNotFound
	}
	post, err := h.postRepository.GetPostByAuthorAndID(author.ID, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, echo.ErrNotFound
		}
		return nil, nil, err
	}
	return author, post, nil
}

// saveImage stores an uploaded image under the media root and returns
// its media-relative path, or "" when the form carried no image.
func (h *PostHandler) saveImage(c echo.Context) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		// No file part in the form
		return "", nil
	}
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	rel := filepath.Join("posts", uuid.New().String()+filepath.Ext(file.Filename))
	dst := filepath.Join(h.mediaRoot, rel)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", err
	}
	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer out.Close()
	if _, err := io.Copy(out, src); err != nil {
		return "", err
	}
	return rel, nil
}

func selectedGroup(id *uint) uint {
	if id == nil {
		return 0
	}
	return *id
}
