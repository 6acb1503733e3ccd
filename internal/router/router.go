package router

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"github.com/mpetrov/yatube/internal/cache"
	"github.com/mpetrov/yatube/internal/handlers"
	"github.com/mpetrov/yatube/internal/middleware"
	"github.com/mpetrov/yatube/internal/models"
	"github.com/mpetrov/yatube/internal/render"
	"github.com/mpetrov/yatube/internal/repositories"
	"github.com/mpetrov/yatube/pkg/config"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
}

// SetupRoutes configures the renderer, error pages and all application
// routes, and injects dependencies.
func SetupRoutes(e *echo.Echo, db *gorm.DB, pageCache cache.Cache, cfg *config.Config) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Group{},
		&models.Post{},
		&models.Comment{},
		&models.Follow{},
		&models.Session{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}

	renderer := render.New()
	e.Renderer = renderer
	e.HTTPErrorHandler = errorHandler

	// Uploaded post images
	e.Static("/media", cfg.MediaRoot)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(db)
	groupRepo := repositories.NewPostgresGroupRepository(db)
	postRepo := repositories.NewPostgresPostRepository(db)
	commentRepo := repositories.NewPostgresCommentRepository(db)
	followRepo := repositories.NewPostgresFollowRepository(db)
	sessionRepo := repositories.NewPostgresSessionRepository(db)

	// Session loading applies to every route; login is only required
	// where a route opts in.
	e.Use(middleware.SessionAuth(sessionRepo, userRepo))
	requireLogin := middleware.LoginRequired()

	authHandler := handlers.NewAuthHandler(userRepo, sessionRepo, cfg.SessionLifetime)
	authHandler.RegisterAuthRoutes(e, requireLogin)

	postHandler := handlers.NewPostHandler(postRepo, groupRepo, commentRepo, userRepo, pageCache, renderer, cfg.MediaRoot, cfg.CacheTTL)
	postHandler.RegisterPostRoutes(e, requireLogin)

	groupHandler := handlers.NewGroupHandler(groupRepo, postRepo)
	groupHandler.RegisterGroupRoutes(e)

	followHandler := handlers.NewFollowHandler(followRepo, userRepo, postRepo)
	followHandler.RegisterFollowRoutes(e, requireLogin)

	profileHandler := handlers.NewProfileHandler(userRepo, postRepo, followRepo)
	profileHandler.RegisterProfileRoutes(e)

	commentHandler := handlers.NewCommentHandler(commentRepo, postRepo, userRepo)
	commentHandler.RegisterCommentRoutes(e, requireLogin)
}

// errorHandler renders the 404 page with the request path for missing
// resources and a generic 500 page for everything else.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
	}
	if code == http.StatusNotFound {
		if rerr := c.Render(http.StatusNotFound, "404.html", echo.Map{"Path": c.Request().URL.Path}); rerr != nil {
			c.Logger().Error(rerr)
		}
		return
	}
	c.Logger().Error(err)
	if rerr := c.Render(code, "500.html", nil); rerr != nil {
		c.Logger().Error(rerr)
	}
}
