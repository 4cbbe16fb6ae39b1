package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/emilythestrangee/board-game-reviews/backend/internal/apperr"
	"github.com/emilythestrangee/board-game-reviews/backend/internal/config"
	"github.com/emilythestrangee/board-game-reviews/backend/internal/database"
	"github.com/emilythestrangee/board-game-reviews/backend/internal/handlers"
	"github.com/emilythestrangee/board-game-reviews/backend/internal/middleware"
	"github.com/emilythestrangee/board-game-reviews/backend/internal/store"
)

type Server struct {
	cfg     *config.Config
	log     *zap.Logger
	db      database.Service
	handler *handlers.Handler
}

func New(cfg *config.Config, log *zap.Logger, db database.Service) *Server {
	return &Server{
		cfg:     cfg,
		log:     log,
		db:      db,
		handler: handlers.NewHandler(store.New(db.GetDB())),
	}
}

// NewServer creates and configures a new server
func NewServer(cfg *config.Config, log *zap.Logger, db database.Service) *http.Server {
	s := New(cfg, log, db)

	return &http.Server{
		Addr:         cfg.Addr(),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// RegisterRoutes sets up all application routes
func (s *Server) RegisterRoutes() *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(s.log))
	r.Use(middleware.Logger(s.log))

	// CORS configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     s.cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-Requested-With", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	r.Use(middleware.Errors(s.log))

	// Health check endpoint
	r.GET("/health", s.healthHandler)

	api := r.Group("/api")
	{
		api.GET("", s.handler.API.GetEndpoints)
		api.GET("/health", s.handler.API.Health)

		api.GET("/categories", s.handler.Category.GetCategories)
		api.POST("/categories", s.handler.Category.CreateCategory)

		api.GET("/reviews", s.handler.Review.GetReviews)
		api.POST("/reviews", s.handler.Review.CreateReview)
		api.GET("/reviews/:review_id", s.handler.Review.GetReview)
		api.PATCH("/reviews/:review_id", s.handler.Review.VoteReview)
		api.DELETE("/reviews/:review_id", s.handler.Review.DeleteReview)

		api.GET("/reviews/:review_id/comments", s.handler.Comment.GetComments)
		api.POST("/reviews/:review_id/comments", s.handler.Comment.CreateComment)
		api.PATCH("/comments/:comment_id", s.handler.Comment.VoteComment)
		api.DELETE("/comments/:comment_id", s.handler.Comment.DeleteComment)

		api.GET("/users", s.handler.User.GetUsers)
		api.POST("/users", s.handler.User.CreateUser)
		api.GET("/users/:username", s.handler.User.GetUser)
		api.GET("/users/:username/comments", s.handler.User.GetUserComments)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(apperr.ErrInvalidURL.Status, gin.H{"msg": apperr.ErrInvalidURL.Msg})
	})

	return r
}

func (s *Server) healthHandler(c *gin.Context) {
	stats := s.db.Health()
	if stats["status"] != "up" {
		c.JSON(http.StatusServiceUnavailable, stats)
		return
	}
	c.JSON(http.StatusOK, stats)
}
