package router

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"feedback-board-api/internal/event"
	"feedback-board-api/internal/handler"
	"feedback-board-api/internal/metrics"
	"feedback-board-api/internal/middleware"
	"feedback-board-api/internal/repository"
	"feedback-board-api/internal/service"
	"feedback-board-api/internal/validation"
)

// DefaultBasePath prefixes every API route
const DefaultBasePath = "/api"

// Config carries the shared application state injected into handlers
type Config struct {
	DB         *gorm.DB
	Logger     *zap.Logger
	Metrics    *metrics.Metrics
	AdminToken string
	BasePath   string

	// Gatherer backs /metrics; nil serves the default registry
	Gatherer prometheus.Gatherer

	// Hub serves /feedback/stream; nil disables the stream route
	Hub *event.Hub
	// Publisher receives mutation events; nil falls back to Hub, then to a no-op
	Publisher event.Publisher
	// Redis is only used for readiness checks
	Redis *redis.Client

	AllowedOrigins []string
}

// Setup builds the gin engine with middleware and all routes
func Setup(cfg Config) *gin.Engine {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.BasePath == "" {
		cfg.BasePath = DefaultBasePath
	}
	publisher := cfg.Publisher
	if publisher == nil {
		if cfg.Hub != nil {
			publisher = cfg.Hub
		} else {
			publisher = event.NoopPublisher{}
		}
	}

	if err := validation.RegisterWithGin(); err != nil {
		cfg.Logger.Error("Failed to register validators", zap.Error(err))
	}

	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.Metrics(cfg.Metrics))

	// Initialize repositories
	feedbackRepo := repository.NewFeedbackRepository(cfg.DB)
	upvoteRepo := repository.NewUpvoteRepository(cfg.DB)
	commentRepo := repository.NewCommentRepository(cfg.DB)

	// Initialize services
	feedbackService := service.NewFeedbackService(feedbackRepo, publisher, cfg.Metrics, cfg.Logger)
	upvoteService := service.NewUpvoteService(upvoteRepo, publisher, cfg.Metrics, cfg.Logger)
	commentService := service.NewCommentService(commentRepo, publisher, cfg.Metrics, cfg.Logger)

	// Initialize handlers
	feedbackHandler := handler.NewFeedbackHandler(feedbackService)
	upvoteHandler := handler.NewUpvoteHandler(upvoteService)
	commentHandler := handler.NewCommentHandler(commentService)
	adminHandler := handler.NewAdminHandler()
	healthHandler := handler.NewHealthHandler(cfg.DB, cfg.Redis)

	metricsHandler := gin.WrapH(promhttp.Handler())
	if cfg.Gatherer != nil {
		metricsHandler = gin.WrapH(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}

	// Operational endpoints (no auth)
	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)
	r.GET("/metrics", metricsHandler)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	adminOnly := middleware.AdminAuth(cfg.AdminToken)

	api := r.Group(cfg.BasePath)
	{
		api.GET("/health", healthHandler.Health)
		api.GET("/metrics", metricsHandler)

		feedback := api.Group("/feedback")
		{
			feedback.GET("", feedbackHandler.ListFeedback)
			feedback.POST("", feedbackHandler.CreateFeedback)
			if cfg.Hub != nil {
				streamHandler := handler.NewStreamHandler(cfg.Hub, cfg.Logger)
				feedback.GET("/stream", streamHandler.Stream)
			}
			feedback.PUT("/:id", adminOnly, feedbackHandler.UpdateFeedback)
			feedback.DELETE("/:id", adminOnly, feedbackHandler.DeleteFeedback)
			feedback.POST("/:id/upvote", upvoteHandler.Upvote)
			feedback.POST("/:id/comments", commentHandler.CreateComment)
			feedback.GET("/:id/comments", commentHandler.ListComments)
		}

		api.GET("/admin/verify", adminOnly, adminHandler.Verify)
	}

	return r
}
