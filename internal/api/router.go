package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shutterstudio/studio-api/internal/api/handler"
	"github.com/shutterstudio/studio-api/internal/api/middleware"
	"github.com/shutterstudio/studio-api/internal/core/domain"
	"github.com/shutterstudio/studio-api/internal/core/service"
	mongorepo "github.com/shutterstudio/studio-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/shutterstudio/studio-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// delivery may be nil, in which case notifications are persisted but not
// pushed to the async delivery workers.
func NewRouter(
	db *mongo.Database,
	rdb *redis.Client,
	delivery service.DeliveryQueue,
	jwtSecret string,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("studio"))

	// --- Repositories ---
	bookingRepo := mongorepo.NewBookingRepository(db)
	userRepo := mongorepo.NewUserRepository(db)
	notificationRepo := mongorepo.NewNotificationRepository(db)
	albumRepo := mongorepo.NewAlbumRepository(db)
	orderRepo := mongorepo.NewOrderRepository(db)
	reviewRepo := mongorepo.NewReviewRepository(db)
	activityRepo := mongorepo.NewActivityLogRepository(db)
	unreadCache := redisinfra.NewUnreadCache(rdb)

	// --- Services ---
	notifier := service.NewNotificationDispatcher(notificationRepo, userRepo, delivery, unreadCache, log)
	activity := service.NewActivityRecorder(activityRepo, log)
	bookingService := service.NewBookingService(bookingRepo, userRepo, notifier, activity, log)
	notificationService := service.NewNotificationService(notificationRepo, unreadCache, log)
	userService := service.NewUserService(userRepo, activity, log)
	albumService := service.NewAlbumService(albumRepo, bookingRepo, notifier, activity, log)
	orderService := service.NewOrderService(orderRepo, albumRepo, notifier, activity, log)
	reviewService := service.NewReviewService(reviewRepo, bookingRepo, notifier, activity, log)
	adminService := service.NewAdminService(bookingRepo, userRepo, orderRepo, albumRepo, reviewRepo, activityRepo, log)

	// --- Handlers ---
	bookingHandler := handler.NewBookingHandler(bookingService)
	userHandler := handler.NewUserHandler(userService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	albumHandler := handler.NewAlbumHandler(albumService)
	orderHandler := handler.NewOrderHandler(orderService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	adminHandler := handler.NewAdminHandler(adminService)

	auth := middleware.Auth(jwtSecret)
	clientOnly := middleware.RBAC(string(domain.RoleClient))
	clientOrAdmin := middleware.RBAC(string(domain.RoleClient), string(domain.RoleAdmin))
	photographerOrAdmin := middleware.RBAC(string(domain.RolePhotographer), string(domain.RoleAdmin))
	adminOnly := middleware.RBAC(string(domain.RoleAdmin))

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Public routes ---
	e.POST("/v1/auth/register", userHandler.Register)
	e.GET("/v1/photographers", userHandler.Photographers)
	e.GET("/v1/photographers/:id/reviews", reviewHandler.ListByPhotographer)

	// --- Authenticated routes ---
	v1 := e.Group("/v1", auth)

	v1.GET("/users/me", userHandler.Me)
	v1.PUT("/users/me", userHandler.UpdateProfile)

	v1.POST("/bookings", bookingHandler.Create, clientOnly)
	v1.GET("/bookings", bookingHandler.List)
	v1.GET("/bookings/:id", bookingHandler.Get)
	v1.PATCH("/bookings/:id/status", bookingHandler.UpdateStatus)

	v1.GET("/notifications", notificationHandler.List)
	v1.GET("/notifications/unread", notificationHandler.UnreadCount)
	v1.POST("/notifications/:id/read", notificationHandler.MarkRead)
	v1.DELETE("/notifications/:id", notificationHandler.Delete)

	v1.POST("/albums", albumHandler.Create, photographerOrAdmin)
	v1.GET("/albums", albumHandler.List)
	v1.GET("/albums/:id", albumHandler.Get)
	v1.POST("/albums/:id/submit", albumHandler.Submit, photographerOrAdmin)
	v1.POST("/albums/:id/approve", albumHandler.Approve, clientOrAdmin)
	v1.POST("/albums/:id/reject", albumHandler.Reject, clientOrAdmin)

	v1.POST("/orders", orderHandler.Place, clientOrAdmin)
	v1.GET("/orders", orderHandler.List)
	v1.GET("/orders/:id", orderHandler.Get)
	v1.PATCH("/orders/:id/status", orderHandler.UpdateStatus)

	v1.POST("/reviews", reviewHandler.Create, clientOnly)

	admin := v1.Group("/admin", adminOnly)
	admin.GET("/stats", adminHandler.Stats)
	admin.GET("/activity", adminHandler.Logs)

	return e
}
