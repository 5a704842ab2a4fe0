package app

import (
	"context"

	"go-writeup/internal/auth"
	"go-writeup/internal/category"
	"go-writeup/internal/employee"
	"go-writeup/internal/messaging/kafka"
	"go-writeup/internal/middleware"
	"go-writeup/internal/notify"
	"go-writeup/internal/rbac"
	"go-writeup/internal/rbac/rbac_http"
	"go-writeup/internal/standingreport"
	"go-writeup/internal/user"
	"go-writeup/internal/writeup"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// newPublisher picks the notification path: the outbox when a broker is
// configured on postgres, direct webhooks when Slack URLs are set, else noop.
func newPublisher(in *Infra, logger *zap.Logger) (notify.Publisher, func()) {
	cfg := in.Config

	if cfg.KafkaBroker != "" && cfg.Database.Driver != "sqlite" {
		logger.Info("notifications via outbox", zap.String("broker", cfg.KafkaBroker))
		return notify.NewOutboxPublisher(kafka.NewOutboxRepository(in.SQLDB)), func() {}
	}

	if cfg.SlackAlertWebhookURL != "" || cfg.SlackWriteUpWebhookURL != "" {
		logger.Info("notifications via direct webhook")
		p := notify.NewWebhookPublisher(notify.NewSlackSender(), cfg.SlackWriteUpWebhookURL, cfg.SlackAlertWebhookURL, logger)
		return p, p.Close
	}

	logger.Info("notifications disabled")
	return notify.NewNoopPublisher(), func() {}
}

func registerModules(router *gin.Engine, in *Infra) (func(), error) {
	logger := zap.L()
	cfg := in.Config

	// --- Repositories ---
	employeeRepo := employee.NewRepository(in.GormDB)
	categoryRepo := category.NewRepository(in.GormDB)
	writeUpRepo := writeup.NewRepository(in.GormDB)
	userRepo := user.NewRepository(in.GormDB)

	// --- RBAC Core ---
	rbacService, err := rbac.NewService(nil, logger)
	if err != nil {
		return nil, err
	}

	publisher, closePublisher := newPublisher(in, logger)

	// --- Services ---
	authService := auth.NewService(userRepo, cfg.JWTSecret, logger)
	userService := user.NewService(userRepo, logger)
	employeeService := employee.NewService(in.SQLDB, employeeRepo, in.Redis, logger)
	categoryService := category.NewService(categoryRepo, logger)
	writeUpService := writeup.NewService(in.SQLDB, writeUpRepo, employeeRepo, categoryRepo, publisher, logger)
	standingService := standingreport.NewService(employeeRepo, writeUpRepo, logger)

	if created, err := userService.EnsureDefaultAdmin(context.Background(), cfg.DefaultAdminUsername, cfg.DefaultAdminPassword); err != nil {
		logger.Warn("default admin seed failed", zap.Error(err))
	} else if !created && cfg.DefaultAdminPassword == "" {
		logger.Debug("default admin seed skipped, DEFAULT_ADMIN_PASSWORD is empty")
	}

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, cfg.IsProduction(), logger)
	userHandler := user.NewHandler(userService, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	categoryHandler := category.NewHandler(categoryService, logger)
	writeUpHandler := writeup.NewHandler(writeUpService, logger)
	standingHandler := standingreport.NewHandler(standingService, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)

	authenticate := middleware.AuthMiddleware(cfg.JWTSecret)

	router.Use(middleware.RequestID())

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, authenticate)
		user.RegisterRoutes(api, userHandler, authenticate, rbacService, logger)
		employee.RegisterRoutes(api, employeeHandler, authenticate, rbacService, logger)
		category.RegisterRoutes(api, categoryHandler, authenticate, rbacService, logger)
		writeup.RegisterRoutes(api, writeUpHandler, authenticate, rbacService, in.Redis, logger)
		standingreport.RegisterRoutes(api, standingHandler, authenticate, rbacService, logger)
		rbac_http.RegisterRoutes(api, rbacHandler, authenticate)
	}

	return closePublisher, nil
}
