package writeup

import (
	"go-writeup/internal/middleware"
	"go-writeup/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	auth gin.HandlerFunc,
	rbacService rbac.Service,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	r.GET("/employees/:id/writeups",
		auth,
		middleware.ContextLogger(logger),
		middleware.RateLimitByUser(5, 20),
		middleware.RBACAuthorize(rbacService, rbac.ResourceWriteUp, rbac.ActionRead),
		handler.ListByEmployee,
	)

	writeups := r.Group("/writeups")
	writeups.Use(auth)
	writeups.Use(middleware.ContextLogger(logger))
	{
		// admin browser
		writeups.GET("",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, rbac.ResourceWriteUp, rbac.ActionBrowse),
			handler.Browse,
		)

		writeups.GET("/:id",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, rbac.ResourceWriteUp, rbac.ActionRead),
			handler.GetByID,
		)

		writeups.GET("/:id/packet",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, rbac.ResourceWriteUp, rbac.ActionRead),
			handler.Packet,
		)

		writeups.GET("/:id/pdf",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceWriteUp, rbac.ActionRead),
			handler.PacketPDF,
		)

		writeups.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceWriteUp, rbac.ActionCreate),
			middleware.Idempotency(rdb),
			handler.Create,
		)

		writeups.DELETE("/:id",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceWriteUp, rbac.ActionDelete),
			handler.Delete,
		)
	}
}
