package standingreport

import (
	"go-writeup/internal/middleware"
	"go-writeup/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	auth gin.HandlerFunc,
	rbacService rbac.Service,
	logger *zap.Logger,
) {
	read := []gin.HandlerFunc{
		auth,
		middleware.ContextLogger(logger),
		middleware.RateLimitByUser(5, 20),
		middleware.RBACAuthorize(rbacService, rbac.ResourceStanding, rbac.ActionRead),
	}

	r.GET("/employees/:id/standing", append(read, handler.EmployeeReport)...)

	standing := r.Group("/standing")
	standing.Use(read...)
	{
		standing.GET("", handler.ListByStanding)
		standing.GET("/quarters", handler.ListQuarters)
		standing.GET("/tiers", handler.Tiers)
	}
}
