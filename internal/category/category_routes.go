package category

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
	categories := r.Group("/categories")
	categories.Use(auth)
	categories.Use(middleware.ContextLogger(logger))
	{
		read := middleware.RBACAuthorize(rbacService, rbac.ResourceCategory, rbac.ActionRead)

		categories.GET("", middleware.RateLimitByUser(5, 20), read, handler.ListCategories)
		categories.GET("/:id", middleware.RateLimitByUser(5, 20), read, handler.GetCategory)
		categories.GET("/:id/rules", middleware.RateLimitByUser(5, 20), read, handler.ListRules)
		categories.GET("/:id/rules/:rule_id", middleware.RateLimitByUser(5, 20), read, handler.GetRule)

		categories.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceCategory, rbac.ActionCreate),
			handler.CreateCategory,
		)
		categories.PATCH("/:id/active",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceCategory, rbac.ActionUpdate),
			handler.SetCategoryActive,
		)
		categories.DELETE("/:id",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceCategory, rbac.ActionDelete),
			handler.DeleteCategory,
		)
		categories.POST("/:id/rules",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceCategory, rbac.ActionCreate),
			handler.CreateRule,
		)
		categories.DELETE("/:id/rules/:rule_id",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceCategory, rbac.ActionDelete),
			handler.DeleteRule,
		)
	}
}
