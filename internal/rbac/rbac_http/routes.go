package rbac_http

import (
	"go-writeup/internal/middleware"
	"go-writeup/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *rbac.Handler, auth gin.HandlerFunc) {
	group := r.Group("/rbac")
	group.Use(auth)
	{
		group.POST("/enforce", middleware.RateLimitByUser(5, 20), handler.Enforce)
		group.GET("/permissions", middleware.RateLimitByUser(5, 20), handler.Permissions)
	}
}
