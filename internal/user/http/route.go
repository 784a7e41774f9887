package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	auth := g.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}

	users := g.Group("/users")
	{
		users.GET("", h.List)
		users.GET("/:id", h.Get)
		users.POST("", h.Register)
		users.PUT("/:id", h.Update)
		users.PATCH("/:id/change-password", h.ChangePassword)
		users.DELETE("/:id", h.Delete)
	}
}
