package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/bookings")
	{
		group.GET("", h.List)
		group.GET("/pending", h.ListPending)
		group.GET("/user/:id", h.ListByUser)
		group.GET("/:id", h.Get)
		group.POST("", h.Create)
		group.PUT("/:id/status", h.UpdateStatus)
		group.DELETE("/:id", h.Delete)
	}
}
