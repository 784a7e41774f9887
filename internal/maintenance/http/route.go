package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/maintenance")
	{
		group.GET("", h.List)
		group.GET("/building/:buildingId", h.ListByBuilding)
		group.POST("", h.Create)
		group.PUT("/:id/status", h.UpdateStatus)
		group.DELETE("/:id", h.Delete)
	}
}
