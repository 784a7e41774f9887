package http

import (
	"net/http"
	"strconv"

	"github.com/facilitydesk/facility-booking-backend/internal/cupboard"
	"github.com/facilitydesk/facility-booking-backend/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	service cupboard.Service
}

func NewHandler(service cupboard.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	cupboards, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, newCupboardList(cupboards))
}

func (h *Handler) ListByResource(c *gin.Context) {
	resourceID, err := strconv.ParseInt(c.Param("resourceId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid resource id"})
		return
	}

	cupboards, err := h.service.GetByResource(c.Request.Context(), resourceID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, newCupboardList(cupboards))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateCupboardBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	cb, err := h.service.Create(c.Request.Context(), cupboard.CreateRequest{
		Name:         body.Name,
		TotalShelves: body.TotalShelves,
		ResourceID:   body.ResourceID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewCupboardResponse(cb))
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cupboard id"})
		return
	}

	var body UpdateCupboardBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	cb, err := h.service.Update(c.Request.Context(), id, cupboard.UpdateRequest{
		Name:         body.Name,
		TotalShelves: body.TotalShelves,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewCupboardResponse(cb))
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cupboard id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func newCupboardList(cupboards []*cupboard.Cupboard) []CupboardResponse {
	items := make([]CupboardResponse, len(cupboards))
	for i, cb := range cupboards {
		items[i] = NewCupboardResponse(cb)
	}
	return items
}
