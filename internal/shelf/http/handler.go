package http

import (
	"net/http"
	"strconv"

	"github.com/facilitydesk/facility-booking-backend/internal/pkg/response"
	"github.com/facilitydesk/facility-booking-backend/internal/shelf"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	service shelf.Service
}

func NewHandler(service shelf.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	shelves, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, newShelfList(shelves))
}

func (h *Handler) ListByCupboard(c *gin.Context) {
	cupboardID, err := strconv.ParseInt(c.Param("cupboardId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cupboard id"})
		return
	}

	shelves, err := h.service.GetByCupboard(c.Request.Context(), cupboardID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, newShelfList(shelves))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateShelfBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	sh, err := h.service.Create(c.Request.Context(), shelf.CreateRequest{
		ShelfNumber: body.ShelfNumber,
		Capacity:    body.Capacity,
		Description: body.Description,
		CupboardID:  body.CupboardID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewShelfResponse(sh))
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shelf id"})
		return
	}

	var body UpdateShelfBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	sh, err := h.service.Update(c.Request.Context(), id, shelf.UpdateRequest{
		ShelfNumber: body.ShelfNumber,
		Capacity:    body.Capacity,
		Description: body.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewShelfResponse(sh))
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shelf id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func newShelfList(shelves []*shelf.Shelf) []ShelfResponse {
	items := make([]ShelfResponse, len(shelves))
	for i, sh := range shelves {
		items[i] = NewShelfResponse(sh)
	}
	return items
}
