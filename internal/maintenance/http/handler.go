package http

import (
	"net/http"
	"strconv"

	"github.com/facilitydesk/facility-booking-backend/internal/maintenance"
	"github.com/facilitydesk/facility-booking-backend/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	service maintenance.Service
}

func NewHandler(service maintenance.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	records, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, newMaintenanceList(records))
}

func (h *Handler) ListByBuilding(c *gin.Context) {
	buildingID, err := strconv.ParseInt(c.Param("buildingId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid building id"})
		return
	}

	records, err := h.service.GetByBuilding(c.Request.Context(), buildingID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, newMaintenanceList(records))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateMaintenanceBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	scheduled, err := parseDate(body.ScheduledDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid scheduled_date, use YYYY-MM-DD"})
		return
	}

	m, err := h.service.Create(c.Request.Context(), maintenance.CreateRequest{
		MaintenanceType: body.MaintenanceType,
		ScheduledDate:   scheduled,
		Status:          body.Status,
		Notes:           body.Notes,
		ResourceID:      body.ResourceID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewMaintenanceResponse(m))
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid maintenance id"})
		return
	}

	var body UpdateMaintenanceStatusBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	m, err := h.service.UpdateStatus(c.Request.Context(), id, body.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewMaintenanceResponse(m))
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid maintenance id"})
		return
	}

	deleted, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "maintenance record not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func newMaintenanceList(records []*maintenance.Maintenance) []MaintenanceResponse {
	items := make([]MaintenanceResponse, len(records))
	for i, m := range records {
		items[i] = NewMaintenanceResponse(m)
	}
	return items
}
