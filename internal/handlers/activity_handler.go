package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/loydmilligan/leadoff/internal/models"
	"github.com/loydmilligan/leadoff/internal/services"
)

type ActivityHandler struct {
	Service *services.ActivityService
}

func NewActivityHandler(service *services.ActivityService) *ActivityHandler {
	return &ActivityHandler{Service: service}
}

func (h *ActivityHandler) Create(c *gin.Context) {
	leadID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var in services.LogActivityInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	activity, err := h.Service.LogActivity(c.Request.Context(), leadID, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, activity)
}

func (h *ActivityHandler) ListByLead(c *gin.Context) {
	leadID, ok := parseID(c, "id")
	if !ok {
		return
	}
	activities, err := h.Service.ListByLead(c.Request.Context(), leadID)
	if err != nil {
		respondError(c, err)
		return
	}
	if activities == nil {
		activities = []models.Activity{}
	}
	c.JSON(http.StatusOK, gin.H{"activities": activities})
}

func (h *ActivityHandler) Complete(c *gin.Context) {
	id, ok := parseID(c, "activityId")
	if !ok {
		return
	}
	activity, err := h.Service.Complete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, activity)
}

func (h *ActivityHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "activityId")
	if !ok {
		return
	}
	if err := h.Service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
