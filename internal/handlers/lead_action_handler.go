package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/loydmilligan/leadoff/internal/models"
	"github.com/loydmilligan/leadoff/internal/services"
)

type LeadActionHandler struct {
	Service *services.LeadActionService
}

func NewLeadActionHandler(service *services.LeadActionService) *LeadActionHandler {
	return &LeadActionHandler{Service: service}
}

type closeWonRequest struct {
	Notes string `json:"notes" binding:"required"`
}

// CloseWon godoc
// @Summary Close a lead as won
// @Tags lead-actions
// @Accept json
// @Produce json
// @Param id path int true "Lead ID"
// @Param body body closeWonRequest true "Closing notes"
// @Success 200 {object} models.Lead
// @Router /api/v1/leads/{id}/close-won [post]
func (h *LeadActionHandler) CloseWon(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req closeWonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	lead, err := h.Service.CloseAsWon(c.Request.Context(), id, req.Notes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lead)
}

type closeLostRequest struct {
	CompetitorName string                    `json:"competitorName" binding:"required"`
	Reason         models.LostReasonCategory `json:"reason" binding:"required"`
	Notes          string                    `json:"notes" binding:"required"`
}

// CloseLost godoc
// @Summary Close a lead as lost
// @Tags lead-actions
// @Accept json
// @Produce json
// @Param id path int true "Lead ID"
// @Param body body closeLostRequest true "Loss details"
// @Success 200 {object} models.Lead
// @Router /api/v1/leads/{id}/close-lost [post]
func (h *LeadActionHandler) CloseLost(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req closeLostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	lead, err := h.Service.CloseAsLost(c.Request.Context(), id, req.CompetitorName, req.Reason, req.Notes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lead)
}

type nurtureRequest struct {
	NurturePeriod int    `json:"nurturePeriod" binding:"required"`
	Notes         string `json:"notes" binding:"required"`
}

// Nurture godoc
// @Summary Park a lead in a 30 or 90 day nurture cycle
// @Tags lead-actions
// @Accept json
// @Produce json
// @Param id path int true "Lead ID"
// @Param body body nurtureRequest true "Nurture period and notes"
// @Success 200 {object} models.Lead
// @Router /api/v1/leads/{id}/nurture [post]
func (h *LeadActionHandler) Nurture(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req nurtureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	lead, err := h.Service.MoveToNurture(c.Request.Context(), id, req.NurturePeriod, req.Notes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lead)
}
