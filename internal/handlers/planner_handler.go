package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/loydmilligan/leadoff/internal/services"
)

type PlannerHandler struct {
	Service *services.PlannerService
}

func NewPlannerHandler(service *services.PlannerService) *PlannerHandler {
	return &PlannerHandler{Service: service}
}

// Get godoc
// @Summary Daily planner view over next-action due dates
// @Tags planner
// @Produce json
// @Success 200 {object} services.PlannerView
// @Router /api/v1/planner [get]
func (h *PlannerHandler) Get(c *gin.Context) {
	view, err := h.Service.GetPlannerView(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
