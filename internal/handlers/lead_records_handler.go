package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/loydmilligan/leadoff/internal/models"
	"github.com/loydmilligan/leadoff/internal/services"
)

// LeadRecordsHandler serves the 1:1 side records of a lead: organization
// info, demo details, proposal and lost reason.
type LeadRecordsHandler struct {
	Organization *services.OrganizationService
	Demos        *services.DemoService
	Proposals    *services.ProposalService
	LostReasons  *services.LostReasonService
}

func NewLeadRecordsHandler(
	organization *services.OrganizationService,
	demos *services.DemoService,
	proposals *services.ProposalService,
	lostReasons *services.LostReasonService,
) *LeadRecordsHandler {
	return &LeadRecordsHandler{
		Organization: organization,
		Demos:        demos,
		Proposals:    proposals,
		LostReasons:  lostReasons,
	}
}

func (h *LeadRecordsHandler) UpsertOrganization(c *gin.Context) {
	leadID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var in services.OrganizationInfoInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	info, err := h.Organization.Upsert(c.Request.Context(), leadID, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

func (h *LeadRecordsHandler) GetOrganization(c *gin.Context) {
	leadID, ok := parseID(c, "id")
	if !ok {
		return
	}
	info, err := h.Organization.GetByLead(c.Request.Context(), leadID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

func (h *LeadRecordsHandler) UpsertDemo(c *gin.Context) {
	leadID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var in services.DemoDetailsInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	details, err := h.Demos.Upsert(c.Request.Context(), leadID, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

func (h *LeadRecordsHandler) GetDemo(c *gin.Context) {
	leadID, ok := parseID(c, "id")
	if !ok {
		return
	}
	details, err := h.Demos.GetByLead(c.Request.Context(), leadID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

// ListUpcomingDemos godoc
// @Summary List demos scheduled from now on
// @Tags demos
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/v1/demos/upcoming [get]
func (h *LeadRecordsHandler) ListUpcomingDemos(c *gin.Context) {
	demos, err := h.Demos.ListUpcoming(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if demos == nil {
		demos = []models.DemoDetails{}
	}
	c.JSON(http.StatusOK, gin.H{"demos": demos})
}

func (h *LeadRecordsHandler) UpsertProposal(c *gin.Context) {
	leadID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var in services.ProposalInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	proposal, err := h.Proposals.Upsert(c.Request.Context(), leadID, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, proposal)
}

func (h *LeadRecordsHandler) GetProposal(c *gin.Context) {
	leadID, ok := parseID(c, "id")
	if !ok {
		return
	}
	proposal, err := h.Proposals.GetByLead(c.Request.Context(), leadID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, proposal)
}

func (h *LeadRecordsHandler) UpsertLostReason(c *gin.Context) {
	leadID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var in services.LostReasonUpsertInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	lr, err := h.LostReasons.Upsert(c.Request.Context(), leadID, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lr)
}

func (h *LeadRecordsHandler) GetLostReason(c *gin.Context) {
	leadID, ok := parseID(c, "id")
	if !ok {
		return
	}
	lr, err := h.LostReasons.GetByLead(c.Request.Context(), leadID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lr)
}
