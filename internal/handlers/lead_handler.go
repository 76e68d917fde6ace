package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/loydmilligan/leadoff/internal/models"
	"github.com/loydmilligan/leadoff/internal/services"
)

type LeadHandler struct {
	Service *services.LeadService
}

func NewLeadHandler(service *services.LeadService) *LeadHandler {
	return &LeadHandler{Service: service}
}

// Create godoc
// @Summary Create a lead
// @Tags leads
// @Accept json
// @Produce json
// @Param lead body services.CreateLeadInput true "Lead fields"
// @Success 201 {object} models.Lead
// @Router /api/v1/leads [post]
func (h *LeadHandler) Create(c *gin.Context) {
	var in services.CreateLeadInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	lead, err := h.Service.CreateLead(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, lead)
}

// List godoc
// @Summary List leads with optional search and stage filter
// @Tags leads
// @Produce json
// @Param search query string false "Search in company, contact or email"
// @Param stage query string false "Filter by pipeline stage"
// @Param page query int false "Page (1-based)"
// @Param limit query int false "Page size"
// @Success 200 {object} map[string]any
// @Router /api/v1/leads [get]
func (h *LeadHandler) List(c *gin.Context) {
	filter := models.LeadFilter{Search: c.Query("search")}
	if stage := c.Query("stage"); stage != "" {
		st := models.Stage(stage)
		if !st.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown stage"})
			return
		}
		filter.Stage = &st
	}
	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))

	leads, total, err := h.Service.ListLeads(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	if leads == nil {
		leads = []*models.Lead{}
	}
	c.JSON(http.StatusOK, gin.H{
		"leads": leads,
		"total": total,
		"page":  filter.Page,
		"limit": filter.Limit,
	})
}

// Get godoc
// @Summary Get a lead with all related records
// @Tags leads
// @Produce json
// @Param id path int true "Lead ID"
// @Success 200 {object} services.LeadDetail
// @Router /api/v1/leads/{id} [get]
func (h *LeadHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	detail, err := h.Service.GetLeadDetail(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *LeadHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var in services.UpdateLeadInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	lead, err := h.Service.UpdateLead(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lead)
}

func (h *LeadHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.Service.DeleteLead(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SearchSimilar godoc
// @Summary Find potential duplicate leads before creating a new one
// @Tags leads
// @Produce json
// @Param companyName query string false "Company name fragment"
// @Param contactName query string false "Contact name fragment"
// @Param email query string false "Exact email"
// @Success 200 {object} map[string]any
// @Router /api/v1/leads/similar [get]
func (h *LeadHandler) SearchSimilar(c *gin.Context) {
	leads, err := h.Service.SearchSimilarLeads(c.Request.Context(),
		c.Query("companyName"), c.Query("contactName"), c.Query("email"))
	if err != nil {
		respondError(c, err)
		return
	}
	if leads == nil {
		leads = []*models.Lead{}
	}
	c.JSON(http.StatusOK, gin.H{"matches": leads})
}

// UpdateStage godoc
// @Summary Move a lead to another pipeline stage
// @Tags leads
// @Accept json
// @Produce json
// @Param id path int true "Lead ID"
// @Param body body services.UpdateStageInput true "Target stage"
// @Success 200 {object} models.Lead
// @Router /api/v1/leads/{id}/stage [put]
func (h *LeadHandler) UpdateStage(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var in services.UpdateStageInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	lead, err := h.Service.UpdateStage(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lead)
}

// ValidateTransition godoc
// @Summary Preview whether a stage move would be admissible
// @Tags leads
// @Produce json
// @Param id path int true "Lead ID"
// @Param stage query string true "Target stage"
// @Param force query bool false "Suppress warnings"
// @Success 200 {object} services.StageValidationResult
// @Router /api/v1/leads/{id}/stage/validate [get]
func (h *LeadHandler) ValidateTransition(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	target := models.Stage(c.Query("stage"))
	force := c.Query("force") == "true"

	result, err := h.Service.ValidateTransitionByID(c.Request.Context(), id, target, force)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// FollowUps godoc
// @Summary Follow-up work view: overdue, today and upcoming leads
// @Tags follow-ups
// @Produce json
// @Success 200 {object} services.FollowUpBuckets
// @Router /api/v1/leads/follow-ups [get]
func (h *LeadHandler) FollowUps(c *gin.Context) {
	buckets, err := h.Service.GetFollowUpLeads(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, buckets)
}
