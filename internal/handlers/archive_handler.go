package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/loydmilligan/leadoff/internal/models"
	"github.com/loydmilligan/leadoff/internal/services"
)

type ArchiveHandler struct {
	Service *services.ArchiveService
}

func NewArchiveHandler(service *services.ArchiveService) *ArchiveHandler {
	return &ArchiveHandler{Service: service}
}

type archiveRequest struct {
	Reason string `json:"reason" binding:"required"`
}

func (h *ArchiveHandler) Archive(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req archiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	lead, err := h.Service.Archive(c.Request.Context(), id, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lead)
}

func (h *ArchiveHandler) Restore(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	lead, err := h.Service.Restore(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lead)
}

func (h *ArchiveHandler) List(c *gin.Context) {
	leads, err := h.Service.ListArchived(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if leads == nil {
		leads = []*models.Lead{}
	}
	c.JSON(http.StatusOK, gin.H{"leads": leads})
}

func (h *ArchiveHandler) Purge(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.Service.Purge(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
