package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/loydmilligan/leadoff/internal/domain"
)

func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// respondError translates a domain error into an HTTP response. Unknown
// errors become opaque 500s so internals never leak to clients.
func respondError(c *gin.Context, err error) {
	var status int
	switch domain.GetErrorCode(err) {
	case domain.ErrCodeNotFound:
		status = http.StatusNotFound
	case domain.ErrCodeValidation, domain.ErrCodeLostReasonRequired:
		status = http.StatusBadRequest
	case domain.ErrCodeAdmissibility:
		status = http.StatusUnprocessableEntity
	case domain.ErrCodeClosedDealImmutable, domain.ErrCodeConflict:
		status = http.StatusConflict
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "internal error",
			"code":  domain.ErrCodeInternal,
		})
		return
	}

	msg := err.Error()
	var de *domain.DomainError
	if errors.As(err, &de) {
		msg = de.Message
	}
	c.JSON(status, gin.H{"error": msg, "code": domain.GetErrorCode(err)})
}
