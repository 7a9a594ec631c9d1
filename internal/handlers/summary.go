package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vitalsync/backend/internal/service"
)

type SummaryHandler struct {
	summaryService service.SummaryService
}

// NewSummaryHandler creates a new summary handler
func NewSummaryHandler(summaryService service.SummaryService) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

// GetHealthSummary handles GET /api/v1/health-summary/:user_id.
// The summary pipeline is total: even internal failures produce a
// well-formed summary body, so this always responds 200.
func (h *SummaryHandler) GetHealthSummary(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	summary := h.summaryService.GenerateSummary(c.Request.Context(), userID)
	c.JSON(http.StatusOK, summary)
}
