package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shipsched/internal/domain/models"
)

func (h *Handlers) UpdateFeedback(c *gin.Context) {
	var req models.FeedbackRecord
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := h.Feedback.Record(c.Request.Context(), req); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "feedback recorded"})
}
