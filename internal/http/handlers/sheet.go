package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shipsched/internal/http/middleware"
	"shipsched/internal/services"
)

// ScheduleSheetPDF renders the posted recommendations as a printable PDF.
func (h *Handlers) ScheduleSheetPDF(c *gin.Context) {
	var req services.SheetRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	pdfBytes, filename, err := h.Docs.GenerateScheduleSheet(middleware.GetRequestID(c), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
