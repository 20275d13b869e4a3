package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"shipsched/internal/domain"
	"shipsched/internal/domain/models"
	"shipsched/internal/utils"
)

type recommendRequest struct {
	DeparturePort   string `json:"departure_port"`
	DestinationPort string `json:"destination_port"`
	ETDDate         string `json:"etd_date"`
	ETADate         string `json:"eta_date"`
}

func (r recommendRequest) toQuery() (models.ScheduleQuery, error) {
	etd, err := utils.ParseOptionalDate(r.ETDDate)
	if err != nil {
		return models.ScheduleQuery{}, domain.ValidationError{Field: "etd_date", Msg: "etd_date must be YYYY-MM-DD", Err: err}
	}
	eta, err := utils.ParseOptionalDate(r.ETADate)
	if err != nil {
		return models.ScheduleQuery{}, domain.ValidationError{Field: "eta_date", Msg: "eta_date must be YYYY-MM-DD", Err: err}
	}
	return models.ScheduleQuery{
		DeparturePort:   strings.TrimSpace(r.DeparturePort),
		DestinationPort: strings.TrimSpace(r.DestinationPort),
		ETD:             etd,
		ETA:             eta,
	}, nil
}

// RecommendShipping returns one sailing per carrier, in carrier order. With
// ?diagnostics=true the per-carrier outcomes are included.
func (h *Handlers) RecommendShipping(c *gin.Context) {
	var req recommendRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	q, err := req.toQuery()
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	rec, err := h.Schedules.Recommend(c.Request.Context(), q)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	results := rec.Results
	if results == nil {
		results = []models.ScheduleResult{}
	}
	if c.Query("diagnostics") == "true" {
		c.JSON(http.StatusOK, gin.H{"results": results, "carriers": rec.Carriers})
		return
	}
	c.JSON(http.StatusOK, results)
}
