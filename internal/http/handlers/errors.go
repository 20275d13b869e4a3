package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shipsched/internal/domain"
	"shipsched/internal/http/middleware"
)

const (
	codeValidation = "validation_error"
	codeUpstream   = "upstream_error"
	codeInternal   = "internal_error"
)

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	Details   any    `json:"details,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// codeFor picks the code for statuses raised outside the domain error path.
func codeFor(status int) string {
	switch {
	case status == http.StatusBadRequest:
		return codeValidation
	case status == http.StatusUnauthorized:
		return "unauthorized"
	case status == http.StatusBadGateway || status == http.StatusGatewayTimeout:
		return codeUpstream
	case status >= http.StatusInternalServerError:
		return codeInternal
	}
	return http.StatusText(status)
}

func respondError(c *gin.Context, status int, code, message string, details any) {
	if code == "" {
		code = codeFor(status)
	}
	c.JSON(status, ErrorResponse{
		Error:     message,
		Code:      code,
		Details:   details,
		RequestID: middleware.GetRequestID(c),
	})
}

// RespondDomainError maps domain errors to HTTP responses. Unknown errors are
// reported without their text.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, codeValidation, err.Error(), nil)
	case domain.IsDiscovery(err), domain.IsFetch(err):
		respondError(c, http.StatusBadGateway, codeUpstream, err.Error(), nil)
	case domain.IsInternal(err):
		respondError(c, http.StatusInternalServerError, codeInternal, err.Error(), nil)
	default:
		respondError(c, http.StatusInternalServerError, codeInternal, "internal error", nil)
	}
}
