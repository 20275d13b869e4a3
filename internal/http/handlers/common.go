package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RespondError answers status with message; err, when set, goes to details.
func RespondError(c *gin.Context, status int, message string, err error) {
	var details any
	if err != nil {
		details = err.Error()
	}
	respondError(c, status, "", message, details)
}

// BindJSONOrError binds the request body into dst, answering 400 when the body
// is missing or does not decode.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		RespondError(c, http.StatusBadRequest, "empty body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return false
	}
	return true
}
