package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery turns a panic into a 500. With exposeTraces the stack trace is
// returned as "detail" so it shows up in API tooling.
func Recovery(log *zap.Logger, exposeTraces bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			trace := fmt.Sprintf("%v\n%s", rec, debug.Stack())
			log.Error("unhandled panic",
				zap.String("request_id", GetRequestID(c)),
				zap.String("path", c.Request.URL.Path),
				zap.Any("panic", rec),
				zap.String("stack", string(debug.Stack())),
			)

			detail := "internal server error"
			if exposeTraces {
				detail = trace
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"detail":     detail,
				"request_id": GetRequestID(c),
			})
		}()
		c.Next()
	}
}
