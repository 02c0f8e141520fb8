package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"storefront/logger"
)

// ErrorHandler is the generic upstream error handler: handlers attach
// failures with c.Error and return, and this middleware logs them and
// renders the error page. Handlers that already wrote a response (the
// invoice 404 JSON body) are left alone.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		for _, e := range c.Errors {
			logger.Log.Error("request failed",
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.Error(e.Err),
			)
		}

		if c.Writer.Written() {
			return
		}
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{
			"PageTitle": "Something went wrong",
		})
	}
}
