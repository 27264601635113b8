package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devportfolio/portfolio-api/pkg/metrics"
)

// BodySizeLimitMiddleware refuses declared bodies over maxBodySize and caps
// the bytes a handler can read from undeclared (chunked) ones.
func BodySizeLimitMiddleware(maxBodySize int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		if c.Request.ContentLength > maxBodySize {
			metrics.RejectedRequests.WithLabelValues("body_too_large", routeLabel(c)).Inc()
			abortWithMessage(c, http.StatusRequestEntityTooLarge, "Request body too large")
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodySize)
		c.Next()
	}
}
