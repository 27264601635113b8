package middleware

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/devportfolio/portfolio-api/pkg/logger"
	"github.com/devportfolio/portfolio-api/pkg/metrics"
)

const (
	// RequestIDHeader carries the per-request correlation id in both directions
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
	maxRequestIDLen = 128
)

// redactedQueryParams never reach the log
var redactedQueryParams = map[string]bool{
	"token": true, "password": true, "secret": true, "key": true,
	"auth": true, "api_key": true, "apikey": true,
}

// ObservabilityMiddleware records request metrics and writes one access log line
// per request. It also assigns the request id echoed in X-Request-ID.
func ObservabilityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method

		requestID := incomingRequestID(c.GetHeader(RequestIDHeader))
		c.Set(requestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		metrics.ActiveRequests.WithLabelValues(method).Inc()
		defer metrics.ActiveRequests.WithLabelValues(method).Dec()

		c.Next()

		route := routeLabel(c)
		duration := metrics.MeasureDuration(start)
		status := c.Writer.Status()
		statusStr := strconv.Itoa(status)

		metrics.HTTPRequestDuration.WithLabelValues(method, route, statusStr).Observe(duration)
		metrics.HTTPRequestTotal.WithLabelValues(method, route, statusStr).Inc()

		fields := []zap.Field{
			zap.String(requestIDKey, requestID),
			zap.String("route", route),
			zap.String("client_ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
			zap.Int("response_size", c.Writer.Size()),
		}
		if claims, err := GetAdminClaims(c); err == nil {
			fields = append(fields, zap.String("admin_id", claims.AdminID))
		}
		if status >= 400 {
			fields = append(fields, failureFields(c)...)
		}

		logger.LogHTTPRequest(c.Request.Context(), method, c.Request.URL.Path, status, duration, fields...)
	}
}

// GetRequestID returns the id assigned by ObservabilityMiddleware, or ""
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// incomingRequestID keeps a caller supplied id when it is printable and short
func incomingRequestID(header string) string {
	header = strings.TrimSpace(header)
	if header == "" || len(header) > maxRequestIDLen {
		return uuid.NewString()
	}
	for _, r := range header {
		if r < 0x21 || r > 0x7e {
			return uuid.NewString()
		}
	}
	return header
}

// routeLabel is the matched route template so metric labels stay bounded
func routeLabel(c *gin.Context) string {
	if route := c.FullPath(); route != "" {
		return route
	}
	return "unmatched"
}

// failureFields adds the route params, filtered query and gin errors of a failed request
func failureFields(c *gin.Context) []zap.Field {
	var fields []zap.Field

	if len(c.Params) > 0 {
		params := make(map[string]string, len(c.Params))
		for _, p := range c.Params {
			params[p.Key] = p.Value
		}
		fields = append(fields, zap.Any("route_params", params))
	}

	query := make(map[string]string)
	for k, v := range c.Request.URL.Query() {
		if !redactedQueryParams[strings.ToLower(k)] && len(v) > 0 {
			query[k] = v[0]
		}
	}
	if len(query) > 0 {
		fields = append(fields, zap.Any("query_params", query))
	}

	if len(c.Errors) > 0 {
		fields = append(fields, zap.String("error", c.Errors.String()))
	}
	return fields
}
