package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bufferCloser struct {
	bytes.Buffer
}

func (b *bufferCloser) Close() error { return nil }

func TestLogsHandler_WritesJSONLines(t *testing.T) {
	out := &bufferCloser{}
	h := NewLogsHandlerWithWriter(out)
	router := gin.New()
	router.POST("/logs", h.ReceiveFrontendLogs)

	w := doJSON(router, http.MethodPost, "/logs", gin.H{"logs": []gin.H{
		{"level": "error", "message": "chunk failed", "context": gin.H{"page": "/projects", "msg": "ignored"}},
		{"message": "hello"},
	}})
	require.Equal(t, http.StatusOK, w.Code)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "chunk failed", first["msg"])
	assert.Equal(t, "error", first["level"])
	assert.Equal(t, "/projects", first["page"])
	assert.Equal(t, "portfolio-web", first["service"])

	var second map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, "info", second["level"])
	assert.NotEmpty(t, second["ts"])
}

func TestLogsHandler_RejectsEmptyBatch(t *testing.T) {
	out := &bufferCloser{}
	router := gin.New()
	router.POST("/logs", NewLogsHandlerWithWriter(out).ReceiveFrontendLogs)

	w := doJSON(router, http.MethodPost, "/logs", gin.H{"logs": []gin.H{}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodPost, "/logs", gin.H{"logs": []gin.H{{"level": "loud", "message": "x"}}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, out.Len())
}
