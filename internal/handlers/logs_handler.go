package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"sync"
	"time"

	"github.com/devportfolio/portfolio-api/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gopkg.in/natefinch/lumberjack.v2"
)

const frontendLogFile = "frontend.log"

// LogsHandler appends log batches shipped by the portfolio site to frontend.log
type LogsHandler struct {
	mu  sync.Mutex
	out io.WriteCloser
}

type LogEntry struct {
	Timestamp string         `json:"timestamp"`
	Level     string         `json:"level" binding:"omitempty,oneof=debug info warn error"`
	Message   string         `json:"message" binding:"required,max=2000"`
	Context   map[string]any `json:"context,omitempty"`
}

type LogBatchRequest struct {
	Logs []LogEntry `json:"logs" binding:"required,min=1,max=100,dive"`
}

// NewLogsHandler writes to logDir/frontend.log with size based rotation
func NewLogsHandler(logDir string) *LogsHandler {
	return NewLogsHandlerWithWriter(&lumberjack.Logger{
		Filename:   filepath.Join(logDir, frontendLogFile),
		MaxSize:    20, // megabytes
		MaxBackups: 3,
		MaxAge:     14, // days
		Compress:   true,
	})
}

func NewLogsHandlerWithWriter(out io.WriteCloser) *LogsHandler {
	return &LogsHandler{out: out}
}

func (h *LogsHandler) ReceiveFrontendLogs(c *gin.Context) {
	var req LogBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.write(req.Logs); err != nil {
		logger.Error("Failed to write frontend logs", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to write logs", err)
		return
	}

	logger.Debug("Received frontend logs", zap.Int("count", len(req.Logs)))
	respondOK(c, http.StatusOK, "Logs received", gin.H{"received": len(req.Logs)})
}

// Close flushes and closes the underlying log file
func (h *LogsHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.out.Close()
}

func (h *LogsHandler) write(entries []LogEntry) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	encoder := json.NewEncoder(h.out)
	for _, entry := range entries {
		ts := entry.Timestamp
		if ts == "" {
			ts = time.Now().UTC().Format(time.RFC3339)
		}
		level := entry.Level
		if level == "" {
			level = "info"
		}

		// Same keys as the backend JSON encoder
		line := make(map[string]any, len(entry.Context)+4)
		for k, v := range entry.Context {
			line[k] = v
		}
		line["ts"] = ts
		line["level"] = level
		line["msg"] = entry.Message
		line["service"] = "portfolio-web"

		if err := encoder.Encode(line); err != nil {
			return fmt.Errorf("failed to encode log entry: %w", err)
		}
	}

	return nil
}
