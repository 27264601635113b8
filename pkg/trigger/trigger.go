package trigger

import (
	"bytes"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/devportfolio/portfolio-api/pkg/httpclient"
	"github.com/devportfolio/portfolio-api/pkg/logger"
	"github.com/devportfolio/portfolio-api/pkg/metrics"
)

// Event is the JSON body posted to a notification URL
type Event struct {
	Type     string    `json:"type"`
	RecordID string    `json:"recordId"`
	SentAt   time.Time `json:"sentAt"`
	Payload  any       `json:"payload,omitempty"`
}

// PostAsync posts event to targetURL in the background.
// Failures are logged and never reach the caller. The returned channel is
// closed once the attempt has finished.
func PostAsync(targetURL string, event Event, httpClient httpclient.Client) <-chan struct{} {
	done := make(chan struct{})
	if targetURL == "" {
		close(done)
		return done
	}

	if event.SentAt.IsZero() {
		event.SentAt = time.Now().UTC()
	}

	go func() {
		defer close(done)
		start := time.Now()

		body, err := json.Marshal(event)
		if err != nil {
			logger.Error("Failed to encode trigger event", zap.Error(err), zap.String("type", event.Type))
			return
		}

		resp, err := httpClient.Post(targetURL, "application/json", bytes.NewReader(body))
		if err != nil {
			logger.LogAPICall("trigger", event.Type, "error", metrics.MeasureDuration(start),
				zap.Error(err),
				zap.String("record_id", event.RecordID))
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			logger.LogAPICall("trigger", event.Type, "success", metrics.MeasureDuration(start),
				zap.String("record_id", event.RecordID),
				zap.Int("status_code", resp.StatusCode))
		} else {
			logger.Warn("Trigger URL returned non-success status",
				zap.String("type", event.Type),
				zap.String("record_id", event.RecordID),
				zap.Int("status_code", resp.StatusCode))
		}
	}()

	return done
}
