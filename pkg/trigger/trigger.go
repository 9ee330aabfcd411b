package trigger

import (
	"fmt"

	"github.com/estateline/estateline-api/pkg/circuitbreaker"
	"github.com/estateline/estateline-api/pkg/httpclient"
	"github.com/estateline/estateline-api/pkg/logger"
	"github.com/estateline/estateline-api/pkg/metrics"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// CallAsync calls a webhook trigger URL asynchronously with a record_id
// query parameter. Used to notify downstream automations after an inquiry
// is created. Failures are logged and counted but never block the request
// that triggered them; the circuit breaker stops hammering a broken
// endpoint.
func CallAsync(triggerURL, recordID string, httpClient httpclient.Client, breaker *gobreaker.CircuitBreaker) {
	if triggerURL == "" {
		// No trigger URL configured, skip silently
		return
	}

	go func() {
		targetURL := fmt.Sprintf("%s%s", triggerURL, recordID)

		statusCode, err := circuitbreaker.Execute(breaker, func() (int, error) {
			resp, reqErr := httpClient.Get(targetURL)
			if reqErr != nil {
				return 0, reqErr
			}
			defer resp.Body.Close()

			if resp.StatusCode < 200 || resp.StatusCode >= 300 {
				return resp.StatusCode, fmt.Errorf("trigger returned status %d", resp.StatusCode)
			}
			return resp.StatusCode, nil
		})

		if err != nil {
			metrics.WebhookTriggers.WithLabelValues("error").Inc()
			logger.Error("Failed to call trigger URL",
				zap.Error(circuitbreaker.FormatError(breaker.Name(), err)),
				zap.String("url", targetURL),
				zap.String("record_id", recordID))
			return
		}

		metrics.WebhookTriggers.WithLabelValues("success").Inc()
		logger.Info("Trigger URL called successfully",
			zap.String("url", targetURL),
			zap.String("record_id", recordID),
			zap.Int("status_code", statusCode))
	}()
}
