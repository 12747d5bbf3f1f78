package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/emperorhan/auto-data-switch-controller/internal/metrics"
	"github.com/emperorhan/auto-data-switch-controller/internal/ratelimit"
)

// WebhookChannel posts the notification payload to a generic HTTP
// webhook — e.g. a settings-app push-notification gateway. Outbound
// posts are rate limited so a flapping radio can't hammer the
// gateway.
type WebhookChannel struct {
	url     string
	client  *http.Client
	limiter *ratelimit.Limiter
}

// NewWebhookChannel creates a webhook notification channel.
func NewWebhookChannel(url string) *WebhookChannel {
	return &WebhookChannel{
		url:     url,
		client:  &http.Client{Timeout: 10 * time.Second},
		limiter: ratelimit.NewLimiter(1, 3, "notify-webhook"),
	}
}

func (w *WebhookChannel) Post(ctx context.Context, n Notification) error {
	if err := w.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit notification webhook: %w", err)
	}

	payload := map[string]any{
		"target_slot":   n.Target.String(),
		"settings_link": n.SettingsLink,
		"time":          time.Now().UTC().Format(time.RFC3339),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal notification payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("post notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("notification webhook returned status %d", resp.StatusCode)
	}
	metrics.NotificationsSentTotal.WithLabelValues("webhook").Inc()
	return nil
}
