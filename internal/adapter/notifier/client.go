package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/domain/model"
)

// Sender delivers a single event to the notification subsystem.
type Sender interface {
	Send(ctx context.Context, event model.Event) error
}

// HTTPSender posts events as JSON to an external notification service.
type HTTPSender struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPSender creates an HTTP sender with a default timeout.
func NewHTTPSender(baseURL string, logger *slog.Logger) (*HTTPSender, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse notifier url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("notifier url must be absolute")
	}
	return &HTTPSender{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Send posts the event. A non-2xx response is an error; the caller decides
// whether to log or retry.
func (c *HTTPSender) Send(ctx context.Context, event model.Event) error {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/api/notifications")

	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		payload, _ := io.ReadAll(resp.Body)
		c.logger.Error("notification request failed",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(payload)),
		)
		return fmt.Errorf("notifier error: %s", resp.Status)
	}
	return nil
}

// LogSender writes events to the log. It backs deployments that have no
// external notification service configured.
type LogSender struct {
	logger *slog.Logger
}

// NewLogSender creates a log-only sender.
func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

// Send logs the event.
func (c *LogSender) Send(_ context.Context, event model.Event) error {
	c.logger.Info("notification",
		slog.String("kind", string(event.Kind)),
		slog.String("entity_type", event.EntityType),
		slog.Int64("entity_id", event.EntityID),
		slog.String("message", event.Message),
	)
	return nil
}
