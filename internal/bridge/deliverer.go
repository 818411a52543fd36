package bridge

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/artledger/content-registry/internal/adapter"
	"github.com/artledger/content-registry/internal/logger"
	"github.com/artledger/content-registry/internal/store"
	"github.com/artledger/content-registry/internal/store/schema"
	"github.com/artledger/content-registry/internal/webhook"
)

const userAgent = "Content-Registry-Webhook/1.0"

// maxResponseBodySize caps how much of a client's response is stored
const maxResponseBodySize = 4 * 1024

// DelivererConfig holds the retry policy for webhook deliveries
type DelivererConfig struct {
	RetryInitialInterval time.Duration
	RetryMaxInterval     time.Duration
}

// Deliverer performs signed webhook deliveries with per-client retry and
// an audit row per (client, event) pair
//
//go:generate mockgen -source=deliverer.go -destination=../mocks/deliverer.go -package=mocks -mock_names=Deliverer=MockDeliverer
type Deliverer interface {
	// Deliver posts the event to the client endpoint, retrying per the
	// client's retry budget. The returned result reflects the final attempt.
	Deliver(ctx context.Context, client *schema.WebhookClient, event webhook.WebhookEvent) webhook.DeliveryResult
}

type deliverer struct {
	store      store.Store
	httpClient adapter.HTTPClient
	io         adapter.IO
	json       adapter.JSON
	clock      adapter.Clock
	config     DelivererConfig
}

// NewDeliverer creates a webhook deliverer
func NewDeliverer(
	st store.Store,
	httpClient adapter.HTTPClient,
	ioAdapter adapter.IO,
	jsonAdapter adapter.JSON,
	clock adapter.Clock,
	cfg DelivererConfig,
) Deliverer {
	return &deliverer{
		store:      st,
		httpClient: httpClient,
		io:         ioAdapter,
		json:       jsonAdapter,
		clock:      clock,
		config:     cfg,
	}
}

func (d *deliverer) Deliver(ctx context.Context, client *schema.WebhookClient, event webhook.WebhookEvent) webhook.DeliveryResult {
	payload, err := d.json.Marshal(event)
	if err != nil {
		return webhook.DeliveryResult{Success: false, Error: err.Error()}
	}

	delivery := &schema.WebhookDelivery{
		ClientID:       client.ClientID,
		EventID:        event.EventID,
		EventType:      event.EventType,
		Payload:        payload,
		DeliveryStatus: schema.WebhookDeliveryStatusPending,
	}
	if err := d.store.CreateWebhookDelivery(ctx, delivery); err != nil {
		// The unique (client_id, event_id) pair dedupes redelivered
		// broker messages
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			logger.DebugCtx(ctx, "Webhook delivery already recorded, skipping",
				zap.String("clientID", client.ClientID),
				zap.String("eventID", event.EventID))
			return webhook.DeliveryResult{Success: true}
		}
		logger.ErrorCtx(ctx, err,
			zap.String("clientID", client.ClientID),
			zap.String("eventID", event.EventID))
		return webhook.DeliveryResult{Success: false, Error: err.Error()}
	}

	maxAttempts := client.RetryMaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var result webhook.DeliveryResult
	operation := func() error {
		result = d.attempt(ctx, client, event)

		delivery.Attempts++
		now := d.clock.Now()
		delivery.LastAttemptAt = &now
		delivery.ResponseBody = result.Body
		delivery.ErrorMessage = result.Error
		if result.StatusCode != 0 {
			statusCode := result.StatusCode
			delivery.ResponseStatus = &statusCode
		}
		if result.Success {
			delivery.DeliveryStatus = schema.WebhookDeliveryStatusSuccess
		} else {
			delivery.DeliveryStatus = schema.WebhookDeliveryStatusFailed
		}

		if err := d.store.SaveWebhookDelivery(ctx, delivery); err != nil {
			logger.ErrorCtx(ctx, err,
				zap.String("clientID", client.ClientID),
				zap.String("eventID", event.EventID))
		}

		if !result.Success {
			return errors.New(result.Error)
		}
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = d.config.RetryInitialInterval
	b.MaxInterval = d.config.RetryMaxInterval
	b.MaxElapsedTime = 0 // bounded by attempt count, not wall time

	//nolint:errcheck // the audit row records the failure
	_ = backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(b, uint64(maxAttempts-1)), ctx))

	return result
}

// attempt performs one signed HTTP delivery
func (d *deliverer) attempt(ctx context.Context, client *schema.WebhookClient, event webhook.WebhookEvent) webhook.DeliveryResult {
	payload, signature, timestamp, err := webhook.GenerateSignedPayload(client.WebhookSecret, event)
	if err != nil {
		return webhook.DeliveryResult{Success: false, Error: err.Error()}
	}

	headers := map[string]string{
		"Content-Type":         "application/json",
		"X-Webhook-Signature":  signature,
		"X-Webhook-Event-ID":   event.EventID,
		"X-Webhook-Event-Type": event.EventType,
		"X-Webhook-Timestamp":  fmt.Sprintf("%d", timestamp),
		"User-Agent":           userAgent,
	}

	resp, err := d.httpClient.PostWithHeadersNoRetry(ctx, client.WebhookURL, headers, bytes.NewReader(payload))
	if err != nil {
		return webhook.DeliveryResult{Success: false, Error: err.Error()}
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.WarnCtx(ctx, "failed to close response body", zap.Error(err), zap.String("url", client.WebhookURL))
		}
	}()

	respBody, err := d.io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		logger.WarnCtx(ctx, "failed to read webhook response body",
			zap.Error(err), zap.String("clientID", client.ClientID))
		respBody = []byte{}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return webhook.DeliveryResult{
			Success:    false,
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
			Error:      fmt.Sprintf("HTTP %d", resp.StatusCode),
		}
	}

	return webhook.DeliveryResult{
		Success:    true,
		StatusCode: resp.StatusCode,
		Body:       string(respBody),
	}
}
