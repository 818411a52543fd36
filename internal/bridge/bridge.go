package bridge

import (
	"context"
	"fmt"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/artledger/content-registry/internal/adapter"
	"github.com/artledger/content-registry/internal/domain"
	"github.com/artledger/content-registry/internal/logger"
	"github.com/artledger/content-registry/internal/store"
	"github.com/artledger/content-registry/internal/store/schema"
	"github.com/artledger/content-registry/internal/webhook"
)

// Config holds the configuration for the event bridge
type Config struct {
	URL             string
	StreamName      string
	ConsumerName    string
	MaxReconnects   int
	ReconnectWait   time.Duration
	ConnectionName  string
	AckWaitTimeout  time.Duration
	MaxDeliver      int
	WorkerPoolSize  int
	WorkerQueueSize int
}

// Bridge consumes registry events from JetStream and fans them out to
// registered webhook clients
type Bridge interface {
	// Run starts the event bridge
	Run(ctx context.Context) error
	// Close closes the bridge and cleans up resources
	Close()
}

type bridge struct {
	nc        adapter.NatsConn
	js        adapter.JetStream
	store     store.Store
	deliverer Deliverer
	json      adapter.JSON
	pool      pond.Pool
	config    Config
}

// NewBridge creates a new event bridge
func NewBridge(
	cfg Config,
	natsJS adapter.NatsJetStream,
	st store.Store,
	deliverer Deliverer,
	jsonAdapter adapter.JSON,
) (Bridge, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	b := &bridge{
		nc:        nc,
		js:        js,
		store:     st,
		deliverer: deliverer,
		json:      jsonAdapter,
		config:    cfg,
	}

	return b, nil
}

// Run starts the event bridge
func (b *bridge) Run(ctx context.Context) error {
	logger.Info("Starting event bridge",
		zap.String("stream", b.config.StreamName),
		zap.String("consumer", b.config.ConsumerName))

	// All registry event subjects
	subject := "registry.events.>"

	consumerConfig := jetstream.ConsumerConfig{
		Durable:       b.config.ConsumerName,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       b.config.AckWaitTimeout,
		MaxDeliver:    b.config.MaxDeliver,
		FilterSubject: subject,
	}

	consumer, err := b.js.CreateOrUpdateConsumer(ctx, b.config.StreamName, consumerConfig)
	if err != nil {
		return fmt.Errorf("failed to create/update consumer: %w", err)
	}

	consumerInfo, err := consumer.Info(ctx)
	if err != nil {
		return fmt.Errorf("failed to get consumer info: %w", err)
	}
	logger.Info("Consumer created/retrieved", zap.String("consumer", consumerInfo.Name))

	b.pool = pond.NewPool(
		b.config.WorkerPoolSize,
		pond.WithQueueSize(b.config.WorkerQueueSize),
		pond.WithContext(ctx),
	)
	defer func() {
		logger.Info("Shutting down delivery worker pool",
			zap.Uint64("submitted", b.pool.SubmittedTasks()),
			zap.Uint64("waiting", b.pool.WaitingTasks()),
			zap.Uint64("failed", b.pool.FailedTasks()))
		b.pool.StopAndWait()
	}()

	msgChan := make(chan adapter.Message, 100)
	sub, err := consumer.Consume(func(msg adapter.Message) {
		msgChan <- msg
	})
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	defer sub.Stop()

	logger.Info("Started consuming messages")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Shutting down event bridge")
			return ctx.Err()
		case msg := <-msgChan:
			b.handleMessage(ctx, msg)
		}
	}
}

// handleMessage fans one registry event out to every matching client
func (b *bridge) handleMessage(ctx context.Context, msg adapter.Message) {
	metadata, _ := msg.Metadata()

	var event domain.RegistryEvent
	if err := b.json.Unmarshal(msg.Data(), &event); err != nil {
		logger.Error(err, zap.String("message", "Failed to unmarshal event"))
		// Terminate message for unparseable data
		if err := msg.Term(); err != nil {
			logger.Error(err, zap.String("message", "Failed to terminate message"))
		}
		return
	}

	if metadata != nil {
		logger.Info("Received event",
			zap.String("eventType", string(event.EventType)),
			zap.String("eventID", event.EventID),
			zap.Uint64("deliveryCount", metadata.NumDelivered),
		)
	}

	clients, err := b.store.ListActiveWebhookClients(ctx)
	if err != nil {
		logger.Error(err, zap.String("message", "Failed to list webhook clients"))
		// NAK to retry
		if err := msg.Nak(); err != nil {
			logger.Error(err, zap.String("message", "Failed to NAK message"))
		}
		return
	}

	webhookEvent := webhook.NewWebhookEvent(&event)
	for i := range clients {
		client := clients[i]
		if !b.matchesFilters(&client, string(event.EventType)) {
			continue
		}

		b.pool.Submit(func() {
			result := b.deliverer.Deliver(ctx, &client, webhookEvent)
			if !result.Success {
				logger.Warn("Webhook delivery failed",
					zap.String("clientID", client.ClientID),
					zap.String("eventID", webhookEvent.EventID),
					zap.Int("statusCode", result.StatusCode),
					zap.String("error", result.Error))
			}
		})
	}

	// ACK once deliveries are queued; per-delivery outcomes live in the
	// audit rows, not in broker redeliveries
	if err := msg.Ack(); err != nil {
		logger.Error(err, zap.String("message", "Failed to ACK message"))
	}
}

// matchesFilters checks a client's event filters against an event type.
// An empty filter list or a "*" entry matches everything.
func (b *bridge) matchesFilters(client *schema.WebhookClient, eventType string) bool {
	var filters []string
	if len(client.EventFilters) > 0 {
		if err := b.json.Unmarshal(client.EventFilters, &filters); err != nil {
			logger.Warn("Failed to parse event filters, skipping client",
				zap.String("clientID", client.ClientID), zap.Error(err))
			return false
		}
	}

	if len(filters) == 0 {
		return true
	}
	for _, filter := range filters {
		if filter == webhook.EventTypeWildcard || filter == eventType {
			return true
		}
	}
	return false
}

// Close closes the bridge and cleans up resources
func (b *bridge) Close() {
	if b.nc == nil {
		return
	}

	b.nc.Close()
}
