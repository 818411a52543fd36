package bridge_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"

	"github.com/artledger/content-registry/internal/adapter"
	"github.com/artledger/content-registry/internal/bridge"
	"github.com/artledger/content-registry/internal/domain"
	"github.com/artledger/content-registry/internal/logger"
	mockspkg "github.com/artledger/content-registry/internal/mocks"
	"github.com/artledger/content-registry/internal/store/schema"
	"github.com/artledger/content-registry/internal/webhook"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

// testBridgeMocks contains all the mocks needed for testing the bridge
type testBridgeMocks struct {
	ctrl      *gomock.Controller
	natsJS    *mockspkg.MockNatsJetStream
	natsConn  *mockspkg.MockNatsConn
	jetStream *mockspkg.MockJetStream
	store     *mockspkg.MockStore
	deliverer *mockspkg.MockDeliverer
	json      *mockspkg.MockJSON
}

// setupTestBridge creates all the mocks and bridge for testing
func setupTestBridge(t *testing.T) *testBridgeMocks {
	ctrl := gomock.NewController(t)

	tm := &testBridgeMocks{
		ctrl:      ctrl,
		natsJS:    mockspkg.NewMockNatsJetStream(ctrl),
		natsConn:  mockspkg.NewMockNatsConn(ctrl),
		jetStream: mockspkg.NewMockJetStream(ctrl),
		store:     mockspkg.NewMockStore(ctrl),
		deliverer: mockspkg.NewMockDeliverer(ctrl),
		json:      mockspkg.NewMockJSON(ctrl),
	}

	return tm
}

// tearDownTestBridge cleans up the test mocks
func tearDownTestBridge(mocks *testBridgeMocks) {
	mocks.ctrl.Finish()
}

func testBridgeConfig() bridge.Config {
	return bridge.Config{
		URL:             "nats://localhost:4222",
		StreamName:      "REGISTRY_EVENTS",
		ConsumerName:    "event-bridge",
		MaxReconnects:   10,
		ReconnectWait:   1 * time.Second,
		ConnectionName:  "test-bridge",
		AckWaitTimeout:  30 * time.Second,
		MaxDeliver:      5,
		WorkerPoolSize:  2,
		WorkerQueueSize: 10,
	}
}

func TestBridge_NewBridge_Success(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	config := testBridgeConfig()

	// Mock NATS connection
	mocks.natsJS.
		EXPECT().
		Connect(config.URL, gomock.Any()).
		Return(mocks.natsConn, mocks.jetStream, nil)

	b, err := bridge.NewBridge(config, mocks.natsJS, mocks.store, mocks.deliverer, mocks.json)

	assert.NoError(t, err)
	assert.NotNil(t, b)
}

func TestBridge_NewBridge_ConnectError(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	config := testBridgeConfig()

	// Mock NATS connection to return error
	mocks.natsJS.
		EXPECT().
		Connect(gomock.Any(), gomock.Any()).
		Return(nil, nil, assert.AnError)

	b, err := bridge.NewBridge(config, mocks.natsJS, mocks.store, mocks.deliverer, mocks.json)

	assert.Error(t, err)
	assert.Nil(t, b)
	assert.Contains(t, err.Error(), "failed to connect to NATS")
}

func TestBridge_Run_CreateConsumerError(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	ctx := context.Background()
	config := testBridgeConfig()

	mocks.natsJS.
		EXPECT().
		Connect(gomock.Any(), gomock.Any()).
		Return(mocks.natsConn, mocks.jetStream, nil)

	b, err := bridge.NewBridge(config, mocks.natsJS, mocks.store, mocks.deliverer, mocks.json)
	assert.NoError(t, err)
	assert.NotNil(t, b)

	// Mock CreateOrUpdateConsumer to return error
	mocks.jetStream.
		EXPECT().
		CreateOrUpdateConsumer(gomock.Any(),
			"REGISTRY_EVENTS",
			jetstream.ConsumerConfig{
				Durable:       config.ConsumerName,
				AckPolicy:     jetstream.AckExplicitPolicy,
				AckWait:       config.AckWaitTimeout,
				MaxDeliver:    config.MaxDeliver,
				FilterSubject: "registry.events.>",
			}).
		Return(nil, assert.AnError)

	err = b.Run(ctx)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create/update consumer")
}

func TestBridge_Run_ConsumerInfoError(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	ctx := context.Background()
	config := testBridgeConfig()

	mocks.natsJS.
		EXPECT().
		Connect(gomock.Any(), gomock.Any()).
		Return(mocks.natsConn, mocks.jetStream, nil)

	b, err := bridge.NewBridge(config, mocks.natsJS, mocks.store, mocks.deliverer, mocks.json)
	assert.NoError(t, err)
	assert.NotNil(t, b)

	// Mock CreateOrUpdateConsumer to return a consumer with Info error
	consumer := mockspkg.NewMockNatsConsumer(mocks.ctrl)
	consumer.EXPECT().
		Info(gomock.Any()).
		Return(nil, assert.AnError)

	mocks.jetStream.
		EXPECT().
		CreateOrUpdateConsumer(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(consumer, nil)

	err = b.Run(ctx)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get consumer info")
}

func TestBridge_Run_ConsumeError(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	ctx := context.Background()
	config := testBridgeConfig()

	mocks.natsJS.
		EXPECT().
		Connect(gomock.Any(), gomock.Any()).
		Return(mocks.natsConn, mocks.jetStream, nil)

	b, err := bridge.NewBridge(config, mocks.natsJS, mocks.store, mocks.deliverer, mocks.json)
	assert.NoError(t, err)
	assert.NotNil(t, b)

	// Mock CreateOrUpdateConsumer to return a consumer with Consume error
	consumer := mockspkg.NewMockNatsConsumer(mocks.ctrl)
	consumer.EXPECT().
		Info(gomock.Any()).
		Return(&jetstream.ConsumerInfo{Name: "event-bridge"}, nil)
	consumer.EXPECT().
		Consume(gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)

	mocks.jetStream.
		EXPECT().
		CreateOrUpdateConsumer(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(consumer, nil)

	err = b.Run(ctx)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create subscription")
}

func TestBridge_Run_ContextCancellation(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	ctx, cancel := context.WithCancel(context.Background())
	config := testBridgeConfig()

	mocks.natsJS.
		EXPECT().
		Connect(gomock.Any(), gomock.Any()).
		Return(mocks.natsConn, mocks.jetStream, nil)

	b, err := bridge.NewBridge(config, mocks.natsJS, mocks.store, mocks.deliverer, mocks.json)
	assert.NoError(t, err)
	assert.NotNil(t, b)

	consumer := mockspkg.NewMockNatsConsumer(mocks.ctrl)
	consumeContext := mockspkg.NewMockConsumeContext(mocks.ctrl)
	consumeContext.EXPECT().
		Stop().
		AnyTimes()

	consumer.EXPECT().
		Info(gomock.Any()).
		Return(&jetstream.ConsumerInfo{Name: "event-bridge"}, nil)
	consumer.EXPECT().
		Consume(gomock.Any(), gomock.Any()).
		DoAndReturn(func(handler adapter.MessageHandler, opts ...jetstream.PullConsumeOpt) (adapter.ConsumeContext, error) {
			go func() {
				// Cancel context to stop the bridge
				cancel()
			}()
			return consumeContext, nil
		})

	mocks.jetStream.
		EXPECT().
		CreateOrUpdateConsumer(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(consumer, nil)

	errChan := make(chan error, 1)
	go func() {
		errChan <- b.Run(ctx)
	}()

	select {
	case err := <-errChan:
		assert.Error(t, err)
		assert.Equal(t, context.Canceled, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Test timed out")
	}
}

func TestBridge_Close(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	config := testBridgeConfig()

	mocks.natsJS.
		EXPECT().
		Connect(gomock.Any(), gomock.Any()).
		Return(mocks.natsConn, mocks.jetStream, nil)

	// Mock Close
	mocks.natsConn.
		EXPECT().
		Close()

	b, err := bridge.NewBridge(config, mocks.natsJS, mocks.store, mocks.deliverer, mocks.json)
	assert.NoError(t, err)
	assert.NotNil(t, b)

	b.Close()
}

// runBridgeWithHandler starts the bridge and returns the captured message
// handler once the subscription is in place
func runBridgeWithHandler(
	t *testing.T,
	mocks *testBridgeMocks,
	ctx context.Context,
	b bridge.Bridge,
) adapter.MessageHandler {
	handlerChan := make(chan adapter.MessageHandler, 1)

	consumer := mockspkg.NewMockNatsConsumer(mocks.ctrl)
	consumeContext := mockspkg.NewMockConsumeContext(mocks.ctrl)
	consumeContext.EXPECT().
		Stop().
		AnyTimes()

	consumer.EXPECT().
		Info(gomock.Any()).
		Return(&jetstream.ConsumerInfo{Name: "event-bridge"}, nil)
	consumer.EXPECT().
		Consume(gomock.Any(), gomock.Any()).
		DoAndReturn(func(handler adapter.MessageHandler, opts ...jetstream.PullConsumeOpt) (adapter.ConsumeContext, error) {
			handlerChan <- handler
			return consumeContext, nil
		})

	mocks.jetStream.
		EXPECT().
		CreateOrUpdateConsumer(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(consumer, nil)

	go func() { _ = b.Run(ctx) }()

	select {
	case handler := <-handlerChan:
		return handler
	case <-time.After(5 * time.Second):
		t.Fatal("Test timed out waiting for subscription")
		return nil
	}
}

func TestBridge_HandleMessage_FanOut(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	config := testBridgeConfig()

	mocks.natsJS.
		EXPECT().
		Connect(config.URL, gomock.Any()).
		Return(mocks.natsConn, mocks.jetStream, nil)

	b, err := bridge.NewBridge(config, mocks.natsJS, mocks.store, mocks.deliverer, mocks.json)
	assert.NoError(t, err)

	event := domain.RegistryEvent{
		EventID:   "01J8ZC3JM0000000000000000A",
		EventType: domain.EventTypeContentRegistered,
		Timestamp: time.Unix(1700000000, 0).UTC(),
		ContentID: 7,
	}
	eventJSON := []byte(`{"event_id":"01J8ZC3JM0000000000000000A","event_type":"content.registered","content_id":7}`)

	msg := mockspkg.NewMockJetStreamMessage(mocks.ctrl)
	msg.EXPECT().
		Data().
		Return(eventJSON).
		MinTimes(1)
	msg.EXPECT().
		Metadata().
		Return(&jetstream.MsgMetadata{NumDelivered: 1}, nil).
		MinTimes(1)

	mocks.json.
		EXPECT().
		Unmarshal(eventJSON, gomock.Any()).
		DoAndReturn(func(data []byte, v interface{}) error {
			*v.(*domain.RegistryEvent) = event
			return nil
		})

	// Two clients: one subscribed to everything, one filtered to payment
	// events only
	matching := schema.WebhookClient{
		ClientID:         "client-all",
		WebhookURL:       "https://example.com/hooks",
		RetryMaxAttempts: 3,
	}
	filtered := schema.WebhookClient{
		ClientID:         "client-payments",
		WebhookURL:       "https://example.com/payments",
		EventFilters:     datatypes.JSON(`["payment.processed"]`),
		RetryMaxAttempts: 3,
	}
	mocks.store.EXPECT().
		ListActiveWebhookClients(gomock.Any()).
		Return([]schema.WebhookClient{matching, filtered}, nil)

	// Filter parsing for the payments-only client
	mocks.json.
		EXPECT().
		Unmarshal([]byte(filtered.EventFilters), gomock.Any()).
		DoAndReturn(func(data []byte, v interface{}) error {
			*v.(*[]string) = []string{"payment.processed"}
			return nil
		})

	// Only the wildcard client receives the event
	mocks.deliverer.EXPECT().
		Deliver(gomock.Any(), gomock.Any(), webhook.NewWebhookEvent(&event)).
		Return(webhook.DeliveryResult{Success: true, StatusCode: 200})

	msg.EXPECT().Ack().Return(nil)

	handler := runBridgeWithHandler(t, mocks, ctx, b)
	handler(msg)

	// Give the worker pool time to drain
	time.Sleep(200 * time.Millisecond)
	cancel()
}

func TestBridge_HandleMessage_InvalidJSON(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	config := testBridgeConfig()

	mocks.natsJS.
		EXPECT().
		Connect(config.URL, gomock.Any()).
		Return(mocks.natsConn, mocks.jetStream, nil)

	b, err := bridge.NewBridge(config, mocks.natsJS, mocks.store, mocks.deliverer, mocks.json)
	assert.NoError(t, err)

	invalidJSON := []byte(`{invalid json}`)

	msg := mockspkg.NewMockJetStreamMessage(mocks.ctrl)
	msg.EXPECT().
		Data().
		Return(invalidJSON).
		MinTimes(1)
	msg.EXPECT().
		Metadata().
		Return(&jetstream.MsgMetadata{NumDelivered: 1}, nil).
		MinTimes(1)

	mocks.json.
		EXPECT().
		Unmarshal(invalidJSON, gomock.Any()).
		Return(assert.AnError)

	// Unparseable messages are terminated, not retried
	msg.EXPECT().Term().Return(nil)

	handler := runBridgeWithHandler(t, mocks, ctx, b)
	handler(msg)

	time.Sleep(200 * time.Millisecond)
	cancel()
}

func TestBridge_HandleMessage_ListClientsError(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	config := testBridgeConfig()

	mocks.natsJS.
		EXPECT().
		Connect(config.URL, gomock.Any()).
		Return(mocks.natsConn, mocks.jetStream, nil)

	b, err := bridge.NewBridge(config, mocks.natsJS, mocks.store, mocks.deliverer, mocks.json)
	assert.NoError(t, err)

	event := domain.RegistryEvent{
		EventID:   "01J8ZC3JM0000000000000000B",
		EventType: domain.EventTypeAccessGranted,
		Timestamp: time.Unix(1700000000, 0).UTC(),
	}
	eventJSON := []byte(`{"event_id":"01J8ZC3JM0000000000000000B","event_type":"access.granted"}`)

	msg := mockspkg.NewMockJetStreamMessage(mocks.ctrl)
	msg.EXPECT().
		Data().
		Return(eventJSON).
		MinTimes(1)
	msg.EXPECT().
		Metadata().
		Return(&jetstream.MsgMetadata{NumDelivered: 1}, nil).
		MinTimes(1)

	mocks.json.
		EXPECT().
		Unmarshal(eventJSON, gomock.Any()).
		DoAndReturn(func(data []byte, v interface{}) error {
			*v.(*domain.RegistryEvent) = event
			return nil
		})

	mocks.store.EXPECT().
		ListActiveWebhookClients(gomock.Any()).
		Return(nil, assert.AnError)

	// NAK so the broker redelivers once the store recovers
	msg.EXPECT().Nak().Return(nil)

	handler := runBridgeWithHandler(t, mocks, ctx, b)
	handler(msg)

	time.Sleep(200 * time.Millisecond)
	cancel()
}
