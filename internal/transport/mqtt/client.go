package mqtt

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	pmqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
	"go.uber.org/zap/zapcore"

	domain "github.com/oshokin/alarm-led/internal/domain/alarm"
	"github.com/oshokin/alarm-led/internal/logger"
	"github.com/oshokin/alarm-led/internal/payload"
)

// Options holds broker connection and topic settings.
type Options struct {
	// Broker is the broker URL, e.g. tcp://localhost:1883.
	Broker string
	// ClientID is the client identifier prefix; a random suffix keeps it unique.
	ClientID string
	// Username is an optional broker user.
	Username string
	// Password is an optional broker password.
	Password string
	// DataTopic is the topic readings are received from.
	DataTopic string
	// StatusTopic is the topic status reports are published to.
	StatusTopic string
	// QoS is used for both the subscription and publishing.
	QoS byte
	// Retained marks published reports as retained.
	Retained bool
	// Timeout bounds connect and publish acknowledgements.
	Timeout time.Duration
}

const (
	// disconnectQuiesce is how long Disconnect lets in-flight work complete, in milliseconds.
	disconnectQuiesce = 250
	// defaultTimeout applies when Options.Timeout is not set.
	defaultTimeout = 5 * time.Second
)

var (
	// ErrNotConnected is returned by Publish while the broker connection is down.
	ErrNotConnected = errors.New("mqtt connection is not open")
	// ErrTimeout is returned when the broker does not acknowledge in time.
	ErrTimeout = errors.New("mqtt acknowledgement timed out")
)

// Client is an MQTT-backed subscriber and publisher.
type Client struct {
	// ctx carries the logger handed to listeners.
	ctx context.Context //nolint:containedctx // Callbacks from paho have no context of their own.
	// opts are the connection and topic settings.
	opts *Options
	// client is the underlying paho client.
	client pmqtt.Client

	// mu protects the listener lists.
	mu sync.RWMutex
	// subscriberListeners receive decoded readings.
	subscriberListeners []domain.SubscriberListener
	// connectionListeners receive connectivity events.
	connectionListeners []domain.ConnectionListener
	// deliveryListeners receive publish confirmations.
	deliveryListeners []domain.DeliveryListener
}

// New creates a client for the provided options. It does not connect.
func New(ctx context.Context, opts *Options) *Client {
	return newClient(ctx, opts, pmqtt.NewClient)
}

// newClient builds a Client on top of the paho client returned by factory.
func newClient(ctx context.Context, opts *Options, factory func(*pmqtt.ClientOptions) pmqtt.Client) *Client {
	settings := *opts
	if settings.Timeout <= 0 {
		settings.Timeout = defaultTimeout
	}

	c := &Client{
		ctx:  logger.WithName(ctx, "mqtt"),
		opts: &settings,
	}

	clientOptions := pmqtt.NewClientOptions().
		AddBroker(settings.Broker).
		SetClientID(settings.ClientID + "-" + uuid.NewString()).
		SetUsername(settings.Username).
		SetPassword(settings.Password).
		SetCleanSession(true).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectTimeout(settings.Timeout).
		SetOnConnectHandler(c.onConnect).
		SetConnectionLostHandler(c.onConnectionLost).
		SetReconnectingHandler(c.onReconnecting)

	c.client = factory(clientOptions)

	return c
}

// SetLibraryLogger routes paho diagnostics into the context logger at the given level.
func SetLibraryLogger(ctx context.Context, level zapcore.Level) {
	l := logger.FromContext(ctx).Named("paho").Desugar().WithOptions(logger.WithLevel(level)).Sugar()

	pmqtt.CRITICAL = logger.NewPrinter(l, zapcore.ErrorLevel)
	pmqtt.ERROR = logger.NewPrinter(l, zapcore.ErrorLevel)
	pmqtt.WARN = logger.NewPrinter(l, zapcore.WarnLevel)
	pmqtt.DEBUG = logger.NewPrinter(l, zapcore.DebugLevel)
}

// Connect starts connecting to the broker. If the broker does not answer
// within the timeout, the client keeps retrying in the background.
func (c *Client) Connect(ctx context.Context) error {
	err := c.wait(ctx, c.client.Connect())

	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrTimeout):
		logger.WarnKV(ctx, "Broker is not reachable yet, retrying in background", "broker", c.opts.Broker)

		return nil
	default:
		return fmt.Errorf("connect to %s: %w", c.opts.Broker, err)
	}
}

// Disconnect closes the broker connection and notifies connection listeners.
func (c *Client) Disconnect(ctx context.Context) {
	c.client.Disconnect(disconnectQuiesce)
	logger.Info(ctx, "Disconnected from mqtt broker")

	for _, l := range c.connections() {
		l.OnDisconnected(c.ctx)
	}
}

// Publish encodes msg and publishes it to the status topic once.
//
// The returned id is a uuid generated here for log correlation only; it is
// not the MQTT packet id and the broker never sees it. For QoS 1 and 2,
// delivery listeners are called with that id on the calling goroutine once
// paho reports the publish token complete.
func (c *Client) Publish(ctx context.Context, msg *domain.OutboundMessage) (string, error) {
	if !c.client.IsConnectionOpen() {
		return "", ErrNotConnected
	}

	data, err := payload.Encode(msg)
	if err != nil {
		return "", fmt.Errorf("encode message: %w", err)
	}

	messageID := uuid.NewString()

	token := c.client.Publish(c.opts.StatusTopic, c.opts.QoS, c.opts.Retained, data)
	if err = c.wait(ctx, token); err != nil {
		return "", fmt.Errorf("publish to %s: %w", c.opts.StatusTopic, err)
	}

	// Only QoS 1 and 2 are acknowledged by the broker.
	if c.opts.QoS > 0 {
		c.mu.RLock()
		listeners := slices.Clone(c.deliveryListeners)
		c.mu.RUnlock()

		for _, l := range listeners {
			l.OnMessageConfirmed(c.ctx, messageID)
		}
	}

	return messageID, nil
}

// RegisterSubscriberListener adds a reading listener.
func (c *Client) RegisterSubscriberListener(l domain.SubscriberListener) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.subscriberListeners = append(c.subscriberListeners, l)
}

// UnregisterSubscriberListener removes a reading listener.
func (c *Client) UnregisterSubscriberListener(l domain.SubscriberListener) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.subscriberListeners = slices.DeleteFunc(c.subscriberListeners, func(x domain.SubscriberListener) bool {
		return x == l
	})
}

// RegisterConnectionListener adds a connectivity listener.
// A listener registered both as subscriber and publisher side is notified once.
func (c *Client) RegisterConnectionListener(l domain.ConnectionListener) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if slices.Contains(c.connectionListeners, l) {
		return
	}

	c.connectionListeners = append(c.connectionListeners, l)
}

// UnregisterConnectionListener removes a connectivity listener.
func (c *Client) UnregisterConnectionListener(l domain.ConnectionListener) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.connectionListeners = slices.DeleteFunc(c.connectionListeners, func(x domain.ConnectionListener) bool {
		return x == l
	})
}

// RegisterDeliveryListener adds a delivery confirmation listener.
func (c *Client) RegisterDeliveryListener(l domain.DeliveryListener) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.deliveryListeners = append(c.deliveryListeners, l)
}

// UnregisterDeliveryListener removes a delivery confirmation listener.
func (c *Client) UnregisterDeliveryListener(l domain.DeliveryListener) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.deliveryListeners = slices.DeleteFunc(c.deliveryListeners, func(x domain.DeliveryListener) bool {
		return x == l
	})
}

// onConnect subscribes to the data topic on every (re)connection.
// paho runs it on its own goroutine, so waiting here is fine.
func (c *Client) onConnect(client pmqtt.Client) {
	logger.InfoKV(c.ctx, "Connected to mqtt broker", "broker", c.opts.Broker)

	token := client.Subscribe(c.opts.DataTopic, c.opts.QoS, c.onMessage)
	if err := c.wait(c.ctx, token); err != nil {
		logger.ErrorKV(c.ctx, "Subscribe failed", "topic", c.opts.DataTopic, "error", err)
	} else {
		logger.InfoKV(c.ctx, "Subscribed", "topic", c.opts.DataTopic, "qos", c.opts.QoS)
	}

	for _, l := range c.connections() {
		l.OnConnectionEstablished(c.ctx)
	}
}

// onConnectionLost fans out an unexpected connection loss.
func (c *Client) onConnectionLost(_ pmqtt.Client, err error) {
	for _, l := range c.connections() {
		l.OnConnectionLost(c.ctx, err)
	}
}

// onReconnecting logs paho's reconnect attempts.
func (c *Client) onReconnecting(_ pmqtt.Client, _ *pmqtt.ClientOptions) {
	logger.DebugKV(c.ctx, "Reconnecting to mqtt broker", "broker", c.opts.Broker)
}

// onMessage decodes a reading and hands it to subscriber listeners.
// Undecodable payloads are logged and dropped. A reading with an unreadable
// timestamp is still delivered, without the timestamp.
func (c *Client) onMessage(_ pmqtt.Client, m pmqtt.Message) {
	msg, err := payload.Decode(c.ctx, m.Payload())
	if err != nil {
		logger.WarnKV(c.ctx, "Dropping malformed message", "topic", m.Topic(), "error", err)

		return
	}

	c.mu.RLock()
	listeners := slices.Clone(c.subscriberListeners)
	c.mu.RUnlock()

	for _, l := range listeners {
		l.OnMessageArrived(c.ctx, msg)
	}
}

// connections returns a copy of the connection listeners.
func (c *Client) connections() []domain.ConnectionListener {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Clone(c.connectionListeners)
}

// wait blocks until token completes, ctx is done or the timeout elapses.
func (c *Client) wait(ctx context.Context, token pmqtt.Token) error {
	timer := time.NewTimer(c.opts.Timeout)
	defer timer.Stop()

	select {
	case <-token.Done():
		return token.Error()
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return ErrTimeout
	}
}
