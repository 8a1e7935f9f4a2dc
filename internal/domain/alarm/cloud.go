package alarm

import "context"

// SubscriberListener receives inbound messages.
type SubscriberListener interface {
	OnMessageArrived(ctx context.Context, msg *InboundMessage)
}

// ConnectionListener receives connectivity lifecycle events.
type ConnectionListener interface {
	OnConnectionEstablished(ctx context.Context)
	OnConnectionLost(ctx context.Context, err error)
	OnDisconnected(ctx context.Context)
}

// DeliveryListener receives delivery confirmations for published messages.
// The id is the one Publish returned; its meaning is up to the publisher.
type DeliveryListener interface {
	OnMessageConfirmed(ctx context.Context, messageID string)
}

//go:generate mockgen -destination=mock_cloud.go -package=alarm github.com/oshokin/alarm-led/internal/domain/alarm Publisher,Subscriber

// Publisher sends status reports to the outbound channel.
type Publisher interface {
	// Publish sends msg once and returns the identifier assigned to it.
	Publish(ctx context.Context, msg *OutboundMessage) (string, error)
	RegisterConnectionListener(l ConnectionListener)
	UnregisterConnectionListener(l ConnectionListener)
	RegisterDeliveryListener(l DeliveryListener)
	UnregisterDeliveryListener(l DeliveryListener)
}

// Subscriber delivers inbound messages from the data channel.
type Subscriber interface {
	RegisterSubscriberListener(l SubscriberListener)
	UnregisterSubscriberListener(l SubscriberListener)
	RegisterConnectionListener(l ConnectionListener)
	UnregisterConnectionListener(l ConnectionListener)
}
