package messaging

import (
	"context"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

// MessageHandler decides how a delivery body is settled
type MessageHandler interface {
	Handle(ctx context.Context, body []byte) Outcome
}

// OutcomeObserver is notified of every settled delivery
type OutcomeObserver func(outcome Outcome)

// Consumer consumes recording processing messages from a durable queue
type Consumer struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	queue    string
	handler  MessageHandler
	observer OutcomeObserver
}

// NewConsumer connects, declares the exchange and a durable queue bound to
// recording.process, and sets a prefetch of one
func NewConsumer(url, exchange, queue string, handler MessageHandler, observer OutcomeObserver) (*Consumer, error) {
	conn, err := dialWithRetry(url)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	closeAll := func() {
		ch.Close()
		conn.Close()
	}

	if err := declareExchange(ch, exchange); err != nil {
		closeAll()
		return nil, err
	}

	q, err := ch.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		closeAll()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	if err := ch.QueueBind(q.Name, RecordingProcessRoutingKey, exchange, false, nil); err != nil {
		closeAll()
		return nil, fmt.Errorf("failed to bind queue: %w", err)
	}

	if err := ch.Qos(1, 0, false); err != nil {
		closeAll()
		return nil, fmt.Errorf("failed to set prefetch: %w", err)
	}

	return &Consumer{
		conn:     conn,
		channel:  ch,
		queue:    q.Name,
		handler:  handler,
		observer: observer,
	}, nil
}

// Run consumes until ctx is cancelled or the channel closes
func (c *Consumer) Run(ctx context.Context) error {
	msgs, err := c.channel.Consume(
		c.queue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	logrus.WithField("queue", c.queue).Info("Worker started consuming")

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return fmt.Errorf("channel closed")
			}
			c.settle(msg, c.handler.Handle(ctx, msg.Body))
		}
	}
}

func (c *Consumer) settle(msg amqp.Delivery, outcome Outcome) {
	var err error
	switch outcome {
	case Ack:
		err = msg.Ack(false)
	case Requeue:
		err = msg.Nack(false, true)
	default:
		err = msg.Nack(false, false)
	}
	if err != nil {
		logrus.WithError(err).Warn("Failed to settle delivery")
	}
	if c.observer != nil {
		c.observer(outcome)
	}
}

// Close closes the consumer connection
func (c *Consumer) Close() {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
}
