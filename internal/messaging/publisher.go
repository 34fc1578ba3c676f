package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

// Publisher publishes recording events to a RabbitMQ topic exchange
type Publisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

// NewPublisher connects to RabbitMQ, retrying for up to 30 seconds, and declares the exchange
func NewPublisher(url, exchange string) (*Publisher, error) {
	conn, err := dialWithRetry(url)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := declareExchange(ch, exchange); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	return &Publisher{
		conn:     conn,
		channel:  ch,
		exchange: exchange,
	}, nil
}

// PublishRecordingProcess asks the worker to process a recording
func (p *Publisher) PublishRecordingProcess(ctx context.Context, recordingID uuid.UUID, blobKey, contentType string) error {
	body, err := json.Marshal(RecordingProcessMessage{
		RecordingID: recordingID,
		BlobKey:     blobKey,
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	err = p.channel.PublishWithContext(ctx,
		p.exchange,
		RecordingProcessRoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    uuid.NewString(),
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	logrus.WithField("recording_id", recordingID).Info("Published recording process message")
	return nil
}

// Healthy reports whether the broker connection is open
func (p *Publisher) Healthy() bool {
	return p.conn != nil && !p.conn.IsClosed()
}

// Close closes the publisher connection
func (p *Publisher) Close() {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}

func dialWithRetry(url string) (*amqp.Connection, error) {
	var conn *amqp.Connection
	var err error
	for i := 0; i < 6; i++ {
		conn, err = amqp.Dial(url)
		if err == nil {
			return conn, nil
		}
		logrus.WithError(err).Warnf("Failed to connect to RabbitMQ, retrying in 5s... (%d/6)", i+1)
		time.Sleep(5 * time.Second)
	}
	return nil, fmt.Errorf("failed to connect to RabbitMQ after retries: %w", err)
}

func declareExchange(ch *amqp.Channel, exchange string) error {
	err := ch.ExchangeDeclare(
		exchange,
		"topic",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}
	return nil
}
