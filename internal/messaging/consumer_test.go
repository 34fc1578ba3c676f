package messaging

import (
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
)

type recordingAcknowledger struct {
	acked    bool
	nacked   bool
	requeued bool
}

func (a *recordingAcknowledger) Ack(tag uint64, multiple bool) error {
	a.acked = true
	return nil
}

func (a *recordingAcknowledger) Nack(tag uint64, multiple, requeue bool) error {
	a.nacked = true
	a.requeued = requeue
	return nil
}

func (a *recordingAcknowledger) Reject(tag uint64, requeue bool) error {
	a.nacked = true
	a.requeued = requeue
	return nil
}

func TestConsumer_Settle(t *testing.T) {
	tests := []struct {
		outcome      Outcome
		wantAck      bool
		wantNack     bool
		wantRequeued bool
	}{
		{Ack, true, false, false},
		{Requeue, false, true, true},
		{Drop, false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.outcome.String(), func(t *testing.T) {
			var observed []Outcome
			c := &Consumer{observer: func(o Outcome) { observed = append(observed, o) }}
			ack := &recordingAcknowledger{}

			c.settle(amqp.Delivery{Acknowledger: ack, DeliveryTag: 1}, tt.outcome)

			assert.Equal(t, tt.wantAck, ack.acked)
			assert.Equal(t, tt.wantNack, ack.nacked)
			assert.Equal(t, tt.wantRequeued, ack.requeued)
			assert.Equal(t, []Outcome{tt.outcome}, observed)
		})
	}
}
