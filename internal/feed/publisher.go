// Package feed publishes admitted readings to a RabbitMQ topic exchange so
// downstream consumers (settlement, anomaly detection) can follow the
// ledger without polling it.
package feed

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"energy_oracle/internal/logger"
)

// Publisher handles message publishing to RabbitMQ.
type Publisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	log      *logger.Logger
}

// NewPublisher dials RabbitMQ and declares the topic exchange.
func NewPublisher(url, exchange string, log *logger.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	err = ch.ExchangeDeclare(
		exchange,
		"topic",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %q: %w", exchange, err)
	}
	return &Publisher{conn: conn, channel: ch, exchange: exchange, log: log}, nil
}

// AdmittedReading is the message published after a submission commits.
type AdmittedReading struct {
	SensorID     string `json:"sensor_id"`
	AssetID      string `json:"asset_id"`
	EnergyOutput uint64 `json:"energy_output"`
	Timestamp    uint64 `json:"timestamp"`
	EventID      uint64 `json:"event_id"`
	EnergyType   string `json:"energy_type"`
}

// RoutingKey groups messages by energy type under readings.admitted.*.
func (r AdmittedReading) RoutingKey() string {
	return fmt.Sprintf("readings.admitted.%s", r.EnergyType)
}

// PublishAdmittedReading sends one admitted reading. Delivery is
// best-effort; the ledger has already committed when this runs.
func (p *Publisher) PublishAdmittedReading(ctx context.Context, r AdmittedReading) error {
	body, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal admitted reading: %w", err)
	}
	err = p.channel.PublishWithContext(
		ctx,
		p.exchange,
		r.RoutingKey(),
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("publish admitted reading: %w", err)
	}
	p.log.Debugw("published admitted reading",
		"routing_key", r.RoutingKey(),
		"sensor_id", r.SensorID,
		"asset_id", r.AssetID,
	)
	return nil
}

// Close closes the channel and connection.
func (p *Publisher) Close() error {
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
