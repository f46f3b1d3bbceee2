package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/giovannicg/INMEDT/internal/logging"
	"github.com/giovannicg/INMEDT/internal/usecase"
	amqp "github.com/rabbitmq/amqp091-go"
)

var ErrNotConfirmed = errors.New("broker did not confirm publish")

type publishChannel interface {
	declarer
	Confirm(noWait bool) error
	PublishWithDeferredConfirmWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) (*amqp.DeferredConfirmation, error)
}

// RabbitProducer implements usecase.EventPublisher
type RabbitProducer struct {
	ch publishChannel
}

// NewRabbitProducer declares the topology once at startup and switches the
// channel to confirm mode.
func NewRabbitProducer(ch publishChannel) (*RabbitProducer, error) {
	if err := DeclareTopology(ch); err != nil {
		return nil, err
	}
	if err := ch.Confirm(false); err != nil {
		return nil, fmt.Errorf("enable confirm mode: %w", err)
	}
	return &RabbitProducer{ch: ch}, nil
}

// PublishOrderPlaced sends an "order.placed" event and waits for the broker ack.
func (p *RabbitProducer) PublishOrderPlaced(ctx context.Context, msg usecase.OrderPlacedMsg) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent, // survive broker restarts
		MessageId:    msg.EventID,
		Timestamp:    msg.PlacedAt,
		Body:         body,
	}

	conf, err := p.ch.PublishWithDeferredConfirmWithContext(ctx, ExchangeName, OrderPlacedKey, false, false, pub)
	if err != nil {
		return fmt.Errorf("publish: %w", err)
	}
	if conf == nil {
		return nil
	}
	acked, err := conf.WaitContext(ctx)
	if err != nil {
		return fmt.Errorf("publish confirm: %w", err)
	}
	if !acked {
		return ErrNotConfirmed
	}
	return nil
}

// LogPublisher stands in when no broker is configured.
type LogPublisher struct {
	Log *slog.Logger
}

func (p LogPublisher) PublishOrderPlaced(ctx context.Context, msg usecase.OrderPlacedMsg) error {
	l := p.Log
	if l == nil {
		l = logging.FromCtx(ctx)
	}
	l.Info("order placed", "event_id", msg.EventID, "order_id", msg.OrderID, "number", msg.Number, "total", msg.Total.StringFixed(2))
	return nil
}

var (
	_ usecase.EventPublisher = (*RabbitProducer)(nil)
	_ usecase.EventPublisher = LogPublisher{}
)
