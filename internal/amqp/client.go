// Package amqp connects the API and the notification worker through a
// RabbitMQ broker. The API publishes fund movement messages; the worker
// consumes them and forwards each one to the WhatsApp gateway.
package amqp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"github.com/lunnorapp/lunnor_caixa/internal/notify"
)

const publishTimeout = 5 * time.Second

// Client wraps a RabbitMQ connection with the exchange and queue used
// for fund movement notifications already declared and bound.
type Client struct {
	conn         *amqp091.Connection
	channel      *amqp091.Channel
	exchangeName string
	queueName    string
}

var _ notify.Publisher = (*Client)(nil)

// NewClient dials the broker and declares the notification topology.
func NewClient(url, exchangeName, queueName string) (*Client, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	client := &Client{
		conn:         conn,
		channel:      channel,
		exchangeName: exchangeName,
		queueName:    queueName,
	}

	if err := client.setup(); err != nil {
		client.Close()
		return nil, fmt.Errorf("setup exchange and queue: %w", err)
	}

	return client, nil
}

func (c *Client) setup() error {
	err := c.channel.ExchangeDeclare(
		c.exchangeName,
		"direct",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	_, err = c.channel.QueueDeclare(
		c.queueName,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	// Routing key matches the queue name on the direct exchange.
	err = c.channel.QueueBind(c.queueName, c.queueName, c.exchangeName, false, nil)
	if err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}

	return nil
}

// PublishFundMovement publishes a persistent JSON fund movement message.
func (c *Client) PublishFundMovement(ctx context.Context, msg notify.FundMovementMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = c.channel.PublishWithContext(
		ctx,
		c.exchangeName,
		c.queueName, // routing key
		false,       // mandatory
		false,       // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	slog.InfoContext(ctx, "Published fund movement message",
		slog.String("user_id", msg.UserID),
		slog.String("tipo", msg.Tipo),
		slog.String("exchange", c.exchangeName),
		slog.String("queue", c.queueName))

	return nil
}

// ConsumeFundMovements delivers queued messages to handler with manual
// acks. Notifications are fire-and-forget: a handler failure is logged
// and the message is acked anyway, and a malformed body is dropped.
// Blocks until ctx is cancelled or the broker channel closes.
func (c *Client) ConsumeFundMovements(ctx context.Context, handler func(context.Context, notify.FundMovementMessage) error) error {
	msgs, err := c.channel.Consume(
		c.queueName,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("start consuming: %w", err)
	}

	slog.InfoContext(ctx, "Started consuming fund movement messages", slog.String("queue", c.queueName))

	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "Stopping message consumption", slog.String("reason", ctx.Err().Error()))
			return ctx.Err()
		case delivery, ok := <-msgs:
			if !ok {
				return fmt.Errorf("message channel closed")
			}
			c.handleDelivery(ctx, delivery, handler)
		}
	}
}

// handleDelivery decodes and dispatches one delivery. A failed delivery
// is never redelivered: a broken gateway must not turn the queue into a
// redeliver loop, and the notification itself is best-effort.
func (c *Client) handleDelivery(ctx context.Context, delivery amqp091.Delivery, handler func(context.Context, notify.FundMovementMessage) error) {
	var msg notify.FundMovementMessage
	if err := json.Unmarshal(delivery.Body, &msg); err != nil {
		slog.ErrorContext(ctx, "Failed to unmarshal fund movement message", slog.String("error", err.Error()))
		delivery.Nack(false, false)
		return
	}

	if err := handler(ctx, msg); err != nil {
		slog.ErrorContext(ctx, "Failed to deliver fund movement message",
			slog.String("error", err.Error()),
			slog.String("user_id", msg.UserID))
	}
	delivery.Ack(false)
}

// Close releases the channel and the connection.
func (c *Client) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
