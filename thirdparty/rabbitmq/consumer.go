package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/prettyirrelevant/ecx-property-hub-hackathon/model"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Mailer delivers a confirmation email.
type Mailer interface {
	SendConfirmation(ctx context.Context, n model.ConfirmationNotification) error
}

type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	mailer  Mailer
	log     *zap.Logger
}

func NewConsumer(url string, mailer Mailer) (*Consumer, error) {
	conn, channel, err := dial(url)
	if err != nil {
		return nil, err
	}
	return &Consumer{
		conn:    conn,
		channel: channel,
		mailer:  mailer,
		log:     logger.Named("confirmation-consumer"),
	}, nil
}

// Start consumes confirmation messages until ctx is done. Failed
// deliveries are dropped, not requeued: the account holder asks for a
// resend instead.
func (c *Consumer) Start(ctx context.Context) error {
	// Set QoS to 1 - process one message at a time
	if err := c.channel.Qos(1, 0, false); err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		confirmationQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					c.log.Warn("delivery channel closed")
					return
				}
				if err := c.process(ctx, msg.Body); err != nil {
					c.log.Error("confirmation email failed", zap.Error(err))
					_ = msg.Nack(false, false)
					continue
				}
				_ = msg.Ack(false)
			}
		}
	}()

	return nil
}

func (c *Consumer) process(ctx context.Context, body []byte) error {
	var n model.ConfirmationNotification
	if err := json.Unmarshal(body, &n); err != nil {
		return fmt.Errorf("decode message: %w", err)
	}
	if n.Email == "" {
		return fmt.Errorf("message without recipient")
	}
	if err := c.mailer.SendConfirmation(ctx, n); err != nil {
		return fmt.Errorf("send to %s: %w", n.Email, err)
	}
	c.log.Info("confirmation email sent", zap.String("email", n.Email))
	return nil
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
