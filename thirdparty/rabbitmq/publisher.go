package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"

	"github.com/prettyirrelevant/ecx-property-hub-hackathon/model"
	"github.com/prettyirrelevant/ecx-property-hub-hackathon/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// publishChannel is the part of *amqp091.Channel the publisher uses.
type publishChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	IsClosed() bool
	Close() error
}

type dialFunc func(url string) (io.Closer, publishChannel, error)

func dialPublisher(url string) (io.Closer, publishChannel, error) {
	conn, channel, err := dial(url)
	if err != nil {
		return nil, nil, err
	}
	return conn, channel, nil
}

// Publisher queues confirmation emails for the consumer. A successful
// SendConfirmation means the broker accepted the message, not that the
// email was delivered. A channel closed by the broker is redialed on the
// next send.
type Publisher struct {
	url     string
	dial    dialFunc
	conn    io.Closer
	channel publishChannel
	mu      sync.Mutex
}

func NewPublisher(url string) (*Publisher, error) {
	return newPublisher(url, dialPublisher)
}

func newPublisher(url string, dial dialFunc) (*Publisher, error) {
	p := &Publisher{url: url, dial: dial}
	if err := p.redial(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Publisher) SendConfirmation(ctx context.Context, n model.ConfirmationNotification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.channel == nil || p.channel.IsClosed() {
		logger.Warn("confirmation channel closed, redialing")
		if err := p.redial(); err != nil {
			return err
		}
	}

	err = p.publish(ctx, body)
	if errors.Is(err, amqp091.ErrClosed) {
		// closed between the check and the publish
		if rerr := p.redial(); rerr != nil {
			return rerr
		}
		err = p.publish(ctx, body)
	}
	return err
}

func (p *Publisher) publish(ctx context.Context, body []byte) error {
	return p.channel.PublishWithContext(
		ctx,
		confirmationExchange,   // exchange
		confirmationRoutingKey, // routing key
		false,                  // mandatory
		false,                  // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Body:         body,
		},
	)
}

// redial replaces the connection and channel. Callers hold p.mu, except
// during construction.
func (p *Publisher) redial() error {
	p.closeLocked()
	conn, channel, err := p.dial(p.url)
	if err != nil {
		logger.Error("[Publisher] err dial", zap.String("error", err.Error()))
		return err
	}
	p.conn, p.channel = conn, channel
	return nil
}

func (p *Publisher) closeLocked() {
	if p.channel != nil {
		_ = p.channel.Close()
		p.channel = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closeLocked()
	return nil
}
