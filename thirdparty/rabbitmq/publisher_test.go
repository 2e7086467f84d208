package rabbitmq

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/prettyirrelevant/ecx-property-hub-hackathon/model"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChannel struct {
	closed     bool
	publishErr error
	published  [][]byte
}

func (c *fakeChannel) PublishWithContext(_ context.Context, _, _ string, _, _ bool, msg amqp091.Publishing) error {
	if c.publishErr != nil {
		return c.publishErr
	}
	c.published = append(c.published, msg.Body)
	return nil
}

func (c *fakeChannel) IsClosed() bool { return c.closed }

func (c *fakeChannel) Close() error {
	c.closed = true
	return nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// fakeBroker hands out a fresh channel per dial.
type fakeBroker struct {
	dials    int
	dialErr  error
	channels []*fakeChannel
}

func (b *fakeBroker) dial(string) (io.Closer, publishChannel, error) {
	b.dials++
	if b.dialErr != nil {
		return nil, nil, b.dialErr
	}
	ch := &fakeChannel{}
	b.channels = append(b.channels, ch)
	return nopCloser{}, ch, nil
}

func notification() model.ConfirmationNotification {
	return model.ConfirmationNotification{Email: "ada@example.com", FirstName: "Ada", Code: 123456}
}

func TestPublisher_SendConfirmation(t *testing.T) {
	t.Run("publishes on the open channel", func(t *testing.T) {
		broker := &fakeBroker{}
		p, err := newPublisher("amqp://test", broker.dial)
		require.NoError(t, err)

		require.NoError(t, p.SendConfirmation(context.Background(), notification()))
		assert.Equal(t, 1, broker.dials)
		assert.Len(t, broker.channels[0].published, 1)
	})

	t.Run("redials after the broker closed the channel", func(t *testing.T) {
		broker := &fakeBroker{}
		p, err := newPublisher("amqp://test", broker.dial)
		require.NoError(t, err)
		broker.channels[0].closed = true

		require.NoError(t, p.SendConfirmation(context.Background(), notification()))
		assert.Equal(t, 2, broker.dials)
		assert.Len(t, broker.channels[1].published, 1)
	})

	t.Run("retries once when the publish hits a closed channel", func(t *testing.T) {
		broker := &fakeBroker{}
		p, err := newPublisher("amqp://test", broker.dial)
		require.NoError(t, err)
		broker.channels[0].publishErr = amqp091.ErrClosed

		require.NoError(t, p.SendConfirmation(context.Background(), notification()))
		assert.Equal(t, 2, broker.dials)
		assert.Len(t, broker.channels[1].published, 1)
	})

	t.Run("broker still down", func(t *testing.T) {
		broker := &fakeBroker{}
		p, err := newPublisher("amqp://test", broker.dial)
		require.NoError(t, err)
		broker.channels[0].closed = true
		broker.dialErr = errors.New("connection refused")

		err = p.SendConfirmation(context.Background(), notification())
		assert.Error(t, err)

		// the next send tries again
		broker.dialErr = nil
		require.NoError(t, p.SendConfirmation(context.Background(), notification()))
		assert.Equal(t, 3, broker.dials)
	})
}
