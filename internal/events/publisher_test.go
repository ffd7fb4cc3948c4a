package events

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/sams408/safeon-id-vault/internal/domain"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSelectsPublisher(t *testing.T) {
	logger := logrus.New()

	_, isLog := New(nil, "topic", logger).(*logPublisher)
	assert.True(t, isLog)

	p := New([]string{"localhost:9092"}, "topic", logger)
	kp, isKafka := p.(*kafkaPublisher)
	require.True(t, isKafka)
	assert.Equal(t, "topic", kp.writer.Topic)
	assert.NoError(t, p.Close())
}

func TestLogPublisherWritesFields(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.JSONFormatter{})

	p := NewLogPublisher(logger)
	err := p.Publish(context.Background(), domain.EntityChange{
		Entity:     "client",
		Action:     domain.ActionCreated,
		ID:         "c-1",
		OccurredAt: time.Now(),
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"entity":"client"`)
	assert.Contains(t, buf.String(), `"action":"created"`)
}
