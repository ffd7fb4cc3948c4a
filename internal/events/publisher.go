package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sams408/safeon-id-vault/internal/domain"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

type kafkaPublisher struct {
	writer *kafka.Writer
	log    *logrus.Logger
}

// NewKafkaPublisher writes every change as JSON keyed by entity id, so all
// changes to one record land on the same partition.
func NewKafkaPublisher(brokers []string, topic string, logger *logrus.Logger) domain.EventPublisher {
	return &kafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			BatchTimeout: 50 * time.Millisecond,
		},
		log: logger,
	}
}

func (p *kafkaPublisher) Publish(ctx context.Context, change domain.EntityChange) error {
	value, err := json.Marshal(change)
	if err != nil {
		return fmt.Errorf("could not encode entity change: %w", err)
	}
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(change.ID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "entity", Value: []byte(change.Entity)},
			{Key: "action", Value: []byte(change.Action)},
		},
	})
	if err != nil {
		return fmt.Errorf("could not publish %s %s event: %w", change.Entity, change.Action, err)
	}
	p.log.Debugf("Events: Published %s %s for ID %s", change.Entity, change.Action, change.ID)
	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}

type logPublisher struct {
	log *logrus.Logger
}

// NewLogPublisher records changes in the service log when no broker is configured.
func NewLogPublisher(logger *logrus.Logger) domain.EventPublisher {
	return &logPublisher{log: logger}
}

func (p *logPublisher) Publish(_ context.Context, change domain.EntityChange) error {
	p.log.WithFields(logrus.Fields{
		"entity": change.Entity,
		"action": change.Action,
		"id":     change.ID,
		"actor":  change.Actor,
	}).Info("Entity changed")
	return nil
}

func (p *logPublisher) Close() error { return nil }

// New returns a kafka publisher when brokers are configured, else a log publisher.
func New(brokers []string, topic string, logger *logrus.Logger) domain.EventPublisher {
	if len(brokers) == 0 {
		return NewLogPublisher(logger)
	}
	return NewKafkaPublisher(brokers, topic, logger)
}
