package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/IBM/sarama"

	"shoestore_be/model"
)

// Publisher emits transaction events.
type Publisher interface {
	Publish(ctx context.Context, evt model.TransactionEvent) error
	Close() error
}

type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

func NewKafkaPublisher(brokers []string, topic string) (*KafkaPublisher, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	config.Producer.Timeout = 5 * time.Second

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to start Sarama producer: %w", err)
	}

	log.Println("[INFO] Kafka producer connected")
	return NewKafkaPublisherWithProducer(producer, topic), nil
}

func NewKafkaPublisherWithProducer(producer sarama.SyncProducer, topic string) *KafkaPublisher {
	return &KafkaPublisher{producer: producer, topic: topic}
}

// Publish keys the message by booking id so events of one order stay in
// one partition.
func (p *KafkaPublisher) Publish(ctx context.Context, evt model.TransactionEvent) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(evt.BookingTrxID),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("type"), Value: []byte(evt.Type)},
		},
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("send %s to %s: %w", evt.Type, p.topic, err)
	}
	log.Printf("[INFO] %s %s sent to %s/%d@%d", evt.Type, evt.BookingTrxID, p.topic, partition, offset)
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}

// Noop is used when no brokers are configured.
type Noop struct{}

func (Noop) Publish(context.Context, model.TransactionEvent) error { return nil }
func (Noop) Close() error                                          { return nil }
