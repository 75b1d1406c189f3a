package utils

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

var kafkaWriter *kafka.Writer

// InitializeKafka sets up the announcement event producer. Kafka is optional;
// when KAFKA_BROKERS is unset, publishing becomes a no-op.
func InitializeKafka() {
	brokers := os.Getenv("KAFKA_BROKERS")
	if brokers == "" {
		log.Println("ℹ️ KAFKA_BROKERS not set, skipping Kafka (announcement events disabled)")
		return
	}

	topic := os.Getenv("KAFKA_ANNOUNCEMENT_TOPIC")
	if topic == "" {
		topic = "masjid.announcements"
	}

	kafkaWriter = &kafka.Writer{
		Addr:         kafka.TCP(strings.Split(brokers, ",")...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		WriteTimeout: 10 * time.Second,
	}

	log.Printf("✅ Kafka producer initialized (topic %s)", topic)
}

// PublishEvent writes a JSON-encoded event keyed by id. Errors are returned to
// the caller, who treats publishing as best-effort.
func PublishEvent(ctx context.Context, key string, payload interface{}) error {
	if kafkaWriter == nil {
		return nil
	}

	value, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return kafkaWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
	})
}

// CloseKafka flushes and closes the producer.
func CloseKafka() {
	if kafkaWriter == nil {
		return
	}
	if err := kafkaWriter.Close(); err != nil {
		log.Printf("⚠️ Error closing Kafka writer: %v", err)
	}
}
