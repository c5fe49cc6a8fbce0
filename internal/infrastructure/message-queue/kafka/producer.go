package kafka

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

// Producer wraps a leader connection with a bounded retry loop. Callers that
// treat the publish as fire-and-forget log and discard the returned error.
type Producer struct {
	conn *kafka.Conn
}

func CreateProducer(conn *kafka.Conn) *Producer {
	return &Producer{conn: conn}
}

func (p *Producer) Publish(msg []byte) error {
	maxRetries := 3

	var err error
	for i := 0; i < maxRetries; i++ {
		_, err = p.conn.WriteMessages(
			kafka.Message{
				Value: msg,
			},
		)
		if err == nil {
			return nil
		}
		log.Error().Err(err).Str("component", "Publish").Msgf("failed to write Kafka message (attempt %d/%d)", i+1, maxRetries)
		time.Sleep(time.Second * time.Duration(i+1))
	}

	return fmt.Errorf("failed to write Kafka message after %d attempts: %w", maxRetries, err)
}
