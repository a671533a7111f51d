package kafka

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"storefront/internal/pkg/config"
	"storefront/pkg/logger"
)

type Producer struct {
	log    logger.Logger
	client sarama.AsyncProducer
	done   chan struct{}
}

func NewProducer(ctx context.Context, log logger.Logger, cfg *config.Kafka, brokers []string) (*Producer, error) {
	saramaConfig := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(cfg.Sarama.Version)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", cfg.Sarama.Version, err)
	}
	saramaConfig.Version = version

	saramaConfig.Producer.RequiredAcks = sarama.WaitForLocal
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.Return.Successes = false

	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
	)

	err = pingKafka(ctx, kafkaLog, brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	client, err := sarama.NewAsyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create async producer: %w", err)
	}

	p := &Producer{
		log:    kafkaLog,
		client: client,
		done:   make(chan struct{}),
	}

	// единственный читатель канала ошибок, иначе producer заблокируется
	go p.drainErrors()

	return p, nil
}

func (p *Producer) Send(topic string, key string, payload []byte) {
	p.client.Input() <- &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(payload),
	}
}

func (p *Producer) Close() error {
	err := p.client.Close()
	<-p.done
	return err
}

func (p *Producer) drainErrors() {
	defer close(p.done)

	for producerErr := range p.client.Errors() {
		p.log.With(
			logger.NewField("topic", producerErr.Msg.Topic),
			logger.NewField("error", producerErr.Err),
		).Error("failed to deliver message")
	}
}
