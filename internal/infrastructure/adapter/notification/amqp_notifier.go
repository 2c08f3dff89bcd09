package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/amirhossein-jamali/finance-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/finance-ledger/internal/domain/port/core"
)

const publishTimeout = 5 * time.Second

// Config holds the broker coordinates for alert delivery
type Config struct {
	URL        string
	Exchange   string
	Queue      string
	RoutingKey string
}

// publisher is the subset of *amqp.Channel used to hand off messages
type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// AMQPNotifier publishes notification requests to a RabbitMQ exchange
type AMQPNotifier struct {
	channel    publisher
	closer     func() error
	exchange   string
	routingKey string
	logger     core.Logger
	mu         sync.Mutex
}

// NewAMQPNotifier dials the broker and declares the alert topology
func NewAMQPNotifier(cfg Config, logger core.Logger) (*AMQPNotifier, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := declareTopology(ch, cfg); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	logger.Info("Connected to notification broker", map[string]any{
		"exchange":    cfg.Exchange,
		"queue":       cfg.Queue,
		"routing_key": cfg.RoutingKey,
	})

	n := newAMQPNotifier(ch, cfg, logger)
	n.closer = func() error {
		if err := ch.Close(); err != nil {
			return fmt.Errorf("failed to close channel: %w", err)
		}
		if err := conn.Close(); err != nil {
			return fmt.Errorf("failed to close connection: %w", err)
		}
		return nil
	}
	return n, nil
}

func newAMQPNotifier(ch publisher, cfg Config, logger core.Logger) *AMQPNotifier {
	return &AMQPNotifier{
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		logger:     logger,
	}
}

func declareTopology(ch *amqp.Channel, cfg Config) error {
	if err := ch.ExchangeDeclare(
		cfg.Exchange,
		"direct",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	if cfg.Queue == "" {
		return nil
	}

	if _, err := ch.QueueDeclare(
		cfg.Queue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	); err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}

	if err := ch.QueueBind(cfg.Queue, cfg.RoutingKey, cfg.Exchange, false, nil); err != nil {
		return fmt.Errorf("failed to bind queue: %w", err)
	}
	return nil
}

// Send publishes the notification as a persistent JSON message
func (n *AMQPNotifier) Send(ctx context.Context, notification entity.Notification) error {
	body, err := encode(notification)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	n.mu.Lock()
	err = n.channel.PublishWithContext(ctx, n.exchange, n.routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Type:         notification.TemplateName,
		Body:         body,
	})
	n.mu.Unlock()
	if err != nil {
		n.logger.Error("Failed to publish notification", map[string]any{
			"template": notification.TemplateName,
			"error":    err.Error(),
		})
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	n.logger.Debug("Notification published", map[string]any{
		"template": notification.TemplateName,
		"exchange": n.exchange,
	})
	return nil
}

// Close releases the channel and the connection
func (n *AMQPNotifier) Close() error {
	if n.closer == nil {
		return nil
	}
	return n.closer()
}

func encode(notification entity.Notification) ([]byte, error) {
	if notification.TemplateData == nil {
		notification.TemplateData = map[string]any{}
	}
	body, err := json.Marshal(notification)
	if err != nil {
		return nil, fmt.Errorf("failed to encode notification: %w", err)
	}
	return body, nil
}
