package notification

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/finance-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/adapter/logger"
	mcore "github.com/amirhossein-jamali/finance-ledger/mocks/port/core"
)

type recordingPublisher struct {
	exchange string
	key      string
	msg      amqp.Publishing
	calls    int
	err      error
	deadline bool
}

func (p *recordingPublisher) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	p.calls++
	p.exchange = exchange
	p.key = key
	p.msg = msg
	_, p.deadline = ctx.Deadline()
	return p.err
}

func sampleNotification() entity.Notification {
	return entity.Notification{
		RecipientEmail: "alice@example.com",
		Subject:        "Budget Alert for Main",
		TemplateName:   entity.BudgetAlertTemplate,
		TemplateData: map[string]any{
			"userName":       "Alice",
			"percentageUsed": "85.0",
			"budgetAmount":   "1000.00",
			"totalExpenses":  "850.00",
			"accountName":    "Main",
		},
	}
}

func TestAMQPNotifier_Send(t *testing.T) {
	cfg := Config{Exchange: "finance-ledger", Queue: "budget-alerts", RoutingKey: "budget.alert"}

	t.Run("should publish a persistent json message to the configured exchange", func(t *testing.T) {
		// Arrange
		pub := &recordingPublisher{}
		notifier := newAMQPNotifier(pub, cfg, logger.NewNoopLogger())

		// Act
		err := notifier.Send(context.Background(), sampleNotification())

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 1, pub.calls)
		assert.Equal(t, "finance-ledger", pub.exchange)
		assert.Equal(t, "budget.alert", pub.key)
		assert.Equal(t, "application/json", pub.msg.ContentType)
		assert.Equal(t, amqp.Persistent, pub.msg.DeliveryMode)
		assert.Equal(t, entity.BudgetAlertTemplate, pub.msg.Type)
		assert.True(t, pub.deadline)

		var decoded entity.Notification
		require.NoError(t, json.Unmarshal(pub.msg.Body, &decoded))
		assert.Equal(t, "alice@example.com", decoded.RecipientEmail)
		assert.Equal(t, "Budget Alert for Main", decoded.Subject)
		assert.Equal(t, "85.0", decoded.TemplateData["percentageUsed"])
	})

	t.Run("should wrap and log publish failures", func(t *testing.T) {
		// Arrange
		pub := &recordingPublisher{err: amqp.ErrClosed}
		log := mcore.NewMockLogger(t)
		log.On("Error", "Failed to publish notification", mock.Anything).Once()
		notifier := newAMQPNotifier(pub, cfg, log)

		// Act
		err := notifier.Send(context.Background(), sampleNotification())

		// Assert
		require.Error(t, err)
		assert.True(t, errors.Is(err, amqp.ErrClosed))
	})

	t.Run("should close without a connection", func(t *testing.T) {
		notifier := newAMQPNotifier(&recordingPublisher{}, cfg, logger.NewNoopLogger())
		assert.NoError(t, notifier.Close())
	})
}

func TestEncode(t *testing.T) {
	t.Run("should emit an empty object for missing template data", func(t *testing.T) {
		// Act
		body, err := encode(entity.Notification{RecipientEmail: "bob@example.com", TemplateName: "x"})

		// Assert
		require.NoError(t, err)
		assert.JSONEq(t, `{"recipientEmail":"bob@example.com","subject":"","templateName":"x","templateData":{}}`, string(body))
	})
}

func TestLogNotifier_Send(t *testing.T) {
	t.Run("should log the request and accept it", func(t *testing.T) {
		// Arrange
		log := mcore.NewMockLogger(t)
		log.On("Info", "Notification requested", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["recipient"] == "alice@example.com" && fields["template"] == entity.BudgetAlertTemplate
		})).Once()
		notifier := NewLogNotifier(log)

		// Act
		err := notifier.Send(context.Background(), sampleNotification())

		// Assert
		assert.NoError(t, err)
	})

	t.Run("should reject a cancelled context", func(t *testing.T) {
		// Arrange
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		notifier := NewLogNotifier(logger.NewNoopLogger())

		// Act
		err := notifier.Send(ctx, sampleNotification())

		// Assert
		assert.ErrorIs(t, err, context.Canceled)
	})
}
