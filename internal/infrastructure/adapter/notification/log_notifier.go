package notification

import (
	"context"

	"github.com/amirhossein-jamali/finance-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/finance-ledger/internal/domain/port/core"
)

// LogNotifier writes notification requests to the log instead of a broker.
// Used when no broker URL is configured.
type LogNotifier struct {
	logger core.Logger
}

// NewLogNotifier creates a notifier backed by the application logger
func NewLogNotifier(logger core.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Send logs the notification and always accepts it
func (n *LogNotifier) Send(ctx context.Context, notification entity.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	n.logger.Info("Notification requested", map[string]any{
		"recipient": notification.RecipientEmail,
		"subject":   notification.Subject,
		"template":  notification.TemplateName,
		"data":      notification.TemplateData,
	})
	return nil
}
