package core

import (
	"context"

	"github.com/amirhossein-jamali/finance-ledger/internal/domain/entity"
)

// Notifier hands a notification request to the delivery collaborator.
// Delivery is fire-and-forget: a nil error only means the request was accepted.
type Notifier interface {
	Send(ctx context.Context, notification entity.Notification) error
}
