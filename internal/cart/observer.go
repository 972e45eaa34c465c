package cart

import (
	"context"

	"github.com/nikolayk812/fyf-cart/internal/domain"
	"go.uber.org/zap"
)

// Observer receives a notification after every effective cart change.
// Notify runs synchronously on the caller of the engine operation.
type Observer interface {
	Notify(ctx context.Context, event domain.Event)
}

type ObserverFunc func(ctx context.Context, event domain.Event)

func (f ObserverFunc) Notify(ctx context.Context, event domain.Event) {
	f(ctx, event)
}

// LogObserver writes each event's user-facing message to logger.
func LogObserver(logger *zap.Logger) Observer {
	return ObserverFunc(func(_ context.Context, event domain.Event) {
		logger.Info(event.Message(),
			zap.String("event", string(event.Kind)),
			zap.String("owner_id", event.OwnerID),
			zap.String("item_id", event.ItemID),
			zap.Int("quantity", event.Quantity),
		)
	})
}
