package notify

import (
	"context"
	"log/slog"
)

// NoOpNotifier implements Notifier by logging alerts instead of delivering
// them. It is used when Discord is not configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that logs alerts at info level.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// SendAlert logs a single alert.
func (n *NoOpNotifier) SendAlert(_ context.Context, alert *AlertPayload) error {
	n.log.Info("in stock",
		"watch", alert.WatchName,
		"tcin", alert.TCIN,
		"store_id", alert.StoreID,
		"onhand", alert.OnHand,
		"desired", alert.DesiredQuantity,
	)
	return nil
}

// SendBatchAlert logs a batch of alerts.
func (n *NoOpNotifier) SendBatchAlert(ctx context.Context, alerts []AlertPayload, _ string) error {
	for i := range alerts {
		_ = n.SendAlert(ctx, &alerts[i])
	}
	return nil
}
