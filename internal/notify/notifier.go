// Package notify defines the notification interface and implementations
// for stock alert delivery.
package notify

import (
	"context"
	"fmt"
)

// AlertPayload contains the data needed to send a stock alert notification.
type AlertPayload struct {
	WatchName       string
	ProductName     string
	TCIN            string
	StoreID         string
	StoreName       string
	OnHand          int
	DesiredQuantity int
	Price           string
}

// ProductURL returns the target.com product page for the alert's TCIN.
func (a *AlertPayload) ProductURL() string {
	return fmt.Sprintf("https://www.target.com/p/-/A-%s", a.TCIN)
}

// Notifier defines the interface for sending stock alert notifications.
type Notifier interface {
	SendAlert(ctx context.Context, alert *AlertPayload) error
	SendBatchAlert(ctx context.Context, alerts []AlertPayload, title string) error
}
