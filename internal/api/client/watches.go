package client

import (
	"context"
	"time"

	domain "github.com/donaldgifford/target-inventory/pkg/types"
)

// WatchStatus is the configured watches and their last results.
type WatchStatus struct {
	Watches    []domain.Watch      `json:"watches"`
	LastChecks []domain.StockCheck `json:"last_checks"`
}

// CheckResult is the outcome of an on-demand watch cycle.
type CheckResult struct {
	Checks  []domain.StockCheck `json:"checks"`
	InStock int                 `json:"in_stock"`
}

// Quota is the server's Target API quota status.
type Quota struct {
	DailyLimit int64     `json:"daily_limit"`
	DailyUsed  int64     `json:"daily_used"`
	Remaining  int64     `json:"remaining"`
	ResetAt    time.Time `json:"reset_at"`
}

// ListWatches returns the configured watches and the last cycle's results.
func (c *Client) ListWatches(ctx context.Context) (*WatchStatus, error) {
	var resp WatchStatus
	if err := c.get(ctx, "/api/v1/watches", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CheckWatches runs a watch cycle on the server now.
func (c *Client) CheckWatches(ctx context.Context) (*CheckResult, error) {
	var resp CheckResult
	if err := c.post(ctx, "/api/v1/watches/check", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetQuota returns the Target API quota status.
func (c *Client) GetQuota(ctx context.Context) (*Quota, error) {
	var resp Quota
	if err := c.get(ctx, "/api/v1/quota", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
