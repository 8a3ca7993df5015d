// Package tracker polls store availability for watched products and fires a
// notification when a store reaches the desired on-hand quantity.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/donaldgifford/target-inventory/internal/metrics"
	"github.com/donaldgifford/target-inventory/internal/notify"
	"github.com/donaldgifford/target-inventory/internal/transport"
	domain "github.com/donaldgifford/target-inventory/pkg/types"
)

// batchThreshold is the number of alerts in one cycle at which they are sent
// as a single batch message.
const batchThreshold = 5

// Checker is the subset of the query façade the tracker needs.
type Checker interface {
	StoreByID(ctx context.Context, id string) (*domain.Location, error)
	StoreAvailability(ctx context.Context, tcin string, store domain.Location) (*domain.StoreProduct, error)
}

// Tracker checks a fixed set of watches. Alert state is kept in memory and
// is lost on restart.
type Tracker struct {
	checker  Checker
	notifier notify.Notifier
	watches  []domain.Watch
	log      *slog.Logger
	nowFunc  func() time.Time
	stagger  time.Duration

	mu      sync.Mutex
	inStock map[string]bool
	last    []domain.StockCheck
}

// Option configures the Tracker.
type Option func(*Tracker)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(t *Tracker) {
		t.log = l
	}
}

// WithStagger sets the delay between checking consecutive watches.
func WithStagger(d time.Duration) Option {
	return func(t *Tracker) {
		t.stagger = d
	}
}

// WithNowFunc overrides the clock used to stamp checks.
func WithNowFunc(fn func() time.Time) Option {
	return func(t *Tracker) {
		t.nowFunc = fn
	}
}

// New creates a Tracker for watches.
func New(c Checker, n notify.Notifier, watches []domain.Watch, opts ...Option) *Tracker {
	t := &Tracker{
		checker:  c,
		notifier: n,
		watches:  append([]domain.Watch(nil), watches...),
		log:      slog.Default(),
		nowFunc:  time.Now,
		inStock:  make(map[string]bool),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Watches returns the configured watches.
func (t *Tracker) Watches() []domain.Watch {
	return append([]domain.Watch(nil), t.watches...)
}

// LastChecks returns the results of the most recent completed cycle.
func (t *Tracker) LastChecks() []domain.StockCheck {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]domain.StockCheck(nil), t.last...)
}

// Check looks up one watch without touching alert state.
func (t *Tracker) Check(ctx context.Context, w domain.Watch) (domain.StockCheck, error) {
	sc := domain.StockCheck{Watch: w, CheckedAt: t.nowFunc().UTC()}

	store, err := t.checker.StoreByID(ctx, w.StoreID)
	if err != nil {
		t.log.Warn("store lookup failed, checking by id only", "store_id", w.StoreID, "error", err)
	}
	if store == nil {
		store = &domain.Location{ID: w.StoreID, Type: domain.LocationStore}
	}
	sc.StoreName = store.Name

	p, err := t.checker.StoreAvailability(ctx, w.TCIN, *store)
	if err != nil {
		return sc, fmt.Errorf("checking %s at store %s: %w", w.TCIN, w.StoreID, err)
	}
	if p == nil {
		return sc, nil
	}

	sc.Found = true
	sc.ProductName = p.Name
	if p.Price != nil {
		sc.Price = p.Price.Price
	}
	sc.OnHand = onHand(p, w.StoreID)
	sc.InStock = sc.OnHand >= w.DesiredQuantity
	return sc, nil
}

// onHand returns the quantity at storeID. The aggregate in-store quantity
// is only used when the payload lists no locations at all; a listing that
// omits storeID means none there.
func onHand(p *domain.StoreProduct, storeID string) int {
	if p.Availability == nil {
		return 0
	}
	for _, l := range p.Availability.Locations {
		if l.LocationID == storeID {
			return l.OnHand
		}
	}
	if len(p.Availability.Locations) == 0 && p.Availability.InStoreQuantity != nil {
		return *p.Availability.InStoreQuantity
	}
	return 0
}

// RunCycle checks every watch once and alerts on each watch that moved into
// stock since the previous cycle. A failed notification leaves the watch
// out of stock so the next cycle retries it.
func (t *Tracker) RunCycle(ctx context.Context) ([]domain.StockCheck, error) {
	start := time.Now()
	defer func() {
		metrics.WatchCycleDuration.Observe(time.Since(start).Seconds())
	}()

	checks := make([]domain.StockCheck, 0, len(t.watches))
	var alerts []notify.AlertPayload

	for i := range t.watches {
		if ctx.Err() != nil {
			return checks, ctx.Err()
		}

		w := t.watches[i]
		sc, err := t.Check(ctx, w)
		if err != nil {
			if errors.Is(err, transport.ErrDailyLimitReached) {
				t.log.Warn("daily API limit reached, stopping cycle", "watch", w.Name)
				metrics.WatchChecksTotal.WithLabelValues("error").Inc()
				break
			}
			t.log.Error("watch check failed", "watch", w.Name, "error", err)
			metrics.WatchChecksTotal.WithLabelValues("error").Inc()
			continue
		}
		checks = append(checks, sc)
		metrics.WatchChecksTotal.WithLabelValues(checkResult(sc)).Inc()

		if t.transition(w, sc.InStock) {
			alerts = append(alerts, t.payload(sc))
		}

		if i < len(t.watches)-1 && t.stagger > 0 {
			select {
			case <-ctx.Done():
				return checks, ctx.Err()
			case <-time.After(t.stagger):
			}
		}
	}

	t.mu.Lock()
	t.last = checks
	t.mu.Unlock()

	for _, a := range t.sendAlerts(ctx, alerts) {
		t.reset(a.TCIN, a.StoreID)
	}

	return checks, nil
}

func checkResult(sc domain.StockCheck) string {
	switch {
	case !sc.Found:
		return "not_found"
	case sc.InStock:
		return "in_stock"
	default:
		return "out_of_stock"
	}
}

func key(tcin, storeID string) string {
	return tcin + "@" + storeID
}

// transition records the stock state for w and reports whether it just
// moved into stock.
func (t *Tracker) transition(w domain.Watch, inStock bool) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	k := key(w.TCIN, w.StoreID)
	was := t.inStock[k]
	t.inStock[k] = inStock
	return inStock && !was
}

func (t *Tracker) reset(tcin, storeID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.inStock, key(tcin, storeID))
}

func (t *Tracker) payload(sc domain.StockCheck) notify.AlertPayload {
	return notify.AlertPayload{
		WatchName:       sc.Watch.Name,
		ProductName:     sc.ProductName,
		Price:           sc.Price,
		TCIN:            sc.Watch.TCIN,
		StoreID:         sc.Watch.StoreID,
		StoreName:       sc.StoreName,
		OnHand:          sc.OnHand,
		DesiredQuantity: sc.Watch.DesiredQuantity,
	}
}

// sendAlerts delivers alerts and returns the ones that could not be sent.
func (t *Tracker) sendAlerts(ctx context.Context, alerts []notify.AlertPayload) []notify.AlertPayload {
	if len(alerts) == 0 {
		return nil
	}

	if len(alerts) >= batchThreshold {
		if err := t.notifier.SendBatchAlert(ctx, alerts, "stock watch"); err != nil {
			metrics.NotificationFailuresTotal.Inc()
			t.log.Error("sending batch alert failed", "count", len(alerts), "error", err)
			return alerts
		}
		metrics.AlertsFiredTotal.Add(float64(len(alerts)))
		return nil
	}

	var failed []notify.AlertPayload
	for i := range alerts {
		if err := t.notifier.SendAlert(ctx, &alerts[i]); err != nil {
			metrics.NotificationFailuresTotal.Inc()
			t.log.Error("sending alert failed", "watch", alerts[i].WatchName, "error", err)
			failed = append(failed, alerts[i])
			continue
		}
		metrics.AlertsFiredTotal.Inc()
	}
	return failed
}
