// Package forecast implements the predictive analytics engine: monthly
// demand series derived from transaction history, seasonal/trend
// decomposition, demand forecasting, reorder point and EOQ calculation,
// stockout risk rollups, cost optimization, ABC classification and
// predictive alerts.
//
// An Engine is an immutable snapshot: it captures the item, movement and
// transaction lists at construction, derives the per-item demand history
// once, and every operation is a pure computation over that snapshot. Build
// a fresh Engine per request rather than holding one across mutations.
package forecast

import (
	"time"

	"github.com/invensight/backend-go/internal/domain"
)

// Engine computes inventory predictions over a fixed snapshot of records.
type Engine struct {
	items        []domain.Item
	movements    []domain.StockMovement
	transactions []domain.Transaction
	now          time.Time
	params       Params

	// history maps item ID to its trailing monthly outbound quantities,
	// oldest first, always params.HistoryMonths long.
	history map[int64][]float64
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithParams overrides the default engine parameters.
func WithParams(p Params) Option {
	return func(e *Engine) { e.params = p }
}

// WithNow pins the reference time used to bucket the trailing months.
// Predictions are deterministic given a fixed now.
func WithNow(now time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine captures a snapshot of the given records and precomputes the
// demand history for every item. Movements are accepted for parity with the
// CRUD layer but are not read by any computation.
func NewEngine(items []domain.Item, movements []domain.StockMovement, transactions []domain.Transaction, opts ...Option) *Engine {
	e := &Engine{
		items:        items,
		movements:    movements,
		transactions: transactions,
		now:          time.Now(),
		params:       DefaultParams(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.history = buildDemandHistory(items, transactions, e.now, e.params.HistoryMonths)
	return e
}

// Items returns the item snapshot the engine was built from.
func (e *Engine) Items() []domain.Item {
	return e.items
}

// DemandHistory returns the trailing monthly outbound series for an item,
// oldest first. The second return is false when the item is not part of the
// snapshot or has no matching outbound transactions in the window.
func (e *Engine) DemandHistory(itemID int64) ([]float64, bool) {
	h, ok := e.history[itemID]
	return h, ok
}
