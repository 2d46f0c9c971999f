package forecast

import (
	"strings"
	"time"

	"github.com/invensight/backend-go/internal/domain"
)

// buildDemandHistory derives, for every item, the outbound quantity summed
// per calendar month over the trailing months window (current month
// inclusive, oldest first). Items with no matching outbound transactions in
// the window get no series at all, so downstream consumers apply their
// documented no-history fallbacks instead of reading a meaningless flat
// zero line.
//
// Transactions are matched to items by case-insensitive substring on the
// free-text item name, not by ID. Items whose names contain each other will
// double-count demand; the CRUD layer has always written names this way, so
// the matching is kept until transactions carry an item ID.
func buildDemandHistory(items []domain.Item, transactions []domain.Transaction, now time.Time, months int) map[int64][]float64 {
	// First bucket is the month (months-1) calendar months before now.
	oldest := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(months - 1), 0)

	type parsed struct {
		name     string
		bucket   int
		quantity float64
	}
	outbound := make([]parsed, 0, len(transactions))
	for _, tx := range transactions {
		if tx.Type != domain.TransactionOutbound {
			continue
		}
		date, ok := parseTransactionDate(tx.Date)
		if !ok {
			// Malformed dates are not an error; they just never land in
			// a bucket.
			continue
		}
		bucket := monthsBetween(oldest, date)
		if bucket < 0 || bucket >= months {
			continue
		}
		outbound = append(outbound, parsed{
			name:     strings.ToLower(tx.ItemName),
			bucket:   bucket,
			quantity: float64(tx.Quantity),
		})
	}

	history := make(map[int64][]float64, len(items))
	for _, item := range items {
		series := make([]float64, months)
		needle := strings.ToLower(item.Name)
		matched := false
		for _, tx := range outbound {
			if strings.Contains(tx.name, needle) {
				series[tx.bucket] += tx.quantity
				matched = true
			}
		}
		if matched {
			history[item.ID] = series
		}
	}
	return history
}

// parseTransactionDate accepts the ISO-8601 date forms the CRUD layer
// produces.
func parseTransactionDate(s string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// monthsBetween counts whole calendar months from the month of a to the
// month of b.
func monthsBetween(a, b time.Time) int {
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}
