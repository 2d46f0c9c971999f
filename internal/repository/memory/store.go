// Package memory backs the CRUD layer with in-memory collections. The
// application deliberately has no database; a Store is the system of record
// for items, movements and transactions, and hands the analytics engine a
// consistent copy via Snapshot.
package memory

import (
	"errors"
	"sync"

	"github.com/invensight/backend-go/internal/domain"
)

// ErrNotFound is returned when a record ID does not exist.
var ErrNotFound = errors.New("record not found")

// Store is a mutex-guarded in-memory record store.
type Store struct {
	mu           sync.RWMutex
	items        []domain.Item
	movements    []domain.StockMovement
	transactions []domain.Transaction
	nextItemID   int64
	nextMoveID   int64
	nextTxID     int64
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{nextItemID: 1, nextMoveID: 1, nextTxID: 1}
}

// Snapshot returns a consistent copy of every collection. The copy is safe
// to hand to the forecast engine while writers keep mutating the store.
func (s *Store) Snapshot() domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.Snapshot{
		Items:        append([]domain.Item(nil), s.items...),
		Movements:    append([]domain.StockMovement(nil), s.movements...),
		Transactions: append([]domain.Transaction(nil), s.transactions...),
	}
}

func (s *Store) ListItems() []domain.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Item(nil), s.items...)
}

func (s *Store) GetItem(id int64) (domain.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.ID == id {
			return item, nil
		}
	}
	return domain.Item{}, ErrNotFound
}

func (s *Store) CreateItem(item domain.Item) domain.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	item.ID = s.nextItemID
	s.nextItemID++
	s.items = append(s.items, item)
	return item
}

func (s *Store) UpdateItem(item domain.Item) (domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i] = item
			return item, nil
		}
	}
	return domain.Item{}, ErrNotFound
}

func (s *Store) DeleteItem(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *Store) ListMovements() []domain.StockMovement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.StockMovement(nil), s.movements...)
}

func (s *Store) CreateMovement(m domain.StockMovement) domain.StockMovement {
	s.mu.Lock()
	defer s.mu.Unlock()
	m.ID = s.nextMoveID
	s.nextMoveID++
	s.movements = append(s.movements, m)
	return m
}

func (s *Store) DeleteMovement(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.movements {
		if s.movements[i].ID == id {
			s.movements = append(s.movements[:i], s.movements[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *Store) ListTransactions() []domain.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Transaction(nil), s.transactions...)
}

func (s *Store) CreateTransaction(tx domain.Transaction) domain.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx.ID = s.nextTxID
	s.nextTxID++
	s.transactions = append(s.transactions, tx)
	return tx
}

func (s *Store) DeleteTransaction(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.transactions {
		if s.transactions[i].ID == id {
			s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Load replaces every collection at once, keeping the ID counters ahead of
// the largest loaded IDs. The batch CLI uses it to seed a store from files.
func (s *Store) Load(snap domain.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]domain.Item(nil), snap.Items...)
	s.movements = append([]domain.StockMovement(nil), snap.Movements...)
	s.transactions = append([]domain.Transaction(nil), snap.Transactions...)
	s.nextItemID = 1
	for _, it := range s.items {
		if it.ID >= s.nextItemID {
			s.nextItemID = it.ID + 1
		}
	}
	s.nextMoveID = 1
	for _, m := range s.movements {
		if m.ID >= s.nextMoveID {
			s.nextMoveID = m.ID + 1
		}
	}
	s.nextTxID = 1
	for _, tx := range s.transactions {
		if tx.ID >= s.nextTxID {
			s.nextTxID = tx.ID + 1
		}
	}
}
