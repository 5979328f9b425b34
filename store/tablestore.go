package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/minaorangina/rummy/deck"
	"github.com/minaorangina/rummy/game"
	uuid "github.com/satori/go.uuid"
)

var (
	ErrUnknownTableID = errors.New("unknown table ID")
	ErrTableStoreFull = errors.New("table store is full")
)

type TableStore interface {
	FindTable(tableID string) (game.Table, bool)
	AddTable(table game.Table) (string, error)
	UpdateTable(tableID string, table game.Table) error
	RemoveTable(tableID string) error
	Plays(tableID string) ([]game.Play, error)
}

// NewTableID returns a fresh random table ID
func NewTableID() string {
	return uuid.NewV4().String()
}

// InMemoryTableStore maps table id to a table snapshot.
// Every read and write copies the snapshot, so callers never share a discard pile.
type InMemoryTableStore struct {
	mu        sync.RWMutex
	Tables    map[string]game.Table
	MaxTables int
	NewID     func() string
}

// NewInMemoryTableStore constructs an InMemoryTableStore.
// maxTables <= 0 means no limit.
func NewInMemoryTableStore(maxTables int) *InMemoryTableStore {
	return &InMemoryTableStore{
		Tables:    map[string]game.Table{},
		MaxTables: maxTables,
		NewID:     NewTableID,
	}
}

func (s *InMemoryTableStore) FindTable(tableID string) (game.Table, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	table, ok := s.Tables[tableID]
	if !ok {
		return game.Table{}, false
	}
	return copyTable(table), true
}

func (s *InMemoryTableStore) AddTable(table game.Table) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.MaxTables > 0 && len(s.Tables) >= s.MaxTables {
		return "", ErrTableStoreFull
	}

	tableID := s.NewID()
	if _, exists := s.Tables[tableID]; exists {
		return "", fmt.Errorf("table with id %s already exists", tableID)
	}

	s.Tables[tableID] = copyTable(table)
	return tableID, nil
}

func (s *InMemoryTableStore) UpdateTable(tableID string, table game.Table) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.Tables[tableID]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTableID, tableID)
	}

	s.Tables[tableID] = copyTable(table)
	return nil
}

func (s *InMemoryTableStore) RemoveTable(tableID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.Tables[tableID]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTableID, tableID)
	}

	delete(s.Tables, tableID)
	return nil
}

// Plays computes the plays for a stored table.
// The read lock is held for the whole call, so the table can't change underneath it.
func (s *InMemoryTableStore) Plays(tableID string) ([]game.Play, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	table, ok := s.Tables[tableID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTableID, tableID)
	}

	return table.Plays()
}

func copyTable(t game.Table) game.Table {
	t.DiscardPile = append([]deck.Card{}, t.DiscardPile...)
	return t
}
