package storage

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Sentinel errors for store operations
var (
	ErrNameRequired   = errors.New("netlist name is required")
	ErrSourceRequired = errors.New("netlist source is required")
	ErrIDRequired     = errors.New("netlist ID is required")
	ErrNotFound       = errors.New("netlist not found")
)

// Netlist represents a stored netlist with metadata
type Netlist struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Source      string    `json:"source"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NetlistSummary represents a lightweight netlist reference for listing
type NetlistSummary struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	SourceBytes int       `json:"source_bytes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Store defines the interface for netlist storage operations
type Store interface {
	// Save creates a netlist entry and returns its ID
	Save(name, description, source string) (string, error)

	// Update replaces an existing netlist
	Update(id, name, description, source string) error

	// Load retrieves a netlist by ID
	Load(id string) (*Netlist, error)

	// Delete removes a netlist by ID
	Delete(id string) error

	// List returns all netlist summaries
	List() []NetlistSummary

	// Exists checks if a netlist exists
	Exists(id string) bool
}

// InMemoryStore implements Store using in-memory storage
type InMemoryStore struct {
	netlists map[string]*Netlist
	mu       sync.RWMutex
}

// NewInMemoryStore creates a new in-memory netlist store
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		netlists: make(map[string]*Netlist),
	}
}

// Save creates a new netlist and returns its ID
func (s *InMemoryStore) Save(name, description, source string) (string, error) {
	if name == "" {
		return "", ErrNameRequired
	}
	if source == "" {
		return "", ErrSourceRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New().String()
	now := time.Now()

	s.netlists[id] = &Netlist{
		ID:          id,
		Name:        name,
		Description: description,
		Source:      source,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	return id, nil
}

// Update replaces an existing netlist
func (s *InMemoryStore) Update(id, name, description, source string) error {
	if id == "" {
		return ErrIDRequired
	}
	if name == "" {
		return ErrNameRequired
	}
	if source == "" {
		return ErrSourceRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	netlist, exists := s.netlists[id]
	if !exists {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	netlist.Name = name
	netlist.Description = description
	netlist.Source = source
	netlist.UpdatedAt = time.Now()

	return nil
}

// Load retrieves a netlist by ID
func (s *InMemoryStore) Load(id string) (*Netlist, error) {
	if id == "" {
		return nil, ErrIDRequired
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	netlist, exists := s.netlists[id]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	// Return a copy to prevent external modifications
	cp := *netlist
	return &cp, nil
}

// Delete removes a netlist by ID
func (s *InMemoryStore) Delete(id string) error {
	if id == "" {
		return ErrIDRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.netlists[id]; !exists {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	delete(s.netlists, id)

	return nil
}

// List returns all netlist summaries
func (s *InMemoryStore) List() []NetlistSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summaries := make([]NetlistSummary, 0, len(s.netlists))

	for _, n := range s.netlists {
		summaries = append(summaries, NetlistSummary{
			ID:          n.ID,
			Name:        n.Name,
			Description: n.Description,
			SourceBytes: len(n.Source),
			CreatedAt:   n.CreatedAt,
			UpdatedAt:   n.UpdatedAt,
		})
	}

	return summaries
}

// Exists checks if a netlist exists
func (s *InMemoryStore) Exists(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, exists := s.netlists[id]
	return exists
}
