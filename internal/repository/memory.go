package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/vibe-gaming/cities/internal/domain"
)

// MemoryStore keeps city documents in process memory. It backs both the
// Cities and States interfaces with the same ordering rules as the MongoDB
// implementation and backs the service and HTTP tests.
type MemoryStore struct {
	mu     sync.RWMutex
	cities map[string]domain.City
	// Err, when set, is returned by every operation.
	Err error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{cities: make(map[string]domain.City)}
}

// NewMemoryRepositories returns Repositories backed by store.
func NewMemoryRepositories(store *MemoryStore) *Repositories {
	return &Repositories{
		Cities: store,
		States: store,
	}
}

func (m *MemoryStore) Create(_ context.Context, city *domain.City) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}
	if _, ok := m.cities[city.ID]; ok {
		return domain.ErrDuplicateEntry
	}
	m.cities[city.ID] = domain.CityFromDocument(city.Document())

	return nil
}

func (m *MemoryStore) GetOneByID(_ context.Context, id string) (*domain.City, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.Err != nil {
		return nil, m.Err
	}
	city, ok := m.cities[id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	return &city, nil
}

func (m *MemoryStore) GetIDsByState(_ context.Context, state string, window domain.Window) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.Err != nil {
		return nil, m.Err
	}
	ids := m.idsInState(state)

	start := min(window.Offset, int64(len(ids)))
	end := min(start+window.Limit, int64(len(ids)))

	out := make([]string, 0, end-start)
	return append(out, ids[start:end]...), nil
}

func (m *MemoryStore) CountByState(_ context.Context, state string) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.Err != nil {
		return 0, m.Err
	}
	return int64(len(m.idsInState(state))), nil
}

func (m *MemoryStore) GetAll(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.Err != nil {
		return nil, m.Err
	}
	seen := make(map[string]struct{})
	states := make([]string, 0)
	for _, c := range m.cities {
		if _, ok := seen[c.State]; ok {
			continue
		}
		seen[c.State] = struct{}{}
		states = append(states, c.State)
	}
	sort.Strings(states)

	return states, nil
}

func (m *MemoryStore) Exists(_ context.Context, state string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.Err != nil {
		return false, m.Err
	}
	return len(m.idsInState(state)) > 0, nil
}

func (m *MemoryStore) idsInState(state string) []string {
	ids := make([]string, 0)
	for id, c := range m.cities {
		if c.State == state {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}
