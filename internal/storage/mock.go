package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/jasonfuller/relic-quest/internal/auth"
	"github.com/jasonfuller/relic-quest/pkg/level"
	"github.com/jasonfuller/relic-quest/pkg/record"
)

// MockStorage is an in-memory implementation of Storage for testing
type MockStorage struct {
	mu          sync.RWMutex
	definitions map[string]*level.Definition
	saves       map[string]*record.GameSave
	results     []*record.GameResult
	users       map[string]*auth.User
	pingError   error
}

// Ensure MockStorage implements Storage interface
var _ Storage = (*MockStorage)(nil)

// NewMockStorage creates a new mock storage
func NewMockStorage() *MockStorage {
	return &MockStorage{
		definitions: make(map[string]*level.Definition),
		saves:       make(map[string]*record.GameSave),
		users:       make(map[string]*auth.User),
	}
}

// SetPingError configures the mock to fail on ping with the given error
func (m *MockStorage) SetPingError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pingError = err
}

// AddLevelDefinition seeds a level definition into the mock
func (m *MockStorage) AddLevelDefinition(defn *level.Definition) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.definitions[defn.ID] = defn
}

func (m *MockStorage) Ping(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pingError
}

func (m *MockStorage) Close() error {
	return nil
}

func (m *MockStorage) ListLevelDefinitions(ctx context.Context) ([]*level.Definition, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	definitions := make([]*level.Definition, 0, len(m.definitions))
	for _, defn := range m.definitions {
		definitions = append(definitions, defn)
	}
	sort.Slice(definitions, func(i, j int) bool { return definitions[i].ID < definitions[j].ID })
	return definitions, nil
}

func (m *MockStorage) GetLevelDefinition(ctx context.Context, id string) (*level.Definition, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.definitions[id], nil
}

func (m *MockStorage) SaveActive(ctx context.Context, save *record.GameSave) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves[save.UserEmail] = save
	return nil
}

func (m *MockStorage) GetActiveSave(ctx context.Context, userEmail string) (*record.GameSave, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.saves[userEmail], nil
}

func (m *MockStorage) DeleteActiveSave(ctx context.Context, userEmail string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.saves, userEmail)
	return nil
}

func (m *MockStorage) AddResult(ctx context.Context, result *record.GameResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, result)
	return nil
}

func (m *MockStorage) TopScores(ctx context.Context, levelID string, limit int) ([]*record.GameResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if limit <= 0 {
		limit = 10
	}

	var matched []*record.GameResult
	for _, r := range m.results {
		if r.LevelID == levelID {
			matched = append(matched, r)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool { return matched[i].Score > matched[j].Score })

	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (m *MockStorage) ResultsByUser(ctx context.Context, userEmail string) ([]*record.GameResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var matched []*record.GameResult
	for _, r := range m.results {
		if r.UserEmail == userEmail {
			matched = append(matched, r)
		}
	}
	return matched, nil
}

func (m *MockStorage) CreateUser(ctx context.Context, user *auth.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.users[user.Email]; exists {
		return ErrUserExists
	}
	m.users[user.Email] = user
	return nil
}

func (m *MockStorage) GetUser(ctx context.Context, email string) (*auth.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.users[email], nil
}
