package v1_test

import (
	"context"
	"slices"
	"sync"

	"github.com/breeew/hairlog-api/internal/store"
	"github.com/breeew/hairlog-api/pkg/types"
)

type memoryStore struct {
	mu       sync.Mutex
	users    map[string]types.User
	profiles map[string]types.Profile
	entries  []types.JournalEntry

	createCalls int
	failWith    error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users:    make(map[string]types.User),
		profiles: make(map[string]types.Profile),
	}
}

func (m *memoryStore) UserStore() store.UserStore                 { return m }
func (m *memoryStore) ProfileStore() store.ProfileStore           { return (*memoryProfiles)(m) }
func (m *memoryStore) ContentRepository() store.ContentRepository { return (*memoryContent)(m) }

func (m *memoryStore) Transaction(ctx context.Context, f func(ctx context.Context) error) error {
	return f(ctx)
}

func (m *memoryStore) GetUser(ctx context.Context, id string) (*types.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (m *memoryStore) Create(ctx context.Context, data types.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[data.ID] = data
	return nil
}

type memoryProfiles memoryStore

func (m *memoryProfiles) Get(ctx context.Context, userID string) (*types.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	p, ok := m.profiles[userID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *memoryProfiles) CreateIfAbsent(ctx context.Context, data types.Profile) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return false, m.failWith
	}
	if _, ok := m.profiles[data.UserID]; ok {
		return false, nil
	}
	m.createCalls++
	m.profiles[data.UserID] = data
	return true, nil
}

type memoryContent memoryStore

func (m *memoryContent) ListRecentEntries(ctx context.Context, authorID, postType string, limit uint64) ([]types.JournalEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	var res []types.JournalEntry
	for _, e := range m.entries {
		if e.AuthorID == authorID && e.PostType == postType {
			res = append(res, e)
		}
	}
	slices.SortStableFunc(res, func(a, b types.JournalEntry) int {
		return int(b.CreatedAt - a.CreatedAt)
	})
	if uint64(len(res)) > limit {
		res = res[:limit]
	}
	return res, nil
}
