package realtime

import (
	"context"
	"sync"

	"taskhub/models"
)

// OnlineUser is one entry in the presence registry.
type OnlineUser struct {
	ID       uint        `json:"id"`
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
}

// Registry tracks which users currently hold a live connection. It is
// populated on connect and cleared on disconnect. The interface exists so
// the in-process table can be swapped for a distributed one when the
// service is scaled horizontally.
type Registry interface {
	Add(ctx context.Context, user OnlineUser) error
	Remove(ctx context.Context, userID uint) error
	List(ctx context.Context) ([]OnlineUser, error)
}

// MemoryRegistry is the default single-process registry.
type MemoryRegistry struct {
	mu    sync.RWMutex
	users map[uint]OnlineUser
}

func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{users: make(map[uint]OnlineUser)}
}

func (r *MemoryRegistry) Add(_ context.Context, user OnlineUser) error {
	r.mu.Lock()
	r.users[user.ID] = user
	r.mu.Unlock()
	return nil
}

func (r *MemoryRegistry) Remove(_ context.Context, userID uint) error {
	r.mu.Lock()
	delete(r.users, userID)
	r.mu.Unlock()
	return nil
}

func (r *MemoryRegistry) List(_ context.Context) ([]OnlineUser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	users := make([]OnlineUser, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	return users, nil
}
