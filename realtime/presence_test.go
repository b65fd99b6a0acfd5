package realtime

import (
	"context"
	"testing"

	"taskhub/models"
)

func TestMemoryRegistryLifecycle(t *testing.T) {
	reg := NewMemoryRegistry()
	ctx := context.Background()

	if err := reg.Add(ctx, OnlineUser{ID: 1, Username: "alice", Role: models.RoleAdmin}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := reg.Add(ctx, OnlineUser{ID: 2, Username: "bob", Role: models.RoleMember}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	users, err := reg.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("len(users) = %d, want 2", len(users))
	}

	if err := reg.Remove(ctx, 1); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	users, _ = reg.List(ctx)
	if len(users) != 1 || users[0].ID != 2 {
		t.Errorf("after remove, users = %+v", users)
	}
}

func TestMemoryRegistryAddIsIdempotentPerUser(t *testing.T) {
	reg := NewMemoryRegistry()
	ctx := context.Background()

	_ = reg.Add(ctx, OnlineUser{ID: 1, Username: "alice", Role: models.RoleMember})
	_ = reg.Add(ctx, OnlineUser{ID: 1, Username: "alice", Role: models.RoleManager})

	users, _ := reg.List(ctx)
	if len(users) != 1 {
		t.Fatalf("len(users) = %d, want 1", len(users))
	}
	if users[0].Role != models.RoleManager {
		t.Errorf("latest entry should win, got role %s", users[0].Role)
	}
}

func TestMemoryRegistryRemoveUnknownUser(t *testing.T) {
	reg := NewMemoryRegistry()
	if err := reg.Remove(context.Background(), 99); err != nil {
		t.Errorf("Remove of unknown user should be a no-op, got %v", err)
	}
}
