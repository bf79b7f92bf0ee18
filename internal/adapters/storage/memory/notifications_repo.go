package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"medguardian/internal/domain/notifications"
)

type notificationRepo struct {
	mu    sync.RWMutex
	items []notifications.Notification
	ids   map[string]struct{}
}

func NewNotificationRepo() notifications.Repository {
	return &notificationRepo{
		ids: make(map[string]struct{}),
	}
}

func (r *notificationRepo) Create(ctx context.Context, n notifications.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n.ID == "" {
		return errors.New("notification id required")
	}
	if _, exists := r.ids[n.ID]; exists {
		return errors.New("notification already exists")
	}
	r.ids[n.ID] = struct{}{}
	r.items = append(r.items, n)
	return nil
}

func (r *notificationRepo) ListByOwner(ctx context.Context, ownerUserID string, limit int) ([]notifications.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]notifications.Notification, 0)
	for _, n := range r.items {
		if n.OwnerUserID == ownerUserID {
			out = append(out, n)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
