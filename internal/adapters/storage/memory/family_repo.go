package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"medguardian/internal/domain/family"
	"medguardian/internal/platform/apperr"
)

type familyRepo struct {
	mu   sync.RWMutex
	byID map[string]family.Contact
}

func NewFamilyRepo() family.Repository {
	return &familyRepo{
		byID: make(map[string]family.Contact),
	}
}

func (r *familyRepo) Create(ctx context.Context, c family.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(c.ID) == "" {
		return errors.New("contact id required")
	}
	if _, exists := r.byID[c.ID]; exists {
		return errors.New("contact already exists")
	}
	r.byID[c.ID] = c
	return nil
}

func (r *familyRepo) Update(ctx context.Context, c family.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[c.ID]; !exists {
		return apperr.ErrNotFound
	}
	r.byID[c.ID] = c
	return nil
}

func (r *familyRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return apperr.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *familyRepo) GetByID(ctx context.Context, id string) (family.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return family.Contact{}, apperr.ErrNotFound
	}
	return c, nil
}

func (r *familyRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]family.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]family.Contact, 0)
	for _, c := range r.byID {
		if c.OwnerUserID == ownerUserID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
