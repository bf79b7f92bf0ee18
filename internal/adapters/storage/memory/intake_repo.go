package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"medguardian/internal/domain/intake"
)

// intakeRepo solo agrega: las tomas no se modifican ni se borran.
type intakeRepo struct {
	mu   sync.RWMutex
	byID map[string]intake.Record
}

func NewIntakeRepo() intake.Repository {
	return &intakeRepo{
		byID: make(map[string]intake.Record),
	}
}

func (r *intakeRepo) Create(ctx context.Context, rec intake.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rec.ID == "" {
		return errors.New("intake record id required")
	}
	if _, exists := r.byID[rec.ID]; exists {
		return errors.New("intake record already exists")
	}
	r.byID[rec.ID] = rec
	return nil
}

func (r *intakeRepo) ListByOwner(ctx context.Context, ownerUserID string, filter intake.ListFilter) ([]intake.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]intake.Record, 0)
	for _, rec := range r.byID {
		if rec.OwnerUserID != ownerUserID {
			continue
		}

		// Rango de timestamp (inclusivo)
		if filter.From != nil && rec.Timestamp.Before(*filter.From) {
			continue
		}
		if filter.To != nil && rec.Timestamp.After(*filter.To) {
			continue
		}

		// Rango de día local; YYYY-MM-DD compara bien como string
		if filter.DateFrom != "" && rec.DateKey < filter.DateFrom {
			continue
		}
		if filter.DateTo != "" && rec.DateKey > filter.DateTo {
			continue
		}

		out = append(out, rec)
	}

	// Más reciente primero
	sort.Slice(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})

	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}
