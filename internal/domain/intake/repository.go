package intake

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, r Record) error
	ListByOwner(ctx context.Context, ownerUserID string, filter ListFilter) ([]Record, error)
}

// ListFilter: todos los campos son opcionales y los rangos son inclusivos.
type ListFilter struct {
	From *time.Time // timestamp >= From
	To   *time.Time // timestamp <= To

	DateFrom string // date_key >= DateFrom
	DateTo   string // date_key <= DateTo

	Limit int // 0 = sin límite
}
