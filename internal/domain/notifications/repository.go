package notifications

import "context"

type Repository interface {
	Create(ctx context.Context, n Notification) error
	ListByOwner(ctx context.Context, ownerUserID string, limit int) ([]Notification, error)
}
