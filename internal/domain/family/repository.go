package family

import "context"

type Repository interface {
	Create(ctx context.Context, c Contact) error
	Update(ctx context.Context, c Contact) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Contact, error)
	ListByOwner(ctx context.Context, ownerUserID string) ([]Contact, error)
}
