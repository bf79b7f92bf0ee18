package notifications

import (
	"context"
	"strings"

	"medguardian/internal/platform/apperr"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListByOwner devuelve las notificaciones más recientes primero.
func (s *Service) ListByOwner(ctx context.Context, ownerUserID string, limit int) ([]Notification, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return nil, apperr.Invalid("owner_user_id", "is required")
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	return s.repo.ListByOwner(ctx, ownerUserID, limit)
}
