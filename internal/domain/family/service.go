package family

import (
	"context"
	"errors"
	"strings"
	"time"

	"medguardian/internal/platform/apperr"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name         string
	Relationship string
	Phone        string
	Email        string
}

type UpdateInput struct {
	Name         *string
	Relationship *string
	Phone        *string
	Email        *string
}

func (s *Service) Create(ctx context.Context, ownerUserID string, in CreateInput) (Contact, error) {
	now := s.now()
	c := Contact{
		ID:           uuid.NewString(),
		OwnerUserID:  strings.TrimSpace(ownerUserID),
		Name:         strings.TrimSpace(in.Name),
		Relationship: strings.TrimSpace(in.Relationship),
		Phone:        strings.TrimSpace(in.Phone),
		Email:        strings.TrimSpace(in.Email),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := c.Validate(); err != nil {
		return Contact{}, err
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return Contact{}, err
	}
	return c, nil
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]Contact, error) {
	return s.repo.ListByOwner(ctx, ownerUserID)
}

func (s *Service) GetOwned(ctx context.Context, ownerUserID, id string) (Contact, error) {
	c, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return Contact{}, apperr.NotFound("contact")
		}
		return Contact{}, err
	}
	if c.OwnerUserID != ownerUserID {
		return Contact{}, apperr.ErrForbidden
	}
	return c, nil
}

func (s *Service) Update(ctx context.Context, ownerUserID, id string, in UpdateInput) (Contact, error) {
	c, err := s.GetOwned(ctx, ownerUserID, id)
	if err != nil {
		return Contact{}, err
	}

	if in.Name != nil {
		c.Name = strings.TrimSpace(*in.Name)
	}
	if in.Relationship != nil {
		c.Relationship = strings.TrimSpace(*in.Relationship)
	}
	if in.Phone != nil {
		c.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Email != nil {
		c.Email = strings.TrimSpace(*in.Email)
	}
	if err := c.Validate(); err != nil {
		return Contact{}, err
	}

	c.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, c); err != nil {
		return Contact{}, err
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, ownerUserID, id string) error {
	c, err := s.GetOwned(ctx, ownerUserID, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, c.ID)
}
