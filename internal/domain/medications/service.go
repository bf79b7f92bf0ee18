package medications

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
	Frequency    string
	Dosage       string
	ReminderTime string
}

// UpdateInput usa punteros: nil = no tocar.
type UpdateInput struct {
	Name         *string
	Frequency    *string
	Dosage       *string
	ReminderTime *string
}

func (s *Service) Create(ctx context.Context, ownerUserID string, in CreateInput) (Medication, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return Medication{}, apperr.Invalid("owner_user_id", "is required")
	}

	now := s.now()
	m := Medication{
		ID:           uuid.NewString(),
		OwnerUserID:  ownerUserID,
		Name:         strings.TrimSpace(in.Name),
		Frequency:    strings.TrimSpace(in.Frequency),
		Dosage:       strings.TrimSpace(in.Dosage),
		ReminderTime: strings.TrimSpace(in.ReminderTime),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := validate(m); err != nil {
		return Medication{}, err
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return Medication{}, err
	}
	return m, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Medication, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Medication{}, apperr.NotFound("medication")
	}
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return Medication{}, apperr.NotFound("medication")
		}
		return Medication{}, err
	}
	return m, nil
}

// GetOwned devuelve el medicamento solo si pertenece a ownerUserID.
// Sin dueño coincidente => ErrForbidden.
func (s *Service) GetOwned(ctx context.Context, ownerUserID, id string) (Medication, error) {
	m, err := s.GetByID(ctx, id)
	if err != nil {
		return Medication{}, err
	}
	if m.OwnerUserID != ownerUserID {
		return Medication{}, apperr.ErrForbidden
	}
	return m, nil
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]Medication, error) {
	return s.repo.ListByOwner(ctx, ownerUserID)
}

func (s *Service) Update(ctx context.Context, ownerUserID, id string, in UpdateInput) (Medication, error) {
	m, err := s.GetOwned(ctx, ownerUserID, id)
	if err != nil {
		return Medication{}, err
	}

	if in.Name != nil {
		m.Name = strings.TrimSpace(*in.Name)
	}
	if in.Frequency != nil {
		m.Frequency = strings.TrimSpace(*in.Frequency)
	}
	if in.Dosage != nil {
		m.Dosage = strings.TrimSpace(*in.Dosage)
	}
	if in.ReminderTime != nil {
		m.ReminderTime = strings.TrimSpace(*in.ReminderTime)
	}
	if err := validate(m); err != nil {
		return Medication{}, err
	}

	m.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, m); err != nil {
		return Medication{}, err
	}
	return m, nil
}

// Delete no toca los registros de toma: el historial se conserva.
func (s *Service) Delete(ctx context.Context, ownerUserID, id string) error {
	m, err := s.GetOwned(ctx, ownerUserID, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, m.ID)
}

func validate(m Medication) error {
	if m.Name == "" {
		return apperr.Invalid("name", "is required")
	}
	// Frecuencia sin números se acepta (cuenta como 1 dosis diaria).
	if m.Frequency == "" {
		return apperr.Invalid("frequency", "is required")
	}
	if m.ReminderTime != "" {
		if _, err := time.Parse("15:04", m.ReminderTime); err != nil {
			return apperr.Invalid("reminder_time", "must be HH:MM")
		}
	}
	return nil
}
