package adherence

import (
	"context"
	"fmt"
	"strings"
	"time"

	"medguardian/internal/domain/intake"
	"medguardian/internal/domain/medications"
	"medguardian/internal/platform/apperr"
)

type MedicationLister interface {
	ListByOwner(ctx context.Context, ownerUserID string) ([]medications.Medication, error)
}

type RecordLister interface {
	ListByOwner(ctx context.Context, ownerUserID string, filter intake.ListFilter) ([]intake.Record, error)
}

type Service struct {
	meds    MedicationLister
	records RecordLister
	now     func() time.Time
}

func NewService(meds MedicationLister, records RecordLister) *Service {
	return &Service{
		meds:    meds,
		records: records,
		now:     time.Now,
	}
}

// ComputeAdherence lee medicamentos y tomas del usuario y delega en Compute.
// Solo devuelve error si falla la lectura; el cálculo en sí no falla.
// La lectura no es transaccional: una toma concurrente puede o no entrar.
func (s *Service) ComputeAdherence(ctx context.Context, ownerUserID string, days int) (Stats, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return Stats{}, apperr.Invalid("owner_user_id", "is required")
	}
	if days < 0 {
		days = 0
	}

	now := s.now().UTC()
	from := now.AddDate(0, 0, -days)

	meds, err := s.meds.ListByOwner(ctx, ownerUserID)
	if err != nil {
		return Stats{}, fmt.Errorf("compute adherence: list medications: %w", err)
	}
	records, err := s.records.ListByOwner(ctx, ownerUserID, intake.ListFilter{From: &from, To: &now})
	if err != nil {
		return Stats{}, fmt.Errorf("compute adherence: list records: %w", err)
	}

	return Compute(meds, records, days, now), nil
}
