package intake

import (
	"context"
	"fmt"
	"strings"
	"time"

	"medguardian/internal/domain/family"
	"medguardian/internal/domain/medications"
	"medguardian/internal/domain/notifications"
	"medguardian/internal/platform/apperr"
	"medguardian/internal/platform/logger"

	"github.com/google/uuid"
)

// MedicationFinder resuelve un medicamento validando el dueño.
type MedicationFinder interface {
	GetOwned(ctx context.Context, ownerUserID, id string) (medications.Medication, error)
}

type ContactLister interface {
	ListByOwner(ctx context.Context, ownerUserID string) ([]family.Contact, error)
}

type Notifier interface {
	Dispatch(ctx context.Context, ev notifications.Event, contacts []family.Contact) notifications.Result
}

type Service struct {
	repo     Repository
	meds     MedicationFinder
	contacts ContactLister
	notifier Notifier
	log      logger.Logger
	now      func() time.Time
}

func NewService(repo Repository, meds MedicationFinder, contacts ContactLister, notifier Notifier, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:     repo,
		meds:     meds,
		contacts: contacts,
		notifier: notifier,
		log:      log,
		now:      time.Now,
	}
}

// DispatchTimeout acota el aviso a la familia una vez guardada la toma.
const DispatchTimeout = 30 * time.Second

type RecordInput struct {
	MedicationID string
	PhotoRef     string

	// Zona del usuario: define DateKey y la hora del mensaje. nil => UTC.
	Location *time.Location
}

// Recorded es la toma guardada más el resultado del aviso a cada familiar.
type Recorded struct {
	Record   Record
	Notified notifications.Result
}

// RecordIntake valida el medicamento, guarda la toma y avisa a la familia.
// Nada se escribe si el medicamento no existe, no es del usuario o no se
// pudieron leer sus contactos. Los avisos terminan antes de retornar.
func (s *Service) RecordIntake(ctx context.Context, ownerUserID string, in RecordInput) (Recorded, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return Recorded{}, apperr.Invalid("owner_user_id", "is required")
	}

	med, err := s.meds.GetOwned(ctx, ownerUserID, strings.TrimSpace(in.MedicationID))
	if err != nil {
		return Recorded{}, fmt.Errorf("record intake: %w", err)
	}

	contacts, err := s.contacts.ListByOwner(ctx, ownerUserID)
	if err != nil {
		return Recorded{}, fmt.Errorf("record intake: list contacts: %w", err)
	}

	loc := in.Location
	if loc == nil {
		loc = time.UTC
	}
	now := s.now().UTC()

	rec := Record{
		ID:           uuid.NewString(),
		OwnerUserID:  ownerUserID,
		MedicationID: med.ID,
		Timestamp:    now,
		DateKey:      now.In(loc).Format(DateKeyLayout),
		PhotoRef:     strings.TrimSpace(in.PhotoRef),
		Status:       StatusTaken,
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return Recorded{}, fmt.Errorf("record intake: %w", err)
	}

	// La toma ya quedó guardada: los avisos no dependen de que el cliente siga conectado.
	dispatchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), DispatchTimeout)
	defer cancel()

	res := s.notifier.Dispatch(dispatchCtx, notifications.Event{
		OwnerUserID:    ownerUserID,
		MedicationName: med.Name,
		Status:         notifications.StatusTaken,
		OccurredAt:     now,
		Location:       loc,
	}, contacts)

	s.log.Info("intake recorded", map[string]any{
		"owner_id":        ownerUserID,
		"record_id":       rec.ID,
		"medication_id":   med.ID,
		"notified":        res.Sent(),
		"notify_failures": res.Failed(),
	})

	return Recorded{Record: rec, Notified: res}, nil
}

// ListByOwner devuelve las tomas del usuario, más recientes primero.
func (s *Service) ListByOwner(ctx context.Context, ownerUserID string, filter ListFilter) ([]Record, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return nil, apperr.Invalid("owner_user_id", "is required")
	}
	for field, v := range map[string]string{"start_date": filter.DateFrom, "end_date": filter.DateTo} {
		if v == "" {
			continue
		}
		if _, err := time.Parse(DateKeyLayout, v); err != nil {
			return nil, apperr.Invalid(field, "must be YYYY-MM-DD")
		}
	}
	return s.repo.ListByOwner(ctx, ownerUserID, filter)
}
