package notifications

import (
	"context"
	"fmt"
	"strings"
	"time"

	"medguardian/internal/domain/family"
	"medguardian/internal/platform/apperr"
	"medguardian/internal/platform/logger"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const DefaultConcurrency = 4

// Event describe la toma que se notifica.
type Event struct {
	OwnerUserID    string
	MedicationName string
	Status         Status
	OccurredAt     time.Time

	// Zona del usuario para la hora del mensaje. nil => UTC.
	Location *time.Location
}

// Delivery es el resultado individual de un contacto.
type Delivery struct {
	ContactID      string
	NotificationID string
	Err            error
}

type Result struct {
	Deliveries []Delivery
}

func (r Result) Sent() int {
	n := 0
	for _, d := range r.Deliveries {
		if d.Err == nil {
			n++
		}
	}
	return n
}

func (r Result) Failed() int {
	return len(r.Deliveries) - r.Sent()
}

type DispatcherOptions struct {
	Logger      logger.Logger
	Concurrency int // <= 0 => DefaultConcurrency
}

// Dispatcher crea una Notification por contacto.
// Las escrituras corren en paralelo (acotado) y Dispatch espera a todas antes de volver.
// El fallo de un contacto no cancela a los demás.
type Dispatcher struct {
	repo        Repository
	log         logger.Logger
	concurrency int
	newID       func() string
}

func NewDispatcher(repo Repository, opts DispatcherOptions) *Dispatcher {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	c := opts.Concurrency
	if c <= 0 {
		c = DefaultConcurrency
	}
	return &Dispatcher{
		repo:        repo,
		log:         log,
		concurrency: c,
		newID:       uuid.NewString,
	}
}

// Dispatch devuelve un Delivery por contacto, en el mismo orden de contacts.
func (d *Dispatcher) Dispatch(ctx context.Context, ev Event, contacts []family.Contact) Result {
	out := make([]Delivery, len(contacts))
	if len(contacts) == 0 {
		return Result{Deliveries: out}
	}

	msg := FormatMessage(ev)

	var g errgroup.Group
	g.SetLimit(d.concurrency)
	for i, c := range contacts {
		i, c := i, c
		g.Go(func() error {
			out[i] = d.deliver(ctx, ev, msg, c)
			return nil
		})
	}
	_ = g.Wait()

	for _, del := range out {
		if del.Err != nil {
			d.log.Warn("family notification failed", map[string]any{
				"owner_id":   ev.OwnerUserID,
				"contact_id": del.ContactID,
				"error":      del.Err.Error(),
			})
		}
	}
	return Result{Deliveries: out}
}

func (d *Dispatcher) deliver(ctx context.Context, ev Event, msg string, c family.Contact) Delivery {
	del := Delivery{ContactID: c.ID}

	if err := c.Validate(); err != nil {
		del.Err = fmt.Errorf("contact %q: %w", c.ID, err)
		return del
	}
	if c.OwnerUserID != ev.OwnerUserID {
		del.Err = fmt.Errorf("contact %q: %w", c.ID, apperr.ErrForbidden)
		return del
	}
	if err := ctx.Err(); err != nil {
		del.Err = err
		return del
	}

	n := Notification{
		ID:              d.newID(),
		OwnerUserID:     ev.OwnerUserID,
		FamilyContactID: c.ID,
		MedicationName:  ev.MedicationName,
		Status:          ev.Status,
		Message:         msg,
		Timestamp:       ev.OccurredAt,
	}
	if err := d.repo.Create(ctx, n); err != nil {
		del.Err = fmt.Errorf("store notification: %w", err)
		return del
	}

	del.NotificationID = n.ID
	return del
}

// FormatMessage arma el texto: "<medicamento> was <status> at <hora local>".
func FormatMessage(ev Event) string {
	loc := ev.Location
	if loc == nil {
		loc = time.UTC
	}
	status := ev.Status
	if status == "" {
		status = StatusTaken
	}
	return fmt.Sprintf("%s was %s at %s",
		strings.TrimSpace(ev.MedicationName),
		status,
		ev.OccurredAt.In(loc).Format("3:04:05 PM"),
	)
}
