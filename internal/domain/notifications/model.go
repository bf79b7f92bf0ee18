package notifications

import "time"

type Status string

const (
	StatusTaken Status = "taken"
)

// Notification es el aviso que recibe un familiar. Se escribe una vez y no se modifica.
type Notification struct {
	ID              string
	OwnerUserID     string
	FamilyContactID string

	// Copia del nombre al momento de la toma; no sigue renombres posteriores.
	MedicationName string

	Status  Status
	Message string

	Timestamp time.Time
}
