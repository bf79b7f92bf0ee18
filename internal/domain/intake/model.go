package intake

import "time"

type Status string

const (
	StatusTaken Status = "taken"
)

// DateKeyLayout es el formato del día calendario local de la toma.
const DateKeyLayout = "2006-01-02"

// Record es una toma registrada. Inmutable: no hay update ni delete.
type Record struct {
	ID           string
	OwnerUserID  string
	MedicationID string

	Timestamp time.Time // UTC
	DateKey   string    // día local del usuario, YYYY-MM-DD

	PhotoRef string // opcional
	Status   Status
}
