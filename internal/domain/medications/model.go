package medications

import "time"

// Medication es un medicamento registrado por un usuario.
type Medication struct {
	ID          string
	OwnerUserID string

	Name string

	// Frequency es texto libre ("2 times daily", "once daily").
	// Se interpreta recién al calcular adherencia.
	Frequency string

	Dosage       string // "500mg", opcional
	ReminderTime string // "HH:MM", opcional

	CreatedAt time.Time
	UpdatedAt time.Time
}
