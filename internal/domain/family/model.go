package family

import (
	"net/mail"
	"strings"
	"time"

	"medguardian/internal/platform/apperr"
)

// Contact es un familiar que recibe aviso de cada toma registrada.
// Phone + Email forman la información de contacto.
type Contact struct {
	ID          string
	OwnerUserID string

	Name         string
	Relationship string // "daughter", "spouse", ...

	Phone string
	Email string // opcional

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate revisa que el contacto tenga los datos mínimos.
// El dispatcher la usa para aislar contactos corruptos sin abortar el resto.
func (c Contact) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return apperr.Invalid("id", "is required")
	}
	if strings.TrimSpace(c.OwnerUserID) == "" {
		return apperr.Invalid("owner_user_id", "is required")
	}
	if strings.TrimSpace(c.Name) == "" {
		return apperr.Invalid("name", "is required")
	}
	if strings.TrimSpace(c.Relationship) == "" {
		return apperr.Invalid("relationship", "is required")
	}
	if strings.TrimSpace(c.Phone) == "" {
		return apperr.Invalid("phone", "is required")
	}
	if c.Email != "" {
		if _, err := mail.ParseAddress(c.Email); err != nil {
			return apperr.Invalid("email", "is not a valid address")
		}
	}
	return nil
}
