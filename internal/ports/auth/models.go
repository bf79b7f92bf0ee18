package auth

import "strings"

// Claims es la identidad del request. UserID es el dueño de medicamentos,
// tomas y familiares; con JWT sale del claim sub.
type Claims struct {
	UserID   string
	Email    string
	TenantID string
}

// OwnerID es el UserID normalizado que reciben los servicios como ownerUserID.
func (c Claims) OwnerID() string {
	return strings.TrimSpace(c.UserID)
}

// Anonymous indica que no hay dueño: RequireUser responde 401.
func (c Claims) Anonymous() bool {
	return c.OwnerID() == ""
}
