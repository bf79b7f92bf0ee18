package auth

import (
	"context"
	"errors"
)

// ErrMissingOwner: el token es válido pero no identifica a ningún dueño.
var ErrMissingOwner = errors.New("claims missing owner id")

// AuthVerifier valida un token Bearer. La implementación de producción es jwtauth.Verifier.
// Debe devolver claims con OwnerID no vacío o un error.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
