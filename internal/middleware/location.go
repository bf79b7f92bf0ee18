package middleware

import (
	"net/http"
	"strings"
	"time"
	_ "time/tzdata" // zonas IANA aunque la imagen no traiga zoneinfo
)

// Location devuelve la zona horaria del cliente (header X-Timezone, IANA).
// Se usa para la fecha local de cada toma y la hora del mensaje a la familia.
// Valores vacíos o inválidos => UTC.
func Location(r *http.Request) *time.Location {
	name := strings.TrimSpace(r.Header.Get("X-Timezone"))
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}
