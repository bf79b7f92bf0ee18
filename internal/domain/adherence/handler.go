package adherence

import (
	"net/http"
	"strconv"

	"medguardian/internal/middleware"
	"medguardian/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

const (
	DefaultWindowDays = 7
	MaxWindowDays     = 365
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/intake/stats", statsHandler(svc))
}

type statsResponse struct {
	TotalExpected int `json:"total_expected"`
	TotalTaken    int `json:"total_taken"`
	AdherenceRate int `json:"adherence_rate"`
	Days          int `json:"days"`
}

// statsHandler godoc
// @Summary Estadísticas de adherencia
// @Description Dosis esperadas vs. tomadas en los últimos N días. La tasa puede superar 100.
// @Tags intake
// @Produce json
// @Param days query int false "Ventana en días (1-365). Por defecto 7"
// @Success 200 {object} statsResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "internal error"
// @Router /intake/stats [get]
func statsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, err := svc.ComputeAdherence(r.Context(), middleware.UserID(r.Context()), parseDays(r.URL.Query().Get("days")))
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, statsResponse{
			TotalExpected: st.TotalExpected,
			TotalTaken:    st.TotalTaken,
			AdherenceRate: st.AdherenceRate,
			Days:          st.Days,
		})
	}
}

// parseDays: vacío, inválido o <= 0 => DefaultWindowDays.
func parseDays(v string) int {
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return DefaultWindowDays
	}
	if n > MaxWindowDays {
		return MaxWindowDays
	}
	return n
}
