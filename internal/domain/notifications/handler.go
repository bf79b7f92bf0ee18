package notifications

import (
	"net/http"
	"strconv"
	"time"

	"medguardian/internal/middleware"
	"medguardian/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/notifications", listNotificationsHandler(svc))
}

type notificationResponse struct {
	ID              string    `json:"id"`
	FamilyContactID string    `json:"family_contact_id"`
	MedicationName  string    `json:"medication_name"`
	Status          Status    `json:"status"`
	Message         string    `json:"message"`
	Timestamp       time.Time `json:"timestamp"`
}

// listNotificationsHandler godoc
// @Summary Listar notificaciones enviadas a la familia
// @Tags notifications
// @Produce json
// @Param limit query int false "Máximo a devolver (1-200). Por defecto 50"
// @Success 200 {array} notificationResponse
// @Failure 401 {string} string "unauthorized"
// @Router /notifications [get]
func listNotificationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				limit = n
			}
		}

		items, err := svc.ListByOwner(r.Context(), middleware.UserID(r.Context()), limit)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		out := make([]notificationResponse, 0, len(items))
		for _, n := range items {
			out = append(out, notificationResponse{
				ID:              n.ID,
				FamilyContactID: n.FamilyContactID,
				MedicationName:  n.MedicationName,
				Status:          n.Status,
				Message:         n.Message,
				Timestamp:       n.Timestamp,
			})
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}
