package intake

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"medguardian/internal/middleware"
	"medguardian/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

// Sin subrouter: /intake/stats lo registra el módulo de adherencia.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/intake", recordIntakeHandler(svc))
	r.Get("/intake", listIntakeHandler(svc))
}

type recordIntakeRequest struct {
	MedicationID string `json:"medication_id"`
	PhotoRef     string `json:"photo_ref"` // opcional
}

type recordResponse struct {
	ID           string    `json:"id"`
	MedicationID string    `json:"medication_id"`
	Timestamp    time.Time `json:"timestamp"`
	Date         string    `json:"date"`
	PhotoRef     string    `json:"photo_ref,omitempty"`
	Status       Status    `json:"status"`
}

type deliveryResponse struct {
	ContactID      string `json:"contact_id"`
	NotificationID string `json:"notification_id,omitempty"`
	Error          string `json:"error,omitempty"`
}

type recordIntakeResponse struct {
	Record        recordResponse     `json:"record"`
	Notified      int                `json:"notified"`
	NotifyFailed  int                `json:"notify_failed"`
	Notifications []deliveryResponse `json:"notifications"`
}

// recordIntakeHandler godoc
// @Summary Registrar toma de medicamento
// @Description Guarda la toma y notifica a cada familiar registrado. La fecha local se toma de `X-Timezone` (IANA, default UTC).
// @Tags intake
// @Accept json
// @Produce json
// @Param X-Timezone header string false "Zona horaria IANA del usuario"
// @Param payload body recordIntakeRequest true "Medicamento tomado"
// @Success 201 {object} recordIntakeResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "medication not found"
// @Router /intake [post]
func recordIntakeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req recordIntakeRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, err)
			return
		}

		out, err := svc.RecordIntake(r.Context(), middleware.UserID(r.Context()), RecordInput{
			MedicationID: req.MedicationID,
			PhotoRef:     req.PhotoRef,
			Location:     middleware.Location(r),
		})
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		deliveries := make([]deliveryResponse, 0, len(out.Notified.Deliveries))
		for _, d := range out.Notified.Deliveries {
			dr := deliveryResponse{ContactID: d.ContactID, NotificationID: d.NotificationID}
			if d.Err != nil {
				dr.Error = d.Err.Error()
			}
			deliveries = append(deliveries, dr)
		}

		httpx.WriteJSON(w, http.StatusCreated, recordIntakeResponse{
			Record:        toRecordResponse(out.Record),
			Notified:      out.Notified.Sent(),
			NotifyFailed:  out.Notified.Failed(),
			Notifications: deliveries,
		})
	}
}

// listIntakeHandler godoc
// @Summary Listar tomas
// @Tags intake
// @Produce json
// @Param start_date query string false "Día local mínimo (YYYY-MM-DD)"
// @Param end_date query string false "Día local máximo (YYYY-MM-DD)"
// @Param limit query int false "Máximo a devolver"
// @Success 200 {array} recordResponse
// @Failure 400 {string} string "invalid input"
// @Router /intake [get]
func listIntakeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		filter := ListFilter{
			DateFrom: strings.TrimSpace(q.Get("start_date")),
			DateTo:   strings.TrimSpace(q.Get("end_date")),
		}
		if v := q.Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				filter.Limit = n
			}
		}

		items, err := svc.ListByOwner(r.Context(), middleware.UserID(r.Context()), filter)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		out := make([]recordResponse, 0, len(items))
		for _, rec := range items {
			out = append(out, toRecordResponse(rec))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func toRecordResponse(r Record) recordResponse {
	return recordResponse{
		ID:           r.ID,
		MedicationID: r.MedicationID,
		Timestamp:    r.Timestamp,
		Date:         r.DateKey,
		PhotoRef:     r.PhotoRef,
		Status:       r.Status,
	}
}
