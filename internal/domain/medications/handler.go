package medications

import (
	"net/http"
	"time"

	"medguardian/internal/middleware"
	"medguardian/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes asume que el router ya aplicó middleware.RequireUser.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/medications", func(mr chi.Router) {
		mr.Post("/", createMedicationHandler(svc))
		mr.Get("/", listMedicationsHandler(svc))
		mr.Get("/{medicationID}", getMedicationHandler(svc))
		mr.Patch("/{medicationID}", updateMedicationHandler(svc))
		mr.Delete("/{medicationID}", deleteMedicationHandler(svc))
	})
}

type createMedicationRequest struct {
	Name         string `json:"name"`
	Frequency    string `json:"frequency"` // "2 times daily"
	Dosage       string `json:"dosage"`
	ReminderTime string `json:"reminder_time"` // HH:MM opcional
}

type updateMedicationRequest struct {
	Name         *string `json:"name"`
	Frequency    *string `json:"frequency"`
	Dosage       *string `json:"dosage"`
	ReminderTime *string `json:"reminder_time"`
}

type medicationResponse struct {
	ID           string    `json:"id"`
	OwnerUserID  string    `json:"owner_user_id"`
	Name         string    `json:"name"`
	Frequency    string    `json:"frequency"`
	Dosage       string    `json:"dosage,omitempty"`
	ReminderTime string    `json:"reminder_time,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// createMedicationHandler godoc
// @Summary Registrar medicamento
// @Tags medications
// @Accept json
// @Produce json
// @Param payload body createMedicationRequest true "Datos del medicamento"
// @Success 201 {object} medicationResponse
// @Failure 400 {string} string "invalid input"
// @Failure 401 {string} string "unauthorized"
// @Router /medications [post]
func createMedicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createMedicationRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, err)
			return
		}

		m, err := svc.Create(r.Context(), middleware.UserID(r.Context()), CreateInput{
			Name:         req.Name,
			Frequency:    req.Frequency,
			Dosage:       req.Dosage,
			ReminderTime: req.ReminderTime,
		})
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, toMedicationResponse(m))
	}
}

// listMedicationsHandler godoc
// @Summary Listar mis medicamentos
// @Tags medications
// @Produce json
// @Success 200 {array} medicationResponse
// @Failure 401 {string} string "unauthorized"
// @Router /medications [get]
func listMedicationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByOwner(r.Context(), middleware.UserID(r.Context()))
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		out := make([]medicationResponse, 0, len(items))
		for _, m := range items {
			out = append(out, toMedicationResponse(m))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func getMedicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := svc.GetOwned(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "medicationID"))
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toMedicationResponse(m))
	}
}

// updateMedicationHandler godoc
// @Summary Actualizar medicamento (PATCH parcial)
// @Tags medications
// @Accept json
// @Produce json
// @Param medicationID path string true "ID del medicamento"
// @Param payload body updateMedicationRequest true "Campos a modificar"
// @Success 200 {object} medicationResponse
// @Failure 400 {string} string "invalid input"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "medication not found"
// @Router /medications/{medicationID} [patch]
func updateMedicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateMedicationRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, err)
			return
		}

		m, err := svc.Update(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "medicationID"), UpdateInput{
			Name:         req.Name,
			Frequency:    req.Frequency,
			Dosage:       req.Dosage,
			ReminderTime: req.ReminderTime,
		})
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toMedicationResponse(m))
	}
}

func deleteMedicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "medicationID")); err != nil {
			httpx.WriteError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toMedicationResponse(m Medication) medicationResponse {
	return medicationResponse{
		ID:           m.ID,
		OwnerUserID:  m.OwnerUserID,
		Name:         m.Name,
		Frequency:    m.Frequency,
		Dosage:       m.Dosage,
		ReminderTime: m.ReminderTime,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
