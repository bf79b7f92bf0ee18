package family

import (
	"net/http"
	"time"

	"medguardian/internal/middleware"
	"medguardian/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/family", func(fr chi.Router) {
		fr.Post("/", createContactHandler(svc))
		fr.Get("/", listContactsHandler(svc))
		fr.Patch("/{contactID}", updateContactHandler(svc))
		fr.Delete("/{contactID}", deleteContactHandler(svc))
	})
}

type createContactRequest struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
}

type updateContactRequest struct {
	Name         *string `json:"name"`
	Relationship *string `json:"relationship"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email"`
}

type contactResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Relationship string    `json:"relationship"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// createContactHandler godoc
// @Summary Agregar familiar
// @Description Cada familiar registrado recibe una notificación por cada toma.
// @Tags family
// @Accept json
// @Produce json
// @Param payload body createContactRequest true "Datos del familiar"
// @Success 201 {object} contactResponse
// @Failure 400 {string} string "invalid input"
// @Failure 401 {string} string "unauthorized"
// @Router /family [post]
func createContactHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createContactRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, err)
			return
		}

		c, err := svc.Create(r.Context(), middleware.UserID(r.Context()), CreateInput{
			Name:         req.Name,
			Relationship: req.Relationship,
			Phone:        req.Phone,
			Email:        req.Email,
		})
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, toContactResponse(c))
	}
}

func listContactsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByOwner(r.Context(), middleware.UserID(r.Context()))
		if err != nil {
			httpx.WriteError(w, err)
			return
		}

		out := make([]contactResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toContactResponse(c))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func updateContactHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateContactRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, err)
			return
		}

		c, err := svc.Update(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "contactID"), UpdateInput{
			Name:         req.Name,
			Relationship: req.Relationship,
			Phone:        req.Phone,
			Email:        req.Email,
		})
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toContactResponse(c))
	}
}

func deleteContactHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "contactID")); err != nil {
			httpx.WriteError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toContactResponse(c Contact) contactResponse {
	return contactResponse{
		ID:           c.ID,
		Name:         c.Name,
		Relationship: c.Relationship,
		Phone:        c.Phone,
		Email:        c.Email,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
