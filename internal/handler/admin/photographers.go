package admin

import (
	"net/http"
	"strconv"

	"github.com/capturely/platform/internal/domain"
	"github.com/capturely/platform/internal/handler"
	"github.com/capturely/platform/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// PhotographersHandler manages photographer profiles and moderation.
type PhotographersHandler struct {
	photographerSvc *service.PhotographerService
}

// NewPhotographersHandler creates a new PhotographersHandler.
func NewPhotographersHandler(photographerSvc *service.PhotographerService) *PhotographersHandler {
	return &PhotographersHandler{photographerSvc: photographerSvc}
}

func photographerFilterFromQuery(r *http.Request) domain.PhotographerFilter {
	q := r.URL.Query()
	minRating, _ := strconv.ParseFloat(q.Get("min_rating"), 64)
	return domain.PhotographerFilter{
		Search:    q.Get("q"),
		Status:    q.Get("status"),
		Specialty: q.Get("specialty"),
		Location:  q.Get("location"),
		MinRating: minRating,
	}
}

// List handles GET /admin/photographers.
func (h *PhotographersHandler) List(w http.ResponseWriter, r *http.Request) {
	photographers, err := h.photographerSvc.List(r.Context(), photographerFilterFromQuery(r))
	if err != nil {
		handler.RespondError(w, err)
		return
	}

	type listedPhotographer struct {
		*domain.Photographer
		Actions []string `json:"actions"`
	}
	out := make([]listedPhotographer, 0, len(photographers))
	for _, p := range photographers {
		out = append(out, listedPhotographer{Photographer: p, Actions: domain.PhotographerActionsFor(p.Status)})
	}
	handler.RespondJSON(w, http.StatusOK, out)
}

// Get handles GET /admin/photographers/{id}.
func (h *PhotographersHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		handler.RespondError(w, domain.ErrValidation("invalid photographer id"))
		return
	}

	p, err := h.photographerSvc.Get(r.Context(), id)
	if err != nil {
		handler.RespondError(w, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, p)
}

// Create handles POST /admin/photographers.
func (h *PhotographersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.PhotographerInput
	if err := handler.DecodeJSON(r, &input); err != nil {
		handler.RespondError(w, domain.ErrValidation("invalid request body"))
		return
	}

	p, err := h.photographerSvc.Create(r.Context(), input)
	if err != nil {
		handler.RespondError(w, err)
		return
	}
	handler.RespondJSON(w, http.StatusCreated, p)
}

// Update handles PUT /admin/photographers/{id}.
func (h *PhotographersHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		handler.RespondError(w, domain.ErrValidation("invalid photographer id"))
		return
	}

	var input service.PhotographerInput
	if err := handler.DecodeJSON(r, &input); err != nil {
		handler.RespondError(w, domain.ErrValidation("invalid request body"))
		return
	}

	p, err := h.photographerSvc.Update(r.Context(), id, input)
	if err != nil {
		handler.RespondError(w, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, p)
}

// UpdateStatus handles PATCH /admin/photographers/{id}/status. The body
// carries the target status; approve, suspend and reactivate all come
// through here.
func (h *PhotographersHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		handler.RespondError(w, domain.ErrValidation("invalid photographer id"))
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := handler.DecodeJSON(r, &body); err != nil {
		handler.RespondError(w, domain.ErrValidation("invalid request body"))
		return
	}

	p, err := h.photographerSvc.Transition(r.Context(), id, body.Status)
	if err != nil {
		handler.RespondError(w, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, p)
}

// Reject handles POST /admin/photographers/{id}/reject.
func (h *PhotographersHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		handler.RespondError(w, domain.ErrValidation("invalid photographer id"))
		return
	}

	var body struct {
		Reason string `json:"reason"`
	}
	if err := handler.DecodeJSON(r, &body); err != nil {
		handler.RespondError(w, domain.ErrValidation("invalid request body"))
		return
	}
	if body.Reason == "" {
		body.Reason = "application rejected"
	}

	if err := h.photographerSvc.Reject(r.Context(), id, body.Reason); err != nil {
		handler.RespondError(w, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, map[string]string{"status": "rejected"})
}

// Delete handles DELETE /admin/photographers/{id}.
func (h *PhotographersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		handler.RespondError(w, domain.ErrValidation("invalid photographer id"))
		return
	}

	if err := h.photographerSvc.Delete(r.Context(), id); err != nil {
		handler.RespondError(w, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Export handles GET /admin/photographers/export.
func (h *PhotographersHandler) Export(w http.ResponseWriter, r *http.Request) {
	filename, body, err := h.photographerSvc.ExportCSV(r.Context(), photographerFilterFromQuery(r))
	if err != nil {
		handler.RespondError(w, err)
		return
	}
	writeCSV(w, filename, body)
}
