package admin

import (
	"context"
	"net/http"

	"github.com/capturely/platform/internal/domain"
	"github.com/capturely/platform/internal/handler"
	"github.com/capturely/platform/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// AssignmentsHandler manages bookings and the assignment workflow.
type AssignmentsHandler struct {
	assignmentSvc *service.AssignmentService
}

// NewAssignmentsHandler creates a new AssignmentsHandler.
func NewAssignmentsHandler(assignmentSvc *service.AssignmentService) *AssignmentsHandler {
	return &AssignmentsHandler{assignmentSvc: assignmentSvc}
}

// List handles GET /admin/bookings.
func (h *AssignmentsHandler) List(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.assignmentSvc.ListBookings(r.Context())
	if err != nil {
		handler.RespondError(w, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, bookings)
}

// Get handles GET /admin/bookings/{id}.
func (h *AssignmentsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		handler.RespondError(w, domain.ErrValidation("invalid booking id"))
		return
	}

	b, err := h.assignmentSvc.GetBooking(r.Context(), id)
	if err != nil {
		handler.RespondError(w, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, b)
}

// Create handles POST /admin/bookings.
func (h *AssignmentsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateBookingInput
	if err := handler.DecodeJSON(r, &input); err != nil {
		handler.RespondError(w, domain.ErrValidation("invalid request body"))
		return
	}

	b, err := h.assignmentSvc.CreateBooking(r.Context(), input)
	if err != nil {
		handler.RespondError(w, err)
		return
	}
	handler.RespondJSON(w, http.StatusCreated, b)
}

// Assign handles POST /admin/bookings/{id}/assign.
func (h *AssignmentsHandler) Assign(w http.ResponseWriter, r *http.Request) {
	h.assignWith(w, r, h.assignmentSvc.Assign)
}

// Reassign handles POST /admin/bookings/{id}/reassign.
func (h *AssignmentsHandler) Reassign(w http.ResponseWriter, r *http.Request) {
	h.assignWith(w, r, h.assignmentSvc.Reassign)
}

func (h *AssignmentsHandler) assignWith(w http.ResponseWriter, r *http.Request,
	fn func(ctx context.Context, bookingID, photographerID uuid.UUID) (*domain.Booking, error)) {
	bookingID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		handler.RespondError(w, domain.ErrValidation("invalid booking id"))
		return
	}

	var body struct {
		PhotographerID uuid.UUID `json:"photographer_id"`
	}
	if err := handler.DecodeJSON(r, &body); err != nil {
		handler.RespondError(w, domain.ErrValidation("invalid request body"))
		return
	}
	if body.PhotographerID == uuid.Nil {
		handler.RespondError(w, domain.ErrValidation("photographer_id is required"))
		return
	}

	b, err := fn(r.Context(), bookingID, body.PhotographerID)
	if err != nil {
		handler.RespondError(w, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, b)
}

// Unassign handles POST /admin/bookings/{id}/unassign.
func (h *AssignmentsHandler) Unassign(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		handler.RespondError(w, domain.ErrValidation("invalid booking id"))
		return
	}

	b, err := h.assignmentSvc.Unassign(r.Context(), id)
	if err != nil {
		handler.RespondError(w, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, b)
}

// Timeline handles GET /admin/bookings/{id}/timeline.
func (h *AssignmentsHandler) Timeline(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		handler.RespondError(w, domain.ErrValidation("invalid booking id"))
		return
	}

	entries, err := h.assignmentSvc.Timeline(r.Context(), id)
	if err != nil {
		handler.RespondError(w, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, entries)
}

// Candidates handles GET /admin/bookings/{id}/candidates.
func (h *AssignmentsHandler) Candidates(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		handler.RespondError(w, domain.ErrValidation("invalid booking id"))
		return
	}

	candidates, err := h.assignmentSvc.Candidates(r.Context(), id)
	if err != nil {
		handler.RespondError(w, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, candidates)
}

// SaveNote handles PUT /admin/bookings/{id}/note.
func (h *AssignmentsHandler) SaveNote(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		handler.RespondError(w, domain.ErrValidation("invalid booking id"))
		return
	}

	var body struct {
		Note string `json:"note"`
	}
	if err := handler.DecodeJSON(r, &body); err != nil {
		handler.RespondError(w, domain.ErrValidation("invalid request body"))
		return
	}

	if err := h.assignmentSvc.SaveNote(r.Context(), id, body.Note); err != nil {
		handler.RespondError(w, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

// GetNote handles GET /admin/bookings/{id}/note.
func (h *AssignmentsHandler) GetNote(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		handler.RespondError(w, domain.ErrValidation("invalid booking id"))
		return
	}

	note, err := h.assignmentSvc.LoadNote(r.Context(), id)
	if err != nil {
		handler.RespondError(w, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, map[string]string{"note": note})
}

// CommitNote handles POST /admin/bookings/{id}/note/commit.
func (h *AssignmentsHandler) CommitNote(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		handler.RespondError(w, domain.ErrValidation("invalid booking id"))
		return
	}

	if err := h.assignmentSvc.CommitNote(r.Context(), id); err != nil {
		handler.RespondError(w, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, map[string]string{"status": "committed"})
}
