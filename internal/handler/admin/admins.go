// Package admin holds the handlers behind /admin, gated per permission.
package admin

import (
	"fmt"
	"net/http"

	"github.com/capturely/platform/internal/domain"
	"github.com/capturely/platform/internal/handler"
	"github.com/capturely/platform/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// AdminsHandler manages admin panel accounts.
type AdminsHandler struct {
	adminSvc *service.AdminService
}

// NewAdminsHandler creates a new AdminsHandler.
func NewAdminsHandler(adminSvc *service.AdminService) *AdminsHandler {
	return &AdminsHandler{adminSvc: adminSvc}
}

func adminFilterFromQuery(r *http.Request) domain.AdminFilter {
	q := r.URL.Query()
	return domain.AdminFilter{
		Search: q.Get("q"),
		Status: q.Get("status"),
		Role:   domain.AdminRole(q.Get("role")),
	}
}

// List handles GET /admin/admins.
func (h *AdminsHandler) List(w http.ResponseWriter, r *http.Request) {
	admins, err := h.adminSvc.List(r.Context(), adminFilterFromQuery(r))
	if err != nil {
		handler.RespondError(w, err)
		return
	}

	type listedAdmin struct {
		*domain.Admin
		Actions []string `json:"actions"`
	}
	out := make([]listedAdmin, 0, len(admins))
	for _, a := range admins {
		out = append(out, listedAdmin{Admin: a, Actions: adminActions(a)})
	}
	handler.RespondJSON(w, http.StatusOK, out)
}

// adminActions mirrors the per-row action menu: activate for pending,
// toggle plus edit/delete for the rest. super_admin rows are read-only.
func adminActions(a *domain.Admin) []string {
	if !domain.RoleEditable(a.Role) {
		return []string{}
	}
	switch a.Status {
	case domain.AdminStatusPending:
		return []string{"activate", "edit", "delete"}
	case domain.AdminStatusActive:
		return []string{"deactivate", "edit", "delete"}
	case domain.AdminStatusInactive:
		return []string{"activate", "edit", "delete"}
	}
	return []string{}
}

// Get handles GET /admin/admins/{id}.
func (h *AdminsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		handler.RespondError(w, domain.ErrValidation("invalid admin id"))
		return
	}

	admin, err := h.adminSvc.Get(r.Context(), id)
	if err != nil {
		handler.RespondError(w, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, admin)
}

// Create handles POST /admin/admins.
func (h *AdminsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateAdminInput
	if err := handler.DecodeJSON(r, &input); err != nil {
		handler.RespondError(w, domain.ErrValidation("invalid request body"))
		return
	}

	admin, err := h.adminSvc.Create(r.Context(), input)
	if err != nil {
		handler.RespondError(w, err)
		return
	}
	handler.RespondJSON(w, http.StatusCreated, admin)
}

// Update handles PUT /admin/admins/{id}.
func (h *AdminsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		handler.RespondError(w, domain.ErrValidation("invalid admin id"))
		return
	}

	var input service.UpdateAdminInput
	if err := handler.DecodeJSON(r, &input); err != nil {
		handler.RespondError(w, domain.ErrValidation("invalid request body"))
		return
	}

	admin, err := h.adminSvc.Update(r.Context(), id, input)
	if err != nil {
		handler.RespondError(w, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, admin)
}

// UpdateStatus handles PATCH /admin/admins/{id}/status.
func (h *AdminsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		handler.RespondError(w, domain.ErrValidation("invalid admin id"))
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := handler.DecodeJSON(r, &body); err != nil {
		handler.RespondError(w, domain.ErrValidation("invalid request body"))
		return
	}

	admin, err := h.adminSvc.SetStatus(r.Context(), id, body.Status)
	if err != nil {
		handler.RespondError(w, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, admin)
}

// Delete handles DELETE /admin/admins/{id}.
func (h *AdminsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		handler.RespondError(w, domain.ErrValidation("invalid admin id"))
		return
	}

	if err := h.adminSvc.Delete(r.Context(), id); err != nil {
		handler.RespondError(w, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Export handles GET /admin/admins/export. The response is the CSV file
// itself, honoring the same filters as List.
func (h *AdminsHandler) Export(w http.ResponseWriter, r *http.Request) {
	filename, body, err := h.adminSvc.ExportCSV(r.Context(), adminFilterFromQuery(r))
	if err != nil {
		handler.RespondError(w, err)
		return
	}
	writeCSV(w, filename, body)
}

func writeCSV(w http.ResponseWriter, filename, body string) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}
