// Package http provides http transport for households
package http

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"

	"mealboard/internal/modkit/httpkit"
	"mealboard/internal/services/api/households/domain"
	svc "mealboard/internal/services/api/households/service"
)

// Register mounts the router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/", h.listMine)
	httpkit.PostJSON[domain.CreateInput](r, "/", h.create)
	httpkit.PostJSON[domain.JoinInput](r, "/join", h.join)
	httpkit.Get(r, "/{householdID}", h.get)
	httpkit.PutJSON[domain.RenameInput](r, "/{householdID}", h.rename)
	httpkit.Delete(r, "/{householdID}", h.remove)
	httpkit.Get(r, "/{householdID}/members", h.members)
}

type handlers struct{ svc svc.Service }

// @Summary List my households
// @Tags households
// @Produce json
// @Success 200 {array} domain.Household "ok"
// @Router /households [get]
func (h *handlers) listMine(r *stdhttp.Request) (any, error) {
	return h.svc.ListMine(r.Context())
}

// @Summary Create a household
// @Tags households
// @Accept json
// @Produce json
// @Param payload body domain.CreateInput true "Create"
// @Success 200 {object} domain.Household "ok"
// @Router /households [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	return h.svc.Create(r.Context(), in)
}

// @Summary Join a household by invite code
// @Tags households
// @Accept json
// @Produce json
// @Param payload body domain.JoinInput true "Join"
// @Success 200 {object} domain.Household "ok"
// @Failure 404 {object} httpkit.Envelope "not found"
// @Router /households/join [post]
func (h *handlers) join(r *stdhttp.Request, in domain.JoinInput) (any, error) {
	return h.svc.Join(r.Context(), in)
}

// @Summary Get one household
// @Tags households
// @Produce json
// @Success 200 {object} domain.Household "ok"
// @Failure 404 {object} httpkit.Envelope "not found"
// @Router /households/{householdID} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	return h.svc.Get(r.Context(), chi.URLParam(r, "householdID"))
}

// @Summary Rename a household
// @Tags households
// @Accept json
// @Produce json
// @Param payload body domain.RenameInput true "New name"
// @Success 200 {object} domain.Household "ok"
// @Failure 403 {object} httpkit.Envelope "owner role required"
// @Router /households/{householdID} [put]
func (h *handlers) rename(r *stdhttp.Request, in domain.RenameInput) (any, error) {
	return h.svc.Rename(r.Context(), chi.URLParam(r, "householdID"), in)
}

// @Summary Delete a household
// @Tags households
// @Produce json
// @Success 200 "ok"
// @Failure 403 {object} httpkit.Envelope "owner role required"
// @Router /households/{householdID} [delete]
func (h *handlers) remove(r *stdhttp.Request) (any, error) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "householdID")); err != nil {
		return nil, err
	}
	return map[string]bool{"deleted": true}, nil
}

// @Summary List household members
// @Tags households
// @Produce json
// @Success 200 {object} domain.MembersOutput "ok"
// @Router /households/{householdID}/members [get]
func (h *handlers) members(r *stdhttp.Request) (any, error) {
	return h.svc.Members(r.Context(), chi.URLParam(r, "householdID"))
}
