// Package http provides http transport for meals
package http

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"

	"mealboard/internal/modkit/httpkit"
	"mealboard/internal/services/api/meals/domain"
	svc "mealboard/internal/services/api/meals/service"
)

// Register mounts the router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/", h.list)
	httpkit.PostJSON[domain.CreateInput](r, "/", h.create)
	httpkit.Get(r, "/{mealID}", h.get)
	httpkit.PutJSON[domain.UpdateInput](r, "/{mealID}", h.update)
	httpkit.Delete(r, "/{mealID}", h.remove)
}

type handlers struct{ svc svc.Service }

// @Summary List a household's meals
// @Tags meals
// @Produce json
// @Param household_id query string true "Household id"
// @Success 200 {array} domain.Meal "ok"
// @Router /meals [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	return h.svc.List(r.Context(), r.URL.Query().Get("household_id"))
}

// @Summary Create a meal
// @Tags meals
// @Accept json
// @Produce json
// @Param payload body domain.CreateInput true "Create"
// @Success 200 {object} domain.Meal "ok"
// @Router /meals [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	return h.svc.Create(r.Context(), in)
}

// @Summary Get one meal
// @Tags meals
// @Produce json
// @Success 200 {object} domain.Meal "ok"
// @Failure 404 {object} httpkit.Envelope "not found"
// @Router /meals/{mealID} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	return h.svc.Get(r.Context(), chi.URLParam(r, "mealID"))
}

// @Summary Update a meal
// @Tags meals
// @Accept json
// @Produce json
// @Param payload body domain.UpdateInput true "Update"
// @Success 200 {object} domain.Meal "ok"
// @Failure 404 {object} httpkit.Envelope "not found"
// @Router /meals/{mealID} [put]
func (h *handlers) update(r *stdhttp.Request, in domain.UpdateInput) (any, error) {
	return h.svc.Update(r.Context(), chi.URLParam(r, "mealID"), in)
}

// @Summary Delete a meal
// @Tags meals
// @Produce json
// @Success 200 "ok"
// @Failure 404 {object} httpkit.Envelope "not found"
// @Router /meals/{mealID} [delete]
func (h *handlers) remove(r *stdhttp.Request) (any, error) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "mealID")); err != nil {
		return nil, err
	}
	return map[string]bool{"deleted": true}, nil
}
