// Package http provides http transport for slots
package http

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"

	"mealboard/internal/modkit/httpkit"
	"mealboard/internal/services/api/slots/domain"
	svc "mealboard/internal/services/api/slots/service"
)

// Register mounts the router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/", h.list)
	httpkit.PostJSON[domain.CreateInput](r, "/", h.create)
	httpkit.PutJSON[domain.BatchInput](r, "/batch", h.batch)
	httpkit.PostJSON[domain.ShuffleInput](r, "/shuffle", h.shuffle)
	httpkit.Get(r, "/{slotID}", h.get)
	httpkit.PutJSON[domain.UpdateInput](r, "/{slotID}", h.update)
	httpkit.Delete(r, "/{slotID}", h.remove)
}

type handlers struct{ svc svc.Service }

// @Summary List slots for a household and date range
// @Tags slots
// @Produce json
// @Param household_id query string true "Household id"
// @Param start_date query string true "Inclusive start YYYY-MM-DD"
// @Param end_date query string true "Inclusive end YYYY-MM-DD"
// @Success 200 {array} domain.Slot "ok"
// @Router /slots [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	q := r.URL.Query()
	return h.svc.List(r.Context(), q.Get("household_id"), q.Get("start_date"), q.Get("end_date"))
}

// @Summary Create a slot
// @Tags slots
// @Accept json
// @Produce json
// @Param payload body domain.CreateInput true "Create"
// @Success 200 {object} domain.Slot "ok"
// @Failure 409 {object} httpkit.Envelope "slot exists"
// @Router /slots [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	return h.svc.Create(r.Context(), in)
}

// @Summary Batch update slot meals
// @Tags slots
// @Accept json
// @Produce json
// @Param payload body domain.BatchInput true "Updates"
// @Success 200 {object} domain.BatchOutput "ok"
// @Router /slots/batch [put]
func (h *handlers) batch(r *stdhttp.Request, in domain.BatchInput) (any, error) {
	return h.svc.BatchUpdate(r.Context(), in)
}

// @Summary Shuffle meals into open slots
// @Tags slots
// @Accept json
// @Produce json
// @Param payload body domain.ShuffleInput true "Window"
// @Success 200 {object} domain.ShuffleOutput "ok"
// @Router /slots/shuffle [post]
func (h *handlers) shuffle(r *stdhttp.Request, in domain.ShuffleInput) (any, error) {
	return h.svc.Shuffle(r.Context(), in)
}

// @Summary Get one slot
// @Tags slots
// @Produce json
// @Success 200 {object} domain.Slot "ok"
// @Failure 404 {object} httpkit.Envelope "not found"
// @Router /slots/{slotID} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	return h.svc.Get(r.Context(), chi.URLParam(r, "slotID"))
}

// @Summary Update one slot
// @Tags slots
// @Accept json
// @Produce json
// @Param payload body domain.UpdateInput true "Update"
// @Success 200 {object} domain.Slot "ok"
// @Failure 404 {object} httpkit.Envelope "not found"
// @Router /slots/{slotID} [put]
func (h *handlers) update(r *stdhttp.Request, in domain.UpdateInput) (any, error) {
	return h.svc.Update(r.Context(), chi.URLParam(r, "slotID"), in)
}

// @Summary Delete a slot
// @Tags slots
// @Produce json
// @Success 200 "ok"
// @Failure 404 {object} httpkit.Envelope "not found"
// @Router /slots/{slotID} [delete]
func (h *handlers) remove(r *stdhttp.Request) (any, error) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "slotID")); err != nil {
		return nil, err
	}
	return map[string]bool{"deleted": true}, nil
}
