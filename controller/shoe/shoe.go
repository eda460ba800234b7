package shoe

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"shoestore_be/helper/at"
	"shoestore_be/model"
)

type Service interface {
	List(ctx context.Context) model.Result[[]model.Shoe]
	Get(ctx context.Context, id uuid.UUID) model.Result[*model.Shoe]
	Create(ctx context.Context, in model.ShoeInput) model.Result[*model.Shoe]
	Update(ctx context.Context, id uuid.UUID, in model.ShoeUpdateInput) model.Result[*model.Shoe]
	Delete(ctx context.Context, id uuid.UUID) model.Status
	Options(ctx context.Context) model.Result[[]model.ShoeOption]
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) GetAllShoes(w http.ResponseWriter, r *http.Request) {
	at.WriteResult(w, h.svc.List(r.Context()))
}

func (h *Handler) GetShoeByID(w http.ResponseWriter, r *http.Request) {
	id, ok := at.ParseID(w, r)
	if !ok {
		return
	}
	at.WriteResult(w, h.svc.Get(r.Context(), id))
}

func (h *Handler) CreateShoe(w http.ResponseWriter, r *http.Request) {
	var in model.ShoeInput
	if !at.DecodeJSON(w, r, &in) {
		return
	}
	at.WriteResult(w, h.svc.Create(r.Context(), in))
}

// UpdateShoe expects the full photo and size lists plus the ids and urls
// the client removed.
func (h *Handler) UpdateShoe(w http.ResponseWriter, r *http.Request) {
	id, ok := at.ParseID(w, r)
	if !ok {
		return
	}
	var in model.ShoeUpdateInput
	if !at.DecodeJSON(w, r, &in) {
		return
	}
	at.WriteResult(w, h.svc.Update(r.Context(), id, in))
}

func (h *Handler) DeleteShoe(w http.ResponseWriter, r *http.Request) {
	id, ok := at.ParseID(w, r)
	if !ok {
		return
	}
	at.WriteStatus(w, h.svc.Delete(r.Context(), id))
}

func (h *Handler) GetShoeOptions(w http.ResponseWriter, r *http.Request) {
	at.WriteResult(w, h.svc.Options(r.Context()))
}
