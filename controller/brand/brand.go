package brand

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"shoestore_be/helper/at"
	"shoestore_be/model"
)

type Service interface {
	List(ctx context.Context) model.Result[[]model.Brand]
	Get(ctx context.Context, id uuid.UUID) model.Result[*model.Brand]
	Create(ctx context.Context, in model.BrandInput) model.Result[*model.Brand]
	Update(ctx context.Context, id uuid.UUID, in model.BrandInput) model.Result[*model.Brand]
	Delete(ctx context.Context, id uuid.UUID) model.Status
	Options(ctx context.Context) model.Result[[]model.Option]
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) GetAllBrands(w http.ResponseWriter, r *http.Request) {
	at.WriteResult(w, h.svc.List(r.Context()))
}

func (h *Handler) GetBrandByID(w http.ResponseWriter, r *http.Request) {
	id, ok := at.ParseID(w, r)
	if !ok {
		return
	}
	at.WriteResult(w, h.svc.Get(r.Context(), id))
}

func (h *Handler) CreateBrand(w http.ResponseWriter, r *http.Request) {
	var in model.BrandInput
	if !at.DecodeJSON(w, r, &in) {
		return
	}
	at.WriteResult(w, h.svc.Create(r.Context(), in))
}

func (h *Handler) UpdateBrand(w http.ResponseWriter, r *http.Request) {
	id, ok := at.ParseID(w, r)
	if !ok {
		return
	}
	var in model.BrandInput
	if !at.DecodeJSON(w, r, &in) {
		return
	}
	at.WriteResult(w, h.svc.Update(r.Context(), id, in))
}

func (h *Handler) DeleteBrand(w http.ResponseWriter, r *http.Request) {
	id, ok := at.ParseID(w, r)
	if !ok {
		return
	}
	at.WriteStatus(w, h.svc.Delete(r.Context(), id))
}

func (h *Handler) GetBrandOptions(w http.ResponseWriter, r *http.Request) {
	at.WriteResult(w, h.svc.Options(r.Context()))
}
