package promocode

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"shoestore_be/helper/at"
	"shoestore_be/model"
)

type Service interface {
	List(ctx context.Context) model.Result[[]model.PromoCode]
	Get(ctx context.Context, id uuid.UUID) model.Result[*model.PromoCode]
	Create(ctx context.Context, in model.PromoCodeInput) model.Result[*model.PromoCode]
	Update(ctx context.Context, id uuid.UUID, in model.PromoCodeInput) model.Result[*model.PromoCode]
	Delete(ctx context.Context, id uuid.UUID) model.Status
	Options(ctx context.Context) model.Result[[]model.PromoCodeOption]
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) GetAllPromoCodes(w http.ResponseWriter, r *http.Request) {
	at.WriteResult(w, h.svc.List(r.Context()))
}

func (h *Handler) GetPromoCodeByID(w http.ResponseWriter, r *http.Request) {
	id, ok := at.ParseID(w, r)
	if !ok {
		return
	}
	at.WriteResult(w, h.svc.Get(r.Context(), id))
}

func (h *Handler) CreatePromoCode(w http.ResponseWriter, r *http.Request) {
	var in model.PromoCodeInput
	if !at.DecodeJSON(w, r, &in) {
		return
	}
	at.WriteResult(w, h.svc.Create(r.Context(), in))
}

func (h *Handler) UpdatePromoCode(w http.ResponseWriter, r *http.Request) {
	id, ok := at.ParseID(w, r)
	if !ok {
		return
	}
	var in model.PromoCodeInput
	if !at.DecodeJSON(w, r, &in) {
		return
	}
	at.WriteResult(w, h.svc.Update(r.Context(), id, in))
}

func (h *Handler) DeletePromoCode(w http.ResponseWriter, r *http.Request) {
	id, ok := at.ParseID(w, r)
	if !ok {
		return
	}
	at.WriteStatus(w, h.svc.Delete(r.Context(), id))
}

func (h *Handler) GetPromoCodeOptions(w http.ResponseWriter, r *http.Request) {
	at.WriteResult(w, h.svc.Options(r.Context()))
}
