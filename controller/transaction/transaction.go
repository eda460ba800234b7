package transaction

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"shoestore_be/helper/at"
	"shoestore_be/model"
)

type Service interface {
	List(ctx context.Context, search string) model.Result[[]model.ProductTransaction]
	Get(ctx context.Context, id uuid.UUID) model.Result[*model.TransactionDetail]
	Create(ctx context.Context, in model.TransactionInput) model.Result[*model.ProductTransaction]
	Update(ctx context.Context, id uuid.UUID, in model.TransactionInput) model.Result[*model.ProductTransaction]
	Approve(ctx context.Context, id uuid.UUID) model.Status
	Delete(ctx context.Context, id uuid.UUID) model.Status
	Quote(ctx context.Context, req model.QuoteRequest) model.Result[model.Prices]
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// GetAllTransactions accepts an optional ?search= filter.
func (h *Handler) GetAllTransactions(w http.ResponseWriter, r *http.Request) {
	at.WriteResult(w, h.svc.List(r.Context(), r.URL.Query().Get("search")))
}

func (h *Handler) GetTransactionByID(w http.ResponseWriter, r *http.Request) {
	id, ok := at.ParseID(w, r)
	if !ok {
		return
	}
	at.WriteResult(w, h.svc.Get(r.Context(), id))
}

func (h *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var in model.TransactionInput
	if !at.DecodeJSON(w, r, &in) {
		return
	}
	at.WriteResult(w, h.svc.Create(r.Context(), in))
}

func (h *Handler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := at.ParseID(w, r)
	if !ok {
		return
	}
	var in model.TransactionInput
	if !at.DecodeJSON(w, r, &in) {
		return
	}
	at.WriteResult(w, h.svc.Update(r.Context(), id, in))
}

func (h *Handler) ApproveTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := at.ParseID(w, r)
	if !ok {
		return
	}
	at.WriteStatus(w, h.svc.Approve(r.Context(), id))
}

func (h *Handler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := at.ParseID(w, r)
	if !ok {
		return
	}
	at.WriteStatus(w, h.svc.Delete(r.Context(), id))
}

// QuoteTransaction previews the amounts for the order form.
func (h *Handler) QuoteTransaction(w http.ResponseWriter, r *http.Request) {
	var req model.QuoteRequest
	if !at.DecodeJSON(w, r, &req) {
		return
	}
	at.WriteResult(w, h.svc.Quote(r.Context(), req))
}
