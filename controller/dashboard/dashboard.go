package dashboard

import (
	"context"
	"net/http"

	"shoestore_be/helper/at"
	"shoestore_be/model"
)

type Service interface {
	Summary(ctx context.Context) model.Result[*model.DashboardSummary]
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	at.WriteResult(w, h.svc.Summary(r.Context()))
}
