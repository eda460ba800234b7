package orphan

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"shoestore_be/helper/at"
	"shoestore_be/model"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

// Ledger lists images whose deletion failed.
type Ledger interface {
	Recent(ctx context.Context, limit int64) ([]model.OrphanImage, error)
}

type Handler struct {
	ledger Ledger
}

// NewHandler serves the orphan image list. ledger is nil when MongoDB is
// not configured, in which case the list is always empty.
func NewHandler(ledger Ledger) *Handler {
	return &Handler{ledger: ledger}
}

// GetOrphanImages returns the newest entries first. ?limit caps the count.
func (h *Handler) GetOrphanImages(w http.ResponseWriter, r *http.Request) {
	limit := defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			at.WriteResult(w, model.Fail[[]model.OrphanImage](model.KindValidation, "Invalid limit"))
			return
		}
		limit = min(n, maxLimit)
	}

	if h.ledger == nil {
		at.WriteResult(w, model.Ok([]model.OrphanImage{}))
		return
	}
	images, err := h.ledger.Recent(r.Context(), int64(limit))
	if err != nil {
		log.Println("[ERROR] Failed to fetch orphan images:", err)
		at.WriteResult(w, model.Fail[[]model.OrphanImage](model.KindStorage, "Failed to fetch orphan images"))
		return
	}
	at.WriteResult(w, model.Ok(images))
}
