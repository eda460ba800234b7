package image

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"shoestore_be/helper/at"
	"shoestore_be/helper/ghupload"
	"shoestore_be/model"
)

const defaultFolder = "brands"

type Storage interface {
	Upload(ctx context.Context, folder, filename, contentType string, content []byte) (string, error)
	Delete(ctx context.Context, url string) error
}

type OrphanRecorder interface {
	Record(ctx context.Context, img model.OrphanImage) error
}

type Handler struct {
	store  Storage
	ledger OrphanRecorder
}

// NewHandler serves the upload endpoints. ledger may be nil.
func NewHandler(store Storage, ledger OrphanRecorder) *Handler {
	return &Handler{store: store, ledger: ledger}
}

type deleteRequest struct {
	URL string `json:"url"`
}

// AddImage takes a multipart "file" and an optional "folder" and answers
// {url} or {error}.
func (h *Handler) AddImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, ghupload.MaxImageSize+1<<20)
	if err := r.ParseMultipartForm(ghupload.MaxImageSize + 1<<20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			at.WriteError(w, http.StatusBadRequest, ghupload.ErrTooLarge.Error())
			return
		}
		log.Println("[ERROR] Failed to parse form data:", err)
		at.WriteError(w, http.StatusBadRequest, "No file provided")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		at.WriteError(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if err := ghupload.Validate(contentType, header.Size); err != nil {
		at.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		log.Println("[ERROR] Failed to read file content:", err)
		at.WriteError(w, http.StatusInternalServerError, "Failed to upload file")
		return
	}

	folder := strings.TrimSpace(r.FormValue("folder"))
	if folder == "" {
		folder = defaultFolder
	}

	url, err := h.store.Upload(r.Context(), folder, header.Filename, contentType, content)
	switch {
	case errors.Is(err, ghupload.ErrNotImage),
		errors.Is(err, ghupload.ErrTooLarge),
		errors.Is(err, ghupload.ErrEmptyContent),
		errors.Is(err, ghupload.ErrInvalidPath):
		at.WriteError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		log.Println("[ERROR] Failed to upload file:", err)
		at.WriteError(w, http.StatusInternalServerError, "Failed to upload file")
		return
	}

	log.Println("[INFO] Image uploaded:", url)
	at.WriteJSON(w, http.StatusOK, map[string]string{"url": url})
}

// DeleteImage takes {url} and answers {success: true} or {error}. A failed
// delete is written to the orphan ledger.
func (h *Handler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	var req deleteRequest
	if !at.DecodeJSON(w, r, &req) {
		return
	}
	url := strings.TrimSpace(req.URL)
	if url == "" {
		at.WriteError(w, http.StatusBadRequest, "No URL provided")
		return
	}

	err := h.store.Delete(r.Context(), url)
	if errors.Is(err, ghupload.ErrInvalidURL) {
		at.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		log.Println("[ERROR] Failed to delete file:", err)
		h.record(r.Context(), url, err)
		at.WriteError(w, http.StatusInternalServerError, "Failed to delete file")
		return
	}

	at.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) record(ctx context.Context, url string, cause error) {
	if h.ledger == nil {
		return
	}
	err := h.ledger.Record(context.WithoutCancel(ctx), model.OrphanImage{
		URL:        url,
		Reason:     cause.Error(),
		Source:     "upload.delete",
		RecordedAt: time.Now(),
	})
	if err != nil {
		log.Println("[WARN] Failed to record orphan image:", err)
	}
}
