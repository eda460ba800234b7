package service

import (
	"context"
	"log"
	"time"

	"shoestore_be/model"
)

// ImageStore is the object storage the services clean up after.
type ImageStore interface {
	Delete(ctx context.Context, url string) error
}

// OrphanRecorder remembers blobs that could not be deleted.
type OrphanRecorder interface {
	Record(ctx context.Context, img model.OrphanImage) error
}

// imageJanitor deletes images best-effort. Failures are logged and
// recorded, never returned.
type imageJanitor struct {
	store  ImageStore
	ledger OrphanRecorder
	now    func() time.Time
}

func newImageJanitor(store ImageStore, ledger OrphanRecorder) imageJanitor {
	return imageJanitor{store: store, ledger: ledger, now: time.Now}
}

// cleanup deletes each distinct non-empty url once. It runs detached from
// the request context since the rows are already gone.
func (j imageJanitor) cleanup(ctx context.Context, source string, urls ...string) {
	if j.store == nil {
		return
	}
	ctx = context.WithoutCancel(ctx)

	seen := make(map[string]struct{}, len(urls))
	for _, url := range urls {
		if url == "" {
			continue
		}
		if _, dup := seen[url]; dup {
			continue
		}
		seen[url] = struct{}{}

		if err := j.store.Delete(ctx, url); err != nil {
			log.Printf("[WARN] %s: failed to delete image %s: %v", source, url, err)
			j.record(ctx, source, url, err)
		}
	}
}

func (j imageJanitor) record(ctx context.Context, source, url string, cause error) {
	if j.ledger == nil {
		return
	}
	err := j.ledger.Record(ctx, model.OrphanImage{
		URL:        url,
		Reason:     cause.Error(),
		Source:     source,
		RecordedAt: j.now(),
	})
	if err != nil {
		log.Printf("[WARN] %s: failed to record orphan image %s: %v", source, url, err)
	}
}
