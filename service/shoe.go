package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"

	"shoestore_be/model"
)

const msgMissingRelation = "Selected brand or category does not exist"

type ShoeStore interface {
	List(ctx context.Context) ([]model.Shoe, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Shoe, error)
	Create(ctx context.Context, shoe *model.Shoe, photos, sizes []string) error
	Update(ctx context.Context, id uuid.UUID, in model.ShoeUpdateInput) (*model.Shoe, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Options(ctx context.Context) ([]model.ShoeOption, error)
}

type ShoeService struct {
	store  ShoeStore
	images imageJanitor
}

func NewShoeService(store ShoeStore, images ImageStore, ledger OrphanRecorder) *ShoeService {
	return &ShoeService{store: store, images: newImageJanitor(images, ledger)}
}

func (s *ShoeService) List(ctx context.Context) model.Result[[]model.Shoe] {
	shoes, err := s.store.List(ctx)
	if err != nil {
		log.Println("[ERROR] Failed to fetch shoes:", err)
		return model.Fail[[]model.Shoe](model.KindInternal, "Failed to fetch shoes")
	}
	return model.Ok(shoes)
}

func (s *ShoeService) Get(ctx context.Context, id uuid.UUID) model.Result[*model.Shoe] {
	shoe, err := s.store.FindByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Fail[*model.Shoe](model.KindNotFound, "Shoe not found")
	}
	if err != nil {
		log.Println("[ERROR] Failed to fetch shoe:", err)
		return model.Fail[*model.Shoe](model.KindInternal, "Failed to fetch shoe")
	}
	return model.Ok(shoe)
}

type shoeFields struct {
	Name       string
	Price      int64
	Thumbnail  string
	About      string
	Stock      int
	CategoryID uuid.UUID
	BrandID    uuid.UUID
	Sizes      int
}

func validateShoe(f shoeFields) *fieldErrors {
	var errs fieldErrors
	errs.requireName(f.Name)
	if f.Price <= 0 {
		errs.add("price", "Price must be greater than 0")
	}
	if strings.TrimSpace(f.About) == "" {
		errs.add("about", "Description is required")
	}
	if f.Stock < 0 {
		errs.add("stock", "Stock must be 0 or greater")
	}
	if f.CategoryID == uuid.Nil {
		errs.add("categoryId", "Category is required")
	}
	if f.BrandID == uuid.Nil {
		errs.add("brandId", "Brand is required")
	}
	errs.requireImage("thumbnail", f.Thumbnail, "Thumbnail is required")
	if f.Sizes == 0 {
		errs.add("sizes", "At least one size is required")
	}
	return &errs
}

func cleanList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func (s *ShoeService) Create(ctx context.Context, in model.ShoeInput) model.Result[*model.Shoe] {
	in.Name = strings.TrimSpace(in.Name)
	in.Thumbnail = strings.TrimSpace(in.Thumbnail)
	in.Photos = cleanList(in.Photos)
	in.Sizes = cleanList(in.Sizes)

	errs := validateShoe(shoeFields{
		Name: in.Name, Price: in.Price, Thumbnail: in.Thumbnail, About: in.About,
		Stock: in.Stock, CategoryID: in.CategoryID, BrandID: in.BrandID, Sizes: len(in.Sizes),
	})
	if !errs.empty() {
		return model.Invalid[*model.Shoe](errs.first(), errs.fields())
	}

	shoe := &model.Shoe{
		Name:       in.Name,
		Price:      in.Price,
		Thumbnail:  in.Thumbnail,
		About:      in.About,
		IsPopular:  in.IsPopular,
		Stock:      in.Stock,
		CategoryID: in.CategoryID,
		BrandID:    in.BrandID,
	}
	err := s.store.Create(ctx, shoe, in.Photos, in.Sizes)
	if errors.Is(err, model.ErrReference) {
		return model.Invalid[*model.Shoe](msgMissingRelation, nil)
	}
	if err != nil {
		log.Println("[ERROR] Failed to create shoe:", err)
		return model.Fail[*model.Shoe](model.KindInternal, "Failed to create shoe")
	}
	log.Println("[INFO] Shoe created:", shoe.ID)
	return model.Ok(shoe)
}

// Update applies the caller's child diff. Once the rows are saved the
// removed photo blobs and a replaced thumbnail are deleted best-effort.
func (s *ShoeService) Update(ctx context.Context, id uuid.UUID, in model.ShoeUpdateInput) model.Result[*model.Shoe] {
	in.Name = strings.TrimSpace(in.Name)
	in.Thumbnail = strings.TrimSpace(in.Thumbnail)

	sizes := make([]model.SizeItem, 0, len(in.Sizes))
	for _, size := range in.Sizes {
		if size.Size = strings.TrimSpace(size.Size); size.Size != "" {
			sizes = append(sizes, size)
		}
	}
	in.Sizes = sizes
	photos := make([]model.PhotoItem, 0, len(in.Photos))
	for _, photo := range in.Photos {
		if photo.Photo = strings.TrimSpace(photo.Photo); photo.Photo != "" {
			photos = append(photos, photo)
		}
	}
	in.Photos = photos

	errs := validateShoe(shoeFields{
		Name: in.Name, Price: in.Price, Thumbnail: in.Thumbnail, About: in.About,
		Stock: in.Stock, CategoryID: in.CategoryID, BrandID: in.BrandID, Sizes: len(in.Sizes),
	})
	if !errs.empty() {
		return model.Invalid[*model.Shoe](errs.first(), errs.fields())
	}

	current, err := s.store.FindByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Fail[*model.Shoe](model.KindNotFound, "Shoe not found")
	}
	if err != nil {
		log.Println("[ERROR] Failed to fetch shoe:", err)
		return model.Fail[*model.Shoe](model.KindInternal, "Failed to update shoe")
	}

	shoe, err := s.store.Update(ctx, id, in)
	switch {
	case errors.Is(err, model.ErrNotFound):
		return model.Fail[*model.Shoe](model.KindNotFound, "Shoe not found")
	case errors.Is(err, model.ErrReference):
		return model.Invalid[*model.Shoe](msgMissingRelation, nil)
	case err != nil:
		log.Println("[ERROR] Failed to update shoe:", err)
		return model.Fail[*model.Shoe](model.KindInternal, "Failed to update shoe")
	}

	stale := append([]string{}, in.DeletedPhotoURLs...)
	if current.Thumbnail != shoe.Thumbnail {
		stale = append(stale, current.Thumbnail)
	}
	s.images.cleanup(ctx, "shoe.update", stale...)
	return model.Ok(shoe)
}

// Delete removes sizes, photos and the shoe, then the thumbnail and every
// photo blob.
func (s *ShoeService) Delete(ctx context.Context, id uuid.UUID) model.Status {
	shoe, err := s.store.FindByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Failure(model.KindNotFound, "Shoe not found")
	}
	if err != nil {
		log.Println("[ERROR] Failed to fetch shoe:", err)
		return model.Failure(model.KindInternal, "Failed to delete shoe")
	}

	err = s.store.Delete(ctx, id)
	switch {
	case errors.Is(err, model.ErrNotFound):
		return model.Failure(model.KindNotFound, "Shoe not found")
	case errors.Is(err, model.ErrReference):
		return model.InvalidStatus("Shoe is still used by transactions", nil)
	case err != nil:
		log.Println("[ERROR] Failed to delete shoe:", err)
		return model.Failure(model.KindInternal, "Failed to delete shoe")
	}

	urls := make([]string, 0, len(shoe.Photos)+1)
	urls = append(urls, shoe.Thumbnail)
	for _, p := range shoe.Photos {
		urls = append(urls, p.Photo)
	}
	s.images.cleanup(ctx, "shoe.delete", urls...)
	log.Println("[INFO] Shoe deleted:", id)
	return model.Succeeded()
}

func (s *ShoeService) Options(ctx context.Context) model.Result[[]model.ShoeOption] {
	opts, err := s.store.Options(ctx)
	if err != nil {
		log.Println("[ERROR] Failed to fetch shoes:", err)
		return model.Fail[[]model.ShoeOption](model.KindInternal, "Failed to fetch shoes")
	}
	return model.Ok(opts)
}
