package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"

	"shoestore_be/model"
)

type BrandStore interface {
	List(ctx context.Context) ([]model.Brand, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Brand, error)
	Create(ctx context.Context, brand *model.Brand) error
	Update(ctx context.Context, id uuid.UUID, in model.BrandInput) (*model.Brand, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Options(ctx context.Context) ([]model.Option, error)
}

type BrandService struct {
	store  BrandStore
	images imageJanitor
}

func NewBrandService(store BrandStore, images ImageStore, ledger OrphanRecorder) *BrandService {
	return &BrandService{store: store, images: newImageJanitor(images, ledger)}
}

func (s *BrandService) List(ctx context.Context) model.Result[[]model.Brand] {
	brands, err := s.store.List(ctx)
	if err != nil {
		log.Println("[ERROR] Failed to fetch brands:", err)
		return model.Fail[[]model.Brand](model.KindInternal, "Failed to fetch brands")
	}
	return model.Ok(brands)
}

func (s *BrandService) Get(ctx context.Context, id uuid.UUID) model.Result[*model.Brand] {
	brand, err := s.store.FindByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Fail[*model.Brand](model.KindNotFound, "Brand not found")
	}
	if err != nil {
		log.Println("[ERROR] Failed to fetch brand:", err)
		return model.Fail[*model.Brand](model.KindInternal, "Failed to fetch brand")
	}
	return model.Ok(brand)
}

func validateBrand(in model.BrandInput) (model.BrandInput, *fieldErrors) {
	in.Name = strings.TrimSpace(in.Name)
	in.Logo = strings.TrimSpace(in.Logo)
	var errs fieldErrors
	errs.requireName(in.Name)
	errs.requireImage("logo", in.Logo, "Logo is required")
	return in, &errs
}

func (s *BrandService) Create(ctx context.Context, in model.BrandInput) model.Result[*model.Brand] {
	in, errs := validateBrand(in)
	if !errs.empty() {
		return model.Invalid[*model.Brand](errs.first(), errs.fields())
	}

	brand := &model.Brand{Name: in.Name, Logo: in.Logo}
	if err := s.store.Create(ctx, brand); err != nil {
		log.Println("[ERROR] Failed to create brand:", err)
		return model.Fail[*model.Brand](model.KindInternal, "Failed to create brand")
	}
	log.Println("[INFO] Brand created:", brand.ID)
	return model.Ok(brand)
}

// Update saves the brand and drops the previous logo when it was replaced.
func (s *BrandService) Update(ctx context.Context, id uuid.UUID, in model.BrandInput) model.Result[*model.Brand] {
	in, errs := validateBrand(in)
	if !errs.empty() {
		return model.Invalid[*model.Brand](errs.first(), errs.fields())
	}

	current, err := s.store.FindByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Fail[*model.Brand](model.KindNotFound, "Brand not found")
	}
	if err != nil {
		log.Println("[ERROR] Failed to fetch brand:", err)
		return model.Fail[*model.Brand](model.KindInternal, "Failed to update brand")
	}

	brand, err := s.store.Update(ctx, id, in)
	if errors.Is(err, model.ErrNotFound) {
		return model.Fail[*model.Brand](model.KindNotFound, "Brand not found")
	}
	if err != nil {
		log.Println("[ERROR] Failed to update brand:", err)
		return model.Fail[*model.Brand](model.KindInternal, "Failed to update brand")
	}

	if current.Logo != brand.Logo {
		s.images.cleanup(ctx, "brand.update", current.Logo)
	}
	return model.Ok(brand)
}

// Delete removes the brand and then its logo. Brands still referenced by
// shoes are refused by the foreign key.
func (s *BrandService) Delete(ctx context.Context, id uuid.UUID) model.Status {
	brand, err := s.store.FindByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Failure(model.KindNotFound, "Brand not found")
	}
	if err != nil {
		log.Println("[ERROR] Failed to fetch brand:", err)
		return model.Failure(model.KindInternal, "Failed to delete brand")
	}

	err = s.store.Delete(ctx, id)
	switch {
	case errors.Is(err, model.ErrNotFound):
		return model.Failure(model.KindNotFound, "Brand not found")
	case errors.Is(err, model.ErrReference):
		return model.InvalidStatus("Brand is still used by shoes", nil)
	case err != nil:
		log.Println("[ERROR] Failed to delete brand:", err)
		return model.Failure(model.KindInternal, "Failed to delete brand")
	}

	s.images.cleanup(ctx, "brand.delete", brand.Logo)
	return model.Succeeded()
}

func (s *BrandService) Options(ctx context.Context) model.Result[[]model.Option] {
	opts, err := s.store.Options(ctx)
	if err != nil {
		log.Println("[ERROR] Failed to fetch brands:", err)
		return model.Fail[[]model.Option](model.KindInternal, "Failed to fetch brands")
	}
	return model.Ok(opts)
}
