package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"

	"shoestore_be/model"
)

type CategoryStore interface {
	List(ctx context.Context) ([]model.Category, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Category, error)
	Create(ctx context.Context, category *model.Category) error
	Update(ctx context.Context, id uuid.UUID, in model.CategoryInput) (*model.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Options(ctx context.Context) ([]model.Option, error)
}

type CategoryService struct {
	store  CategoryStore
	images imageJanitor
}

func NewCategoryService(store CategoryStore, images ImageStore, ledger OrphanRecorder) *CategoryService {
	return &CategoryService{store: store, images: newImageJanitor(images, ledger)}
}

func (s *CategoryService) List(ctx context.Context) model.Result[[]model.Category] {
	categories, err := s.store.List(ctx)
	if err != nil {
		log.Println("[ERROR] Failed to fetch categories:", err)
		return model.Fail[[]model.Category](model.KindInternal, "Failed to fetch categories")
	}
	return model.Ok(categories)
}

func (s *CategoryService) Get(ctx context.Context, id uuid.UUID) model.Result[*model.Category] {
	category, err := s.store.FindByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Fail[*model.Category](model.KindNotFound, "Category not found")
	}
	if err != nil {
		log.Println("[ERROR] Failed to fetch category:", err)
		return model.Fail[*model.Category](model.KindInternal, "Failed to fetch category")
	}
	return model.Ok(category)
}

func validateCategory(in model.CategoryInput) (model.CategoryInput, *fieldErrors) {
	in.Name = strings.TrimSpace(in.Name)
	in.Icon = strings.TrimSpace(in.Icon)
	var errs fieldErrors
	errs.requireName(in.Name)
	errs.requireImage("icon", in.Icon, "Icon is required")
	return in, &errs
}

func (s *CategoryService) Create(ctx context.Context, in model.CategoryInput) model.Result[*model.Category] {
	in, errs := validateCategory(in)
	if !errs.empty() {
		return model.Invalid[*model.Category](errs.first(), errs.fields())
	}

	category := &model.Category{Name: in.Name, Icon: in.Icon}
	if err := s.store.Create(ctx, category); err != nil {
		log.Println("[ERROR] Failed to create category:", err)
		return model.Fail[*model.Category](model.KindInternal, "Failed to create category")
	}
	log.Println("[INFO] Category created:", category.ID)
	return model.Ok(category)
}

// Update saves the category and drops the previous icon when it was replaced.
func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, in model.CategoryInput) model.Result[*model.Category] {
	in, errs := validateCategory(in)
	if !errs.empty() {
		return model.Invalid[*model.Category](errs.first(), errs.fields())
	}

	current, err := s.store.FindByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Fail[*model.Category](model.KindNotFound, "Category not found")
	}
	if err != nil {
		log.Println("[ERROR] Failed to fetch category:", err)
		return model.Fail[*model.Category](model.KindInternal, "Failed to update category")
	}

	category, err := s.store.Update(ctx, id, in)
	if errors.Is(err, model.ErrNotFound) {
		return model.Fail[*model.Category](model.KindNotFound, "Category not found")
	}
	if err != nil {
		log.Println("[ERROR] Failed to update category:", err)
		return model.Fail[*model.Category](model.KindInternal, "Failed to update category")
	}

	if current.Icon != category.Icon {
		s.images.cleanup(ctx, "category.update", current.Icon)
	}
	return model.Ok(category)
}

// Delete removes the category and then its icon. Categories still referenced by
// shoes are refused by the foreign key.
func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) model.Status {
	category, err := s.store.FindByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Failure(model.KindNotFound, "Category not found")
	}
	if err != nil {
		log.Println("[ERROR] Failed to fetch category:", err)
		return model.Failure(model.KindInternal, "Failed to delete category")
	}

	err = s.store.Delete(ctx, id)
	switch {
	case errors.Is(err, model.ErrNotFound):
		return model.Failure(model.KindNotFound, "Category not found")
	case errors.Is(err, model.ErrReference):
		return model.InvalidStatus("Category is still used by shoes", nil)
	case err != nil:
		log.Println("[ERROR] Failed to delete category:", err)
		return model.Failure(model.KindInternal, "Failed to delete category")
	}

	s.images.cleanup(ctx, "category.delete", category.Icon)
	return model.Succeeded()
}

func (s *CategoryService) Options(ctx context.Context) model.Result[[]model.Option] {
	opts, err := s.store.Options(ctx)
	if err != nil {
		log.Println("[ERROR] Failed to fetch categories:", err)
		return model.Fail[[]model.Option](model.KindInternal, "Failed to fetch categories")
	}
	return model.Ok(opts)
}
