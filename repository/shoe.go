package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"shoestore_be/model"
)

type ShoeRepository struct {
	db *gorm.DB
}

func NewShoeRepository(db *gorm.DB) *ShoeRepository {
	return &ShoeRepository{db: db}
}

// List returns every shoe with its category and brand. A missing related
// row leaves the pointer nil.
func (r *ShoeRepository) List(ctx context.Context) ([]model.Shoe, error) {
	shoes := []model.Shoe{}
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Brand").
		Order("id DESC").
		Find(&shoes).Error
	if err != nil {
		return nil, translate("list shoes", err)
	}
	return shoes, nil
}

func (r *ShoeRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Shoe, error) {
	return findByID[model.Shoe](ctx, r.db, "find shoe", id, "Category", "Brand", "Photos", "Sizes")
}

// Create inserts the shoe and its photos and sizes in one transaction.
func (r *ShoeRepository) Create(ctx context.Context, shoe *model.Shoe, photos, sizes []string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(shoe).Error; err != nil {
			return err
		}
		if err := insertChildren(tx, shoe.ID, photos, sizes); err != nil {
			return err
		}
		return nil
	})
	return translate("create shoe", err)
}

// Update applies the scalar fields and the precomputed child diff in one
// transaction. Photos and sizes that already carry an id are not touched.
func (r *ShoeRepository) Update(ctx context.Context, id uuid.UUID, in model.ShoeUpdateInput) (*model.Shoe, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Shoe{}).Where("id = ?", id).Updates(map[string]interface{}{
			"name":        in.Name,
			"price":       in.Price,
			"thumbnail":   in.Thumbnail,
			"about":       in.About,
			"is_popular":  in.IsPopular,
			"stock":       in.Stock,
			"category_id": in.CategoryID,
			"brand_id":    in.BrandID,
		})
		if err := affected("update shoe", res); err != nil {
			return err
		}

		if len(in.DeletedPhotoIDs) > 0 {
			if err := tx.Where("shoe_id = ? AND id IN ?", id, in.DeletedPhotoIDs).Delete(&model.ShoePhoto{}).Error; err != nil {
				return err
			}
		}
		if len(in.DeletedSizeIDs) > 0 {
			if err := tx.Where("shoe_id = ? AND id IN ?", id, in.DeletedSizeIDs).Delete(&model.ShoeSize{}).Error; err != nil {
				return err
			}
		}

		var photos, sizes []string
		for _, p := range in.Photos {
			if p.ID == nil {
				photos = append(photos, p.Photo)
			}
		}
		for _, s := range in.Sizes {
			if s.ID == nil {
				sizes = append(sizes, s.Size)
			}
		}
		return insertChildren(tx, id, photos, sizes)
	})
	if err != nil {
		return nil, translate("update shoe", err)
	}
	return r.FindByID(ctx, id)
}

// Delete removes sizes, photos and the shoe row atomically.
func (r *ShoeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("shoe_id = ?", id).Delete(&model.ShoeSize{}).Error; err != nil {
			return err
		}
		if err := tx.Where("shoe_id = ?", id).Delete(&model.ShoePhoto{}).Error; err != nil {
			return err
		}
		return affected("delete shoe", tx.Where("id = ?", id).Delete(&model.Shoe{}))
	})
	return translate("delete shoe", err)
}

// Options lists shoes with their sizes for the transaction form.
func (r *ShoeRepository) Options(ctx context.Context) ([]model.ShoeOption, error) {
	var shoes []model.Shoe
	err := r.db.WithContext(ctx).
		Preload("Sizes").
		Order("name DESC").
		Find(&shoes).Error
	if err != nil {
		return nil, translate("shoe options", err)
	}

	out := make([]model.ShoeOption, 0, len(shoes))
	for _, s := range shoes {
		opt := model.ShoeOption{
			ID:        s.ID,
			Name:      s.Name,
			Thumbnail: s.Thumbnail,
			Price:     s.Price,
			Sizes:     make([]model.SizeOption, 0, len(s.Sizes)),
		}
		for _, size := range s.Sizes {
			opt.Sizes = append(opt.Sizes, model.SizeOption{ID: size.ID, Size: size.Size})
		}
		out = append(out, opt)
	}
	return out, nil
}

func (r *ShoeRepository) Count(ctx context.Context) (int64, error) {
	return count[model.Shoe](ctx, r.db, "count shoes")
}

func insertChildren(tx *gorm.DB, shoeID uuid.UUID, photos, sizes []string) error {
	if len(photos) > 0 {
		rows := make([]model.ShoePhoto, 0, len(photos))
		for _, p := range photos {
			rows = append(rows, model.ShoePhoto{ShoeID: shoeID, Photo: p})
		}
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
	}
	if len(sizes) > 0 {
		rows := make([]model.ShoeSize, 0, len(sizes))
		for _, s := range sizes {
			rows = append(rows, model.ShoeSize{ShoeID: shoeID, Size: s})
		}
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
	}
	return nil
}
