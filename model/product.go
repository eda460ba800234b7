package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Shoe is the sellable product. Category and Brand stay nil when the
// referenced row is gone.
type Shoe struct {
	ID         uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string      `gorm:"size:255;not null" json:"name"`
	Price      int64       `gorm:"not null" json:"price"`
	Thumbnail  string      `gorm:"size:255;not null" json:"thumbnail"`
	About      string      `gorm:"type:text;not null" json:"about"`
	IsPopular  bool        `gorm:"default:false" json:"isPopular"`
	Stock      int         `gorm:"not null" json:"stock"`
	CategoryID uuid.UUID   `gorm:"type:uuid;not null" json:"categoryId"`
	BrandID    uuid.UUID   `gorm:"type:uuid;not null" json:"brandId"`
	Category   *Category   `gorm:"foreignKey:CategoryID" json:"category"`
	Brand      *Brand      `gorm:"foreignKey:BrandID" json:"brand"`
	Photos     []ShoePhoto `gorm:"foreignKey:ShoeID" json:"photos,omitempty"`
	Sizes      []ShoeSize  `gorm:"foreignKey:ShoeID" json:"sizes,omitempty"`
}

func (s *Shoe) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

type ShoePhoto struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ShoeID uuid.UUID `gorm:"type:uuid;not null;index" json:"shoeId"`
	Photo  string    `gorm:"size:255;not null" json:"photo"`
}

func (p *ShoePhoto) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

type ShoeSize struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ShoeID uuid.UUID `gorm:"type:uuid;not null;index" json:"shoeId"`
	Size   string    `gorm:"size:50;not null" json:"size"`
}

func (s *ShoeSize) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// ShoeInput is the create payload. Photos and Sizes are plain values since
// nothing exists yet.
type ShoeInput struct {
	Name       string    `json:"name"`
	Price      int64     `json:"price"`
	Thumbnail  string    `json:"thumbnail"`
	About      string    `json:"about"`
	IsPopular  bool      `json:"isPopular"`
	Stock      int       `json:"stock"`
	CategoryID uuid.UUID `json:"categoryId"`
	BrandID    uuid.UUID `json:"brandId"`
	Photos     []string  `json:"photos"`
	Sizes      []string  `json:"sizes"`
}

type PhotoItem struct {
	ID    *uuid.UUID `json:"id,omitempty"`
	Photo string     `json:"photo"`
}

type SizeItem struct {
	ID   *uuid.UUID `json:"id,omitempty"`
	Size string     `json:"size"`
}

// ShoeUpdateInput carries the desired child rows plus the diff the caller
// already computed. Items with an ID are left untouched.
type ShoeUpdateInput struct {
	Name             string      `json:"name"`
	Price            int64       `json:"price"`
	Thumbnail        string      `json:"thumbnail"`
	About            string      `json:"about"`
	IsPopular        bool        `json:"isPopular"`
	Stock            int         `json:"stock"`
	CategoryID       uuid.UUID   `json:"categoryId"`
	BrandID          uuid.UUID   `json:"brandId"`
	Photos           []PhotoItem `json:"photos"`
	Sizes            []SizeItem  `json:"sizes"`
	DeletedPhotoIDs  []uuid.UUID `json:"deletedPhotoIds"`
	DeletedPhotoURLs []string    `json:"deletedPhotoUrls"`
	DeletedSizeIDs   []uuid.UUID `json:"deletedSizeIds"`
}

// ShoeOption feeds the product picker of the transaction form.
type ShoeOption struct {
	ID        uuid.UUID    `json:"id"`
	Name      string       `json:"name"`
	Thumbnail string       `json:"thumbnail"`
	Price     int64        `json:"price"`
	Sizes     []SizeOption `json:"sizes"`
}

type SizeOption struct {
	ID   uuid.UUID `json:"id"`
	Size string    `json:"size"`
}
