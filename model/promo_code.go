package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PromoCode struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Code           string    `gorm:"size:255;not null;uniqueIndex" json:"code"`
	DiscountAmount int64     `gorm:"not null" json:"discountAmount"`
}

func (p *PromoCode) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

type PromoCodeInput struct {
	Code           string `json:"code"`
	DiscountAmount int64  `json:"discountAmount"`
}

type PromoCodeOption struct {
	ID             uuid.UUID `json:"id"`
	Code           string    `json:"code"`
	DiscountAmount int64     `json:"discountAmount"`
}
