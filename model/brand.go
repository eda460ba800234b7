package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Brand struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Logo      string    `gorm:"size:255;not null" json:"logo"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (b *Brand) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

type BrandInput struct {
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// Option is the id/name pair used to fill select boxes.
type Option struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
