package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductTransaction is a customer order. The amount columns are snapshots
// taken when the order was created or last edited.
type ProductTransaction struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	ShoeID           uuid.UUID  `gorm:"type:uuid;not null" json:"shoeId"`
	PromoCodeID      *uuid.UUID `gorm:"type:uuid" json:"promoCodeId"`
	ShoeSize         string     `gorm:"size:50;not null" json:"shoeSize"`
	Quantity         int        `gorm:"not null" json:"quantity"`
	Price            int64      `gorm:"not null" json:"price"`
	SubTotalAmount   int64      `gorm:"not null" json:"subTotalAmount"`
	DiscountAmount   int64      `gorm:"default:0" json:"discountAmount"`
	GrandTotalAmount int64      `gorm:"not null" json:"grandTotalAmount"`
	Name             string     `gorm:"size:255;not null" json:"name"`
	Phone            string     `gorm:"size:255;not null" json:"phone"`
	Email            string     `gorm:"size:255;not null" json:"email"`
	Address          string     `gorm:"type:text;not null" json:"address"`
	City             string     `gorm:"size:255;not null" json:"city"`
	PostCode         string     `gorm:"size:255;not null" json:"postCode"`
	BookingTrxID     string     `gorm:"column:booking_trx_id;size:255;not null;uniqueIndex" json:"bookingTrxId"`
	IsPaid           bool       `gorm:"default:false" json:"isPaid"`
	Proof            *string    `gorm:"size:255" json:"proof"`
	Shoe             *Shoe      `gorm:"foreignKey:ShoeID" json:"shoe,omitempty"`
	PromoCode        *PromoCode `gorm:"foreignKey:PromoCodeID" json:"promoCode,omitempty"`
}

func (t *ProductTransaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TransactionInput is what the admin submits. Amounts are never accepted
// from the caller; they are recomputed from the live shoe price and promo.
type TransactionInput struct {
	ShoeID      uuid.UUID  `json:"shoeId"`
	PromoCodeID *uuid.UUID `json:"promoCodeId"`
	ShoeSize    string     `json:"shoeSize"`
	Quantity    int        `json:"quantity"`
	Name        string     `json:"name"`
	Phone       string     `json:"phone"`
	Email       string     `json:"email"`
	Address     string     `json:"address"`
	City        string     `json:"city"`
	PostCode    string     `json:"postCode"`
	IsPaid      bool       `json:"isPaid"`
	Proof       *string    `json:"proof"`
}

// QuoteRequest asks for a price preview. Quantity is raw form text.
type QuoteRequest struct {
	ShoeID      uuid.UUID  `json:"shoeId"`
	Quantity    string     `json:"quantity"`
	PromoCodeID *uuid.UUID `json:"promoCodeId"`
}

type Prices struct {
	Price            int64 `json:"price"`
	Quantity         int   `json:"quantity"`
	SubTotalAmount   int64 `json:"subTotalAmount"`
	DiscountAmount   int64 `json:"discountAmount"`
	GrandTotalAmount int64 `json:"grandTotalAmount"`
}

// TransactionDetail adds display strings to a transaction.
type TransactionDetail struct {
	ProductTransaction
	PriceText      string `json:"priceText"`
	SubTotalText   string `json:"subTotalText"`
	DiscountText   string `json:"discountText"`
	GrandTotalText string `json:"grandTotalText"`
}
