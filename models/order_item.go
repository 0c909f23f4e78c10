package models

import (
	"time"

	"github.com/gymsupply/pos-app/cart"
)

type OrderItem struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	OrderID uint `gorm:"not null" json:"order_id"`
	// Omitting Order field from JSON to avoid recursive nesting
	Order     Order   `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	ProductID uint    `gorm:"not null" json:"product_id"`
	Product   Product `gorm:"foreignKey:ProductID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"product"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	// Price is the unit price snapshot taken from the catalog at sale time.
	Price     float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Discount  float64   `gorm:"type:decimal(5,2);not null;default:0.00" json:"discount"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// Total is the line total derived from the snapshot price.
func (oi *OrderItem) Total() float64 {
	return cart.LineTotal(oi.Price, oi.Discount, oi.Quantity)
}
