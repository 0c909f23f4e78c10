package models

import (
	"time"

	"github.com/gymsupply/pos-app/cart"
)

type Order struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	OrderNumber  string      `gorm:"type:varchar(30);unique;not null" json:"order_number"`
	CustomerID   uint        `gorm:"not null" json:"customer_id"`
	Customer     Customer    `gorm:"foreignKey:CustomerID" json:"customer"`
	CashReceived float64     `gorm:"type:decimal(10,2);not null;default:0.00" json:"cash_received"`
	Change       float64     `gorm:"type:decimal(10,2);not null;default:0.00" json:"change"`
	CreatedAt    time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time   `gorm:"not null" json:"updated_at"`
	Items        []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
}

// Total sums the line totals of the persisted items. The order row itself
// never stores a total, so this is always derived from the price snapshots.
func (o *Order) Total() float64 {
	var total float64
	for _, item := range o.Items {
		total += cart.LineTotal(item.Price, item.Discount, item.Quantity)
	}
	return total
}

// TotalQuantity is the unit count shown on the order list grid.
func (o *Order) TotalQuantity() int {
	var qty int
	for _, item := range o.Items {
		qty += item.Quantity
	}
	return qty
}
