package models

import "time"

// Feedback is the looser rating record used for aggregate statistics.
// Unlike Survey it allows several rows per order and an optional customer.
type Feedback struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	OrderID    uint      `gorm:"not null" json:"order_id"`
	Order      Order     `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	CustomerID *uint     `gorm:"index" json:"customer_id"`
	Customer   *Customer `gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"customer,omitempty"`
	Rating     int       `gorm:"not null" json:"rating"` // 1-5
	Comment    *string   `gorm:"type:text" json:"comment"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}

// TableName keeps the singular table name used by the original schema.
func (Feedback) TableName() string {
	return "feedback"
}
