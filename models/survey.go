package models

import "time"

// Survey is the one-per-order satisfaction rating collected right after
// checkout. Rows are immutable once created.
type Survey struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OrderID   uint      `gorm:"not null;uniqueIndex" json:"order_id"`
	Order     Order     `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"order"`
	Rating    int       `gorm:"not null" json:"rating"` // 1-5
	Feedback  *string   `gorm:"type:varchar(500)" json:"feedback"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
