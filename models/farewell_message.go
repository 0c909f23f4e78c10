package models

import "time"

type FarewellMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Message   string    `gorm:"type:varchar(255);not null" json:"message"`
	Active    bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
