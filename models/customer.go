package models

import "time"

type Customer struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FirstName   string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName    string    `gorm:"type:varchar(100);not null" json:"last_name"`
	Email       string    `gorm:"type:varchar(255)" json:"email"`
	PhoneNumber string    `gorm:"type:varchar(30)" json:"phone_number"`
	ZipCode     string    `gorm:"type:varchar(10)" json:"zip_code"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

// Label is the display name used by typeahead options.
func (c *Customer) Label() string {
	return c.FirstName + " " + c.LastName
}
