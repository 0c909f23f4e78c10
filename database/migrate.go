package database

import (
	"os"

	"github.com/gymsupply/pos-app/models"
	"github.com/gymsupply/pos-app/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Migrate runs AutoMigrate for every model and seeds the admin account,
// product categories and farewell messages a fresh install expects.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.ProductCategory{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.Survey{},
		&models.Feedback{},
		&models.FarewellMessage{},
	)
	if err != nil {
		return err
	}
	utils.InfoLogger.Println("AutoMigrate completed.")

	if err := seedAdminUser(db); err != nil {
		return err
	}

	if err := seedProductCategories(db); err != nil {
		return err
	}

	return seedFarewellMessages(db)
}

// seedAdminUser creates the initial admin account when the users table is
// empty, so a fresh install can log in and register the rest of the staff.
func seedAdminUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@pos.local"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "ChangeMe123!"
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Name:     "Administrator",
		Email:    email,
		Password: string(hashed),
		Role:     "admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	utils.InfoLogger.Printf("Seeded admin user %s", admin.Email)
	return nil
}

func seedProductCategories(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.ProductCategory{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []models.ProductCategory{
		{Name: "Supplements"},
		{Name: "Equipment"},
		{Name: "Apparel"},
		{Name: "Accessories"},
	}
	if err := db.Create(&defaults).Error; err != nil {
		return err
	}
	utils.InfoLogger.Printf("Seeded %d product categories", len(defaults))
	return nil
}

func seedFarewellMessages(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.FarewellMessage{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []models.FarewellMessage{
		{Message: "Thank you for shopping with us!", Active: true},
		{Message: "See you next time, stay strong!", Active: true},
		{Message: "Have a great workout!", Active: true},
	}
	if err := db.Create(&defaults).Error; err != nil {
		return err
	}
	utils.InfoLogger.Printf("Seeded %d farewell messages", len(defaults))
	return nil
}
