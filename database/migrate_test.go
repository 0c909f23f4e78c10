package database

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/gymsupply/pos-app/models"
	"github.com/gymsupply/pos-app/utils"
)

func openMigrateTestDB(t *testing.T) *gorm.DB {
	utils.InitLogger()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	return db
}

func TestMigrateSeedsDefaults(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "")
	t.Setenv("ADMIN_PASSWORD", "")
	db := openMigrateTestDB(t)
	assert.NoError(t, Migrate(db))

	// A fresh install gets an admin account with a hashed password
	var admin models.User
	assert.NoError(t, db.Where("role = ?", "admin").First(&admin).Error)
	assert.Equal(t, "admin@pos.local", admin.Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("ChangeMe123!")))

	var categories, messages int64
	db.Model(&models.ProductCategory{}).Count(&categories)
	db.Model(&models.FarewellMessage{}).Count(&messages)
	assert.Equal(t, int64(4), categories)
	assert.Equal(t, int64(3), messages)
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := openMigrateTestDB(t)
	assert.NoError(t, Migrate(db))
	assert.NoError(t, Migrate(db))

	var users, categories, messages int64
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.ProductCategory{}).Count(&categories)
	db.Model(&models.FarewellMessage{}).Count(&messages)
	assert.Equal(t, int64(1), users)
	assert.Equal(t, int64(4), categories)
	assert.Equal(t, int64(3), messages)
}
