package services

import (
	"fmt"
	"testing"

	"github.com/gymsupply/pos-app/models"
	"github.com/gymsupply/pos-app/utils"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupServiceTestDB(t *testing.T) *gorm.DB {
	utils.InitLogger()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&models.Customer{},
		&models.ProductCategory{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	db.Create(&models.Customer{FirstName: "Jane", LastName: "Doe"})
	db.Create(&models.Product{CategoryID: 1, Name: "Protein Powder", Price: 100, Stock: 50})
	db.Create(&models.Product{CategoryID: 1, Name: "Shaker Bottle", Price: 15, Stock: 200})

	return db
}

func TestCreateOrderComputesTotalsServerSide(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewOrderService(db)

	order, err := svc.CreateOrder(OrderInput{
		CustomerID:   1,
		CashReceived: 200,
		Items: []OrderItemInput{
			{ProductID: 1, Quantity: 2, Discount: 10},
		},
	})
	assert.NoError(t, err)
	assert.NotZero(t, order.ID)
	assert.NotEmpty(t, order.OrderNumber)

	// price 100, qty 2, 10% discount -> total 180, change 20
	assert.Equal(t, 180.0, order.Total())
	assert.Equal(t, 20.0, order.Change)
	assert.Equal(t, 200.0, order.CashReceived)
	assert.Len(t, order.Items, 1)

	// Unit price snapshot comes from the catalog, not the client
	assert.Equal(t, 100.0, order.Items[0].Price)
}

func TestCreateOrderInsufficientCash(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewOrderService(db)

	_, err := svc.CreateOrder(OrderInput{
		CustomerID:   1,
		CashReceived: 179.99,
		Items: []OrderItemInput{
			{ProductID: 1, Quantity: 2, Discount: 10},
		},
	})

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "cash_received", verr.Field)

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreateOrderUnknownProductPersistsNothing(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewOrderService(db)

	_, err := svc.CreateOrder(OrderInput{
		CustomerID:   1,
		CashReceived: 500,
		Items: []OrderItemInput{
			{ProductID: 1, Quantity: 1},
			{ProductID: 999, Quantity: 1},
		},
	})

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "products[1][product_id]", verr.Field)

	var orders, items int64
	db.Model(&models.Order{}).Count(&orders)
	db.Model(&models.OrderItem{}).Count(&items)
	assert.Equal(t, int64(0), orders)
	assert.Equal(t, int64(0), items)
}

func TestCreateOrderUnknownCustomer(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewOrderService(db)

	_, err := svc.CreateOrder(OrderInput{
		CustomerID:   42,
		CashReceived: 100,
		Items: []OrderItemInput{
			{ProductID: 1, Quantity: 1},
		},
	})

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "customer_id", verr.Field)
}

func TestCreateOrderValidatesItems(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewOrderService(db)

	_, err := svc.CreateOrder(OrderInput{
		CustomerID:   1,
		CashReceived: 100,
		Items: []OrderItemInput{
			{ProductID: 1, Quantity: 0},
		},
	})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "products[0][quantity]", verr.Field)

	_, err = svc.CreateOrder(OrderInput{
		CustomerID:   1,
		CashReceived: 100,
		Items: []OrderItemInput{
			{ProductID: 1, Quantity: 1, Discount: 101},
		},
	})
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "products[0][discount]", verr.Field)

	_, err = svc.CreateOrder(OrderInput{CustomerID: 1, CashReceived: 100})
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "products", verr.Field)
}

func TestCreateOrderFullDiscount(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewOrderService(db)

	order, err := svc.CreateOrder(OrderInput{
		CustomerID:   1,
		CashReceived: 0,
		Items: []OrderItemInput{
			{ProductID: 2, Quantity: 3, Discount: 100},
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, 0.0, order.Total())
	assert.Equal(t, 0.0, order.Change)
}
