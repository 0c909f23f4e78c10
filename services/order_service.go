package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gymsupply/pos-app/cart"
	"github.com/gymsupply/pos-app/models"
	"github.com/gymsupply/pos-app/utils"
	"gorm.io/gorm"
)

// ValidationError carries the form field a rejected submission should be
// keyed to, matching the field-keyed error map of the API contract.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

type OrderService struct {
	DB *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{DB: db}
}

type OrderItemInput struct {
	ProductID uint
	Quantity  int
	Discount  float64
}

type OrderInput struct {
	CustomerID   uint
	CashReceived float64
	Items        []OrderItemInput
}

// CreateOrder resolves the customer and every product, snapshots current
// catalog prices, recomputes the total and change on the server side, and
// persists the order header together with its items in one transaction.
// Client-submitted totals are advisory only.
func (s *OrderService) CreateOrder(input OrderInput) (*models.Order, error) {
	if len(input.Items) == 0 {
		return nil, &ValidationError{Field: "products", Message: "Please select at least one product."}
	}

	var customer models.Customer
	if err := s.DB.First(&customer, input.CustomerID).Error; err != nil {
		return nil, &ValidationError{Field: "customer_id", Message: "The selected customer does not exist."}
	}

	crt := cart.New()
	for i, item := range input.Items {
		if !cart.ValidQuantity(item.Quantity) {
			return nil, &ValidationError{
				Field:   fmt.Sprintf("products[%d][quantity]", i),
				Message: "Quantity must be at least 1.",
			}
		}
		if !cart.ValidDiscount(item.Discount) {
			return nil, &ValidationError{
				Field:   fmt.Sprintf("products[%d][discount]", i),
				Message: "Discount must be between 0 and 100.",
			}
		}

		var product models.Product
		if err := s.DB.First(&product, item.ProductID).Error; err != nil {
			return nil, &ValidationError{
				Field:   fmt.Sprintf("products[%d][product_id]", i),
				Message: "The selected product does not exist.",
			}
		}

		crt.Add(cart.LineItem{
			ProductID: product.ID,
			Quantity:  item.Quantity,
			Price:     product.Price,
			Discount:  item.Discount,
		})
	}

	change, err := crt.Change(input.CashReceived)
	if err != nil {
		return nil, &ValidationError{Field: "cash_received", Message: "Cash received is less than the order total."}
	}

	order := models.Order{
		OrderNumber:  generateOrderNumber(),
		CustomerID:   customer.ID,
		CashReceived: input.CashReceived,
		Change:       change,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for _, line := range crt.Items() {
			orderItem := models.OrderItem{
				OrderID:   order.ID,
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				Price:     line.Price,
				Discount:  line.Discount,
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.DB.Preload("Items.Product").Preload("Customer").First(&order, order.ID).Error; err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Order %s created for customer %d (total=%.2f, change=%.2f)",
		order.OrderNumber, order.CustomerID, order.Total(), order.Change)

	return &order, nil
}

func generateOrderNumber() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:8])
}
