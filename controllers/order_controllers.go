package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gymsupply/pos-app/models"
	"github.com/gymsupply/pos-app/services"
	"github.com/gymsupply/pos-app/utils"
	"gorm.io/gorm"
)

type OrderController struct {
	DB       *gorm.DB
	OrderSvc *services.OrderService
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{
		DB:       db,
		OrderSvc: services.NewOrderService(db),
	}
}

// GetAllOrders -> rows for the order list grid
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	var orders []models.Order
	if err := oc.DB.Preload("Items").Preload("Customer").Order("id desc").Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	type orderRow struct {
		ID           uint      `json:"id"`
		OrderNumber  string    `json:"order_number"`
		CustomerName string    `json:"customer_name"`
		Quantity     int       `json:"quantity"`
		Price        float64   `json:"price"`
		CreatedAt    time.Time `json:"created_at"`
	}

	rows := make([]orderRow, 0, len(orders))
	for i := range orders {
		o := &orders[i]
		rows = append(rows, orderRow{
			ID:           o.ID,
			OrderNumber:  o.OrderNumber,
			CustomerName: o.Customer.Label(),
			Quantity:     o.TotalQuantity(),
			Price:        o.Total(),
			CreatedAt:    o.CreatedAt,
		})
	}

	utils.RespondJSON(c, http.StatusOK, "List of orders", gin.H{
		"orders": rows,
	})
}

// CreateOrder -> multipart form: customer_id, cash_received, change and
// indexed products[i][product_id|quantity|discount]. The submitted change is
// advisory; the server recomputes the total from current catalog prices.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	c.Request.ParseMultipartForm(1 << 20)

	fieldErrors := make(map[string]string)

	customerID, err := strconv.ParseUint(c.PostForm("customer_id"), 10, 32)
	if err != nil {
		fieldErrors["customer_id"] = "The customer_id field is required."
	}

	cashReceived, err := strconv.ParseFloat(c.PostForm("cash_received"), 64)
	if err != nil {
		fieldErrors["cash_received"] = "The cash_received field is required."
	}

	items, itemErrors := parseOrderItems(c)
	for field, msg := range itemErrors {
		fieldErrors[field] = msg
	}

	if len(fieldErrors) > 0 {
		utils.RespondValidationError(c, http.StatusUnprocessableEntity, fieldErrors)
		return
	}

	order, err := oc.OrderSvc.CreateOrder(services.OrderInput{
		CustomerID:   uint(customerID),
		CashReceived: cashReceived,
		Items:        items,
	})
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			utils.RespondValidationError(c, http.StatusUnprocessableEntity, map[string]string{
				verr.Field: verr.Message,
			})
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	// A random farewell message rides along for the checkout screen.
	farewell := ""
	if msg, err := PickRandomActive(oc.DB); err == nil {
		farewell = msg.Message
	}

	utils.RespondJSON(c, http.StatusCreated, "Order created successfully", gin.H{
		"order":            orderDetail(order),
		"farewell_message": farewell,
	})
}

// GetOrderByID -> order detail with its line items
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	idStr := c.Param("order_id")
	id, _ := strconv.Atoi(idStr)

	var order models.Order
	if err := oc.DB.Preload("Items.Product").Preload("Customer").First(&order, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order detail", gin.H{
		"order": orderDetail(&order),
	})
}

func parseOrderItems(c *gin.Context) ([]services.OrderItemInput, map[string]string) {
	items := make([]services.OrderItemInput, 0)
	fieldErrors := make(map[string]string)

	for i := 0; ; i++ {
		pidStr := c.PostForm(fmt.Sprintf("products[%d][product_id]", i))
		if pidStr == "" {
			break
		}

		pid, err := strconv.ParseUint(pidStr, 10, 32)
		if err != nil {
			fieldErrors[fmt.Sprintf("products[%d][product_id]", i)] = "The product_id field must be an integer."
			continue
		}

		quantity, err := strconv.Atoi(c.PostForm(fmt.Sprintf("products[%d][quantity]", i)))
		if err != nil {
			fieldErrors[fmt.Sprintf("products[%d][quantity]", i)] = "The quantity field must be an integer."
			continue
		}

		// Discount defaults to 0 when omitted.
		discount := 0.0
		if discStr := c.PostForm(fmt.Sprintf("products[%d][discount]", i)); discStr != "" {
			discount, err = strconv.ParseFloat(discStr, 64)
			if err != nil {
				fieldErrors[fmt.Sprintf("products[%d][discount]", i)] = "The discount field must be a number."
				continue
			}
		}

		items = append(items, services.OrderItemInput{
			ProductID: uint(pid),
			Quantity:  quantity,
			Discount:  discount,
		})
	}

	if len(items) == 0 && len(fieldErrors) == 0 {
		fieldErrors["products"] = "Please select at least one product."
	}

	return items, fieldErrors
}

type orderItemDetail struct {
	ProductID       uint    `json:"product_id"`
	ProductName     string  `json:"product_name"`
	ProductPrice    float64 `json:"product_price"`
	ProductQuantity int     `json:"product_quantity"`
	ProductDiscount float64 `json:"product_discount"`
	Total           float64 `json:"total"`
}

type orderDetailResponse struct {
	ID           uint              `json:"id"`
	OrderNumber  string            `json:"order_number"`
	CustomerID   uint              `json:"customer_id"`
	CustomerName string            `json:"customer_name"`
	CashReceived float64           `json:"cash_received"`
	Change       float64           `json:"change"`
	Total        float64           `json:"total"`
	CreatedAt    time.Time         `json:"created_at"`
	Items        []orderItemDetail `json:"items"`
}

func orderDetail(order *models.Order) orderDetailResponse {
	items := make([]orderItemDetail, 0, len(order.Items))
	for i := range order.Items {
		item := &order.Items[i]
		items = append(items, orderItemDetail{
			ProductID:       item.ProductID,
			ProductName:     item.Product.Name,
			ProductPrice:    item.Price,
			ProductQuantity: item.Quantity,
			ProductDiscount: item.Discount,
			Total:           item.Total(),
		})
	}

	return orderDetailResponse{
		ID:           order.ID,
		OrderNumber:  order.OrderNumber,
		CustomerID:   order.CustomerID,
		CustomerName: order.Customer.Label(),
		CashReceived: order.CashReceived,
		Change:       order.Change,
		Total:        order.Total(),
		CreatedAt:    order.CreatedAt,
		Items:        items,
	}
}
