package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gymsupply/pos-app/models"
	"github.com/gymsupply/pos-app/utils"
	"gorm.io/gorm"
)

// lineTotalExpr recomputes a line total in SQL from the persisted price
// snapshots. Kept portable between MySQL and SQLite.
const lineTotalExpr = "order_items.price * (1 - order_items.discount / 100.0) * order_items.quantity"

const lowStockThreshold = 10

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// GetSalesReport -> order counts and revenue, overall and per day
func (rc *ReportController) GetSalesReport(c *gin.Context) {
	var totalOrders int64
	if err := rc.DB.Model(&models.Order{}).Count(&totalOrders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var totalRevenue float64
	err := rc.DB.Model(&models.OrderItem{}).
		Select("COALESCE(SUM(" + lineTotalExpr + "), 0)").
		Row().Scan(&totalRevenue)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var todayRevenue float64
	err = rc.DB.Model(&models.OrderItem{}).
		Select("COALESCE(SUM("+lineTotalExpr+"), 0)").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.created_at >= ?", startOfDay).
		Row().Scan(&todayRevenue)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	type dayRevenue struct {
		Day     string  `json:"day"`
		Orders  int64   `json:"orders"`
		Revenue float64 `json:"revenue"`
	}
	revenueByDay := make([]dayRevenue, 0)
	err = rc.DB.Model(&models.OrderItem{}).
		Select("DATE(orders.created_at) as day, COUNT(DISTINCT orders.id) as orders, COALESCE(SUM("+lineTotalExpr+"), 0) as revenue").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.created_at >= ?", startOfDay.AddDate(0, 0, -29)).
		Group("DATE(orders.created_at)").
		Order("day").
		Scan(&revenueByDay).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Sales report", gin.H{
		"total_orders":   totalOrders,
		"total_revenue":  totalRevenue,
		"today_revenue":  todayRevenue,
		"revenue_by_day": revenueByDay,
	})
}

// GetProductPerformance -> units sold and revenue per product
func (rc *ReportController) GetProductPerformance(c *gin.Context) {
	type productPerformance struct {
		ProductID uint    `json:"product_id"`
		Name      string  `json:"name"`
		UnitsSold int64   `json:"units_sold"`
		Revenue   float64 `json:"revenue"`
	}

	rows := make([]productPerformance, 0)
	err := rc.DB.Model(&models.OrderItem{}).
		Select("products.id as product_id, products.name as name, COALESCE(SUM(order_items.quantity), 0) as units_sold, COALESCE(SUM("+lineTotalExpr+"), 0) as revenue").
		Joins("JOIN products ON products.id = order_items.product_id").
		Group("products.id, products.name").
		Order("revenue desc").
		Scan(&rows).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Product performance report", gin.H{
		"products": rows,
	})
}

// GetInventoryReport -> stock levels with a low-stock shortlist
func (rc *ReportController) GetInventoryReport(c *gin.Context) {
	var products []models.Product
	if err := rc.DB.Preload("Category").Order("stock").Find(&products).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	totalUnits := 0
	lowStock := make([]models.Product, 0)
	for _, p := range products {
		totalUnits += p.Stock
		if p.Stock <= lowStockThreshold {
			lowStock = append(lowStock, p)
		}
	}

	utils.RespondJSON(c, http.StatusOK, "Inventory report", gin.H{
		"total_products":    len(products),
		"total_stock_units": totalUnits,
		"low_stock":         lowStock,
		"products":          products,
	})
}
