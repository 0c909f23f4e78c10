package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gymsupply/pos-app/models"
	"github.com/gymsupply/pos-app/utils"
	"gorm.io/gorm"
)

type CustomerController struct {
	DB *gorm.DB
}

func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{DB: db}
}

type customerRequest struct {
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	Email       string `json:"email" binding:"omitempty,email"`
	PhoneNumber string `json:"phone_number"`
	ZipCode     string `json:"zip_code"`
}

// GetAllCustomers -> list every customer for the grid
func (cc *CustomerController) GetAllCustomers(c *gin.Context) {
	var customers []models.Customer
	if err := cc.DB.Order("id desc").Find(&customers).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of customers", gin.H{
		"customers": customers,
	})
}

// CreateCustomer
func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, http.StatusUnprocessableEntity, bindingErrors(err))
		return
	}

	customer := models.Customer{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		ZipCode:     req.ZipCode,
	}

	if err := cc.DB.Create(&customer).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New customer created (ID=%d)", customer.ID)

	utils.RespondJSON(c, http.StatusCreated, "Customer created", gin.H{
		"customer": customer,
	})
}

// GetCustomerByID
func (cc *CustomerController) GetCustomerByID(c *gin.Context) {
	idStr := c.Param("customer_id")
	id, _ := strconv.Atoi(idStr)

	var customer models.Customer
	if err := cc.DB.First(&customer, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customer detail", gin.H{
		"customer": customer,
	})
}

// UpdateCustomer
func (cc *CustomerController) UpdateCustomer(c *gin.Context) {
	idStr := c.Param("customer_id")
	id, _ := strconv.Atoi(idStr)

	var customer models.Customer
	if err := cc.DB.First(&customer, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, http.StatusUnprocessableEntity, bindingErrors(err))
		return
	}

	customer.FirstName = req.FirstName
	customer.LastName = req.LastName
	customer.Email = req.Email
	customer.PhoneNumber = req.PhoneNumber
	customer.ZipCode = req.ZipCode

	if err := cc.DB.Save(&customer).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customer updated", gin.H{
		"customer": customer,
	})
}

// DeleteCustomer
func (cc *CustomerController) DeleteCustomer(c *gin.Context) {
	idStr := c.Param("customer_id")
	id, _ := strconv.Atoi(idStr)

	var customer models.Customer
	if err := cc.DB.First(&customer, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if err := cc.DB.Delete(&customer).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customer deleted", gin.H{"customer_id": id})
}

// GetList -> paginated typeahead search used by the order form autocomplete
func (cc *CustomerController) GetList(c *gin.Context) {
	var req struct {
		Search string `json:"search"`
		Page   int    `json:"page"`
	}
	// An empty body is fine, it just means "first page, no filter".
	_ = c.ShouldBindJSON(&req)

	page := req.Page
	if page < 1 {
		page = 1
	}
	const perPage = 10

	query := cc.DB.Model(&models.Customer{})
	if req.Search != "" {
		like := "%" + req.Search + "%"
		query = query.Where("first_name LIKE ? OR last_name LIKE ?", like, like)
	}

	var customers []models.Customer
	err := query.Order("first_name").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&customers).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	type option struct {
		ID    uint   `json:"id"`
		Label string `json:"label"`
	}
	options := make([]option, 0, len(customers))
	for i := range customers {
		options = append(options, option{ID: customers[i].ID, Label: customers[i].Label()})
	}

	utils.RespondJSON(c, http.StatusOK, "Customer options", gin.H{
		"customers": options,
	})
}
