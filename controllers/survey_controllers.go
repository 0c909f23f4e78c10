package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gymsupply/pos-app/models"
	"github.com/gymsupply/pos-app/utils"
	"gorm.io/gorm"
)

type SurveyController struct {
	DB *gorm.DB
}

func NewSurveyController(db *gorm.DB) *SurveyController {
	return &SurveyController{DB: db}
}

// CreateSurvey -> one satisfaction rating per order, immutable once stored.
// A second submission for the same order is rejected with 409.
func (sc *SurveyController) CreateSurvey(c *gin.Context) {
	var req struct {
		OrderID  uint    `json:"order_id" binding:"required"`
		Rating   int     `json:"rating" binding:"required,min=1,max=5"`
		Feedback *string `json:"feedback" binding:"omitempty,max=500"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, http.StatusUnprocessableEntity, bindingErrors(err))
		return
	}

	var order models.Order
	if err := sc.DB.First(&order, req.OrderID).Error; err != nil {
		utils.RespondValidationError(c, http.StatusUnprocessableEntity, map[string]string{
			"order_id": "The selected order does not exist.",
		})
		return
	}

	var existing models.Survey
	if err := sc.DB.Where("order_id = ?", req.OrderID).First(&existing).Error; err == nil {
		utils.RespondError(c, http.StatusConflict, errors.New("Survey for this order already exists."))
		return
	}

	survey := models.Survey{
		OrderID:  req.OrderID,
		Rating:   req.Rating,
		Feedback: req.Feedback,
	}

	if err := sc.DB.Create(&survey).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Survey created for order %d (rating=%d)", survey.OrderID, survey.Rating)

	utils.RespondJSON(c, http.StatusCreated, "Thank you for your feedback!", gin.H{
		"survey": survey,
	})
}

// GetAllSurveys -> surveys with their order, newest first
func (sc *SurveyController) GetAllSurveys(c *gin.Context) {
	var surveys []models.Survey
	if err := sc.DB.Preload("Order").Order("created_at desc").Find(&surveys).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of surveys", gin.H{
		"surveys": surveys,
	})
}
