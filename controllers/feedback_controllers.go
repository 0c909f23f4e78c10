package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gymsupply/pos-app/models"
	"github.com/gymsupply/pos-app/utils"
	"gorm.io/gorm"
)

type FeedbackController struct {
	DB *gorm.DB
}

func NewFeedbackController(db *gorm.DB) *FeedbackController {
	return &FeedbackController{DB: db}
}

// CreateFeedback
func (fc *FeedbackController) CreateFeedback(c *gin.Context) {
	var req struct {
		OrderID    uint    `json:"order_id" binding:"required"`
		CustomerID *uint   `json:"customer_id"`
		Rating     int     `json:"rating" binding:"required,min=1,max=5"`
		Comment    *string `json:"comment"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, http.StatusUnprocessableEntity, bindingErrors(err))
		return
	}

	var order models.Order
	if err := fc.DB.First(&order, req.OrderID).Error; err != nil {
		utils.RespondValidationError(c, http.StatusUnprocessableEntity, map[string]string{
			"order_id": "The selected order does not exist.",
		})
		return
	}

	if req.CustomerID != nil {
		var customer models.Customer
		if err := fc.DB.First(&customer, *req.CustomerID).Error; err != nil {
			utils.RespondValidationError(c, http.StatusUnprocessableEntity, map[string]string{
				"customer_id": "The selected customer does not exist.",
			})
			return
		}
	}

	feedback := models.Feedback{
		OrderID:    req.OrderID,
		CustomerID: req.CustomerID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}

	if err := fc.DB.Create(&feedback).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Feedback saved", gin.H{
		"feedback": feedback,
	})
}

// GetAllFeedback -> latest 30 entries for the feedback list view
func (fc *FeedbackController) GetAllFeedback(c *gin.Context) {
	var feedback []models.Feedback
	if err := fc.DB.Order("created_at desc").Limit(30).Find(&feedback).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of feedback", gin.H{
		"feedback": feedback,
	})
}

// GetStats -> aggregate rating statistics for the reports chart. Average is
// null when there are no rows; the distribution only lists ratings that
// actually occur, the chart zero-fills the rest.
func (fc *FeedbackController) GetStats(c *gin.Context) {
	var count int64
	if err := fc.DB.Model(&models.Feedback{}).Count(&count).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var average *float64
	if count > 0 {
		row := fc.DB.Model(&models.Feedback{}).Select("AVG(rating)").Row()
		if err := row.Scan(&average); err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}

	type ratingCount struct {
		Rating int   `json:"rating"`
		Count  int64 `json:"count"`
	}
	distribution := make([]ratingCount, 0)
	err := fc.DB.Model(&models.Feedback{}).
		Select("rating, COUNT(*) as count").
		Group("rating").
		Order("rating").
		Scan(&distribution).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Feedback stats", gin.H{
		"average":      average,
		"count":        count,
		"distribution": distribution,
	})
}
