package controllers

import (
	"errors"
	"math/rand"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gymsupply/pos-app/models"
	"github.com/gymsupply/pos-app/utils"
	"gorm.io/gorm"
)

type FarewellMessageController struct {
	DB *gorm.DB
}

func NewFarewellMessageController(db *gorm.DB) *FarewellMessageController {
	return &FarewellMessageController{DB: db}
}

// PickRandomActive returns one active farewell message chosen uniformly at
// random, or gorm.ErrRecordNotFound when none are active. The random offset
// keeps the query portable across MySQL and SQLite.
func PickRandomActive(db *gorm.DB) (*models.FarewellMessage, error) {
	var count int64
	if err := db.Model(&models.FarewellMessage{}).Where("active = ?", true).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var msg models.FarewellMessage
	err := db.Where("active = ?", true).
		Order("id").
		Offset(rand.Intn(int(count))).
		First(&msg).Error
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// GetAllMessages
func (fc *FarewellMessageController) GetAllMessages(c *gin.Context) {
	var messages []models.FarewellMessage
	if err := fc.DB.Order("id").Find(&messages).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of farewell messages", gin.H{
		"messages": messages,
	})
}

// GetRandomMessage -> the message shown to the cashier after checkout
func (fc *FarewellMessageController) GetRandomMessage(c *gin.Context) {
	msg, err := PickRandomActive(fc.DB)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("No active farewell messages found."))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Random farewell message", gin.H{
		"message": msg,
	})
}

// GetMessageByID
func (fc *FarewellMessageController) GetMessageByID(c *gin.Context) {
	idStr := c.Param("message_id")
	id, _ := strconv.Atoi(idStr)

	var msg models.FarewellMessage
	if err := fc.DB.First(&msg, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Farewell message detail", gin.H{
		"message": msg,
	})
}

type farewellRequest struct {
	Message string `json:"message" binding:"required,max=255"`
	Active  *bool  `json:"active"`
}

// CreateMessage
func (fc *FarewellMessageController) CreateMessage(c *gin.Context) {
	var req farewellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, http.StatusUnprocessableEntity, bindingErrors(err))
		return
	}

	// New messages default to active unless told otherwise.
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	msg := models.FarewellMessage{
		Message: req.Message,
		Active:  active,
	}

	if err := fc.DB.Create(&msg).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Farewell message created", gin.H{
		"message": msg,
	})
}

// UpdateMessage
func (fc *FarewellMessageController) UpdateMessage(c *gin.Context) {
	idStr := c.Param("message_id")
	id, _ := strconv.Atoi(idStr)

	var msg models.FarewellMessage
	if err := fc.DB.First(&msg, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var req farewellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, http.StatusUnprocessableEntity, bindingErrors(err))
		return
	}

	msg.Message = req.Message
	if req.Active != nil {
		msg.Active = *req.Active
	}

	if err := fc.DB.Save(&msg).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Farewell message updated", gin.H{
		"message": msg,
	})
}

// DeleteMessage
func (fc *FarewellMessageController) DeleteMessage(c *gin.Context) {
	idStr := c.Param("message_id")
	id, _ := strconv.Atoi(idStr)

	var msg models.FarewellMessage
	if err := fc.DB.First(&msg, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if err := fc.DB.Delete(&msg).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.Status(http.StatusNoContent)
}
