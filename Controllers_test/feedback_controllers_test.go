package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/gymsupply/pos-app/controllers"
	"github.com/gymsupply/pos-app/models"
)

func setupFeedbackRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()
	feedbackCtrl := controllers.NewFeedbackController(db)
	r.POST("/v1/feedback", feedbackCtrl.CreateFeedback)
	r.GET("/v1/feedback", feedbackCtrl.GetAllFeedback)
	r.GET("/v1/feedback/stats", feedbackCtrl.GetStats)
	return r
}

func seedFeedbackOrder(db *gorm.DB) {
	db.Create(&models.Customer{FirstName: "Jane", LastName: "Doe"})
	db.Create(&models.Order{OrderNumber: "ORD-TEST0001", CustomerID: 1})
}

func TestFeedbackStatsEmpty(t *testing.T) {
	db := newTestDB(t)
	r := setupFeedbackRouter(db)

	w := performJSON(t, r, "GET", "/v1/feedback/stats", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	data := resp["data"].(map[string]interface{})

	assert.Nil(t, data["average"])
	assert.Equal(t, 0.0, data["count"])
	assert.Empty(t, data["distribution"])
	assert.NotNil(t, data["distribution"])
}

func TestCreateFeedbackAndStats(t *testing.T) {
	db := newTestDB(t)
	seedFeedbackOrder(db)
	r := setupFeedbackRouter(db)

	w := performJSON(t, r, "POST", "/v1/feedback", map[string]interface{}{
		"order_id":    1,
		"customer_id": 1,
		"rating":      4,
		"comment":     "Solid experience",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = performJSON(t, r, "POST", "/v1/feedback", map[string]interface{}{
		"order_id": 1,
		"rating":   2,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = performJSON(t, r, "GET", "/v1/feedback/stats", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	data := resp["data"].(map[string]interface{})

	assert.Equal(t, 3.0, data["average"])
	assert.Equal(t, 2.0, data["count"])

	// Only ratings that occur appear; missing ratings are absent, not zero
	distribution := data["distribution"].([]interface{})
	assert.Len(t, distribution, 2)
	first := distribution[0].(map[string]interface{})
	assert.Equal(t, 2.0, first["rating"])
	assert.Equal(t, 1.0, first["count"])
}

func TestFeedbackUnknownOrder(t *testing.T) {
	db := newTestDB(t)
	r := setupFeedbackRouter(db)

	w := performJSON(t, r, "POST", "/v1/feedback", map[string]interface{}{
		"order_id": 9,
		"rating":   3,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decodeBody(t, w)
	errs := resp["errors"].(map[string]interface{})
	assert.Contains(t, errs, "order_id")
}

func TestFeedbackRatingValidation(t *testing.T) {
	db := newTestDB(t)
	seedFeedbackOrder(db)
	r := setupFeedbackRouter(db)

	w := performJSON(t, r, "POST", "/v1/feedback", map[string]interface{}{
		"order_id": 1,
		"rating":   6,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestFeedbackList(t *testing.T) {
	db := newTestDB(t)
	seedFeedbackOrder(db)
	r := setupFeedbackRouter(db)

	for i := 1; i <= 3; i++ {
		w := performJSON(t, r, "POST", "/v1/feedback", map[string]interface{}{
			"order_id": 1,
			"rating":   i,
		})
		assert.Equal(t, http.StatusCreated, w.Code)
	}

	w := performJSON(t, r, "GET", "/v1/feedback", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	feedback := resp["data"].(map[string]interface{})["feedback"].([]interface{})
	assert.Len(t, feedback, 3)
}
