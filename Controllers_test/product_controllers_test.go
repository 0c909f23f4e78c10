package Controllers_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/gymsupply/pos-app/controllers"
	"github.com/gymsupply/pos-app/models"
)

func setupProductRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()
	productCtrl := controllers.NewProductController(db)
	r.GET("/v1/products/list", productCtrl.GetAllProducts)
	r.GET("/v1/products/initForm", productCtrl.InitForm)
	r.POST("/v1/products", productCtrl.CreateProduct)
	r.POST("/v1/products/getList", productCtrl.GetList)
	r.GET("/v1/products/:product_id", productCtrl.GetProductByID)
	r.POST("/v1/products/:product_id", productCtrl.UpdateProduct)
	r.DELETE("/v1/products/:product_id", productCtrl.DeleteProduct)
	return r
}

func postProductForm(t *testing.T, r *gin.Engine, path string, fields map[string]string) *httptest.ResponseRecorder {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("failed to write form field: %v", err)
		}
	}
	writer.Close()

	req, err := http.NewRequest("POST", path, body)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedCategory(db *gorm.DB) {
	db.Create(&models.ProductCategory{Name: "Supplements"})
}

func TestCreateProduct(t *testing.T) {
	db := newTestDB(t)
	seedCategory(db)
	r := setupProductRouter(db)

	w := postProductForm(t, r, "/v1/products", map[string]string{
		"name":        "Protein Powder",
		"category_id": "1",
		"price":       "49.99",
		"stock":       "25",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeBody(t, w)
	product := resp["data"].(map[string]interface{})["product"].(map[string]interface{})
	assert.Equal(t, "Protein Powder", product["name"])
	assert.Equal(t, 49.99, product["price"])
}

func TestCreateProductValidation(t *testing.T) {
	db := newTestDB(t)
	seedCategory(db)
	r := setupProductRouter(db)

	w := postProductForm(t, r, "/v1/products", map[string]string{
		"price": "-5",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decodeBody(t, w)
	errs := resp["errors"].(map[string]interface{})
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "category_id")
	assert.Contains(t, errs, "price")
	assert.Contains(t, errs, "stock")
}

func TestCreateProductUnknownCategory(t *testing.T) {
	db := newTestDB(t)
	r := setupProductRouter(db)

	w := postProductForm(t, r, "/v1/products", map[string]string{
		"name":        "Protein Powder",
		"category_id": "9",
		"price":       "49.99",
		"stock":       "25",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decodeBody(t, w)
	errs := resp["errors"].(map[string]interface{})
	assert.Contains(t, errs, "category_id")
}

func TestUpdateProduct(t *testing.T) {
	db := newTestDB(t)
	seedCategory(db)
	db.Create(&models.Product{CategoryID: 1, Name: "Old Name", Price: 10, Stock: 5})
	r := setupProductRouter(db)

	w := postProductForm(t, r, "/v1/products/1", map[string]string{
		"name":        "New Name",
		"category_id": "1",
		"price":       "12.50",
		"stock":       "8",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var product models.Product
	assert.NoError(t, db.First(&product, 1).Error)
	assert.Equal(t, "New Name", product.Name)
	assert.Equal(t, 12.5, product.Price)
	assert.Equal(t, 8, product.Stock)
}

func TestInitForm(t *testing.T) {
	db := newTestDB(t)
	seedCategory(db)
	db.Create(&models.ProductCategory{Name: "Apparel"})
	r := setupProductRouter(db)

	w := performJSON(t, r, "GET", "/v1/products/initForm", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	categories := resp["data"].(map[string]interface{})["categories"].([]interface{})
	assert.Len(t, categories, 2)
}

func TestProductTypeaheadSearch(t *testing.T) {
	db := newTestDB(t)
	seedCategory(db)
	db.Create(&models.Product{CategoryID: 1, Name: "Protein Powder", Price: 49.99, Stock: 10})
	db.Create(&models.Product{CategoryID: 1, Name: "Protein Bar", Price: 2.99, Stock: 100})
	db.Create(&models.Product{CategoryID: 1, Name: "Yoga Mat", Price: 19.99, Stock: 30})
	r := setupProductRouter(db)

	w := performJSON(t, r, "POST", "/v1/products/getList", map[string]interface{}{
		"search": "protein",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	options := resp["data"].(map[string]interface{})["products"].([]interface{})
	assert.Len(t, options, 2)

	// Options carry the unit price the order form needs
	first := options[0].(map[string]interface{})
	assert.NotEmpty(t, first["label"])
	assert.Greater(t, first["price"].(float64), 0.0)
}

func TestDeleteProduct(t *testing.T) {
	db := newTestDB(t)
	seedCategory(db)
	db.Create(&models.Product{CategoryID: 1, Name: "Protein Powder", Price: 49.99, Stock: 10})
	r := setupProductRouter(db)

	w := performJSON(t, r, "DELETE", "/v1/products/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.Product{}).Count(&count)
	assert.Equal(t, int64(0), count)
}
